package syncing

import (
	"strconv"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

// entityInfo guarda nome, status e orçamento de uma campanha ou conjunto
type entityInfo struct {
	Name           string
	Status         domain.EntityStatus
	DailyBudget    *float64
	LifetimeBudget *float64
}

// adLineage liga um anúncio aos seus pais e ao creative que ele veicula
type adLineage struct {
	AdName       string
	AdsetID      string
	AdsetName    string
	CampaignID   string
	CampaignName string
	MediaType    string
	MediaHash    string
}

// hierarchy reúne os mapas de consulta montados para um passe de
// sincronização. Source indica se os mapas vieram das listagens de entidades
// ou foram reconstruídos das próprias linhas de métricas.
type hierarchy struct {
	Source    domain.HierarchySource
	Campaigns map[string]entityInfo
	Adsets    map[string]entityInfo
	AdStatus  map[string]domain.EntityStatus
	Lineage   map[string]adLineage
}

// buildHierarchy monta os mapas de consulta a partir das três listagens
// independentes. Quando a listagem de conjuntos ou a de anúncios veio vazia
// (indisponibilidade parcial da API de origem), os mapas são reconstruídos
// diretamente das linhas de métricas: uma entidade com atividade na janela é
// assumida ACTIVE, trocando precisão de status por completude.
func buildHierarchy(
	campaigns []metadomain.Campaign,
	adsets []metadomain.AdSet,
	ads []metadomain.Ad,
	insights []metadomain.AdInsight,
) *hierarchy {
	if len(adsets) == 0 || len(ads) == 0 {
		logrus.WithFields(logrus.Fields{
			"campaigns": len(campaigns),
			"adsets":    len(adsets),
			"ads":       len(ads),
		}).Warn("Listagens de entidades incompletas, reconstruindo hierarquia a partir das métricas")

		return buildHierarchyFromMetrics(insights)
	}

	h := &hierarchy{
		Source:    domain.HierarchyFromListings,
		Campaigns: make(map[string]entityInfo, len(campaigns)),
		Adsets:    make(map[string]entityInfo, len(adsets)),
		AdStatus:  make(map[string]domain.EntityStatus, len(ads)),
		Lineage:   make(map[string]adLineage, len(ads)),
	}

	for _, c := range campaigns {
		h.Campaigns[c.ID] = entityInfo{
			Name:           c.Name,
			Status:         parseEntityStatus(c.EffectiveStatus),
			DailyBudget:    parseBudget(c.DailyBudget),
			LifetimeBudget: parseBudget(c.LifetimeBudget),
		}
	}

	for _, as := range adsets {
		h.Adsets[as.ID] = entityInfo{
			Name:           as.Name,
			Status:         parseEntityStatus(as.EffectiveStatus),
			DailyBudget:    parseBudget(as.DailyBudget),
			LifetimeBudget: parseBudget(as.LifetimeBudget),
		}
	}

	for _, ad := range ads {
		h.AdStatus[ad.ID] = parseEntityStatus(ad.EffectiveStatus)

		lineage := adLineage{
			AdName:     ad.Name,
			AdsetID:    ad.AdsetID,
			CampaignID: ad.CampaignID,
		}

		if adset, ok := h.Adsets[ad.AdsetID]; ok {
			lineage.AdsetName = adset.Name
		}
		if campaign, ok := h.Campaigns[ad.CampaignID]; ok {
			lineage.CampaignName = campaign.Name
		}

		switch {
		case ad.Creative.VideoID != "":
			lineage.MediaType = string(domain.MediaTypeVideo)
			lineage.MediaHash = ad.Creative.VideoID
		case ad.Creative.ImageHash != "":
			lineage.MediaType = string(domain.MediaTypeImage)
			lineage.MediaHash = ad.Creative.ImageHash
		}

		h.Lineage[ad.ID] = lineage
	}

	return h
}

// buildHierarchyFromMetrics reconstrói os mapas a partir das linhas de
// métricas. Entidade inativa não reporta atividade, então tudo que aparece
// aqui é assumido ACTIVE.
func buildHierarchyFromMetrics(insights []metadomain.AdInsight) *hierarchy {
	h := &hierarchy{
		Source:    domain.HierarchyFromMetricFallback,
		Campaigns: make(map[string]entityInfo),
		Adsets:    make(map[string]entityInfo),
		AdStatus:  make(map[string]domain.EntityStatus),
		Lineage:   make(map[string]adLineage),
	}

	for _, row := range insights {
		if row.CampaignID != "" {
			if _, ok := h.Campaigns[row.CampaignID]; !ok {
				h.Campaigns[row.CampaignID] = entityInfo{
					Name:   row.CampaignName,
					Status: domain.EntityStatusActive,
				}
			}
		}

		if row.AdsetID != "" {
			if _, ok := h.Adsets[row.AdsetID]; !ok {
				h.Adsets[row.AdsetID] = entityInfo{
					Name:   row.AdsetName,
					Status: domain.EntityStatusActive,
				}
			}
		}

		if row.AdID != "" {
			h.AdStatus[row.AdID] = domain.EntityStatusActive
			if _, ok := h.Lineage[row.AdID]; !ok {
				h.Lineage[row.AdID] = adLineage{
					AdName:       row.AdName,
					AdsetID:      row.AdsetID,
					AdsetName:    row.AdsetName,
					CampaignID:   row.CampaignID,
					CampaignName: row.CampaignName,
				}
			}
		}
	}

	return h
}

// resolveAdStatus resolve o status do anúncio. Presença em métricas implica
// atividade recente, então anúncio fora da listagem é inferido ACTIVE (e não
// DELETED como nos níveis superiores).
func (h *hierarchy) resolveAdStatus(adID string) domain.EntityStatus {
	if adID == "" {
		return domain.EntityStatusUnknown
	}
	if status, ok := h.AdStatus[adID]; ok {
		return status
	}
	return domain.EntityStatusActive
}

// resolveAdsetStatus resolve o status do conjunto; ausente da listagem com
// métricas presentes significa que a entidade foi removida na origem
func (h *hierarchy) resolveAdsetStatus(adsetID string) domain.EntityStatus {
	if adsetID == "" {
		return domain.EntityStatusUnknown
	}
	if info, ok := h.Adsets[adsetID]; ok {
		return info.Status
	}
	return domain.EntityStatusDeleted
}

func (h *hierarchy) resolveCampaignStatus(campaignID string) domain.EntityStatus {
	if campaignID == "" {
		return domain.EntityStatusUnknown
	}
	if info, ok := h.Campaigns[campaignID]; ok {
		return info.Status
	}
	return domain.EntityStatusDeleted
}

// resolveBudgets devolve os orçamentos vigentes para a linha: o conjunto tem
// precedência sobre a campanha (é nele que o orçamento costuma viver)
func (h *hierarchy) resolveBudgets(adsetID, campaignID string) (daily, lifetime *float64) {
	if info, ok := h.Adsets[adsetID]; ok && (info.DailyBudget != nil || info.LifetimeBudget != nil) {
		return info.DailyBudget, info.LifetimeBudget
	}
	if info, ok := h.Campaigns[campaignID]; ok {
		return info.DailyBudget, info.LifetimeBudget
	}
	return nil, nil
}

func parseEntityStatus(effectiveStatus string) domain.EntityStatus {
	switch effectiveStatus {
	case "ACTIVE":
		return domain.EntityStatusActive
	case "PAUSED", "CAMPAIGN_PAUSED", "ADSET_PAUSED":
		return domain.EntityStatusPaused
	case "DELETED", "ARCHIVED":
		return domain.EntityStatusDeleted
	case "":
		return domain.EntityStatusUnknown
	default:
		// Status transitórios (IN_PROCESS, PENDING_REVIEW, WITH_ISSUES...)
		// não param a veiculação de forma definitiva
		return domain.EntityStatusPaused
	}
}

// parseBudget converte um orçamento em centavos (string) para unidades
// monetárias. String vazia significa "sem orçamento nesse nível", não zero.
func parseBudget(minorUnits string) *float64 {
	if minorUnits == "" {
		return nil
	}

	cents, err := strconv.ParseFloat(minorUnits, 64)
	if err != nil {
		logrus.WithField("budget", minorUnits).Debug("Orçamento malformado, ignorando")
		return nil
	}

	value := cents / 100
	return &value
}
