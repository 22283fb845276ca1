package syncing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-sync-api/infrastructure/repository"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

// Service orquestra a sincronização de métricas: busca as quatro listagens em
// paralelo, resolve hierarquia e atribuição por linha, fabrica linhas de
// atividade zero e troca a janela inteira no banco em uma transação
type Service struct {
	cfg           *config.Config
	meta          MetaFetcher
	accountRepo   repository.AccountRepository
	metricRowRepo repository.MetricRowRepository
	notifier      Notifier
}

func NewService(
	cfg *config.Config,
	meta MetaFetcher,
	accountRepo repository.AccountRepository,
	metricRowRepo repository.MetricRowRepository,
	notifier Notifier,
) Syncer {
	return &Service{
		cfg:           cfg,
		meta:          meta,
		accountRepo:   accountRepo,
		metricRowRepo: metricRowRepo,
		notifier:      notifier,
	}
}

// fetchedData acumula o resultado das quatro buscas paralelas
type fetchedData struct {
	campaigns   []metadomain.Campaign
	adsets      []metadomain.AdSet
	ads         []metadomain.Ad
	insights    []metadomain.AdInsight
	insightsErr error
}

func (s *Service) SyncMetrics(ctx context.Context, ownerID, accountID string, window domain.DateWindow) (*domain.SyncMetricsResult, error) {
	if accountID == "" {
		return nil, ErrAccountIDRequired
	}

	if err := window.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}

	account, err := s.accountRepo.GetAccountByID(accountID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar conta %s: %w", accountID, err)
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	if ownerID == "" {
		ownerID = account.OwnerID
	}

	logrus.WithFields(logrus.Fields{
		"account_id":  account.ID,
		"external_id": account.ExternalID,
		"start_date":  window.StartDate.Format(time.DateOnly),
		"end_date":    window.EndDate.Format(time.DateOnly),
	}).Info("sync: iniciando sincronização de métricas")

	data := s.fetchAll(account.ExternalID, window)

	// A listagem de insights é a única obrigatória: sem a primeira página
	// dela não há o que sincronizar e nada é gravado no destino. As demais
	// listagens têm fallback de hierarquia.
	if data.insightsErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInsightsUnavailable, data.insightsErr)
	}

	h := buildHierarchy(data.campaigns, data.adsets, data.ads, data.insights)

	rows := s.buildMetricRows(ownerID, account, h, data.insights, window)

	// As grafias históricas do id externo: a origem já prefixou ids com
	// "act_" em versões antigas, então o delete cobre as duas formas
	accountIDSpellings := []string{account.ExternalID, "act_" + account.ExternalID}

	inserted, err := s.metricRowRepo.ReplaceWindow(ctx, accountIDSpellings, window, rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistMetrics, err)
	}

	logrus.WithFields(logrus.Fields{
		"account_id":       account.ID,
		"inserted":         inserted,
		"hierarchy_source": string(h.Source),
	}).Info("sync: sincronização de métricas concluída")

	// Gatilho de alertas downstream: fire-and-forget, falha aqui nunca
	// derruba a sincronização
	go func(owner string) {
		if err := s.notifier.TriggerAlerts(owner); err != nil {
			logrus.WithError(err).WithField("owner_id", owner).Warn("sync: falha ao disparar gatilho de alertas")
		}
	}(ownerID)

	return &domain.SyncMetricsResult{InsertedCount: inserted}, nil
}

// fetchAll dispara as quatro buscas em paralelo e espera todas. Paginação
// dentro de cada busca é sequencial porque os cursores são ordenados.
func (s *Service) fetchAll(externalID string, window domain.DateWindow) *fetchedData {
	data := &fetchedData{}

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		campaigns, err := s.meta.ListCampaigns(externalID)
		if err != nil {
			logrus.WithError(err).Warn("sync: listagem de campanhas indisponível, prosseguindo sem ela")
			return
		}
		data.campaigns = campaigns
	}()

	go func() {
		defer wg.Done()
		adsets, err := s.meta.ListAdSets(externalID)
		if err != nil {
			logrus.WithError(err).Warn("sync: listagem de conjuntos indisponível, prosseguindo sem ela")
			return
		}
		data.adsets = adsets
	}()

	go func() {
		defer wg.Done()
		ads, err := s.meta.ListAds(externalID)
		if err != nil {
			logrus.WithError(err).Warn("sync: listagem de anúncios indisponível, prosseguindo sem ela")
			return
		}
		data.ads = ads
	}()

	go func() {
		defer wg.Done()
		insights, err := s.meta.ListAdInsights(externalID, window)
		data.insights = insights
		data.insightsErr = err
	}()

	wg.Wait()
	return data
}

// buildMetricRows decora cada linha de insight com hierarquia e atribuição e
// fabrica linhas de atividade zero para anúncios conhecidos sem métricas na
// janela, para que entidades paradas continuem visíveis downstream
func (s *Service) buildMetricRows(
	ownerID string,
	account *domain.AdAccount,
	h *hierarchy,
	insights []metadomain.AdInsight,
	window domain.DateWindow,
) []*domain.MetricRow {
	rows := make([]*domain.MetricRow, 0, len(insights))
	seenAds := make(map[string]struct{}, len(insights))

	for _, insight := range insights {
		seenAds[insight.AdID] = struct{}{}

		date, err := time.Parse(time.DateOnly, insight.DateStart)
		if err != nil {
			logrus.WithField("date_start", insight.DateStart).Debug("sync: linha com data malformada, ignorando")
			continue
		}

		resultCount, resultType, resultValue := resolveAttribution(insight.Actions, insight.ActionValues, account.EventValues)
		daily, lifetime := h.resolveBudgets(insight.AdsetID, insight.CampaignID)
		lineage := h.Lineage[insight.AdID]

		row := &domain.MetricRow{
			OwnerID:        ownerID,
			AccountID:      account.ExternalID,
			Date:           date,
			CampaignID:     insight.CampaignID,
			CampaignName:   insight.CampaignName,
			CampaignStatus: h.resolveCampaignStatus(insight.CampaignID),
			AdsetID:        insight.AdsetID,
			AdsetName:      insight.AdsetName,
			AdsetStatus:    h.resolveAdsetStatus(insight.AdsetID),
			AdID:           insight.AdID,
			AdName:         insight.AdName,
			AdStatus:       h.resolveAdStatus(insight.AdID),
			Impressions:    insight.ImpressionsInt(),
			Clicks:         insight.ClicksInt(),
			Spend:          insight.SpendFloat(),
			ResultCount:    resultCount,
			ResultType:     resultType,
			ResultValue:    resultValue,
			DailyBudget:    daily,
			LifetimeBudget: lifetime,
			MediaType:      lineage.MediaType,
			MediaHash:      lineage.MediaHash,
		}

		rows = append(rows, row)
	}

	for adID, lineage := range h.Lineage {
		if _, ok := seenAds[adID]; ok {
			continue
		}

		daily, lifetime := h.resolveBudgets(lineage.AdsetID, lineage.CampaignID)

		rows = append(rows, &domain.MetricRow{
			OwnerID:        ownerID,
			AccountID:      account.ExternalID,
			Date:           window.StartDate,
			CampaignID:     lineage.CampaignID,
			CampaignName:   lineage.CampaignName,
			CampaignStatus: h.resolveCampaignStatus(lineage.CampaignID),
			AdsetID:        lineage.AdsetID,
			AdsetName:      lineage.AdsetName,
			AdsetStatus:    h.resolveAdsetStatus(lineage.AdsetID),
			AdID:           adID,
			AdName:         lineage.AdName,
			AdStatus:       h.resolveAdStatus(adID),
			DailyBudget:    daily,
			LifetimeBudget: lifetime,
			MediaType:      lineage.MediaType,
			MediaHash:      lineage.MediaHash,
		})
	}

	return rows
}
