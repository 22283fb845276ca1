package syncing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

func TestBuildHierarchy_FromListings(t *testing.T) {
	campaigns := []metadomain.Campaign{
		{ID: "c1", Name: "Campanha Verão", EffectiveStatus: "ACTIVE", DailyBudget: "150000"},
	}
	adsets := []metadomain.AdSet{
		{ID: "as1", Name: "Conjunto A", EffectiveStatus: "PAUSED", CampaignID: "c1", LifetimeBudget: "5000000"},
	}
	ads := []metadomain.Ad{
		{
			ID: "ad1", Name: "Anúncio 1", EffectiveStatus: "ACTIVE",
			AdsetID: "as1", CampaignID: "c1",
			Creative: metadomain.Creative{VideoID: "v123"},
		},
	}

	h := buildHierarchy(campaigns, adsets, ads, nil)

	assert.Equal(t, domain.HierarchyFromListings, h.Source)
	assert.Equal(t, domain.EntityStatusActive, h.resolveCampaignStatus("c1"))
	assert.Equal(t, domain.EntityStatusPaused, h.resolveAdsetStatus("as1"))
	assert.Equal(t, domain.EntityStatusActive, h.resolveAdStatus("ad1"))

	lineage := h.Lineage["ad1"]
	assert.Equal(t, "Conjunto A", lineage.AdsetName)
	assert.Equal(t, "Campanha Verão", lineage.CampaignName)
	assert.Equal(t, string(domain.MediaTypeVideo), lineage.MediaType)
	assert.Equal(t, "v123", lineage.MediaHash)
}

// Campanha/conjunto ausentes da listagem com métricas presentes foram
// removidos na origem; anúncio ausente é inferido ativo
func TestHierarchy_StatusDefaults(t *testing.T) {
	h := buildHierarchy(
		[]metadomain.Campaign{{ID: "c1", Name: "Viva", EffectiveStatus: "ACTIVE"}},
		[]metadomain.AdSet{{ID: "as1", Name: "Conj", EffectiveStatus: "ACTIVE"}},
		[]metadomain.Ad{{ID: "ad1", Name: "An", EffectiveStatus: "ACTIVE", AdsetID: "as1", CampaignID: "c1"}},
		nil,
	)

	assert.Equal(t, domain.EntityStatusDeleted, h.resolveCampaignStatus("c-removida"))
	assert.Equal(t, domain.EntityStatusDeleted, h.resolveAdsetStatus("as-removido"))
	assert.Equal(t, domain.EntityStatusActive, h.resolveAdStatus("ad-sem-listagem"))

	// Id vazio nunca vira DELETED: não há o que afirmar sobre ele
	assert.Equal(t, domain.EntityStatusUnknown, h.resolveCampaignStatus(""))
	assert.Equal(t, domain.EntityStatusUnknown, h.resolveAdsetStatus(""))
	assert.Equal(t, domain.EntityStatusUnknown, h.resolveAdStatus(""))
}

func TestBuildHierarchy_MetricFallback(t *testing.T) {
	insights := []metadomain.AdInsight{
		{
			CampaignID: "c9", CampaignName: "Campanha Fallback",
			AdsetID: "as9", AdsetName: "Conjunto Fallback",
			AdID: "ad9", AdName: "Anúncio Fallback",
		},
	}

	// Listagem de conjuntos vazia força a reconstrução pelas métricas
	h := buildHierarchy([]metadomain.Campaign{{ID: "c9"}}, nil, []metadomain.Ad{{ID: "ad9"}}, insights)

	assert.Equal(t, domain.HierarchyFromMetricFallback, h.Source)
	assert.Equal(t, domain.EntityStatusActive, h.resolveCampaignStatus("c9"))
	assert.Equal(t, domain.EntityStatusActive, h.resolveAdsetStatus("as9"))
	assert.Equal(t, domain.EntityStatusActive, h.resolveAdStatus("ad9"))
	assert.Equal(t, "Campanha Fallback", h.Lineage["ad9"].CampaignName)

	// No fallback não há listagem de orçamentos
	daily, lifetime := h.resolveBudgets("as9", "c9")
	assert.Nil(t, daily)
	assert.Nil(t, lifetime)
}

func TestHierarchy_ResolveBudgets(t *testing.T) {
	h := buildHierarchy(
		[]metadomain.Campaign{{ID: "c1", EffectiveStatus: "ACTIVE", DailyBudget: "200000"}},
		[]metadomain.AdSet{
			{ID: "as1", EffectiveStatus: "ACTIVE", LifetimeBudget: "1000000"},
			{ID: "as2", EffectiveStatus: "ACTIVE"},
		},
		[]metadomain.Ad{{ID: "ad1", AdsetID: "as1", CampaignID: "c1"}},
		nil,
	)

	// Orçamento do conjunto tem precedência sobre o da campanha
	daily, lifetime := h.resolveBudgets("as1", "c1")
	assert.Nil(t, daily)
	assert.NotNil(t, lifetime)
	assert.Equal(t, 10000.0, *lifetime)

	// Conjunto sem orçamento próprio herda o da campanha
	daily, lifetime = h.resolveBudgets("as2", "c1")
	assert.NotNil(t, daily)
	assert.Equal(t, 2000.0, *daily)
	assert.Nil(t, lifetime)

	// Conjunto ausente da listagem também herda o orçamento da campanha:
	// com orçamento no nível da campanha, é ela que financia a veiculação
	daily, lifetime = h.resolveBudgets("as-removido", "c1")
	assert.NotNil(t, daily)
	assert.Equal(t, 2000.0, *daily)
	assert.Nil(t, lifetime)

	// Sem campanha conhecida não há de onde herdar
	daily, lifetime = h.resolveBudgets("as-removido", "c-removida")
	assert.Nil(t, daily)
	assert.Nil(t, lifetime)
}

func TestParseEntityStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		expected domain.EntityStatus
	}{
		{"Ativo", "ACTIVE", domain.EntityStatusActive},
		{"Pausado", "PAUSED", domain.EntityStatusPaused},
		{"Pausado pela campanha", "CAMPAIGN_PAUSED", domain.EntityStatusPaused},
		{"Removido", "DELETED", domain.EntityStatusDeleted},
		{"Arquivado", "ARCHIVED", domain.EntityStatusDeleted},
		{"Vazio", "", domain.EntityStatusUnknown},
		{"Transitório vira pausado", "PENDING_REVIEW", domain.EntityStatusPaused},
		{"Com problemas vira pausado", "WITH_ISSUES", domain.EntityStatusPaused},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseEntityStatus(tt.status))
		})
	}
}

func TestParseBudget(t *testing.T) {
	// Orçamento em centavos vira unidades monetárias
	budget := parseBudget("150000")
	assert.NotNil(t, budget)
	assert.Equal(t, 1500.0, *budget)

	// String vazia significa "sem orçamento nesse nível", não zero
	assert.Nil(t, parseBudget(""))

	// Valor malformado é descartado
	assert.Nil(t, parseBudget("abc"))
}
