package syncing

import (
	"context"

	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

// MetaFetcher define as listagens da API Graph consumidas pela sincronização
// de métricas
type MetaFetcher interface {
	ListCampaigns(accountID string) ([]metadomain.Campaign, error)
	ListAdSets(accountID string) ([]metadomain.AdSet, error)
	ListAds(accountID string) ([]metadomain.Ad, error)
	ListAdInsights(accountID string, window domain.DateWindow) ([]metadomain.AdInsight, error)
}

// Notifier dispara a geração de alertas downstream após uma sincronização
// bem-sucedida
type Notifier interface {
	TriggerAlerts(accountOwnerID string) error
}

// Syncer é a interface do orquestrador de sincronização de métricas
type Syncer interface {
	SyncMetrics(ctx context.Context, ownerID, accountID string, window domain.DateWindow) (*domain.SyncMetricsResult, error)
}
