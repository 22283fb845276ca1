package mediasync

import (
	"context"

	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

// MediaFetcher define os acessos à biblioteca de mídia da API Graph usados
// pela sincronização de catálogo
type MediaFetcher interface {
	ListImages(accountID string, idsOnly bool) ([]metadomain.AdImage, error)
	ListVideos(accountID string, idsOnly bool) ([]metadomain.AdVideo, error)
	GetImagesByHashes(accountID string, hashes []string) ([]metadomain.AdImage, error)
	GetVideosByIDs(ids []string) ([]metadomain.AdVideo, error)
}

// MediaSyncer é a interface do sincronizador de catálogo de mídia
type MediaSyncer interface {
	SyncMedia(ctx context.Context, ownerID, accountID string, force bool) (*domain.SyncMediaResult, error)
}
