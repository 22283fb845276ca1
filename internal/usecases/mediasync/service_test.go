package mediasync

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
	repomocks "github.com/vfg2006/ads-sync-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"github.com/vfg2006/ads-sync-api/internal/usecases/mediasync/mocks"
	"go.uber.org/mock/gomock"
	"golang.org/x/time/rate"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type mediaTestMocks struct {
	meta          *mocks.MockMediaFetcher
	accountRepo   *repomocks.MockAccountRepository
	assetRepo     *repomocks.MockCatalogAssetRepository
	metricRowRepo *repomocks.MockMetricRowRepository
	syncStateRepo *repomocks.MockSyncStateRepository
}

func newMediaTestService(ctrl *gomock.Controller) (*Service, *mediaTestMocks) {
	m := &mediaTestMocks{
		meta:          mocks.NewMockMediaFetcher(ctrl),
		accountRepo:   repomocks.NewMockAccountRepository(ctrl),
		assetRepo:     repomocks.NewMockCatalogAssetRepository(ctrl),
		metricRowRepo: repomocks.NewMockMetricRowRepository(ctrl),
		syncStateRepo: repomocks.NewMockSyncStateRepository(ctrl),
	}

	cfg := &config.Config{
		MediaSync: config.MediaSync{
			CooldownHours:      24,
			DetailBatchSize:    50,
			DurationToleranceS: 1,
		},
	}

	service := &Service{
		cfg:           cfg,
		meta:          m.meta,
		accountRepo:   m.accountRepo,
		assetRepo:     m.assetRepo,
		metricRowRepo: m.metricRowRepo,
		syncStateRepo: m.syncStateRepo,
		limiter:       rate.NewLimiter(rate.Inf, 1),
		now:           func() time.Time { return fixedNow },
	}

	return service, m
}

func mediaTestAccount() *domain.AdAccount {
	return &domain.AdAccount{
		ID:         "ACC001",
		ExternalID: "123",
		Name:       "Conta Teste",
		OwnerID:    "owner-1",
		Status:     domain.AdAccountStatusActive,
	}
}

func TestSyncMedia_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newMediaTestService(ctrl)

	t.Run("Conta vazia", func(t *testing.T) {
		_, err := service.SyncMedia(context.Background(), "owner-1", "", false)
		assert.ErrorIs(t, err, ErrAccountIDRequired)
	})

	t.Run("Conta inexistente", func(t *testing.T) {
		m.accountRepo.EXPECT().GetAccountByID("NOPE").Return(nil, nil)

		_, err := service.SyncMedia(context.Background(), "owner-1", "NOPE", false)
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}

// Dentro do cooldown a sincronização é pulada sem nenhuma chamada à origem
func TestSyncMedia_CooldownSkips(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newMediaTestService(ctrl)

	m.accountRepo.EXPECT().GetAccountByID("ACC001").Return(mediaTestAccount(), nil)
	m.syncStateRepo.EXPECT().GetByAccountID("ACC001").Return(&domain.SyncState{
		AccountID:    "ACC001",
		LastSyncedAt: fixedNow.Add(-1 * time.Hour),
	}, nil)

	result, err := service.SyncMedia(context.Background(), "owner-1", "ACC001", false)

	assert.NoError(t, err)
	assert.True(t, result.Skipped)
}

func TestSyncMedia_FirstSyncIsFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newMediaTestService(ctrl)
	account := mediaTestAccount()

	m.accountRepo.EXPECT().GetAccountByID("ACC001").Return(account, nil)
	m.syncStateRepo.EXPECT().GetByAccountID("ACC001").Return(nil, nil)

	images := []metadomain.AdImage{
		{Hash: "img-1", Name: "banner", URL: "https://cdn/banner.jpg", Width: 800, Height: 600},
		{Hash: ""}, // item malformado da origem é ignorado
	}
	videos := []metadomain.AdVideo{
		{ID: "vid-1", Title: "institucional", Length: 30, Source: "https://cdn/v.mp4", Picture: "https://cdn/v.jpg"},
	}

	// Primeira sincronização busca as listagens completas, não o inventário
	m.meta.EXPECT().ListImages("123", false).Return(images, nil)
	m.meta.EXPECT().ListVideos("123", false).Return(videos, nil)

	var upserted []*domain.CatalogAsset
	m.assetRepo.EXPECT().UpsertBatch(gomock.Any()).DoAndReturn(func(assets []*domain.CatalogAsset) (int, error) {
		upserted = assets
		return len(assets), nil
	})

	// Denormalização das URLs: imagem usa a própria URL, vídeo usa o thumbnail
	m.metricRowRepo.EXPECT().UpdateMediaURLByHash("123", "img-1", "https://cdn/banner.jpg").Return(int64(1), nil)
	m.metricRowRepo.EXPECT().UpdateMediaURLByHash("123", "vid-1", "https://cdn/v.jpg").Return(int64(1), nil)

	m.metricRowRepo.EXPECT().ListVideoHashes("owner-1", "123").Return(nil, nil)
	m.assetRepo.EXPECT().ListVideos("123").Return(nil, nil)

	var savedState *domain.SyncState
	m.syncStateRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(state *domain.SyncState) error {
		savedState = state
		return nil
	})

	result, err := service.SyncMedia(context.Background(), "owner-1", "ACC001", false)

	assert.NoError(t, err)
	// A contagem reflete só o que entrou no catálogo, não a listagem crua
	assert.Equal(t, 2, result.NewAssetCount)
	assert.Zero(t, result.ResolvedDerivativeCount)

	assert.Len(t, upserted, 2)
	assert.Equal(t, domain.MediaTypeImage, upserted[0].Type)
	assert.Equal(t, "img-1", upserted[0].Hash)
	assert.Equal(t, domain.MediaTypeVideo, upserted[1].Type)
	assert.Equal(t, "vid-1", upserted[1].Hash)
	assert.Equal(t, 30.0, upserted[1].Duration)

	assert.NotNil(t, savedState)
	assert.Equal(t, "ACC001", savedState.AccountID)
	assert.Equal(t, fixedNow, savedState.LastSyncedAt)
	assert.Equal(t, 1, savedState.ImageCount)
	assert.Equal(t, 1, savedState.VideoCount)
}

// O delta busca detalhes apenas do subconjunto ainda desconhecido
func TestSyncMedia_DeltaFetchesOnlyUnseen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newMediaTestService(ctrl)
	account := mediaTestAccount()

	m.accountRepo.EXPECT().GetAccountByID("ACC001").Return(account, nil)
	m.syncStateRepo.EXPECT().GetByAccountID("ACC001").Return(&domain.SyncState{
		AccountID:    "ACC001",
		LastSyncedAt: fixedNow.Add(-48 * time.Hour),
		ImageCount:   1,
		VideoCount:   1,
	}, nil)

	m.meta.EXPECT().ListImages("123", true).Return([]metadomain.AdImage{
		{Hash: "img-conhecida"},
		{Hash: "img-nova"},
	}, nil)
	m.meta.EXPECT().ListVideos("123", true).Return([]metadomain.AdVideo{
		{ID: "vid-conhecido"},
		{ID: "vid-novo"},
	}, nil)

	m.assetRepo.EXPECT().ListKnownHashes("123", domain.MediaTypeImage).
		Return(map[string]struct{}{"img-conhecida": {}}, nil)
	m.assetRepo.EXPECT().ListKnownHashes("123", domain.MediaTypeVideo).
		Return(map[string]struct{}{"vid-conhecido": {}}, nil)

	m.meta.EXPECT().GetImagesByHashes("123", []string{"img-nova"}).Return([]metadomain.AdImage{
		{Hash: "img-nova", Name: "nova", URL: "https://cdn/nova.jpg"},
	}, nil)
	m.meta.EXPECT().GetVideosByIDs([]string{"vid-novo"}).Return([]metadomain.AdVideo{
		{ID: "vid-novo", Title: "novo video", Length: 12, Picture: "https://cdn/novo.jpg"},
	}, nil)

	m.assetRepo.EXPECT().UpsertBatch(gomock.Any()).Return(2, nil)
	m.metricRowRepo.EXPECT().UpdateMediaURLByHash("123", "img-nova", "https://cdn/nova.jpg").Return(int64(0), nil)
	m.metricRowRepo.EXPECT().UpdateMediaURLByHash("123", "vid-novo", "https://cdn/novo.jpg").Return(int64(0), nil)

	m.metricRowRepo.EXPECT().ListVideoHashes("owner-1", "123").Return(nil, nil)
	m.assetRepo.EXPECT().ListVideos("123").Return(nil, nil)

	var savedState *domain.SyncState
	m.syncStateRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(state *domain.SyncState) error {
		savedState = state
		return nil
	})

	result, err := service.SyncMedia(context.Background(), "owner-1", "ACC001", false)

	assert.NoError(t, err)
	assert.Equal(t, 2, result.NewAssetCount)

	// Contagem acumula: delta soma os novos ao inventário já conhecido
	assert.Equal(t, 2, savedState.ImageCount)
	assert.Equal(t, 2, savedState.VideoCount)
}

// force ignora o cooldown e executa o delta mesmo recém-sincronizado
func TestSyncMedia_ForceBypassesCooldown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newMediaTestService(ctrl)
	account := mediaTestAccount()

	m.accountRepo.EXPECT().GetAccountByID("ACC001").Return(account, nil)
	m.syncStateRepo.EXPECT().GetByAccountID("ACC001").Return(&domain.SyncState{
		AccountID:    "ACC001",
		LastSyncedAt: fixedNow.Add(-10 * time.Minute),
	}, nil)

	m.meta.EXPECT().ListImages("123", true).Return(nil, nil)
	m.meta.EXPECT().ListVideos("123", true).Return(nil, nil)
	m.assetRepo.EXPECT().ListKnownHashes("123", domain.MediaTypeImage).Return(map[string]struct{}{}, nil)
	m.assetRepo.EXPECT().ListKnownHashes("123", domain.MediaTypeVideo).Return(map[string]struct{}{}, nil)
	m.assetRepo.EXPECT().UpsertBatch(gomock.Any()).Return(0, nil)
	m.metricRowRepo.EXPECT().ListVideoHashes("owner-1", "123").Return(nil, nil)
	m.assetRepo.EXPECT().ListVideos("123").Return(nil, nil)
	m.syncStateRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	result, err := service.SyncMedia(context.Background(), "owner-1", "ACC001", true)

	assert.NoError(t, err)
	assert.False(t, result.Skipped)
}

// Derivativo presente nas métricas é casado com o vídeo canônico do catálogo
// e o hash da linha é reescrito
func TestSyncMedia_ResolvesDerivatives(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newMediaTestService(ctrl)
	account := mediaTestAccount()

	m.accountRepo.EXPECT().GetAccountByID("ACC001").Return(account, nil)
	m.syncStateRepo.EXPECT().GetByAccountID("ACC001").Return(&domain.SyncState{
		AccountID:    "ACC001",
		LastSyncedAt: fixedNow.Add(-48 * time.Hour),
	}, nil)

	m.meta.EXPECT().ListImages("123", true).Return(nil, nil)
	m.meta.EXPECT().ListVideos("123", true).Return(nil, nil)
	m.assetRepo.EXPECT().ListKnownHashes("123", domain.MediaTypeImage).Return(map[string]struct{}{}, nil)
	m.assetRepo.EXPECT().ListKnownHashes("123", domain.MediaTypeVideo).Return(map[string]struct{}{}, nil)
	m.assetRepo.EXPECT().UpsertBatch(gomock.Any()).Return(0, nil)

	// "hash-canon" já resolvido fica de fora; só "deriv-1" segue irresoluto
	m.metricRowRepo.EXPECT().ListVideoHashes("owner-1", "123").
		Return([]string{"deriv-1", "hash-canon"}, nil)
	m.assetRepo.EXPECT().ListVideos("123").Return([]*domain.CatalogAsset{
		{Hash: "hash-canon", Name: "summer_promo_v2", Type: domain.MediaTypeVideo, Duration: 15.0},
	}, nil)

	m.meta.EXPECT().GetVideosByIDs([]string{"deriv-1"}).Return([]metadomain.AdVideo{
		{ID: "deriv-1", Title: "Summer_Promo_v2.mp4", Length: 14.8},
	}, nil)

	m.metricRowRepo.EXPECT().RewriteMediaHash("owner-1", "123", "deriv-1", "hash-canon").
		Return(int64(3), nil)

	m.syncStateRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	result, err := service.SyncMedia(context.Background(), "owner-1", "ACC001", false)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.ResolvedDerivativeCount)
}

// Os lotes de metadados de derivativos consomem o mesmo throttle dos lotes de
// detalhes: esgotado o orçamento do limiter, os lotes restantes não são
// emitidos e ficam para a próxima sincronização
func TestSyncMedia_DerivativeLookupsAreThrottled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newMediaTestService(ctrl)
	// Um token disponível e reposição de um por hora: com o prazo do contexto
	// só o primeiro lote passa, e o Wait do segundo falha sem dormir
	service.limiter = rate.NewLimiter(rate.Every(time.Hour), 1)

	account := mediaTestAccount()

	m.accountRepo.EXPECT().GetAccountByID("ACC001").Return(account, nil)
	m.syncStateRepo.EXPECT().GetByAccountID("ACC001").Return(&domain.SyncState{
		AccountID:    "ACC001",
		LastSyncedAt: fixedNow.Add(-48 * time.Hour),
	}, nil)

	m.meta.EXPECT().ListImages("123", true).Return(nil, nil)
	m.meta.EXPECT().ListVideos("123", true).Return(nil, nil)
	m.assetRepo.EXPECT().ListKnownHashes("123", domain.MediaTypeImage).Return(map[string]struct{}{}, nil)
	m.assetRepo.EXPECT().ListKnownHashes("123", domain.MediaTypeVideo).Return(map[string]struct{}{}, nil)
	m.assetRepo.EXPECT().UpsertBatch(gomock.Any()).Return(0, nil)

	// 100 hashes irresolutos formam dois lotes de 50
	hashes := make([]string, 100)
	for i := range hashes {
		hashes[i] = fmt.Sprintf("deriv-%03d", i)
	}
	m.metricRowRepo.EXPECT().ListVideoHashes("owner-1", "123").Return(hashes, nil)
	m.assetRepo.EXPECT().ListVideos("123").Return(nil, nil)

	var batches [][]string
	m.meta.EXPECT().GetVideosByIDs(gomock.Any()).DoAndReturn(func(batch []string) ([]metadomain.AdVideo, error) {
		batches = append(batches, batch)
		return nil, nil
	}).Times(1)

	m.syncStateRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := service.SyncMedia(ctx, "owner-1", "ACC001", false)

	assert.NoError(t, err)
	assert.Len(t, batches, 1)
	assert.Len(t, batches[0], 50)
	assert.Zero(t, result.ResolvedDerivativeCount)
}
