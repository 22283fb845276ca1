package mediasync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-sync-api/infrastructure/repository"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"golang.org/x/time/rate"
)

// Erros específicos para o contexto de sincronização de mídia
var (
	ErrAccountIDRequired = errors.New("account ID is required")
	ErrAccountNotFound   = errors.New("account not found")
	ErrInventoryFetch    = errors.New("error fetching media inventory")
)

// Service mantém o catálogo de mídia da conta (imagens e vídeos) e resolve os
// ids derivativos de vídeo das linhas de métricas para o id canônico do
// catálogo
type Service struct {
	cfg           *config.Config
	meta          MediaFetcher
	accountRepo   repository.AccountRepository
	assetRepo     repository.CatalogAssetRepository
	metricRowRepo repository.MetricRowRepository
	syncStateRepo repository.SyncStateRepository
	limiter       *rate.Limiter
	now           func() time.Time
}

func NewService(
	cfg *config.Config,
	meta MediaFetcher,
	accountRepo repository.AccountRepository,
	assetRepo repository.CatalogAssetRepository,
	metricRowRepo repository.MetricRowRepository,
	syncStateRepo repository.SyncStateRepository,
) *Service {
	// Throttle fixo entre lotes para respeitar o rate limit da origem
	interval := time.Duration(cfg.MediaSync.BatchDelayMillis) * time.Millisecond
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}

	return &Service{
		cfg:           cfg,
		meta:          meta,
		accountRepo:   accountRepo,
		assetRepo:     assetRepo,
		metricRowRepo: metricRowRepo,
		syncStateRepo: syncStateRepo,
		limiter:       rate.NewLimiter(rate.Every(interval), 1),
		now:           time.Now,
	}
}

// SyncMedia executa uma sincronização de catálogo. A primeira sincronização
// de uma conta é sempre completa; as seguintes são incrementais (delta) e
// respeitam o cooldown, a menos que force seja informado.
func (s *Service) SyncMedia(ctx context.Context, ownerID, accountID string, force bool) (*domain.SyncMediaResult, error) {
	if accountID == "" {
		return nil, ErrAccountIDRequired
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

	state, err := s.syncStateRepo.GetByAccountID(account.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar estado de sincronização: %w", err)
	}

	cooldown := time.Duration(s.cfg.MediaSync.CooldownHours) * time.Hour
	if !force && !state.CooldownElapsed(cooldown, s.now()) {
		logrus.WithFields(logrus.Fields{
			"account_id":     account.ID,
			"last_synced_at": state.LastSyncedAt,
		}).Info("media: sincronização dentro do cooldown, pulando")

		return &domain.SyncMediaResult{Skipped: true}, nil
	}

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"full":       state == nil,
		"force":      force,
	}).Info("media: iniciando sincronização do catálogo")

	var images []metadomain.AdImage
	var videos []metadomain.AdVideo

	if state == nil {
		images, videos, err = s.fullSync(account)
	} else {
		images, videos, err = s.deltaSync(ctx, account)
	}
	if err != nil {
		return nil, err
	}

	// Itens malformados da origem são descartados aqui, então as contagens
	// saem dos ativos construídos e não das listagens cruas
	assets := s.buildAssets(ownerID, account.ExternalID, images, videos)

	imageCount := 0
	for _, asset := range assets {
		if asset.Type == domain.MediaTypeImage {
			imageCount++
		}
	}
	videoCount := len(assets) - imageCount

	if _, err := s.assetRepo.UpsertBatch(assets); err != nil {
		return nil, fmt.Errorf("erro ao upsert do catálogo: %w", err)
	}

	// Denormaliza as URLs resolvidas nas linhas de métricas que referenciam
	// cada ativo, dispensando um join na leitura
	s.pushMediaURLs(account.ExternalID, assets)

	resolved := s.resolveDerivatives(ctx, ownerID, account)

	newState := &domain.SyncState{
		AccountID:    account.ID,
		LastSyncedAt: s.now(),
		ImageCount:   stateCount(state, imageCount, true),
		VideoCount:   stateCount(state, videoCount, false),
	}
	if err := s.syncStateRepo.SaveOrUpdate(newState); err != nil {
		logrus.WithError(err).WithField("account_id", account.ID).Warn("media: falha ao registrar estado de sincronização")
	}

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"new_assets": len(assets),
		"resolved":   resolved,
	}).Info("media: sincronização do catálogo concluída")

	return &domain.SyncMediaResult{
		NewAssetCount:           len(assets),
		ResolvedDerivativeCount: resolved,
	}, nil
}

// fullSync busca as listagens completas com todos os campos
func (s *Service) fullSync(account *domain.AdAccount) ([]metadomain.AdImage, []metadomain.AdVideo, error) {
	images, err := s.meta.ListImages(account.ExternalID, false)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: imagens: %v", ErrInventoryFetch, err)
	}

	videos, err := s.meta.ListVideos(account.ExternalID, false)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: vídeos: %v", ErrInventoryFetch, err)
	}

	return images, videos, nil
}

// deltaSync busca primeiro os inventários reduzidos (só ids), diferencia
// contra o catálogo já conhecido e só então busca os detalhes completos do
// subconjunto novo, em lotes espaçados pelo throttle
func (s *Service) deltaSync(ctx context.Context, account *domain.AdAccount) ([]metadomain.AdImage, []metadomain.AdVideo, error) {
	imageRefs, err := s.meta.ListImages(account.ExternalID, true)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: inventário de imagens: %v", ErrInventoryFetch, err)
	}

	videoRefs, err := s.meta.ListVideos(account.ExternalID, true)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: inventário de vídeos: %v", ErrInventoryFetch, err)
	}

	knownImages, err := s.assetRepo.ListKnownHashes(account.ExternalID, domain.MediaTypeImage)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao listar imagens conhecidas: %w", err)
	}

	knownVideos, err := s.assetRepo.ListKnownHashes(account.ExternalID, domain.MediaTypeVideo)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao listar vídeos conhecidos: %w", err)
	}

	unseenHashes := make([]string, 0)
	for _, ref := range imageRefs {
		if _, ok := knownImages[ref.Hash]; !ok {
			unseenHashes = append(unseenHashes, ref.Hash)
		}
	}

	unseenIDs := make([]string, 0)
	for _, ref := range videoRefs {
		if _, ok := knownVideos[ref.ID]; !ok {
			unseenIDs = append(unseenIDs, ref.ID)
		}
	}

	images := make([]metadomain.AdImage, 0, len(unseenHashes))
	for _, batch := range chunk(unseenHashes, s.cfg.MediaSync.DetailBatchSize) {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, nil, err
		}

		details, err := s.meta.GetImagesByHashes(account.ExternalID, batch)
		if err != nil {
			logrus.WithError(err).Warn("media: lote de detalhes de imagens falhou, prosseguindo com o parcial")
			continue
		}
		images = append(images, details...)
	}

	videos := make([]metadomain.AdVideo, 0, len(unseenIDs))
	for _, batch := range chunk(unseenIDs, s.cfg.MediaSync.DetailBatchSize) {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, nil, err
		}

		details, err := s.meta.GetVideosByIDs(batch)
		if err != nil {
			logrus.WithError(err).Warn("media: lote de detalhes de vídeos falhou, prosseguindo com o parcial")
			continue
		}
		videos = append(videos, details...)
	}

	return images, videos, nil
}

func (s *Service) buildAssets(ownerID, externalID string, images []metadomain.AdImage, videos []metadomain.AdVideo) []*domain.CatalogAsset {
	assets := make([]*domain.CatalogAsset, 0, len(images)+len(videos))

	for _, img := range images {
		if img.Hash == "" {
			continue
		}
		assets = append(assets, &domain.CatalogAsset{
			OwnerID:   ownerID,
			AccountID: externalID,
			Hash:      img.Hash,
			Type:      domain.MediaTypeImage,
			Name:      img.Name,
			Width:     img.Width,
			Height:    img.Height,
			URL:       img.URL,
		})
	}

	for _, v := range videos {
		if v.ID == "" {
			continue
		}
		assets = append(assets, &domain.CatalogAsset{
			OwnerID:      ownerID,
			AccountID:    externalID,
			Hash:         v.ID,
			Type:         domain.MediaTypeVideo,
			Name:         v.Title,
			Duration:     v.Length,
			URL:          v.Source,
			ThumbnailURL: v.Picture,
		})
	}

	return assets
}

func (s *Service) pushMediaURLs(externalID string, assets []*domain.CatalogAsset) {
	for _, asset := range assets {
		url := asset.URL
		if asset.Type == domain.MediaTypeVideo {
			url = asset.ThumbnailURL
		}
		if url == "" {
			continue
		}

		if _, err := s.metricRowRepo.UpdateMediaURLByHash(externalID, asset.Hash, url); err != nil {
			logrus.WithError(err).WithField("hash", asset.Hash).Debug("media: falha ao denormalizar URL de mídia")
		}
	}
}

// resolveDerivatives casa os ids derivativos de vídeo presentes nas linhas de
// métricas com o vídeo canônico do catálogo. Os lotes de metadados passam pelo
// mesmo throttle dos lotes de detalhes. Melhor esforço: derivativo sem
// casamento fica irresoluto e tenta de novo na próxima sincronização.
func (s *Service) resolveDerivatives(ctx context.Context, ownerID string, account *domain.AdAccount) int {
	hashes, err := s.metricRowRepo.ListVideoHashes(ownerID, account.ExternalID)
	if err != nil {
		logrus.WithError(err).Warn("media: falha ao listar hashes de vídeo das métricas")
		return 0
	}

	catalogVideos, err := s.assetRepo.ListVideos(account.ExternalID)
	if err != nil {
		logrus.WithError(err).Warn("media: falha ao listar vídeos do catálogo")
		return 0
	}

	known := make(map[string]struct{}, len(catalogVideos))
	for _, v := range catalogVideos {
		known[v.Hash] = struct{}{}
	}

	// Hash que já é id do catálogo está resolvido; reexecutar é no-op
	unresolved := make([]string, 0)
	for _, h := range hashes {
		if _, ok := known[h]; !ok {
			unresolved = append(unresolved, h)
		}
	}

	if len(unresolved) == 0 {
		return 0
	}

	idx := newVideoIndex(catalogVideos)
	tolerance := float64(s.cfg.MediaSync.DurationToleranceS)
	if tolerance <= 0 {
		tolerance = 1
	}

	resolved := 0
	for _, batch := range chunk(unresolved, s.cfg.MediaSync.DetailBatchSize) {
		if err := s.limiter.Wait(ctx); err != nil {
			logrus.WithError(err).Warn("media: throttle interrompido, derivativos restantes ficam para a próxima sincronização")
			break
		}

		derivatives, err := s.meta.GetVideosByIDs(batch)
		if err != nil {
			logrus.WithError(err).Warn("media: lote de metadados de derivativos falhou, prosseguindo")
			continue
		}

		for _, d := range derivatives {
			result := idx.match(d.Title, d.Length, tolerance)
			if !result.Matched {
				logrus.WithFields(logrus.Fields{
					"derivative_id": d.ID,
					"title":         d.Title,
				}).Debug("media: derivativo sem casamento, permanece irresoluto")
				continue
			}

			if result.Confidence < 0.9 {
				logrus.WithFields(logrus.Fields{
					"derivative_id": d.ID,
					"catalog_id":    result.CatalogID,
					"tier":          result.Tier.String(),
					"confidence":    result.Confidence,
				}).Info("media: casamento de baixa confiança, revisar se necessário")
			}

			if _, err := s.metricRowRepo.RewriteMediaHash(ownerID, account.ExternalID, d.ID, result.CatalogID); err != nil {
				logrus.WithError(err).WithField("derivative_id", d.ID).Warn("media: falha ao reescrever hash derivativo")
				continue
			}
			resolved++
		}
	}

	return resolved
}

// chunk divide ids em lotes de tamanho fixo
func chunk(items []string, size int) [][]string {
	if size <= 0 {
		size = 50
	}

	batches := make([][]string, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[start:end])
	}
	return batches
}

// stateCount acumula a contagem de inventário: no delta soma os novos ao que
// já era conhecido, no full a listagem completa é a própria contagem
func stateCount(prev *domain.SyncState, fetched int, image bool) int {
	if prev == nil {
		return fetched
	}
	if image {
		return prev.ImageCount + fetched
	}
	return prev.VideoCount + fetched
}
