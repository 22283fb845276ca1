package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

const (
	catalogAssetsTable = "catalog_assets"
)

type CatalogAssetRepository interface {
	UpsertBatch(assets []*domain.CatalogAsset) (int, error)
	ListKnownHashes(accountID string, mediaType domain.MediaType) (map[string]struct{}, error)
	ListVideos(accountID string) ([]*domain.CatalogAsset, error)
}

type catalogAssetRepository struct {
	conn      *postgres.Connection
	batchSize int
}

func NewCatalogAssetRepository(conn *postgres.Connection, batchSize int) CatalogAssetRepository {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &catalogAssetRepository{
		conn:      conn,
		batchSize: batchSize,
	}
}

// UpsertBatch insere ou atualiza os ativos em lotes. O catálogo nunca é
// apagado pelo motor de sincronização, apenas acrescido e atualizado.
func (r *catalogAssetRepository) UpsertBatch(assets []*domain.CatalogAsset) (int, error) {
	upserted := 0

	for start := 0; start < len(assets); start += r.batchSize {
		end := start + r.batchSize
		if end > len(assets) {
			end = len(assets)
		}

		if err := r.upsert(assets[start:end]); err != nil {
			return upserted, fmt.Errorf("erro ao upsert de lote de ativos [%d:%d]: %w", start, end, err)
		}
		upserted += end - start
	}

	return upserted, nil
}

func (r *catalogAssetRepository) upsert(assets []*domain.CatalogAsset) error {
	if len(assets) == 0 {
		return nil
	}

	builder := squirrel.StatementBuilder.
		Insert(catalogAssetsTable).
		Columns("owner_id", "account_id", "hash", "type", "name", "width", "height", "duration", "url", "thumbnail_url", "synced_at").
		PlaceholderFormat(squirrel.Dollar)

	now := time.Now()
	for _, asset := range assets {
		builder = builder.Values(
			asset.OwnerID,
			asset.AccountID,
			asset.Hash,
			string(asset.Type),
			asset.Name,
			asset.Width,
			asset.Height,
			asset.Duration,
			asset.URL,
			asset.ThumbnailURL,
			now,
		)
	}

	builder = builder.Suffix(`
		ON CONFLICT (account_id, hash) DO UPDATE SET
			name = EXCLUDED.name,
			width = EXCLUDED.width,
			height = EXCLUDED.height,
			duration = EXCLUDED.duration,
			url = EXCLUDED.url,
			thumbnail_url = EXCLUDED.thumbnail_url,
			synced_at = EXCLUDED.synced_at
	`)

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return err
	}

	return nil
}

func (r *catalogAssetRepository) ListKnownHashes(accountID string, mediaType domain.MediaType) (map[string]struct{}, error) {
	query, args, err := squirrel.
		Select("hash").
		From(catalogAssetsTable).
		Where(squirrel.Eq{"account_id": accountID, "type": string(mediaType)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	hashes := make(map[string]struct{})
	for rows.Next() {
		var hash string
		if err := rows.Scan(&hash); err != nil {
			return nil, fmt.Errorf("erro ao escanear hash: %w", err)
		}
		hashes[hash] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return hashes, nil
}

func (r *catalogAssetRepository) ListVideos(accountID string) ([]*domain.CatalogAsset, error) {
	query, args, err := squirrel.
		Select("id, owner_id, account_id, hash, type, name, width, height, duration, url, thumbnail_url, synced_at").
		From(catalogAssetsTable).
		Where(squirrel.Eq{"account_id": accountID, "type": string(domain.MediaTypeVideo)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	assets := make([]*domain.CatalogAsset, 0)
	for rows.Next() {
		asset := &domain.CatalogAsset{}
		if err := rows.Scan(
			&asset.ID,
			&asset.OwnerID,
			&asset.AccountID,
			&asset.Hash,
			&asset.Type,
			&asset.Name,
			&asset.Width,
			&asset.Height,
			&asset.Duration,
			&asset.URL,
			&asset.ThumbnailURL,
			&asset.SyncedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear ativo do catálogo: %w", err)
		}
		assets = append(assets, asset)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return assets, nil
}
