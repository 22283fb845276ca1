package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

const (
	metricRowsTable = "metric_rows"
)

type MetricRowRepository interface {
	// ReplaceWindow apaga todas as linhas da janela para as grafias de id
	// informadas e insere o novo conjunto, tudo em uma única transação
	ReplaceWindow(ctx context.Context, accountIDs []string, window domain.DateWindow, rows []*domain.MetricRow) (int, error)
	ListVideoHashes(ownerID, accountID string) ([]string, error)
	RewriteMediaHash(ownerID, accountID, fromHash, toHash string) (int64, error)
	UpdateMediaURLByHash(accountID, hash, mediaURL string) (int64, error)
}

type metricRowRepository struct {
	conn      *postgres.Connection
	batchSize int
}

func NewMetricRowRepository(conn *postgres.Connection, batchSize int) MetricRowRepository {
	if batchSize <= 0 {
		batchSize = 1000
	}
	return &metricRowRepository{
		conn:      conn,
		batchSize: batchSize,
	}
}

func (r *metricRowRepository) ReplaceWindow(ctx context.Context, accountIDs []string, window domain.DateWindow, rows []*domain.MetricRow) (int, error) {
	inserted := 0

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deleteSQL, deleteArgs, err := squirrel.
			Delete(metricRowsTable).
			Where(squirrel.Eq{"account_id": accountIDs}).
			Where(squirrel.GtOrEq{"date": window.StartDate.Format(time.DateOnly)}).
			Where(squirrel.LtOrEq{"date": window.EndDate.Format(time.DateOnly)}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query de delete: %w", err)
		}

		if _, err := tx.Exec(deleteSQL, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao apagar a janela de métricas: %w", err)
		}

		for start := 0; start < len(rows); start += r.batchSize {
			end := start + r.batchSize
			if end > len(rows) {
				end = len(rows)
			}

			if err := r.insertBatch(tx, rows[start:end]); err != nil {
				return fmt.Errorf("erro ao inserir lote de métricas [%d:%d]: %w", start, end, err)
			}
			inserted += end - start
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

func (r *metricRowRepository) insertBatch(tx *sql.Tx, rows []*domain.MetricRow) error {
	if len(rows) == 0 {
		return nil
	}

	builder := squirrel.StatementBuilder.
		Insert(metricRowsTable).
		Columns(
			"owner_id", "account_id", "date",
			"campaign_id", "campaign_name", "campaign_status",
			"adset_id", "adset_name", "adset_status",
			"ad_id", "ad_name", "ad_status",
			"impressions", "clicks", "spend",
			"result_count", "result_type", "result_value",
			"daily_budget", "lifetime_budget",
			"media_type", "media_hash", "media_url",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, row := range rows {
		builder = builder.Values(
			row.OwnerID,
			row.AccountID,
			row.Date.Format(time.DateOnly),
			row.CampaignID,
			row.CampaignName,
			string(row.CampaignStatus),
			row.AdsetID,
			row.AdsetName,
			string(row.AdsetStatus),
			row.AdID,
			row.AdName,
			string(row.AdStatus),
			row.Impressions,
			row.Clicks,
			row.Spend,
			row.ResultCount,
			row.ResultType,
			row.ResultValue,
			row.DailyBudget,
			row.LifetimeBudget,
			row.MediaType,
			row.MediaHash,
			row.MediaURL,
		)
	}

	insertSQL, insertArgs, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query de insert: %w", err)
	}

	if _, err := tx.Exec(insertSQL, insertArgs...); err != nil {
		return err
	}

	return nil
}

// ListVideoHashes retorna os hashes de mídia distintos presentes em linhas de
// métricas de vídeo da conta. É a entrada da resolução de derivativos.
func (r *metricRowRepository) ListVideoHashes(ownerID, accountID string) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT media_hash").
		From(metricRowsTable).
		Where(squirrel.Eq{"owner_id": ownerID, "account_id": accountID, "media_type": string(domain.MediaTypeVideo)}).
		Where(squirrel.NotEq{"media_hash": ""}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	queryRows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer queryRows.Close()

	hashes := make([]string, 0)
	for queryRows.Next() {
		var hash string
		if err := queryRows.Scan(&hash); err != nil {
			return nil, fmt.Errorf("erro ao escanear hash de mídia: %w", err)
		}
		hashes = append(hashes, hash)
	}

	if err := queryRows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return hashes, nil
}

// RewriteMediaHash troca o hash derivativo pelo id canônico do catálogo em
// todas as linhas da conta. Reexecutar com um hash já resolvido não afeta
// nenhuma linha.
func (r *metricRowRepository) RewriteMediaHash(ownerID, accountID, fromHash, toHash string) (int64, error) {
	query, args, err := squirrel.
		Update(metricRowsTable).
		Set("media_hash", toHash).
		Where(squirrel.Eq{"owner_id": ownerID, "account_id": accountID, "media_hash": fromHash}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao reescrever hash de mídia: %w", err)
	}

	return result.RowsAffected()
}

// UpdateMediaURLByHash denormaliza a URL do ativo nas linhas de métricas que
// o referenciam, evitando um join na leitura
func (r *metricRowRepository) UpdateMediaURLByHash(accountID, hash, mediaURL string) (int64, error) {
	query, args, err := squirrel.
		Update(metricRowsTable).
		Set("media_url", mediaURL).
		Where(squirrel.Eq{"account_id": accountID, "media_hash": hash}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao atualizar URL de mídia: %w", err)
	}

	return result.RowsAffected()
}
