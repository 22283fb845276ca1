package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

const (
	syncStatesTable = "sync_states"
)

type SyncStateRepository interface {
	GetByAccountID(accountID string) (*domain.SyncState, error)
	SaveOrUpdate(state *domain.SyncState) error
}

type syncStateRepository struct {
	conn *postgres.Connection
}

func NewSyncStateRepository(conn *postgres.Connection) SyncStateRepository {
	return &syncStateRepository{
		conn: conn,
	}
}

func (r *syncStateRepository) GetByAccountID(accountID string) (*domain.SyncState, error) {
	query, args, err := squirrel.
		Select("account_id, last_synced_at, image_count, video_count, updated_at").
		From(syncStatesTable).
		Where(squirrel.Eq{"account_id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	state := &domain.SyncState{}
	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(
		&state.AccountID,
		&state.LastSyncedAt,
		&state.ImageCount,
		&state.VideoCount,
		&state.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear estado de sincronização: %w", err)
	}

	return state, nil
}

func (r *syncStateRepository) SaveOrUpdate(state *domain.SyncState) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(syncStatesTable).
		Columns("account_id", "last_synced_at", "image_count", "video_count").
		Values(state.AccountID, state.LastSyncedAt, state.ImageCount, state.VideoCount).
		Suffix(`
			ON CONFLICT (account_id) DO UPDATE SET
				last_synced_at = EXCLUDED.last_synced_at,
				image_count = EXCLUDED.image_count,
				video_count = EXCLUDED.video_count,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao salvar estado de sincronização: %w", err)
	}

	return nil
}
