package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

const (
	accountsTable        = "accounts a"
	businessManagerTable = "business_manager bm"
)

type AccountRepository interface {
	GetAccountByID(accountID string) (*domain.AdAccount, error)
	GetAccountByExternalID(accountExternalID string) (*domain.AdAccount, error)
	ListAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error)
	ListAccountsMap() (map[string]struct{}, error)
	SaveOrUpdate(accounts []*domain.AdAccount, businessManagerIDs map[string]string) error
	SaveOrUpdateBusinessManager(bms []*domain.BusinessManager) (map[string]string, error)
	UpdateAccount(account *domain.UpdateAdAccountRequest) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

const accountColumns = "a.id, a.external_id, a.name, a.nickname, a.status, a.origin, a.owner_id, a.business_id, a.event_values"

func (a *accountRepository) GetAccountByExternalID(accountExternalID string) (*domain.AdAccount, error) {
	return a.getAccount(squirrel.Eq{"a.external_id": accountExternalID})
}

func (a *accountRepository) GetAccountByID(accountID string) (*domain.AdAccount, error) {
	return a.getAccount(squirrel.Eq{"a.id": accountID})
}

func (a *accountRepository) getAccount(whereClause squirrel.Eq) (*domain.AdAccount, error) {
	accountsSQL, accountsArgs, err := squirrel.
		Select(accountColumns).
		From(accountsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := a.conn.QueryRow(accountsSQL, accountsArgs...)

	acc, err := deserializeAccount(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return acc, nil
}

func deserializeAccount(scan func(dest ...any) error) (*domain.AdAccount, error) {
	acc := &domain.AdAccount{}
	var eventValuesJSON []byte

	if err := scan(
		&acc.ID,
		&acc.ExternalID,
		&acc.Name,
		&acc.Nickname,
		&acc.Status,
		&acc.Origin,
		&acc.OwnerID,
		&acc.BusinessManagerID,
		&eventValuesJSON,
	); err != nil {
		return nil, err
	}

	if len(eventValuesJSON) > 0 {
		if err := json.Unmarshal(eventValuesJSON, &acc.EventValues); err != nil {
			logrus.WithError(err).WithField("account_id", acc.ID).Warn("Erro ao decodificar event_values da conta")
		}
	}

	return acc, nil
}

func (a *accountRepository) ListAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error) {
	builder := squirrel.
		Select(accountColumns).
		From(accountsTable).
		OrderBy("a.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		builder = builder.Where(squirrel.Eq{"a.status": availableStatus})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := a.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		acc, err := deserializeAccount(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conta: %w", err)
		}
		accounts = append(accounts, acc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

// ListAccountsMap retorna o conjunto de ids externos já conhecidos, usado na
// descoberta de contas para não duplicar
func (a *accountRepository) ListAccountsMap() (map[string]struct{}, error) {
	query, args, err := squirrel.
		Select("a.external_id").
		From(accountsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := a.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[string]struct{})
	for rows.Next() {
		var externalID string
		if err := rows.Scan(&externalID); err != nil {
			return nil, err
		}
		ids[externalID] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

func (a *accountRepository) SaveOrUpdate(accounts []*domain.AdAccount, businessManagerIDs map[string]string) error {
	if len(accounts) == 0 {
		return nil
	}

	builder := squirrel.StatementBuilder.
		Insert("accounts").
		Columns("id", "external_id", "name", "status", "origin", "business_id").
		PlaceholderFormat(squirrel.Dollar)

	for _, acc := range accounts {
		businessID := acc.BusinessManagerID
		if internalID, ok := businessManagerIDs[acc.BusinessManagerID]; ok {
			businessID = internalID
		}

		builder = builder.Values(
			acc.ID,
			acc.ExternalID,
			acc.Name,
			string(acc.Status),
			acc.Origin,
			businessID,
		)
	}

	builder = builder.Suffix(`
		ON CONFLICT (external_id) DO UPDATE SET
			name = EXCLUDED.name,
			business_id = EXCLUDED.business_id,
			updated_at = NOW()
	`)

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := a.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao salvar contas: %w", err)
	}

	return nil
}

func (a *accountRepository) SaveOrUpdateBusinessManager(bms []*domain.BusinessManager) (map[string]string, error) {
	ids := make(map[string]string, len(bms))

	for _, bm := range bms {
		query, args, err := squirrel.StatementBuilder.
			Insert("business_manager").
			Columns("id", "external_id", "name", "origin").
			Values(bm.ID, bm.ExternalID, bm.Name, bm.Origin).
			Suffix(`
				ON CONFLICT (external_id) DO UPDATE SET
					name = EXCLUDED.name
				RETURNING id
			`).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("erro ao construir a query: %w", err)
		}

		var id string
		if err := a.conn.QueryRow(query, args...).Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao salvar business manager %s: %w", bm.ExternalID, err)
		}
		ids[bm.ExternalID] = id
	}

	return ids, nil
}

func (a *accountRepository) UpdateAccount(account *domain.UpdateAdAccountRequest) error {
	builder := squirrel.
		Update("accounts").
		Where(squirrel.Eq{"id": account.ID}).
		PlaceholderFormat(squirrel.Dollar)

	if account.Nickname != nil {
		builder = builder.Set("nickname", *account.Nickname)
	}

	if account.Status != nil {
		builder = builder.Set("status", *account.Status)
	}

	if account.EventValues != nil {
		eventValuesJSON, err := json.Marshal(*account.EventValues)
		if err != nil {
			return fmt.Errorf("erro ao serializar event_values: %w", err)
		}
		builder = builder.Set("event_values", eventValuesJSON)
	}

	builder = builder.Set("updated_at", squirrel.Expr("NOW()"))

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := a.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar conta: %w", err)
	}

	return nil
}
