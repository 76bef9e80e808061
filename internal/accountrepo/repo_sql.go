// Package accountrepo manages repository layer of bank accounts.
package accountrepo

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/bank-ledger/internal/domain"
	"github.com/go-petr/bank-ledger/internal/levels"
	"github.com/go-petr/bank-ledger/pkg/dbpkg"
	"github.com/go-petr/bank-ledger/pkg/errorspkg"
)

// RepoSQL facilitates bank account repository layer logic over any of the
// supported SQL dialects.
type RepoSQL struct {
	db      dbpkg.SQLInterface
	dialect Dialect
	levels  *levels.Policy
}

// NewRepoSQL returns bank account RepoSQL.
func NewRepoSQL(db dbpkg.SQLInterface, dialect Dialect, policy *levels.Policy) *RepoSQL {
	return &RepoSQL{
		db:      db,
		dialect: dialect,
		levels:  policy,
	}
}

// Reproduced exactly for compatibility with existing deployments.
const createTableQuery = `
CREATE TABLE IF NOT EXISTS bank_accounts (
	uuid VARCHAR(36) UNIQUE NOT NULL,
	name VARCHAR(36),
	coins DECIMAL(65,2),
	level INT,
	PRIMARY KEY (uuid)
)`

// EnsureSchema creates the backing table if it is absent.
func (r *RepoSQL) EnsureSchema(ctx context.Context) error {
	l := zerolog.Ctx(ctx)

	if _, err := r.db.ExecContext(ctx, createTableQuery); err != nil {
		l.Error().Err(err).Send()
		return err
	}

	return nil
}

const readAllQuery = `
SELECT uuid, name, coins, level FROM bank_accounts
`

// ReadAll returns every persisted bank account.
func (r *RepoSQL) ReadAll(ctx context.Context) ([]domain.Account, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, readAllQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Account{}

	for rows.Next() {
		a, err := r.scanAccount(rows.Scan)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, a)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const getQuery = `
SELECT uuid, name, coins, level FROM bank_accounts WHERE uuid = ?
`

// Get returns the persisted bank account with the given identity.
func (r *RepoSQL) Get(ctx context.Context, id uuid.UUID) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, r.dialect.Rebind(getQuery), id.String())

	a, err := r.scanAccount(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

// Upsert inserts or updates the account row keyed by identity and returns
// the number of affected rows. Zero affected rows is a failure.
func (r *RepoSQL) Upsert(ctx context.Context, a domain.Account) (int64, error) {
	l := zerolog.Ctx(ctx)

	tier := a.LevelTier()
	if tier == 0 {
		tier = levels.DefaultTier
	}

	res, err := r.db.ExecContext(ctx, r.dialect.UpsertQuery(),
		a.ID.String(), a.Name, a.Balance, tier)
	if err != nil {
		l.Error().Err(err).Send()
		return 0, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return 0, err
	}

	if rows == 0 {
		return 0, domain.ErrNoRowsAffected
	}

	return rows, nil
}

const deleteQuery = `
DELETE FROM bank_accounts WHERE uuid = ?
`

// Delete removes the account row with the given identity.
func (r *RepoSQL) Delete(ctx context.Context, id uuid.UUID) error {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(deleteQuery), id.String())
	if err != nil {
		l.Error().Err(err).Send()
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return err
	}

	if rows == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

type scanFunc func(dest ...interface{}) error

func (r *RepoSQL) scanAccount(scan scanFunc) (domain.Account, error) {
	var (
		id      string
		name    sql.NullString
		coins   decimal.NullDecimal
		tier    sql.NullInt64
		account domain.Account
	)

	if err := scan(&id, &name, &coins, &tier); err != nil {
		return account, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return account, err
	}

	account = domain.NewAccount(parsed)

	if name.Valid {
		account.Name = name.String
	}

	if coins.Valid {
		account.Balance = coins.Decimal
	}

	if tier.Valid {
		level := r.levels.Resolve(int(tier.Int64))
		account.Level = &level
	}

	return account, nil
}
