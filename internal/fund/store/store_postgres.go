package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"fundtrack/internal/fund"
	"fundtrack/pkg/platform/sentinel"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// PostgresStore persists fund records in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore constructs a PostgreSQL-backed fund store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the fund tables if missing and seeds the fund_type
// lookup. Safe to run on every startup.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS fund_type (
			code INTEGER PRIMARY KEY,
			name TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS fund (
			code            TEXT PRIMARY KEY,
			name            TEXT NOT NULL,
			tax_id          TEXT NOT NULL,
			type_code       INTEGER NOT NULL REFERENCES fund_type (code),
			net_asset_value NUMERIC(20,8)
		);`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create fund schema: %w", err)
	}
	for _, t := range seedTypes {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO fund_type (code, name) VALUES ($1, $2) ON CONFLICT (code) DO NOTHING`,
			t.Code, t.Name)
		if err != nil {
			return fmt.Errorf("seed fund type %d: %w", t.Code, err)
		}
	}
	return nil
}

const fundColumns = `
	f.code, f.name, f.tax_id, f.type_code, f.net_asset_value, t.name AS type_name`

func (s *PostgresStore) ListAll(ctx context.Context) ([]*fund.Fund, error) {
	query := `
		SELECT ` + fundColumns + `
		FROM fund f
		INNER JOIN fund_type t ON t.code = f.type_code`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list funds: %w", err)
	}
	defer rows.Close()

	funds := make([]*fund.Fund, 0)
	for rows.Next() {
		f, err := scanFund(rows)
		if err != nil {
			return nil, err
		}
		funds = append(funds, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list funds: %w", err)
	}
	return funds, nil
}

func (s *PostgresStore) FindByCode(ctx context.Context, code string) (*fund.Fund, error) {
	query := `
		SELECT ` + fundColumns + `
		FROM fund f
		INNER JOIN fund_type t ON t.code = f.type_code
		WHERE f.code = $1`

	f, err := scanFund(s.db.QueryRowContext(ctx, query, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *PostgresStore) Create(ctx context.Context, f *fund.Fund) error {
	query := `
		INSERT INTO fund (code, name, tax_id, type_code, net_asset_value)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := s.db.ExecContext(ctx, query,
		f.Code, f.Name, f.TaxID, f.TypeCode, navParam(f.NetAssetValue))
	if err != nil {
		if constraint := pqConstraint(err); constraint != nil {
			return constraint
		}
		return fmt.Errorf("create fund %s: %w", f.Code, err)
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, code string, f *fund.Fund) error {
	query := `
		UPDATE fund
		SET name = $2, tax_id = $3, type_code = $4, net_asset_value = $5
		WHERE code = $1`

	_, err := s.db.ExecContext(ctx, query,
		code, f.Name, f.TaxID, f.TypeCode, navParam(f.NetAssetValue))
	if err != nil {
		if constraint := pqConstraint(err); constraint != nil {
			return constraint
		}
		return fmt.Errorf("update fund %s: %w", code, err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, code string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM fund WHERE code = $1`, code); err != nil {
		return fmt.Errorf("delete fund %s: %w", code, err)
	}
	return nil
}

func (s *PostgresStore) AdjustNetAssetValue(ctx context.Context, code string, delta decimal.Decimal) error {
	query := `
		UPDATE fund
		SET net_asset_value = COALESCE(net_asset_value, 0) + $2
		WHERE code = $1`

	if _, err := s.db.ExecContext(ctx, query, code, delta.String()); err != nil {
		return fmt.Errorf("adjust net asset value of fund %s: %w", code, err)
	}
	return nil
}

func (s *PostgresStore) ListTypes(ctx context.Context) ([]*fund.Type, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT code, name FROM fund_type ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list fund types: %w", err)
	}
	defer rows.Close()

	types := make([]*fund.Type, 0)
	for rows.Next() {
		var t fund.Type
		if err := rows.Scan(&t.Code, &t.Name); err != nil {
			return nil, fmt.Errorf("scan fund type: %w", err)
		}
		types = append(types, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list fund types: %w", err)
	}
	return types, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFund(row rowScanner) (*fund.Fund, error) {
	var f fund.Fund
	var nav sql.NullString

	if err := row.Scan(&f.Code, &f.Name, &f.TaxID, &f.TypeCode, &nav, &f.TypeName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan fund: %w", err)
	}
	if nav.Valid {
		value, err := decimal.NewFromString(nav.String)
		if err != nil {
			return nil, fmt.Errorf("parse net_asset_value: %w", err)
		}
		f.NetAssetValue = &value
	}
	return &f, nil
}

// navParam renders the nullable net asset value for parameter binding.
func navParam(nav *decimal.Decimal) any {
	if nav == nil {
		return nil
	}
	return nav.String()
}

// pqConstraint translates constraint violations into store-level facts, or
// returns nil for everything else.
func pqConstraint(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}
	switch pqErr.Code {
	case pqUniqueViolation:
		return fmt.Errorf("fund code taken: %w", sentinel.ErrConflict)
	case pqForeignKeyViolation:
		return ErrTypeNotFound
	default:
		return nil
	}
}
