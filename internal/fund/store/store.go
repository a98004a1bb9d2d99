// Package store persists fund records. Implementations come in pairs: a
// postgres store for real deployments and a memory store used when no
// database is configured and in unit tests. Both honor the same contracts,
// signalling infrastructure facts through pkg/platform/sentinel.
package store

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"fundtrack/internal/fund"
)

// ErrTypeNotFound is returned by Create/Update when the fund's type code
// does not reference a fund_type row. It is a referential-integrity fact,
// kept separate from sentinel.ErrConflict so services can report it as bad
// input rather than a duplicate.
var ErrTypeNotFound = errors.New("fund type not found")

// Store is the persistence gateway for fund records.
//
// FindByCode returns sentinel.ErrNotFound when no row matches; Create returns
// sentinel.ErrConflict when the code is already taken. Update and Delete are
// no-ops on a missing code: existence is the caller's responsibility, and the
// service layer checks it before calling either.
type Store interface {
	ListAll(ctx context.Context) ([]*fund.Fund, error)
	FindByCode(ctx context.Context, code string) (*fund.Fund, error)
	Create(ctx context.Context, f *fund.Fund) error
	Update(ctx context.Context, code string, f *fund.Fund) error
	Delete(ctx context.Context, code string) error
	// AdjustNetAssetValue applies net_asset_value = COALESCE(net_asset_value, 0) + delta
	// as a single atomic statement, so the stored value stays consistent even
	// when the caller's read of the current value was stale.
	AdjustNetAssetValue(ctx context.Context, code string, delta decimal.Decimal) error
	ListTypes(ctx context.Context) ([]*fund.Type, error)
}

// seedTypes are the lookup rows both stores guarantee exist at startup.
var seedTypes = []*fund.Type{
	{Code: 1, Name: "RENDA FIXA"},
	{Code: 2, Name: "ACOES"},
	{Code: 3, Name: "MULTIMERCADO"},
	{Code: 4, Name: "CAMBIAL"},
}
