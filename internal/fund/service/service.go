// Package service orchestrates fund lifecycle operations: validation,
// existence checks, the net-asset-value movement rule, and translation of
// store facts into coded domain errors.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"fundtrack/internal/fund"
	"fundtrack/internal/fund/store"
	"fundtrack/internal/platform/metrics"
	dErrors "fundtrack/pkg/domain-errors"
	"fundtrack/pkg/platform/sentinel"
)

//go:generate mockgen -source=service.go -destination=mocks/store-mocks.go -package=mocks Store

// Store is the persistence surface the service needs. Declared here so tests
// can mock exactly this contract.
type Store interface {
	ListAll(ctx context.Context) ([]*fund.Fund, error)
	FindByCode(ctx context.Context, code string) (*fund.Fund, error)
	Create(ctx context.Context, f *fund.Fund) error
	Update(ctx context.Context, code string, f *fund.Fund) error
	Delete(ctx context.Context, code string) error
	AdjustNetAssetValue(ctx context.Context, code string, delta decimal.Decimal) error
	ListTypes(ctx context.Context) ([]*fund.Type, error)
}

// Service implements the fund domain operations.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func New(store Store, logger *slog.Logger, metrics *metrics.Metrics) *Service {
	return &Service{store: store, logger: logger, metrics: metrics}
}

func (s *Service) ListFunds(ctx context.Context) ([]*fund.Fund, error) {
	funds, err := s.store.ListAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list funds", "error", err)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list funds")
	}
	return funds, nil
}

func (s *Service) GetFund(ctx context.Context, code string) (*fund.Fund, error) {
	if strings.TrimSpace(code) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "fund code is required")
	}

	f, err := s.store.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "fund "+code+" not found")
		}
		s.logger.ErrorContext(ctx, "failed to get fund", "code", code, "error", err)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to get fund")
	}
	return f, nil
}

func (s *Service) CreateFund(ctx context.Context, f *fund.Fund) error {
	if err := validateFund(f); err != nil {
		return err
	}

	_, err := s.store.FindByCode(ctx, f.Code)
	switch {
	case err == nil:
		return dErrors.New(dErrors.CodeConflict, "fund "+f.Code+" already exists")
	case !errors.Is(err, sentinel.ErrNotFound):
		s.logger.ErrorContext(ctx, "failed to check for existing fund", "code", f.Code, "error", err)
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create fund")
	}

	if err := s.store.Create(ctx, f); err != nil {
		switch {
		case errors.Is(err, sentinel.ErrConflict):
			// Lost a race with a concurrent create of the same code.
			return dErrors.New(dErrors.CodeConflict, "fund "+f.Code+" already exists")
		case errors.Is(err, store.ErrTypeNotFound):
			return dErrors.New(dErrors.CodeValidation, "unknown fund type")
		}
		s.logger.ErrorContext(ctx, "failed to create fund", "code", f.Code, "error", err)
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create fund")
	}

	s.logger.InfoContext(ctx, "fund created", "code", f.Code, "type_code", f.TypeCode)
	if s.metrics != nil {
		s.metrics.FundsCreated.Inc()
	}
	return nil
}

func (s *Service) UpdateFund(ctx context.Context, code string, f *fund.Fund) error {
	if strings.TrimSpace(code) == "" {
		return dErrors.New(dErrors.CodeValidation, "fund code is required")
	}
	if err := validateFund(f); err != nil {
		return err
	}
	if err := s.requireFund(ctx, code); err != nil {
		return err
	}

	if err := s.store.Update(ctx, code, f); err != nil {
		if errors.Is(err, store.ErrTypeNotFound) {
			return dErrors.New(dErrors.CodeValidation, "unknown fund type")
		}
		s.logger.ErrorContext(ctx, "failed to update fund", "code", code, "error", err)
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update fund")
	}

	s.logger.InfoContext(ctx, "fund updated", "code", code)
	return nil
}

func (s *Service) DeleteFund(ctx context.Context, code string) error {
	if strings.TrimSpace(code) == "" {
		return dErrors.New(dErrors.CodeValidation, "fund code is required")
	}
	if err := s.requireFund(ctx, code); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, code); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete fund", "code", code, "error", err)
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete fund")
	}

	s.logger.InfoContext(ctx, "fund deleted", "code", code)
	return nil
}

// MoveNetAssetValue applies a signed adjustment to a fund's net asset value.
// The current value is read first to enforce the never-negative rule, then
// the write is issued as a relative delta so a value that changed between the
// read and the write is still adjusted, not overwritten. Two concurrent
// movements can both pass the guard against the same snapshot; see DESIGN.md.
func (s *Service) MoveNetAssetValue(ctx context.Context, code string, amount decimal.Decimal) error {
	if strings.TrimSpace(code) == "" {
		return dErrors.New(dErrors.CodeValidation, "fund code is required")
	}

	existing, err := s.GetFund(ctx, code)
	if err != nil {
		return err
	}

	current := decimal.Zero
	if existing.NetAssetValue != nil {
		current = *existing.NetAssetValue
	}
	if current.Add(amount).IsNegative() {
		return dErrors.New(dErrors.CodeInvariantViolation, "operation would make net asset value negative")
	}

	if err := s.store.AdjustNetAssetValue(ctx, code, amount); err != nil {
		s.logger.ErrorContext(ctx, "failed to adjust net asset value", "code", code, "amount", amount.String(), "error", err)
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to adjust net asset value")
	}

	s.logger.InfoContext(ctx, "net asset value adjusted", "code", code, "amount", amount.String())
	if s.metrics != nil {
		s.metrics.MovementsApplied.Inc()
	}
	return nil
}

func (s *Service) ListTypes(ctx context.Context) ([]*fund.Type, error) {
	types, err := s.store.ListTypes(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list fund types", "error", err)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list fund types")
	}
	return types, nil
}

// requireFund translates a missing row into CodeNotFound before a mutation.
func (s *Service) requireFund(ctx context.Context, code string) error {
	_, err := s.store.FindByCode(ctx, code)
	if err == nil {
		return nil
	}
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "fund "+code+" not found")
	}
	s.logger.ErrorContext(ctx, "failed to check fund existence", "code", code, "error", err)
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check fund existence")
}

func validateFund(f *fund.Fund) error {
	if f == nil {
		return dErrors.New(dErrors.CodeValidation, "fund payload is required")
	}
	if strings.TrimSpace(f.Code) == "" {
		return dErrors.New(dErrors.CodeValidation, "fund code is required")
	}
	if strings.TrimSpace(f.Name) == "" {
		return dErrors.New(dErrors.CodeValidation, "fund name is required")
	}
	if strings.TrimSpace(f.TaxID) == "" {
		return dErrors.New(dErrors.CodeValidation, "fund tax id is required")
	}
	if f.TypeCode <= 0 {
		return dErrors.New(dErrors.CodeValidation, "fund type code must be greater than zero")
	}
	return nil
}
