package store

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"fundtrack/internal/fund"
	"fundtrack/pkg/platform/sentinel"
)

// MemoryStore keeps fund records in a mutex-guarded map. It enforces the same
// contracts as the postgres store, including the type_code reference check,
// so services behave identically against either.
type MemoryStore struct {
	mu    sync.RWMutex
	funds map[string]*fund.Fund
	types map[int]string
	// order preserves insertion order for ListAll, matching the unspecified
	// but stable ordering of a fresh table scan.
	order []string
}

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		funds: make(map[string]*fund.Fund),
		types: make(map[int]string),
	}
	for _, t := range seedTypes {
		s.types[t.Code] = t.Name
	}
	return s
}

func (s *MemoryStore) ListAll(_ context.Context) ([]*fund.Fund, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	funds := make([]*fund.Fund, 0, len(s.order))
	for _, code := range s.order {
		funds = append(funds, s.clone(s.funds[code]))
	}
	return funds, nil
}

func (s *MemoryStore) FindByCode(_ context.Context, code string) (*fund.Fund, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.funds[code]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return s.clone(f), nil
}

func (s *MemoryStore) Create(_ context.Context, f *fund.Fund) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.funds[f.Code]; exists {
		return sentinel.ErrConflict
	}
	if _, ok := s.types[f.TypeCode]; !ok {
		return ErrTypeNotFound
	}
	stored := *f
	if f.NetAssetValue != nil {
		nav := *f.NetAssetValue
		stored.NetAssetValue = &nav
	}
	s.funds[f.Code] = &stored
	s.order = append(s.order, f.Code)
	return nil
}

func (s *MemoryStore) Update(_ context.Context, code string, f *fund.Fund) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.funds[code]
	if !ok {
		// Existence is the caller's responsibility; a missing code is a no-op.
		return nil
	}
	if _, ok := s.types[f.TypeCode]; !ok {
		return ErrTypeNotFound
	}
	existing.Name = f.Name
	existing.TaxID = f.TaxID
	existing.TypeCode = f.TypeCode
	existing.NetAssetValue = nil
	if f.NetAssetValue != nil {
		nav := *f.NetAssetValue
		existing.NetAssetValue = &nav
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.funds[code]; !ok {
		return nil
	}
	delete(s.funds, code)
	for i, c := range s.order {
		if c == code {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) AdjustNetAssetValue(_ context.Context, code string, delta decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.funds[code]
	if !ok {
		return nil
	}
	current := decimal.Zero
	if f.NetAssetValue != nil {
		current = *f.NetAssetValue
	}
	next := current.Add(delta)
	f.NetAssetValue = &next
	return nil
}

func (s *MemoryStore) ListTypes(_ context.Context) ([]*fund.Type, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	types := make([]*fund.Type, 0, len(s.types))
	for code, name := range s.types {
		types = append(types, &fund.Type{Code: code, Name: name})
	}
	sort.Slice(types, func(i, j int) bool { return types[i].Code < types[j].Code })
	return types, nil
}

// clone copies a record with its joined type name so callers never alias
// store-owned state. Callers hold at least a read lock.
func (s *MemoryStore) clone(f *fund.Fund) *fund.Fund {
	out := *f
	if f.NetAssetValue != nil {
		nav := *f.NetAssetValue
		out.NetAssetValue = &nav
	}
	out.TypeName = s.types[f.TypeCode]
	return &out
}
