//go:build integration

package store_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"fundtrack/internal/fund"
	"fundtrack/internal/fund/store"
	"fundtrack/pkg/platform/sentinel"
	"fundtrack/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = store.NewPostgresStore(s.postgres.DB)
	s.Require().NoError(s.store.EnsureSchema(context.Background()))
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "fund"))
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func testFund(code string) *fund.Fund {
	return &fund.Fund{
		Code:     code,
		Name:     "Fund " + code,
		TaxID:    "00.000.000/0001-00",
		TypeCode: 1,
	}
}

func (s *PostgresStoreSuite) TestRoundTripWithTypeName() {
	ctx := context.Background()

	in := testFund("X1")
	nav := dec("123.45")
	in.NetAssetValue = &nav
	s.Require().NoError(s.store.Create(ctx, in))

	got, err := s.store.FindByCode(ctx, "X1")
	s.Require().NoError(err)
	s.Equal("X1", got.Code)
	s.Equal("Fund X1", got.Name)
	s.Equal("00.000.000/0001-00", got.TaxID)
	s.Equal(1, got.TypeCode)
	s.Equal("RENDA FIXA", got.TypeName)
	s.Require().NotNil(got.NetAssetValue)
	s.True(got.NetAssetValue.Equal(dec("123.45")))
}

func (s *PostgresStoreSuite) TestNullNetAssetValueSurvivesRoundTrip() {
	ctx := context.Background()
	s.Require().NoError(s.store.Create(ctx, testFund("X1")))

	got, err := s.store.FindByCode(ctx, "X1")
	s.Require().NoError(err)
	s.Nil(got.NetAssetValue, "unset value must stay distinct from zero")
}

func (s *PostgresStoreSuite) TestFindMissing() {
	_, err := s.store.FindByCode(context.Background(), "NOPE")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestDuplicateCreate() {
	ctx := context.Background()
	s.Require().NoError(s.store.Create(ctx, testFund("X1")))

	err := s.store.Create(ctx, testFund("X1"))
	s.ErrorIs(err, sentinel.ErrConflict)
}

func (s *PostgresStoreSuite) TestCreateWithUnknownType() {
	f := testFund("X1")
	f.TypeCode = 99
	err := s.store.Create(context.Background(), f)
	s.ErrorIs(err, store.ErrTypeNotFound)
}

func (s *PostgresStoreSuite) TestUpdateOverwritesAllButCode() {
	ctx := context.Background()
	s.Require().NoError(s.store.Create(ctx, testFund("X1")))

	upd := testFund("X1")
	upd.Name = "Renamed"
	upd.TaxID = "11.111.111/0001-11"
	upd.TypeCode = 2
	nav := dec("9.99")
	upd.NetAssetValue = &nav
	s.Require().NoError(s.store.Update(ctx, "X1", upd))

	got, err := s.store.FindByCode(ctx, "X1")
	s.Require().NoError(err)
	s.Equal("Renamed", got.Name)
	s.Equal("11.111.111/0001-11", got.TaxID)
	s.Equal("ACOES", got.TypeName)
	s.Require().NotNil(got.NetAssetValue)
	s.True(got.NetAssetValue.Equal(dec("9.99")))
}

func (s *PostgresStoreSuite) TestUpdateMissingIsNoOp() {
	s.Require().NoError(s.store.Update(context.Background(), "MISSING", testFund("MISSING")))
}

func (s *PostgresStoreSuite) TestDelete() {
	ctx := context.Background()
	s.Require().NoError(s.store.Create(ctx, testFund("X1")))
	s.Require().NoError(s.store.Delete(ctx, "X1"))

	_, err := s.store.FindByCode(ctx, "X1")
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.Require().NoError(s.store.Delete(ctx, "X1"))
}

func (s *PostgresStoreSuite) TestAdjustCoalescesNullToZero() {
	ctx := context.Background()
	s.Require().NoError(s.store.Create(ctx, testFund("X1")))

	s.Require().NoError(s.store.AdjustNetAssetValue(ctx, "X1", dec("100.00")))

	got, err := s.store.FindByCode(ctx, "X1")
	s.Require().NoError(err)
	s.Require().NotNil(got.NetAssetValue)
	s.True(got.NetAssetValue.Equal(dec("100.00")))
}

// TestConcurrentAdjustments verifies the relative-delta statement is atomic:
// concurrent increments never lose updates the way read-modify-write would.
func (s *PostgresStoreSuite) TestConcurrentAdjustments() {
	ctx := context.Background()
	s.Require().NoError(s.store.Create(ctx, testFund("X1")))

	const goroutines = 20
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.NoError(s.store.AdjustNetAssetValue(ctx, "X1", dec("1.50")))
		}()
	}
	wg.Wait()

	got, err := s.store.FindByCode(ctx, "X1")
	s.Require().NoError(err)
	s.Require().NotNil(got.NetAssetValue)
	s.True(got.NetAssetValue.Equal(dec("30.00")), "got %s", got.NetAssetValue)
}

func (s *PostgresStoreSuite) TestListAll() {
	ctx := context.Background()
	s.Require().NoError(s.store.Create(ctx, testFund("A1")))
	f := testFund("B2")
	f.TypeCode = 3
	s.Require().NoError(s.store.Create(ctx, f))

	funds, err := s.store.ListAll(ctx)
	s.Require().NoError(err)
	s.Len(funds, 2)
}

func (s *PostgresStoreSuite) TestListTypes() {
	types, err := s.store.ListTypes(context.Background())
	s.Require().NoError(err)
	s.Require().Len(types, 4)
	s.Equal("RENDA FIXA", types[0].Name)
}
