package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"fundtrack/internal/fund"
	"fundtrack/internal/fund/handler/mocks"
	dErrors "fundtrack/pkg/domain-errors"
)

type FundHandlerSuite struct {
	suite.Suite
	router      *chi.Mux
	mockService *mocks.MockService
}

func TestFundHandlerSuite(t *testing.T) {
	suite.Run(t, new(FundHandlerSuite))
}

func (s *FundHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.T().Cleanup(ctrl.Finish)
	s.mockService = mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.router = chi.NewRouter()
	New(s.mockService, logger).Register(s.router)
}

func (s *FundHandlerSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func sampleFund() *fund.Fund {
	nav := dec("1000.00")
	return &fund.Fund{
		Code:          "ITAU01",
		Name:          "Alpha Fund",
		TaxID:         "00.000.000/0001-00",
		TypeCode:      1,
		NetAssetValue: &nav,
		TypeName:      "RENDA FIXA",
	}
}

func (s *FundHandlerSuite) TestListFunds() {
	s.Run("ok", func() {
		s.mockService.EXPECT().ListFunds(gomock.Any()).Return([]*fund.Fund{sampleFund()}, nil)

		w := s.do(http.MethodGet, "/funds", nil)

		assert.Equal(s.T(), http.StatusOK, w.Code)
		var funds []*fund.Fund
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &funds))
		require.Len(s.T(), funds, 1)
		assert.Equal(s.T(), "ITAU01", funds[0].Code)
		assert.Equal(s.T(), "RENDA FIXA", funds[0].TypeName)
	})

	s.Run("internal error", func() {
		s.mockService.EXPECT().ListFunds(gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeInternal, "failed to list funds"))

		w := s.do(http.MethodGet, "/funds", nil)
		assert.Equal(s.T(), http.StatusInternalServerError, w.Code)
	})
}

func (s *FundHandlerSuite) TestGetFund() {
	s.Run("ok", func() {
		s.mockService.EXPECT().GetFund(gomock.Any(), "ITAU01").Return(sampleFund(), nil)

		w := s.do(http.MethodGet, "/funds/ITAU01", nil)

		assert.Equal(s.T(), http.StatusOK, w.Code)
		var f fund.Fund
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &f))
		require.NotNil(s.T(), f.NetAssetValue)
		assert.True(s.T(), f.NetAssetValue.Equal(dec("1000.00")))
	})

	s.Run("not found", func() {
		s.mockService.EXPECT().GetFund(gomock.Any(), "UNKNOWN").
			Return(nil, dErrors.New(dErrors.CodeNotFound, "fund UNKNOWN not found"))

		w := s.do(http.MethodGet, "/funds/UNKNOWN", nil)

		assert.Equal(s.T(), http.StatusNotFound, w.Code)
		var resp map[string]string
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(s.T(), "not_found", resp["error"])
	})

	s.Run("validation maps to 400", func() {
		s.mockService.EXPECT().GetFund(gomock.Any(), " ").
			Return(nil, dErrors.New(dErrors.CodeValidation, "fund code is required"))

		w := s.do(http.MethodGet, "/funds/%20", nil)
		assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	})
}

func (s *FundHandlerSuite) TestCreateFund() {
	s.Run("created", func() {
		payload := sampleFund()
		s.mockService.EXPECT().CreateFund(gomock.Any(), gomock.Any()).Return(nil)

		w := s.do(http.MethodPost, "/funds", payload)

		assert.Equal(s.T(), http.StatusCreated, w.Code)
		assert.Equal(s.T(), "/funds/ITAU01", w.Header().Get("Location"))
		var f fund.Fund
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &f))
		assert.Equal(s.T(), payload.Code, f.Code)
	})

	s.Run("malformed body", func() {
		req := httptest.NewRequest(http.MethodPost, "/funds", bytes.NewReader([]byte("{not json")))
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	})

	s.Run("conflict", func() {
		s.mockService.EXPECT().CreateFund(gomock.Any(), gomock.Any()).
			Return(dErrors.New(dErrors.CodeConflict, "fund ITAU01 already exists"))

		w := s.do(http.MethodPost, "/funds", sampleFund())
		assert.Equal(s.T(), http.StatusConflict, w.Code)
	})

	s.Run("validation failure", func() {
		s.mockService.EXPECT().CreateFund(gomock.Any(), gomock.Any()).
			Return(dErrors.New(dErrors.CodeValidation, "fund name is required"))

		w := s.do(http.MethodPost, "/funds", &fund.Fund{Code: "X"})
		assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	})

	s.Run("internal error hides cause", func() {
		cause := errors.New("pq: password authentication failed")
		s.mockService.EXPECT().CreateFund(gomock.Any(), gomock.Any()).
			Return(dErrors.Wrap(cause, dErrors.CodeInternal, "failed to create fund"))

		w := s.do(http.MethodPost, "/funds", sampleFund())

		assert.Equal(s.T(), http.StatusInternalServerError, w.Code)
		assert.NotContains(s.T(), w.Body.String(), "password")
	})
}

func (s *FundHandlerSuite) TestUpdateFund() {
	s.Run("no content", func() {
		s.mockService.EXPECT().UpdateFund(gomock.Any(), "ITAU01", gomock.Any()).Return(nil)

		w := s.do(http.MethodPut, "/funds/ITAU01", sampleFund())
		assert.Equal(s.T(), http.StatusNoContent, w.Code)
	})

	s.Run("not found", func() {
		s.mockService.EXPECT().UpdateFund(gomock.Any(), "MISSING", gomock.Any()).
			Return(dErrors.New(dErrors.CodeNotFound, "fund MISSING not found"))

		w := s.do(http.MethodPut, "/funds/MISSING", sampleFund())
		assert.Equal(s.T(), http.StatusNotFound, w.Code)
	})
}

func (s *FundHandlerSuite) TestDeleteFund() {
	s.Run("no content", func() {
		s.mockService.EXPECT().DeleteFund(gomock.Any(), "ITAU01").Return(nil)

		w := s.do(http.MethodDelete, "/funds/ITAU01", nil)
		assert.Equal(s.T(), http.StatusNoContent, w.Code)
	})

	s.Run("not found", func() {
		s.mockService.EXPECT().DeleteFund(gomock.Any(), "MISSING").
			Return(dErrors.New(dErrors.CodeNotFound, "fund MISSING not found"))

		w := s.do(http.MethodDelete, "/funds/MISSING", nil)
		assert.Equal(s.T(), http.StatusNotFound, w.Code)
	})
}

func (s *FundHandlerSuite) TestMovement() {
	s.Run("add is case-insensitive and signs positive", func() {
		s.mockService.EXPECT().MoveNetAssetValue(gomock.Any(), "ITAU01", dec("100.50")).Return(nil)
		s.mockService.EXPECT().GetFund(gomock.Any(), "ITAU01").Return(sampleFund(), nil)

		w := s.do(http.MethodPut, "/funds/ITAU01/netAssetValue",
			map[string]any{"operation": "add", "amount": "100.50"})

		assert.Equal(s.T(), http.StatusOK, w.Code)
		var resp struct {
			Message string     `json:"message"`
			Fund    *fund.Fund `json:"fund"`
		}
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(s.T(), "net asset value increased by 100.50", resp.Message)
		require.NotNil(s.T(), resp.Fund)
		assert.Equal(s.T(), "ITAU01", resp.Fund.Code)
	})

	s.Run("sub signs negative", func() {
		s.mockService.EXPECT().MoveNetAssetValue(gomock.Any(), "ITAU01", dec("-25")).Return(nil)
		s.mockService.EXPECT().GetFund(gomock.Any(), "ITAU01").Return(sampleFund(), nil)

		w := s.do(http.MethodPut, "/funds/ITAU01/netAssetValue",
			map[string]any{"operation": "SUB", "amount": 25})

		assert.Equal(s.T(), http.StatusOK, w.Code)
		assert.Contains(s.T(), w.Body.String(), "decreased by 25")
	})

	s.Run("unknown operation rejected before the service", func() {
		w := s.do(http.MethodPut, "/funds/ITAU01/netAssetValue",
			map[string]any{"operation": "MUL", "amount": 10})

		assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	})

	s.Run("zero amount rejected before the service", func() {
		w := s.do(http.MethodPut, "/funds/ITAU01/netAssetValue",
			map[string]any{"operation": "ADD", "amount": 0})

		assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	})

	s.Run("negative amount rejected before the service", func() {
		w := s.do(http.MethodPut, "/funds/ITAU01/netAssetValue",
			map[string]any{"operation": "SUB", "amount": -5})

		assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	})

	s.Run("negative balance guard maps to 400", func() {
		s.mockService.EXPECT().MoveNetAssetValue(gomock.Any(), "ITAU01", dec("-150")).
			Return(dErrors.New(dErrors.CodeInvariantViolation, "operation would make net asset value negative"))

		w := s.do(http.MethodPut, "/funds/ITAU01/netAssetValue",
			map[string]any{"operation": "SUB", "amount": 150})

		assert.Equal(s.T(), http.StatusBadRequest, w.Code)
		assert.Contains(s.T(), w.Body.String(), "invariant_violation")
	})

	s.Run("missing fund maps to 404", func() {
		s.mockService.EXPECT().MoveNetAssetValue(gomock.Any(), "MISSING", dec("10")).
			Return(dErrors.New(dErrors.CodeNotFound, "fund MISSING not found"))

		w := s.do(http.MethodPut, "/funds/MISSING/netAssetValue",
			map[string]any{"operation": "ADD", "amount": 10})

		assert.Equal(s.T(), http.StatusNotFound, w.Code)
	})
}

func (s *FundHandlerSuite) TestListTypes() {
	s.mockService.EXPECT().ListTypes(gomock.Any()).
		Return([]*fund.Type{{Code: 1, Name: "RENDA FIXA"}, {Code: 2, Name: "ACOES"}}, nil)

	w := s.do(http.MethodGet, "/funds/types", nil)

	assert.Equal(s.T(), http.StatusOK, w.Code)
	var types []*fund.Type
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &types))
	assert.Len(s.T(), types, 2)
}
