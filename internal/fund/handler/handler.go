// Package handler is the thin HTTP layer over the fund service. It decodes
// payloads, translates domain error codes to status codes, and keeps business
// logic out of transport.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"fundtrack/internal/fund"
	"fundtrack/internal/platform/middleware"
	dErrors "fundtrack/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/fund-mocks.go -package=mocks Service

// Service defines the interface for fund operations.
type Service interface {
	ListFunds(ctx context.Context) ([]*fund.Fund, error)
	GetFund(ctx context.Context, code string) (*fund.Fund, error)
	CreateFund(ctx context.Context, f *fund.Fund) error
	UpdateFund(ctx context.Context, code string, f *fund.Fund) error
	DeleteFund(ctx context.Context, code string) error
	MoveNetAssetValue(ctx context.Context, code string, amount decimal.Decimal) error
	ListTypes(ctx context.Context) ([]*fund.Type, error)
}

// Handler handles the /funds endpoints.
type Handler struct {
	logger  *slog.Logger
	service Service
}

// New creates a new fund Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: service}
}

// Register registers the fund routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/funds", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/types", h.handleListTypes)
		r.Get("/{code}", h.handleGet)
		r.Put("/{code}", h.handleUpdate)
		r.Delete("/{code}", h.handleDelete)
		r.Put("/{code}/netAssetValue", h.handleMovement)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	funds, err := h.service.ListFunds(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, funds)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	f, err := h.service.GetFund(r.Context(), code)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, f)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var f fund.Fund
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		h.warnDecode(r, "create fund", err)
		h.writeError(w, r, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	if err := h.service.CreateFund(r.Context(), &f); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/funds/"+f.Code)
	h.writeJSON(w, http.StatusCreated, &f)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var f fund.Fund
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		h.warnDecode(r, "update fund", err)
		h.writeError(w, r, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	if err := h.service.UpdateFund(r.Context(), code, &f); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	if err := h.service.DeleteFund(r.Context(), code); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// movementRequest is the payload for PUT /funds/{code}/netAssetValue.
type movementRequest struct {
	Operation string          `json:"operation"`
	Amount    decimal.Decimal `json:"amount"`
}

// movementResponse echoes the applied operation and the fund after it.
type movementResponse struct {
	Message string     `json:"message"`
	Fund    *fund.Fund `json:"fund"`
}

const (
	opAdd = "ADD"
	opSub = "SUB"
)

func (h *Handler) handleMovement(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req movementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.warnDecode(r, "movement", err)
		h.writeError(w, r, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	op := strings.ToUpper(req.Operation)
	if op != opAdd && op != opSub {
		h.writeError(w, r, dErrors.New(dErrors.CodeBadRequest, "operation must be ADD or SUB"))
		return
	}
	if !req.Amount.IsPositive() {
		h.writeError(w, r, dErrors.New(dErrors.CodeBadRequest, "amount must be greater than zero"))
		return
	}

	amount := req.Amount
	if op == opSub {
		amount = amount.Neg()
	}

	if err := h.service.MoveNetAssetValue(r.Context(), code, amount); err != nil {
		h.writeError(w, r, err)
		return
	}

	updated, err := h.service.GetFund(r.Context(), code)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	verb := "increased"
	if op == opSub {
		verb = "decreased"
	}
	h.writeJSON(w, http.StatusOK, movementResponse{
		Message: "net asset value " + verb + " by " + req.Amount.String(),
		Fund:    updated,
	})
}

func (h *Handler) handleListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.service.ListTypes(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, types)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// writeError translates a coded domain error into the JSON error envelope.
// The message for internal errors is the generic one from pkg/domain-errors,
// so underlying causes never reach the caller.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := dErrors.CodeOf(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(dErrors.ToHTTPStatus(code))
	encodeErr := json.NewEncoder(w).Encode(map[string]string{
		"error":   string(code),
		"message": dErrors.Message(err),
	})
	if encodeErr != nil {
		h.logger.ErrorContext(r.Context(), "failed to encode error response",
			"error", encodeErr,
			"request_id", middleware.GetRequestID(r.Context()),
		)
	}
}

func (h *Handler) warnDecode(r *http.Request, operation string, err error) {
	h.logger.WarnContext(r.Context(), "invalid "+operation+" request",
		"error", err.Error(),
		"request_id", middleware.GetRequestID(r.Context()),
	)
}
