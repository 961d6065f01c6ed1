// Package handler exposes the draft submission endpoints. The handlers stay
// thin: decode, call the service, map errors onto status codes.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"loandraft/internal/draft/models"
	"loandraft/internal/draft/store"
	"loandraft/internal/platform/middleware"
	domainerrors "loandraft/pkg/domain-errors"
	"loandraft/pkg/platform/httputil"
)

// Service is the draft submission orchestrator.
type Service interface {
	SubmitSingle(ctx context.Context, req models.SingleDraftRequest) (*store.Draft, error)
	SubmitJoint(ctx context.Context, req models.JointDraftRequest) (*store.Draft, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
	apiKey  string
}

func New(service Service, logger *slog.Logger, apiKey string) *Handler {
	return &Handler{service: service, logger: logger, apiKey: apiKey}
}

// Register mounts the draft routes with the full middleware chain.
func (h *Handler) Register(r chi.Router) {
	draftRouter := chi.NewRouter()
	draftRouter.Use(middleware.Recovery(h.logger))
	draftRouter.Use(middleware.RequestID)
	draftRouter.Use(middleware.RequestTime)
	draftRouter.Use(middleware.Logger(h.logger))
	draftRouter.Use(middleware.APIKey(h.apiKey))
	draftRouter.Post("/applications/draft", h.handleSubmitSingle)
	draftRouter.Post("/applications/draft/joint", h.handleSubmitJoint)

	r.Mount("/", draftRouter)
}

// DraftResponse is the 201 body for both draft routes.
type DraftResponse struct {
	ID            string `json:"id"`
	ApplicantName string `json:"applicantName"`
	CreatedAt     string `json:"createdAt"`
}

func (h *Handler) handleSubmitSingle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.SingleDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid single draft request", "error", err)
		httputil.WriteError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid request body"))
		return
	}

	draft, err := h.service.SubmitSingle(ctx, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "single draft submission failed", "error", err)
		httputil.WriteError(w, err)
		return
	}
	h.writeCreated(w, draft)
}

func (h *Handler) handleSubmitJoint(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.JointDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid joint draft request", "error", err)
		httputil.WriteError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid request body"))
		return
	}

	draft, err := h.service.SubmitJoint(ctx, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "joint draft submission failed", "error", err)
		httputil.WriteError(w, err)
		return
	}
	h.writeCreated(w, draft)
}

func (h *Handler) writeCreated(w http.ResponseWriter, draft *store.Draft) {
	httputil.WriteJSON(w, http.StatusCreated, DraftResponse{
		ID:            draft.ID.String(),
		ApplicantName: draft.ApplicantName,
		CreatedAt:     draft.CreatedAt.UTC().Format(time.RFC3339),
	})
}
