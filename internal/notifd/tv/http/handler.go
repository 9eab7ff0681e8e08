// Package http exposes the TV registry endpoints.
package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/errors"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/httpx"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/tv"
)

type Handler struct {
	service tv.Service
	logger  zerolog.Logger
}

func NewHandler(service tv.Service, logger zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.With().Str("component", "tv-http").Logger(),
	}
}

// RegisterAdminRoutes mounts the TV registry management endpoints. The
// caller is expected to wrap them in authentication.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/", h.handleRegister)
	r.Get("/", h.handleList)
	r.Get("/active", h.handleListActive)
	r.Get("/name/{name}", h.handleGetByName)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.handleGet)
		r.Put("/", h.handleUpdate)
		r.Delete("/", h.handleDelete)
		r.Put("/toggle-status", h.handleToggleStatus)
	})
}

// RegisterDisplayRoutes mounts the unauthenticated active-state probe
// displays call on startup.
func (h *Handler) RegisterDisplayRoutes(r chi.Router) {
	r.Get("/check/{name}", h.handleCheckName)
}

func tvID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, errors.NewError("INVALID_INPUT", "invalid tv id", "tv.id", errors.ErrInvalidInput)
	}
	return id, nil
}

func (h *Handler) decodeRequest(r *http.Request) (*types.TVRequest, error) {
	var req types.TVRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.NewError("INVALID_INPUT", "invalid request body", "tv.decode", errors.ErrInvalidInput)
	}
	return &req, nil
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeRequest(r)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	t, err := h.service.Register(r.Context(), req)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	httpx.RespondJSON(w, h.logger, http.StatusCreated, t)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := tvID(r)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	req, err := h.decodeRequest(r)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	t, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	httpx.RespondJSON(w, h.logger, http.StatusOK, t)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := tvID(r)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := tvID(r)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	t, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	httpx.RespondJSON(w, h.logger, http.StatusOK, t)
}

func (h *Handler) handleGetByName(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.GetByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	httpx.RespondJSON(w, h.logger, http.StatusOK, t)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	tvs, err := h.service.List(r.Context())
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	if tvs == nil {
		tvs = []types.TV{}
	}

	httpx.RespondJSON(w, h.logger, http.StatusOK, tvs)
}

func (h *Handler) handleListActive(w http.ResponseWriter, r *http.Request) {
	tvs, err := h.service.ListActive(r.Context())
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	if tvs == nil {
		tvs = []types.TV{}
	}

	httpx.RespondJSON(w, h.logger, http.StatusOK, tvs)
}

func (h *Handler) handleToggleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := tvID(r)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	t, err := h.service.ToggleStatus(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	httpx.RespondJSON(w, h.logger, http.StatusOK, t)
}

// handleCheckName is the unauthenticated probe displays use on startup.
func (h *Handler) handleCheckName(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.CheckName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	httpx.RespondJSON(w, h.logger, http.StatusOK, status)
}
