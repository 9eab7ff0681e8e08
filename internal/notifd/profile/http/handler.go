// Package http exposes the profile and assignment endpoints.
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
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/profile"
)

type Handler struct {
	service profile.Service
	logger  zerolog.Logger
}

func NewHandler(service profile.Service, logger zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.With().Str("component", "profile-http").Logger(),
	}
}

// RegisterAdminRoutes mounts the profile management endpoints. The
// caller is expected to wrap them in authentication.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/", h.handleCreate)
	r.Get("/", h.handleList)

	r.Post("/assign", h.handleAssign)
	r.Get("/assignments", h.handleListAssignments)
	r.Delete("/assignments/{id}", h.handleUnassign)

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.handleGet)
		r.Put("/", h.handleUpdate)
		r.Delete("/", h.handleDelete)
	})
}

// RegisterDisplayRoutes mounts the unauthenticated endpoints displays
// poll.
func (h *Handler) RegisterDisplayRoutes(r chi.Router) {
	r.Get("/tv/{tvName}", h.handleAssignmentForTV)
}

func profileID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, errors.NewError("INVALID_INPUT", "invalid profile id", "profile.id", errors.ErrInvalidInput)
	}
	return id, nil
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req types.ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondError(w, h.logger, errors.NewError("INVALID_INPUT", "invalid request body", "profile.decode", errors.ErrInvalidInput))
		return
	}

	p, err := h.service.Create(r.Context(), &req)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	httpx.RespondJSON(w, h.logger, http.StatusCreated, p)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := profileID(r)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	var req types.ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondError(w, h.logger, errors.NewError("INVALID_INPUT", "invalid request body", "profile.decode", errors.ErrInvalidInput))
		return
	}

	p, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	httpx.RespondJSON(w, h.logger, http.StatusOK, p)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := profileID(r)
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
	id, err := profileID(r)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	p, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	httpx.RespondJSON(w, h.logger, http.StatusOK, p)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.service.List(r.Context())
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	if profiles == nil {
		profiles = []types.Profile{}
	}

	httpx.RespondJSON(w, h.logger, http.StatusOK, profiles)
}

func (h *Handler) handleAssign(w http.ResponseWriter, r *http.Request) {
	var req types.AssignProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondError(w, h.logger, errors.NewError("INVALID_INPUT", "invalid request body", "profile.decode", errors.ErrInvalidInput))
		return
	}

	a, err := h.service.Assign(r.Context(), &req)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	httpx.RespondJSON(w, h.logger, http.StatusCreated, a)
}

func (h *Handler) handleUnassign(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, h.logger, errors.NewError("INVALID_INPUT", "invalid assignment id", "profile.assignment", errors.ErrInvalidInput))
		return
	}

	if err := h.service.Unassign(r.Context(), id); err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAssignmentForTV serves displays; a TV without an assignment gets
// a plain 404 that the display treats as "fall through to schedules".
func (h *Handler) handleAssignmentForTV(w http.ResponseWriter, r *http.Request) {
	a, err := h.service.AssignmentForTV(r.Context(), chi.URLParam(r, "tvName"))
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	httpx.RespondJSON(w, h.logger, http.StatusOK, a)
}

func (h *Handler) handleListAssignments(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.service.ListAssignments(r.Context())
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	if assignments == nil {
		assignments = []types.ProfileAssignment{}
	}

	httpx.RespondJSON(w, h.logger, http.StatusOK, assignments)
}
