// Package http exposes the content schedule endpoints.
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
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/schedule"
)

type Handler struct {
	service schedule.Service
	logger  zerolog.Logger
}

func NewHandler(service schedule.Service, logger zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.With().Str("component", "schedule-http").Logger(),
	}
}

// RegisterAdminRoutes mounts the schedule management endpoints. The
// caller is expected to wrap them in authentication.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/", h.handleCreate)
	r.Post("/from-request", h.handleCreate)
	r.Get("/", h.handleList)
	r.Get("/all", h.handleList)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.handleGet)
		r.Put("/", h.handleUpdate)
		r.Delete("/", h.handleDelete)
		r.Patch("/toggle", h.handleToggle)
	})
}

// RegisterDisplayRoutes mounts the unauthenticated endpoints displays
// poll.
func (h *Handler) RegisterDisplayRoutes(r chi.Router) {
	r.Get("/tv/{tvName}", h.handleActiveForTV)
}

func (h *Handler) decodeRequest(r *http.Request) (*types.ContentScheduleRequest, error) {
	var req types.ContentScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.NewError("INVALID_INPUT", "invalid request body", "schedule.decode", errors.ErrInvalidInput)
	}
	return &req, nil
}

func scheduleID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, errors.NewError("INVALID_INPUT", "invalid schedule id", "schedule.id", errors.ErrInvalidInput)
	}
	return id, nil
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeRequest(r)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	sched, err := h.service.Create(r.Context(), req)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	httpx.RespondJSON(w, h.logger, http.StatusCreated, sched)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := scheduleID(r)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	req, err := h.decodeRequest(r)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	sched, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	httpx.RespondJSON(w, h.logger, http.StatusOK, sched)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := scheduleID(r)
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
	id, err := scheduleID(r)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	sched, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	httpx.RespondJSON(w, h.logger, http.StatusOK, sched)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.service.List(r.Context())
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	if schedules == nil {
		schedules = []types.ContentSchedule{}
	}

	httpx.RespondJSON(w, h.logger, http.StatusOK, schedules)
}

func (h *Handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	id, err := scheduleID(r)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	sched, err := h.service.Toggle(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	httpx.RespondJSON(w, h.logger, http.StatusOK, sched)
}

// handleActiveForTV serves displays. The response is pre-filtered and
// pre-ordered so the display plays the first entry without re-deriving
// priority.
func (h *Handler) handleActiveForTV(w http.ResponseWriter, r *http.Request) {
	tvName := chi.URLParam(r, "tvName")

	schedules, err := h.service.ActiveForTV(r.Context(), tvName)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	if schedules == nil {
		schedules = []types.ContentSchedule{}
	}

	httpx.RespondJSON(w, h.logger, http.StatusOK, schedules)
}
