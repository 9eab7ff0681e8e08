// Package http exposes the account endpoints and the Basic-Auth
// middleware guarding admin mutations.
package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/auth"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/errors"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/httpx"
)

type Handler struct {
	service auth.Service
	logger  zerolog.Logger
}

func NewHandler(service auth.Service, logger zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.With().Str("component", "auth-http").Logger(),
	}
}

// RegisterRoutes mounts the account endpoints on the provided router
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/signup", h.handleSignUp)
	r.Post("/signin", h.handleSignIn)
}

func (h *Handler) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req types.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondError(w, h.logger, errors.NewError("INVALID_INPUT", "invalid request body", "auth.decode", errors.ErrInvalidInput))
		return
	}

	info, err := h.service.SignUp(r.Context(), &req)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	httpx.RespondJSON(w, h.logger, http.StatusCreated, info)
}

func (h *Handler) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req types.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondError(w, h.logger, errors.NewError("INVALID_INPUT", "invalid request body", "auth.decode", errors.ErrInvalidInput))
		return
	}

	info, err := h.service.SignIn(r.Context(), &req)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	httpx.RespondJSON(w, h.logger, http.StatusOK, info)
}

// Middleware enforces HTTP Basic credentials on the wrapped routes.
// Display-facing reads are mounted outside of it.
func Middleware(service auth.Service, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			if !ok || !service.Verify(r.Context(), username, password) {
				w.Header().Set("WWW-Authenticate", `Basic realm="notifmanager"`)
				httpx.RespondError(w, logger,
					errors.NewError("UNAUTHORIZED", "authentication required", "auth.middleware", errors.ErrUnauthorized))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
