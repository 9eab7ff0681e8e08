package devicedata

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/httpx"
)

// Handler exposes the device-data endpoints.
type Handler struct {
	sampler *Sampler
	cache   *Cache
	hub     *Hub
	logger  zerolog.Logger
}

func NewHandler(sampler *Sampler, cache *Cache, hub *Hub, logger zerolog.Logger) *Handler {
	return &Handler{
		sampler: sampler,
		cache:   cache,
		hub:     hub,
		logger:  logger.With().Str("component", "devicedata-http").Logger(),
	}
}

// RegisterRoutes mounts the device-data endpoints on the provided router
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.ServeLatest)
	r.Get("/ws", h.ServeWS)
}

// ServeWS upgrades the request into a telemetry stream.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	h.hub.ServeWS(w, r)
}

// ServeLatest prefers the shared cache and falls back to the local
// sampler when the cache is cold or unreachable.
func (h *Handler) ServeLatest(w http.ResponseWriter, r *http.Request) {
	if h.cache != nil {
		data, ok, err := h.cache.Latest(r.Context())
		if err != nil {
			h.logger.Warn().Err(err).Msg("device data cache unavailable")
		} else if ok {
			httpx.RespondJSON(w, h.logger, http.StatusOK, data)
			return
		}
	}

	httpx.RespondJSON(w, h.logger, http.StatusOK, h.sampler.Current())
}
