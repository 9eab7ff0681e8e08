package screen

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router returns the local HTTP surface the screen front-end consumes: the
// current frame, and the playback event callbacks that drive the video
// playlist. Playback errors report through the same handler as completion.
func (c *Controller) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			c.logger.Error().Err(err).Msg("failed to write health response")
		}
	})

	r.Get("/frame", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(c.Frame()); err != nil {
			c.logger.Error().Err(err).Msg("failed to encode frame")
		}
	})

	r.Post("/playback/started", func(w http.ResponseWriter, r *http.Request) {
		c.VideoStarted()
		w.WriteHeader(http.StatusNoContent)
	})
	r.Post("/playback/ended", func(w http.ResponseWriter, r *http.Request) {
		c.VideoEnded()
		w.WriteHeader(http.StatusNoContent)
	})
	r.Post("/playback/error", func(w http.ResponseWriter, r *http.Request) {
		c.VideoEnded()
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}
