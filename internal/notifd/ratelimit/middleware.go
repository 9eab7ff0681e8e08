package ratelimit

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"github.com/rs/zerolog"
)

// Middleware returns an HTTP middleware enforcing the named limit per
// remote IP. Store failures fail open; an unreachable Redis must not
// blank every screen in the building.
func Middleware(service Service, limitType string, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := LimitKey{
				Type:     limitType,
				RemoteIP: remoteIP(r),
				Endpoint: r.URL.Path,
			}

			if err := service.Allow(r.Context(), key); err != nil {
				if errors.Is(err, ErrLimitExceeded) {
					w.Header().Set("Content-Type", "application/json")
					w.Header().Set("Retry-After", "60")
					w.WriteHeader(http.StatusTooManyRequests)
					if encErr := json.NewEncoder(w).Encode(map[string]string{
						"error": "rate limit exceeded",
					}); encErr != nil {
						logger.Error().Err(encErr).Msg("failed to encode response")
					}
					return
				}
				logger.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
			}

			next.ServeHTTP(w, r)
		})
	}
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
