package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type service struct {
	store   Store
	logger  zerolog.Logger
	limits  map[string]Limit
	limitsM sync.RWMutex
}

// NewService creates a new rate limiting service
func NewService(store Store, logger zerolog.Logger) Service {
	return &service{
		store:  store,
		logger: logger.With().Str("component", "ratelimit").Logger(),
		limits: make(map[string]Limit),
	}
}

// registerLimit adds or updates a rate limit configuration
func (s *service) registerLimit(limitType string, limit Limit) error {
	if limit.Rate <= 0 || limit.Period <= 0 {
		return ErrInvalidLimit
	}

	s.limitsM.Lock()
	defer s.limitsM.Unlock()

	s.limits[limitType] = limit
	return nil
}

// Allow checks if an operation should be allowed
func (s *service) Allow(ctx context.Context, key LimitKey) error {
	if key.Type == "" {
		return ErrInvalidKey
	}

	limit := s.GetLimit(key.Type)
	if limit.Rate == 0 {
		s.logger.Warn().Str("type", key.Type).Msg("no rate limit configured for type")
		return nil
	}

	count, err := s.store.Increment(ctx, key, limit)
	if err != nil {
		if err == ErrLimitExceeded {
			s.logger.Info().
				Str("type", key.Type).
				Str("remoteIP", key.RemoteIP).
				Str("endpoint", key.Endpoint).
				Int("count", count).
				Msg("rate limit exceeded")
		} else {
			s.logger.Error().
				Err(err).
				Str("type", key.Type).
				Str("endpoint", key.Endpoint).
				Msg("rate limit check failed")
		}
		return err
	}

	return nil
}

// GetLimit returns the configured limit for a key type
func (s *service) GetLimit(limitType string) Limit {
	s.limitsM.RLock()
	defer s.limitsM.RUnlock()

	return s.limits[limitType]
}

// Reset clears rate limit counters for a key
func (s *service) Reset(ctx context.Context, key LimitKey) error {
	if key.Type == "" {
		return ErrInvalidKey
	}

	if err := s.store.Reset(ctx, key); err != nil {
		s.logger.Error().
			Err(err).
			Str("type", key.Type).
			Str("endpoint", key.Endpoint).
			Msg("failed to reset rate limit")
		return err
	}

	return nil
}

// RegisterDefaultLimits configures standard rate limits
func (s *service) RegisterDefaultLimits() {
	// Displays poll content and schedules every few seconds; the
	// budget leaves room for several displays behind one NAT.
	s.registerLimit("display_poll", Limit{
		Rate:      300,
		Period:    time.Minute,
		BurstSize: 60,
	})

	// Credential guessing gets a much smaller budget.
	s.registerLimit("auth_attempt", Limit{
		Rate:      10,
		Period:    5 * time.Minute,
		BurstSize: 0,
	})

	// Dashboard websocket connects.
	s.registerLimit("ws_connect", Limit{
		Rate:      30,
		Period:    time.Minute,
		BurstSize: 5,
	})
}
