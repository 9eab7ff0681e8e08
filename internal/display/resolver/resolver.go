// Package resolver decides, at any instant, which piece of content a TV
// must show, and keeps that decision in sync with the server by polling.
package resolver

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/display/content"
)

// API is the slice of the server client the resolver needs. Both lookups
// are display-side reads and require no credentials.
type API interface {
	// AssignmentForTV returns the profile assignment for the TV, or nil
	// when none exists.
	AssignmentForTV(ctx context.Context, tvName string) (*types.ProfileAssignment, error)
	// SchedulesForTV returns the eligible active schedules for the TV,
	// already ordered by priority on the server.
	SchedulesForTV(ctx context.Context, tvName string) ([]types.ContentSchedule, error)
}

// Cache is the local last-known-content fallback.
type Cache interface {
	Load(tvName string) (*content.LegacyContent, bool)
}

// Resolver resolves the single active content value for one TV.
type Resolver struct {
	api    API
	cache  Cache
	logger zerolog.Logger
}

// New returns a resolver over api with the given fallback cache. A nil
// cache disables the fallback step.
func New(api API, cache Cache, logger zerolog.Logger) *Resolver {
	return &Resolver{
		api:    api,
		cache:  cache,
		logger: logger.With().Str("component", "resolver").Logger(),
	}
}

// Resolve determines the content for tvName, in priority order:
//
//  1. An active profile assignment, which always outranks schedules.
//  2. The first of the server's priority-ordered eligible schedules.
//  3. The locally cached legacy entry, when both lookups fail.
//  4. Nothing (nil).
//
// Errors are absorbed: a failed lookup demotes resolution to the next step
// rather than surfacing anything to the screen. A blank slide always beats
// a crashed one on an unattended display.
func (r *Resolver) Resolve(ctx context.Context, tvName string) *content.Resolved {
	assignment, err := r.api.AssignmentForTV(ctx, tvName)
	if err != nil {
		r.logger.Debug().Err(err).Str("tv", tvName).Msg("profile lookup failed, trying schedules")
	} else if assignment != nil && assignment.Active && assignment.Profile != nil && assignment.Profile.Active {
		return content.FromAssignment(assignment)
	}

	schedules, schedErr := r.api.SchedulesForTV(ctx, tvName)
	if schedErr == nil {
		if len(schedules) == 0 {
			return nil
		}
		first := schedules[0]
		return content.FromSchedule(&first)
	}
	r.logger.Debug().Err(schedErr).Str("tv", tvName).Msg("schedule lookup failed, trying local cache")

	if r.cache != nil {
		if cached, ok := r.cache.Load(tvName); ok {
			r.logger.Info().Str("tv", tvName).Msg("serving locally cached content")
			return content.FromLegacy(cached)
		}
	}
	return nil
}
