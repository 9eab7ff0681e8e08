package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	counts map[string]int
	err    error
}

func newMemStore() *memStore {
	return &memStore{counts: map[string]int{}}
}

func (s *memStore) Increment(ctx context.Context, key LimitKey, limit Limit) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	k := key.Type + ":" + key.RemoteIP + ":" + key.Endpoint
	s.counts[k]++
	count := s.counts[k]
	if count > limit.Rate+limit.BurstSize {
		return count, ErrLimitExceeded
	}
	return count, nil
}

func (s *memStore) Reset(ctx context.Context, key LimitKey) error {
	if s.err != nil {
		return s.err
	}
	delete(s.counts, key.Type+":"+key.RemoteIP+":"+key.Endpoint)
	return nil
}

func TestAllow(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := NewService(store, zerolog.Nop()).(*service)
	require.NoError(t, svc.registerLimit("display_poll", Limit{Rate: 2, Period: time.Minute, BurstSize: 1}))

	key := LimitKey{Type: "display_poll", RemoteIP: "10.0.0.1", Endpoint: "/api/content/tv/TV1"}

	assert.NoError(t, svc.Allow(ctx, key))
	assert.NoError(t, svc.Allow(ctx, key))
	assert.NoError(t, svc.Allow(ctx, key)) // burst slot
	assert.ErrorIs(t, svc.Allow(ctx, key), ErrLimitExceeded)
}

func TestAllow_SeparateIPs(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := NewService(store, zerolog.Nop()).(*service)
	require.NoError(t, svc.registerLimit("display_poll", Limit{Rate: 1, Period: time.Minute}))

	require.NoError(t, svc.Allow(ctx, LimitKey{Type: "display_poll", RemoteIP: "10.0.0.1"}))
	assert.ErrorIs(t, svc.Allow(ctx, LimitKey{Type: "display_poll", RemoteIP: "10.0.0.1"}), ErrLimitExceeded)
	assert.NoError(t, svc.Allow(ctx, LimitKey{Type: "display_poll", RemoteIP: "10.0.0.2"}))
}

func TestAllow_UnconfiguredTypePasses(t *testing.T) {
	svc := NewService(newMemStore(), zerolog.Nop())
	assert.NoError(t, svc.Allow(context.Background(), LimitKey{Type: "unknown", RemoteIP: "10.0.0.1"}))
}

func TestAllow_EmptyType(t *testing.T) {
	svc := NewService(newMemStore(), zerolog.Nop())
	assert.ErrorIs(t, svc.Allow(context.Background(), LimitKey{}), ErrInvalidKey)
}

func TestRegisterLimit_Invalid(t *testing.T) {
	svc := NewService(newMemStore(), zerolog.Nop()).(*service)
	assert.ErrorIs(t, svc.registerLimit("bad", Limit{Rate: 0, Period: time.Minute}), ErrInvalidLimit)
	assert.ErrorIs(t, svc.registerLimit("bad", Limit{Rate: 1, Period: 0}), ErrInvalidLimit)
}

func TestRegisterDefaultLimits(t *testing.T) {
	svc := NewService(newMemStore(), zerolog.Nop())
	svc.RegisterDefaultLimits()

	assert.Equal(t, 300, svc.GetLimit("display_poll").Rate)
	assert.Equal(t, 10, svc.GetLimit("auth_attempt").Rate)
	assert.Equal(t, 30, svc.GetLimit("ws_connect").Rate)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := NewService(store, zerolog.Nop()).(*service)
	require.NoError(t, svc.registerLimit("display_poll", Limit{Rate: 1, Period: time.Minute}))

	key := LimitKey{Type: "display_poll", RemoteIP: "10.0.0.1"}
	require.NoError(t, svc.Allow(ctx, key))
	require.ErrorIs(t, svc.Allow(ctx, key), ErrLimitExceeded)

	require.NoError(t, svc.Reset(ctx, key))
	assert.NoError(t, svc.Allow(ctx, key))
}
