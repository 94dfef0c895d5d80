// Package redis provides the idempotency key store backing the
// Idempotency-Key middleware on the transfer endpoint.
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iho/fxbank/internal/infrastructure/metrics"
)

const pendingMarker = "pending"

// IdempotencyStore records transfer responses keyed by client-supplied
// idempotency keys so retried requests replay the original outcome
// instead of moving money twice.
type IdempotencyStore struct {
	client  *redis.Client
	prefix  string
	ttl     time.Duration
	metrics *metrics.Metrics
}

// NewIdempotencyStore creates a store with the given response TTL.
func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{
		client: client,
		prefix: "fxbank:idempotency:",
		ttl:    ttl,
	}
}

// WithMetrics records operation and error counts.
func (s *IdempotencyStore) WithMetrics(m *metrics.Metrics) *IdempotencyStore {
	s.metrics = m
	return s
}

// Reserve claims the key for the current request. It returns
// (true, nil) when the caller now owns the key and must Complete it,
// and (false, body) when a previous request already owns it. A nil
// body with ok=false means the original request is still in flight.
func (s *IdempotencyStore) Reserve(ctx context.Context, key string) (bool, []byte, error) {
	fullKey := s.prefix + key

	claimed, err := s.client.SetNX(ctx, fullKey, pendingMarker, s.ttl).Result()
	s.count("reserve", err)
	if err != nil {
		return false, nil, err
	}
	if claimed {
		return true, nil, nil
	}

	existing, err := s.client.Get(ctx, fullKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// Key expired between SetNX and Get. Treat as in flight;
			// the client will retry.
			return false, nil, nil
		}
		s.count("get", err)
		return false, nil, err
	}

	if string(existing) == pendingMarker {
		return false, nil, nil
	}

	return false, existing, nil
}

// Complete stores the final response body under a reserved key.
func (s *IdempotencyStore) Complete(ctx context.Context, key string, response []byte) error {
	err := s.client.Set(ctx, s.prefix+key, response, s.ttl).Err()
	s.count("complete", err)

	return err
}

// Release drops a reservation so a failed request can be retried with
// the same key.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	err := s.client.Del(ctx, s.prefix+key).Err()
	s.count("release", err)

	return err
}

func (s *IdempotencyStore) count(op string, err error) {
	if s.metrics == nil {
		return
	}

	s.metrics.RedisOperations.WithLabelValues(op).Inc()
	if err != nil {
		s.metrics.RedisErrors.WithLabelValues(op).Inc()
	}
}
