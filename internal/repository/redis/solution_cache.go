package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"influencerMDP/business/selection"

	"github.com/redis/go-redis/v9"
)

const solutionKeyPrefix = "mdp:plan:"

// SolutionCache stores executed plans keyed by their input fingerprint.
// Entries are immutable; a changed catalog or config yields a new key.
type SolutionCache struct {
	client *redis.Client
}

var _ selection.SolutionCache = (*SolutionCache)(nil)

func NewSolutionCache(client *redis.Client) *SolutionCache {
	return &SolutionCache{
		client: client,
	}
}

func solutionKey(fingerprint string) string {
	return solutionKeyPrefix + fingerprint
}

func (c *SolutionCache) Get(ctx context.Context, fingerprint string) (selection.Outcome, bool, error) {
	val, err := c.client.Get(ctx, solutionKey(fingerprint)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return selection.Outcome{}, false, nil
		}
		return selection.Outcome{}, false, fmt.Errorf("failed to get plan from Redis: %w", err)
	}

	var out selection.Outcome
	if err := json.Unmarshal(val, &out); err != nil {
		return selection.Outcome{}, false, fmt.Errorf("failed to unmarshal cached plan: %w", err)
	}

	return out, true, nil
}

func (c *SolutionCache) Set(ctx context.Context, fingerprint string, outcome selection.Outcome, ttl time.Duration) error {
	raw, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	if err := c.client.Set(ctx, solutionKey(fingerprint), raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store plan in Redis: %w", err)
	}

	return nil
}
