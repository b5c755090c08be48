//go:build !integration

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"influencerMDP/business/selection"
	"influencerMDP/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOutcome() selection.Outcome {
	return selection.Outcome{
		InitialValue: 500500,
		States:       7,
		Steps: []domain.SelectionStep{
			{Step: 0, Action: "select", InfluencerID: 2, Username: "B", Group: "Black", Cost: 80, Engagement: 500, Bonus: 500000, Reward: 500500, BudgetBefore: 150, BudgetAfter: 70},
		},
		Summary: domain.SelectionSummary{Strategy: domain.StrategyMDP, NumSelected: 1, SelectedIDs: []uint64{2}},
	}
}

func TestSolutionCache_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewSolutionCache(db)
	ctx := context.Background()

	raw, err := json.Marshal(sampleOutcome())
	require.NoError(t, err)

	mock.ExpectGet("mdp:plan:abc").SetVal(string(raw))
	out, ok, err := cache.Get(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, sampleOutcome(), out)

	mock.ExpectGet("mdp:plan:missing").RedisNil()
	_, ok, err = cache.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	mock.ExpectGet("mdp:plan:broken").SetErr(errors.New("connection reset"))
	_, _, err = cache.Get(ctx, "broken")
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSolutionCache_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewSolutionCache(db)

	raw, err := json.Marshal(sampleOutcome())
	require.NoError(t, err)

	mock.ExpectSet("mdp:plan:abc", raw, time.Hour).SetVal("OK")
	require.NoError(t, cache.Set(context.Background(), "abc", sampleOutcome(), time.Hour))

	assert.NoError(t, mock.ExpectationsWereMet())
}
