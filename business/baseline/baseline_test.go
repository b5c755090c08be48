//go:build !integration

package baseline

import (
	"errors"
	"testing"

	"influencerMDP/business/mdp"
	"influencerMDP/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatConfig() mdp.Config {
	cfg := mdp.DefaultConfig()
	cfg.EngagementCostWeight = 0
	cfg.FollowerCostWeight = 0
	return cfg
}

func testCatalog(t *testing.T) mdp.Catalog {
	t.Helper()
	c, err := mdp.NewCatalog([]domain.Influencer{
		{ID: 1, Username: "p1", BaseCost: 100, Likes: 1000, Group: "White"},
		{ID: 2, Username: "p2", BaseCost: 50, Likes: 750, Group: "Black"},
		{ID: 3, Username: "p3", BaseCost: 200, Likes: 1000, Group: "White"},
		{ID: 4, Username: "p4", BaseCost: 30, Likes: 90, Group: "Hispanic"},
		{ID: 5, Username: "p5", BaseCost: 75, Likes: 300, Comments: 20, Group: "AAPI"},
	})
	require.NoError(t, err)
	return c
}

func TestGreedy_TakesBestRatioFirst(t *testing.T) {
	traj, err := Greedy(testCatalog(t), flatConfig(), 150, Options{})
	require.NoError(t, err)

	// ratios: p2 750/40, p1 1000/100, p5 340/60, p3 1000/200, p4 90/24
	s := traj.Summary
	assert.Equal(t, domain.StrategyGreedy, s.Strategy)
	assert.Equal(t, []uint64{2, 1}, s.SelectedIDs)
	assert.Equal(t, 140.0, s.TotalCost)
	assert.Equal(t, 1750.0, s.TotalEngagement)
	assert.Equal(t, 501750.0, s.TotalReward)
	assert.Equal(t, 2, s.Diversity)
	assert.True(t, s.DiversityCovered)
	assert.InDelta(t, 140.0/150.0, s.BudgetUtilization, 1e-9)

	require.Len(t, traj.Steps, 2)
	assert.Equal(t, 150.0, traj.Steps[0].BudgetBefore)
	assert.Equal(t, 110.0, traj.Steps[0].BudgetAfter)
	assert.Equal(t, 10.0, traj.Steps[1].BudgetAfter)
}

func TestGreedy_MaxSelections(t *testing.T) {
	traj, err := Greedy(testCatalog(t), flatConfig(), 1000, Options{MaxSelections: 1})
	require.NoError(t, err)
	assert.Equal(t, []uint64{2}, traj.Summary.SelectedIDs)
}

func TestRandom_Reproducible(t *testing.T) {
	catalog := testCatalog(t)

	first, err := Random(catalog, flatConfig(), 200, Options{})
	require.NoError(t, err)
	second, err := Random(catalog, flatConfig(), 200, Options{Seed: DefaultSeed})
	require.NoError(t, err)

	assert.Equal(t, domain.StrategyRandom, first.Summary.Strategy)
	assert.Equal(t, first, second)
}

func TestBaselines_NeverOverspend(t *testing.T) {
	catalog := testCatalog(t)

	for _, budget := range []float64{0, 10, 29.99, 100, 333.33, 5000} {
		for _, seed := range []int64{1, 42, 7} {
			r, err := Random(catalog, mdp.DefaultConfig(), budget, Options{Seed: seed})
			require.NoError(t, err)
			assert.LessOrEqual(t, r.Summary.TotalCost, budget+1e-9)
		}

		g, err := Greedy(catalog, mdp.DefaultConfig(), budget, Options{})
		require.NoError(t, err)
		assert.LessOrEqual(t, g.Summary.TotalCost, budget+1e-9)

		bonuses := 0
		for _, st := range g.Steps {
			if st.Bonus > 0 {
				bonuses++
			}
		}
		assert.LessOrEqual(t, bonuses, 1)
	}
}

func TestBaselines_RejectNegativeBudget(t *testing.T) {
	_, err := Greedy(testCatalog(t), flatConfig(), -1, Options{})
	var cfgErr *mdp.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "budget", cfgErr.Field)

	_, err = Random(testCatalog(t), flatConfig(), -1, Options{})
	assert.Error(t, err)
}
