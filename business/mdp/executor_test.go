//go:build !integration

package mdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_BonusCreditedOnce(t *testing.T) {
	cfg := DefaultConfig()
	sol, err := newSolver(t, cfg).Solve(mixedCatalog(t), 400, 4)
	require.NoError(t, err)

	traj, err := Execute(sol)
	require.NoError(t, err)
	require.Len(t, traj.Steps, 4)

	bonusSteps := 0
	underSelected := 0
	rewards := sol.Model().Rewards()
	for _, st := range traj.Steps {
		if st.Bonus > 0 {
			bonusSteps++
			assert.Equal(t, cfg.DiversityBonus, st.Bonus)
		}
		if st.Action == "select" {
			idx := -1
			for i := 0; i < sol.Model().Catalog().Len(); i++ {
				if sol.Model().Catalog().At(i).ID == st.InfluencerID {
					idx = i
				}
			}
			require.NotEqual(t, -1, idx)
			if rewards.Underrepresented(sol.Model().Catalog().At(idx)) {
				underSelected++
			}
		}
	}

	require.Positive(t, underSelected)
	assert.Equal(t, 1, bonusSteps)
	assert.True(t, traj.Summary.DiversityCovered)
}

func TestExecute_BudgetInvariant(t *testing.T) {
	for _, budget := range []float64{0, 40, 99.99, 150, 275.5, 1000} {
		sol, err := newSolver(t, DefaultConfig()).Solve(mixedCatalog(t), budget, 5)
		require.NoError(t, err)

		traj, err := Execute(sol)
		require.NoError(t, err)

		spent := 0.0
		prev := traj.Steps[0].BudgetBefore
		for _, st := range traj.Steps {
			spent += st.Cost
			assert.LessOrEqual(t, st.BudgetAfter, prev)
			prev = st.BudgetAfter
		}
		assert.LessOrEqual(t, spent, budget+1e-9)
		assert.InDelta(t, spent, traj.Summary.TotalCost, 1e-9)
		assert.InDelta(t, sol.InitialValue(), traj.Summary.TotalReward, 1e-6)
	}
}

func TestExecute_ScenarioBreakdown(t *testing.T) {
	sol, err := newSolver(t, scenarioConfig()).Solve(scenarioCatalog(t), 150, 1)
	require.NoError(t, err)

	traj, err := Execute(sol)
	require.NoError(t, err)
	require.Len(t, traj.Steps, 1)

	st := traj.Steps[0]
	assert.Equal(t, "select", st.Action)
	assert.Equal(t, uint64(2), st.InfluencerID)
	assert.Equal(t, 500.0, st.Engagement)
	assert.Equal(t, 500000.0, st.Bonus)
	assert.Equal(t, 500500.0, st.Reward)
	assert.Equal(t, 150.0, st.BudgetBefore)
	assert.Equal(t, 70.0, st.BudgetAfter)

	assert.Equal(t, 1, traj.Summary.NumSelected)
	assert.Equal(t, []uint64{2}, traj.Summary.SelectedIDs)
	assert.Equal(t, 1, traj.Summary.Diversity)
}

func TestExecute_NilSolution(t *testing.T) {
	_, err := Execute(nil)
	assert.Error(t, err)
}
