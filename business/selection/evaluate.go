package selection

import (
	"fmt"
	"time"

	"influencerMDP/business/baseline"
	"influencerMDP/business/mdp"
	"influencerMDP/domain"
)

// Solve runs the solver and executes the optimal policy from the initial
// state. It records solve metrics but touches no storage, so the CLI can
// call it directly.
func Solve(catalog mdp.Catalog, cfg mdp.Config, budget float64, horizon int) (Outcome, time.Duration, error) {
	solver, err := mdp.NewSolver(cfg)
	if err != nil {
		return Outcome{}, 0, err
	}

	start := time.Now()
	sol, err := solver.Solve(catalog, budget, horizon)
	elapsed := time.Since(start)
	if err != nil {
		return Outcome{}, elapsed, err
	}

	SolveDurationSeconds.Observe(elapsed.Seconds())
	ReachableStates.Observe(float64(sol.Values.Len()))

	traj, err := mdp.Execute(sol)
	if err != nil {
		return Outcome{}, elapsed, fmt.Errorf("failed to execute policy: %w", err)
	}

	return Outcome{
		InitialValue: sol.InitialValue(),
		States:       sol.Values.Len(),
		Steps:        traj.Steps,
		Summary:      traj.Summary,
	}, elapsed, nil
}

// Baselines returns the greedy and random summaries, in that order, each
// capped at horizon picks.
func Baselines(catalog mdp.Catalog, cfg mdp.Config, budget float64, horizon int) ([]domain.SelectionSummary, error) {
	opts := baseline.Options{MaxSelections: horizon, Seed: baseline.DefaultSeed}

	greedy, err := baseline.Greedy(catalog, cfg, budget, opts)
	if err != nil {
		return nil, err
	}
	random, err := baseline.Random(catalog, cfg, budget, opts)
	if err != nil {
		return nil, err
	}

	return []domain.SelectionSummary{greedy.Summary, random.Summary}, nil
}
