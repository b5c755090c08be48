package mdp

import (
	"fmt"

	"influencerMDP/domain"
)

type Trajectory struct {
	Steps   []domain.SelectionStep
	Summary domain.SelectionSummary
}

// Execute walks the policy forward from the initial state for the full
// horizon and records what each step spends and earns.
func Execute(sol *Solution) (Trajectory, error) {
	if sol == nil || sol.model == nil {
		return Trajectory{}, fmt.Errorf("execute: empty solution")
	}
	m := sol.model

	steps := make([]domain.SelectionStep, 0, sol.Horizon)
	summary := domain.SelectionSummary{Strategy: domain.StrategyMDP}
	groups := make(map[string]struct{})

	s := sol.Initial
	for t := 0; t < sol.Horizon; t++ {
		a, ok := sol.Policy.Action(s)
		if !ok {
			return Trajectory{}, fmt.Errorf("execute: no policy entry for %s", s)
		}

		b := m.Reward(s, a)
		next, err := m.Transition(s, a)
		if err != nil {
			return Trajectory{}, fmt.Errorf("execute step %d: %w", t, err)
		}

		step := domain.SelectionStep{
			Step:         t,
			Action:       "none",
			Engagement:   b.Engagement,
			Bonus:        b.DiversityBonus,
			Reward:       b.Total,
			BudgetBefore: m.costs.Amount(s.BudgetRemaining),
			BudgetAfter:  m.costs.Amount(next.BudgetRemaining),
		}
		if inf, ok := m.influencer(a); ok {
			step.Action = "select"
			step.InfluencerID = inf.ID
			step.Username = inf.Username
			step.Group = inf.Group
			step.Cost = m.costs.Amount(m.units[a.Index])

			summary.NumSelected++
			summary.TotalCost += step.Cost
			summary.SelectedIDs = append(summary.SelectedIDs, inf.ID)
			groups[inf.Group] = struct{}{}
		}

		summary.TotalEngagement += b.Engagement
		summary.TotalReward += b.Total
		steps = append(steps, step)
		s = next
	}

	summary.Diversity = len(groups)
	summary.DiversityCovered = s.DiversityCovered
	if budget := m.costs.Amount(sol.Initial.BudgetRemaining); budget > 0 {
		summary.BudgetUtilization = summary.TotalCost / budget
	}

	return Trajectory{Steps: steps, Summary: summary}, nil
}
