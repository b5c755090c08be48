package baseline

import (
	"fmt"
	"math"

	"influencerMDP/business/mdp"
	"influencerMDP/domain"
)

const DefaultSeed int64 = 42

// Options bound a baseline run. MaxSelections of 0 means no cap; the
// comparison endpoints pass the MDP horizon so all strategies get the same
// number of picks.
type Options struct {
	MaxSelections int
	Seed          int64
}

func checkBudget(budget float64) error {
	if budget < 0 || math.IsNaN(budget) || math.IsInf(budget, 0) {
		return &mdp.ConfigurationError{Field: "budget", Reason: fmt.Sprintf("must be a non-negative finite amount, got %v", budget)}
	}
	if budget > mdp.MaxBudget {
		return &mdp.ConfigurationError{Field: "budget", Reason: fmt.Sprintf("must not exceed %g, got %g", mdp.MaxBudget, budget)}
	}
	return nil
}

// walk visits catalog indices in order and takes every influencer that
// still fits the budget. Costs and rewards come from the same model the
// solver uses, so the diversity bonus is paid at most once.
func walk(strategy string, m *mdp.Model, budget float64, order []int, maxSelections int) mdp.Trajectory {
	costs := m.Costs()
	rewards := m.Rewards()
	catalog := m.Catalog()

	initial := costs.BudgetUnits(budget)
	s := mdp.State{BudgetRemaining: initial}

	summary := domain.SelectionSummary{Strategy: strategy}
	steps := make([]domain.SelectionStep, 0, len(order))
	groups := make(map[string]struct{})

	for _, i := range order {
		if maxSelections > 0 && summary.NumSelected >= maxSelections {
			break
		}
		units := m.CostUnits(i)
		if units > s.BudgetRemaining {
			continue
		}

		inf := catalog.At(i)
		b := rewards.Reward(s, &inf)

		step := domain.SelectionStep{
			Step:         s.Step,
			Action:       "select",
			InfluencerID: inf.ID,
			Username:     inf.Username,
			Group:        inf.Group,
			Cost:         costs.Amount(units),
			Engagement:   b.Engagement,
			Bonus:        b.DiversityBonus,
			Reward:       b.Total,
			BudgetBefore: costs.Amount(s.BudgetRemaining),
		}

		s.BudgetRemaining -= units
		s.Step++
		s.DiversityCovered = s.DiversityCovered || rewards.Underrepresented(inf)
		step.BudgetAfter = costs.Amount(s.BudgetRemaining)
		steps = append(steps, step)

		summary.NumSelected++
		summary.TotalCost += step.Cost
		summary.TotalEngagement += b.Engagement
		summary.TotalReward += b.Total
		summary.SelectedIDs = append(summary.SelectedIDs, inf.ID)
		groups[inf.Group] = struct{}{}
	}

	summary.Diversity = len(groups)
	summary.DiversityCovered = s.DiversityCovered
	if amount := costs.Amount(initial); amount > 0 {
		summary.BudgetUtilization = summary.TotalCost / amount
	}

	return mdp.Trajectory{Steps: steps, Summary: summary}
}
