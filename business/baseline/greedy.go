package baseline

import (
	"sort"

	"influencerMDP/business/mdp"
	"influencerMDP/domain"
)

// Greedy ranks influencers by engagement per effective cost and takes them
// while they fit. Ties keep catalog order.
func Greedy(catalog mdp.Catalog, cfg mdp.Config, budget float64, opts Options) (mdp.Trajectory, error) {
	if err := checkBudget(budget); err != nil {
		return mdp.Trajectory{}, err
	}

	m := mdp.NewModel(catalog, cfg)
	costs := m.Costs()
	rewards := m.Rewards()

	ratio := make([]float64, catalog.Len())
	order := make([]int, catalog.Len())
	for i := range order {
		inf := catalog.At(i)
		ratio[i] = rewards.Engagement(inf) / costs.EffectiveCost(inf)
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		return ratio[order[a]] > ratio[order[b]]
	})

	return walk(domain.StrategyGreedy, m, budget, order, opts.MaxSelections), nil
}
