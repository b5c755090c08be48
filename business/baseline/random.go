package baseline

import (
	"math/rand"

	"influencerMDP/business/mdp"
	"influencerMDP/domain"
)

// Random shuffles the catalog with a fixed seed and takes every influencer
// that still fits. The same seed always gives the same selection.
func Random(catalog mdp.Catalog, cfg mdp.Config, budget float64, opts Options) (mdp.Trajectory, error) {
	if err := checkBudget(budget); err != nil {
		return mdp.Trajectory{}, err
	}

	m := mdp.NewModel(catalog, cfg)

	seed := opts.Seed
	if seed == 0 {
		seed = DefaultSeed
	}
	rng := rand.New(rand.NewSource(seed))
	order := rng.Perm(catalog.Len())

	return walk(domain.StrategyRandom, m, budget, order, opts.MaxSelections), nil
}
