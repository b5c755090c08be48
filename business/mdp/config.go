package mdp

import (
	"fmt"
	"math"

	"influencerMDP/domain"
)

type Config struct {
	// total spend cap and number of decision steps
	Budget  float64
	Horizon int

	Weights domain.EngagementWeights

	UnderrepresentedGroups []string

	// one-time reward for the first underrepresented selection; must dwarf engagement
	DiversityBonus float64

	// cost multiplier for underrepresented groups, in (0, 1]
	AffirmativeDiscount float64

	EngagementCostWeight float64
	FollowerCostWeight   float64
	MinEffectiveCost     float64

	// cents per budget unit; costs round up and the budget rounds down to it
	BudgetGranularity int64

	// upper bound on reachable states across all steps
	MaxStates int
}

const (
	defaultBudget               = 1000.0
	defaultHorizon              = 5
	defaultWeightLikes          = 1.0
	defaultWeightComments       = 2.0
	defaultWeightSaves          = 3.0
	defaultDiversityBonus       = 500000.0
	defaultAffirmativeDiscount  = 0.8
	defaultEngagementCostWeight = 0.25
	defaultFollowerCostWeight   = 0.02
	defaultMinEffectiveCost     = 0.01
	defaultBudgetGranularity    = 1
	defaultMaxStates            = 2_000_000
)

var defaultUnderrepresentedGroups = []string{
	"Black",
	"Hispanic",
	"Indigenous",
	"AAPI",
	"LGBTQ+",
	"Disabled",
}

func DefaultConfig() Config {
	groups := make([]string, len(defaultUnderrepresentedGroups))
	copy(groups, defaultUnderrepresentedGroups)

	return Config{
		Budget:  defaultBudget,
		Horizon: defaultHorizon,
		Weights: domain.EngagementWeights{
			Likes:    defaultWeightLikes,
			Comments: defaultWeightComments,
			Saves:    defaultWeightSaves,
		},
		UnderrepresentedGroups: groups,
		DiversityBonus:         defaultDiversityBonus,
		AffirmativeDiscount:    defaultAffirmativeDiscount,
		EngagementCostWeight:   defaultEngagementCostWeight,
		FollowerCostWeight:     defaultFollowerCostWeight,
		MinEffectiveCost:       defaultMinEffectiveCost,
		BudgetGranularity:      defaultBudgetGranularity,
		MaxStates:              defaultMaxStates,
	}
}

// Validate checks the model parameters, including the default Budget and
// Horizon. Solve checks the per-request values again.
func (c Config) Validate() error {
	switch {
	case c.Budget < 0 || c.Budget > MaxBudget || math.IsNaN(c.Budget):
		return &ConfigurationError{Field: "budget", Reason: fmt.Sprintf("must be a finite amount in [0, %g]", MaxBudget)}
	case c.Horizon < 1:
		return &ConfigurationError{Field: "horizon", Reason: "must be positive"}
	case c.Weights.Likes < 0 || c.Weights.Comments < 0 || c.Weights.Saves < 0:
		return &ConfigurationError{Field: "engagement_weights", Reason: "weights must be non-negative"}
	case !(c.DiversityBonus > 0) || math.IsInf(c.DiversityBonus, 0):
		return &ConfigurationError{Field: "diversity_first_selection_bonus", Reason: "must be a positive finite number"}
	case !(c.AffirmativeDiscount > 0) || c.AffirmativeDiscount > 1:
		return &ConfigurationError{Field: "affirmative_discount", Reason: "must be in (0, 1]"}
	case c.EngagementCostWeight < 0 || c.FollowerCostWeight < 0:
		return &ConfigurationError{Field: "cost_weights", Reason: "must be non-negative"}
	case !(c.MinEffectiveCost > 0):
		return &ConfigurationError{Field: "min_effective_cost", Reason: "must be positive"}
	case c.BudgetGranularity < 1:
		return &ConfigurationError{Field: "budget_granularity", Reason: "must be at least one cent"}
	case c.MaxStates < 1:
		return &ConfigurationError{Field: "max_states", Reason: "must be positive"}
	}
	return nil
}

// WithRecord overlays a stored parameter set on c. Every field present in
// the record replaces the value from c, zero included; nil fields keep it.
func (c Config) WithRecord(rec domain.MDPConfig) Config {
	out := c

	overlay(&out.Budget, rec.Budget)
	overlay(&out.Horizon, rec.Horizon)
	overlay(&out.Weights.Likes, rec.WeightLikes)
	overlay(&out.Weights.Comments, rec.WeightComments)
	overlay(&out.Weights.Saves, rec.WeightSaves)
	overlay(&out.DiversityBonus, rec.DiversityBonus)
	overlay(&out.AffirmativeDiscount, rec.AffirmativeDiscount)
	overlay(&out.EngagementCostWeight, rec.EngagementCostWeight)
	overlay(&out.FollowerCostWeight, rec.FollowerCostWeight)
	overlay(&out.MinEffectiveCost, rec.MinEffectiveCost)
	overlay(&out.BudgetGranularity, rec.BudgetGranularity)
	overlay(&out.MaxStates, rec.MaxStates)

	if len(rec.UnderrepresentedGroups) > 0 {
		out.UnderrepresentedGroups = append([]string(nil), rec.UnderrepresentedGroups...)
	}

	return out
}

func overlay[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func ptrTo[T any](v T) *T {
	return &v
}

// Record converts c into its stored form under name. Every field is set.
func (c Config) Record(name string) domain.MDPConfig {
	return domain.MDPConfig{
		Name:                   name,
		Budget:                 ptrTo(c.Budget),
		Horizon:                ptrTo(c.Horizon),
		WeightLikes:            ptrTo(c.Weights.Likes),
		WeightComments:         ptrTo(c.Weights.Comments),
		WeightSaves:            ptrTo(c.Weights.Saves),
		DiversityBonus:         ptrTo(c.DiversityBonus),
		AffirmativeDiscount:    ptrTo(c.AffirmativeDiscount),
		EngagementCostWeight:   ptrTo(c.EngagementCostWeight),
		FollowerCostWeight:     ptrTo(c.FollowerCostWeight),
		MinEffectiveCost:       ptrTo(c.MinEffectiveCost),
		BudgetGranularity:      ptrTo(c.BudgetGranularity),
		MaxStates:              ptrTo(c.MaxStates),
		UnderrepresentedGroups: append([]string(nil), c.UnderrepresentedGroups...),
	}
}
