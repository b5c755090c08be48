package config

import (
	"fmt"
	"os"

	"influencerMDP/domain"

	"gopkg.in/yaml.v3"
)

// MDPFile is the YAML form of the solver parameters. Omitted keys keep the
// built-in defaults; a key set to 0 is kept as 0.
//
//	budget: 1000
//	horizon: 5
//	engagement_weights: {likes: 1, comments: 2, saves: 3}
//	underrepresented_groups: [Black, Hispanic]
//	diversity_first_selection_bonus: 500000
//	engagement_cost_weight: 0
type MDPFile struct {
	Name                   string       `yaml:"name"`
	Budget                 *float64     `yaml:"budget"`
	Horizon                *int         `yaml:"horizon"`
	EngagementWeights      *fileWeights `yaml:"engagement_weights"`
	UnderrepresentedGroups []string     `yaml:"underrepresented_groups"`
	DiversityBonus         *float64     `yaml:"diversity_first_selection_bonus"`
	AffirmativeDiscount    *float64     `yaml:"affirmative_discount"`
	EngagementCostWeight   *float64     `yaml:"engagement_cost_weight"`
	FollowerCostWeight     *float64     `yaml:"follower_cost_weight"`
	MinEffectiveCost       *float64     `yaml:"min_effective_cost"`
	BudgetGranularity      *int64       `yaml:"budget_granularity"`
	MaxStates              *int         `yaml:"max_states"`
}

type fileWeights struct {
	Likes    *float64 `yaml:"likes"`
	Comments *float64 `yaml:"comments"`
	Saves    *float64 `yaml:"saves"`
}

// LoadMDPFile reads path and returns it as a stored-config record, ready to
// be overlaid on the solver defaults.
func LoadMDPFile(path string) (domain.MDPConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.MDPConfig{}, fmt.Errorf("failed to read mdp config: %w", err)
	}

	var f MDPFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return domain.MDPConfig{}, fmt.Errorf("failed to parse mdp config %s: %w", path, err)
	}

	return f.Record(), nil
}

func (f MDPFile) Record() domain.MDPConfig {
	rec := domain.MDPConfig{
		Name:                   f.Name,
		Budget:                 f.Budget,
		Horizon:                f.Horizon,
		DiversityBonus:         f.DiversityBonus,
		AffirmativeDiscount:    f.AffirmativeDiscount,
		EngagementCostWeight:   f.EngagementCostWeight,
		FollowerCostWeight:     f.FollowerCostWeight,
		MinEffectiveCost:       f.MinEffectiveCost,
		BudgetGranularity:      f.BudgetGranularity,
		MaxStates:              f.MaxStates,
		UnderrepresentedGroups: f.UnderrepresentedGroups,
	}
	if f.EngagementWeights != nil {
		rec.WeightLikes = f.EngagementWeights.Likes
		rec.WeightComments = f.EngagementWeights.Comments
		rec.WeightSaves = f.EngagementWeights.Saves
	}
	return rec
}
