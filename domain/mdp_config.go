package domain

import (
	"time"

	"gorm.io/datatypes"
)

type EngagementWeights struct {
	Likes    float64 `json:"likes" yaml:"likes" validate:"gte=0"`
	Comments float64 `json:"comments" yaml:"comments" validate:"gte=0"`
	Saves    float64 `json:"saves" yaml:"saves" validate:"gte=0"`
}

// MDPConfig is a named, stored parameter set for the selection solver.
// Nil fields fall back to the solver defaults; a present zero is kept.
type MDPConfig struct {
	Name string `json:"name" gorm:"column:name;primaryKey"`

	Budget  *float64 `json:"budget,omitempty" gorm:"column:budget"`
	Horizon *int     `json:"horizon,omitempty" gorm:"column:horizon"`

	WeightLikes    *float64 `json:"weight_likes,omitempty" gorm:"column:weight_likes"`
	WeightComments *float64 `json:"weight_comments,omitempty" gorm:"column:weight_comments"`
	WeightSaves    *float64 `json:"weight_saves,omitempty" gorm:"column:weight_saves"`

	// affirmative action
	DiversityBonus      *float64 `json:"diversity_first_selection_bonus,omitempty" gorm:"column:diversity_bonus"`
	AffirmativeDiscount *float64 `json:"affirmative_discount,omitempty" gorm:"column:affirmative_discount"`

	EngagementCostWeight *float64 `json:"engagement_cost_weight,omitempty" gorm:"column:engagement_cost_weight"`
	FollowerCostWeight   *float64 `json:"follower_cost_weight,omitempty" gorm:"column:follower_cost_weight"`
	MinEffectiveCost     *float64 `json:"min_effective_cost,omitempty" gorm:"column:min_effective_cost"`

	BudgetGranularity *int64 `json:"budget_granularity,omitempty" gorm:"column:budget_granularity"`
	MaxStates         *int   `json:"max_states,omitempty" gorm:"column:max_states"`

	GroupsRaw              datatypes.JSON `json:"-" gorm:"column:underrepresented_groups;type:jsonb"`
	UnderrepresentedGroups []string       `json:"underrepresented_groups" gorm:"-"`

	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (MDPConfig) TableName() string {
	return "mdp_configs"
}
