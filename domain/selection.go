package domain

import (
	"time"

	"gorm.io/datatypes"
)

const (
	StrategyMDP    = "mdp"
	StrategyGreedy = "greedy"
	StrategyRandom = "random"
)

// SelectionStep is one decision of an executed plan.
type SelectionStep struct {
	Step         int     `json:"step"`
	Action       string  `json:"action"` // "select" or "none"
	InfluencerID uint64  `json:"influencer_id,omitempty"`
	Username     string  `json:"username,omitempty"`
	Group        string  `json:"group,omitempty"`
	Cost         float64 `json:"cost"`
	Engagement   float64 `json:"engagement"`
	Bonus        float64 `json:"diversity_bonus"`
	Reward       float64 `json:"reward"`
	BudgetBefore float64 `json:"budget_before"`
	BudgetAfter  float64 `json:"budget_after"`
}

type SelectionSummary struct {
	Strategy          string   `json:"strategy"`
	TotalEngagement   float64  `json:"total_engagement"`
	TotalReward       float64  `json:"total_reward"`
	TotalCost         float64  `json:"total_cost"`
	NumSelected       int      `json:"num_selected"`
	Diversity         int      `json:"diversity"` // distinct groups selected
	BudgetUtilization float64  `json:"budget_utilization"`
	DiversityCovered  bool     `json:"diversity_covered"`
	SelectedIDs       []uint64 `json:"selected_ids"`
}

// SelectionRun is a persisted solver invocation and its executed plan.
type SelectionRun struct {
	ID            string         `gorm:"column:id;primaryKey" json:"id"`
	ConfigName    string         `gorm:"column:config_name;not null" json:"config_name"`
	Budget        float64        `gorm:"column:budget;type:numeric;not null" json:"budget"`
	Horizon       int            `gorm:"column:horizon;not null" json:"horizon"`
	CatalogSize   int            `gorm:"column:catalog_size;not null" json:"catalog_size"`
	States        int            `gorm:"column:states;not null" json:"states"`
	InitialValue  float64        `gorm:"column:initial_value;type:numeric" json:"initial_value"`
	Steps         datatypes.JSON `gorm:"column:steps;type:jsonb" json:"steps"`
	Summary       datatypes.JSON `gorm:"column:summary;type:jsonb" json:"summary"`
	Fingerprint   string         `gorm:"column:fingerprint;index" json:"fingerprint"`
	SolveDuration int64          `gorm:"column:solve_duration_ms" json:"solve_duration_ms"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SelectionRun) TableName() string {
	return "selection_runs"
}

type Comparison struct {
	Budget  float64            `json:"budget"`
	Horizon int                `json:"horizon"`
	Results []SelectionSummary `json:"results"`
}
