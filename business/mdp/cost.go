package mdp

import (
	"math"

	"influencerMDP/domain"
)

// CostModel prices an influencer. It is pure and never returns a
// non-positive cost.
type CostModel struct {
	engagementWeight float64
	followerWeight   float64
	discount         float64
	floor            float64
	granularity      int64
	groups           groupSet
}

func NewCostModel(cfg Config) CostModel {
	granularity := cfg.BudgetGranularity
	if granularity < 1 {
		granularity = 1
	}
	floor := cfg.MinEffectiveCost
	if !(floor > 0) {
		floor = defaultMinEffectiveCost
	}
	return CostModel{
		engagementWeight: cfg.EngagementCostWeight,
		followerWeight:   cfg.FollowerCostWeight,
		discount:         cfg.AffirmativeDiscount,
		floor:            floor,
		granularity:      granularity,
		groups:           newGroupSet(cfg.UnderrepresentedGroups),
	}
}

// EngagementRate is the precomputed rate when present, otherwise
// engagement / followers. Clamped to [0, 1].
func EngagementRate(inf domain.Influencer) float64 {
	var rate float64
	if inf.EngagementRate != nil {
		rate = *inf.EngagementRate
	} else {
		followers := float64(inf.Followers)
		if followers < 1 {
			followers = 1
		}
		rate = inf.Engagement() / followers
	}

	switch {
	case math.IsNaN(rate) || rate < 0:
		return 0
	case rate > 1:
		return 1
	}
	return rate
}

func (m CostModel) EffectiveCost(inf domain.Influencer) float64 {
	engagementFactor := 1 + m.engagementWeight*EngagementRate(inf)

	followers := float64(inf.Followers)
	if followers < 0 {
		followers = 0
	}
	followerFactor := 1 + m.followerWeight*math.Log10(1+followers)

	cost := inf.BaseCost * engagementFactor * followerFactor
	if m.groups.contains(inf.Group) {
		cost *= m.discount
	}

	if math.IsNaN(cost) || cost < m.floor {
		return m.floor
	}
	return cost
}

// Units is the effective cost in budget units, rounded up.
func (m CostModel) Units(inf domain.Influencer) int64 {
	cents := toCents(m.EffectiveCost(inf), math.Ceil)
	units := (cents + m.granularity - 1) / m.granularity
	if units < 1 {
		units = 1
	}
	return units
}

// BudgetUnits converts a spend cap into budget units, rounded down.
func (m CostModel) BudgetUnits(budget float64) int64 {
	return toCents(budget, math.Floor) / m.granularity
}

// Amount converts budget units back to currency.
func (m CostModel) Amount(units int64) float64 {
	return float64(units*m.granularity) / 100
}

// MaxBudget is the largest spend cap the solver accepts. Every amount at or
// below it converts to cents without leaving int64.
const MaxBudget = 1e13

// maxCents saturates conversions of costs above MaxBudget. It is far above
// any accepted budget, so a saturated cost is never affordable.
const maxCents = math.MaxInt64 / 4

// toCents rounds to micro-currency first so binary noise such as
// 80.00000000001 does not push a value into the next cent.
func toCents(amount float64, round func(float64) float64) int64 {
	if math.IsNaN(amount) {
		return 0
	}
	cents := round(math.Round(amount*1e6) / 1e4)
	switch {
	case cents >= maxCents:
		return maxCents
	case cents <= -maxCents:
		return -maxCents
	}
	return int64(cents)
}

type groupSet map[string]struct{}

func newGroupSet(groups []string) groupSet {
	set := make(groupSet, len(groups))
	for _, g := range groups {
		set[g] = struct{}{}
	}
	return set
}

func (s groupSet) contains(group string) bool {
	_, ok := s[group]
	return ok
}
