package mdp

import "influencerMDP/domain"

// Model binds a catalog to its cost and reward models. Per-influencer cost
// units are computed once.
type Model struct {
	catalog Catalog
	costs   CostModel
	rewards RewardModel
	units   []int64
	under   []bool
}

func NewModel(catalog Catalog, cfg Config) *Model {
	m := &Model{
		catalog: catalog,
		costs:   NewCostModel(cfg),
		rewards: NewRewardModel(cfg),
		units:   make([]int64, catalog.Len()),
		under:   make([]bool, catalog.Len()),
	}
	for i := 0; i < catalog.Len(); i++ {
		inf := catalog.At(i)
		m.units[i] = m.costs.Units(inf)
		m.under[i] = m.rewards.Underrepresented(inf)
	}
	return m
}

func (m *Model) Catalog() Catalog {
	return m.catalog
}

func (m *Model) Costs() CostModel {
	return m.costs
}

func (m *Model) Rewards() RewardModel {
	return m.rewards
}

// CostUnits is the budget charged for selecting influencer i.
func (m *Model) CostUnits(i int) int64 {
	return m.units[i]
}

// Feasible lists the legal actions at s: every influencer at or after the
// cursor that fits the remaining budget in ascending index order, then none.
func (m *Model) Feasible(s State) []Action {
	actions := make([]Action, 0, len(m.units)-s.Cursor+1)
	for i := s.Cursor; i < len(m.units); i++ {
		if m.units[i] <= s.BudgetRemaining {
			actions = append(actions, Select(i))
		}
	}
	return append(actions, None())
}

// Transition returns the successor of s under a. It is deterministic.
func (m *Model) Transition(s State, a Action) (State, error) {
	next := s
	next.Step = s.Step + 1

	if a.IsNone() {
		return next, nil
	}

	i := a.Index
	switch {
	case i < 0 || i >= len(m.units):
		return State{}, &InfeasibleActionError{State: s, Action: a, Reason: "no such influencer"}
	case i < s.Cursor:
		return State{}, &InfeasibleActionError{State: s, Action: a, Reason: "influencer already selected or passed"}
	case m.units[i] > s.BudgetRemaining:
		return State{}, &InfeasibleActionError{State: s, Action: a, Reason: "cost exceeds remaining budget"}
	}

	next.BudgetRemaining = s.BudgetRemaining - m.units[i]
	next.DiversityCovered = s.DiversityCovered || m.under[i]
	next.Cursor = i + 1
	return next, nil
}

func (m *Model) Reward(s State, a Action) Breakdown {
	if a.IsNone() || a.Index < 0 || a.Index >= m.catalog.Len() {
		return m.rewards.Reward(s, nil)
	}
	inf := m.catalog.At(a.Index)
	return m.rewards.Reward(s, &inf)
}

func (m *Model) influencer(a Action) (domain.Influencer, bool) {
	if a.IsNone() || a.Index < 0 || a.Index >= m.catalog.Len() {
		return domain.Influencer{}, false
	}
	return m.catalog.At(a.Index), true
}
