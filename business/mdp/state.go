package mdp

import "fmt"

// State is a node of the selection MDP. Budget is held in integer budget
// units (cents / BudgetGranularity) so equal budgets compare equal.
//
// Selections are made in ascending catalog order: influencers at index >=
// Cursor have not been selected or passed over. Total reward does not depend
// on the order of a set of selections, so this costs no optimality.
type State struct {
	BudgetRemaining  int64
	Step             int
	DiversityCovered bool
	Cursor           int
}

func (s State) String() string {
	return fmt.Sprintf("{budget=%d step=%d covered=%t cursor=%d}",
		s.BudgetRemaining, s.Step, s.DiversityCovered, s.Cursor)
}

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionSelect
)

// Action is either "select influencer Index" or "select none".
type Action struct {
	Kind  ActionKind
	Index int
}

func None() Action {
	return Action{Kind: ActionNone, Index: -1}
}

func Select(i int) Action {
	return Action{Kind: ActionSelect, Index: i}
}

func (a Action) IsNone() bool {
	return a.Kind == ActionNone
}

func (a Action) String() string {
	if a.IsNone() {
		return "none"
	}
	return fmt.Sprintf("select(%d)", a.Index)
}
