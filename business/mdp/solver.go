package mdp

import (
	"fmt"
	"math"
	"sort"
)

// Solver computes the optimal value function and greedy policy of the
// selection MDP by backward induction.
//
// Transitions are deterministic and the horizon is finite, so one backward
// sweep over the reachable states is exact; there is no discounting and no
// iteration to a fixed point.
type Solver struct {
	cfg Config
}

func NewSolver(cfg Config) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Solver{cfg: cfg}, nil
}

func (s *Solver) Config() Config {
	return s.cfg
}

// ValueTable maps (state, step) to the best cumulative reward obtainable
// from it. Step is part of State.
type ValueTable struct {
	values map[State]float64
}

func (t *ValueTable) Value(s State) (float64, bool) {
	v, ok := t.values[s]
	return v, ok
}

func (t *ValueTable) Len() int {
	return len(t.values)
}

// States returns every state in the table ordered by step, cursor, budget
// (descending) and coverage.
func (t *ValueTable) States() []State {
	out := make([]State, 0, len(t.values))
	for s := range t.values {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Step != b.Step {
			return a.Step < b.Step
		}
		if a.Cursor != b.Cursor {
			return a.Cursor < b.Cursor
		}
		if a.BudgetRemaining != b.BudgetRemaining {
			return a.BudgetRemaining > b.BudgetRemaining
		}
		return !a.DiversityCovered && b.DiversityCovered
	})
	return out
}

// Policy maps every non-terminal reachable state to its chosen action.
type Policy struct {
	actions map[State]Action
}

func (p *Policy) Action(s State) (Action, bool) {
	a, ok := p.actions[s]
	return a, ok
}

func (p *Policy) Len() int {
	return len(p.actions)
}

type Solution struct {
	Initial State
	Horizon int
	Values  *ValueTable
	Policy  *Policy

	model *Model
}

func (sol *Solution) Model() *Model {
	return sol.model
}

func (sol *Solution) InitialValue() float64 {
	v, _ := sol.Values.Value(sol.Initial)
	return v
}

// Solve builds the state space reachable from {budget, step 0, uncovered}
// and runs backward induction over it.
//
// Among actions with equal value the lowest influencer index wins, and any
// selection wins over "none".
func (s *Solver) Solve(catalog Catalog, budget float64, horizon int) (*Solution, error) {
	switch {
	case horizon <= 0:
		return nil, &ConfigurationError{Field: "horizon", Reason: fmt.Sprintf("must be positive, got %d", horizon)}
	case budget < 0 || math.IsNaN(budget) || math.IsInf(budget, 0):
		return nil, &ConfigurationError{Field: "budget", Reason: fmt.Sprintf("must be a non-negative finite amount, got %v", budget)}
	case budget > MaxBudget:
		return nil, &ConfigurationError{Field: "budget", Reason: fmt.Sprintf("must not exceed %g, got %g", MaxBudget, budget)}
	case catalog.Len() == 0:
		return nil, &ConfigurationError{Field: "catalog", Reason: "no influencers to select from"}
	}

	m := NewModel(catalog, s.cfg)
	initial := State{
		BudgetRemaining: m.costs.BudgetUnits(budget),
		Step:            0,
	}

	layers, err := s.reachable(m, initial, horizon)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, layer := range layers {
		total += len(layer)
	}

	values := make(map[State]float64, total)
	actions := make(map[State]Action, total-len(layers[horizon]))

	for _, st := range layers[horizon] {
		values[st] = 0
	}

	for t := horizon - 1; t >= 0; t-- {
		for _, st := range layers[t] {
			best := math.Inf(-1)
			bestAction := None()

			for _, a := range m.Feasible(st) {
				next, err := m.Transition(st, a)
				if err != nil {
					return nil, fmt.Errorf("backward induction: %w", err)
				}
				q := m.Reward(st, a).Total + values[next]
				if q > best {
					best = q
					bestAction = a
				}
			}

			values[st] = best
			actions[st] = bestAction
		}
	}

	return &Solution{
		Initial: initial,
		Horizon: horizon,
		Values:  &ValueTable{values: values},
		Policy:  &Policy{actions: actions},
		model:   m,
	}, nil
}

// reachable returns the distinct states reachable at each step 0..horizon,
// each layer in discovery order.
func (s *Solver) reachable(m *Model, initial State, horizon int) ([][]State, error) {
	layers := make([][]State, horizon+1)
	layers[0] = []State{initial}
	total := 1

	for t := 0; t < horizon; t++ {
		seen := make(map[State]struct{}, len(layers[t]))
		next := make([]State, 0, len(layers[t]))

		for _, st := range layers[t] {
			for _, a := range m.Feasible(st) {
				ns, err := m.Transition(st, a)
				if err != nil {
					return nil, fmt.Errorf("state enumeration: %w", err)
				}
				if _, ok := seen[ns]; ok {
					continue
				}
				seen[ns] = struct{}{}
				next = append(next, ns)
			}
		}

		total += len(next)
		if total > s.cfg.MaxStates {
			return nil, &ConfigurationError{
				Field:  "max_states",
				Reason: fmt.Sprintf("more than %d reachable states by step %d; raise budget_granularity or max_states", s.cfg.MaxStates, t+1),
			}
		}
		layers[t+1] = next
	}

	return layers, nil
}
