package mdp

import "fmt"

// ConfigurationError reports inputs the solver refuses to run with. Nothing
// is computed when it is returned.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// InfeasibleActionError is returned by Transition for an action that is not
// legal in the given state. The solver only offers feasible actions, so seeing
// one from Solve or Execute means the feasibility filter is broken.
type InfeasibleActionError struct {
	State  State
	Action Action
	Reason string
}

func (e *InfeasibleActionError) Error() string {
	return fmt.Sprintf("infeasible action %s at %s: %s", e.Action, e.State, e.Reason)
}
