package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"influencerMDP/domain"
)

// Results is the on-disk form of a comparison: one summary per strategy,
// keyed by strategy name, plus the MDP steps.
type Results struct {
	Budget     float64                            `json:"budget"`
	Horizon    int                                `json:"horizon"`
	Strategies map[string]domain.SelectionSummary `json:"strategies"`
	Steps      []domain.SelectionStep             `json:"mdp_steps,omitempty"`
}

func NewResults(cmp domain.Comparison, steps []domain.SelectionStep) Results {
	res := Results{
		Budget:     cmp.Budget,
		Horizon:    cmp.Horizon,
		Strategies: make(map[string]domain.SelectionSummary, len(cmp.Results)),
		Steps:      steps,
	}
	for _, s := range cmp.Results {
		res.Strategies[s.Strategy] = s
	}
	return res
}

// WriteJSON writes v indented to path, creating parent directories.
func WriteJSON(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}
