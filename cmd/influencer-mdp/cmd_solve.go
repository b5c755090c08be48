package main

import (
	"fmt"
	"time"

	"influencerMDP/business/selection"
	"influencerMDP/internal/report"

	"github.com/spf13/cobra"
)

var solveOut string

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the selection MDP and print the optimal plan",
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveOut, "out", "", "Write the plan as JSON to this path")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	in, err := loadInputs(cmd)
	if err != nil {
		return err
	}

	out, elapsed, err := selection.Solve(in.catalog, in.cfg, in.budget, in.horizon)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	report.NewConsole(w, !noColor).Plan(out.Steps, out.Summary)
	fmt.Fprintf(w, "value=%.1f states=%d solved_in=%s\n", out.InitialValue, out.States, elapsed.Round(time.Microsecond))

	if solveOut != "" {
		if err := report.WriteJSON(solveOut, out); err != nil {
			return err
		}
		fmt.Fprintf(w, "plan written to %s\n", solveOut)
	}
	return nil
}
