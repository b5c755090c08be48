package main

import (
	"fmt"
	"os"

	"influencerMDP/business/selection"
	"influencerMDP/domain"
	"influencerMDP/internal/report"

	"github.com/spf13/cobra"
)

var (
	compareOut   string
	compareChart string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the MDP plan against greedy and random",
	Long: `Solves the MDP and runs both baselines on the same catalog, budget and
cost model. Baselines are capped at the horizon.`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&compareOut, "out", "", "Write results as JSON to this path")
	compareCmd.Flags().StringVar(&compareChart, "chart", "", "Write an HTML chart to this path")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	in, err := loadInputs(cmd)
	if err != nil {
		return err
	}

	out, _, err := selection.Solve(in.catalog, in.cfg, in.budget, in.horizon)
	if err != nil {
		return err
	}
	baselines, err := selection.Baselines(in.catalog, in.cfg, in.budget, in.horizon)
	if err != nil {
		return err
	}

	cmp := domain.Comparison{
		Budget:  in.budget,
		Horizon: in.horizon,
		Results: append([]domain.SelectionSummary{out.Summary}, baselines...),
	}

	w := cmd.OutOrStdout()
	report.NewConsole(w, !noColor).Comparison(cmp)

	if compareOut != "" {
		if err := report.WriteJSON(compareOut, report.NewResults(cmp, out.Steps)); err != nil {
			return err
		}
		fmt.Fprintf(w, "results written to %s\n", compareOut)
	}

	if compareChart != "" {
		f, err := os.Create(compareChart)
		if err != nil {
			return fmt.Errorf("failed to create chart file: %w", err)
		}
		defer f.Close()

		if err := report.RenderComparison(f, cmp, out.Steps); err != nil {
			return err
		}
		fmt.Fprintf(w, "chart written to %s\n", compareChart)
	}
	return nil
}
