package main

import (
	"influencerMDP/business/baseline"
	"influencerMDP/internal/report"

	"github.com/spf13/cobra"
)

var (
	baselineSeed int64
	baselineMax  int
)

var baselinesCmd = &cobra.Command{
	Use:   "baselines",
	Short: "Run the greedy and random selection heuristics",
	Long: `Runs the two reference heuristics on their own. Greedy books the best
engagement per cost first; random books in a seeded shuffled order. Both
take whatever still fits the budget.`,
	RunE: runBaselines,
}

func init() {
	baselinesCmd.Flags().Int64Var(&baselineSeed, "seed", baseline.DefaultSeed, "Seed for the random order")
	baselinesCmd.Flags().IntVar(&baselineMax, "max-selections", 0, "Cap on bookings (0 means no cap)")
	rootCmd.AddCommand(baselinesCmd)
}

func runBaselines(cmd *cobra.Command, args []string) error {
	in, err := loadInputs(cmd)
	if err != nil {
		return err
	}

	opts := baseline.Options{MaxSelections: baselineMax, Seed: baselineSeed}

	greedy, err := baseline.Greedy(in.catalog, in.cfg, in.budget, opts)
	if err != nil {
		return err
	}
	random, err := baseline.Random(in.catalog, in.cfg, in.budget, opts)
	if err != nil {
		return err
	}

	console := report.NewConsole(cmd.OutOrStdout(), !noColor)
	console.Plan(greedy.Steps, greedy.Summary)
	console.Plan(random.Steps, random.Summary)
	return nil
}
