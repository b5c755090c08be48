package main

import (
	"fmt"
	"os"

	"influencerMDP/business/mdp"
	"influencerMDP/internal/repository/csvfile"
	"influencerMDP/pkg/config"
	"influencerMDP/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	dataPath    string
	configPath  string
	budget      float64
	horizon     int
	granularity int64
	strict      bool
	noColor     bool
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "influencer-mdp",
	Short: "Budget-constrained influencer selection",
	Long: `influencer-mdp picks influencers for a campaign under a spending cap.

Selection is solved as a finite-horizon MDP: each step either books one
influencer or passes. Influencers from underrepresented groups cost less
and the first one booked earns a one-time diversity bonus.

Plans run offline against a CSV catalog; use "import" to load the same
file into the API database.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger.SetOutput(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: noColor}, level)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataPath, "data", "data/influencers.csv", "Influencer catalog CSV")
	pf.StringVar(&configPath, "config", "", "YAML file with MDP parameters")
	pf.Float64Var(&budget, "budget", 0, "Campaign budget (overrides config)")
	pf.IntVar(&horizon, "horizon", 0, "Number of decision steps (overrides config)")
	pf.Int64Var(&granularity, "granularity", 0, "Cents per budget unit (overrides config)")
	pf.BoolVar(&strict, "strict", false, "Fail on the first invalid CSV row instead of skipping it")
	pf.BoolVar(&noColor, "no-color", false, "Disable colored output")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Log at debug level")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type inputs struct {
	catalog mdp.Catalog
	cfg     mdp.Config
	budget  float64
	horizon int
}

// loadInputs builds the model parameters (defaults, then --config, then
// explicit flags) and reads the catalog.
func loadInputs(cmd *cobra.Command) (inputs, error) {
	cfg := mdp.DefaultConfig()
	if configPath != "" {
		rec, err := config.LoadMDPFile(configPath)
		if err != nil {
			return inputs{}, err
		}
		cfg = cfg.WithRecord(rec)
	}

	flags := cmd.Flags()
	if flags.Changed("budget") {
		cfg.Budget = budget
	}
	if flags.Changed("horizon") {
		cfg.Horizon = horizon
	}
	if flags.Changed("granularity") {
		cfg.BudgetGranularity = granularity
	}
	if err := cfg.Validate(); err != nil {
		return inputs{}, err
	}

	res, err := csvfile.LoadFile(dataPath, csvfile.Options{Strict: strict})
	if err != nil {
		return inputs{}, err
	}
	for _, rej := range res.Rejected {
		logger.Warn("skipped catalog row", "path", dataPath, "line", rej.Line, "reason", rej.Reason)
	}

	catalog, err := mdp.NewCatalog(res.Influencers)
	if err != nil {
		return inputs{}, fmt.Errorf("invalid catalog: %w", err)
	}

	logger.Debug("catalog loaded",
		"path", dataPath,
		"influencers", catalog.Len(),
		"rejected", len(res.Rejected),
		"budget", cfg.Budget,
		"horizon", cfg.Horizon,
	)

	return inputs{catalog: catalog, cfg: cfg, budget: cfg.Budget, horizon: cfg.Horizon}, nil
}
