package main

import (
	"fmt"

	"influencerMDP/internal/repository/csvfile"
	psqlRepo "influencerMDP/internal/repository/postgres"
	"influencerMDP/pkg/config"
	"influencerMDP/pkg/database"
	"influencerMDP/pkg/logger"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load the CSV catalog into the API database",
	Long: `Reads --data and inserts every valid row into Postgres. Database
settings come from the same environment as the API server. Rows keep
their file order; ids are assigned by the database.`,
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	res, err := csvfile.LoadFile(dataPath, csvfile.Options{Strict: strict})
	if err != nil {
		return err
	}
	for _, rej := range res.Rejected {
		logger.Warn("skipped catalog row", "path", dataPath, "line", rej.Line, "reason", rej.Reason)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	db, err := database.InitPostgres(cfg)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}

	for i := range res.Influencers {
		res.Influencers[i].ID = 0
	}

	repo := psqlRepo.NewInfluencerRepository(db)
	if err := repo.CreateBatch(cmd.Context(), res.Influencers); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "imported %d influencers (%d rows skipped)\n", len(res.Influencers), len(res.Rejected))
	return nil
}
