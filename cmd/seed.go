package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/frostbnb/seedctl/internal/seeder"
	"github.com/frostbnb/seedctl/internal/vocab"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate and load the synthetic dataset",
	Long: `Clear every known table and repopulate it with freshly generated data.

Tables are filled in dependency order so each generator can reference the
ids its parents were assigned. The run is destructive: whatever the tables
held before is removed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		cfg, store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		if n, _ := cmd.Flags().GetInt("count"); n > 0 {
			cfg.Seed.Count = n
		}
		if n, _ := cmd.Flags().GetInt("admins"); n > 0 {
			cfg.Seed.Admins = n
		}
		if n, _ := cmd.Flags().GetInt("batch"); n > 0 {
			cfg.Seed.Batch = n
		}
		store.SetBatchSize(cfg.Seed.Batch)

		params, err := cfg.SeedParams()
		if err != nil {
			return err
		}
		v, err := vocab.New(params)
		if err != nil {
			return fmt.Errorf("invalid vocabulary: %w", err)
		}

		randSeed, _ := cmd.Flags().GetInt64("seed")
		if randSeed == 0 {
			randSeed = time.Now().UnixNano()
		}

		color.Cyan("🎅 Seeding %d base rows per table (provider: %s)", cfg.Seed.Count, cfg.Database.Provider)
		return seeder.New(store, v, randSeed).Run(ctx)
	},
}

func init() {
	seedCmd.Flags().Int("count", 0, "Base rows per table (overrides config)")
	seedCmd.Flags().Int("admins", 0, "Number of admin accounts (overrides config)")
	seedCmd.Flags().Int("batch", 0, "Rows per INSERT statement (overrides config)")
	seedCmd.Flags().Int64("seed", 0, "Random seed (default: current time)")
	rootCmd.AddCommand(seedCmd)
}
