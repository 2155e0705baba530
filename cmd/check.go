package cmd

import (
	"context"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check database connectivity",
	Long: `Connect to the configured database and ping it. Useful as a smoke test
before seeding, or in CI to wait for a container to come up.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cfg, store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Ping(ctx); err != nil {
			return err
		}
		color.Green("✓ Connected (%s)", cfg.Database.Provider)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
