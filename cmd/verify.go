package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/frostbnb/seedctl/internal/verify"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the seeded dataset for integrity",
	Long: `Run the full integrity battery against the database: population counts,
credential pairing, foreign-key resolution and payment detail consistency.

Every check runs regardless of earlier failures. The exit code is nonzero
if any check failed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		cfg, store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		results := verify.New(store, cfg.Verify.MinRows).Run(ctx)
		for _, r := range results {
			if r.Passed {
				color.Green("✓ %s (%s)", r.Name, r.Detail)
			} else {
				color.Red("✗ %s: %s", r.Name, r.Detail)
			}
		}

		if failed := verify.Failed(results); len(failed) > 0 {
			return fmt.Errorf("%d of %d checks failed", len(failed), len(results))
		}
		color.Cyan("🎁 All %d checks passed", len(results))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
