package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/frostbnb/seedctl/internal/config"
)

const configFileName = "seedctl.config.json"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default seedctl.config.json",
	Long: `Create a seedctl.config.json in the current directory with the default
provider, row counts and verification thresholds, ready to edit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(configFileName); err == nil {
			return fmt.Errorf("%s already exists", configFileName)
		}

		raw, err := json.MarshalIndent(config.Default(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		if err := os.WriteFile(configFileName, append(raw, '\n'), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", configFileName, err)
		}

		color.Green("✓ Created %s", configFileName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
