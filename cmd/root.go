// Package cmd wires the seedctl commands.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/frostbnb/seedctl/internal/config"
	"github.com/frostbnb/seedctl/internal/database"
)

var (
	cfgFile string
	Version = "1.4.0"
)

var rootCmd = &cobra.Command{
	Use:   "seedctl",
	Short: "Seed a vacation-rental database with synthetic test data",
	Long: `seedctl fills a vacation-rental database with synthetic, referentially
consistent test data and verifies its integrity afterward.

Tables are populated in dependency order, parents before children, so every
foreign key resolves by construction. A run replaces the previous dataset.

Database Support:
- PostgreSQL
- MySQL
- SQLite`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("seedctl version %s\n", Version)
			os.Exit(0)
		}
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./seedctl.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Print the version number")
}

func initConfig() {
	// .env is optional; environment variables win either way
	godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("seedctl.config")
		viper.SetConfigType("json")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			color.Red("Failed to read config file: %v", err)
			os.Exit(1)
		}
	}
}

// openStore loads and validates the config and connects to the configured
// database.
func openStore(ctx context.Context) (*config.Config, *database.SQLStore, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	dbURL, err := cfg.GetDatabaseURL()
	if err != nil {
		return nil, nil, err
	}

	store, err := database.Open(ctx, cfg.Database.Provider, dbURL)
	if err != nil {
		return nil, nil, err
	}
	return cfg, store, nil
}
