package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/timber-cli/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "timber-cli",
	Short: "Timber asset valuation pipeline",
	Long:  "Joins forest-inventory biomass extracts with regional stumpage prices to estimate standing timber volume and value for the South and Great Lakes markets.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
