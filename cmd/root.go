package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jerrychoi/bookroad/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "bookroad",
	Short: "Curated philosophy reading roadmaps, matched against the Aladin catalog",
	Long:  "Reconciles hand-curated reading roadmaps with live Aladin search results: matches curated works to catalog items, mines bestsellers for extended recommendations, and tracks favorites and reading progress locally.",
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
