// Package main is the entry point of the card generator
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-cards/internal/config"
)

var (
	verbose bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "cardgen",
	Short: "D&D 5e card generator",
	Long: `cardgen scrapes spells, magic items, feats, invocations, class features,
ancestries and backgrounds from aidedd.org and writes them as printable cards.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()

		loaded, err := config.Load(".env", ".env.local")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		return nil
	},
}

func setupLogging() {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "cardgen",
	})
	slog.SetDefault(slog.New(logger))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(remoteCmd)
}
