package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/theirongolddev/tripcost/internal/config"
	"github.com/theirongolddev/tripcost/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagConfig string
	flagQuiet  bool
)

var rootCmd = &cobra.Command{
	Use:   "tripcost",
	Short: "Trip cost estimator",
	Long: "Estimate the cost of a multi-city trip: transport, hotels and food,\n" +
		"checked against your budget.",
	SilenceUsage:      true,
	PersistentPreRunE: loadEnv,
	RunE:              runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Config file (default ~/.config/tripcost/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress status output")
}

// loadEnv reads .env and points the config layer at --config.
func loadEnv(_ *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	if flagConfig != "" {
		return os.Setenv(config.EnvConfig, flagConfig)
	}
	return nil
}

// loadConfig is the shared config path used by all commands: the file
// (or defaults) with environment overrides on top.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	return config.ApplyEnv(cfg)
}

// openArchive opens the plan history, or returns nil when it is disabled
// or unavailable. History never blocks planning or exports.
func openArchive(cfg config.Config) *store.Archive {
	if !cfg.Archive.Enabled {
		return nil
	}
	a, err := store.Open(config.ArchivePath(cfg))
	if err != nil {
		log.Printf("warning: plan history unavailable: %v", err)
		return nil
	}
	return a
}

// status prints a progress line to stderr unless --quiet is set.
func status(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "  "+format+"\n", args...)
}
