// Package cmd implements the tripcost CLI commands.
package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/tripcost/internal/cli"
	"github.com/theirongolddev/tripcost/internal/config"
	"github.com/theirongolddev/tripcost/internal/trip"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cur := cfg.General.Currency

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Hop distance:      %s\n", cli.FormatDistance(cfg.General.HopDistance))
	fmt.Printf("    Default days:      %d\n", cfg.General.DefaultDays)
	fmt.Printf("    Default budget:    %s\n", cli.FormatMoney(cfg.General.DefaultBudget, cur))
	fmt.Printf("    Default transport: %s\n", cfg.General.DefaultTransport)
	fmt.Printf("    Currency:          %s\n", cur)
	if cfg.General.ExportDir != "" {
		fmt.Printf("    Export directory:  %s\n", cfg.General.ExportDir)
	}
	fmt.Println()

	fmt.Println("  [Transport]")
	for _, m := range trip.Modes {
		fmt.Printf("    %-6s %s\n", m+":", cli.FormatPrice(config.PriceOf(cfg, m), cur))
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Archive]")
	if cfg.Archive.Enabled {
		fmt.Printf("    History: %s\n", config.ArchivePath(cfg))
	} else {
		fmt.Println("    History: disabled")
	}
	fmt.Println()

	if len(cfg.Routes) > 0 {
		fmt.Println("  [Routes]")
		for _, r := range cfg.Routes {
			fmt.Printf("    %s: %s\n", r.Name, strings.Join(r.Cities, ", "))
		}
		fmt.Println()
	}
	if len(cfg.Cities) > 0 {
		fmt.Printf("  [Cities] %d overrides\n\n", len(cfg.Cities))
	}

	if err := config.Validate(cfg); err != nil {
		fmt.Printf("  Problem: %v\n\n", err)
	}
	fmt.Println("  Run `tripcost setup` to reconfigure.")
	return nil
}
