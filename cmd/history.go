package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/tripcost/internal/cli"
	"github.com/theirongolddev/tripcost/internal/config"
	"github.com/theirongolddev/tripcost/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously exported plans",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "l", 20, "Number of plans to show (0 = all)")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Forget all recorded plans")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.Archive.Enabled {
		return errors.New("plan history is disabled (archive.enabled = false)")
	}

	archive, err := store.Open(config.ArchivePath(cfg))
	if err != nil {
		return err
	}
	defer func() { _ = archive.Close() }()

	if flagHistoryClear {
		n, err := archive.Count()
		if err != nil {
			return err
		}
		if err := archive.Clear(); err != nil {
			return fmt.Errorf("clearing history: %w", err)
		}
		status("Removed %d plans from history", n)
		return nil
	}

	entries, err := archive.List(flagHistoryLimit)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("\n  No exported plans yet. Save one with `tripcost plan --json FILE` or [s] in the TUI.")
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.SavedAt.Local().Format("2006-01-02 15:04"),
			strings.Join(e.Cities, " → "),
			fmt.Sprintf("%d", e.Days),
			e.Transport,
			cli.FormatMoney(e.TotalCost, cfg.General.Currency),
			cli.FormatMoney(e.Budget, cfg.General.Currency),
			strings.ToUpper(e.Format),
			e.Path,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Exported plans",
		Headers: []string{"Saved", "Route", "Days", "Transport", "Total", "Budget", "Format", "File"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}
