package cmd

import (
	"fmt"

	"github.com/theirongolddev/tripcost/internal/config"
	"github.com/theirongolddev/tripcost/internal/trip"
	"github.com/theirongolddev/tripcost/internal/tui"
	"github.com/theirongolddev/tripcost/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive planner (default)",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	planner, err := config.NewPlanner(cfg)
	if err != nil {
		return err
	}
	mode, err := trip.ParseMode(cfg.General.DefaultTransport)
	if err != nil {
		return fmt.Errorf("default_transport: %w", err)
	}

	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	archive := openArchive(cfg)
	if archive != nil {
		defer func() { _ = archive.Close() }()
	}

	app := tui.NewApp(tui.Options{
		Planner:   planner,
		Currency:  cfg.General.Currency,
		ExportDir: cfg.General.ExportDir,
		Defaults: trip.Request{
			Days:   cfg.General.DefaultDays,
			Mode:   mode,
			Budget: cfg.General.DefaultBudget,
		},
		Archive: archive,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
