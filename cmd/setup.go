package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/tripcost/internal/config"
	"github.com/theirongolddev/tripcost/internal/trip"
	"github.com/theirongolddev/tripcost/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive configuration wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

type setupValues struct {
	currency  string
	days      string
	budget    string
	transport string
	hop       string
	theme     string
	history   bool
}

func runSetup(_ *cobra.Command, _ []string) error {
	// File values only: environment overrides must not end up saved.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	v := setupValues{
		currency:  cfg.General.Currency,
		days:      strconv.Itoa(cfg.General.DefaultDays),
		budget:    strconv.FormatFloat(cfg.General.DefaultBudget, 'f', -1, 64),
		transport: cfg.General.DefaultTransport,
		hop:       strconv.FormatFloat(cfg.General.HopDistance, 'f', -1, 64),
		theme:     cfg.Appearance.Theme,
		history:   cfg.Archive.Enabled,
	}

	if err := newSetupForm(&v).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			status("Setup cancelled, nothing saved")
			return nil
		}
		return err
	}

	if err := applySetup(&cfg, v); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `tripcost setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

func newSetupForm(v *setupValues) *huh.Form {
	transportOpts := make([]huh.Option[string], 0, len(trip.Modes))
	for _, m := range trip.Modes {
		transportOpts = append(transportOpts, huh.NewOption(trip.DefaultProfiles()[m].Label, string(m)))
	}
	themeOpts := huh.NewOptions(theme.Names()...)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to tripcost").
				Description("Set the defaults used by the planner.\nValues can be changed later in the config file."),
			huh.NewInput().Title("Currency label").Value(&v.currency),
			huh.NewInput().
				Title(fmt.Sprintf("Default days per city (%d-%d)", trip.MinDays, trip.MaxDays)).
				Value(&v.days).
				Validate(func(s string) error {
					_, err := parseIntIn(s, trip.MinDays, trip.MaxDays)
					return err
				}),
			huh.NewInput().
				Title("Default budget").
				Value(&v.budget).
				Validate(func(s string) error {
					_, err := parseFloatIn(s, trip.MinBudget, trip.MaxBudget)
					return err
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Default transport").Options(transportOpts...).Value(&v.transport),
			huh.NewInput().
				Title("Distance between consecutive cities").
				Value(&v.hop).
				Validate(func(s string) error {
					_, err := parseFloatIn(s, 1, 100000)
					return err
				}),
			huh.NewSelect[string]().Title("Color theme").Options(themeOpts...).Value(&v.theme),
			huh.NewConfirm().Title("Keep a history of exported plans?").Value(&v.history),
		),
	).WithTheme(huh.ThemeCharm())
}

// applySetup copies validated wizard answers into cfg.
func applySetup(cfg *config.Config, v setupValues) error {
	days, err := parseIntIn(v.days, trip.MinDays, trip.MaxDays)
	if err != nil {
		return err
	}
	budget, err := parseFloatIn(v.budget, trip.MinBudget, trip.MaxBudget)
	if err != nil {
		return err
	}
	hop, err := parseFloatIn(v.hop, 1, 100000)
	if err != nil {
		return err
	}
	if _, err := trip.ParseMode(v.transport); err != nil {
		return err
	}

	cfg.General.Currency = strings.TrimSpace(v.currency)
	cfg.General.DefaultDays = days
	cfg.General.DefaultBudget = budget
	cfg.General.DefaultTransport = v.transport
	cfg.General.HopDistance = hop
	cfg.Appearance.Theme = v.theme
	cfg.Archive.Enabled = v.history
	return config.Validate(*cfg)
}

func parseIntIn(s string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.New("enter a whole number")
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("must be between %d and %d", lo, hi)
	}
	return n, nil
}

func parseFloatIn(s string, lo, hi float64) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.New("enter a number")
	}
	if f < lo || f > hi {
		return 0, fmt.Errorf("must be between %g and %g", lo, hi)
	}
	return f, nil
}
