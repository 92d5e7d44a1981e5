package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/tripcost/internal/cli"
	"github.com/theirongolddev/tripcost/internal/trip"

	"github.com/charmbracelet/huh"
)

// planValues holds the plan form's bound values. The form keeps pointers
// into it, so it must outlive the form and never be copied while one is open.
type planValues struct {
	route    string
	cities   string
	mode     trip.Mode
	days     string
	budget   string
	priority trip.Priority
}

func newPlanValues(route string, days int, budget float64, mode trip.Mode) *planValues {
	return &planValues{
		route:    route,
		mode:     mode,
		days:     strconv.Itoa(days),
		budget:   strconv.FormatFloat(budget, 'f', -1, 64),
		priority: trip.Balance,
	}
}

// request converts the form values into a planning request.
func (v *planValues) request() (trip.Request, error) {
	days, err := parseDays(v.days)
	if err != nil {
		return trip.Request{}, err
	}
	budget, err := parseBudget(v.budget)
	if err != nil {
		return trip.Request{}, err
	}
	return trip.Request{
		Route:    v.route,
		Cities:   trip.SplitCities(v.cities),
		Days:     days,
		Mode:     v.mode,
		Budget:   budget,
		Priority: v.priority,
	}, nil
}

func parseDays(s string) (int, error) {
	d, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.New("days must be a whole number")
	}
	if d < trip.MinDays || d > trip.MaxDays {
		return 0, fmt.Errorf("days must be between %d and %d", trip.MinDays, trip.MaxDays)
	}
	return d, nil
}

func parseBudget(s string) (float64, error) {
	b, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.New("budget must be a number")
	}
	if b < trip.MinBudget || b > trip.MaxBudget {
		return 0, fmt.Errorf("budget must be between %s and %s",
			cli.FormatNumber(trip.MinBudget), cli.FormatNumber(trip.MaxBudget))
	}
	return b, nil
}

// newPlanForm builds the trip form over the catalog's routes.
func newPlanForm(catalog *trip.Catalog, profiles map[trip.Mode]trip.Transport, currency string, v *planValues) *huh.Form {
	routeOpts := make([]huh.Option[string], 0, len(catalog.RouteNames()))
	for _, name := range catalog.RouteNames() {
		routeOpts = append(routeOpts, huh.NewOption(name, name))
	}

	modeOpts := make([]huh.Option[trip.Mode], 0, len(trip.Modes))
	for _, m := range trip.Modes {
		t := profiles[m]
		modeOpts = append(modeOpts, huh.NewOption(
			fmt.Sprintf("%s (%s)", t.Label, cli.FormatPrice(t.PricePerUnit, currency)), m))
	}

	prioOpts := make([]huh.Option[trip.Priority], 0, len(trip.Priorities))
	for _, p := range trip.Priorities {
		prioOpts = append(prioOpts, huh.NewOption(p.Label(), p))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Route").
				Options(routeOpts...).
				Value(&v.route),
			huh.NewInput().
				Title("Cities").
				DescriptionFunc(func() string {
					r, ok := catalog.Route(v.route)
					if !ok {
						return "Comma separated"
					}
					return "Comma separated, empty keeps " + strings.Join(r.Cities, ", ")
				}, &v.route).
				Value(&v.cities),
		),
		huh.NewGroup(
			huh.NewSelect[trip.Mode]().
				Title("Transport").
				Options(modeOpts...).
				Value(&v.mode),
			huh.NewInput().
				Title(fmt.Sprintf("Days per city (%d-%d)", trip.MinDays, trip.MaxDays)).
				Value(&v.days).
				Validate(func(s string) error {
					_, err := parseDays(s)
					return err
				}),
			huh.NewInput().
				Title("Budget ("+currency+")").
				Value(&v.budget).
				Validate(func(s string) error {
					_, err := parseBudget(s)
					return err
				}),
			huh.NewSelect[trip.Priority]().
				Title("Priority").
				Options(prioOpts...).
				Value(&v.priority),
		),
	).WithTheme(huh.ThemeCharm()).WithShowHelp(true)
}
