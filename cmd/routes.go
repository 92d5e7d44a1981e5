package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/tripcost/internal/cli"
	"github.com/theirongolddev/tripcost/internal/config"
	"github.com/theirongolddev/tripcost/internal/trip"

	"github.com/spf13/cobra"
)

var flagWithSample bool

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List routes and their cities",
	RunE:  runRoutes,
}

func init() {
	routesCmd.Flags().BoolVar(&flagWithSample, "with-sample", false, "Include the Balkan sample route")
	rootCmd.AddCommand(routesCmd)
}

func runRoutes(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	planner, err := config.NewPlanner(cfg)
	if err != nil {
		return err
	}
	catalog := planner.Catalog
	if flagWithSample {
		catalog.AddSampleRoute(trip.BalkanSample())
	}

	rows := make([][]string, 0, len(catalog.RouteNames()))
	for _, name := range catalog.RouteNames() {
		r, _ := catalog.Route(name)
		known := 0
		for _, c := range r.Cities {
			if catalog.Known(c) {
				known++
			}
		}
		rows = append(rows, []string{
			name,
			strings.Join(r.Cities, " → "),
			fmt.Sprintf("%d/%d", known, len(r.Cities)),
			cli.FormatDistance(planner.Distance(len(r.Cities))),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Routes",
		Headers: []string{"Route", "Cities", "With data", "Distance"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}
