package cmd

import (
	"fmt"
	"log"

	"github.com/theirongolddev/tripcost/internal/cli"
	"github.com/theirongolddev/tripcost/internal/config"
	"github.com/theirongolddev/tripcost/internal/export"
	"github.com/theirongolddev/tripcost/internal/store"
	"github.com/theirongolddev/tripcost/internal/trip"

	"github.com/spf13/cobra"
)

var (
	flagRoute     string
	flagCities    string
	flagTransport string
	flagDays      int
	flagBudget    float64
	flagPriority  string
	flagJSON      string
	flagPDF       string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Estimate a trip and print the report",
	Example: `  tripcost plan --transport plane --days 3
  tripcost plan --cities "Sofia, Vienna" --budget 900 --priority cheapest --json trip_plan.json`,
	RunE: runPlan,
}

func init() {
	f := planCmd.Flags()
	f.StringVarP(&flagRoute, "route", "r", "", "Route name (default: first route)")
	f.StringVar(&flagCities, "cities", "", "Comma separated cities, overrides the route's list")
	f.StringVarP(&flagTransport, "transport", "t", "", "Transport: car, train or plane (default from config)")
	f.IntVarP(&flagDays, "days", "n", 0, "Days per city (default from config)")
	f.Float64VarP(&flagBudget, "budget", "b", 0, "Budget (default from config)")
	f.StringVarP(&flagPriority, "priority", "p", string(trip.Balance), "Priority: balance, cheapest, comfort or fast")
	f.StringVar(&flagJSON, "json", "", "Also save the plan as JSON to this file")
	f.StringVar(&flagPDF, "pdf", "", "Also save the plan as PDF to this file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	planner, err := config.NewPlanner(cfg)
	if err != nil {
		return err
	}

	req, err := planRequest(cmd, cfg, planner.Catalog)
	if err != nil {
		return err
	}
	est, err := planner.Estimate(req)
	if err != nil {
		return err
	}

	fmt.Print(cli.RenderEstimate(est, cfg.General.Currency))

	if flagJSON == "" && flagPDF == "" {
		return nil
	}

	archive := openArchive(cfg)
	if archive != nil {
		defer func() { _ = archive.Close() }()
	}
	doc := export.NewDocument(est)

	if flagJSON != "" {
		path, err := export.WriteJSON(export.Resolve(cfg.General.ExportDir, flagJSON), doc)
		if err != nil {
			return err
		}
		status("Saved plan to %s", path)
		recordExport(archive, est, store.FormatJSON, path)
	}
	if flagPDF != "" {
		path, err := export.WritePDF(export.Resolve(cfg.General.ExportDir, flagPDF), doc, cfg.General.Currency)
		if err != nil {
			return err
		}
		status("Saved PDF to %s", path)
		recordExport(archive, est, store.FormatPDF, path)
	}
	return nil
}

// planRequest builds the request from flags, falling back to config defaults.
func planRequest(cmd *cobra.Command, cfg config.Config, catalog *trip.Catalog) (trip.Request, error) {
	req := trip.Request{
		Route:  flagRoute,
		Cities: trip.SplitCities(flagCities),
		Days:   cfg.General.DefaultDays,
		Budget: cfg.General.DefaultBudget,
	}
	if req.Route == "" {
		if names := catalog.RouteNames(); len(names) > 0 {
			req.Route = names[0]
		}
	}

	transport := cfg.General.DefaultTransport
	if cmd.Flags().Changed("transport") {
		transport = flagTransport
	}
	mode, err := trip.ParseMode(transport)
	if err != nil {
		return req, err
	}
	req.Mode = mode

	if cmd.Flags().Changed("days") {
		req.Days = flagDays
	}
	if cmd.Flags().Changed("budget") {
		req.Budget = flagBudget
	}

	prio, err := trip.ParsePriority(flagPriority)
	if err != nil {
		return req, err
	}
	req.Priority = prio
	return req, nil
}

func recordExport(archive *store.Archive, est trip.Estimate, format, path string) {
	if archive == nil {
		return
	}
	if _, err := archive.Record(store.NewEntry(est, format, path)); err != nil {
		log.Printf("warning: could not record plan history: %v", err)
	}
}
