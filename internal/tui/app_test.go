package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/tripcost/internal/store"
	"github.com/theirongolddev/tripcost/internal/trip"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(msg)
	app, ok := m.(App)
	if !ok {
		t.Fatalf("Update returned %T, want App", m)
	}
	return app, cmd
}

// resultsApp returns an app showing the default route estimate.
func resultsApp(t *testing.T, opts Options) App {
	t.Helper()
	if opts.Planner == nil {
		opts.Planner = trip.NewPlanner(trip.DefaultCatalog())
	}
	if opts.Currency == "" {
		opts.Currency = "лв"
	}
	a := NewApp(opts)
	est, err := opts.Planner.Estimate(trip.Request{
		Route: "Bulgaria → Germany", Days: 4, Mode: trip.Car, Budget: 1500, Priority: trip.Cheapest,
	})
	if err != nil {
		t.Fatal(err)
	}
	a.showEstimate(est)
	return a
}

func TestNewApp_Defaults(t *testing.T) {
	a := NewApp(Options{Planner: trip.NewPlanner(trip.DefaultCatalog())})
	if a.screen != screenForm {
		t.Error("app should start on the form")
	}
	if a.vals.route != "Bulgaria → Germany" {
		t.Errorf("route = %q, want first catalog route", a.vals.route)
	}
	if a.vals.days != "1" || a.vals.mode != trip.Car || a.vals.budget != "100" {
		t.Errorf("defaults = %+v", *a.vals)
	}
}

func TestResults_AddSampleRoute(t *testing.T) {
	a := resultsApp(t, Options{})

	a, _ = update(t, a, key("a"))
	if _, ok := a.opts.Planner.Catalog.Route("Balkan tour"); !ok {
		t.Fatal("sample route not added")
	}
	if !strings.Contains(a.status, "Added route") {
		t.Errorf("status = %q", a.status)
	}

	a, _ = update(t, a, key("a"))
	if !strings.Contains(a.status, "already exists") {
		t.Errorf("second add status = %q", a.status)
	}
	if got := len(a.opts.Planner.Catalog.RouteNames()); got != 2 {
		t.Errorf("routes = %d, want 2", got)
	}
}

func TestResults_SaveJSONRecordsHistory(t *testing.T) {
	dir := t.TempDir()
	archive, err := store.Open(filepath.Join(dir, "plans.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer archive.Close()

	a := resultsApp(t, Options{ExportDir: dir, Archive: archive})

	a, cmd := update(t, a, key("s"))
	if cmd == nil {
		t.Fatal("save should return a command")
	}
	msg, ok := cmd().(ExportedMsg)
	if !ok {
		t.Fatalf("command returned %T", cmd())
	}
	if msg.Err != nil {
		t.Fatalf("export: %v", msg.Err)
	}
	if msg.Path != filepath.Join(dir, "trip_plan.json") {
		t.Errorf("path = %q", msg.Path)
	}
	if _, err := os.Stat(msg.Path); err != nil {
		t.Fatalf("exported file: %v", err)
	}

	a, _ = update(t, a, msg)
	if a.statusErr || !strings.HasPrefix(a.status, "Saved ") {
		t.Errorf("status = %q", a.status)
	}

	entries, err := archive.List(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Format != "json" || entries[0].Path != msg.Path {
		t.Fatalf("history = %+v", entries)
	}
}

func TestResults_SavePDF(t *testing.T) {
	dir := t.TempDir()
	a := resultsApp(t, Options{ExportDir: dir})

	_, cmd := update(t, a, key("p"))
	msg := cmd().(ExportedMsg)
	if msg.Err != nil {
		t.Fatalf("export: %v", msg.Err)
	}
	if filepath.Base(msg.Path) != "trip_plan.pdf" || msg.Format != store.FormatPDF {
		t.Errorf("msg = %+v", msg)
	}
}

func TestExportFailureShowsError(t *testing.T) {
	a := resultsApp(t, Options{})
	a, _ = update(t, a, ExportedMsg{Err: errors.New("disk full")})
	if !a.statusErr || !strings.Contains(a.status, "disk full") {
		t.Errorf("status = %q err=%v", a.status, a.statusErr)
	}
}

func TestResults_NewPlanKeepsValues(t *testing.T) {
	a := resultsApp(t, Options{})
	a.vals.cities = "Sofia, Vienna"
	old := a.vals

	a, _ = update(t, a, key("n"))
	if a.screen != screenForm {
		t.Fatal("n should open the form")
	}
	if a.vals == old {
		t.Error("new form must get its own values")
	}
	if a.vals.cities != "Sofia, Vienna" {
		t.Errorf("cities = %q, want previous input", a.vals.cities)
	}
}

func TestQuitKeys(t *testing.T) {
	a := resultsApp(t, Options{})
	for _, k := range []tea.KeyMsg{key("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := update(t, a, k)
		if cmd == nil {
			t.Fatalf("%s: no command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s did not quit", k)
		}
	}
}

func TestResultsView(t *testing.T) {
	a := resultsApp(t, Options{})
	a, _ = update(t, a, tea.WindowSizeMsg{Width: 120, Height: 60})

	out := a.View()
	for _, want := range []string{
		"Sofia → Belgrade → Vienna → Munich",
		"1,905.00 лв",
		"Kalemegdan",
		"405.00 лв short",
		"Tip: choose Train",
		"[s]ave json",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if got := lipgloss.Height(out); got != 60 {
		t.Errorf("view height = %d, want 60", got)
	}
}

func TestViewTooNarrow(t *testing.T) {
	a := resultsApp(t, Options{})
	a, _ = update(t, a, tea.WindowSizeMsg{Width: 40, Height: 20})
	if !strings.Contains(a.View(), "too narrow") {
		t.Error("narrow terminal not reported")
	}
}

func TestPlanValuesRequest(t *testing.T) {
	tests := []struct {
		name    string
		vals    planValues
		wantErr bool
		check   func(trip.Request) bool
	}{
		{
			name: "defaults keep route",
			vals: planValues{route: "Bulgaria → Germany", mode: trip.Train, days: "4", budget: "1500", priority: trip.Fast},
			check: func(r trip.Request) bool {
				return r.Cities == nil && r.Days == 4 && r.Budget == 1500 && r.Mode == trip.Train
			},
		},
		{
			name: "edited cities",
			vals: planValues{cities: " Sofia ,, Vienna ", mode: trip.Car, days: " 2", budget: "250.5"},
			check: func(r trip.Request) bool {
				return len(r.Cities) == 2 && r.Cities[1] == "Vienna" && r.Budget == 250.5
			},
		},
		{name: "days out of range", vals: planValues{days: "15", budget: "1500"}, wantErr: true},
		{name: "days not a number", vals: planValues{days: "four", budget: "1500"}, wantErr: true},
		{name: "budget too small", vals: planValues{days: "3", budget: "99"}, wantErr: true},
		{name: "budget not a number", vals: planValues{days: "3", budget: "lots"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := tt.vals.request()
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil && !tt.check(r) {
				t.Errorf("request = %+v", r)
			}
		})
	}
}
