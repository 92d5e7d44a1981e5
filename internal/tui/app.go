// Package tui provides the interactive Bubble Tea trip planner.
package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/tripcost/internal/cli"
	"github.com/theirongolddev/tripcost/internal/export"
	"github.com/theirongolddev/tripcost/internal/store"
	"github.com/theirongolddev/tripcost/internal/trip"
	"github.com/theirongolddev/tripcost/internal/tui/components"
	"github.com/theirongolddev/tripcost/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Options configures the TUI.
type Options struct {
	Planner   *trip.Planner
	Currency  string
	ExportDir string

	// Defaults pre-fills the form. Only Route, Days, Mode and Budget are used.
	Defaults trip.Request

	// Archive records exported plans; nil disables recording.
	Archive *store.Archive
}

// ExportedMsg is sent when a plan export finishes.
type ExportedMsg struct {
	Estimate trip.Estimate
	Format   string
	Path     string
	Err      error
}

type screen int

const (
	screenForm screen = iota
	screenResults
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
	minCityCardWidth = 34
	budgetBarWidth   = 30
)

// App is the root Bubble Tea model.
type App struct {
	opts Options

	form *huh.Form
	vals *planValues

	est    *trip.Estimate
	screen screen

	status    string
	statusErr bool

	width  int
	height int
}

// NewApp creates the TUI model with the plan form open.
func NewApp(opts Options) App {
	d := opts.Defaults
	if d.Route == "" {
		if names := opts.Planner.Catalog.RouteNames(); len(names) > 0 {
			d.Route = names[0]
		}
	}
	if d.Days < trip.MinDays {
		d.Days = trip.MinDays
	}
	if d.Mode == "" {
		d.Mode = trip.Car
	}
	if d.Budget < trip.MinBudget {
		d.Budget = trip.MinBudget
	}

	a := App{opts: opts}
	a.openForm(newPlanValues(d.Route, d.Days, d.Budget, d.Mode))
	return a
}

func (a *App) openForm(v *planValues) {
	a.vals = v
	a.form = newPlanForm(a.opts.Planner.Catalog, a.opts.Planner.Profiles, a.opts.Currency, v)
	if a.width > 0 {
		a.form = a.form.WithWidth(a.formWidth())
	}
	a.screen = screenForm
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.form.Init()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(a.formWidth())
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.screen == screenResults {
			return a.updateResults(msg)
		}

	case ExportedMsg:
		return a.exported(msg), nil
	}

	if a.screen == screenForm {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		a.submit()
		return a, nil
	case huh.StateAborted:
		if a.est == nil {
			return a, tea.Quit
		}
		a.screen = screenResults
		return a, nil
	}
	return a, cmd
}

// submit computes the estimate for the completed form.
func (a *App) submit() {
	req, err := a.vals.request()
	if err == nil {
		var est trip.Estimate
		est, err = a.opts.Planner.Estimate(req)
		if err == nil {
			a.showEstimate(est)
			return
		}
	}

	// Field validation catches most input errors; anything left reopens the form.
	a.setStatus(err.Error(), true)
	next := *a.vals
	a.openForm(&next)
}

func (a *App) showEstimate(est trip.Estimate) {
	a.est = &est
	a.screen = screenResults
	a.status = ""
	a.statusErr = false
}

func (a *App) setStatus(s string, isErr bool) {
	a.status = s
	a.statusErr = isErr
}

func (a App) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit

	case "s":
		a.setStatus("Saving JSON...", false)
		return a, exportCmd(*a.est, store.FormatJSON, a.opts.ExportDir, a.opts.Currency)

	case "p":
		a.setStatus("Saving PDF...", false)
		return a, exportCmd(*a.est, store.FormatPDF, a.opts.ExportDir, a.opts.Currency)

	case "n":
		next := *a.vals
		a.openForm(&next)
		return a, a.form.Init()

	case "a":
		r, cities := trip.BalkanSample()
		if a.opts.Planner.Catalog.AddSampleRoute(r, cities) {
			a.setStatus(fmt.Sprintf("Added route %q", r.Name), false)
		} else {
			a.setStatus(fmt.Sprintf("Route %q already exists", r.Name), false)
		}
		return a, nil
	}
	return a, nil
}

func (a App) exported(msg ExportedMsg) App {
	if msg.Err != nil {
		a.setStatus("Export failed: "+msg.Err.Error(), true)
		return a
	}

	status := "Saved " + msg.Path
	if a.opts.Archive != nil {
		if _, err := a.opts.Archive.Record(store.NewEntry(msg.Estimate, msg.Format, msg.Path)); err != nil {
			status += " (history unavailable: " + err.Error() + ")"
		}
	}
	a.setStatus(status, false)
	return a
}

// exportCmd writes the estimate in the background.
func exportCmd(est trip.Estimate, format, dir, currency string) tea.Cmd {
	return func() tea.Msg {
		doc := export.NewDocument(est)
		msg := ExportedMsg{Estimate: est, Format: format}
		switch format {
		case store.FormatPDF:
			msg.Path, msg.Err = export.WritePDF(export.Resolve(dir, export.DefaultPDFName), doc, currency)
		default:
			msg.Path, msg.Err = export.WriteJSON(export.Resolve(dir, export.DefaultJSONName), doc)
		}
		return msg
	}
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) formWidth() int {
	w := a.contentWidth() - 4
	if w > 80 {
		w = 80
	}
	return w
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  tripcost needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}

	var body, hints string
	if a.screen == screenForm {
		body = a.viewForm()
		hints = "[enter] next  [shift+tab] back  [ctrl+c] quit"
	} else {
		body = a.viewResults()
		hints = "[s]ave json  [p]df  [n]ew plan  [a]dd sample route  [q]uit"
	}

	statusBar := components.RenderStatusBar(a.width, hints, a.statusText())
	contentH := a.height - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}
	body = padHeight(truncateHeight(body, contentH), contentH)

	return lipgloss.JoinVertical(lipgloss.Left, body, statusBar)
}

func (a App) statusText() string {
	if !a.statusErr {
		return a.status
	}
	return lipgloss.NewStyle().Foreground(theme.Active.Red).Render(a.status)
}

func (a App) viewForm() string {
	t := theme.Active
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(titleStyle.Render("◈ tripcost"))
	b.WriteString(subtitleStyle.Render(" · Trip cost estimator"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(a.form.View()))
	return b.String()
}

func (a App) viewResults() string {
	t := theme.Active
	est := *a.est
	res := est.Result
	cw := a.contentWidth()
	money := func(v float64) string { return cli.FormatMoney(v, a.opts.Currency) }

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	routeStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Trip plan"))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d days per city · %s · %s",
		est.Request.Days, est.Transport.Label, est.Request.Priority.Label())))
	b.WriteString("\n")
	if len(est.Request.Cities) == 0 {
		b.WriteString(mutedStyle.Render("No cities selected"))
	} else {
		b.WriteString(routeStyle.Render(strings.Join(est.Request.Cities, " → ")))
	}
	b.WriteString("\n")

	b.WriteString(components.MetricRow([]components.Metric{
		{Label: "Transport", Value: money(res.TransportCost), Note: cli.FormatDistance(res.TotalDistance)},
		{Label: "Food", Value: money(res.FoodCost)},
		{Label: "Hotels", Value: money(res.HotelCost)},
		{Label: "Total", Value: money(res.TotalCost)},
	}, cw))
	b.WriteString("\n")

	if len(res.Breakdown) > 0 {
		b.WriteString(a.cityCards(res.Breakdown, cw))
		b.WriteString("\n")
	}

	b.WriteString(components.ContentCard("Budget", a.budgetBody(est), cw))
	return b.String()
}

func (a App) cityCards(breakdown []trip.CityCost, cw int) string {
	money := func(v float64) string { return cli.FormatMoney(v, a.opts.Currency) }
	cols := components.Columns(cw, minCityCardWidth, 4)
	widths := components.LayoutRow(cw, cols)

	var rows []string
	for start := 0; start < len(breakdown); start += cols {
		var cards []string
		for i := 0; i < cols && start+i < len(breakdown); i++ {
			c := breakdown[start+i]
			inner := components.CardInnerWidth(widths[i])
			body := strings.Join([]string{
				truncStr(c.Hotel.Name, inner),
				truncStr(money(c.Hotel.PerNight)+"/night", inner),
				truncStr(c.Food.Name, inner),
				truncStr(money(c.Food.PerDay)+"/day", inner),
				truncStr(c.Sight, inner),
				truncStr("= "+money(c.Hotel.Total+c.Food.Total), inner),
			}, "\n")
			cards = append(cards, components.ContentCard(c.City, body, widths[i]))
		}
		rows = append(rows, components.CardRow(cards))
	}
	return strings.Join(rows, "\n")
}

func (a App) budgetBody(est trip.Estimate) string {
	t := theme.Active
	money := func(v float64) string { return cli.FormatMoney(v, a.opts.Currency) }

	var b strings.Builder
	b.WriteString(components.BudgetBar(est.Result.TotalCost, est.Request.Budget, budgetBarWidth))
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).Render(
		fmt.Sprintf("  %s of %s", money(est.Result.TotalCost), money(est.Request.Budget))))
	b.WriteString("\n")

	if est.Advice.Sufficient {
		b.WriteString(lipgloss.NewStyle().Foreground(t.Green).Bold(true).Render("The budget covers the trip. Enjoy!"))
		return b.String()
	}
	b.WriteString(lipgloss.NewStyle().Foreground(t.Red).Bold(true).Render(
		fmt.Sprintf("The budget is %s short.", money(est.Advice.Shortfall))))
	if est.Advice.Tip != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(t.Orange).Render("Tip: " + est.Advice.Tip))
	}
	return b.String()
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
