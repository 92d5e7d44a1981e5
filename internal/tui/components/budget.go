package components

import (
	"fmt"

	"github.com/theirongolddev/tripcost/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForPct returns green/yellow/orange/red based on how much of the
// budget is used.
func ColorForPct(pct float64) lipgloss.Color {
	t := theme.Active
	switch {
	case pct > 1:
		return t.Red
	case pct >= 0.9:
		return t.Orange
	case pct >= 0.7:
		return t.Yellow
	default:
		return t.Green
	}
}

// BudgetBar renders how much of budget the trip uses as a progress bar
// followed by the percentage. The bar is full when the trip is over budget.
func BudgetBar(total, budget float64, width int) string {
	t := theme.Active

	pct := 0.0
	if budget > 0 {
		pct = total / budget
	}
	if pct < 0 {
		pct = 0
	}
	shown := pct
	if shown > 1 {
		shown = 1
	}

	color := ColorForPct(pct)
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	return bar.ViewAs(shown) + " " + pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}
