package cli

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/tripcost/internal/trip"
)

// RenderEstimate renders the full text report for an estimate: route,
// per-city stops, cost table and the budget verdict.
func RenderEstimate(est trip.Estimate, currency string) string {
	res := est.Result
	money := func(v float64) string { return FormatMoney(v, currency) }

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(RenderTitle("TRIP PLAN"))
	b.WriteString("\n\n")

	b.WriteString("  ")
	b.WriteString(headerStyle.Render("Route"))
	b.WriteString("\n  ")
	if len(est.Request.Cities) == 0 {
		b.WriteString(mutedStyle.Render("(no cities)"))
	} else {
		b.WriteString(valueStyle.Render(strings.Join(est.Request.Cities, " → ")))
	}
	b.WriteString("\n\n")

	if len(res.Breakdown) > 0 {
		rows := make([][]string, 0, len(res.Breakdown))
		for _, c := range res.Breakdown {
			rows = append(rows, []string{
				c.City,
				fmt.Sprintf("%s (%s/night)", c.Hotel.Name, money(c.Hotel.PerNight)),
				fmt.Sprintf("%s (%s/day)", c.Food.Name, money(c.Food.PerDay)),
				c.Sight,
				money(c.Hotel.Total + c.Food.Total),
			})
		}
		b.WriteString(RenderTable(Table{
			Title:   fmt.Sprintf("Stops  %d days each", est.Request.Days),
			Headers: []string{"City", "Hotel", "Food", "Sight", "City total"},
			Rows:    rows,
		}))
		b.WriteString("\n")
	}

	b.WriteString(RenderTable(Table{
		Title:   "Costs",
		Headers: []string{"Item", "Amount"},
		Rows: [][]string{
			{est.Transport.Label + " transport", money(res.TransportCost)},
			{"Food", money(res.FoodCost)},
			{"Hotels", money(res.HotelCost)},
			{"Distance", FormatDistance(res.TotalDistance)},
			{"---"},
			{"TOTAL", money(res.TotalCost)},
		},
	}))
	b.WriteString("\n")

	b.WriteString(RenderBudget(est, currency))
	return b.String()
}

// RenderBudget renders the budget bar and verdict lines.
func RenderBudget(est trip.Estimate, currency string) string {
	var b strings.Builder
	budget := est.Request.Budget
	fmt.Fprintf(&b, "  Budget  %s  %s of %s\n",
		RenderHorizontalBar(est.Result.TotalCost, budget, 30),
		FormatMoney(est.Result.TotalCost, currency),
		FormatMoney(budget, currency))

	if est.Advice.Sufficient {
		b.WriteString("  ")
		b.WriteString(goodStyle.Render("The budget covers the trip. Enjoy!"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("  ")
	b.WriteString(badStyle.Render(fmt.Sprintf("The budget is %s short.", FormatMoney(est.Advice.Shortfall, currency))))
	b.WriteString(mutedStyle.Render(" Consider cheaper transport or fewer days."))
	b.WriteString("\n")
	if est.Advice.Tip != "" {
		b.WriteString("  ")
		b.WriteString(warnStyle.Render("Tip: " + est.Advice.Tip))
		b.WriteString("\n")
	}
	return b.String()
}
