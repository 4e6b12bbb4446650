package renderer

import (
	wealth "github.com/jhonatanorellana89-hue/wealthcmd"
)

type projectionRow struct {
	Label    string
	CashFlow string
}

// ProjectionMarkdown renders the forward cash-flow series.
func ProjectionMarkdown(points []wealth.ProjectionPoint) string {
	data := struct {
		Passive   string
		Recurring string
		Rows      []projectionRow
	}{}
	if len(points) > 0 {
		data.Passive = FormatMoney(points[0].PassiveIncome)
		data.Recurring = FormatMoney(points[0].RecurringExpense)
	}
	for _, p := range points {
		data.Rows = append(data.Rows, projectionRow{
			Label:    p.Label,
			CashFlow: FormatMoney(p.CashFlow),
		})
	}
	return renderTemplate("projection", "projection.md", nil, data)
}
