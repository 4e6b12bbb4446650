package renderer

import (
	wealth "github.com/jhonatanorellana89-hue/wealthcmd"
)

type categoryRow struct {
	Name  string
	Spent string
	Limit string
	Flag  string
}

// CategorySpendingMarkdown renders the month's spend-per-category table.
// Categories without a limit show "-"; an exceeded limit is flagged.
func CategorySpendingMarkdown(on wealth.Date, spending []wealth.CategorySpend) string {
	rows := make([]categoryRow, 0, len(spending))
	for _, s := range spending {
		row := categoryRow{
			Name:  s.Category.Name,
			Spent: FormatMoney(s.Spent),
			Limit: "-",
		}
		if s.Category.LimitMonthly.IsPositive() {
			row.Limit = FormatMoney(s.Category.LimitMonthly)
		}
		if s.OverLimit {
			row.Flag = "⚠ excedido"
		}
		rows = append(rows, row)
	}
	data := struct {
		Month string
		Rows  []categoryRow
	}{on.MonthLabel(), rows}
	return renderTemplate("categories", "categories.md", nil, data)
}
