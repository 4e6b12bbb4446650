package renderer

import (
	"strconv"

	wealth "github.com/jhonatanorellana89-hue/wealthcmd"
)

// paydownRow is one scenario line of the comparison table, already
// formatted; an infinite scenario renders "nunca".
type paydownRow struct {
	Scenario string
	Months   string
	Interest string
	Total    string
}

func newPaydownRow(scenario string, p wealth.Paydown) paydownRow {
	row := paydownRow{Scenario: scenario}
	if p.Infinite {
		row.Months = "nunca"
		row.Interest = "-"
		row.Total = "-"
		return row
	}
	row.Months = strconv.Itoa(p.Months)
	row.Interest = FormatMoney(p.TotalInterest)
	row.Total = FormatMoney(p.TotalPaid)
	return row
}

// PaydownMarkdown renders the scheduled-versus-accelerated comparison
// for the named debt.
func PaydownMarkdown(name string, cmp wealth.PaydownComparison) string {
	data := struct {
		Name          string
		Extra         string
		Rows          []paydownRow
		SavingsKnown  bool
		MonthsSaved   int
		InterestSaved string
	}{
		Name:  name,
		Extra: FormatMoney(cmp.Extra),
		Rows: []paydownRow{
			newPaydownRow("Pago programado", cmp.Baseline),
			newPaydownRow("Pago acelerado", cmp.Accelerated),
		},
		SavingsKnown:  cmp.SavingsKnown,
		MonthsSaved:   cmp.MonthsSaved,
		InterestSaved: FormatMoney(cmp.InterestSaved),
	}
	return renderTemplate("paydown", "paydown.md", nil, data)
}
