package wealth

import "github.com/shopspring/decimal"

// Scenario is the user-supplied delta applied on top of the ledger's
// baseline when projecting cash flow. Either field may be negative.
type Scenario struct {
	AddedPassiveIncome decimal.Decimal
	AddedExpense       decimal.Decimal
}

// ProjectionPoint is one month of the forward series.
type ProjectionPoint struct {
	Label            string
	CashFlow         decimal.Decimal
	PassiveIncome    decimal.Decimal
	RecurringExpense decimal.Decimal
}

// Project produces a 12-point forward cash-flow series starting at on.
// The baseline is the sum of investment-asset passive income, the sum of
// recurring-expense amounts and the reference month's active income; the
// scenario deltas are added on top and held constant across all points.
// It is a flat-rate linear projection, deliberately without compounding
// or growth curves.
func (l *Ledger) Project(on Date, s Scenario) []ProjectionPoint {
	passive := l.totalPassiveIncome().Add(s.AddedPassiveIncome)

	recurring := decimal.Zero
	for _, r := range l.recurring {
		recurring = recurring.Add(r.Amount)
	}
	recurring = recurring.Add(s.AddedExpense)

	active := decimal.Zero
	for _, t := range l.transactions {
		if t.IncomeType == ActiveIncome && t.Date.SameMonth(on) {
			active = active.Add(t.Amount)
		}
	}

	cashFlow := active.Add(passive).Sub(recurring)
	points := make([]ProjectionPoint, 0, 12)
	for i := 0; i < 12; i++ {
		points = append(points, ProjectionPoint{
			Label:            on.AddMonths(i).MonthLabel(),
			CashFlow:         cashFlow,
			PassiveIncome:    passive,
			RecurringExpense: recurring,
		})
	}
	return points
}
