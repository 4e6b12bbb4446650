package wealth

import "github.com/shopspring/decimal"

// MilestoneKind identifies an achievement crossed by a mutation.
type MilestoneKind string

const (
	// MilestonePositiveNetWorth fires when net worth crosses from ≤0 to >0.
	MilestonePositiveNetWorth MilestoneKind = "positive-net-worth"
	// MilestonePassiveIncome fires when total monthly passive income first
	// reaches the passiveIncomeTarget.
	MilestonePassiveIncome MilestoneKind = "passive-income"
	// MilestoneDebtCleared fires when a debt disappears from the ledger.
	MilestoneDebtCleared MilestoneKind = "debt-cleared"
)

// Milestone is an observational event emitted after a mutation. It has no
// effect on ledger state.
type Milestone struct {
	Kind    MilestoneKind
	Message string
}

// Notifier receives milestone events.
type Notifier func(Milestone)

// passiveIncomeTarget is the monthly passive income that triggers the
// first-passive-income milestone.
var passiveIncomeTarget = decimal.NewFromInt(100)

// milestoneStats is the part of the snapshot the milestone check compares
// before and after each mutation.
type milestoneStats struct {
	netWorth      decimal.Decimal
	passiveIncome decimal.Decimal
	debtCount     int
}

func (l *Ledger) milestoneStats() milestoneStats {
	return milestoneStats{
		netWorth:      l.netWorth(),
		passiveIncome: l.totalPassiveIncome(),
		debtCount:     len(l.debts),
	}
}

func crossedMilestones(before, after milestoneStats) []Milestone {
	var ms []Milestone
	if !before.netWorth.IsPositive() && after.netWorth.IsPositive() {
		ms = append(ms, Milestone{
			Kind:    MilestonePositiveNetWorth,
			Message: "¡Felicitaciones! Has alcanzado un Patrimonio Neto Positivo.",
		})
	}
	if before.passiveIncome.LessThan(passiveIncomeTarget) &&
		after.passiveIncome.GreaterThanOrEqual(passiveIncomeTarget) {
		ms = append(ms, Milestone{
			Kind:    MilestonePassiveIncome,
			Message: "¡Hito Alcanzado! Generas tus primeros S/100 de Ingreso Pasivo.",
		})
	}
	if after.debtCount < before.debtCount {
		ms = append(ms, Milestone{
			Kind:    MilestoneDebtCleared,
			Message: "¡Excelente! Has eliminado una deuda. ¡Sigue así!",
		})
	}
	return ms
}
