package wealth

import (
	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
)

// Dashboard is the read-only view model derived from a ledger snapshot
// and a reference date. It is a pure projection: computing it never
// mutates the ledger.
type Dashboard struct {
	NetWorth    NetWorthView
	CashFlow    CashFlowView
	FreedomRace FreedomRaceView
	// MonthlyChart is a six-point trailing series: the reference month
	// and the five before it.
	MonthlyChart []MonthPoint
	// AssetComposition has up to three buckets (cash, investments,
	// equity); zero-valued buckets are omitted.
	AssetComposition []CompositionBucket
	Summary          FinancialSummary
}

type NetWorthView struct {
	Value            decimal.Decimal
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
}

type CashFlowView struct {
	Value         decimal.Decimal
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	// Trend is the percent change against the prior month's cash flow.
	// A zero prior month is special-cased: 100 when the current flow is
	// positive, 0 otherwise.
	Trend decimal.Decimal
}

type FreedomRaceView struct {
	// Percentage is passive income over current-month expenses, capped
	// at 100. With zero expenses it is 100 when passive income is
	// positive and 0 otherwise.
	Percentage    decimal.Decimal
	PassiveIncome decimal.Decimal
	Expenses      decimal.Decimal
}

type MonthPoint struct {
	Label   string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

type CompositionBucket struct {
	Name  string
	Value decimal.Decimal
}

// FinancialSummary is the flattened numeric snapshot handed to the
// external advisory collaborator.
type FinancialSummary struct {
	PassiveIncome     decimal.Decimal
	ActiveIncome      decimal.Decimal
	TotalExpenses     decimal.Decimal
	NetWorth          decimal.Decimal
	CashFlow          decimal.Decimal
	FreedomPercentage decimal.Decimal
	VenturesCount     int
}

var hundred = decimal.NewFromInt(100)

// NewDashboard derives the dashboard for the calendar month of on.
// Results are memoized per ledger and dropped on every mutation, so
// repeated reads between mutations are free.
func (l *Ledger) NewDashboard(on Date) *Dashboard {
	key := on.String()
	if cached, ok := l.views.Get(key); ok {
		return cached.(*Dashboard)
	}
	d := l.computeDashboard(on)
	l.views.Set(key, d, cache.NoExpiration)
	return d
}

// monthFlows sums income and expenses of the given month, transfers
// excluded.
func (l *Ledger) monthFlows(month Date) (income, expenses decimal.Decimal) {
	for _, t := range l.transactions {
		if t.Type == Transfer || !t.Date.SameMonth(month) {
			continue
		}
		switch t.Type {
		case Income:
			income = income.Add(t.Amount)
		case Expense:
			expenses = expenses.Add(t.Amount)
		}
	}
	return income, expenses
}

func (l *Ledger) computeDashboard(on Date) *Dashboard {
	income, expenses := l.monthFlows(on)
	cashFlow := income.Sub(expenses)

	prevIncome, prevExpenses := l.monthFlows(on.AddMonths(-1))
	prevCashFlow := prevIncome.Sub(prevExpenses)

	trend := decimal.Zero
	switch {
	case !prevCashFlow.IsZero():
		trend = cashFlow.Sub(prevCashFlow).Div(prevCashFlow.Abs()).Mul(hundred)
	case cashFlow.IsPositive():
		trend = hundred
	}

	cash := l.totalCash()
	investments := l.totalInvestments()
	equity := l.totalEquity()
	totalAssets := cash.Add(investments).Add(equity)
	liabilities := l.totalLiabilities()

	passive := l.totalPassiveIncome()
	freedom := decimal.Zero
	switch {
	case expenses.IsPositive():
		freedom = decimal.Min(hundred, passive.Div(expenses).Mul(hundred))
	case passive.IsPositive():
		freedom = hundred
	}

	chart := make([]MonthPoint, 0, 6)
	for i := -5; i <= 0; i++ {
		month := on.AddMonths(i)
		in, out := l.monthFlows(month)
		chart = append(chart, MonthPoint{Label: month.MonthLabel(), Income: in, Expense: out})
	}

	var composition []CompositionBucket
	for _, b := range []CompositionBucket{
		{Name: "Efectivo", Value: cash},
		{Name: "Inversiones", Value: investments},
		{Name: "Patrimonio", Value: equity},
	} {
		if b.Value.IsPositive() {
			composition = append(composition, b)
		}
	}

	// Active income is the month's income minus the part tagged passive.
	passiveTagged := decimal.Zero
	for _, t := range l.transactions {
		if t.Type != Transfer && t.IncomeType == PassiveIncome && t.Date.SameMonth(on) {
			passiveTagged = passiveTagged.Add(t.Amount)
		}
	}

	return &Dashboard{
		NetWorth: NetWorthView{
			Value:            totalAssets.Sub(liabilities),
			TotalAssets:      totalAssets,
			TotalLiabilities: liabilities,
		},
		CashFlow: CashFlowView{
			Value:         cashFlow,
			TotalIncome:   income,
			TotalExpenses: expenses,
			Trend:         trend,
		},
		FreedomRace: FreedomRaceView{
			Percentage:    freedom,
			PassiveIncome: passive,
			Expenses:      expenses,
		},
		MonthlyChart:     chart,
		AssetComposition: composition,
		Summary: FinancialSummary{
			PassiveIncome:     passive,
			ActiveIncome:      income.Sub(passiveTagged),
			TotalExpenses:     expenses,
			NetWorth:          totalAssets.Sub(liabilities),
			CashFlow:          cashFlow,
			FreedomPercentage: freedom,
			VenturesCount:     len(l.ventures),
		},
	}
}

// CategorySpend reports the month's expense total per category against
// its optional monthly limit.
type CategorySpend struct {
	Category Category
	Spent    decimal.Decimal
	// OverLimit is set when a non-zero limit is exceeded.
	OverLimit bool
}

// CategorySpending sums the month's expenses per category. Categories
// are returned in ledger order; uncategorized spending is not reported.
func (l *Ledger) CategorySpending(on Date) []CategorySpend {
	perCategory := make(map[string]decimal.Decimal)
	for _, t := range l.transactions {
		if t.Type != Expense || t.CategoryID == "" || !t.Date.SameMonth(on) {
			continue
		}
		perCategory[t.CategoryID] = perCategory[t.CategoryID].Add(t.Amount)
	}
	spending := make([]CategorySpend, 0, len(l.categories))
	for _, c := range l.categories {
		spent := perCategory[c.ID]
		spending = append(spending, CategorySpend{
			Category:  c,
			Spent:     spent,
			OverLimit: c.LimitMonthly.IsPositive() && spent.GreaterThan(c.LimitMonthly),
		})
	}
	return spending
}
