package wealth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// seedAnalyticsLedger loads July plus June history into the fixture.
func seedAnalyticsLedger(t *testing.T) (*Ledger, testRefs) {
	t.Helper()
	l, refs := newTestLedger(t)

	add := func(tx Transaction) {
		t.Helper()
		_, err := l.AddTransaction(tx)
		require.NoError(t, err)
	}
	add(Transaction{Type: Income, IncomeType: ActiveIncome, Amount: dec("5000"), Description: "Sueldo", Date: MustParseDate("01/07/2024"), AccountID: refs.main})
	add(Transaction{Type: Income, IncomeType: PassiveIncome, Amount: dec("450"), Description: "Dividendos", Date: MustParseDate("10/07/2024"), AccountID: refs.main})
	add(Transaction{Type: Expense, Amount: dec("800"), Description: "Supermercado", Date: MustParseDate("05/07/2024"), AccountID: refs.main, CategoryID: refs.food})
	add(Transaction{Type: Income, IncomeType: ActiveIncome, Amount: dec("4000"), Description: "Sueldo", Date: MustParseDate("01/06/2024"), AccountID: refs.main})
	add(Transaction{Type: Expense, Amount: dec("1000"), Description: "Gastos", Date: MustParseDate("15/06/2024"), AccountID: refs.main})

	// A transfer in the month must not count as income or expense.
	_, err := l.AddTransfer(TransferArgs{Amount: dec("300"), FromAccountID: refs.main, ToAccountID: refs.pocket, Date: MustParseDate("11/07/2024")})
	require.NoError(t, err)
	return l, refs
}

func TestDashboard_CashFlow(t *testing.T) {
	l, _ := seedAnalyticsLedger(t)
	d := l.NewDashboard(MustParseDate("20/07/2024"))

	if got := d.CashFlow.TotalIncome.String(); got != "5450" {
		t.Errorf("TotalIncome = %s, want 5450", got)
	}
	if got := d.CashFlow.TotalExpenses.String(); got != "800" {
		t.Errorf("TotalExpenses = %s, want 800", got)
	}
	if got := d.CashFlow.Value.String(); got != "4650" {
		t.Errorf("CashFlow = %s, want 4650", got)
	}
	// Prior month flow is 3000; (4650−3000)/3000 × 100 = 55.
	if got := d.CashFlow.Trend.String(); got != "55" {
		t.Errorf("Trend = %s, want 55", got)
	}
}

func TestDashboard_TrendSpecialCases(t *testing.T) {
	cases := []struct {
		name      string
		current   string // current month income (expenses zero)
		wantTrend string
	}{
		{"zero previous, positive current", "100", "100"},
		{"zero previous, zero current", "0", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, refs := newTestLedger(t)
			if tc.current != "0" {
				_, err := l.AddTransaction(Transaction{
					Type: Income, IncomeType: ActiveIncome, Amount: dec(tc.current),
					Date: MustParseDate("05/07/2024"), AccountID: refs.main,
				})
				require.NoError(t, err)
			}
			d := l.NewDashboard(MustParseDate("20/07/2024"))
			if got := d.CashFlow.Trend.String(); got != tc.wantTrend {
				t.Errorf("Trend = %s, want %s", got, tc.wantTrend)
			}
		})
	}
}

func TestDashboard_NetWorth(t *testing.T) {
	l, refs := seedAnalyticsLedger(t)
	_, err := l.AddAsset(InvestmentAsset{Name: "Acciones", Balance: dec("25000"), PassiveIncome: dec("450"), Currency: "PEN"})
	require.NoError(t, err)
	_, err = l.AddEquityAsset(EquityAsset{Name: "Casa", Type: RealEstate, Value: dec("250000")})
	require.NoError(t, err)
	_ = refs

	d := l.NewDashboard(MustParseDate("20/07/2024"))
	// Cash 1000+200+7650 flow effects… the fixture accounts hold 8850
	// total after the seeded transactions; assets 25000; equity 250000;
	// debt 15000.
	cash := l.totalCash()
	want := cash.Add(dec("25000")).Add(dec("250000")).Sub(dec("15000"))
	if !d.NetWorth.Value.Equal(want) {
		t.Errorf("NetWorth = %s, want %s", d.NetWorth.Value, want)
	}
	if !d.NetWorth.TotalLiabilities.Equal(dec("15000")) {
		t.Errorf("TotalLiabilities = %s", d.NetWorth.TotalLiabilities)
	}
}

func TestDashboard_FreedomRace(t *testing.T) {
	cases := []struct {
		name     string
		passive  string
		expenses string
		want     string
	}{
		{"normal ratio", "450", "900", "50"},
		{"capped at 100", "2000", "900", "100"},
		{"zero expenses, positive passive", "450", "0", "100"},
		{"zero expenses, zero passive", "0", "0", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, refs := newTestLedger(t)
			if tc.passive != "0" {
				_, err := l.AddAsset(InvestmentAsset{Name: "Cartera", Balance: dec("1"), PassiveIncome: dec(tc.passive), Currency: "PEN"})
				require.NoError(t, err)
			}
			if tc.expenses != "0" {
				_, err := l.AddTransaction(Transaction{
					Type: Expense, Amount: dec(tc.expenses),
					Date: MustParseDate("05/07/2024"), AccountID: refs.main,
				})
				require.NoError(t, err)
			}
			d := l.NewDashboard(MustParseDate("20/07/2024"))
			if got := d.FreedomRace.Percentage.String(); got != tc.want {
				t.Errorf("Percentage = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestDashboard_MonthlyChart(t *testing.T) {
	l, _ := seedAnalyticsLedger(t)
	d := l.NewDashboard(MustParseDate("20/07/2024"))

	require.Len(t, d.MonthlyChart, 6)
	if got := d.MonthlyChart[5].Label; got != "jul 24" {
		t.Errorf("last label = %q, want %q", got, "jul 24")
	}
	if got := d.MonthlyChart[0].Label; got != "feb 24" {
		t.Errorf("first label = %q, want %q", got, "feb 24")
	}
	if got := d.MonthlyChart[4].Income.String(); got != "4000" {
		t.Errorf("June income = %s, want 4000", got)
	}
	if got := d.MonthlyChart[5].Expense.String(); got != "800" {
		t.Errorf("July expense = %s, want 800", got)
	}
}

func TestDashboard_AssetCompositionOmitsZeroBuckets(t *testing.T) {
	l, _ := newTestLedger(t)
	d := l.NewDashboard(MustParseDate("20/07/2024"))

	// Fixture has cash only: no investments, no equity.
	require.Len(t, d.AssetComposition, 1)
	if d.AssetComposition[0].Name != "Efectivo" {
		t.Errorf("bucket = %q, want Efectivo", d.AssetComposition[0].Name)
	}
}

func TestDashboard_SummaryActiveIncome(t *testing.T) {
	l, _ := seedAnalyticsLedger(t)
	d := l.NewDashboard(MustParseDate("20/07/2024"))

	// 5450 total income minus the 450 tagged passive.
	if got := d.Summary.ActiveIncome.String(); got != "5000" {
		t.Errorf("ActiveIncome = %s, want 5000", got)
	}
	if d.Summary.VenturesCount != 1 {
		t.Errorf("VenturesCount = %d, want 1", d.Summary.VenturesCount)
	}
}

func TestDashboard_Memoized(t *testing.T) {
	l, _ := seedAnalyticsLedger(t)
	on := MustParseDate("20/07/2024")

	first := l.NewDashboard(on)
	if second := l.NewDashboard(on); second != first {
		t.Fatal("expected the memoized dashboard between mutations")
	}

	// Any mutation invalidates the key.
	_, err := l.AddCategory(Category{Name: "Transporte"})
	require.NoError(t, err)
	if third := l.NewDashboard(on); third == first {
		t.Fatal("expected a fresh dashboard after a mutation")
	}
}

func TestCategorySpending(t *testing.T) {
	l, refs := newTestLedger(t)
	_, err := l.AddTransaction(Transaction{
		Type: Expense, Amount: dec("900"), Date: MustParseDate("05/07/2024"),
		AccountID: refs.main, CategoryID: refs.food,
	})
	require.NoError(t, err)

	for _, s := range l.CategorySpending(MustParseDate("20/07/2024")) {
		switch s.Category.ID {
		case refs.food:
			if got := s.Spent.String(); got != "900" {
				t.Errorf("food spent = %s, want 900", got)
			}
			if !s.OverLimit {
				t.Error("food should be over its 800 limit")
			}
		case refs.savings:
			if s.OverLimit {
				t.Error("zero limit means unlimited")
			}
		}
	}
}
