package wealth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject(t *testing.T) {
	l, refs := newTestLedger(t)

	_, err := l.AddAsset(InvestmentAsset{Name: "Fondo Indexado", Balance: dec("10000"), PassiveIncome: dec("450")})
	require.NoError(t, err)
	_, err = l.AddRecurringExpense(RecurringExpense{Name: "Alquiler", Amount: dec("1500")})
	require.NoError(t, err)

	on := NewDate(2024, time.July, 15)
	_, err = l.AddTransaction(Transaction{
		Type: Income, IncomeType: ActiveIncome,
		Amount: dec("5000"), Description: "Sueldo",
		AccountID: refs.main, Date: on,
	})
	require.NoError(t, err)

	points := l.Project(on, Scenario{AddedPassiveIncome: dec("200"), AddedExpense: dec("300")})
	require.Len(t, points, 12)

	// 5000 active + (450+200) passive − (1500+300) recurring = 3850, flat.
	for i, p := range points {
		assert.True(t, p.CashFlow.Equal(dec("3850")), "point %d cash flow = %s", i, p.CashFlow)
		assert.True(t, p.PassiveIncome.Equal(dec("650")))
		assert.True(t, p.RecurringExpense.Equal(dec("1800")))
	}
	assert.Equal(t, "jul 24", points[0].Label)
	assert.Equal(t, "ago 24", points[1].Label)
	assert.Equal(t, "jun 25", points[11].Label)
}

func TestProject_EmptyScenario(t *testing.T) {
	l, refs := newTestLedger(t)

	on := NewDate(2024, time.July, 15)
	_, err := l.AddTransaction(Transaction{
		Type: Income, IncomeType: ActiveIncome,
		Amount: dec("4000"), Description: "Sueldo",
		AccountID: refs.main, Date: on,
	})
	require.NoError(t, err)

	points := l.Project(on, Scenario{})
	require.Len(t, points, 12)
	assert.True(t, points[0].CashFlow.Equal(dec("4000")), "baseline is the reference month's active income")
	assert.True(t, points[0].CashFlow.Equal(points[11].CashFlow), "the series is flat")
}

func TestProject_ActiveIncomeOutsideMonthIgnored(t *testing.T) {
	l, refs := newTestLedger(t)

	on := NewDate(2024, time.July, 15)
	_, err := l.AddTransaction(Transaction{
		Type: Income, IncomeType: ActiveIncome,
		Amount: dec("4000"), Description: "Sueldo junio",
		AccountID: refs.main, Date: NewDate(2024, time.June, 15),
	})
	require.NoError(t, err)

	points := l.Project(on, Scenario{})
	assert.True(t, points[0].CashFlow.IsZero(), "income from another month does not count")
}

func TestProject_NegativeScenario(t *testing.T) {
	l, _ := newTestLedger(t)

	points := l.Project(NewDate(2024, time.July, 1), Scenario{AddedExpense: dec("-500")})
	assert.True(t, points[0].RecurringExpense.Equal(dec("-500")))
	assert.True(t, points[0].CashFlow.Equal(dec("500")))
}
