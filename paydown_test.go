package wealth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimulatePaydown_Finite(t *testing.T) {
	got := SimulatePaydown(dec("15000"), dec("1200"), dec("8"), dec("0"))

	assert.False(t, got.Infinite)
	assert.Greater(t, got.Months, 0)
	assert.LessOrEqual(t, got.Months, paydownCap)
	assert.True(t, got.TotalInterest.IsPositive(), "interest accrues on a positive rate")
	assert.True(t, got.TotalPaid.GreaterThan(dec("15000")), "total paid exceeds principal")
	assert.True(t, got.TotalPaid.Equal(dec("15000").Add(got.TotalInterest)))
}

func TestSimulatePaydown_ZeroPayment(t *testing.T) {
	got := SimulatePaydown(dec("1000"), dec("0"), dec("8"), dec("0"))
	assert.True(t, got.Infinite, "a zero payment never pays off")
}

func TestSimulatePaydown_PaymentBelowInterest(t *testing.T) {
	// 10/mo against 2000/mo of accruing interest: balance only grows.
	got := SimulatePaydown(dec("100000"), dec("10"), dec("24"), dec("0"))
	assert.True(t, got.Infinite)
	assert.True(t, got.TotalPaid.GreaterThan(dec("100000")), "estimate still carries accrued interest")
}

func TestSimulatePaydown_ZeroInterest(t *testing.T) {
	got := SimulatePaydown(dec("1200"), dec("100"), dec("0"), dec("0"))
	assert.False(t, got.Infinite)
	assert.Equal(t, 12, got.Months)
	assert.True(t, got.TotalInterest.IsZero())
	assert.True(t, got.TotalPaid.Equal(dec("1200")))
}

func TestSimulatePaydown_ExtraShortens(t *testing.T) {
	base := SimulatePaydown(dec("15000"), dec("1200"), dec("8"), dec("0"))
	fast := SimulatePaydown(dec("15000"), dec("1200"), dec("8"), dec("300"))

	assert.Less(t, fast.Months, base.Months)
	assert.True(t, fast.TotalInterest.LessThan(base.TotalInterest))
}

func TestComparePaydown(t *testing.T) {
	d := Debt{Outstanding: dec("15000"), MonthlyPayment: dec("1200"), Interest: dec("8")}
	cmp := ComparePaydown(d, dec("300"))

	assert.True(t, cmp.SavingsKnown)
	assert.Equal(t, cmp.Baseline.Months-cmp.Accelerated.Months, cmp.MonthsSaved)
	assert.True(t, cmp.InterestSaved.Equal(cmp.Baseline.TotalInterest.Sub(cmp.Accelerated.TotalInterest)))
	assert.Greater(t, cmp.MonthsSaved, 0)
	assert.True(t, cmp.InterestSaved.IsPositive())
}

func TestComparePaydown_InfiniteBaseline(t *testing.T) {
	// Scheduled payment alone never covers interest; the extra does.
	d := Debt{Outstanding: dec("100000"), MonthlyPayment: dec("10"), Interest: dec("24")}
	cmp := ComparePaydown(d, dec("5000"))

	assert.True(t, cmp.Baseline.Infinite)
	assert.False(t, cmp.Accelerated.Infinite)
	assert.False(t, cmp.SavingsKnown, "savings are meaningless against an unbounded baseline")
	assert.Equal(t, 0, cmp.MonthsSaved)
	assert.True(t, cmp.InterestSaved.IsZero())
}
