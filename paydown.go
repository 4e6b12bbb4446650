package wealth

import "github.com/shopspring/decimal"

// paydownCap bounds the amortization loop at 100 years; a payment that
// never covers the accruing interest would otherwise loop forever.
const paydownCap = 1200

// Paydown is the outcome of amortizing a debt with a fixed monthly
// payment. When Infinite is set the debt is never paid off: Months and
// TotalInterest are meaningless, but TotalPaid still carries the
// principal-plus-accrued-interest estimate up to the cap.
type Paydown struct {
	Months        int
	TotalInterest decimal.Decimal
	TotalPaid     decimal.Decimal
	Infinite      bool
}

// SimulatePaydown runs a monthly amortization loop: each month accrues
// interest at annualPct/12 on the remaining balance and the payment plus
// extra reduces it, until the balance reaches zero.
func SimulatePaydown(principal, monthlyPayment, annualPct, extra decimal.Decimal) Paydown {
	payment := monthlyPayment.Add(extra)
	if !payment.IsPositive() {
		return Paydown{Infinite: true}
	}
	monthlyRate := annualPct.Div(decimal.NewFromInt(1200))

	balance := principal
	totalInterest := decimal.Zero
	months := 0
	for balance.IsPositive() {
		interest := balance.Mul(monthlyRate)
		totalInterest = totalInterest.Add(interest)
		balance = balance.Sub(payment.Sub(interest))
		months++
		if months > paydownCap {
			return Paydown{
				Infinite:  true,
				TotalPaid: principal.Add(totalInterest),
			}
		}
	}
	return Paydown{
		Months:        months,
		TotalInterest: totalInterest,
		TotalPaid:     principal.Add(totalInterest),
	}
}

// PaydownComparison contrasts the scheduled paydown of a debt with an
// accelerated one that adds a fixed extra payment every month.
type PaydownComparison struct {
	Extra         decimal.Decimal
	Baseline      Paydown
	Accelerated   Paydown
	MonthsSaved   int
	InterestSaved decimal.Decimal
	SavingsKnown  bool // false when either scenario never pays off
}

// ComparePaydown simulates the debt as scheduled and with the extra
// monthly payment, and reports the saved months and interest.
func ComparePaydown(d Debt, extra decimal.Decimal) PaydownComparison {
	cmp := PaydownComparison{
		Extra:       extra,
		Baseline:    SimulatePaydown(d.Outstanding, d.MonthlyPayment, d.Interest, decimal.Zero),
		Accelerated: SimulatePaydown(d.Outstanding, d.MonthlyPayment, d.Interest, extra),
	}
	if !cmp.Baseline.Infinite && !cmp.Accelerated.Infinite {
		cmp.SavingsKnown = true
		cmp.MonthsSaved = cmp.Baseline.Months - cmp.Accelerated.Months
		cmp.InterestSaved = cmp.Baseline.TotalInterest.Sub(cmp.Accelerated.TotalInterest)
	}
	return cmp
}
