package wealth

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// testRefs carries the ids of the fixture entities.
type testRefs struct {
	main    string // account, balance 1000
	pocket  string // account, balance 200
	savings string // the designated savings category
	food    string // a plain category
	debt    string // outstanding 15000
	venture string // target 20000, funded 0
}

// newTestLedger builds the fixture every store test starts from.
func newTestLedger(t *testing.T) (*Ledger, testRefs) {
	t.Helper()
	l := NewLedger()
	var refs testRefs

	main, err := l.AddAccount(Account{Name: "Cuenta Principal", Type: "Cuenta Bancaria", Balance: dec("1000"), Currency: "PEN"})
	if err != nil {
		t.Fatalf("AddAccount: %v", err)
	}
	refs.main = main.ID

	pocket, err := l.AddAccount(Account{Name: "Efectivo", Type: "Billetera", Balance: dec("200"), Currency: "PEN"})
	if err != nil {
		t.Fatalf("AddAccount: %v", err)
	}
	refs.pocket = pocket.ID

	savings, err := l.AddCategory(Category{Name: SavingsCategoryName})
	if err != nil {
		t.Fatalf("AddCategory: %v", err)
	}
	refs.savings = savings.ID

	food, err := l.AddCategory(Category{Name: "Alimentación", LimitMonthly: dec("800")})
	if err != nil {
		t.Fatalf("AddCategory: %v", err)
	}
	refs.food = food.ID

	debt, err := l.AddDebt(Debt{Name: "Préstamo Vehicular", Outstanding: dec("15000"), MonthlyPayment: dec("1200"), Interest: dec("8")})
	if err != nil {
		t.Fatalf("AddDebt: %v", err)
	}
	refs.debt = debt.ID

	venture, err := l.AddVenture(Venture{Name: "E-commerce de Nicho", TargetAmount: dec("20000")})
	if err != nil {
		t.Fatalf("AddVenture: %v", err)
	}
	refs.venture = venture.ID

	return l, refs
}

// balance returns the account balance as a plain string for assertions.
func balance(t *testing.T, l *Ledger, id string) string {
	t.Helper()
	a, ok := l.Account(id)
	if !ok {
		t.Fatalf("account %s not found", id)
	}
	return a.Balance.String()
}

func ptr[T any](v T) *T { return &v }
