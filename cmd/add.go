package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	wealth "github.com/jhonatanorellana89-hue/wealthcmd"
)

type addCmd struct {
	kind        string
	amount      string
	description string
	date        string
	incomeType  string
	account     string
	category    string
	debt        string
	venture     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or expense" }
func (*addCmd) Usage() string {
	return `wcmd add -type <Ingreso|Egreso> -amount <amount> -desc <description> [-date <dd/mm/yyyy>] [-account <id>] [-category <id>] [-debt <id>] [-venture <id>]

  Records a transaction and applies its balance effects: an income adds
  to the account, an expense subtracts from it, an expense tied to a
  debt also reduces the debt's outstanding. Incomes take -income-type
  (Activo or Pasivo). Use 'wcmd transfer' to move funds between
  accounts.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "type", "", "Transaction type: Ingreso or Egreso (required)")
	f.StringVar(&c.amount, "amount", "", "Amount, always positive (required)")
	f.StringVar(&c.description, "desc", "", "Description (required)")
	f.StringVar(&c.date, "date", "", "Transaction date, dd/mm/yyyy (defaults to today)")
	f.StringVar(&c.incomeType, "income-type", string(wealth.ActiveIncome), "Income classification: Activo or Pasivo")
	f.StringVar(&c.account, "account", "", "Account id the amount moves through")
	f.StringVar(&c.category, "category", "", "Category id")
	f.StringVar(&c.debt, "debt", "", "Debt id this expense pays down")
	f.StringVar(&c.venture, "venture", "", "Venture id this expense funds")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := wealth.ParseTransactionType(c.kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	amount, err := parseAmount(c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	date, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	tx := wealth.Transaction{
		Type:        kind,
		Amount:      amount,
		Description: c.description,
		Date:        date,
		AccountID:   c.account,
		CategoryID:  c.category,
		DebtID:      c.debt,
		VentureID:   c.venture,
	}
	if kind == wealth.Income {
		incomeType, err := wealth.ParseIncomeType(c.incomeType)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		tx.IncomeType = incomeType
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	added, err := ledger.AddTransaction(tx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s %q (%s)\n", added.Type, added.Description, added.ID)
	return subcommands.ExitSuccess
}
