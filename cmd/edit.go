package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	wealth "github.com/jhonatanorellana89-hue/wealthcmd"
)

type editCmd struct {
	amount      string
	description string
	date        string
	incomeType  string
	account     string
	category    string
	debt        string
	venture     string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit a recorded transaction" }
func (*editCmd) Usage() string {
	return `wcmd edit <transaction_id> [-amount <amount>] [-desc <description>] [-date <dd/mm/yyyy>] [-income-type <Activo|Pasivo>] [-account <id>] [-category <id>] [-debt <id>] [-venture <id>]

  Changes the given fields of a transaction. The original's financial
  effects are fully reversed and the updated ones applied, so balances
  end up exactly as if the transaction had been recorded this way from
  the start. Pass "-" on a reference flag to clear it.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "New amount")
	f.StringVar(&c.description, "desc", "", "New description")
	f.StringVar(&c.date, "date", "", "New date, dd/mm/yyyy")
	f.StringVar(&c.incomeType, "income-type", "", "New income classification: Activo or Pasivo")
	f.StringVar(&c.account, "account", "", "New account id, or - to clear")
	f.StringVar(&c.category, "category", "", "New category id, or - to clear")
	f.StringVar(&c.debt, "debt", "", "New debt id, or - to clear")
	f.StringVar(&c.venture, "venture", "", "New venture id, or - to clear")
}

// refPatch turns a reference flag value into a patch field: unset when
// empty, cleared when "-".
func refPatch(v string) *string {
	switch v {
	case "":
		return nil
	case "-":
		empty := ""
		return &empty
	default:
		return &v
	}
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one transaction id is required.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	patch := wealth.TransactionPatch{
		AccountID:  refPatch(c.account),
		CategoryID: refPatch(c.category),
		DebtID:     refPatch(c.debt),
		VentureID:  refPatch(c.venture),
	}
	if c.amount != "" {
		amount, err := parseAmount(c.amount)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		patch.Amount = &amount
	}
	if c.description != "" {
		patch.Description = &c.description
	}
	if c.date != "" {
		date, err := wealth.ParseDate(c.date)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		patch.Date = &date
	}
	if c.incomeType != "" {
		incomeType, err := wealth.ParseIncomeType(c.incomeType)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		patch.IncomeType = &incomeType
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	updated, err := ledger.UpdateTransaction(id, patch)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated %q (%s)\n", updated.Description, updated.ID)
	return subcommands.ExitSuccess
}
