package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	wealth "github.com/jhonatanorellana89-hue/wealthcmd"
)

type newRecurringCmd struct {
	name     string
	amount   string
	account  string
	category string
}

func (*newRecurringCmd) Name() string     { return "new-recurring" }
func (*newRecurringCmd) Synopsis() string { return "create a recurring expense template" }
func (*newRecurringCmd) Usage() string {
	return `wcmd new-recurring -name <name> -amount <amount> [-account <id>] [-category <id>]

  Creates a monthly expense template. 'wcmd run' turns templates into
  this month's transactions.
`
}

func (c *newRecurringCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Template name, also the generated description (required)")
	f.StringVar(&c.amount, "amount", "", "Monthly amount (required)")
	f.StringVar(&c.account, "account", "", "Account id the expense draws from")
	f.StringVar(&c.category, "category", "", "Category id")
}

func (c *newRecurringCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := parseAmount(c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	added, err := ledger.AddRecurringExpense(wealth.RecurringExpense{
		Name:       c.name,
		Amount:     amount,
		AccountID:  c.account,
		CategoryID: c.category,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created recurring expense %q (%s)\n", added.Name, added.ID)
	return subcommands.ExitSuccess
}

type recurringRunCmd struct {
	date string
}

func (*recurringRunCmd) Name() string     { return "run" }
func (*recurringRunCmd) Synopsis() string { return "generate this month's recurring expenses" }
func (*recurringRunCmd) Usage() string {
	return `wcmd run [-date <dd/mm/yyyy>]

  Generates one expense transaction per recurring template that has not
  been generated yet in the given month. Running it again in the same
  month generates nothing.
`
}

func (c *recurringRunCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Generation date, dd/mm/yyyy (defaults to today)")
}

func (c *recurringRunCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	count := ledger.GenerateRecurring(on)
	if count > 0 {
		if err := SaveLedger(ledger); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
	}
	fmt.Printf("Generated %d recurring expense(s) for %s\n", count, on.MonthLabel())
	return subcommands.ExitSuccess
}
