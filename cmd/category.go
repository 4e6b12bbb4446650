package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	wealth "github.com/jhonatanorellana89-hue/wealthcmd"
	"github.com/jhonatanorellana89-hue/wealthcmd/renderer"
)

type newCategoryCmd struct {
	name  string
	limit string
}

func (*newCategoryCmd) Name() string     { return "new-category" }
func (*newCategoryCmd) Synopsis() string { return "create a spending category" }
func (*newCategoryCmd) Usage() string {
	return `wcmd new-category -name <name> [-limit <monthly_amount>]

  Creates a category. A non-zero limit flags the category in the
  spending report when the month's expenses exceed it.
`
}

func (c *newCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Category name (required)")
	f.StringVar(&c.limit, "limit", "0", "Monthly spending limit, 0 for unlimited")
}

func (c *newCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	limit, err := parseAmount(c.limit)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	added, err := ledger.AddCategory(wealth.Category{Name: c.name, LimitMonthly: limit})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created category %q (%s)\n", added.Name, added.ID)
	return subcommands.ExitSuccess
}

type spendingCmd struct {
	date string
}

func (*spendingCmd) Name() string     { return "spending" }
func (*spendingCmd) Synopsis() string { return "show the month's spending per category" }
func (*spendingCmd) Usage() string {
	return `wcmd spending [-date <dd/mm/yyyy>]

  Sums the month's expenses per category against their limits.
`
}

func (c *spendingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Any date of the month to report, dd/mm/yyyy (defaults to today)")
}

func (c *spendingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.CategorySpendingMarkdown(on, ledger.CategorySpending(on)))
	return subcommands.ExitSuccess
}
