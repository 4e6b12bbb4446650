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

type projectCmd struct {
	date    string
	passive string
	expense string
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project cash flow twelve months ahead" }
func (*projectCmd) Usage() string {
	return `wcmd project [-date <dd/mm/yyyy>] [-passive <amount>] [-expense <amount>]

  Projects a flat twelve-month cash-flow series from the current
  baseline: asset passive income plus the reference month's active
  income minus recurring expenses. -passive and -expense add a what-if
  delta on top; either may be negative.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Reference date, dd/mm/yyyy (defaults to today)")
	f.StringVar(&c.passive, "passive", "0", "Added monthly passive income")
	f.StringVar(&c.expense, "expense", "0", "Added monthly expense")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	passive, err := parseAmount(c.passive)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	expense, err := parseAmount(c.expense)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	points := ledger.Project(on, wealth.Scenario{
		AddedPassiveIncome: passive,
		AddedExpense:       expense,
	})
	printMarkdown(renderer.ProjectionMarkdown(points))
	return subcommands.ExitSuccess
}
