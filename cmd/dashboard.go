package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/jhonatanorellana89-hue/wealthcmd/renderer"
)

type dashboardCmd struct {
	date string
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show the month's financial dashboard" }
func (*dashboardCmd) Usage() string {
	return `wcmd dashboard [-date <dd/mm/yyyy>]

  Shows net worth, the month's cash flow with its trend, the freedom
  race, the six-month income/expense chart and the asset composition.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Any date of the month to report, dd/mm/yyyy (defaults to today)")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.DashboardMarkdown(ledger.NewDashboard(on), on))
	return subcommands.ExitSuccess
}
