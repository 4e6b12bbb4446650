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

type paydownCmd struct {
	extra string
}

func (*paydownCmd) Name() string     { return "paydown" }
func (*paydownCmd) Synopsis() string { return "simulate paying a debt off faster" }
func (*paydownCmd) Usage() string {
	return `wcmd paydown <debt_id> [-extra <monthly_amount>]

  Amortizes the debt month by month and compares the scheduled payment
  against an accelerated one with the extra amount: months saved and
  interest saved. A payment that never covers the accruing interest is
  reported as never paying off.
`
}

func (c *paydownCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.extra, "extra", "0", "Extra payment added every month")
}

func (c *paydownCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one debt id is required.")
		return subcommands.ExitUsageError
	}
	extra, err := parseAmount(c.extra)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	debt, ok := ledger.Debt(f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: debt %q not found.\n", f.Arg(0))
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.PaydownMarkdown(debt.Name, wealth.ComparePaydown(debt, extra)))
	return subcommands.ExitSuccess
}
