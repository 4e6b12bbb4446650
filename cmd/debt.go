package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	wealth "github.com/jhonatanorellana89-hue/wealthcmd"
)

type newDebtCmd struct {
	name     string
	owed     string
	payment  string
	interest string
	equity   string
}

func (*newDebtCmd) Name() string     { return "new-debt" }
func (*newDebtCmd) Synopsis() string { return "create a debt" }
func (*newDebtCmd) Usage() string {
	return `wcmd new-debt -name <name> -owed <amount> [-payment <monthly>] [-interest <annual_pct>] [-equity <equity_asset_id>]

  Creates a liability. Expense transactions that reference it reduce its
  outstanding balance; -equity links it to the asset that backs it.
`
}

func (c *newDebtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Debt name (required)")
	f.StringVar(&c.owed, "owed", "", "Outstanding balance (required)")
	f.StringVar(&c.payment, "payment", "0", "Scheduled monthly payment")
	f.StringVar(&c.interest, "interest", "0", "Annual interest rate, percent")
	f.StringVar(&c.equity, "equity", "", "Equity asset id backing this debt")
}

func (c *newDebtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	owed, err := parseAmount(c.owed)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	payment, err := parseAmount(c.payment)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	interest, err := parseAmount(c.interest)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	added, err := ledger.AddDebt(wealth.Debt{
		Name:           c.name,
		Outstanding:    owed,
		MonthlyPayment: payment,
		Interest:       interest,
		EquityAssetID:  c.equity,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created debt %q (%s)\n", added.Name, added.ID)
	return subcommands.ExitSuccess
}
