package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	wealth "github.com/jhonatanorellana89-hue/wealthcmd"
)

type transferCmd struct {
	amount      string
	description string
	date        string
	from        string
	to          string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move funds between two accounts" }
func (*transferCmd) Usage() string {
	return `wcmd transfer -from <account_id> -to <account_id> -amount <amount> [-desc <description>] [-date <dd/mm/yyyy>]

  Moves the amount from one account to another. The sum of balances is
  preserved: what leaves the source arrives at the destination.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Source account id (required)")
	f.StringVar(&c.to, "to", "", "Destination account id (required)")
	f.StringVar(&c.amount, "amount", "", "Amount to move (required)")
	f.StringVar(&c.description, "desc", "Transferencia", "Description")
	f.StringVar(&c.date, "date", "", "Transaction date, dd/mm/yyyy (defaults to today)")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	added, err := ledger.AddTransfer(wealth.TransferArgs{
		FromAccountID: c.from,
		ToAccountID:   c.to,
		Amount:        amount,
		Description:   c.description,
		Date:          date,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Transferred %s (%s)\n", added.Amount, added.ID)
	return subcommands.ExitSuccess
}
