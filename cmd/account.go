package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	wealth "github.com/jhonatanorellana89-hue/wealthcmd"
)

type newAccountCmd struct {
	name     string
	kind     string
	balance  string
	currency string
}

func (*newAccountCmd) Name() string     { return "new-account" }
func (*newAccountCmd) Synopsis() string { return "create a liquid-funds account" }
func (*newAccountCmd) Usage() string {
	return `wcmd new-account -name <name> [-type <type>] [-balance <amount>] [-currency <code>]

  Creates an account. The opening balance is a direct statement of fact,
  not a transaction.
`
}

func (c *newAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Account name (required)")
	f.StringVar(&c.kind, "type", "Cuenta Bancaria", "Account type, free text")
	f.StringVar(&c.balance, "balance", "0", "Opening balance")
	f.StringVar(&c.currency, "currency", "PEN", "Currency, 3-letter code")
}

func (c *newAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	balance, err := parseAmount(c.balance)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	added, err := ledger.AddAccount(wealth.Account{
		Name:     c.name,
		Type:     c.kind,
		Balance:  balance,
		Currency: c.currency,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created account %q (%s)\n", added.Name, added.ID)
	return subcommands.ExitSuccess
}
