package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	wealth "github.com/jhonatanorellana89-hue/wealthcmd"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete an entity" }
func (*rmCmd) Usage() string {
	return `wcmd rm <kind> <id>

  Deletes an entity of the given kind: transaction, account, asset,
  equity, debt, category, venture or recurring.

  An entity still referenced by others is refused: an account or
  category used by transactions or recurring expenses, a debt or
  venture used by transactions, an equity asset linked to a debt.
  Deleting a transaction reverses its financial effects.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: a kind and an id are required.")
		return subcommands.ExitUsageError
	}
	kind, err := wealth.ParseKind(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	id := f.Arg(1)

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := ledger.CheckDeletable(kind, id); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := deleteEntity(ledger, kind, id); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted %s %s\n", kind, id)
	return subcommands.ExitSuccess
}

func deleteEntity(l *wealth.Ledger, kind wealth.Kind, id string) error {
	switch kind {
	case wealth.KindTransaction:
		return l.DeleteTransaction(id)
	case wealth.KindAccount:
		return l.DeleteAccount(id)
	case wealth.KindInvestmentAsset:
		return l.DeleteAsset(id)
	case wealth.KindEquityAsset:
		return l.DeleteEquityAsset(id)
	case wealth.KindDebt:
		return l.DeleteDebt(id)
	case wealth.KindCategory:
		return l.DeleteCategory(id)
	case wealth.KindVenture:
		return l.DeleteVenture(id)
	case wealth.KindRecurringExpense:
		return l.DeleteRecurringExpense(id)
	}
	return fmt.Errorf("unknown kind %q", kind)
}
