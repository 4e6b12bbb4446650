package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	wealth "github.com/jhonatanorellana89-hue/wealthcmd"
)

type newAssetCmd struct {
	name     string
	kind     string
	balance  string
	passive  string
	currency string
}

func (*newAssetCmd) Name() string     { return "new-asset" }
func (*newAssetCmd) Synopsis() string { return "create an investment asset" }
func (*newAssetCmd) Usage() string {
	return `wcmd new-asset -name <name> [-type <type>] [-balance <amount>] [-passive <monthly_income>] [-currency <code>]

  Creates an investment asset. Its balance counts toward net worth and
  its monthly passive income feeds the freedom race and the projection.
`
}

func (c *newAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Asset name (required)")
	f.StringVar(&c.kind, "type", "", "Asset type, free text")
	f.StringVar(&c.balance, "balance", "0", "Current value")
	f.StringVar(&c.passive, "passive", "0", "Monthly passive income")
	f.StringVar(&c.currency, "currency", "PEN", "Currency, 3-letter code")
}

func (c *newAssetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	balance, err := parseAmount(c.balance)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	passive, err := parseAmount(c.passive)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	added, err := ledger.AddAsset(wealth.InvestmentAsset{
		Name:          c.name,
		Type:          c.kind,
		Balance:       balance,
		PassiveIncome: passive,
		Currency:      c.currency,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created asset %q (%s)\n", added.Name, added.ID)
	return subcommands.ExitSuccess
}

type newEquityCmd struct {
	name  string
	kind  string
	value string
}

func (*newEquityCmd) Name() string     { return "new-equity" }
func (*newEquityCmd) Synopsis() string { return "create a non-liquid equity asset" }
func (*newEquityCmd) Usage() string {
	return `wcmd new-equity -name <name> -value <amount> [-type <Bienes Raíces|Vehículo|Otro>]

  Creates a valuation-only asset (real estate, vehicle). It counts
  toward net worth and can back a debt.
`
}

func (c *newEquityCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Asset name (required)")
	f.StringVar(&c.kind, "type", string(wealth.OtherEquity), "Asset type: Bienes Raíces, Vehículo or Otro")
	f.StringVar(&c.value, "value", "", "Current valuation (required)")
}

func (c *newEquityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := wealth.ParseEquityAssetType(c.kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	value, err := parseAmount(c.value)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	added, err := ledger.AddEquityAsset(wealth.EquityAsset{
		Name:  c.name,
		Type:  kind,
		Value: value,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created equity asset %q (%s)\n", added.Name, added.ID)
	return subcommands.ExitSuccess
}
