package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	wealth "github.com/jhonatanorellana89-hue/wealthcmd"
)

type newVentureCmd struct {
	name     string
	target   string
	deadline string
}

func (*newVentureCmd) Name() string     { return "new-venture" }
func (*newVentureCmd) Synopsis() string { return "create a venture funding goal" }
func (*newVentureCmd) Usage() string {
	return `wcmd new-venture -name <name> -target <amount> [-deadline <text>]

  Creates a venture. Funding always starts at zero and accumulates from
  savings-category (or uncategorized) expenses linked to the venture.
`
}

func (c *newVentureCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Venture name (required)")
	f.StringVar(&c.target, "target", "", "Funding target (required)")
	f.StringVar(&c.deadline, "deadline", "", "Informal deadline, free text")
}

func (c *newVentureCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	target, err := parseAmount(c.target)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	added, err := ledger.AddVenture(wealth.Venture{
		Name:         c.name,
		TargetAmount: target,
		Deadline:     c.deadline,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created venture %q (%s)\n", added.Name, added.ID)
	return subcommands.ExitSuccess
}
