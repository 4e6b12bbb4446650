package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/jhonatanorellana89-hue/wealthcmd/agent"
)

type adviseCmd struct {
	date string
}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "get the AI coach's monthly briefing" }
func (*adviseCmd) Usage() string {
	return `wcmd advise [-date <dd/mm/yyyy>]

  Sends the month's figures to the AI coach and prints its briefing:
  diagnosis, alert, opportunity and mission. Without connectivity or
  GEMINI_API_KEY a fixed fallback briefing is shown instead.
`
}

func (c *adviseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Any date of the month to analyze, dd/mm/yyyy (defaults to today)")
}

func (c *adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	b := agent.Advise(ctx, client, ledger, on)
	printMarkdown(fmt.Sprintf(`# Informe del Coach (%s)

## Diagnóstico

%s

## Alerta

%s

## Oportunidad

%s

## Misión

%s
`, on.MonthLabel(), b.Diagnosis, b.Alert, b.Opportunity, b.Mission))
	return subcommands.ExitSuccess
}
