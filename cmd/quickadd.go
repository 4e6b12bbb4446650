package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	wealth "github.com/jhonatanorellana89-hue/wealthcmd"
	"github.com/jhonatanorellana89-hue/wealthcmd/agent"
)

type quickaddCmd struct {
	account string
	date    string
	yes     bool
}

func (*quickaddCmd) Name() string     { return "quickadd" }
func (*quickaddCmd) Synopsis() string { return "record a transaction from free text, via AI" }
func (*quickaddCmd) Usage() string {
	return `wcmd quickadd [-account <id>] [-date <dd/mm/yyyy>] [-y] <text...>

  Asks the AI to turn free text like "50 tacos" into a transaction:
  amount, description, type and suggested category. The result is shown
  and confirmed before anything is recorded (-y skips the prompt).
  Requires GEMINI_API_KEY.
`
}

func (c *quickaddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account id the amount moves through")
	f.StringVar(&c.date, "date", "", "Transaction date, dd/mm/yyyy (defaults to today)")
	f.BoolVar(&c.yes, "y", false, "Record without asking for confirmation")
}

func (c *quickaddCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: some text to parse is required.")
		return subcommands.ExitUsageError
	}
	text := strings.Join(f.Args(), " ")
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
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	entry, err := agent.ParseQuickEntry(ctx, client, ledger, text)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	category := "(sin categoría)"
	if cat, ok := ledger.Category(entry.CategoryID); ok {
		category = cat.Name
	}
	fmt.Printf("%s | %s | %s | %s\n", entry.Type, entry.Amount, entry.Description, category)

	if !c.yes {
		fmt.Print("¿Registrar? [s/N] ")
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "s" && answer != "si" && answer != "sí" {
			fmt.Println("Cancelado.")
			return subcommands.ExitSuccess
		}
	}

	tx := wealth.Transaction{
		Type:        entry.Type,
		Amount:      entry.Amount,
		Description: entry.Description,
		Date:        date,
		AccountID:   c.account,
		CategoryID:  entry.CategoryID,
	}
	if tx.Type == wealth.Income {
		tx.IncomeType = wealth.ActiveIncome
	}
	added, err := ledger.AddTransaction(tx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s %q (%s)\n", added.Type, added.Description, added.ID)
	return subcommands.ExitSuccess
}
