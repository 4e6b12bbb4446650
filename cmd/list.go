package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	wealth "github.com/jhonatanorellana89-hue/wealthcmd"
	"github.com/jhonatanorellana89-hue/wealthcmd/renderer"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list entities of a kind" }
func (*listCmd) Usage() string {
	return `wcmd list <kind>

  Lists entities with their ids: account, asset, equity, debt,
  category, venture or recurring. Use 'wcmd tx' for transactions.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one kind is required.")
		return subcommands.ExitUsageError
	}
	kind, err := wealth.ParseKind(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	md, err := listMarkdown(ledger, kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}

func listMarkdown(l *wealth.Ledger, kind wealth.Kind) (string, error) {
	var b strings.Builder
	row := func(cells ...string) {
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	rule := func(n int) {
		b.WriteString(strings.TrimSuffix(strings.Repeat("| --- ", n), " ") + "|\n")
	}

	switch kind {
	case wealth.KindAccount:
		b.WriteString("# Cuentas\n\n")
		row("Id", "Nombre", "Tipo", "Saldo")
		rule(4)
		for _, a := range l.Accounts() {
			row(a.ID, a.Name, a.Type, renderer.FormatMoney(a.Balance))
		}
	case wealth.KindInvestmentAsset:
		b.WriteString("# Activos de Inversión\n\n")
		row("Id", "Nombre", "Valor", "Ingreso Pasivo")
		rule(4)
		for _, a := range l.Assets() {
			row(a.ID, a.Name, renderer.FormatMoney(a.Balance), renderer.FormatMoney(a.PassiveIncome))
		}
	case wealth.KindEquityAsset:
		b.WriteString("# Patrimonio\n\n")
		row("Id", "Nombre", "Tipo", "Valor")
		rule(4)
		for _, a := range l.EquityAssets() {
			row(a.ID, a.Name, string(a.Type), renderer.FormatMoney(a.Value))
		}
	case wealth.KindDebt:
		b.WriteString("# Deudas\n\n")
		row("Id", "Nombre", "Pendiente", "Pago Mensual", "Interés")
		rule(5)
		for _, d := range l.Debts() {
			row(d.ID, d.Name, renderer.FormatMoney(d.Outstanding), renderer.FormatMoney(d.MonthlyPayment), d.Interest.String()+"%")
		}
	case wealth.KindCategory:
		b.WriteString("# Categorías\n\n")
		row("Id", "Nombre", "Límite Mensual")
		rule(3)
		for _, c := range l.Categories() {
			limit := "-"
			if c.LimitMonthly.IsPositive() {
				limit = renderer.FormatMoney(c.LimitMonthly)
			}
			row(c.ID, c.Name, limit)
		}
	case wealth.KindVenture:
		b.WriteString("# Emprendimientos\n\n")
		row("Id", "Nombre", "Financiado", "Meta")
		rule(4)
		for _, v := range l.Ventures() {
			row(v.ID, v.Name, renderer.FormatMoney(v.CurrentAmount), renderer.FormatMoney(v.TargetAmount))
		}
	case wealth.KindRecurringExpense:
		b.WriteString("# Gastos Recurrentes\n\n")
		row("Id", "Nombre", "Monto")
		rule(3)
		for _, r := range l.RecurringExpenses() {
			row(r.ID, r.Name, renderer.FormatMoney(r.Amount))
		}
	default:
		return "", fmt.Errorf("cannot list kind %q", kind)
	}
	return b.String(), nil
}
