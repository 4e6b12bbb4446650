package renderer

import (
	wealth "github.com/jhonatanorellana89-hue/wealthcmd"
)

type transactionRow struct {
	Date        string
	Type        string
	Description string
	Category    string
	Account     string
	Amount      string
}

// TransactionsMarkdown renders a transaction listing with account and
// category ids resolved to display names against the ledger.
func TransactionsMarkdown(l *wealth.Ledger, txs []wealth.Transaction) string {
	rows := make([]transactionRow, 0, len(txs))
	for _, t := range txs {
		row := transactionRow{
			Date:        t.Date.String(),
			Type:        string(t.Type),
			Description: t.Description,
			Amount:      FormatMoney(t.Amount),
		}
		if c, ok := l.Category(t.CategoryID); ok {
			row.Category = c.Name
		}
		if a, ok := l.Account(t.AccountID); ok {
			row.Account = a.Name
		}
		if t.Type == wealth.Transfer {
			if to, ok := l.Account(t.ToAccountID); ok {
				row.Account += " → " + to.Name
			}
		}
		rows = append(rows, row)
	}
	data := struct{ Rows []transactionRow }{rows}
	return renderTemplate("transactions", "transactions.md", nil, data)
}
