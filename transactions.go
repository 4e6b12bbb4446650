package wealth

import (
	"github.com/shopspring/decimal"
)

// This file holds the reversible-mutation rules for transactions. Every
// mutation resolves its references first, then applies (or reverses) the
// full effect set: account balances, debt outstanding and venture funding.
// An edit is always "reverse the original, apply the updated", so the net
// financial effect of add-then-delete is exactly zero.

// AddTransaction validates tx, assigns id and creation timestamp,
// prepends it to the transaction list and applies its balance, debt and
// venture effects. List order is insertion order, not chronological;
// display layers re-sort by date.
//
// Transfers are created with AddTransfer, not here.
func (l *Ledger) AddTransaction(tx Transaction) (Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if tx.Type == Transfer {
		return Transaction{}, invalid("type", "transfers are created with AddTransfer")
	}
	if tx.Date.IsZero() {
		tx.Date = Today()
	}
	if err := l.validateTransaction(&tx); err != nil {
		return Transaction{}, err
	}
	before := l.milestoneStats()
	tx.ID, tx.CreatedAt = newID("t"), now()
	l.transactions = append([]Transaction{tx}, l.transactions...)
	l.applyEffects(tx, false)
	l.settle(before)
	return tx, nil
}

// TransferArgs are the caller-supplied fields of a transfer.
type TransferArgs struct {
	Amount        decimal.Decimal
	FromAccountID string
	ToAccountID   string
	Date          Date
	Description   string
}

// AddTransfer moves funds between two distinct accounts. The transaction
// is recorded with no category; source and destination balances change by
// the same amount, so their sum is conserved.
func (l *Ledger) AddTransfer(args TransferArgs) (Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !args.Amount.IsPositive() {
		return Transaction{}, invalid("amount", "must be positive")
	}
	if args.FromAccountID == "" || args.ToAccountID == "" {
		return Transaction{}, invalid("account", "both accounts are required")
	}
	if args.FromAccountID == args.ToAccountID {
		return Transaction{}, invalid("account", "source and destination must differ")
	}
	if _, ok := l.Account(args.FromAccountID); !ok {
		return Transaction{}, danglingRef("cuentaId", args.FromAccountID)
	}
	if _, ok := l.Account(args.ToAccountID); !ok {
		return Transaction{}, danglingRef("toCuentaId", args.ToAccountID)
	}
	if args.Date.IsZero() {
		args.Date = Today()
	}
	tx := Transaction{
		Type:        Transfer,
		Amount:      args.Amount,
		Description: args.Description,
		Date:        args.Date,
		AccountID:   args.FromAccountID,
		ToAccountID: args.ToAccountID,
	}
	before := l.milestoneStats()
	tx.ID, tx.CreatedAt = newID("t"), now()
	l.transactions = append([]Transaction{tx}, l.transactions...)
	l.applyEffects(tx, false)
	l.settle(before)
	return tx, nil
}

// TransactionPatch is a partial update; nil fields keep the original
// value. String fields patch to "" to clear a reference.
type TransactionPatch struct {
	Type        *TransactionType
	IncomeType  *IncomeType
	Amount      *decimal.Decimal
	Description *string
	Date        *Date
	AccountID   *string
	ToAccountID *string
	CategoryID  *string
	DebtID      *string
	VentureID   *string
	IsRecurring *bool
}

func (p TransactionPatch) mergeOnto(tx Transaction) Transaction {
	if p.Type != nil {
		tx.Type = *p.Type
	}
	if p.IncomeType != nil {
		tx.IncomeType = *p.IncomeType
	}
	if p.Amount != nil {
		tx.Amount = *p.Amount
	}
	if p.Description != nil {
		tx.Description = *p.Description
	}
	if p.Date != nil {
		tx.Date = *p.Date
	}
	if p.AccountID != nil {
		tx.AccountID = *p.AccountID
	}
	if p.ToAccountID != nil {
		tx.ToAccountID = *p.ToAccountID
	}
	if p.CategoryID != nil {
		tx.CategoryID = *p.CategoryID
	}
	if p.DebtID != nil {
		tx.DebtID = *p.DebtID
	}
	if p.VentureID != nil {
		tx.VentureID = *p.VentureID
	}
	if p.IsRecurring != nil {
		tx.IsRecurring = *p.IsRecurring
	}
	return tx
}

// UpdateTransaction merges the patch onto the stored transaction, fully
// reverses the original's effects (accounts, ventures and debts alike)
// and applies the updated ones. Reversal and reapplication run against
// the same live balances, so an amount-only edit nets out to the delta.
func (l *Ledger) UpdateTransaction(id string, patch TransactionPatch) (Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var orig *Transaction
	for i := range l.transactions {
		if l.transactions[i].ID == id {
			orig = &l.transactions[i]
			break
		}
	}
	if orig == nil {
		return Transaction{}, ErrNotFound
	}
	updated := patch.mergeOnto(*orig)
	if updated.Type != Income {
		updated.IncomeType = ""
	}
	if err := l.validateTransaction(&updated); err != nil {
		return Transaction{}, err
	}
	before := l.milestoneStats()
	l.applyEffects(*orig, true)
	l.applyEffects(updated, false)
	*orig = updated
	l.settle(before)
	return updated, nil
}

// DeleteTransaction removes the transaction and exactly reverses its
// effect set: account balances (both legs for a transfer), venture
// funding (floored at zero) and debt outstanding (added back).
func (l *Ledger) DeleteTransaction(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	tx, ok := l.Transaction(id)
	if !ok {
		return ErrNotFound
	}
	before := l.milestoneStats()
	l.applyEffects(tx, true)
	l.transactions = deleteByID(l.transactions, id, func(t Transaction) string { return t.ID })
	l.settle(before)
	return nil
}

// validateTransaction resolves references at the boundary and checks the
// caller-supplied preconditions. It never mutates ledger state.
func (l *Ledger) validateTransaction(tx *Transaction) error {
	switch tx.Type {
	case Income:
		if tx.IncomeType != ActiveIncome && tx.IncomeType != PassiveIncome {
			return invalid("incomeType", "income requires Activo or Pasivo")
		}
	case Expense:
		tx.IncomeType = ""
	case Transfer:
		if tx.AccountID == "" || tx.ToAccountID == "" || tx.AccountID == tx.ToAccountID {
			return invalid("account", "transfer needs two distinct accounts")
		}
		// A transfer only moves cash between accounts.
		tx.IncomeType = ""
		tx.CategoryID = ""
		tx.DebtID = ""
		tx.VentureID = ""
	default:
		return invalid("type", "unknown transaction type")
	}
	if !tx.Amount.IsPositive() {
		return invalid("amount", "must be positive")
	}
	if tx.Date.IsZero() {
		return invalid("dateStr", "missing date")
	}
	if tx.AccountID != "" {
		if _, ok := l.Account(tx.AccountID); !ok {
			return danglingRef("cuentaId", tx.AccountID)
		}
	}
	if tx.ToAccountID != "" {
		if _, ok := l.Account(tx.ToAccountID); !ok {
			return danglingRef("toCuentaId", tx.ToAccountID)
		}
	}
	if tx.CategoryID != "" {
		if _, ok := l.Category(tx.CategoryID); !ok {
			return danglingRef("categoryId", tx.CategoryID)
		}
	}
	if tx.DebtID != "" {
		if _, ok := l.Debt(tx.DebtID); !ok {
			return danglingRef("debtId", tx.DebtID)
		}
	}
	if tx.VentureID != "" {
		if _, ok := l.Venture(tx.VentureID); !ok {
			return danglingRef("ventureId", tx.VentureID)
		}
	}
	return nil
}

// fundsVenture reports whether an expense transaction accrues venture
// funding: it must be linked to a venture and be uncategorized or carry
// the designated savings category.
func (l *Ledger) fundsVenture(tx Transaction) bool {
	if tx.VentureID == "" || tx.Type != Expense {
		return false
	}
	if tx.CategoryID == "" {
		return true
	}
	c, ok := l.Category(tx.CategoryID)
	return ok && c.Name == SavingsCategoryName
}

// applyEffects applies the full financial effect set of tx, or reverses
// it when reverse is true.
//
// Reversal mirrors application exactly except for the documented floors:
// venture funding never goes below zero, and debt outstanding is clamped
// at zero on application but restored unbounded on reversal.
func (l *Ledger) applyEffects(tx Transaction, reverse bool) {
	amount := tx.Amount
	if tx.Type == Transfer {
		from, to := l.accountAt(tx.AccountID), l.accountAt(tx.ToAccountID)
		if reverse {
			from, to = to, from
		}
		if from != nil {
			from.Balance = from.Balance.Sub(amount)
		}
		if to != nil {
			to.Balance = to.Balance.Add(amount)
		}
		return
	}

	if tx.AccountID != "" {
		delta := amount
		if tx.Type == Expense {
			delta = delta.Neg()
		}
		if reverse {
			delta = delta.Neg()
		}
		if a := l.accountAt(tx.AccountID); a != nil {
			a.Balance = a.Balance.Add(delta)
		}
	}

	if tx.Type != Expense {
		return
	}

	if tx.DebtID != "" {
		if d := l.debtAt(tx.DebtID); d != nil {
			if reverse {
				d.Outstanding = d.Outstanding.Add(amount)
			} else {
				d.Outstanding = decimal.Max(decimal.Zero, d.Outstanding.Sub(amount))
			}
		}
	}

	if l.fundsVenture(tx) {
		if v := l.ventureAt(tx.VentureID); v != nil {
			if reverse {
				v.CurrentAmount = decimal.Max(decimal.Zero, v.CurrentAmount.Sub(amount))
			} else {
				v.CurrentAmount = v.CurrentAmount.Add(amount)
			}
		}
	}
}
