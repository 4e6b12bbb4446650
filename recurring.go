package wealth

// GenerateRecurring materializes the recurring obligations for the
// calendar month of on. For each recurring expense it scans the existing
// transactions for a generated row with the same description in the same
// month and year; only missing ones are synthesized, so calling it twice
// in a month creates nothing on the second call.
//
// All generated transactions are applied in one batch mutation. The
// returned count may be zero, which is a valid outcome.
func (l *Ledger) GenerateRecurring(on Date) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if on.IsZero() {
		on = Today()
	}

	var generated []Transaction
	for _, r := range l.recurring {
		if l.hasGenerated(r.Name, on) {
			continue
		}
		generated = append(generated, Transaction{
			ID:          newID("t"),
			Type:        Expense,
			Amount:      r.Amount,
			Description: r.Name,
			Date:        on,
			AccountID:   r.AccountID,
			CategoryID:  r.CategoryID,
			IsRecurring: true,
			CreatedAt:   now(),
		})
	}
	if len(generated) == 0 {
		return 0
	}

	before := l.milestoneStats()
	l.transactions = append(generated, l.transactions...)
	for _, tx := range generated {
		l.applyEffects(tx, false)
	}
	l.settle(before)
	return len(generated)
}

// hasGenerated reports whether a generated transaction for the named
// obligation already exists in the month of on.
func (l *Ledger) hasGenerated(name string, on Date) bool {
	for _, t := range l.transactions {
		if t.IsRecurring && t.Description == name && t.Date.SameMonth(on) {
			return true
		}
	}
	return false
}
