package wealth

import (
	"fmt"
	"slices"
	"sync"

	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
)

// Ledger is the single authoritative snapshot of all entity collections.
// All mutation goes through its methods; each operation is applied fully
// or not at all, refreshes meta.updatedAt on success and runs the
// milestone check against the pre-mutation state.
//
// The mutex serializes mutations only, so the reversal pairing of edits
// and deletes is never interleaved. Readers take no lock: derive views
// from a ledger that no other goroutine is mutating.
type Ledger struct {
	mu sync.Mutex

	transactions []Transaction
	accounts     []Account
	assets       []InvestmentAsset
	equityAssets []EquityAsset
	debts        []Debt
	categories   []Category
	ventures     []Venture
	recurring    []RecurringExpense
	meta         Meta

	notify Notifier
	views  *cache.Cache // memoized dashboards, flushed on every mutation
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	ts := now()
	return &Ledger{
		meta:  Meta{CreatedAt: ts, UpdatedAt: ts},
		views: cache.New(cache.NoExpiration, 0),
	}
}

// SetNotifier installs the observer that receives milestone events.
// Passing nil silences them.
func (l *Ledger) SetNotifier(n Notifier) { l.notify = n }

// Meta returns the snapshot bookkeeping timestamps.
func (l *Ledger) Meta() Meta { return l.meta }

// settle finishes a successful mutation: refreshes meta.updatedAt,
// drops memoized views and emits milestones crossed since the before
// stats.
func (l *Ledger) settle(before milestoneStats) {
	l.meta.UpdatedAt = now()
	l.views.Flush()
	if l.notify == nil {
		return
	}
	for _, m := range crossedMilestones(before, l.milestoneStats()) {
		l.notify(m)
	}
}

// --- collection accessors (copies, insertion order) ---

func (l *Ledger) Transactions() []Transaction       { return slices.Clone(l.transactions) }
func (l *Ledger) Accounts() []Account               { return slices.Clone(l.accounts) }
func (l *Ledger) Assets() []InvestmentAsset         { return slices.Clone(l.assets) }
func (l *Ledger) EquityAssets() []EquityAsset       { return slices.Clone(l.equityAssets) }
func (l *Ledger) Debts() []Debt                     { return slices.Clone(l.debts) }
func (l *Ledger) Categories() []Category            { return slices.Clone(l.categories) }
func (l *Ledger) Ventures() []Venture               { return slices.Clone(l.ventures) }
func (l *Ledger) RecurringExpenses() []RecurringExpense {
	return slices.Clone(l.recurring)
}

// --- by-id lookups ---

func (l *Ledger) Transaction(id string) (Transaction, bool) {
	return findByID(l.transactions, id, func(t Transaction) string { return t.ID })
}
func (l *Ledger) Account(id string) (Account, bool) {
	return findByID(l.accounts, id, func(a Account) string { return a.ID })
}
func (l *Ledger) Asset(id string) (InvestmentAsset, bool) {
	return findByID(l.assets, id, func(a InvestmentAsset) string { return a.ID })
}
func (l *Ledger) EquityAsset(id string) (EquityAsset, bool) {
	return findByID(l.equityAssets, id, func(a EquityAsset) string { return a.ID })
}
func (l *Ledger) Debt(id string) (Debt, bool) {
	return findByID(l.debts, id, func(d Debt) string { return d.ID })
}
func (l *Ledger) Category(id string) (Category, bool) {
	return findByID(l.categories, id, func(c Category) string { return c.ID })
}
func (l *Ledger) Venture(id string) (Venture, bool) {
	return findByID(l.ventures, id, func(v Venture) string { return v.ID })
}
func (l *Ledger) RecurringExpense(id string) (RecurringExpense, bool) {
	return findByID(l.recurring, id, func(r RecurringExpense) string { return r.ID })
}

// CategoryByName returns the category with the given display name.
func (l *Ledger) CategoryByName(name string) (Category, bool) {
	for _, c := range l.categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

func findByID[T any](items []T, id string, key func(T) string) (T, bool) {
	for _, item := range items {
		if key(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// --- mutation pointers (internal, valid until the slice changes) ---

func (l *Ledger) accountAt(id string) *Account {
	for i := range l.accounts {
		if l.accounts[i].ID == id {
			return &l.accounts[i]
		}
	}
	return nil
}

func (l *Ledger) debtAt(id string) *Debt {
	for i := range l.debts {
		if l.debts[i].ID == id {
			return &l.debts[i]
		}
	}
	return nil
}

func (l *Ledger) ventureAt(id string) *Venture {
	for i := range l.ventures {
		if l.ventures[i].ID == id {
			return &l.ventures[i]
		}
	}
	return nil
}

// --- two-phase delete contract ---

// CheckDeletable reports whether the entity can be deleted right now.
// It returns nil when allowed, ErrNotFound when the id is unknown, and an
// ErrInUse-wrapping error when another entity still references the target.
// It never mutates state, so a confirmation flow can call it first and
// commit with the matching Delete operation later.
func (l *Ledger) CheckDeletable(kind Kind, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.checkDeletable(kind, id)
}

func (l *Ledger) checkDeletable(kind Kind, id string) error {
	switch kind {
	case KindTransaction:
		if _, ok := l.Transaction(id); !ok {
			return ErrNotFound
		}
		return nil // deleting a transaction reverses its effects instead
	case KindAccount:
		if _, ok := l.Account(id); !ok {
			return ErrNotFound
		}
		for _, t := range l.transactions {
			if t.AccountID == id || t.ToAccountID == id {
				return inUse(kind, "transaction "+t.ID)
			}
		}
		for _, r := range l.recurring {
			if r.AccountID == id {
				return inUse(kind, "recurring expense "+r.ID)
			}
		}
		return nil
	case KindCategory:
		if _, ok := l.Category(id); !ok {
			return ErrNotFound
		}
		for _, t := range l.transactions {
			if t.CategoryID == id {
				return inUse(kind, "transaction "+t.ID)
			}
		}
		for _, r := range l.recurring {
			if r.CategoryID == id {
				return inUse(kind, "recurring expense "+r.ID)
			}
		}
		return nil
	case KindVenture:
		if _, ok := l.Venture(id); !ok {
			return ErrNotFound
		}
		for _, t := range l.transactions {
			if t.VentureID == id {
				return inUse(kind, "transaction "+t.ID)
			}
		}
		return nil
	case KindDebt:
		if _, ok := l.Debt(id); !ok {
			return ErrNotFound
		}
		for _, t := range l.transactions {
			if t.DebtID == id {
				return inUse(kind, "transaction "+t.ID)
			}
		}
		return nil
	case KindEquityAsset:
		if _, ok := l.EquityAsset(id); !ok {
			return ErrNotFound
		}
		for _, d := range l.debts {
			if d.EquityAssetID == id {
				return inUse(kind, "debt "+d.ID)
			}
		}
		return nil
	case KindInvestmentAsset:
		if _, ok := l.Asset(id); !ok {
			return ErrNotFound
		}
		return nil
	case KindRecurringExpense:
		if _, ok := l.RecurringExpense(id); !ok {
			return ErrNotFound
		}
		return nil
	default:
		return fmt.Errorf("unknown entity kind: %q", kind)
	}
}

// --- account ---

// AddAccount assigns an id and creation timestamp and stores the account.
func (l *Ledger) AddAccount(a Account) (Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if a.Name == "" {
		return Account{}, invalid("name", "must not be empty")
	}
	before := l.milestoneStats()
	a.ID, a.CreatedAt = newID("cta"), now()
	l.accounts = append([]Account{a}, l.accounts...)
	l.settle(before)
	return a, nil
}

// UpdateAccount applies the patch function to the stored account.
// Identity fields survive the patch.
func (l *Ledger) UpdateAccount(id string, patch func(*Account)) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	a := l.accountAt(id)
	if a == nil {
		return ErrNotFound
	}
	before := l.milestoneStats()
	keepID, keepCreated := a.ID, a.CreatedAt
	patch(a)
	a.ID, a.CreatedAt = keepID, keepCreated
	l.settle(before)
	return nil
}

// DeleteAccount removes the account after re-running the usage check.
func (l *Ledger) DeleteAccount(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.checkDeletable(KindAccount, id); err != nil {
		return err
	}
	before := l.milestoneStats()
	l.accounts = deleteByID(l.accounts, id, func(a Account) string { return a.ID })
	l.settle(before)
	return nil
}

// --- investment asset ---

func (l *Ledger) AddAsset(a InvestmentAsset) (InvestmentAsset, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if a.Name == "" {
		return InvestmentAsset{}, invalid("name", "must not be empty")
	}
	before := l.milestoneStats()
	a.ID, a.CreatedAt = newID("a"), now()
	l.assets = append([]InvestmentAsset{a}, l.assets...)
	l.settle(before)
	return a, nil
}

func (l *Ledger) UpdateAsset(id string, patch func(*InvestmentAsset)) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.assets {
		if l.assets[i].ID == id {
			before := l.milestoneStats()
			a := &l.assets[i]
			keepID, keepCreated := a.ID, a.CreatedAt
			patch(a)
			a.ID, a.CreatedAt = keepID, keepCreated
			l.settle(before)
			return nil
		}
	}
	return ErrNotFound
}

func (l *Ledger) DeleteAsset(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.checkDeletable(KindInvestmentAsset, id); err != nil {
		return err
	}
	before := l.milestoneStats()
	l.assets = deleteByID(l.assets, id, func(a InvestmentAsset) string { return a.ID })
	l.settle(before)
	return nil
}

// --- equity asset ---

func (l *Ledger) AddEquityAsset(a EquityAsset) (EquityAsset, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if a.Name == "" {
		return EquityAsset{}, invalid("name", "must not be empty")
	}
	before := l.milestoneStats()
	a.ID, a.CreatedAt = newID("ea"), now()
	l.equityAssets = append([]EquityAsset{a}, l.equityAssets...)
	l.settle(before)
	return a, nil
}

func (l *Ledger) UpdateEquityAsset(id string, patch func(*EquityAsset)) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.equityAssets {
		if l.equityAssets[i].ID == id {
			before := l.milestoneStats()
			a := &l.equityAssets[i]
			keepID, keepCreated := a.ID, a.CreatedAt
			patch(a)
			a.ID, a.CreatedAt = keepID, keepCreated
			l.settle(before)
			return nil
		}
	}
	return ErrNotFound
}

func (l *Ledger) DeleteEquityAsset(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.checkDeletable(KindEquityAsset, id); err != nil {
		return err
	}
	before := l.milestoneStats()
	l.equityAssets = deleteByID(l.equityAssets, id, func(a EquityAsset) string { return a.ID })
	l.settle(before)
	return nil
}

// --- debt ---

func (l *Ledger) AddDebt(d Debt) (Debt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if d.Name == "" {
		return Debt{}, invalid("name", "must not be empty")
	}
	if d.EquityAssetID != "" {
		if _, ok := l.EquityAsset(d.EquityAssetID); !ok {
			return Debt{}, danglingRef("equityAssetId", d.EquityAssetID)
		}
	}
	before := l.milestoneStats()
	d.ID, d.CreatedAt = newID("d"), now()
	l.debts = append([]Debt{d}, l.debts...)
	l.settle(before)
	return d, nil
}

func (l *Ledger) UpdateDebt(id string, patch func(*Debt)) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	d := l.debtAt(id)
	if d == nil {
		return ErrNotFound
	}
	before := l.milestoneStats()
	patched := *d
	patch(&patched)
	patched.ID, patched.CreatedAt = d.ID, d.CreatedAt
	if patched.EquityAssetID != "" {
		if _, ok := l.EquityAsset(patched.EquityAssetID); !ok {
			return danglingRef("equityAssetId", patched.EquityAssetID)
		}
	}
	*d = patched
	l.settle(before)
	return nil
}

func (l *Ledger) DeleteDebt(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.checkDeletable(KindDebt, id); err != nil {
		return err
	}
	before := l.milestoneStats()
	l.debts = deleteByID(l.debts, id, func(d Debt) string { return d.ID })
	l.settle(before)
	return nil
}

// --- category ---

func (l *Ledger) AddCategory(c Category) (Category, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if c.Name == "" {
		return Category{}, invalid("name", "must not be empty")
	}
	before := l.milestoneStats()
	c.ID, c.CreatedAt = newID("c"), now()
	l.categories = append([]Category{c}, l.categories...)
	l.settle(before)
	return c, nil
}

func (l *Ledger) UpdateCategory(id string, patch func(*Category)) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.categories {
		if l.categories[i].ID == id {
			before := l.milestoneStats()
			c := &l.categories[i]
			keepID, keepCreated := c.ID, c.CreatedAt
			patch(c)
			c.ID, c.CreatedAt = keepID, keepCreated
			l.settle(before)
			return nil
		}
	}
	return ErrNotFound
}

func (l *Ledger) DeleteCategory(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.checkDeletable(KindCategory, id); err != nil {
		return err
	}
	before := l.milestoneStats()
	l.categories = deleteByID(l.categories, id, func(c Category) string { return c.ID })
	l.settle(before)
	return nil
}

// --- venture ---

// AddVenture stores the venture. Funding always starts at zero; the
// current amount only accrues from linked transactions.
func (l *Ledger) AddVenture(v Venture) (Venture, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if v.Name == "" {
		return Venture{}, invalid("name", "must not be empty")
	}
	before := l.milestoneStats()
	v.ID, v.CreatedAt = newID("v"), now()
	v.CurrentAmount = decimal.Zero
	l.ventures = append([]Venture{v}, l.ventures...)
	l.settle(before)
	return v, nil
}

func (l *Ledger) UpdateVenture(id string, patch func(*Venture)) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	v := l.ventureAt(id)
	if v == nil {
		return ErrNotFound
	}
	before := l.milestoneStats()
	keepID, keepCreated := v.ID, v.CreatedAt
	patch(v)
	v.ID, v.CreatedAt = keepID, keepCreated
	l.settle(before)
	return nil
}

func (l *Ledger) DeleteVenture(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.checkDeletable(KindVenture, id); err != nil {
		return err
	}
	before := l.milestoneStats()
	l.ventures = deleteByID(l.ventures, id, func(v Venture) string { return v.ID })
	l.settle(before)
	return nil
}

// --- recurring expense ---

func (l *Ledger) AddRecurringExpense(r RecurringExpense) (RecurringExpense, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if r.Name == "" {
		return RecurringExpense{}, invalid("name", "must not be empty")
	}
	if !r.Amount.IsPositive() {
		return RecurringExpense{}, invalid("amount", "must be positive")
	}
	if r.AccountID != "" {
		if _, ok := l.Account(r.AccountID); !ok {
			return RecurringExpense{}, danglingRef("cuentaId", r.AccountID)
		}
	}
	if r.CategoryID != "" {
		if _, ok := l.Category(r.CategoryID); !ok {
			return RecurringExpense{}, danglingRef("categoryId", r.CategoryID)
		}
	}
	before := l.milestoneStats()
	r.ID, r.CreatedAt = newID("re"), now()
	l.recurring = append([]RecurringExpense{r}, l.recurring...)
	l.settle(before)
	return r, nil
}

func (l *Ledger) UpdateRecurringExpense(id string, patch func(*RecurringExpense)) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.recurring {
		if l.recurring[i].ID == id {
			before := l.milestoneStats()
			r := &l.recurring[i]
			keepID, keepCreated := r.ID, r.CreatedAt
			patch(r)
			r.ID, r.CreatedAt = keepID, keepCreated
			l.settle(before)
			return nil
		}
	}
	return ErrNotFound
}

func (l *Ledger) DeleteRecurringExpense(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.checkDeletable(KindRecurringExpense, id); err != nil {
		return err
	}
	before := l.milestoneStats()
	l.recurring = deleteByID(l.recurring, id, func(r RecurringExpense) string { return r.ID })
	l.settle(before)
	return nil
}

func deleteByID[T any](items []T, id string, key func(T) string) []T {
	return slices.DeleteFunc(items, func(item T) bool { return key(item) == id })
}

// --- aggregate sums shared by analytics and milestones ---

func (l *Ledger) totalCash() decimal.Decimal {
	total := decimal.Zero
	for _, a := range l.accounts {
		total = total.Add(a.Balance)
	}
	return total
}

func (l *Ledger) totalInvestments() decimal.Decimal {
	total := decimal.Zero
	for _, a := range l.assets {
		total = total.Add(a.Balance)
	}
	return total
}

func (l *Ledger) totalEquity() decimal.Decimal {
	total := decimal.Zero
	for _, a := range l.equityAssets {
		total = total.Add(a.Value)
	}
	return total
}

func (l *Ledger) totalLiabilities() decimal.Decimal {
	total := decimal.Zero
	for _, d := range l.debts {
		total = total.Add(d.Outstanding)
	}
	return total
}

func (l *Ledger) totalPassiveIncome() decimal.Decimal {
	total := decimal.Zero
	for _, a := range l.assets {
		total = total.Add(a.PassiveIncome)
	}
	return total
}

// netWorth is cash + investments + equity − liabilities.
func (l *Ledger) netWorth() decimal.Decimal {
	return l.totalCash().Add(l.totalInvestments()).Add(l.totalEquity()).Sub(l.totalLiabilities())
}
