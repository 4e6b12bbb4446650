package wealth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
)

// SnapshotKey is the key under which the single ledger snapshot lives in
// a Store. It is kept from the original storage schema so existing
// snapshots keep loading.
const SnapshotKey = "jo_wealth_command_v3"

// Store is the persistence boundary: a key-value store capable of
// holding one JSON-serialized snapshot. Adapters are provided by the
// caller (the CLI uses a plain file per key).
type Store interface {
	// Get returns the stored payload and whether the key exists.
	Get(key string) ([]byte, bool, error)
	// Set stores the payload under the key.
	Set(key string, data []byte) error
}

// snapshotJSON is the wire schema of the snapshot: the seven entity
// collections plus meta. Collection key names are part of the historical
// format and must not change.
type snapshotJSON struct {
	Transactions []Transaction      `json:"transactions"`
	Accounts     []Account          `json:"cuentas"`
	Assets       []InvestmentAsset  `json:"assets"`
	EquityAssets []EquityAsset      `json:"equityAssets"`
	Debts        []Debt             `json:"debts"`
	Categories   []Category         `json:"categories"`
	Ventures     []Venture          `json:"ventures"`
	Recurring    []RecurringExpense `json:"recurringExpenses"`
	Meta         Meta               `json:"meta"`
}

// EncodeSnapshot writes the full snapshot as pretty-printed JSON.
func EncodeSnapshot(w io.Writer, l *Ledger) error {
	s := snapshotJSON{
		Transactions: l.transactions,
		Accounts:     l.accounts,
		Assets:       l.assets,
		EquityAssets: l.equityAssets,
		Debts:        l.debts,
		Categories:   l.categories,
		Ventures:     l.ventures,
		Recurring:    l.recurring,
		Meta:         l.meta,
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode snapshot: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// DecodeSnapshot reads a snapshot and rebuilds the ledger. Collections
// missing from the payload default to empty, so snapshots written by
// older schema versions keep loading (defensive merge).
func DecodeSnapshot(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read snapshot: %w", err)
	}
	var s snapshotJSON
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("cannot decode snapshot: %w", err)
	}
	l := &Ledger{
		transactions: orEmpty(s.Transactions),
		accounts:     orEmpty(s.Accounts),
		assets:       orEmpty(s.Assets),
		equityAssets: orEmpty(s.EquityAssets),
		debts:        orEmpty(s.Debts),
		categories:   orEmpty(s.Categories),
		ventures:     orEmpty(s.Ventures),
		recurring:    orEmpty(s.Recurring),
		meta:         s.Meta,
		views:        cache.New(cache.NoExpiration, 0),
	}
	if l.meta.CreatedAt == "" {
		l.meta.CreatedAt = now()
	}
	if l.meta.UpdatedAt == "" {
		l.meta.UpdatedAt = l.meta.CreatedAt
	}
	return l, nil
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// Load reads the snapshot from the store, or seeds a fresh ledger when
// none is stored yet.
func Load(s Store) (*Ledger, error) {
	data, ok, err := s.Get(SnapshotKey)
	if err != nil {
		return nil, fmt.Errorf("cannot load snapshot: %w", err)
	}
	if !ok {
		return Seed(), nil
	}
	return DecodeSnapshot(bytes.NewReader(data))
}

// Save writes the ledger snapshot to the store.
func Save(s Store, l *Ledger) error {
	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, l); err != nil {
		return err
	}
	if err := s.Set(SnapshotKey, buf.Bytes()); err != nil {
		return fmt.Errorf("cannot save snapshot: %w", err)
	}
	return nil
}

// Seed returns the starter ledger of a first run: the default category
// set (including the designated savings category) and a main account.
func Seed() *Ledger {
	l := NewLedger()
	ts := now()
	for _, name := range []string{"Sueldo", "Vivienda", "Alimentación", "Ingresos Pasivos", SavingsCategoryName} {
		l.categories = append(l.categories, Category{
			ID:        newID("c"),
			Name:      name,
			CreatedAt: ts,
		})
	}
	l.accounts = append(l.accounts, Account{
		ID:        newID("cta"),
		Name:      "Cuenta Principal",
		Type:      "Cuenta Bancaria",
		Balance:   decimal.Zero,
		Currency:  "PEN",
		CreatedAt: ts,
	})
	return l
}
