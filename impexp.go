package wealth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// this file implements the user-facing exchange formats. The JSON side
// is the snapshot itself; the CSV side is a flat transaction listing
// with the historical Spanish header.

// csvHeader is part of the export contract and must not change.
const csvHeader = "fecha,cuenta,tipo,tipo_ingreso,categoria,descripcion,monto"

// ExportCSV writes one row per transaction, in ledger order. Account and
// category ids are resolved to display names; transfers are included
// with an empty tipo_ingreso. The description is always double-quoted,
// with inner quotes doubled (RFC 4180).
func ExportCSV(w io.Writer, l *Ledger) error {
	if _, err := fmt.Fprintln(w, csvHeader); err != nil {
		return err
	}
	for _, t := range l.Transactions() {
		account := ""
		if a, ok := l.Account(t.AccountID); ok {
			account = a.Name
		}
		category := ""
		if c, ok := l.Category(t.CategoryID); ok {
			category = c.Name
		}
		description := `"` + strings.ReplaceAll(t.Description, `"`, `""`) + `"`
		row := strings.Join([]string{
			t.Date.String(),
			account,
			string(t.Type),
			string(t.IncomeType),
			category,
			description,
			t.Amount.String(),
		}, ",")
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}

// ExportJSON writes the full snapshot, pretty-printed.
func ExportJSON(w io.Writer, l *Ledger) error {
	return EncodeSnapshot(w, l)
}

// ImportJSON reads a snapshot file and returns the ledger it describes.
// The payload is accepted when the transactions, assets and cuentas keys
// are present; on success the caller replaces its snapshot wholesale
// with the returned ledger. A malformed payload leaves the caller's
// state untouched.
func ImportJSON(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read import: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON file: %w", err)
	}
	for _, path := range []string{"$.transactions", "$.assets", "$.cuentas"} {
		if _, err := jsonpath.Get(path, doc); err != nil {
			return nil, fmt.Errorf("invalid snapshot file: missing %s", strings.TrimPrefix(path, "$."))
		}
	}
	return DecodeSnapshot(bytes.NewReader(data))
}
