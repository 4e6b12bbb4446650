// Package wealth provides the ledger state-update engine behind a
// personal wealth tracker. It keeps accounts, debts, investment assets,
// savings ventures and recurring obligations mutually consistent as
// transactions are created, edited or deleted, and derives the read-only
// views computed from that ledger.
//
// The core functionalities include:
//   - Ledger Store: a single authoritative snapshot of all entity
//     collections, mutated only through operations that apply and, on
//     edit or delete, exactly reverse each transaction's balance, debt
//     and venture effects.
//   - Recurring Generation: idempotent monthly materialization of
//     recurring obligations into expense transactions.
//   - Analytics: pure derivation of the dashboard aggregates (net worth,
//     cash flow, freedom ratio, trailing series, asset composition).
//   - Simulators: debt-paydown amortization and flat-rate 12-month
//     cash-flow projection.
//   - Data Persistence: encoding and decoding of the snapshot through an
//     injectable key-value store, plus the CSV/JSON exchange formats.
//
// This package serves as the foundational logic for the `wcmd`
// command-line tool; the AI boundaries live in the agent subpackage.
package wealth
