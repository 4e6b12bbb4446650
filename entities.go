package wealth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionType is a typed string identifying the kind of a transaction.
// Wire values are Spanish for compatibility with existing exports.
type TransactionType string

const (
	Income   TransactionType = "Ingreso"
	Expense  TransactionType = "Egreso"
	Transfer TransactionType = "Transferencia"
)

// ParseTransactionType parses a wire value into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch t := TransactionType(s); t {
	case Income, Expense, Transfer:
		return t, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// IncomeType distinguishes earned income from income produced by assets.
type IncomeType string

const (
	ActiveIncome  IncomeType = "Activo"
	PassiveIncome IncomeType = "Pasivo"
)

// ParseIncomeType parses a wire value into an IncomeType.
func ParseIncomeType(s string) (IncomeType, error) {
	switch t := IncomeType(s); t {
	case ActiveIncome, PassiveIncome:
		return t, nil
	default:
		return "", fmt.Errorf("unknown income type: %q", s)
	}
}

// EquityAssetType classifies non-liquid valuation-only assets.
type EquityAssetType string

const (
	RealEstate  EquityAssetType = "Bienes Raíces"
	Vehicle     EquityAssetType = "Vehículo"
	OtherEquity EquityAssetType = "Otro"
)

// ParseEquityAssetType parses a wire value into an EquityAssetType.
func ParseEquityAssetType(s string) (EquityAssetType, error) {
	switch t := EquityAssetType(s); t {
	case RealEstate, Vehicle, OtherEquity:
		return t, nil
	default:
		return "", fmt.Errorf("unknown equity asset type: %q", s)
	}
}

// Transaction is the central mutation record of the ledger. Its date is
// user-editable and independent of CreatedAt.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	IncomeType  IncomeType      `json:"incomeType,omitempty"` // Income only
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        Date            `json:"dateStr"`
	AccountID   string          `json:"cuentaId,omitempty"`   // source (or only) account
	ToAccountID string          `json:"toCuentaId,omitempty"` // destination, transfers only
	CategoryID  string          `json:"categoryId,omitempty"`
	DebtID      string          `json:"debtId,omitempty"`
	VentureID   string          `json:"ventureId,omitempty"`
	IsRecurring bool            `json:"isRecurring,omitempty"`
	CreatedAt   string          `json:"createdAt"`
}

// Account is a store of liquid funds. Its balance is a running total
// maintained by the ledger, never edited except by direct user correction.
type Account struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"`
	CreatedAt string          `json:"createdAt"`
}

// InvestmentAsset is a held asset with a monthly passive-income yield.
// Its balance is not automatically affected by transactions.
type InvestmentAsset struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Balance       decimal.Decimal `json:"balance"`
	PassiveIncome decimal.Decimal `json:"passiveIncome"`
	Currency      string          `json:"currency"`
	CreatedAt     string          `json:"createdAt"`
}

// EquityAsset is a non-liquid valuation-only asset, optionally linked to a
// Debt through Debt.EquityAssetID.
type EquityAsset struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      EquityAssetType `json:"type"`
	Value     decimal.Decimal `json:"value"`
	CreatedAt string          `json:"createdAt"`
}

// Debt is a liability whose outstanding decreases when expense
// transactions reference it.
type Debt struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Outstanding    decimal.Decimal `json:"outstanding"`
	MonthlyPayment decimal.Decimal `json:"monthlyPayment"`
	Interest       decimal.Decimal `json:"interest"` // annual rate, percent
	EquityAssetID  string          `json:"equityAssetId,omitempty"`
	CreatedAt      string          `json:"createdAt"`
}

// Category is a classification tag with an optional monthly spending
// ceiling (zero means unlimited).
type Category struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	LimitMonthly decimal.Decimal `json:"limitMonthly"`
	CreatedAt    string          `json:"createdAt"`
}

// SavingsCategoryName designates the category whose expense transactions
// fund ventures. Venture accrual also applies to uncategorized expenses.
const SavingsCategoryName = "Ahorro/Inversión"

// Venture is a funding goal. CurrentAmount accumulates from linked
// savings-category expense transactions.
type Venture struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      string          `json:"deadline,omitempty"`
	CreatedAt     string          `json:"createdAt"`
}

// RecurringExpense is a template for the monthly obligation generator.
type RecurringExpense struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	CategoryID string          `json:"categoryId,omitempty"`
	AccountID  string          `json:"cuentaId,omitempty"`
	CreatedAt  string          `json:"createdAt"`
}

// Meta carries the snapshot bookkeeping timestamps.
type Meta struct {
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Kind names an entity collection of the ledger. It is the handle used by
// the two-phase delete contract.
type Kind string

const (
	KindTransaction      Kind = "transaction"
	KindAccount          Kind = "account"
	KindInvestmentAsset  Kind = "asset"
	KindEquityAsset      Kind = "equity"
	KindDebt             Kind = "debt"
	KindCategory         Kind = "category"
	KindVenture          Kind = "venture"
	KindRecurringExpense Kind = "recurring"
)

// ParseKind parses a collection name into a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindTransaction, KindAccount, KindInvestmentAsset, KindEquityAsset,
		KindDebt, KindCategory, KindVenture, KindRecurringExpense:
		return k, nil
	default:
		return "", fmt.Errorf("unknown entity kind: %q", s)
	}
}

// newID returns a fresh collision-safe entity id carrying the historical
// per-kind prefix.
func newID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

// now returns the creation timestamp format used by all entities.
func now() string { return time.Now().Format(DatetimeFormat) }
