package wealth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTransaction_BalanceEffects(t *testing.T) {
	l, refs := newTestLedger(t)

	_, err := l.AddTransaction(Transaction{
		Type:        Income,
		IncomeType:  ActiveIncome,
		Amount:      dec("5000"),
		Description: "Sueldo",
		Date:        MustParseDate("01/07/2024"),
		AccountID:   refs.main,
	})
	require.NoError(t, err)
	assert.Equal(t, "6000", balance(t, l, refs.main))

	_, err = l.AddTransaction(Transaction{
		Type:        Expense,
		Amount:      dec("800"),
		Description: "Supermercado",
		Date:        MustParseDate("05/07/2024"),
		AccountID:   refs.main,
		CategoryID:  refs.food,
	})
	require.NoError(t, err)
	assert.Equal(t, "5200", balance(t, l, refs.main))
}

func TestAddTransaction_NoAccountSkipsBalanceEffects(t *testing.T) {
	l, refs := newTestLedger(t)

	_, err := l.AddTransaction(Transaction{
		Type:       Income,
		IncomeType: ActiveIncome,
		Amount:     dec("100"),
		Date:       MustParseDate("01/07/2024"),
	})
	require.NoError(t, err)
	assert.Equal(t, "1000", balance(t, l, refs.main))
	assert.Equal(t, "200", balance(t, l, refs.pocket))
}

func TestAddTransaction_Validation(t *testing.T) {
	l, refs := newTestLedger(t)

	_, err := l.AddTransaction(Transaction{Type: Income, IncomeType: ActiveIncome, Amount: dec("-5"), AccountID: refs.main})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = l.AddTransaction(Transaction{Type: Income, Amount: dec("5"), AccountID: refs.main})
	require.ErrorAs(t, err, &verr, "income without income type")

	_, err = l.AddTransaction(Transaction{Type: Expense, Amount: dec("5"), AccountID: "cta_missing"})
	require.ErrorAs(t, err, &verr, "dangling account reference")

	_, err = l.AddTransaction(Transaction{Type: Transfer, Amount: dec("5"), AccountID: refs.main, ToAccountID: refs.pocket})
	require.Error(t, err, "transfers go through AddTransfer")

	// Nothing above may have touched state.
	assert.Equal(t, "1000", balance(t, l, refs.main))
	assert.Empty(t, l.Transactions())
}

func TestAddTransaction_DebtReduction(t *testing.T) {
	l, refs := newTestLedger(t)

	_, err := l.AddTransaction(Transaction{
		Type:      Expense,
		Amount:    dec("1200"),
		Date:      MustParseDate("15/07/2024"),
		AccountID: refs.main,
		DebtID:    refs.debt,
	})
	require.NoError(t, err)

	d, _ := l.Debt(refs.debt)
	assert.Equal(t, "13800", d.Outstanding.String())
}

func TestAddTransaction_DebtFlooredAtZero(t *testing.T) {
	l, refs := newTestLedger(t)

	_, err := l.AddTransaction(Transaction{
		Type:   Expense,
		Amount: dec("20000"),
		Date:   MustParseDate("15/07/2024"),
		DebtID: refs.debt,
	})
	require.NoError(t, err)

	d, _ := l.Debt(refs.debt)
	assert.Equal(t, "0", d.Outstanding.String(), "a payment cannot push outstanding below zero")
}

func TestAddTransaction_VentureFundingPolicy(t *testing.T) {
	l, refs := newTestLedger(t)

	fund := func(categoryID string) {
		t.Helper()
		_, err := l.AddTransaction(Transaction{
			Type:       Expense,
			Amount:     dec("500"),
			Date:       MustParseDate("18/07/2024"),
			AccountID:  refs.main,
			CategoryID: categoryID,
			VentureID:  refs.venture,
		})
		require.NoError(t, err)
	}

	// Savings category accrues.
	fund(refs.savings)
	v, _ := l.Venture(refs.venture)
	assert.Equal(t, "500", v.CurrentAmount.String())

	// Uncategorized accrues.
	fund("")
	v, _ = l.Venture(refs.venture)
	assert.Equal(t, "1000", v.CurrentAmount.String())

	// Any other category does not, even when linked to the venture.
	fund(refs.food)
	v, _ = l.Venture(refs.venture)
	assert.Equal(t, "1000", v.CurrentAmount.String())
}

func TestDeleteTransaction_RoundTrip(t *testing.T) {
	l, refs := newTestLedger(t)

	tx, err := l.AddTransaction(Transaction{
		Type:       Expense,
		Amount:     dec("500"),
		Date:       MustParseDate("18/07/2024"),
		AccountID:  refs.main,
		CategoryID: refs.savings,
		DebtID:     refs.debt,
		VentureID:  refs.venture,
	})
	require.NoError(t, err)

	require.NoError(t, l.DeleteTransaction(tx.ID))

	// Every linked value is exactly back to its pre-add state.
	assert.Equal(t, "1000", balance(t, l, refs.main))
	d, _ := l.Debt(refs.debt)
	assert.Equal(t, "15000", d.Outstanding.String())
	v, _ := l.Venture(refs.venture)
	assert.Equal(t, "0", v.CurrentAmount.String())
	assert.Empty(t, l.Transactions())
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	l, _ := newTestLedger(t)
	assert.ErrorIs(t, l.DeleteTransaction("t_missing"), ErrNotFound)
}

func TestTransfer_Conservation(t *testing.T) {
	l, refs := newTestLedger(t)

	tx, err := l.AddTransfer(TransferArgs{
		Amount:        dec("300"),
		FromAccountID: refs.main,
		ToAccountID:   refs.pocket,
		Date:          MustParseDate("10/07/2024"),
		Description:   "Retiro",
	})
	require.NoError(t, err)
	assert.Equal(t, "700", balance(t, l, refs.main))
	assert.Equal(t, "500", balance(t, l, refs.pocket))
	assert.Empty(t, tx.CategoryID, "transfers carry no category")

	require.NoError(t, l.DeleteTransaction(tx.ID))
	assert.Equal(t, "1000", balance(t, l, refs.main))
	assert.Equal(t, "200", balance(t, l, refs.pocket))
}

func TestTransfer_Validation(t *testing.T) {
	l, refs := newTestLedger(t)

	cases := []struct {
		name string
		args TransferArgs
	}{
		{"non-positive amount", TransferArgs{Amount: dec("0"), FromAccountID: refs.main, ToAccountID: refs.pocket}},
		{"missing source", TransferArgs{Amount: dec("10"), ToAccountID: refs.pocket}},
		{"same account", TransferArgs{Amount: dec("10"), FromAccountID: refs.main, ToAccountID: refs.main}},
		{"dangling destination", TransferArgs{Amount: dec("10"), FromAccountID: refs.main, ToAccountID: "cta_missing"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := l.AddTransfer(tc.args)
			require.Error(t, err)
			assert.Equal(t, "1000", balance(t, l, refs.main))
			assert.Equal(t, "200", balance(t, l, refs.pocket))
		})
	}
}

func TestUpdateTransaction_AmountEditNetsToDelta(t *testing.T) {
	l, refs := newTestLedger(t)

	tx, err := l.AddTransaction(Transaction{
		Type:      Expense,
		Amount:    dec("200"),
		Date:      MustParseDate("05/07/2024"),
		AccountID: refs.main,
	})
	require.NoError(t, err)
	assert.Equal(t, "800", balance(t, l, refs.main))

	_, err = l.UpdateTransaction(tx.ID, TransactionPatch{Amount: ptr(dec("50"))})
	require.NoError(t, err)
	assert.Equal(t, "950", balance(t, l, refs.main), "1000 − 50, not 1000 − 200 − 50")
}

func TestUpdateTransaction_MoveAccount(t *testing.T) {
	l, refs := newTestLedger(t)

	tx, err := l.AddTransaction(Transaction{
		Type:      Expense,
		Amount:    dec("100"),
		Date:      MustParseDate("05/07/2024"),
		AccountID: refs.main,
	})
	require.NoError(t, err)

	_, err = l.UpdateTransaction(tx.ID, TransactionPatch{AccountID: ptr(refs.pocket)})
	require.NoError(t, err)
	assert.Equal(t, "1000", balance(t, l, refs.main))
	assert.Equal(t, "100", balance(t, l, refs.pocket))
}

func TestUpdateTransaction_ReversesDebtEffects(t *testing.T) {
	l, refs := newTestLedger(t)

	tx, err := l.AddTransaction(Transaction{
		Type:      Expense,
		Amount:    dec("1200"),
		Date:      MustParseDate("15/07/2024"),
		AccountID: refs.main,
		DebtID:    refs.debt,
	})
	require.NoError(t, err)

	_, err = l.UpdateTransaction(tx.ID, TransactionPatch{Amount: ptr(dec("600"))})
	require.NoError(t, err)

	// The prior reduction is fully reversed before the new one applies.
	d, _ := l.Debt(refs.debt)
	assert.Equal(t, "14400", d.Outstanding.String())
	assert.Equal(t, "400", balance(t, l, refs.main))
}

func TestUpdateTransaction_TypeFlipClearsIncomeType(t *testing.T) {
	l, refs := newTestLedger(t)

	tx, err := l.AddTransaction(Transaction{
		Type:       Income,
		IncomeType: ActiveIncome,
		Amount:     dec("100"),
		Date:       MustParseDate("01/07/2024"),
		AccountID:  refs.main,
	})
	require.NoError(t, err)
	assert.Equal(t, "1100", balance(t, l, refs.main))

	updated, err := l.UpdateTransaction(tx.ID, TransactionPatch{Type: ptr(Expense)})
	require.NoError(t, err)
	assert.Empty(t, string(updated.IncomeType))
	assert.Equal(t, "900", balance(t, l, refs.main), "+100 reversed, then −100 applied")
}

func TestUpdateTransaction_VenturePolicyReevaluated(t *testing.T) {
	l, refs := newTestLedger(t)

	tx, err := l.AddTransaction(Transaction{
		Type:       Expense,
		Amount:     dec("500"),
		Date:       MustParseDate("18/07/2024"),
		AccountID:  refs.main,
		CategoryID: refs.savings,
		VentureID:  refs.venture,
	})
	require.NoError(t, err)

	// Recategorizing away from savings withdraws the funding.
	_, err = l.UpdateTransaction(tx.ID, TransactionPatch{CategoryID: ptr(refs.food)})
	require.NoError(t, err)
	v, _ := l.Venture(refs.venture)
	assert.Equal(t, "0", v.CurrentAmount.String())
}

func TestUpdateTransaction_TransferStaysUncategorized(t *testing.T) {
	l, refs := newTestLedger(t)

	tr, err := l.AddTransfer(TransferArgs{
		FromAccountID: refs.main,
		ToAccountID:   refs.pocket,
		Amount:        dec("300"),
		Date:          MustParseDate("10/07/2024"),
	})
	require.NoError(t, err)

	updated, err := l.UpdateTransaction(tr.ID, TransactionPatch{CategoryID: ptr(refs.food)})
	require.NoError(t, err)
	assert.Empty(t, updated.CategoryID)
	got, _ := l.Transaction(tr.ID)
	assert.Empty(t, got.CategoryID)
	assert.NoError(t, l.CheckDeletable(KindCategory, refs.food))
}

func TestUpdateTransaction_TypeFlipToTransferClearsLinks(t *testing.T) {
	l, refs := newTestLedger(t)

	tx, err := l.AddTransaction(Transaction{
		Type:       Expense,
		Amount:     dec("200"),
		Date:       MustParseDate("12/07/2024"),
		AccountID:  refs.main,
		CategoryID: refs.food,
		DebtID:     refs.debt,
	})
	require.NoError(t, err)

	updated, err := l.UpdateTransaction(tx.ID, TransactionPatch{
		Type:        ptr(Transfer),
		ToAccountID: ptr(refs.pocket),
	})
	require.NoError(t, err)
	assert.Empty(t, updated.CategoryID)
	assert.Empty(t, updated.DebtID)
	assert.Empty(t, updated.VentureID)
	assert.Empty(t, string(updated.IncomeType))

	// The debt payment was reversed along with the expense.
	d, _ := l.Debt(refs.debt)
	assert.Equal(t, "15000", d.Outstanding.String())
	assert.Equal(t, "800", balance(t, l, refs.main), "−200 reversed, then −200 transferred out")
	assert.Equal(t, "400", balance(t, l, refs.pocket))
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	l, _ := newTestLedger(t)
	_, err := l.UpdateTransaction("t_missing", TransactionPatch{Amount: ptr(dec("1"))})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateTransaction_InvalidPatchLeavesStateUntouched(t *testing.T) {
	l, refs := newTestLedger(t)

	tx, err := l.AddTransaction(Transaction{
		Type:      Expense,
		Amount:    dec("200"),
		Date:      MustParseDate("05/07/2024"),
		AccountID: refs.main,
	})
	require.NoError(t, err)

	_, err = l.UpdateTransaction(tx.ID, TransactionPatch{Amount: ptr(dec("-3"))})
	require.Error(t, err)
	assert.Equal(t, "800", balance(t, l, refs.main))
	got, _ := l.Transaction(tx.ID)
	assert.Equal(t, "200", got.Amount.String())
}

func TestMutationRefreshesUpdatedAt(t *testing.T) {
	l, refs := newTestLedger(t)
	before := l.Meta().UpdatedAt

	_, err := l.AddTransaction(Transaction{
		Type: Expense, Amount: dec("1"), Date: MustParseDate("01/07/2024"), AccountID: refs.main,
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, l.Meta().UpdatedAt, before)
}
