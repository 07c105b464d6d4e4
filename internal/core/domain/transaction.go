package domain

import "github.com/shopspring/decimal"

// TransactionType indicates the direction of cash flow for a transaction.
type TransactionType string

const (
	Debit  TransactionType = "debit"
	Credit TransactionType = "credit"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == Debit || t == Credit
}

// Transaction represents a single ledger line loaded into the dashboard.
// Only Category and Flagged change after creation.
type Transaction struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"` // YYYY-MM-DD, lexicographic order is chronological
	Description string          `json:"description"`
	Merchant    string          `json:"merchant,omitempty"`
	Amount      decimal.Decimal `json:"amount"` // Non-negative magnitude; direction comes from Type
	Category    Category        `json:"category"`
	Type        TransactionType `json:"type"`
	Flagged     bool            `json:"flagged,omitempty"`
}

// DisplayLabel returns the merchant when it is present and distinct from the
// description, otherwise the description.
func (t Transaction) DisplayLabel() string {
	if t.Merchant != "" && t.Merchant != t.Description {
		return t.Merchant
	}
	return t.Description
}

// SortLabel is the value used when ordering by description: merchant if set, else description.
func (t Transaction) SortLabel() string {
	if t.Merchant != "" {
		return t.Merchant
	}
	return t.Description
}

// IsSpend reports whether the transaction counts toward spend totals
// (a debit that is not a transfer between own accounts).
func (t Transaction) IsSpend() bool {
	return t.Type == Debit && t.Category != Transfers
}

// IsIncome reports whether the transaction counts toward income totals.
func (t Transaction) IsIncome() bool {
	return t.Type == Credit || t.Category == Income
}

// CloneTransactions returns a shallow copy of the slice. Transactions hold no
// reference fields besides decimal values, which are immutable.
func CloneTransactions(txs []Transaction) []Transaction {
	if txs == nil {
		return nil
	}
	out := make([]Transaction, len(txs))
	copy(out, txs)
	return out
}
