package models

import "time"

// BankTransaction is one row of an imported bank statement
type BankTransaction struct {
	ID          string    `json:"id" db:"id"`
	Reference   string    `json:"reference" db:"reference"`
	Description string    `json:"description" db:"description"`
	Amount      float64   `json:"amount" db:"amount"`
	Date        time.Time `json:"date" db:"txn_date"`
	Matched     bool      `json:"matched" db:"matched"`
	PaymentID   string    `json:"payment_id,omitempty" db:"payment_id"`
	ImportedAt  time.Time `json:"imported_at" db:"imported_at"`
}

// MatchedPair links a bank transaction to the system payment it was
// matched against
type MatchedPair struct {
	BankTransaction BankTransaction `json:"bankTransaction"`
	Payment         Payment         `json:"payment"`
	Difference      float64         `json:"difference"`
}

// MatchResult is the output of an auto-match run
type MatchResult struct {
	Pairs             []MatchedPair     `json:"pairs"`
	UnmatchedBank     []BankTransaction `json:"unmatchedBank"`
	UnmatchedPayments []Payment         `json:"unmatchedPayments"`
}

// ReconciliationSummary is the aggregate view shown on the
// business-office dashboard
type ReconciliationSummary struct {
	TotalBankTransactions int     `json:"totalBankTransactions"`
	TotalSystemPayments   int     `json:"totalSystemPayments"`
	MatchedCount          int     `json:"matchedCount"`
	UnmatchedBankCount    int     `json:"unmatchedBankCount"`
	UnmatchedSystemCount  int     `json:"unmatchedSystemCount"`
	PercentMatched        float64 `json:"percentMatched"`
	TotalBankAmount       float64 `json:"totalBankAmount"`
	TotalSystemAmount     float64 `json:"totalSystemAmount"`
	Variance              float64 `json:"variance"`
}
