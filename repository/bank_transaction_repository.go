package repository

import (
	"database/sql"

	"github.com/enrollpay/enrollpay-backend/models"
)

// BankTransactionRepository handles imported bank statement rows
type BankTransactionRepository struct {
	db *sql.DB
}

// NewBankTransactionRepository creates a new bank transaction repository
func NewBankTransactionRepository(db *sql.DB) *BankTransactionRepository {
	return &BankTransactionRepository{db: db}
}

// CreateBankTransactions inserts a batch of imported statement rows
func (r *BankTransactionRepository) CreateBankTransactions(txns []models.BankTransaction) error {
	stmt, err := r.db.Prepare(`
		INSERT INTO bank_transactions (id, reference, description, amount, txn_date, matched, imported_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, txn := range txns {
		_, err := stmt.Exec(txn.ID, txn.Reference, txn.Description, txn.Amount,
			txn.Date, txn.Matched, txn.ImportedAt)
		if err != nil {
			return err
		}
	}
	return nil
}

// ListBankTransactions retrieves all imported rows, oldest first
func (r *BankTransactionRepository) ListBankTransactions() ([]models.BankTransaction, error) {
	query := `
		SELECT id, reference, description, amount, txn_date, matched, COALESCE(payment_id::text, ''), imported_at
		FROM bank_transactions
		ORDER BY txn_date ASC, imported_at ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []models.BankTransaction
	for rows.Next() {
		var txn models.BankTransaction
		err := rows.Scan(&txn.ID, &txn.Reference, &txn.Description, &txn.Amount,
			&txn.Date, &txn.Matched, &txn.PaymentID, &txn.ImportedAt)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, rows.Err()
}

// MarkMatched records the payment a bank row was matched against
func (r *BankTransactionRepository) MarkMatched(txnID, paymentID string) error {
	query := `UPDATE bank_transactions SET matched = TRUE, payment_id = $2 WHERE id = $1`
	_, err := r.db.Exec(query, txnID, paymentID)
	return err
}

// ClearMatches resets all match state ahead of a fresh auto-match run
func (r *BankTransactionRepository) ClearMatches() error {
	_, err := r.db.Exec(`UPDATE bank_transactions SET matched = FALSE, payment_id = NULL`)
	return err
}
