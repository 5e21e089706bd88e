package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/enrollpay/enrollpay-backend/models"
)

// ReceiptRepository handles receipt data operations
type ReceiptRepository struct {
	db *sql.DB
}

// NewReceiptRepository creates a new receipt repository
func NewReceiptRepository(db *sql.DB) *ReceiptRepository {
	return &ReceiptRepository{db: db}
}

// CreateReceipt inserts a receipt. The unique constraint on payment_id
// makes a second insert for the same payment fail with a conflict.
func (r *ReceiptRepository) CreateReceipt(receipt *models.Receipt) error {
	items, err := json.Marshal(receipt.Items)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO receipts (id, receipt_number, payment_id, student_id, items, total, method, issued_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.db.Exec(query, receipt.ID, receipt.ReceiptNumber, receipt.PaymentID,
		receipt.StudentID, items, receipt.Total, receipt.Method, receipt.IssuedAt)
	return err
}

// GetReceiptByPaymentID retrieves the receipt for a payment, if issued
func (r *ReceiptRepository) GetReceiptByPaymentID(paymentID string) (*models.Receipt, error) {
	query := `
		SELECT id, receipt_number, payment_id, student_id, items, total, method, issued_at
		FROM receipts
		WHERE payment_id = $1
	`
	return scanReceipt(r.db.QueryRow(query, paymentID))
}

// ListReceiptsByStudent retrieves a student's receipts, newest first
func (r *ReceiptRepository) ListReceiptsByStudent(studentID string) ([]models.Receipt, error) {
	query := `
		SELECT id, receipt_number, payment_id, student_id, items, total, method, issued_at
		FROM receipts
		WHERE student_id = $1
		ORDER BY issued_at DESC
	`
	return r.queryReceipts(query, studentID)
}

// ListReceipts retrieves all receipts, newest first
func (r *ReceiptRepository) ListReceipts() ([]models.Receipt, error) {
	query := `
		SELECT id, receipt_number, payment_id, student_id, items, total, method, issued_at
		FROM receipts
		ORDER BY issued_at DESC
	`
	return r.queryReceipts(query)
}

func (r *ReceiptRepository) queryReceipts(query string, args ...interface{}) ([]models.Receipt, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var receipts []models.Receipt
	for rows.Next() {
		receipt, err := scanReceipt(rows)
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, *receipt)
	}
	return receipts, rows.Err()
}

func scanReceipt(row rowScanner) (*models.Receipt, error) {
	var receipt models.Receipt
	var items []byte
	err := row.Scan(&receipt.ID, &receipt.ReceiptNumber, &receipt.PaymentID,
		&receipt.StudentID, &items, &receipt.Total, &receipt.Method, &receipt.IssuedAt)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &receipt.Items); err != nil {
			return nil, err
		}
	}
	return &receipt, nil
}
