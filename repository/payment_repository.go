package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/enrollpay/enrollpay-backend/models"
)

// PaymentRepository handles payment data operations
type PaymentRepository struct {
	db *sql.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// CreatePayment creates a new payment record
func (r *PaymentRepository) CreatePayment(payment *models.Payment) error {
	fees, err := json.Marshal(payment.Fees)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO payments (id, student_id, amount, method, status, fee_plan_id, fees, bank_reference, description, paid_at, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::uuid, $7, $8, $9, $10, $11)
	`
	_, err = r.db.Exec(query, payment.ID, payment.StudentID, payment.Amount, payment.Method,
		payment.Status, payment.FeePlanID, fees, payment.BankReference, payment.Description,
		payment.PaidAt, payment.CreatedAt)
	return err
}

// GetPaymentByID retrieves a payment by its ID
func (r *PaymentRepository) GetPaymentByID(paymentID string) (*models.Payment, error) {
	query := `
		SELECT id, student_id, amount, method, status, COALESCE(fee_plan_id::text, ''), fees, bank_reference, description, paid_at, created_at
		FROM payments
		WHERE id = $1
	`
	return r.scanPaymentRow(r.db.QueryRow(query, paymentID))
}

// GetPaymentsByStudent retrieves all payments for a student, newest first
func (r *PaymentRepository) GetPaymentsByStudent(studentID string) ([]models.Payment, error) {
	query := `
		SELECT id, student_id, amount, method, status, COALESCE(fee_plan_id::text, ''), fees, bank_reference, description, paid_at, created_at
		FROM payments
		WHERE student_id = $1
		ORDER BY created_at DESC
	`
	return r.queryPayments(query, studentID)
}

// GetCompletedPaymentsByStudent retrieves the student's payments in a
// terminal successful state, the only ones that count toward balances
func (r *PaymentRepository) GetCompletedPaymentsByStudent(studentID string) ([]models.Payment, error) {
	query := `
		SELECT id, student_id, amount, method, status, COALESCE(fee_plan_id::text, ''), fees, bank_reference, description, paid_at, created_at
		FROM payments
		WHERE student_id = $1 AND status IN ('completed', 'succeeded')
		ORDER BY created_at ASC
	`
	return r.queryPayments(query, studentID)
}

// GetPaymentsByStatus retrieves payments with a given status, oldest first
// (the cashier works the queue in arrival order)
func (r *PaymentRepository) GetPaymentsByStatus(status string) ([]models.Payment, error) {
	query := `
		SELECT id, student_id, amount, method, status, COALESCE(fee_plan_id::text, ''), fees, bank_reference, description, paid_at, created_at
		FROM payments
		WHERE status = $1
		ORDER BY created_at ASC
	`
	return r.queryPayments(query, status)
}

// GetCompletedPayments retrieves all terminal successful payments,
// ordered by paid_at for deterministic reconciliation runs
func (r *PaymentRepository) GetCompletedPayments() ([]models.Payment, error) {
	query := `
		SELECT id, student_id, amount, method, status, COALESCE(fee_plan_id::text, ''), fees, bank_reference, description, paid_at, created_at
		FROM payments
		WHERE status IN ('completed', 'succeeded')
		ORDER BY paid_at ASC NULLS LAST, created_at ASC
	`
	return r.queryPayments(query)
}

// CompletePending flips a pending payment to completed. The WHERE clause
// is the compare-and-swap: a concurrent second verification finds zero
// rows updated and reports a conflict instead of double-completing.
func (r *PaymentRepository) CompletePending(paymentID string, paidAt time.Time) (bool, error) {
	query := `
		UPDATE payments
		SET status = 'completed', paid_at = $2
		WHERE id = $1 AND status = 'pending'
	`
	result, err := r.db.Exec(query, paymentID, paidAt)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}

// CountByStatus returns the number of payments with the given status
func (r *PaymentRepository) CountByStatus(status string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM payments WHERE status = $1`, status).Scan(&count)
	return count, err
}

// SumCompletedByMethod returns completed collections grouped by method
func (r *PaymentRepository) SumCompletedByMethod() (map[string]float64, error) {
	query := `
		SELECT method, COALESCE(SUM(amount), 0)
		FROM payments
		WHERE status IN ('completed', 'succeeded')
		GROUP BY method
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sums := make(map[string]float64)
	for rows.Next() {
		var method string
		var total float64
		if err := rows.Scan(&method, &total); err != nil {
			return nil, err
		}
		sums[method] = total
	}
	return sums, rows.Err()
}

// SumCompletedByMonth returns completed collections grouped by month (YYYY-MM)
func (r *PaymentRepository) SumCompletedByMonth() (map[string]float64, error) {
	query := `
		SELECT to_char(COALESCE(paid_at, created_at), 'YYYY-MM'), COALESCE(SUM(amount), 0)
		FROM payments
		WHERE status IN ('completed', 'succeeded')
		GROUP BY 1
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sums := make(map[string]float64)
	for rows.Next() {
		var month string
		var total float64
		if err := rows.Scan(&month, &total); err != nil {
			return nil, err
		}
		sums[month] = total
	}
	return sums, rows.Err()
}

func (r *PaymentRepository) queryPayments(query string, args ...interface{}) ([]models.Payment, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		payment, err := r.scanPaymentRow(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *payment)
	}
	return payments, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *PaymentRepository) scanPaymentRow(row rowScanner) (*models.Payment, error) {
	var payment models.Payment
	var fees []byte
	err := row.Scan(&payment.ID, &payment.StudentID, &payment.Amount, &payment.Method,
		&payment.Status, &payment.FeePlanID, &fees, &payment.BankReference,
		&payment.Description, &payment.PaidAt, &payment.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(fees) > 0 {
		if err := json.Unmarshal(fees, &payment.Fees); err != nil {
			return nil, err
		}
	}
	return &payment, nil
}
