package models

import (
	"time"
)

// Payment represents a single recorded tuition transaction. Status moves
// one-directionally from pending to a terminal state; no code path
// reverses a terminal status.
type Payment struct {
	ID            string     `json:"id" db:"id"`
	StudentID     string     `json:"student_id" db:"student_id"`
	Amount        float64    `json:"amount" db:"amount"`
	Method        string     `json:"method" db:"method"`
	Status        string     `json:"status" db:"status"`
	FeePlanID     string     `json:"fee_plan_id,omitempty" db:"fee_plan_id"`
	Fees          []string   `json:"fees,omitempty"`
	BankReference string     `json:"bank_reference,omitempty" db:"bank_reference"`
	Description   string     `json:"description,omitempty" db:"description"`
	PaidAt        *time.Time `json:"paid_at,omitempty" db:"paid_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}

// Receipt is an immutable record issued once a payment reaches a
// terminal successful state. At most one receipt exists per payment,
// enforced by a unique constraint on the payment reference.
type Receipt struct {
	ID            string        `json:"id" db:"id"`
	ReceiptNumber string        `json:"receipt_number" db:"receipt_number"`
	PaymentID     string        `json:"payment_id" db:"payment_id"`
	StudentID     string        `json:"student_id" db:"student_id"`
	Items         []ReceiptItem `json:"items"`
	Total         float64       `json:"total" db:"total"`
	Method        string        `json:"method" db:"method"`
	IssuedAt      time.Time     `json:"issued_at" db:"issued_at"`
}

// ReceiptItem is a single line on a receipt; line items sum to the
// payment amount.
type ReceiptItem struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// InitiatePaymentRequest request model for a student starting a payment
type InitiatePaymentRequest struct {
	Amount    float64  `json:"amount" binding:"required,gt=0"`
	Method    string   `json:"method" binding:"required"`
	FeePlanID string   `json:"feePlanId"`
	Fees      []string `json:"fees"`
}

// CounterPaymentRequest request model for a cashier recording an
// over-the-counter transaction
type CounterPaymentRequest struct {
	StudentID string   `json:"studentId" binding:"required"`
	Amount    float64  `json:"amount" binding:"required,gt=0"`
	Method    string   `json:"method" binding:"required"`
	FeePlanID string   `json:"feePlanId"`
	Fees      []string `json:"fees"`
}
