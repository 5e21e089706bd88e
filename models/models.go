package models

import "time"

// FeePlan represents a tuition configuration for a program. Plans are
// mutated in place and never versioned, so totals computed after an edit
// reflect the edit retroactively.
type FeePlan struct {
	ID              string    `json:"id" db:"id"`
	Program         string    `json:"program" db:"program"`
	Units           int       `json:"units" db:"units"`
	TuitionPerUnit  float64   `json:"tuitionPerUnit" db:"tuition_per_unit"`
	RegistrationFee float64   `json:"registrationFee" db:"registration_fee"`
	FeeItems        []FeeItem `json:"feeItems"`
	// Amounts for the four fixed categories, used by balance computation.
	CategoryAmounts map[string]float64 `json:"categoryAmounts"`
	CreatedAt       time.Time          `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time          `json:"updatedAt" db:"updated_at"`
}

// FeeItem is a named miscellaneous fee line on a plan
type FeeItem struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// FeePlanTotals is the derived totals breakdown for a plan
type FeePlanTotals struct {
	Tuition float64 `json:"tuition"`
	Others  float64 `json:"others"`
	Total   float64 `json:"total"`
}

// StudentBalance is the derived per-category balance for a student
// against a plan; never stored.
type StudentBalance struct {
	StudentID      string             `json:"studentId"`
	PlanID         string             `json:"planId"`
	PaidTotal      float64            `json:"paidTotal"`
	PaidByCategory map[string]float64 `json:"paidByCategory"`
	Balances       map[string]float64 `json:"balances"`
	BalanceTotal   float64            `json:"balanceTotal"`
}

// User is an account on the portal: student, cashier or business-office admin
type User struct {
	ID            string    `json:"id" db:"id"`
	Email         string    `json:"email" db:"email"`
	PasswordHash  string    `json:"-" db:"password_hash"`
	FullName      string    `json:"fullName" db:"full_name"`
	Role          string    `json:"role" db:"role"`
	StudentNumber string    `json:"studentNumber,omitempty" db:"student_number"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreateFeePlanRequest request model
type CreateFeePlanRequest struct {
	Program         string             `json:"program" binding:"required"`
	Units           int                `json:"units" binding:"min=0"`
	TuitionPerUnit  float64            `json:"tuitionPerUnit" binding:"min=0"`
	RegistrationFee float64            `json:"registrationFee" binding:"min=0"`
	FeeItems        []FeeItem          `json:"feeItems"`
	CategoryAmounts map[string]float64 `json:"categoryAmounts"`
}

// UpdateFeePlanRequest request model; edits silently change historical
// totals for any computation performed after the edit.
type UpdateFeePlanRequest struct {
	Program         string             `json:"program" binding:"required"`
	Units           int                `json:"units" binding:"min=0"`
	TuitionPerUnit  float64            `json:"tuitionPerUnit" binding:"min=0"`
	RegistrationFee float64            `json:"registrationFee" binding:"min=0"`
	CategoryAmounts map[string]float64 `json:"categoryAmounts"`
}

// AddFeeItemRequest request model
type AddFeeItemRequest struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount" binding:"min=0"`
}

// RegisterRequest request model
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"required"`
	Role     string `json:"role"`
}

// LoginRequest request model
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse response model
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// PreferenceRequest request model for the per-user key-value store
type PreferenceRequest struct {
	Value string `json:"value" binding:"required"`
}
