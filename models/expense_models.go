package models

import "time"

// Expense represents a school operating expense recorded by the
// business office
type Expense struct {
	ID        string    `json:"id" db:"id"`
	Category  string    `json:"category" db:"category"`
	Title     string    `json:"title" db:"title"`
	Amount    float64   `json:"amount" db:"amount"`
	Date      time.Time `json:"date" db:"expense_date"`
	Notes     string    `json:"notes,omitempty" db:"notes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Budget is a per-category spending allocation for a period
type Budget struct {
	ID        string    `json:"id" db:"id"`
	Category  string    `json:"category" db:"category"`
	Period    string    `json:"period" db:"period"`
	Amount    float64   `json:"amount" db:"amount"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// BudgetUtilization pairs a budget with what has been spent against it
type BudgetUtilization struct {
	Budget      Budget  `json:"budget"`
	Spent       float64 `json:"spent"`
	Remaining   float64 `json:"remaining"`
	PercentUsed float64 `json:"percentUsed"`
}

// DashboardStats is the business-office overview
type DashboardStats struct {
	CollectionsTotal    float64            `json:"collectionsTotal"`
	PendingPayments     int                `json:"pendingPayments"`
	CompletedPayments   int                `json:"completedPayments"`
	ExpensesTotal       float64            `json:"expensesTotal"`
	Net                 float64            `json:"net"`
	CollectionsByMethod map[string]float64 `json:"collectionsByMethod"`
	CollectionsByMonth  map[string]float64 `json:"collectionsByMonth"`
}

// ExpenseRequest request model for create/update
type ExpenseRequest struct {
	Category string  `json:"category" binding:"required"`
	Title    string  `json:"title" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Date     string  `json:"date" binding:"required"`
	Notes    string  `json:"notes"`
}

// BudgetRequest request model
type BudgetRequest struct {
	Category string  `json:"category" binding:"required"`
	Period   string  `json:"period" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
}
