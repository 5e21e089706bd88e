package repository

import (
	"database/sql"

	"github.com/enrollpay/enrollpay-backend/models"
)

// ExpenseRepository handles expense and budget data operations
type ExpenseRepository struct {
	db *sql.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// CreateExpense inserts an expense
func (r *ExpenseRepository) CreateExpense(expense *models.Expense) error {
	query := `
		INSERT INTO expenses (id, category, title, amount, expense_date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(query, expense.ID, expense.Category, expense.Title, expense.Amount,
		expense.Date, expense.Notes, expense.CreatedAt, expense.UpdatedAt)
	return err
}

// UpdateExpense updates an expense in place
func (r *ExpenseRepository) UpdateExpense(expense *models.Expense) error {
	query := `
		UPDATE expenses
		SET category = $2, title = $3, amount = $4, expense_date = $5, notes = $6, updated_at = now()
		WHERE id = $1
	`
	_, err := r.db.Exec(query, expense.ID, expense.Category, expense.Title,
		expense.Amount, expense.Date, expense.Notes)
	return err
}

// DeleteExpense deletes an expense by ID
func (r *ExpenseRepository) DeleteExpense(expenseID string) error {
	_, err := r.db.Exec(`DELETE FROM expenses WHERE id = $1`, expenseID)
	return err
}

// GetExpenseByID retrieves an expense by ID
func (r *ExpenseRepository) GetExpenseByID(expenseID string) (*models.Expense, error) {
	query := `
		SELECT id, category, title, amount, expense_date, notes, created_at, updated_at
		FROM expenses
		WHERE id = $1
	`
	var expense models.Expense
	err := r.db.QueryRow(query, expenseID).Scan(&expense.ID, &expense.Category,
		&expense.Title, &expense.Amount, &expense.Date, &expense.Notes,
		&expense.CreatedAt, &expense.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// ListExpenses retrieves all expenses, newest first
func (r *ExpenseRepository) ListExpenses() ([]models.Expense, error) {
	query := `
		SELECT id, category, title, amount, expense_date, notes, created_at, updated_at
		FROM expenses
		ORDER BY expense_date DESC, created_at DESC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var expense models.Expense
		err := rows.Scan(&expense.ID, &expense.Category, &expense.Title, &expense.Amount,
			&expense.Date, &expense.Notes, &expense.CreatedAt, &expense.UpdatedAt)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

// SumExpenses returns the total of all recorded expenses
func (r *ExpenseRepository) SumExpenses() (float64, error) {
	var total float64
	err := r.db.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM expenses`).Scan(&total)
	return total, err
}

// SumExpensesByCategory returns expense totals grouped by category
func (r *ExpenseRepository) SumExpensesByCategory() (map[string]float64, error) {
	rows, err := r.db.Query(`SELECT category, COALESCE(SUM(amount), 0) FROM expenses GROUP BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sums := make(map[string]float64)
	for rows.Next() {
		var category string
		var total float64
		if err := rows.Scan(&category, &total); err != nil {
			return nil, err
		}
		sums[category] = total
	}
	return sums, rows.Err()
}

// CreateBudget inserts a budget; duplicate category+period surfaces as
// a conflict
func (r *ExpenseRepository) CreateBudget(budget *models.Budget) error {
	query := `
		INSERT INTO budgets (id, category, period, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(query, budget.ID, budget.Category, budget.Period,
		budget.Amount, budget.CreatedAt)
	return err
}

// ListBudgets retrieves all budgets
func (r *ExpenseRepository) ListBudgets() ([]models.Budget, error) {
	query := `
		SELECT id, category, period, amount, created_at
		FROM budgets
		ORDER BY period DESC, category ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var budget models.Budget
		err := rows.Scan(&budget.ID, &budget.Category, &budget.Period,
			&budget.Amount, &budget.CreatedAt)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}
	return budgets, rows.Err()
}
