package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/enrollpay/enrollpay-backend/models"
	"github.com/enrollpay/enrollpay-backend/repository"
	"github.com/enrollpay/enrollpay-backend/utils"
)

// ExpenseService handles business-office expenses and budgets
type ExpenseService struct {
	expenseRepo *repository.ExpenseRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo *repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// CreateExpense records an expense
func (s *ExpenseService) CreateExpense(req *models.ExpenseRequest) (*models.Expense, error) {
	date, err := parseExpenseDate(req.Date)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	expense := &models.Expense{
		ID:        uuid.NewString(),
		Category:  req.Category,
		Title:     req.Title,
		Amount:    utils.Round(req.Amount),
		Date:      date,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.expenseRepo.CreateExpense(expense); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return expense, nil
}

// UpdateExpense updates an expense in place
func (s *ExpenseService) UpdateExpense(expenseID string, req *models.ExpenseRequest) (*models.Expense, error) {
	expense, err := s.expenseRepo.GetExpenseByID(expenseID)
	if err != nil {
		return nil, utils.NewNotFoundError("Expense")
	}

	date, err := parseExpenseDate(req.Date)
	if err != nil {
		return nil, err
	}

	expense.Category = req.Category
	expense.Title = req.Title
	expense.Amount = utils.Round(req.Amount)
	expense.Date = date
	expense.Notes = req.Notes

	if err := s.expenseRepo.UpdateExpense(expense); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return expense, nil
}

// DeleteExpense deletes an expense
func (s *ExpenseService) DeleteExpense(expenseID string) error {
	if _, err := s.expenseRepo.GetExpenseByID(expenseID); err != nil {
		return utils.NewNotFoundError("Expense")
	}
	return s.expenseRepo.DeleteExpense(expenseID)
}

// ListExpenses retrieves all expenses
func (s *ExpenseService) ListExpenses() ([]models.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses()
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	return expenses, nil
}

// CreateBudget records a per-category budget for a period
func (s *ExpenseService) CreateBudget(req *models.BudgetRequest) (*models.Budget, error) {
	budget := &models.Budget{
		ID:        uuid.NewString(),
		Category:  req.Category,
		Period:    req.Period,
		Amount:    utils.Round(req.Amount),
		CreatedAt: time.Now(),
	}

	if err := s.expenseRepo.CreateBudget(budget); err != nil {
		return nil, utils.TranslateConflict(err, "A budget for this category and period already exists")
	}
	return budget, nil
}

// ListBudgetUtilization pairs each budget with what has been spent in its
// category so far
func (s *ExpenseService) ListBudgetUtilization() ([]models.BudgetUtilization, error) {
	budgets, err := s.expenseRepo.ListBudgets()
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	spentByCategory, err := s.expenseRepo.SumExpensesByCategory()
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	utilization := make([]models.BudgetUtilization, len(budgets))
	for i, budget := range budgets {
		spent := spentByCategory[budget.Category]
		var percent float64
		if budget.Amount > 0 {
			percent = spent / budget.Amount * 100
		}
		utilization[i] = models.BudgetUtilization{
			Budget:      budget,
			Spent:       utils.Round(spent),
			Remaining:   utils.Round(utils.FloorZero(budget.Amount - spent)),
			PercentUsed: utils.Round(percent),
		}
	}
	return utilization, nil
}

func parseExpenseDate(value string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, utils.NewValidationError("date must be YYYY-MM-DD")
	}
	return date, nil
}
