package services

import (
	"github.com/enrollpay/enrollpay-backend/models"
	"github.com/enrollpay/enrollpay-backend/utils"
)

// paymentStatsSource is the slice of the payment repository the
// dashboard aggregates from.
type paymentStatsSource interface {
	SumCompletedByMethod() (map[string]float64, error)
	SumCompletedByMonth() (map[string]float64, error)
	CountByStatus(status string) (int, error)
}

// expenseStatsSource provides the expense total.
type expenseStatsSource interface {
	SumExpenses() (float64, error)
}

// DashboardService aggregates collections and expenses for the
// business-office overview
type DashboardService struct {
	payments paymentStatsSource
	expenses expenseStatsSource
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(payments paymentStatsSource, expenses expenseStatsSource) *DashboardService {
	return &DashboardService{
		payments: payments,
		expenses: expenses,
	}
}

// GetStats computes the dashboard figures
func (s *DashboardService) GetStats() (*models.DashboardStats, error) {
	byMethod, err := s.payments.SumCompletedByMethod()
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	byMonth, err := s.payments.SumCompletedByMonth()
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	pending, err := s.payments.CountByStatus(utils.StatusPending)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	// Both terminal successful statuses count, matching the collections
	// sums below.
	completed := 0
	for _, status := range []string{utils.StatusCompleted, utils.StatusSucceeded} {
		count, err := s.payments.CountByStatus(status)
		if err != nil {
			return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
		}
		completed += count
	}

	expensesTotal, err := s.expenses.SumExpenses()
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	var collections float64
	for _, total := range byMethod {
		collections += total
	}

	return &models.DashboardStats{
		CollectionsTotal:    utils.Round(collections),
		PendingPayments:     pending,
		CompletedPayments:   completed,
		ExpensesTotal:       utils.Round(expensesTotal),
		Net:                 utils.Round(collections - expensesTotal),
		CollectionsByMethod: byMethod,
		CollectionsByMonth:  byMonth,
	}, nil
}
