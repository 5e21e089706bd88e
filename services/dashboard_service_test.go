package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/enrollpay/enrollpay-backend/utils"
)

type fakePaymentStats struct {
	byMethod map[string]float64
	byMonth  map[string]float64
	counts   map[string]int
}

func (f *fakePaymentStats) SumCompletedByMethod() (map[string]float64, error) {
	return f.byMethod, nil
}

func (f *fakePaymentStats) SumCompletedByMonth() (map[string]float64, error) {
	return f.byMonth, nil
}

func (f *fakePaymentStats) CountByStatus(status string) (int, error) {
	return f.counts[status], nil
}

type fakeExpenseStats struct {
	total float64
}

func (f *fakeExpenseStats) SumExpenses() (float64, error) {
	return f.total, nil
}

func TestGetStatsCountsBothTerminalSuccessStatuses(t *testing.T) {
	payments := &fakePaymentStats{
		byMethod: map[string]float64{utils.MethodCash: 3000, utils.MethodOnline: 2000},
		byMonth:  map[string]float64{"2026-08": 5000},
		counts: map[string]int{
			utils.StatusPending:   4,
			utils.StatusCompleted: 3,
			utils.StatusSucceeded: 2,
		},
	}
	service := NewDashboardService(payments, &fakeExpenseStats{total: 1200.50})

	stats, err := service.GetStats()

	assert.NoError(t, err)
	assert.Equal(t, 5, stats.CompletedPayments)
	assert.Equal(t, 4, stats.PendingPayments)
	assert.Equal(t, 5000.0, stats.CollectionsTotal)
	assert.Equal(t, 1200.50, stats.ExpensesTotal)
	assert.Equal(t, 3799.50, stats.Net)
}
