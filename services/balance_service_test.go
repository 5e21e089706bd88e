package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/enrollpay/enrollpay-backend/models"
	"github.com/enrollpay/enrollpay-backend/utils"
)

func testPlan() *models.FeePlan {
	return &models.FeePlan{
		ID: "plan-1",
		CategoryAmounts: map[string]float64{
			utils.CategoryTuition:       5000,
			utils.CategoryLaboratory:    1500,
			utils.CategoryLibrary:       800,
			utils.CategoryMiscellaneous: 700,
		},
	}
}

func TestComputeBalance_EvenSplitAcrossTaggedCategories(t *testing.T) {
	payments := []models.Payment{
		{Amount: 1000, Status: utils.StatusCompleted, Fees: []string{"tuition", "library"}},
	}

	balance := ComputeBalance(testPlan(), payments)

	assert.Equal(t, 500.0, balance.PaidByCategory[utils.CategoryTuition])
	assert.Equal(t, 500.0, balance.PaidByCategory[utils.CategoryLibrary])
	assert.Equal(t, 0.0, balance.PaidByCategory[utils.CategoryLaboratory])
	assert.Equal(t, 1000.0, balance.PaidTotal)
	assert.Equal(t, 4500.0, balance.Balances[utils.CategoryTuition])
	assert.Equal(t, 300.0, balance.Balances[utils.CategoryLibrary])
	assert.Equal(t, 7000.0, balance.BalanceTotal)
}

func TestComputeBalance_EmptyFeeListDefaultsToMiscellaneous(t *testing.T) {
	payments := []models.Payment{
		{Amount: 650, Status: utils.StatusCompleted},
	}

	balance := ComputeBalance(testPlan(), payments)

	assert.Equal(t, 650.0, balance.PaidByCategory[utils.CategoryMiscellaneous])
	assert.Equal(t, 50.0, balance.Balances[utils.CategoryMiscellaneous])
}

func TestComputeBalance_PendingAndFailedPaymentsIgnored(t *testing.T) {
	payments := []models.Payment{
		{Amount: 1000, Status: utils.StatusPending, Fees: []string{"tuition"}},
		{Amount: 2000, Status: utils.StatusFailed, Fees: []string{"tuition"}},
		{Amount: 500, Status: utils.StatusCancelled, Fees: []string{"tuition"}},
		{Amount: 300, Status: utils.StatusSucceeded, Fees: []string{"tuition"}},
	}

	balance := ComputeBalance(testPlan(), payments)

	assert.Equal(t, 300.0, balance.PaidTotal)
	assert.Equal(t, 300.0, balance.PaidByCategory[utils.CategoryTuition])
}

func TestComputeBalance_OverpaymentFlooredAtZero(t *testing.T) {
	payments := []models.Payment{
		{Amount: 6000, Status: utils.StatusCompleted, Fees: []string{"tuition"}},
		{Amount: 4000, Status: utils.StatusCompleted, Fees: []string{"laboratory"}},
	}

	balance := ComputeBalance(testPlan(), payments)

	// 10000 paid against an 8000 plan: balances absorb the overpayment
	assert.Equal(t, 0.0, balance.Balances[utils.CategoryTuition])
	assert.Equal(t, 0.0, balance.Balances[utils.CategoryLaboratory])
	assert.Equal(t, 0.0, balance.BalanceTotal)
}

func TestComputeBalance_UndefinedCategoryAmountTreatedAsZero(t *testing.T) {
	plan := &models.FeePlan{
		ID: "plan-2",
		CategoryAmounts: map[string]float64{
			utils.CategoryTuition: 3000,
		},
	}
	payments := []models.Payment{
		{Amount: 200, Status: utils.StatusCompleted, Fees: []string{"library"}},
	}

	balance := ComputeBalance(plan, payments)

	assert.Equal(t, 0.0, balance.Balances[utils.CategoryLibrary])
	assert.Equal(t, 3000.0, balance.Balances[utils.CategoryTuition])
	assert.Equal(t, 2800.0, balance.BalanceTotal)
}

func TestComputeBalance_NoPayments(t *testing.T) {
	balance := ComputeBalance(testPlan(), nil)

	assert.Equal(t, 0.0, balance.PaidTotal)
	assert.Equal(t, 8000.0, balance.BalanceTotal)
	assert.Equal(t, 5000.0, balance.Balances[utils.CategoryTuition])
}
