package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/enrollpay/enrollpay-backend/models"
)

func TestFeePlanService_CalculateTotals_RealWorldScenario(t *testing.T) {
	service := NewFeePlanService(nil)

	// 24 units at 206.00/unit, 1000 registration, itemized fees totalling 6100.97
	plan := &models.FeePlan{
		Units:           24,
		TuitionPerUnit:  206.00,
		RegistrationFee: 1000,
		FeeItems: []models.FeeItem{
			{Name: "Laboratory Fee", Amount: 2500.47},
			{Name: "Library Fee", Amount: 1200.50},
			{Name: "Athletics Fee", Amount: 1400},
			{Name: "Development Fee", Amount: 1000},
		},
	}

	totals := service.CalculateTotals(plan)

	assert.Equal(t, 4944.00, totals.Tuition)
	assert.Equal(t, 6100.97, totals.Others)
	assert.Equal(t, 12044.97, totals.Total)
}

func TestFeePlanService_CalculateTotals_EmptyFeeItems(t *testing.T) {
	service := NewFeePlanService(nil)

	plan := &models.FeePlan{
		Units:           18,
		TuitionPerUnit:  206.00,
		RegistrationFee: 1000,
		FeeItems:        []models.FeeItem{},
	}

	totals := service.CalculateTotals(plan)

	assert.Equal(t, 3708.00, totals.Tuition)
	assert.Equal(t, 0.0, totals.Others)
	assert.Equal(t, 4708.00, totals.Total)
}

func TestFeePlanService_CalculateTotals_NaNAmountsCountAsZero(t *testing.T) {
	service := NewFeePlanService(nil)

	plan := &models.FeePlan{
		Units:           10,
		TuitionPerUnit:  100,
		RegistrationFee: math.NaN(),
		FeeItems: []models.FeeItem{
			{Name: "Good Fee", Amount: 50},
			{Name: "Bad Fee", Amount: math.NaN()},
			{Name: "Worse Fee", Amount: math.Inf(1)},
		},
	}

	totals := service.CalculateTotals(plan)

	assert.Equal(t, 1000.0, totals.Tuition)
	assert.Equal(t, 50.0, totals.Others)
	assert.Equal(t, 1050.0, totals.Total)
	assert.False(t, math.IsNaN(totals.Total))
}

func TestFeePlanService_CalculateTotals_Idempotent(t *testing.T) {
	service := NewFeePlanService(nil)

	plan := &models.FeePlan{
		Units:           12,
		TuitionPerUnit:  350.25,
		RegistrationFee: 750,
		FeeItems: []models.FeeItem{
			{Name: "Laboratory Fee", Amount: 980.10},
		},
	}

	first := service.CalculateTotals(plan)
	second := service.CalculateTotals(plan)

	assert.Equal(t, first, second)
}

func TestFeePlanService_CalculateTotals_NegativeUnitsClampedToZero(t *testing.T) {
	service := NewFeePlanService(nil)

	plan := &models.FeePlan{
		Units:           -5,
		TuitionPerUnit:  206.00,
		RegistrationFee: 1000,
	}

	totals := service.CalculateTotals(plan)

	assert.Equal(t, 0.0, totals.Tuition)
	assert.Equal(t, 1000.0, totals.Total)
}

func TestNormalizeFeeItems_BlankNamesGetPlaceholder(t *testing.T) {
	items := normalizeFeeItems([]models.FeeItem{
		{Name: "", Amount: 100},
		{Name: "Library Fee", Amount: 200},
		{Name: "", Amount: 300},
	})

	assert.Equal(t, "Fee 1", items[0].Name)
	assert.Equal(t, "Library Fee", items[1].Name)
	assert.Equal(t, "Fee 3", items[2].Name)
}
