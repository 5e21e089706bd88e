package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildReceiptItems_SingleCategory(t *testing.T) {
	items := BuildReceiptItems(5000, []string{"tuition"})

	assert.Len(t, items, 1)
	assert.Equal(t, "Tuition", items[0].Label)
	assert.Equal(t, 5000.0, items[0].Amount)
}

func TestBuildReceiptItems_EvenSplit(t *testing.T) {
	items := BuildReceiptItems(1000, []string{"tuition", "library"})

	assert.Len(t, items, 2)
	assert.Equal(t, "Tuition", items[0].Label)
	assert.Equal(t, 500.0, items[0].Amount)
	assert.Equal(t, "Library", items[1].Label)
	assert.Equal(t, 500.0, items[1].Amount)
}

func TestBuildReceiptItems_NoCategoriesDefaultsToMiscellaneous(t *testing.T) {
	items := BuildReceiptItems(750, nil)

	assert.Len(t, items, 1)
	assert.Equal(t, "Miscellaneous", items[0].Label)
	assert.Equal(t, 750.0, items[0].Amount)
}

func TestBuildReceiptItems_LineItemsSumToPaymentAmount(t *testing.T) {
	// 100 across three categories does not divide evenly; the remainder
	// lands on the last line so the sum still matches the payment
	items := BuildReceiptItems(100, []string{"tuition", "library", "laboratory"})

	assert.Len(t, items, 3)
	var sum float64
	for _, item := range items {
		sum += item.Amount
	}
	assert.InDelta(t, 100.0, sum, 0.0001)
	assert.Equal(t, 33.33, items[0].Amount)
	assert.Equal(t, 33.33, items[1].Amount)
	assert.Equal(t, 33.34, items[2].Amount)
}

func TestBuildReceiptItems_MixedCaseCategoriesNormalized(t *testing.T) {
	items := BuildReceiptItems(400, []string{"TUITION", " Library "})

	assert.Equal(t, "Tuition", items[0].Label)
	assert.Equal(t, "Library", items[1].Label)
}
