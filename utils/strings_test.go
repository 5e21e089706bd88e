package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "₱12044.97", FormatMoney(12044.97))
	assert.Equal(t, "₱0.00", FormatMoney(0))
	assert.Equal(t, "₱1000.00", FormatMoney(1000))
	assert.Equal(t, "₱4944.00", FormatMoney(4944))
}

func TestFormatMoney_NeverDisplaysNaN(t *testing.T) {
	assert.Equal(t, "₱0.00", FormatMoney(math.NaN()))
	assert.Equal(t, "₱0.00", FormatMoney(math.Inf(1)))
	assert.Equal(t, "₱0.00", FormatMoney(math.Inf(-1)))
}

func TestFormatMoney_NegativeRendersAsZero(t *testing.T) {
	assert.Equal(t, "₱0.00", FormatMoney(-125.50))
	assert.Equal(t, "₱0.00", FormatMoney(math.Copysign(0, -1)))
}

func TestFormatCategoryForDisplay(t *testing.T) {
	assert.Equal(t, "Tuition", FormatCategoryForDisplay("tuition"))
	assert.Equal(t, "Miscellaneous", FormatCategoryForDisplay(" MISCELLANEOUS "))
	assert.Equal(t, "", FormatCategoryForDisplay(""))
}

func TestNormalizeCategories(t *testing.T) {
	assert.Equal(t, []string{"tuition", "library"}, NormalizeCategories([]string{"Tuition", " LIBRARY "}))
}
