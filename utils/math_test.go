package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	assert.Equal(t, 33.33, Round(33.333333))
	assert.Equal(t, 33.34, Round(33.336))
	assert.Equal(t, 100.0, Round(100.004))
}

func TestSanitizeAmount(t *testing.T) {
	assert.Equal(t, 0.0, SanitizeAmount(math.NaN()))
	assert.Equal(t, 0.0, SanitizeAmount(math.Inf(1)))
	assert.Equal(t, 0.0, SanitizeAmount(math.Inf(-1)))
	assert.Equal(t, 250.75, SanitizeAmount(250.75))
}

func TestFloorZero(t *testing.T) {
	assert.Equal(t, 0.0, FloorZero(-100))
	assert.Equal(t, 0.0, FloorZero(0))
	assert.Equal(t, 42.5, FloorZero(42.5))
}

func TestIsTerminalSuccess(t *testing.T) {
	assert.True(t, IsTerminalSuccess(StatusCompleted))
	assert.True(t, IsTerminalSuccess(StatusSucceeded))
	assert.False(t, IsTerminalSuccess(StatusPending))
	assert.False(t, IsTerminalSuccess(StatusFailed))
	assert.False(t, IsTerminalSuccess(StatusCancelled))
}
