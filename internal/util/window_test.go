package util

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestWindowAvg(t *testing.T) {
	// GIVEN
	window := CreateRollingWindow(4)

	// WHEN
	FillWindow(window, 4, 50)
	window.Append(70)

	// THEN
	assert.Equal(t, 55.0, GetWindowAvg(window))
}
