package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanNumericValue(t *testing.T) {
	assert.Equal(t, 0.0, CleanNumericValue(""))
	assert.Equal(t, 0.0, CleanNumericValue("0"))
	assert.Equal(t, 1234.5, CleanNumericValue("€1,234.50"))
	assert.Equal(t, -1234.0, CleanNumericValue("(1,234)"))
	assert.Equal(t, 0.0, CleanNumericValue("n/a"))
}

func TestCleanNumericValueStripsSymbols(t *testing.T) {
	assert.Equal(t, 50000.0, CleanNumericValue("$ 50,000"))
	assert.Equal(t, 19.0, CleanNumericValue("19%"))
	assert.Equal(t, -750.25, CleanNumericValue("-750.25"))
	assert.Equal(t, 2000.0, CleanNumericValue("  € 2,000  "))
}

func TestCleanNumericValueFirstNumberWins(t *testing.T) {
	assert.Equal(t, 100.0, CleanNumericValue("100and200"))
}
