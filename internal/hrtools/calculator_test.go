package hrtools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"50000 * 0.3125", 15625},
		{"1800 * 5", 9000},
		{"16 / 4", 4},
		{"50000 * 0.5", 25000},
		{"15000 + 2500 + 1800", 19300},
		{"(30000 + 5000) / 2", 17500},
		{"10 - 4 * 2", 2},
		{"-5 + 10", 5},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Evaluate(tt.expr)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	_, err := Evaluate("")
	assert.ErrorIs(t, err, ErrEmptyExpression)

	_, err = Evaluate("10 / 0")
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = Evaluate("salary * 2")
	assert.ErrorIs(t, err, ErrInvalidCharacters)

	_, err = Evaluate("1 + ")
	assert.ErrorIs(t, err, ErrInvalidExpression)

	_, err = Evaluate("(1 + 2")
	assert.ErrorIs(t, err, ErrInvalidExpression)
}

func TestCalculate(t *testing.T) {
	assert.Equal(t, "Calculation: 50000 * 0.3125 = 15,625", Calculate("50000 * 0.3125"))
	assert.Equal(t, "Error: Cannot divide by zero.", Calculate("5 / 0"))
	assert.Equal(t, "Error: Only basic arithmetic operations (+, -, *, /, .) and numbers are allowed.", Calculate("drop table"))
	assert.Contains(t, Calculate(""), "Please provide a mathematical expression")
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "15,625", FormatNumber(15625))
	assert.Equal(t, "1,234,567", FormatNumber(1234567))
	assert.Equal(t, "123", FormatNumber(123))
	assert.Equal(t, "4,687.50", FormatNumber(4687.5))
	assert.Equal(t, "-1,000", FormatNumber(-1000))
}
