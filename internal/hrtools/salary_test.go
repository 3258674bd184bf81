package hrtools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateSalaryBreakdown(t *testing.T) {
	b := CalculateSalaryBreakdown(50000)

	assert.InDelta(t, 15625, b.Basic, 1e-9)
	assert.InDelta(t, 15625, b.HouseRent, 1e-9)
	assert.InDelta(t, 9375, b.Medical, 1e-9)
	assert.InDelta(t, 5468.75, b.Transport, 1e-9)
	assert.InDelta(t, 2343.75, b.Mobile, 1e-9)
	assert.InDelta(t, 1562.5, b.Internet, 1e-9)

	assert.Contains(t, b.String(), "Basic Salary: 15,625 TK")
}

func TestEidBonus(t *testing.T) {
	assert.InDelta(t, 12500, EidBonus(25000, 8), 1e-9)
	assert.InDelta(t, 12500, EidBonus(25000, 6), 1e-9)

	// Prorated: 25% of gross scaled by months/6.
	assert.InDelta(t, 25000*0.25*4/6, EidBonus(25000, 4), 1e-9)

	assert.Contains(t, FormatEidBonus(25000, 8), "50% of gross salary")
	assert.Contains(t, FormatEidBonus(25000, 4), "Prorated for 4 months")
}

func TestLateDeductionDays(t *testing.T) {
	tests := []struct {
		lateDays int
		want     float64
	}{
		{0, 0},
		{2, 0},
		{3, 0.5},
		{4, 0.5},
		{5, 1},
		{7, 1},
		{8, 2},
		{10, 3},
		{13, 3.5},
		{15, 4},
		{17, 4},
		{18, 5},
		{25, 5},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, LateDeductionDays(tt.lateDays), 1e-9, "late days %d", tt.lateDays)
	}
}

func TestFormatLateDeduction(t *testing.T) {
	assert.Equal(t, "No deduction for 2 late days (less than 3 days).", FormatLateDeduction(2, 1000))
	assert.Contains(t, FormatLateDeduction(5, 1000), "Total Deduction: 1,000 TK")

	// Half-day tiers read as plain fractions, not money amounts.
	assert.Contains(t, FormatLateDeduction(3, 1000), "Days Deducted: 0.5")
	assert.NotContains(t, FormatLateDeduction(3, 1000), "Days Deducted: 0.50")
	assert.Contains(t, FormatLateDeduction(13, 1000), "Days Deducted: 3.5")
	assert.Contains(t, FormatLateDeduction(8, 1000), "Days Deducted: 2\n")
}

func TestLossHourDeduction(t *testing.T) {
	assert.InDelta(t, 1200, LossHourDeduction(15), 1e-9)
	assert.Contains(t, FormatLossHourDeduction(10), "Total Deduction: 800 TK")
	assert.Contains(t, FormatLossHourDeduction(2.5), "Loss Hours: 2.5\n")
}
