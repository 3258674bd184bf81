package hrtools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnualLeave(t *testing.T) {
	_, eligible := AnnualLeave(11, 3)
	assert.False(t, eligible)

	days, eligible := AnnualLeave(15, 3)
	assert.True(t, eligible)
	assert.Equal(t, 12, days)

	assert.Contains(t, FormatAnnualLeave(10, 2), "after completing one year")
	assert.Contains(t, FormatAnnualLeave(14, 2), "Available Leave: 8 days")
}

func TestLeaveEncashment(t *testing.T) {
	days, amount := LeaveEncashment(3, 800)
	assert.Equal(t, 3, days)
	assert.InDelta(t, 2400, amount, 1e-9)

	days, amount = LeaveEncashment(7, 800)
	assert.Equal(t, 4, days)
	assert.InDelta(t, 3200, amount, 1e-9)

	assert.Contains(t, FormatLeaveEncashment(7, 800), "Maximum 4 days per quarter")
}

func TestProvidentFund(t *testing.T) {
	_, _, eligible := ProvidentFund(2, 10000)
	assert.False(t, eligible)

	months, total, eligible := ProvidentFund(5, 10000)
	assert.True(t, eligible)
	assert.InDelta(t, 5, months, 1e-9)
	assert.InDelta(t, 50000, total, 1e-9)

	months, total, eligible = ProvidentFund(12, 15000)
	assert.True(t, eligible)
	assert.InDelta(t, 18, months, 1e-9)
	assert.InDelta(t, 12*1.5*15000, total, 1e-9)

	assert.Contains(t, FormatProvidentFund(2, 10000), "3 years of continuous service")
	assert.Contains(t, FormatProvidentFund(12, 15000), "1.5 months'")
}
