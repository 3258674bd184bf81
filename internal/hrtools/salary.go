package hrtools

import (
	"fmt"
	"sort"
	"strconv"
)

// Salary component rates published in the compensation policy. Basic is a
// fraction of gross; every allowance is a fraction of basic.
const (
	BasicRate     = 0.3125
	HouseRentRate = 1.0
	MedicalRate   = 0.6
	TransportRate = 0.35
	MobileRate    = 0.15
	InternetRate  = 0.10
)

type SalaryBreakdown struct {
	Gross     float64
	Basic     float64
	HouseRent float64
	Medical   float64
	Transport float64
	Mobile    float64
	Internet  float64
}

func CalculateSalaryBreakdown(gross float64) SalaryBreakdown {
	basic := gross * BasicRate
	return SalaryBreakdown{
		Gross:     gross,
		Basic:     basic,
		HouseRent: basic * HouseRentRate,
		Medical:   basic * MedicalRate,
		Transport: basic * TransportRate,
		Mobile:    basic * MobileRate,
		Internet:  basic * InternetRate,
	}
}

func (b SalaryBreakdown) Total() float64 {
	return b.Basic + b.HouseRent + b.Medical + b.Transport + b.Mobile + b.Internet
}

func (b SalaryBreakdown) String() string {
	return fmt.Sprintf(`Salary Breakdown for Gross Salary: %s TK

- Basic Salary: %s TK (31.25%% of Gross)
- House Rent Allowance: %s TK (100%% of Basic)
- Medical Allowance: %s TK (60%% of Basic)
- Transport Allowance: %s TK (35%% of Basic)
- Mobile Allowance: %s TK (15%% of Basic)
- Internet Allowance: %s TK (10%% of Basic)

Total: %s TK`,
		FormatNumber(b.Gross), FormatNumber(b.Basic), FormatNumber(b.HouseRent),
		FormatNumber(b.Medical), FormatNumber(b.Transport), FormatNumber(b.Mobile),
		FormatNumber(b.Internet), FormatNumber(b.Total()))
}

// EidBonus is 50% of gross for employees with at least 6 months of service,
// otherwise prorated at 25% of gross scaled by months served over 6.
func EidBonus(gross float64, monthsServed int) float64 {
	if monthsServed >= 6 {
		return gross * 0.5
	}
	return gross * 0.25 * float64(monthsServed) / 6
}

func FormatEidBonus(gross float64, monthsServed int) string {
	bonus := EidBonus(gross, monthsServed)
	if monthsServed >= 6 {
		return fmt.Sprintf("Eid Bonus: %s TK (50%% of gross salary for confirmed employees with 6+ months service)", FormatNumber(bonus))
	}
	return fmt.Sprintf("Eid Bonus: %s TK (Prorated for %d months of service)", FormatNumber(bonus), monthsServed)
}

// lateDeductionTiers maps a late-day threshold to the number of days' pay
// deducted. The highest threshold not exceeding the late-day count applies.
var lateDeductionTiers = map[int]float64{
	3:  0.5,
	5:  1,
	8:  2,
	10: 3,
	13: 3.5,
	15: 4,
	18: 5,
}

// LateDeductionDays returns how many days' pay are deducted for the given
// number of late days in a month. Fewer than 3 late days deduct nothing.
func LateDeductionDays(lateDays int) float64 {
	thresholds := make([]int, 0, len(lateDeductionTiers))
	for t := range lateDeductionTiers {
		thresholds = append(thresholds, t)
	}
	sort.Ints(thresholds)

	var days float64
	for _, t := range thresholds {
		if lateDays >= t {
			days = lateDeductionTiers[t]
		}
	}
	return days
}

func LateDeduction(lateDays int, dailySalary float64) float64 {
	return LateDeductionDays(lateDays) * dailySalary
}

func FormatLateDeduction(lateDays int, dailySalary float64) string {
	days := LateDeductionDays(lateDays)
	if days == 0 {
		return fmt.Sprintf("No deduction for %d late days (less than 3 days).", lateDays)
	}

	return fmt.Sprintf(`Late Deduction Calculation:
- Late Days: %d
- Days Deducted: %s
- Daily Salary: %s TK
- Total Deduction: %s TK`,
		lateDays, formatDayCount(days), FormatNumber(dailySalary), FormatNumber(days*dailySalary))
}

// formatDayCount renders day and hour counts plainly, so half-day tiers read
// "0.5" rather than the monetary "0.50".
func formatDayCount(days float64) string {
	return strconv.FormatFloat(days, 'f', -1, 64)
}

// LossHourRate is the deduction per unmet work hour in TK. Each employee is
// expected to generate 8 hours of work daily, any shortfall is a loss hour.
const LossHourRate = 80

func LossHourDeduction(lossHours float64) float64 {
	return lossHours * LossHourRate
}

func FormatLossHourDeduction(lossHours float64) string {
	return fmt.Sprintf(`Loss Hour Deduction:
- Loss Hours: %s
- Rate per Hour: %d TK
- Total Deduction: %s TK

Note: Each employee is expected to generate 8 hours of work daily. Any shortfall is considered a loss hour.`,
		formatDayCount(lossHours), LossHourRate, FormatNumber(LossHourDeduction(lossHours)))
}
