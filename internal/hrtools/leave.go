package hrtools

import "fmt"

const (
	AnnualLeaveDays      = 16
	LeaveDaysPerQuarter  = 4
	MaxEncashablePerQtr  = 4
	MinServiceMonthsPTO  = 12
	MinServiceYearsPF    = 3
	PFStandardMultiplier = 1.0 // months of basic per year, 3-10 years
	PFSeniorMultiplier   = 1.5 // months of basic per year, over 10 years
)

// AnnualLeave returns the leave days available after the given number of
// completed quarters. Employees become eligible after one year of service.
func AnnualLeave(monthsServed, quartersCompleted int) (int, bool) {
	if monthsServed < MinServiceMonthsPTO {
		return 0, false
	}
	return quartersCompleted * LeaveDaysPerQuarter, true
}

func FormatAnnualLeave(monthsServed, quartersCompleted int) string {
	available, eligible := AnnualLeave(monthsServed, quartersCompleted)
	if !eligible {
		return "Annual leave is only available after completing one year of service."
	}

	return fmt.Sprintf(`Annual Leave Entitlement:
- Total Annual Leave: %d days (after 1 year)
- Leave per Quarter: %d days
- Quarters Completed: %d
- Available Leave: %d days

Note: Up to %d days of unused leave per quarter can be encashed.`,
		AnnualLeaveDays, LeaveDaysPerQuarter, quartersCompleted, available, MaxEncashablePerQtr)
}

// LeaveEncashment returns the encashable day count (capped per quarter) and
// the payout at the daily wage rate.
func LeaveEncashment(unusedLeaveDays int, dailyWage float64) (int, float64) {
	days := unusedLeaveDays
	if days > MaxEncashablePerQtr {
		days = MaxEncashablePerQtr
	}
	return days, float64(days) * dailyWage
}

func FormatLeaveEncashment(unusedLeaveDays int, dailyWage float64) string {
	days, amount := LeaveEncashment(unusedLeaveDays, dailyWage)

	capped := ""
	if unusedLeaveDays > MaxEncashablePerQtr {
		capped = fmt.Sprintf(" (Maximum %d days per quarter can be encashed)", MaxEncashablePerQtr)
	}

	return fmt.Sprintf(`Leave Encashment Calculation:
- Unused Leave Days: %d
- Encashable Days: %d%s
- Daily Wage: %s TK
- Encashment Amount: %s TK`,
		unusedLeaveDays, days, capped, FormatNumber(dailyWage), FormatNumber(amount))
}

// ProvidentFund returns the months of basic salary the employee is entitled
// to and the resulting amount. Employees with fewer than 3 years of service
// are not eligible; 3-10 years earn one month's basic per year, beyond 10
// years the multiplier rises to 1.5 months per year.
func ProvidentFund(yearsOfService int, basicSalary float64) (months float64, total float64, eligible bool) {
	if yearsOfService < MinServiceYearsPF {
		return 0, 0, false
	}
	if yearsOfService <= 10 {
		months = float64(yearsOfService) * PFStandardMultiplier
	} else {
		months = float64(yearsOfService) * PFSeniorMultiplier
	}
	return months, basicSalary * months, true
}

func FormatProvidentFund(yearsOfService int, basicSalary float64) string {
	months, total, eligible := ProvidentFund(yearsOfService, basicSalary)
	if !eligible {
		return "Provident fund is only available after completing 3 years of continuous service."
	}

	rate := "(1 month's basic salary per year for 3-10 years of service)"
	if yearsOfService > 10 {
		rate = "(1.5 months' basic salary per year for over 10 years of service)"
	}

	return fmt.Sprintf(`Provident Fund Calculation:
- Years of Service: %d
- Basic Salary: %s TK
- Entitlement: %s months of basic salary
- Total Amount: %s TK

%s`,
		yearsOfService, FormatNumber(basicSalary), FormatNumber(months), FormatNumber(total), rate)
}
