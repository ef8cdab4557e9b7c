package money

import (
	"time"

	"github.com/shopspring/decimal"
)

// Round normalizes a money value to two decimal places. Every computed
// amount goes through this before it is stored or returned, so rounding
// never accumulates across reads.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// HoursBetween returns the fractional hours from start to end, floored
// at zero for inverted inputs.
func HoursBetween(start, end time.Time) decimal.Decimal {
	hours := end.Sub(start).Hours()
	if hours < 0 {
		hours = 0
	}
	return decimal.NewFromFloat(hours)
}

// TimeCharge prices an interval at the given hourly rate, rounded.
func TimeCharge(start, end time.Time, hourlyRate decimal.Decimal) decimal.Decimal {
	return Round(HoursBetween(start, end).Mul(hourlyRate))
}
