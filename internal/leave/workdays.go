package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

var halfDay = decimal.New(5, -1)

// WorkingDays counts Monday to Friday between start and end inclusive. Time
// of day is ignored. A half-day period only applies to a single working day,
// which then counts 0.5.
func WorkingDays(start, end time.Time, period *HalfDayPeriod) decimal.Decimal {
	from, to := dateOf(start), dateOf(end)
	if to.Before(from) {
		return decimal.Zero
	}

	if period != nil && from.Equal(to) {
		if isWorkingDay(from) {
			return halfDay
		}
		return decimal.Zero
	}

	var n int64
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if isWorkingDay(d) {
			n++
		}
	}
	return decimal.NewFromInt(n)
}

func isWorkingDay(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
