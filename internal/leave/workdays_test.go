package leave

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func halfDayOf(p HalfDayPeriod) *HalfDayPeriod {
	return &p
}

func TestWorkingDays(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		halfDay *HalfDayPeriod
		want    string
	}{
		{"monday to friday", "2024-01-01", "2024-01-05", nil, "5"},
		{"weekend only", "2024-01-06", "2024-01-07", nil, "0"},
		{"single monday half day", "2024-01-01", "2024-01-01", halfDayOf(HalfDayMorning), "0.5"},
		{"single monday afternoon", "2024-01-01", "2024-01-01", halfDayOf(HalfDayAfternoon), "0.5"},
		{"single weekday", "2024-01-03", "2024-01-03", nil, "1"},
		{"single saturday", "2024-01-06", "2024-01-06", nil, "0"},
		{"single sunday half day", "2024-01-07", "2024-01-07", halfDayOf(HalfDayMorning), "0"},
		{"starts and ends on weekend", "2024-01-06", "2024-01-14", nil, "5"},
		{"friday to monday", "2024-01-05", "2024-01-08", nil, "2"},
		{"two full weeks", "2024-01-01", "2024-01-14", nil, "10"},
		{"across leap day", "2024-02-26", "2024-03-01", nil, "5"},
		{"across year end", "2024-12-30", "2025-01-03", nil, "5"},
		{"end before start", "2024-01-05", "2024-01-01", nil, "0"},
		{"multi day ignores half day", "2024-01-01", "2024-01-05", halfDayOf(HalfDayMorning), "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WorkingDays(day(tt.start), day(tt.end), tt.halfDay)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestWorkingDays_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)
	end := time.Date(2024, 1, 5, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, "5", WorkingDays(start, end, nil).String())
	assert.Equal(t, "0.5", WorkingDays(start, start.Add(-23*time.Hour), halfDayOf(HalfDayMorning)).String())
}

func TestWorkingDays_WeekendRangesAreZero(t *testing.T) {
	saturday := day("2024-01-06")
	for w := 0; w < 104; w++ {
		sat := saturday.AddDate(0, 0, 7*w)
		sun := sat.AddDate(0, 0, 1)
		assert.True(t, WorkingDays(sat, sun, nil).IsZero())
		assert.True(t, WorkingDays(sat, sat, nil).IsZero())
		assert.True(t, WorkingDays(sun, sun, halfDayOf(HalfDayAfternoon)).IsZero())
	}
}

func TestWorkingDays_WeekdayRuns(t *testing.T) {
	monday := day("2024-01-01")
	for w := 0; w < 52; w++ {
		mon := monday.AddDate(0, 0, 7*w)
		for n := 1; n <= 5; n++ {
			got := WorkingDays(mon, mon.AddDate(0, 0, n-1), nil)
			assert.Equal(t, int64(n), got.IntPart())
		}
	}
}

func TestWorkingDays_FullWeeks(t *testing.T) {
	origin := day("2024-01-01")
	for offset := 0; offset < 7; offset++ {
		start := origin.AddDate(0, 0, offset)
		for n := 1; n <= 60; n++ {
			end := start.AddDate(0, 0, 7*n-1)
			assert.Equal(t, int64(5*n), WorkingDays(start, end, nil).IntPart(), "start %s weeks %d", start.Format("2006-01-02"), n)
		}
	}
}

func TestWorkingDays_SingleDays(t *testing.T) {
	d := day("2024-01-01")
	for i := 0; i < 366; i++ {
		cur := d.AddDate(0, 0, i)
		weekend := cur.Weekday() == time.Saturday || cur.Weekday() == time.Sunday

		full := WorkingDays(cur, cur, nil)
		half := WorkingDays(cur, cur, halfDayOf(HalfDayMorning))
		if weekend {
			assert.True(t, full.IsZero())
			assert.True(t, half.IsZero())
		} else {
			assert.Equal(t, "1", full.String())
			assert.Equal(t, "0.5", half.String())
		}
	}
}

func TestWorkingDays_SplitsAdd(t *testing.T) {
	start := day("2024-03-01")
	for span := 1; span < 40; span++ {
		end := start.AddDate(0, 0, span)
		total := WorkingDays(start, end, nil)
		for cut := 0; cut < span; cut++ {
			mid := start.AddDate(0, 0, cut)
			left := WorkingDays(start, mid, nil)
			right := WorkingDays(mid.AddDate(0, 0, 1), end, nil)
			assert.True(t, total.Equal(left.Add(right)))
		}
	}
}
