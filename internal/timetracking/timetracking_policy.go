package timetracking

import (
	"math"
	"time"
)

const (
	DefaultRegularHours    = 8.0
	DefaultFixedBreakHours = 1.0
)

// OvertimePolicy holds the baseline that overtime is measured against.
// FixedBreakHours is a flat deduction; recorded break minutes do not enter
// the overtime formula.
type OvertimePolicy struct {
	RegularHours    float64
	FixedBreakHours float64
}

func DefaultPolicy() OvertimePolicy {
	return OvertimePolicy{RegularHours: DefaultRegularHours, FixedBreakHours: DefaultFixedBreakHours}
}

type Totals struct {
	TotalHours    float64
	OvertimeHours float64
}

// ComputeTotals returns the raw wall-clock hours between clock-in and
// clock-out and the overtime beyond the policy baseline, both rounded to
// two decimals.
func ComputeTotals(clockIn, clockOut time.Time, p OvertimePolicy) Totals {
	elapsed := clockOut.Sub(clockIn)
	if elapsed < 0 {
		elapsed = 0
	}
	total := round2(elapsed.Hours())
	return Totals{
		TotalHours:    total,
		OvertimeHours: round2(math.Max(0, total-p.RegularHours-p.FixedBreakHours)),
	}
}

// DurationMinutes rounds the interval to the nearest whole minute.
func DurationMinutes(start, end time.Time) int {
	d := end.Sub(start)
	if d < 0 {
		return 0
	}
	return int(math.Round(d.Minutes()))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
