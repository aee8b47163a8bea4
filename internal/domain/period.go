package domain

import (
	"fmt"
	"strings"
	"time"
)

// Period is a requested historical time window
type Period int

const (
	PeriodOneDay Period = iota
	PeriodSevenDays
	PeriodOneMonth
	PeriodYearToDate
	PeriodAll
)

func (p Period) String() string {
	switch p {
	case PeriodOneDay:
		return "1d"
	case PeriodSevenDays:
		return "7d"
	case PeriodOneMonth:
		return "1m"
	case PeriodYearToDate:
		return "ytd"
	case PeriodAll:
		return "all"
	default:
		return fmt.Sprintf("Period(%d)", int(p))
	}
}

// MarshalText encodes the period as its token
func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ParsePeriod parses a period token from the closed set {1d, 7d, 1m, ytd, all}
func ParsePeriod(token string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "1d":
		return PeriodOneDay, nil
	case "7d":
		return PeriodSevenDays, nil
	case "1m":
		return PeriodOneMonth, nil
	case "ytd":
		return PeriodYearToDate, nil
	case "all":
		return PeriodAll, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPeriod, token)
	}
}

// Start returns the inclusive lower bound of the window ending at now.
// The second result is false when the window is unbounded.
func (p Period) Start(now time.Time) (time.Time, bool, error) {
	switch p {
	case PeriodOneDay:
		return now.Add(-24 * time.Hour), true, nil
	case PeriodSevenDays:
		return now.Add(-7 * 24 * time.Hour), true, nil
	case PeriodOneMonth:
		return monthBefore(now), true, nil
	case PeriodYearToDate:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), true, nil
	case PeriodAll:
		return time.Time{}, false, nil
	default:
		return time.Time{}, false, fmt.Errorf("%w: %s", ErrInvalidPeriod, p)
	}
}

// monthBefore steps back one calendar month, clamping the day to the length of
// the previous month (Mar 31 gives Feb 28 or 29, not Mar 2 or 3)
func monthBefore(t time.Time) time.Time {
	year, month, day := t.Date()
	prevYear, prevMonth, _ := time.Date(year, month-1, 1, 0, 0, 0, 0, t.Location()).Date()
	if last := daysIn(prevYear, prevMonth, t.Location()); day > last {
		day = last
	}
	return time.Date(prevYear, prevMonth, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	// Day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
