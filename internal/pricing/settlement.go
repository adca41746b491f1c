package pricing

import (
	"fmt"
	"time"
)

func isWeekday(t time.Time) bool {
	return t.Weekday() != time.Saturday && t.Weekday() != time.Sunday
}

// CalculateSettlementDate rolls start forward by windowDays weekdays. Weekend
// days are neither counted nor landed on; there is no holiday calendar.
func CalculateSettlementDate(start time.Time, windowDays int) (time.Time, error) {
	if windowDays < 0 {
		return time.Time{}, fmt.Errorf("window of %d days: %w", windowDays, ErrInvalidMarketInput)
	}
	t := start
	for n := windowDays; n > 0; {
		t = t.AddDate(0, 0, 1)
		if isWeekday(t) {
			n--
		}
	}
	return t, nil
}

func calendarDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours() / 24)
}
