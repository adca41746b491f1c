package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// weekdaysBetween counts weekdays in (start, end].
func weekdaysBetween(start, end time.Time) int {
	n := 0
	for t := start.AddDate(0, 0, 1); !t.After(end); t = t.AddDate(0, 0, 1) {
		if isWeekday(t) {
			n++
		}
	}
	return n
}

func TestCalculateSettlementDate(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		window int
		want   time.Time
	}{
		{"friday plus one is monday", date(2024, time.March, 8), 1, date(2024, time.March, 11)},
		{"monday plus four is friday", date(2024, time.March, 4), 4, date(2024, time.March, 8)},
		{"monday plus five is next monday", date(2024, time.March, 4), 5, date(2024, time.March, 11)},
		{"saturday start plus one is monday", date(2024, time.March, 9), 1, date(2024, time.March, 11)},
		{"sunday start plus one is monday", date(2024, time.March, 10), 1, date(2024, time.March, 11)},
		{"zero window keeps start", date(2024, time.March, 6), 0, date(2024, time.March, 6)},
		{"crosses year end", date(2024, time.December, 27), 3, date(2025, time.January, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateSettlementDate(tt.start, tt.window)
			require.NoError(t, err)
			if !got.Equal(tt.want) {
				t.Errorf("CalculateSettlementDate() = %s, want %s", got.Format(time.DateOnly), tt.want.Format(time.DateOnly))
			}
		})
	}
}

func TestCalculateSettlementDate_WeekdayProperties(t *testing.T) {
	start := date(2025, time.January, 1)
	for offset := 0; offset < 14; offset++ {
		s := start.AddDate(0, 0, offset)
		for window := 1; window <= 130; window++ {
			got, err := CalculateSettlementDate(s, window)
			require.NoError(t, err)
			if !isWeekday(got) {
				t.Fatalf("start %s window %d landed on %s", s.Format(time.DateOnly), window, got.Weekday())
			}
			if n := weekdaysBetween(s, got); n != window {
				t.Fatalf("start %s window %d consumed %d weekdays", s.Format(time.DateOnly), window, n)
			}
		}
	}
}

func TestCalculateSettlementDate_NegativeWindow(t *testing.T) {
	_, err := CalculateSettlementDate(date(2024, time.March, 8), -1)
	require.ErrorIs(t, err, ErrInvalidMarketInput)
}
