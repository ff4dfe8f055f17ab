package progress_test

import (
	"testing"
	"time"

	"github.com/strikerhq/striker/internal/app/progress"
)

func TestWeekStart(t *testing.T) {
	cases := []struct {
		day  string // weekday label for failure messages
		t    time.Time
		want string
	}{
		{"monday", time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC), "2025-01-06"},
		{"wednesday", time.Date(2025, 1, 8, 23, 59, 0, 0, time.UTC), "2025-01-06"},
		{"saturday", time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC), "2025-01-06"},
		{"sunday", time.Date(2025, 1, 12, 12, 0, 0, 0, time.UTC), "2025-01-06"},
		{"next monday", time.Date(2025, 1, 13, 1, 0, 0, 0, time.UTC), "2025-01-13"},
		{"across month", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), "2025-02-24"},
	}
	for _, c := range cases {
		if got := progress.WeekStart(c.t); got != c.want {
			t.Errorf("%s: WeekStart = %s, want %s", c.day, got, c.want)
		}
	}
}

func TestDateKey(t *testing.T) {
	d := time.Date(2025, 7, 4, 23, 59, 59, 0, time.UTC)
	if got := progress.DateKey(d); got != "2025-07-04" {
		t.Errorf("DateKey = %s, want 2025-07-04", got)
	}
}
