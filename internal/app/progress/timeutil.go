// Package progress implements the player progression engine:
// XP and leveling, day streaks, weekly session accounting, skill
// mastery gates, and the daily recommended workout.
// Design rule: all time-sensitive logic goes through the calendar
// helpers here so day and week boundaries have exactly one definition.
package progress

import "time"

// dateLayout is the calendar date key format used everywhere a date is
// persisted or compared.
const dateLayout = "2006-01-02"

// DateKey returns the calendar date key for t.
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// WeekStart returns the date key of the Monday of the week containing t.
// Sunday counts as day 7, so weeks run Monday–Sunday.
func WeekStart(t time.Time) string {
	day := int(t.Weekday())
	if day == 0 {
		day = 7
	}
	return DateKey(t.AddDate(0, 0, -((day + 6) % 7)))
}
