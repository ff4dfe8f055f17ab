package progress

import (
	"time"

	"github.com/strikerhq/striker/internal/domain"
)

// Normalize brings a persisted snapshot up to date with "now".
// It is pure and idempotent: Normalize(Normalize(s, now), now) equals
// Normalize(s, now). Invoked at load time and at the start of every
// mutation, so a process that lives across a day or week boundary
// still applies the resets.
//
// Rules, in order:
//  1. Backfill fields absent from older persisted documents.
//  2. A missed day breaks the streak.
//  3. A new day zeroes the daily drill counter.
//  4. A new week zeroes all weekly counters.
//  5. sessionsThisWeek is recomputed from sessionDates unconditionally.
func Normalize(s domain.ProgressSnapshot, now time.Time) domain.ProgressSnapshot {
	out := s.Clone()

	// Older documents may predate some fields.
	if out.CompletedDrills == nil {
		out.CompletedDrills = map[string]bool{}
	}
	if out.CompletedWorkouts == nil {
		out.CompletedWorkouts = map[string]bool{}
	}
	if out.EnrolledPrograms == nil {
		out.EnrolledPrograms = map[string]bool{}
	}
	if out.ProgramProgress == nil {
		out.ProgramProgress = map[string]float64{}
	}
	if out.SessionDates == nil {
		out.SessionDates = map[string]bool{}
	}
	if out.WeeklyGoal == 0 {
		out.WeeklyGoal = domain.DefaultWeeklyGoal
	}
	if out.XP < 0 {
		out.XP = 0
	}

	today := DateKey(now)
	yesterday := DateKey(now.AddDate(0, 0, -1))

	if out.LastTrainingDate != today && out.LastTrainingDate != yesterday {
		out.Streak = 0
	}
	if out.LastTrainingDate != today {
		out.DrillsCompletedToday = 0
	}

	if week := WeekStart(now); out.WeekStartDate != week {
		out.WeeklyMinutes = 0
		out.WeeklyProgress = 0
		out.SessionDates = map[string]bool{}
		out.AppOpenMinutesThisWeek = 0
		out.WeekStartDate = week
	}

	// Self-healing against any drift between the counter and the set.
	out.SessionsThisWeek = len(out.SessionDates)

	// Level is derived, never trusted from storage.
	out.Level = LevelForXP(out.XP)

	return out
}
