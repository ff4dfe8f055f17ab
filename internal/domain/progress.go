// Package domain holds the progression engine's types.
// The snapshot is the sole mutable entity — one per user, owned
// exclusively by the progress store. Everything else is read-only
// catalog data or derived values.
package domain

// XPPerLevel is the fixed XP threshold per level.
// level = floor(xp / XPPerLevel) + 1.
const XPPerLevel = 500

// DefaultWeeklyGoal is the number of training sessions per week a new
// player starts with.
const DefaultWeeklyGoal = 5

// ProgressSnapshot is the persisted per-user progression state.
// Dates are calendar date keys ("2006-01-02"); an empty string means
// "never". Sets are stored as string→bool maps so the JSON document
// stays flat and forward-compatible.
type ProgressSnapshot struct {
	XP    int `json:"xp"`
	Level int `json:"level"` // always floor(xp/XPPerLevel)+1

	Streak           int    `json:"streak"`
	LastTrainingDate string `json:"last_training_date"`

	CompletedDrills   map[string]bool    `json:"completed_drills"`
	CompletedWorkouts map[string]bool    `json:"completed_workouts"`
	EnrolledPrograms  map[string]bool    `json:"enrolled_programs"`
	ProgramProgress   map[string]float64 `json:"program_progress"`

	TotalTrainingMinutes int `json:"total_training_minutes"`
	DrillsCompletedToday int `json:"drills_completed_today"`

	WeeklyGoal       int             `json:"weekly_goal"`
	WeeklyProgress   int             `json:"weekly_progress"`
	WeeklyMinutes    int             `json:"weekly_minutes"`
	WeekStartDate    string          `json:"week_start_date"`
	SessionsThisWeek int             `json:"sessions_this_week"`
	SessionDates     map[string]bool `json:"session_dates"`

	AppOpenMinutesThisWeek int `json:"app_open_minutes_this_week"`
}

// DefaultSnapshot returns a fresh snapshot for a player with no history.
func DefaultSnapshot(weekStart string) ProgressSnapshot {
	return ProgressSnapshot{
		Level:             1,
		CompletedDrills:   map[string]bool{},
		CompletedWorkouts: map[string]bool{},
		EnrolledPrograms:  map[string]bool{},
		ProgramProgress:   map[string]float64{},
		WeeklyGoal:        DefaultWeeklyGoal,
		WeekStartDate:     weekStart,
		SessionDates:      map[string]bool{},
	}
}

// Clone returns a deep copy. Mutations work on a copy so a failed
// operation never leaves the held snapshot half-updated.
func (s ProgressSnapshot) Clone() ProgressSnapshot {
	out := s
	out.CompletedDrills = cloneBoolSet(s.CompletedDrills)
	out.CompletedWorkouts = cloneBoolSet(s.CompletedWorkouts)
	out.EnrolledPrograms = cloneBoolSet(s.EnrolledPrograms)
	out.SessionDates = cloneBoolSet(s.SessionDates)
	out.ProgramProgress = make(map[string]float64, len(s.ProgramProgress))
	for k, v := range s.ProgramProgress {
		out.ProgramProgress[k] = v
	}
	return out
}

func cloneBoolSet(in map[string]bool) map[string]bool {
	out := make(map[string]bool, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// CompletionResult is returned by drill and workout completion.
type CompletionResult struct {
	XPEarned  int  `json:"xp_earned"`
	LeveledUp bool `json:"leveled_up"`
	Level     int  `json:"level"`
	Streak    int  `json:"streak"`
}

// SkillProgress is the resolved mastery state for one skill path.
type SkillProgress struct {
	Skill           SkillCategory `json:"skill"`
	CurrentLevel    int           `json:"current_level"`
	ProgressPct     float64       `json:"progress_pct"`
	DrillsCompleted int           `json:"drills_completed"`
	TotalDrills     int           `json:"total_drills"`
}

// DailyWorkout is the recommended set of drills for one calendar day.
// Derived and ephemeral — never persisted, keyed by date.
type DailyWorkout struct {
	ID              string        `json:"id"`
	Date            string        `json:"date"`
	FocusArea       SkillCategory `json:"focus_area"`
	DrillIDs        []string      `json:"drill_ids"`
	DurationMinutes int           `json:"duration_minutes"`
	XPReward        int           `json:"xp_reward"`
}

// EnrolledProgram pairs a training program with the player's progress
// through it.
type EnrolledProgram struct {
	Program  Program `json:"program"`
	Progress float64 `json:"progress_pct"`
}
