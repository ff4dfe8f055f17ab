package progress_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/strikerhq/striker/internal/app/progress"
	"github.com/strikerhq/striker/internal/domain"
	"github.com/strikerhq/striker/internal/infra/catalog"
)

func TestWorkout_DeterministicPerDay(t *testing.T) {
	g := progress.NewGenerator(catalog.New(), "user-1")
	day := time.Date(2025, 1, 8, 7, 0, 0, 0, time.UTC) // Wednesday
	p := progress.Profile{Tier: domain.TierAdvanced}

	a := g.DailyWorkout(day, p, map[string]bool{})
	b := g.DailyWorkout(day.Add(14*time.Hour), p, map[string]bool{}) // same calendar day
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same day produced different workouts:\n%+v\n%+v", a, b)
	}
	if a.ID != "workout-2025-01-08" || a.Date != "2025-01-08" {
		t.Errorf("id/date = %s/%s", a.ID, a.Date)
	}
}

func TestWorkout_GoalDrivesFocus(t *testing.T) {
	g := progress.NewGenerator(catalog.New(), "user-1")
	day := time.Date(2025, 1, 8, 7, 0, 0, 0, time.UTC) // Wednesday
	p := progress.Profile{
		Goals: []domain.SkillCategory{domain.SkillDefending, domain.SkillPassing},
		Tier:  domain.TierAdvanced,
	}

	w := g.DailyWorkout(day, p, map[string]bool{})
	if w.FocusArea != domain.SkillDefending {
		t.Errorf("focus = %s, want defending (first goal)", w.FocusArea)
	}
}

func TestWorkout_SundayIsFitness(t *testing.T) {
	g := progress.NewGenerator(catalog.New(), "user-1")
	sunday := time.Date(2025, 1, 12, 10, 0, 0, 0, time.UTC)
	p := progress.Profile{
		Goals: []domain.SkillCategory{domain.SkillShooting},
		Tier:  domain.TierAdvanced,
	}

	w := g.DailyWorkout(sunday, p, map[string]bool{})
	if w.FocusArea != domain.SkillFitness {
		t.Errorf("focus = %s, want fitness on sunday even with goals set", w.FocusArea)
	}
}

func TestWorkout_WeekdayRotationWithoutGoals(t *testing.T) {
	g := progress.NewGenerator(catalog.New(), "user-1")
	p := progress.Profile{Tier: domain.TierAdvanced}

	// Monday=1 → passing, Wednesday=3 → ball_control.
	mon := g.DailyWorkout(time.Date(2025, 1, 6, 7, 0, 0, 0, time.UTC), p, nil)
	if mon.FocusArea != domain.SkillPassing {
		t.Errorf("monday focus = %s, want passing", mon.FocusArea)
	}
	wed := g.DailyWorkout(time.Date(2025, 1, 8, 7, 0, 0, 0, time.UTC), p, nil)
	if wed.FocusArea != domain.SkillBallControl {
		t.Errorf("wednesday focus = %s, want ball_control", wed.FocusArea)
	}
}

func TestWorkout_RespectsTier(t *testing.T) {
	lib := catalog.New()
	g := progress.NewGenerator(lib, "user-1")
	day := time.Date(2025, 1, 7, 7, 0, 0, 0, time.UTC)
	p := progress.Profile{
		Goals: []domain.SkillCategory{domain.SkillShooting},
		Tier:  domain.TierBeginner,
	}

	w := g.DailyWorkout(day, p, map[string]bool{})
	for _, id := range w.DrillIDs {
		d := lib.DrillByID(id)
		if d == nil {
			t.Fatalf("workout references unknown drill %s", id)
		}
		if d.Difficulty == domain.DifficultyHard || d.Difficulty == domain.DifficultyElite {
			t.Errorf("beginner workout includes %s drill %s", d.Difficulty, id)
		}
	}
}

func TestWorkout_RespectsPosition(t *testing.T) {
	lib := catalog.New()
	g := progress.NewGenerator(lib, "user-1")
	day := time.Date(2025, 1, 7, 7, 0, 0, 0, time.UTC)
	p := progress.Profile{
		Position: domain.PositionGoalkeeper,
		Goals:    []domain.SkillCategory{domain.SkillShooting},
		Tier:     domain.TierAdvanced,
	}

	w := g.DailyWorkout(day, p, map[string]bool{})
	for _, id := range w.DrillIDs {
		if !lib.DrillByID(id).SuitsPosition(domain.PositionGoalkeeper) {
			t.Errorf("drill %s does not suit a goalkeeper", id)
		}
	}
}

func TestWorkout_SizeAndReward(t *testing.T) {
	lib := catalog.New()
	g := progress.NewGenerator(lib, "user-1")
	day := time.Date(2025, 1, 7, 7, 0, 0, 0, time.UTC)
	p := progress.Profile{Tier: domain.TierAdvanced}

	w := g.DailyWorkout(day, p, map[string]bool{})
	if len(w.DrillIDs) == 0 || len(w.DrillIDs) > 4 {
		t.Fatalf("workout has %d drills, want 1-4", len(w.DrillIDs))
	}

	xp, mins := 0, 0
	for _, id := range w.DrillIDs {
		d := lib.DrillByID(id)
		xp += d.XPReward
		mins += d.DurationMinutes
	}
	if w.XPReward != xp+50 {
		t.Errorf("xpReward = %d, want drill sum %d plus completion bonus 50", w.XPReward, xp)
	}
	if w.DurationMinutes != mins {
		t.Errorf("durationMinutes = %d, want %d", w.DurationMinutes, mins)
	}
}

func TestWorkout_PrefersFreshDrills(t *testing.T) {
	lib := catalog.New()
	g := progress.NewGenerator(lib, "user-1")
	day := time.Date(2025, 1, 7, 7, 0, 0, 0, time.UTC)
	p := progress.Profile{
		Goals: []domain.SkillCategory{domain.SkillShooting},
		Tier:  domain.TierAdvanced,
	}

	completed := map[string]bool{"shoot-1": true, "shoot-11": true}
	w := g.DailyWorkout(day, p, completed)
	for _, id := range w.DrillIDs {
		if completed[id] {
			t.Errorf("fresh drills remain but workout re-serves completed %s", id)
		}
	}
}

func TestWorkout_ExhaustedPoolReservesCompleted(t *testing.T) {
	lib := catalog.New()
	g := progress.NewGenerator(lib, "user-1")
	day := time.Date(2025, 1, 7, 7, 0, 0, 0, time.UTC)
	p := progress.Profile{
		Goals: []domain.SkillCategory{domain.SkillShooting},
		Tier:  domain.TierAdvanced,
	}

	// Everything in the focus pool done: the workout must not be empty.
	completed := map[string]bool{}
	for _, d := range lib.Drills() {
		completed[d.ID] = true
	}
	w := g.DailyWorkout(day, p, completed)
	if len(w.DrillIDs) == 0 {
		t.Error("workout empty after the player finished every drill")
	}
}
