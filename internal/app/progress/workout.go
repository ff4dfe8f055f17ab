package progress

import (
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/strikerhq/striker/internal/domain"
)

// Daily workout sizing.
const (
	workoutMaxDrills = 4
	// workoutBonus is the flat XP bonus for finishing the whole workout.
	workoutBonus = 50
	// freshPoolMin: prefer drills the player has never done, but only
	// when enough of them remain to fill a meaningful session.
	freshPoolMin = 3
)

// Profile holds the personalization inputs supplied by the profile
// provider. The engine reads them and never writes them.
type Profile struct {
	Position   domain.Position
	Goals      []domain.SkillCategory
	Tier       domain.ExperienceTier
	WeeklyGoal int // sessions per week; 0 keeps the default
}

// Generator derives the recommended workout for a calendar day.
// Selection is seeded by date + user id, so the "daily" workout is
// stable for the whole day and reproducible in tests.
type Generator struct {
	catalog domain.Catalog
	userID  string
}

// NewGenerator creates a daily workout generator.
func NewGenerator(catalog domain.Catalog, userID string) *Generator {
	return &Generator{catalog: catalog, userID: userID}
}

// DailyWorkout builds the recommendation for the day containing now.
// Not persisted — recompute whenever the inputs change.
func (g *Generator) DailyWorkout(now time.Time, profile Profile, completed map[string]bool) domain.DailyWorkout {
	date := DateKey(now)
	focus := g.focusArea(now, profile.Goals)

	var pool []domain.Drill
	for _, d := range g.catalog.Drills() {
		if d.Category != focus && d.Category != domain.SkillFitness {
			continue
		}
		if !d.SuitsPosition(profile.Position) {
			continue
		}
		if !profile.Tier.Allows(d.Difficulty) {
			continue
		}
		pool = append(pool, d)
	}

	var fresh []domain.Drill
	for _, d := range pool {
		if !completed[d.ID] {
			fresh = append(fresh, d)
		}
	}
	// Once the fresh pool runs dry, re-serving completed drills beats
	// an empty workout.
	if len(fresh) >= freshPoolMin {
		pool = fresh
	}

	rng := rand.New(rand.NewSource(workoutSeed(date, g.userID)))
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > workoutMaxDrills {
		pool = pool[:workoutMaxDrills]
	}

	w := domain.DailyWorkout{
		ID:        "workout-" + date,
		Date:      date,
		FocusArea: focus,
	}
	for _, d := range pool {
		w.DrillIDs = append(w.DrillIDs, d.ID)
		w.DurationMinutes += d.DurationMinutes
		w.XPReward += d.XPReward
	}
	w.XPReward += workoutBonus
	return w
}

// focusArea picks the day's training focus: the player's first goal if
// set, otherwise a weekday rotation through the six categories.
// Sunday is a rest day and always trains fitness.
func (g *Generator) focusArea(now time.Time, goals []domain.SkillCategory) domain.SkillCategory {
	if now.Weekday() == time.Sunday {
		return domain.SkillFitness
	}
	if len(goals) > 0 {
		return goals[0]
	}
	return domain.SkillCategories[int(now.Weekday())%len(domain.SkillCategories)]
}

// workoutSeed hashes date + user id into a deterministic RNG seed.
func workoutSeed(date, userID string) int64 {
	h := fnv.New64a()
	h.Write([]byte(date))
	h.Write([]byte("|"))
	h.Write([]byte(userID))
	return int64(h.Sum64())
}
