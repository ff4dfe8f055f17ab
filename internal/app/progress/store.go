package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/strikerhq/striker/internal/domain"
	"github.com/strikerhq/striker/internal/infra/metrics"
)

// NowFunc supplies the clock. Tests inject fixed times.
type NowFunc func() time.Time

// Store is the single write surface for a player's progression state.
// It holds the current snapshot in memory, serializes every mutation
// through one mutex, and persists each new snapshot with a
// compare-and-swap write. Two mutation calls can never capture the
// same "previous" snapshot, so lost updates cannot occur.
//
// A failed storage write is logged and swallowed: the in-memory
// snapshot remains the session's source of truth and durability
// resumes on the next successful write.
type Store struct {
	mu sync.Mutex

	userID   string
	catalog  domain.Catalog
	states   domain.StateStore
	now      NowFunc
	profile  Profile
	resolver *Resolver
	gen      *Generator

	snapshot domain.ProgressSnapshot
	revision int64
}

// NewStore loads (or initializes) the player's snapshot and returns a
// ready store. A corrupt persisted document is replaced by the default
// snapshot rather than failing the load.
func NewStore(userID string, catalog domain.Catalog, states domain.StateStore, profile Profile, now NowFunc) (*Store, error) {
	if now == nil {
		now = time.Now
	}
	st := &Store{
		userID:   userID,
		catalog:  catalog,
		states:   states,
		now:      now,
		profile:  profile,
		resolver: NewResolver(catalog),
		gen:      NewGenerator(catalog, userID),
	}

	doc, rev, err := states.LoadState(userID)
	if err != nil {
		return nil, fmt.Errorf("load progress state: %w", err)
	}
	st.revision = rev

	n := st.now()
	snap := domain.DefaultSnapshot(WeekStart(n))
	if doc != nil {
		var loaded domain.ProgressSnapshot
		if uerr := json.Unmarshal(doc, &loaded); uerr != nil {
			log.Printf("[progress] malformed persisted state, starting fresh: %v", uerr)
		} else {
			snap = loaded
		}
	}
	st.snapshot = Normalize(snap, n)
	// The configured weekly goal wins over whatever the snapshot holds,
	// so editing the profile takes effect on the next start.
	if profile.WeeklyGoal > 0 {
		st.snapshot.WeeklyGoal = profile.WeeklyGoal
	}
	metrics.CurrentStreak.Set(float64(st.snapshot.Streak))
	return st, nil
}

// ─── Queries ────────────────────────────────────────────────────────────────
// Queries return copies; callers can never reach the held snapshot.

// Snapshot returns the current normalized snapshot.
func (st *Store) Snapshot() domain.ProgressSnapshot {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.snapshot.Clone()
}

// XPToNextLevel returns XP remaining until the next level.
func (st *Store) XPToNextLevel() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return XPToNextLevel(st.snapshot.XP)
}

// LevelProgressPct returns progress through the current level (0–100).
func (st *Store) LevelProgressPct() float64 {
	st.mu.Lock()
	defer st.mu.Unlock()
	return LevelProgressPct(st.snapshot.XP)
}

// IsDrillCompleted reports whether the drill was ever completed.
func (st *Store) IsDrillCompleted(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.snapshot.CompletedDrills[id]
}

// SkillProgress resolves mastery state for one skill path.
func (st *Store) SkillProgress(skill domain.SkillCategory) (domain.SkillProgress, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.resolver.SkillProgress(skill, st.snapshot.CompletedDrills)
}

// AllSkillsProgress resolves mastery state for every path.
func (st *Store) AllSkillsProgress() []domain.SkillProgress {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.resolver.AllSkillsProgress(st.snapshot.CompletedDrills)
}

// IsSkillLevelUnlocked reports whether a skill level's gate is open.
func (st *Store) IsSkillLevelUnlocked(skill domain.SkillCategory, level int) (bool, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.resolver.IsSkillLevelUnlocked(skill, level, st.snapshot.CompletedDrills)
}

// EnrolledProgramDetails returns each enrolled program with progress.
func (st *Store) EnrolledProgramDetails() []domain.EnrolledProgram {
	st.mu.Lock()
	defer st.mu.Unlock()

	var out []domain.EnrolledProgram
	for id := range st.snapshot.EnrolledPrograms {
		prog := st.catalog.ProgramByID(id)
		if prog == nil {
			continue
		}
		out = append(out, domain.EnrolledProgram{
			Program:  *prog,
			Progress: st.snapshot.ProgramProgress[id],
		})
	}
	return out
}

// DailyWorkout returns today's recommended workout. Derived, never
// persisted; the same day and player always get the same workout.
func (st *Store) DailyWorkout() domain.DailyWorkout {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.gen.DailyWorkout(st.now(), st.profile, st.snapshot.CompletedDrills)
}

// ─── Mutations ──────────────────────────────────────────────────────────────

// CompleteDrill records a finished drill: XP, streak, daily and weekly
// counters, drill membership, and program progress. XP is granted on
// every call, including repeats of an already-completed drill; only
// the unlock-relevant membership set is deduplicated.
func (st *Store) CompleteDrill(drillID string, durationMinutes int) (domain.CompletionResult, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	drill := st.catalog.DrillByID(drillID)
	if drill == nil {
		return domain.CompletionResult{}, fmt.Errorf("%w: %s", domain.ErrDrillNotFound, drillID)
	}
	if durationMinutes < 0 {
		return domain.CompletionResult{}, domain.ErrNegativeDuration
	}

	now := st.now()
	s := Normalize(st.snapshot, now)
	isNewDay := s.LastTrainingDate != DateKey(now)

	res := applySession(&s, now, drill.XPReward, durationMinutes)

	s.CompletedDrills[drillID] = true
	if isNewDay {
		s.DrillsCompletedToday = 1
	} else {
		s.DrillsCompletedToday++
	}
	recomputeProgramProgress(&s, st.catalog)

	st.commit(s)
	metrics.DrillsCompleted.WithLabelValues(string(drill.Category)).Inc()
	return res, nil
}

// CompleteWorkout records a finished workout. Same day, streak, and
// level mechanics as a drill, but only workout membership is recorded;
// per-drill bookkeeping is untouched.
func (st *Store) CompleteWorkout(workoutID string, durationMinutes, xpReward int) (domain.CompletionResult, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if durationMinutes < 0 {
		return domain.CompletionResult{}, domain.ErrNegativeDuration
	}
	if xpReward < 0 {
		xpReward = 0 // xp is monotonic
	}

	now := st.now()
	s := Normalize(st.snapshot, now)

	res := applySession(&s, now, xpReward, durationMinutes)
	s.CompletedWorkouts[workoutID] = true

	st.commit(s)
	metrics.WorkoutsCompleted.Inc()
	return res, nil
}

// EnrollProgram enrolls the player in a training program. No-op if
// already enrolled.
func (st *Store) EnrollProgram(programID string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.catalog.ProgramByID(programID) == nil {
		return fmt.Errorf("%w: %s", domain.ErrProgramNotFound, programID)
	}
	if st.snapshot.EnrolledPrograms[programID] {
		return nil
	}

	s := Normalize(st.snapshot, st.now())
	s.EnrolledPrograms[programID] = true
	s.ProgramProgress[programID] = 0
	st.commit(s)
	return nil
}

// UnenrollProgram removes a program enrollment. No-op if not enrolled.
func (st *Store) UnenrollProgram(programID string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if !st.snapshot.EnrolledPrograms[programID] {
		return nil
	}

	s := Normalize(st.snapshot, st.now())
	delete(s.EnrolledPrograms, programID)
	delete(s.ProgramProgress, programID)
	st.commit(s)
	return nil
}

// ResetWeeklyProgress zeroes all weekly counters and re-anchors the
// week to the current Monday.
func (st *Store) ResetWeeklyProgress() {
	st.mu.Lock()
	defer st.mu.Unlock()

	s := Normalize(st.snapshot, st.now())
	s.WeeklyMinutes = 0
	s.WeeklyProgress = 0
	s.SessionDates = map[string]bool{}
	s.SessionsThisWeek = 0
	s.AppOpenMinutesThisWeek = 0
	s.WeekStartDate = WeekStart(st.now())
	st.commit(s)
}

// ResetAllProgress discards every trace of history and reinitializes
// the snapshot to defaults with a freshly computed week start.
func (st *Store) ResetAllProgress() {
	st.mu.Lock()
	defer st.mu.Unlock()

	if err := st.states.DeleteState(st.userID); err != nil {
		metrics.PersistFailures.Inc()
		log.Printf("[progress] discard persisted state: %v", err)
	}
	st.revision = 0
	st.commit(domain.DefaultSnapshot(WeekStart(st.now())))
}

// RecordAppOpenMinutes accumulates foreground app-open time into the
// weekly counter. Shares the store's serialization discipline with all
// other mutations.
func (st *Store) RecordAppOpenMinutes(minutes int) {
	if minutes <= 0 {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	s := Normalize(st.snapshot, st.now())
	s.AppOpenMinutesThisWeek += minutes
	st.commit(s)
}

// RunAppOpenTracker accumulates app-open minutes once per interval
// until the context is cancelled. Run it in a goroutine.
func (st *Store) RunAppOpenTracker(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			st.RecordAppOpenMinutes(int(interval.Minutes()))
		}
	}
}

// ─── Internals ──────────────────────────────────────────────────────────────

// applySession applies the mechanics shared by drill and workout
// completion: XP and level, streak extension on a new day, training
// totals, session dates, and weekly counters.
func applySession(s *domain.ProgressSnapshot, now time.Time, xpReward, durationMinutes int) domain.CompletionResult {
	today := DateKey(now)
	isNewDay := s.LastTrainingDate != today

	oldLevel := s.Level
	s.XP += xpReward
	s.Level = LevelForXP(s.XP)
	if isNewDay {
		s.Streak++
	}
	s.LastTrainingDate = today
	s.TotalTrainingMinutes += durationMinutes

	s.SessionDates[today] = true
	s.SessionsThisWeek = len(s.SessionDates)
	s.WeeklyMinutes += durationMinutes
	s.WeeklyProgress++

	leveled := s.Level > oldLevel
	metrics.XPEarned.Add(float64(xpReward))
	metrics.TrainingMinutes.Add(float64(durationMinutes))
	if leveled {
		metrics.LevelUps.Inc()
	}
	metrics.CurrentStreak.Set(float64(s.Streak))

	return domain.CompletionResult{
		XPEarned:  xpReward,
		LeveledUp: leveled,
		Level:     s.Level,
		Streak:    s.Streak,
	}
}

// recomputeProgramProgress refreshes every enrolled program's
// completion percentage from the drill membership set.
func recomputeProgramProgress(s *domain.ProgressSnapshot, catalog domain.Catalog) {
	for id := range s.EnrolledPrograms {
		prog := catalog.ProgramByID(id)
		if prog == nil {
			continue
		}
		ids := prog.DrillIDs()
		if len(ids) == 0 {
			s.ProgramProgress[id] = 0
			continue
		}
		done := 0
		for _, drillID := range ids {
			if s.CompletedDrills[drillID] {
				done++
			}
		}
		s.ProgramProgress[id] = float64(done) / float64(len(ids)) * 100.0
	}
}

// commit makes s the held snapshot and persists it. The in-memory
// update happens first so reads within the same session observe the
// new state even if the write fails.
func (st *Store) commit(s domain.ProgressSnapshot) {
	st.snapshot = s

	doc, err := json.Marshal(s)
	if err != nil {
		metrics.PersistFailures.Inc()
		log.Printf("[progress] encode snapshot: %v", err)
		return
	}

	rev, err := st.states.SaveState(st.userID, doc, st.revision)
	if err != nil {
		metrics.PersistFailures.Inc()
		log.Printf("[progress] persist snapshot (state kept in memory): %v", err)
		return
	}
	st.revision = rev
}
