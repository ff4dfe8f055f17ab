package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/strikerhq/striker/internal/app/progress"
	"github.com/strikerhq/striker/internal/domain"
)

// ─── Query Surface ──────────────────────────────────────────────────────────

// --- /api/progress (snapshot + derived level values) ---

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Snapshot()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"snapshot":           snap,
		"xp_to_next_level":   s.store.XPToNextLevel(),
		"level_progress_pct": s.store.LevelProgressPct(),
	})
}

// --- /api/skills (per-path mastery for every skill) ---

func (s *Server) handleAllSkills(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"skills": s.store.AllSkillsProgress(),
	})
}

func (s *Server) handleSkill(w http.ResponseWriter, r *http.Request) {
	skill := domain.SkillCategory(chi.URLParam(r, "skill"))
	sp, err := s.store.SkillProgress(skill)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, sp)
}

// --- /api/skills/{skill}/levels/{level} (unlock and pro-lock gates) ---

func (s *Server) handleSkillLevel(w http.ResponseWriter, r *http.Request) {
	skill := domain.SkillCategory(chi.URLParam(r, "skill"))
	level, err := strconv.Atoi(chi.URLParam(r, "level"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "level must be an integer")
		return
	}

	unlocked, err := s.store.IsSkillLevelUnlocked(skill, level)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"skill":      skill,
		"level":      level,
		"unlocked":   unlocked,
		"pro_locked": progress.IsLevelProLocked(level),
	})
}

// --- /api/workout/today ---

func (s *Server) handleDailyWorkout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.DailyWorkout())
}

// --- /api/drills (catalog, with completion flags) ---

func (s *Server) handleListDrills(w http.ResponseWriter, r *http.Request) {
	type drillEntry struct {
		domain.Drill
		Completed bool `json:"completed"`
	}

	drills := s.catalog.Drills()
	out := make([]drillEntry, len(drills))
	for i, d := range drills {
		out[i] = drillEntry{Drill: d, Completed: s.store.IsDrillCompleted(d.ID)}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"drills": out,
	})
}

// --- /api/programs ---

func (s *Server) handleListPrograms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"programs": s.catalog.Programs(),
	})
}

func (s *Server) handleEnrolledPrograms(w http.ResponseWriter, r *http.Request) {
	enrolled := s.store.EnrolledProgramDetails()
	if enrolled == nil {
		enrolled = []domain.EnrolledProgram{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"programs": enrolled,
	})
}

// ─── Mutation Surface ───────────────────────────────────────────────────────

// --- /api/drills/{id}/complete ---

type completeDrillRequest struct {
	DurationMinutes int `json:"duration_minutes"`
}

func (s *Server) handleCompleteDrill(w http.ResponseWriter, r *http.Request) {
	var req completeDrillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.store.CompleteDrill(chi.URLParam(r, "id"), req.DurationMinutes)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// --- /api/workouts/complete ---

type completeWorkoutRequest struct {
	WorkoutID       string `json:"workout_id"`
	DurationMinutes int    `json:"duration_minutes"`
	XPReward        int    `json:"xp_reward"`
}

func (s *Server) handleCompleteWorkout(w http.ResponseWriter, r *http.Request) {
	var req completeWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.WorkoutID == "" {
		writeError(w, http.StatusBadRequest, "workout_id is required")
		return
	}

	res, err := s.store.CompleteWorkout(req.WorkoutID, req.DurationMinutes, req.XPReward)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// --- /api/programs/{id}/enroll ---

func (s *Server) handleEnroll(w http.ResponseWriter, r *http.Request) {
	if err := s.store.EnrollProgram(chi.URLParam(r, "id")); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleUnenroll(w http.ResponseWriter, r *http.Request) {
	if err := s.store.UnenrollProgram(chi.URLParam(r, "id")); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusOK)
}

// --- /api/progress/reset-week and /api/progress/reset ---

func (s *Server) handleResetWeek(w http.ResponseWriter, r *http.Request) {
	s.store.ResetWeeklyProgress()
	writeJSON(w, http.StatusOK, map[string]string{"status": "week reset"})
}

func (s *Server) handleResetAll(w http.ResponseWriter, r *http.Request) {
	s.store.ResetAllProgress()
	writeJSON(w, http.StatusOK, map[string]string{"status": "progress reset"})
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrDrillNotFound),
		errors.Is(err, domain.ErrProgramNotFound),
		errors.Is(err, domain.ErrSkillPathNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNegativeDuration):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
