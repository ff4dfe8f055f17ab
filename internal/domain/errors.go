package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency.

var (
	// Catalog lookup errors
	ErrDrillNotFound     = errors.New("drill not found in catalog")
	ErrProgramNotFound   = errors.New("training program not found in catalog")
	ErrSkillPathNotFound = errors.New("skill mastery path not found in catalog")

	// Mutation input errors
	ErrNegativeDuration = errors.New("duration must not be negative")

	// Persistence errors
	ErrRevisionConflict = errors.New("snapshot revision conflict")
)
