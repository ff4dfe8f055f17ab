package domain

// ─── Service Interfaces ─────────────────────────────────────────────────────
// These interfaces define boundaries between layers.
// Infrastructure implements them; the progress engine depends on them.

// Catalog is the read-only content catalog: drills, skill mastery
// paths, and training programs. The engine never mutates it.
type Catalog interface {
	// DrillByID returns the drill, or nil if unknown.
	DrillByID(id string) *Drill

	// Drills returns every drill in the catalog.
	Drills() []Drill

	// SkillPath returns the mastery path for a category, or nil.
	SkillPath(skill SkillCategory) *SkillPath

	// SkillPaths returns every mastery path.
	SkillPaths() []SkillPath

	// ProgramByID returns the training program, or nil if unknown.
	ProgramByID(id string) *Program

	// Programs returns every training program.
	Programs() []Program
}

// StateStore persists one JSON snapshot document per user with a
// revision counter for compare-and-swap writes.
type StateStore interface {
	// LoadState returns the raw document and its revision.
	// A user with no persisted state yields (nil, 0, nil).
	LoadState(userID string) (doc []byte, revision int64, err error)

	// SaveState writes doc if the stored revision still equals
	// expected, returning the new revision. A stale expected revision
	// yields ErrRevisionConflict and no write.
	SaveState(userID string, doc []byte, expected int64) (int64, error)

	// DeleteState discards the user's persisted snapshot.
	DeleteState(userID string) error
}
