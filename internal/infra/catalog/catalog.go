// Package catalog provides the built-in content catalog: drills,
// skill mastery paths, and training programs. This is the app's
// "drill phonebook" — static reference data the engine reads and
// never mutates.
package catalog

import "github.com/strikerhq/striker/internal/domain"

// Library implements domain.Catalog over the built-in content.
type Library struct {
	drills   []domain.Drill
	byID     map[string]*domain.Drill
	paths    []domain.SkillPath
	bySkill  map[domain.SkillCategory]*domain.SkillPath
	programs []domain.Program
	byProgID map[string]*domain.Program
}

// New builds the library with lookup indexes.
func New() *Library {
	l := &Library{
		drills:   drills,
		paths:    skillPaths,
		programs: programs,
		byID:     make(map[string]*domain.Drill, len(drills)),
		bySkill:  make(map[domain.SkillCategory]*domain.SkillPath, len(skillPaths)),
		byProgID: make(map[string]*domain.Program, len(programs)),
	}
	for i := range l.drills {
		l.byID[l.drills[i].ID] = &l.drills[i]
	}
	for i := range l.paths {
		l.bySkill[l.paths[i].Skill] = &l.paths[i]
	}
	for i := range l.programs {
		l.byProgID[l.programs[i].ID] = &l.programs[i]
	}
	return l
}

// DrillByID returns the drill, or nil if unknown.
func (l *Library) DrillByID(id string) *domain.Drill { return l.byID[id] }

// Drills returns every drill in the catalog.
func (l *Library) Drills() []domain.Drill {
	out := make([]domain.Drill, len(l.drills))
	copy(out, l.drills)
	return out
}

// SkillPath returns the mastery path for a category, or nil.
func (l *Library) SkillPath(skill domain.SkillCategory) *domain.SkillPath {
	return l.bySkill[skill]
}

// SkillPaths returns every mastery path.
func (l *Library) SkillPaths() []domain.SkillPath {
	out := make([]domain.SkillPath, len(l.paths))
	copy(out, l.paths)
	return out
}

// ProgramByID returns the training program, or nil if unknown.
func (l *Library) ProgramByID(id string) *domain.Program { return l.byProgID[id] }

// Programs returns every training program.
func (l *Library) Programs() []domain.Program {
	out := make([]domain.Program, len(l.programs))
	copy(out, l.programs)
	return out
}
