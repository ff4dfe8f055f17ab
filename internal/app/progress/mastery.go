package progress

import (
	"fmt"

	"github.com/strikerhq/striker/internal/domain"
)

// proLockThreshold: skill levels above this are reserved for
// subscribers. Pure business rule, independent of completion state.
const proLockThreshold = 2

// Resolver computes skill mastery state from the catalog's paths and a
// player's completed-drill set.
type Resolver struct {
	catalog domain.Catalog
}

// NewResolver creates a mastery resolver over the given catalog.
func NewResolver(catalog domain.Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// SkillProgress resolves the current unlocked level and completion
// ratio for one skill path.
//
// currentLevel is one past the last contiguously complete level from
// the start of the path — completing a later level out of order does
// not advance past an earlier incomplete one. ProgressPct is a coarse
// ratio of completed drills across the whole path, deliberately not
// gated by the contiguous-unlock rule.
func (r *Resolver) SkillProgress(skill domain.SkillCategory, completed map[string]bool) (domain.SkillProgress, error) {
	path := r.catalog.SkillPath(skill)
	if path == nil {
		return domain.SkillProgress{}, fmt.Errorf("%w: %s", domain.ErrSkillPathNotFound, skill)
	}

	current := 1
	for _, lvl := range path.Levels {
		if !levelComplete(lvl, completed) {
			break
		}
		current = lvl.Number + 1
	}

	done := 0
	for _, lvl := range path.Levels {
		for _, id := range lvl.DrillIDs {
			if completed[id] {
				done++
			}
		}
	}

	total := path.TotalDrills()
	pct := 0.0
	if total > 0 {
		pct = float64(done) / float64(total) * 100.0
	}

	return domain.SkillProgress{
		Skill:           skill,
		CurrentLevel:    current,
		ProgressPct:     pct,
		DrillsCompleted: done,
		TotalDrills:     total,
	}, nil
}

// AllSkillsProgress resolves every path in the catalog.
func (r *Resolver) AllSkillsProgress(completed map[string]bool) []domain.SkillProgress {
	paths := r.catalog.SkillPaths()
	out := make([]domain.SkillProgress, 0, len(paths))
	for _, p := range paths {
		sp, err := r.SkillProgress(p.Skill, completed)
		if err != nil {
			continue
		}
		out = append(out, sp)
	}
	return out
}

// IsSkillLevelUnlocked reports whether a level is reachable: level 1
// always is; level N needs every drill of level N-1 completed.
func (r *Resolver) IsSkillLevelUnlocked(skill domain.SkillCategory, level int, completed map[string]bool) (bool, error) {
	if level <= 1 {
		return true, nil
	}
	path := r.catalog.SkillPath(skill)
	if path == nil {
		return false, fmt.Errorf("%w: %s", domain.ErrSkillPathNotFound, skill)
	}
	for _, lvl := range path.Levels {
		if lvl.Number == level-1 {
			return levelComplete(lvl, completed), nil
		}
	}
	// Prior level not defined in the path — treat as locked.
	return false, nil
}

// IsLevelProLocked reports whether a skill level sits behind the pro
// subscription gate.
func IsLevelProLocked(level int) bool {
	return level > proLockThreshold
}

func levelComplete(lvl domain.SkillLevel, completed map[string]bool) bool {
	for _, id := range lvl.DrillIDs {
		if !completed[id] {
			return false
		}
	}
	return true
}
