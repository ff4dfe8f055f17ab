package progress

import "github.com/strikerhq/striker/internal/domain"

// Pure XP→level math. Levels use a fixed linear threshold
// (domain.XPPerLevel) rather than a curve — a player always knows the
// next level is the same distance away.

// LevelForXP returns the level for a cumulative XP amount.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/domain.XPPerLevel + 1
}

// XPToNextLevel returns how much XP remains until the next level.
func XPToNextLevel(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return domain.XPPerLevel - xp%domain.XPPerLevel
}

// LevelProgressPct returns progress through the current level (0–100).
func LevelProgressPct(xp int) float64 {
	if xp < 0 {
		xp = 0
	}
	return float64(xp%domain.XPPerLevel) / float64(domain.XPPerLevel) * 100.0
}
