package domain

// ─── Skill Categories ───────────────────────────────────────────────────────

// SkillCategory is one of the six training categories.
type SkillCategory string

const (
	SkillShooting    SkillCategory = "shooting"
	SkillPassing     SkillCategory = "passing"
	SkillDribbling   SkillCategory = "dribbling"
	SkillBallControl SkillCategory = "ball_control"
	SkillDefending   SkillCategory = "defending"
	SkillFitness     SkillCategory = "fitness"
)

// SkillCategories lists all six categories in rotation order.
// The daily workout generator walks this list by weekday.
var SkillCategories = []SkillCategory{
	SkillShooting,
	SkillPassing,
	SkillDribbling,
	SkillBallControl,
	SkillDefending,
	SkillFitness,
}

// ─── Difficulty / Experience Tiers ──────────────────────────────────────────

// Difficulty is a drill's difficulty tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyElite  Difficulty = "elite"
)

// ExperienceTier is the player's self-reported skill level, supplied by
// the profile. It caps which drill difficulties the generator serves.
type ExperienceTier string

const (
	TierBeginner     ExperienceTier = "beginner"
	TierIntermediate ExperienceTier = "intermediate"
	TierAdvanced     ExperienceTier = "advanced"
)

// Allows reports whether a drill of the given difficulty is suitable
// for this tier. Beginners are kept off hard and elite drills,
// intermediates off elite. An empty tier allows everything.
func (t ExperienceTier) Allows(d Difficulty) bool {
	switch t {
	case TierBeginner:
		return d != DifficultyHard && d != DifficultyElite
	case TierIntermediate:
		return d != DifficultyElite
	default:
		return true
	}
}

// ─── Positions ──────────────────────────────────────────────────────────────

// Position is a playing position used to filter drills.
type Position string

const (
	PositionGoalkeeper Position = "goalkeeper"
	PositionDefender   Position = "defender"
	PositionMidfielder Position = "midfielder"
	PositionForward    Position = "forward"
)

// ─── Catalog Reference Data ─────────────────────────────────────────────────

// Drill is a single training exercise. Read-only reference data.
type Drill struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Category        SkillCategory `json:"category"`
	XPReward        int           `json:"xp_reward"`
	DurationMinutes int           `json:"duration_minutes"`
	Difficulty      Difficulty    `json:"difficulty"`
	Positions       []Position    `json:"positions"` // empty = all positions
}

// SuitsPosition reports whether the drill fits the given position.
// A drill with no position list suits everyone; an empty position
// matches every drill.
func (d Drill) SuitsPosition(p Position) bool {
	if p == "" || len(d.Positions) == 0 {
		return true
	}
	for _, pos := range d.Positions {
		if pos == p {
			return true
		}
	}
	return false
}

// SkillLevel is one gated stage within a mastery path.
type SkillLevel struct {
	Number       int      `json:"number"`
	DrillIDs     []string `json:"drill_ids"`
	XPRequired   int      `json:"xp_required"`
	UnlockReward string   `json:"unlock_reward"`
}

// SkillPath is the ordered mastery ladder for one category.
type SkillPath struct {
	Skill  SkillCategory `json:"skill"`
	Levels []SkillLevel  `json:"levels"`
}

// TotalDrills returns the number of drills across all levels.
func (p SkillPath) TotalDrills() int {
	n := 0
	for _, lvl := range p.Levels {
		n += len(lvl.DrillIDs)
	}
	return n
}

// ProgramPhase is a week-scoped subset of drills within a program.
type ProgramPhase struct {
	Week     int      `json:"week"`
	Name     string   `json:"name"`
	DrillIDs []string `json:"drill_ids"`
}

// Program is a long-form training program.
type Program struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Phases []ProgramPhase `json:"phases"`
}

// DrillIDs returns every drill across all phases, deduplicated,
// preserving first-seen order.
func (p Program) DrillIDs() []string {
	seen := make(map[string]bool)
	var out []string
	for _, phase := range p.Phases {
		for _, id := range phase.DrillIDs {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out
}
