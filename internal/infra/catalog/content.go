package catalog

import "github.com/strikerhq/striker/internal/domain"

// Built-in content. Drill IDs are stable — persisted snapshots
// reference them, so renumbering breaks mastery history.

var drills = []domain.Drill{
	// ── Shooting ───────────────────────────────────────────────────
	{ID: "shoot-1", Name: "Wall Finish", Category: domain.SkillShooting, XPReward: 50,
		DurationMinutes: 10, Difficulty: domain.DifficultyEasy},
	{ID: "shoot-11", Name: "Near-Post Placement", Category: domain.SkillShooting, XPReward: 50,
		DurationMinutes: 10, Difficulty: domain.DifficultyEasy,
		Positions: []domain.Position{domain.PositionForward, domain.PositionMidfielder}},
	{ID: "shoot-14", Name: "First-Time Strikes", Category: domain.SkillShooting, XPReward: 60,
		DurationMinutes: 12, Difficulty: domain.DifficultyEasy},
	{ID: "shoot-2", Name: "Driven Finish", Category: domain.SkillShooting, XPReward: 70,
		DurationMinutes: 12, Difficulty: domain.DifficultyMedium,
		Positions: []domain.Position{domain.PositionForward, domain.PositionMidfielder}},
	{ID: "shoot-12", Name: "Cutback Finishing", Category: domain.SkillShooting, XPReward: 75,
		DurationMinutes: 15, Difficulty: domain.DifficultyMedium},
	{ID: "shoot-3", Name: "Volley Technique", Category: domain.SkillShooting, XPReward: 90,
		DurationMinutes: 15, Difficulty: domain.DifficultyHard},
	{ID: "shoot-16", Name: "Knuckleball Free Kicks", Category: domain.SkillShooting, XPReward: 120,
		DurationMinutes: 20, Difficulty: domain.DifficultyElite},

	// ── Passing ────────────────────────────────────────────────────
	{ID: "pass-1", Name: "Wall Pass Tempo", Category: domain.SkillPassing, XPReward: 40,
		DurationMinutes: 8, Difficulty: domain.DifficultyEasy},
	{ID: "pass-2", Name: "Two-Touch Passing", Category: domain.SkillPassing, XPReward: 45,
		DurationMinutes: 10, Difficulty: domain.DifficultyEasy},
	{ID: "pass-3", Name: "Driven Long Balls", Category: domain.SkillPassing, XPReward: 70,
		DurationMinutes: 15, Difficulty: domain.DifficultyMedium,
		Positions: []domain.Position{domain.PositionDefender, domain.PositionMidfielder, domain.PositionGoalkeeper}},
	{ID: "pass-11", Name: "Weighted Through Balls", Category: domain.SkillPassing, XPReward: 75,
		DurationMinutes: 12, Difficulty: domain.DifficultyMedium,
		Positions: []domain.Position{domain.PositionMidfielder, domain.PositionForward}},
	{ID: "pass-4", Name: "Switch-of-Play", Category: domain.SkillPassing, XPReward: 90,
		DurationMinutes: 15, Difficulty: domain.DifficultyHard},
	{ID: "pass-12", Name: "Disguised Passing", Category: domain.SkillPassing, XPReward: 110,
		DurationMinutes: 15, Difficulty: domain.DifficultyElite},

	// ── Dribbling ──────────────────────────────────────────────────
	{ID: "drib-1", Name: "Cone Slalom", Category: domain.SkillDribbling, XPReward: 40,
		DurationMinutes: 8, Difficulty: domain.DifficultyEasy},
	{ID: "drib-2", Name: "Close-Control Box", Category: domain.SkillDribbling, XPReward: 45,
		DurationMinutes: 10, Difficulty: domain.DifficultyEasy},
	{ID: "drib-11", Name: "Change-of-Pace Runs", Category: domain.SkillDribbling, XPReward: 65,
		DurationMinutes: 10, Difficulty: domain.DifficultyMedium},
	{ID: "drib-3", Name: "1v1 Feints", Category: domain.SkillDribbling, XPReward: 70,
		DurationMinutes: 12, Difficulty: domain.DifficultyMedium,
		Positions: []domain.Position{domain.PositionForward, domain.PositionMidfielder}},
	{ID: "drib-12", Name: "Tight-Space Escapes", Category: domain.SkillDribbling, XPReward: 95,
		DurationMinutes: 12, Difficulty: domain.DifficultyHard},
	{ID: "drib-13", Name: "Elastico Chains", Category: domain.SkillDribbling, XPReward: 115,
		DurationMinutes: 15, Difficulty: domain.DifficultyElite},

	// ── Ball Control ───────────────────────────────────────────────
	{ID: "touch-1", Name: "Juggling Ladder", Category: domain.SkillBallControl, XPReward: 35,
		DurationMinutes: 8, Difficulty: domain.DifficultyEasy},
	{ID: "touch-2", Name: "First-Touch Wall Work", Category: domain.SkillBallControl, XPReward: 45,
		DurationMinutes: 10, Difficulty: domain.DifficultyEasy},
	{ID: "touch-11", Name: "Aerial Control", Category: domain.SkillBallControl, XPReward: 65,
		DurationMinutes: 12, Difficulty: domain.DifficultyMedium},
	{ID: "touch-3", Name: "Directional First Touch", Category: domain.SkillBallControl, XPReward: 70,
		DurationMinutes: 10, Difficulty: domain.DifficultyMedium},
	{ID: "touch-12", Name: "Half-Volley Cushioning", Category: domain.SkillBallControl, XPReward: 90,
		DurationMinutes: 12, Difficulty: domain.DifficultyHard},

	// ── Defending ──────────────────────────────────────────────────
	{ID: "def-1", Name: "Shadow Defending", Category: domain.SkillDefending, XPReward: 40,
		DurationMinutes: 10, Difficulty: domain.DifficultyEasy},
	{ID: "def-2", Name: "Jockeying Footwork", Category: domain.SkillDefending, XPReward: 45,
		DurationMinutes: 10, Difficulty: domain.DifficultyEasy,
		Positions: []domain.Position{domain.PositionDefender, domain.PositionMidfielder}},
	{ID: "def-11", Name: "Tackle Timing", Category: domain.SkillDefending, XPReward: 65,
		DurationMinutes: 12, Difficulty: domain.DifficultyMedium},
	{ID: "def-3", Name: "Recovery Runs", Category: domain.SkillDefending, XPReward: 60,
		DurationMinutes: 12, Difficulty: domain.DifficultyMedium},
	{ID: "def-12", Name: "Defending the Channel", Category: domain.SkillDefending, XPReward: 90,
		DurationMinutes: 15, Difficulty: domain.DifficultyHard,
		Positions: []domain.Position{domain.PositionDefender}},

	// ── Fitness ────────────────────────────────────────────────────
	{ID: "fit-1", Name: "Interval Runs", Category: domain.SkillFitness, XPReward: 40,
		DurationMinutes: 15, Difficulty: domain.DifficultyEasy},
	{ID: "fit-2", Name: "Core Circuit", Category: domain.SkillFitness, XPReward: 35,
		DurationMinutes: 10, Difficulty: domain.DifficultyEasy},
	{ID: "fit-3", Name: "Agility Ladder", Category: domain.SkillFitness, XPReward: 45,
		DurationMinutes: 10, Difficulty: domain.DifficultyEasy},
	{ID: "fit-11", Name: "Plyometric Set", Category: domain.SkillFitness, XPReward: 60,
		DurationMinutes: 15, Difficulty: domain.DifficultyMedium},
	{ID: "fit-12", Name: "Sprint Repeats", Category: domain.SkillFitness, XPReward: 70,
		DurationMinutes: 15, Difficulty: domain.DifficultyMedium},
	{ID: "fit-13", Name: "Beep Test Build", Category: domain.SkillFitness, XPReward: 95,
		DurationMinutes: 20, Difficulty: domain.DifficultyHard},
}

var skillPaths = []domain.SkillPath{
	{Skill: domain.SkillShooting, Levels: []domain.SkillLevel{
		{Number: 1, DrillIDs: []string{"shoot-1", "shoot-11", "shoot-14"}, XPRequired: 0, UnlockReward: "Finisher badge"},
		{Number: 2, DrillIDs: []string{"shoot-2", "shoot-12"}, XPRequired: 500, UnlockReward: "Power-shot pack"},
		{Number: 3, DrillIDs: []string{"shoot-3", "shoot-16"}, XPRequired: 1500, UnlockReward: "Set-piece specialist badge"},
	}},
	{Skill: domain.SkillPassing, Levels: []domain.SkillLevel{
		{Number: 1, DrillIDs: []string{"pass-1", "pass-2"}, XPRequired: 0, UnlockReward: "Playmaker badge"},
		{Number: 2, DrillIDs: []string{"pass-3", "pass-11"}, XPRequired: 500, UnlockReward: "Long-range pack"},
		{Number: 3, DrillIDs: []string{"pass-4", "pass-12"}, XPRequired: 1500, UnlockReward: "Deep-lying playmaker badge"},
	}},
	{Skill: domain.SkillDribbling, Levels: []domain.SkillLevel{
		{Number: 1, DrillIDs: []string{"drib-1", "drib-2"}, XPRequired: 0, UnlockReward: "Dribbler badge"},
		{Number: 2, DrillIDs: []string{"drib-11", "drib-3"}, XPRequired: 500, UnlockReward: "1v1 pack"},
		{Number: 3, DrillIDs: []string{"drib-12", "drib-13"}, XPRequired: 1500, UnlockReward: "Skill-move master badge"},
	}},
	{Skill: domain.SkillBallControl, Levels: []domain.SkillLevel{
		{Number: 1, DrillIDs: []string{"touch-1", "touch-2"}, XPRequired: 0, UnlockReward: "First-touch badge"},
		{Number: 2, DrillIDs: []string{"touch-11", "touch-3"}, XPRequired: 500, UnlockReward: "Aerial pack"},
		{Number: 3, DrillIDs: []string{"touch-12"}, XPRequired: 1500, UnlockReward: "Velvet-touch badge"},
	}},
	{Skill: domain.SkillDefending, Levels: []domain.SkillLevel{
		{Number: 1, DrillIDs: []string{"def-1", "def-2"}, XPRequired: 0, UnlockReward: "Stopper badge"},
		{Number: 2, DrillIDs: []string{"def-11", "def-3"}, XPRequired: 500, UnlockReward: "Interceptor pack"},
		{Number: 3, DrillIDs: []string{"def-12"}, XPRequired: 1500, UnlockReward: "Wall badge"},
	}},
	{Skill: domain.SkillFitness, Levels: []domain.SkillLevel{
		{Number: 1, DrillIDs: []string{"fit-1", "fit-2", "fit-3"}, XPRequired: 0, UnlockReward: "Engine badge"},
		{Number: 2, DrillIDs: []string{"fit-11", "fit-12"}, XPRequired: 500, UnlockReward: "Explosive pack"},
		{Number: 3, DrillIDs: []string{"fit-13"}, XPRequired: 1500, UnlockReward: "Iron-lungs badge"},
	}},
}

var programs = []domain.Program{
	{ID: "prog-finishing-14", Name: "14-Day Finishing Camp", Phases: []domain.ProgramPhase{
		{Week: 1, Name: "Placement", DrillIDs: []string{"shoot-1", "shoot-11", "touch-2", "fit-1"}},
		{Week: 2, Name: "Power", DrillIDs: []string{"shoot-14", "shoot-2", "pass-2", "fit-11"}},
	}},
	{ID: "prog-foundation-30", Name: "30-Day Foundation", Phases: []domain.ProgramPhase{
		{Week: 1, Name: "Touch", DrillIDs: []string{"touch-1", "pass-1", "fit-2"}},
		{Week: 2, Name: "Movement", DrillIDs: []string{"drib-1", "def-1", "fit-3"}},
		{Week: 3, Name: "Tempo", DrillIDs: []string{"pass-2", "touch-2", "fit-1"}},
		{Week: 4, Name: "Finishing", DrillIDs: []string{"shoot-1", "drib-2", "fit-11"}},
	}},
}
