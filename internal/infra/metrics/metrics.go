// Package metrics provides Prometheus metrics for the progression
// engine: completions, XP, level-ups, and persistence health.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Completions ────────────────────────────────────────────────────────────

// DrillsCompleted counts drill completions by skill category.
var DrillsCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "striker",
	Name:      "drills_completed_total",
	Help:      "Total drill completions.",
}, []string{"category"})

// WorkoutsCompleted counts full workout completions.
var WorkoutsCompleted = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "striker",
	Name:      "workouts_completed_total",
	Help:      "Total workout completions.",
})

// TrainingMinutes counts reported training minutes.
var TrainingMinutes = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "striker",
	Name:      "training_minutes_total",
	Help:      "Total reported training minutes.",
})

// ─── XP & Levels ────────────────────────────────────────────────────────────

// XPEarned counts XP granted across all sources.
var XPEarned = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "striker",
	Name:      "xp_earned_total",
	Help:      "Total XP granted.",
})

// LevelUps counts level-up events.
var LevelUps = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "striker",
	Name:      "level_ups_total",
	Help:      "Total level-up events.",
})

// CurrentStreak tracks the player's current day streak.
var CurrentStreak = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "striker",
	Name:      "streak_days_current",
	Help:      "Current consecutive-day training streak.",
})

// ─── Persistence ────────────────────────────────────────────────────────────

// PersistFailures counts snapshot writes that failed. The in-memory
// snapshot stays authoritative, so each failure is lost durability,
// not lost state.
var PersistFailures = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "striker",
	Name:      "persist_failures_total",
	Help:      "Total failed snapshot writes.",
})
