package daemon_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/strikerhq/striker/internal/daemon"
	"github.com/strikerhq/striker/internal/domain"
)

func withHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("STRIKER_HOME", dir)
	return dir
}

func TestConfig_DefaultsWithoutFile(t *testing.T) {
	withHome(t)

	cfg, err := daemon.LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.API.Port != 7600 || cfg.API.Host != "127.0.0.1" {
		t.Errorf("api defaults = %s:%d", cfg.API.Host, cfg.API.Port)
	}
	if cfg.Profile.WeeklyGoal != domain.DefaultWeeklyGoal {
		t.Errorf("weeklyGoal = %d", cfg.Profile.WeeklyGoal)
	}
	if cfg.TrackerInterval() != time.Minute {
		t.Errorf("tracker interval = %v, want 1m", cfg.TrackerInterval())
	}
}

func TestConfig_SaveLoadRoundTrip(t *testing.T) {
	withHome(t)

	cfg := daemon.DefaultConfig()
	cfg.Profile.Position = "forward"
	cfg.Profile.Goals = []string{"shooting", "fitness"}
	cfg.Profile.SkillLevel = "intermediate"
	cfg.API.Port = 7700

	if err := daemon.SaveConfig(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := daemon.LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Profile.Position != "forward" || loaded.API.Port != 7700 {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
	if len(loaded.Profile.Goals) != 2 || loaded.Profile.Goals[0] != "shooting" {
		t.Errorf("goals = %v", loaded.Profile.Goals)
	}
}

func TestConfig_PartialFileKeepsDefaults(t *testing.T) {
	dir := withHome(t)

	partial := []byte("[profile]\nposition = \"defender\"\n")
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), partial, 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := daemon.LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Profile.Position != "defender" {
		t.Errorf("position = %q", cfg.Profile.Position)
	}
	if cfg.API.Port != 7600 {
		t.Errorf("port default lost: %d", cfg.API.Port)
	}
	if cfg.Profile.WeeklyGoal != domain.DefaultWeeklyGoal {
		t.Errorf("weeklyGoal backfill lost: %d", cfg.Profile.WeeklyGoal)
	}
}

func TestConfig_TrackerInterval(t *testing.T) {
	cfg := daemon.DefaultConfig()

	cfg.Tracker.Interval = ""
	if cfg.TrackerInterval() != 0 {
		t.Error("empty interval should disable the tracker")
	}
	cfg.Tracker.Interval = "30s"
	if cfg.TrackerInterval() != 30*time.Second {
		t.Errorf("interval = %v", cfg.TrackerInterval())
	}
	cfg.Tracker.Interval = "soon"
	if cfg.TrackerInterval() != time.Minute {
		t.Error("unparseable interval should fall back to 1m")
	}
}
