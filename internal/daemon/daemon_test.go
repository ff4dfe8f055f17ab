package daemon_test

import (
	"testing"

	"github.com/strikerhq/striker/internal/daemon"
)

func TestDaemon_ConfiguredWeeklyGoalReachesSnapshot(t *testing.T) {
	cfg := daemon.DefaultConfig()
	cfg.Storage.Dir = t.TempDir()
	cfg.Profile.WeeklyGoal = 3

	d, err := daemon.NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("new daemon: %v", err)
	}
	defer d.Close()

	if got := d.Store.Snapshot().WeeklyGoal; got != 3 {
		t.Errorf("snapshot weeklyGoal = %d, want configured 3", got)
	}
}

func TestDaemon_UserIDStableAcrossRestarts(t *testing.T) {
	cfg := daemon.DefaultConfig()
	cfg.Storage.Dir = t.TempDir()

	d, err := daemon.NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("new daemon: %v", err)
	}
	id, err := d.DB.GetAppInfo("user_id")
	if err != nil || id == "" {
		t.Fatalf("user id = (%q, %v)", id, err)
	}
	d.Close()

	d2, err := daemon.NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("restart daemon: %v", err)
	}
	defer d2.Close()

	id2, _ := d2.DB.GetAppInfo("user_id")
	if id2 != id {
		t.Errorf("user id changed across restarts: %q then %q", id, id2)
	}
}
