package health_test

import (
	"context"
	"testing"

	"github.com/strikerhq/striker/internal/health"
	"github.com/strikerhq/striker/internal/infra/sqlite"
)

func TestChecker_AllHealthy(t *testing.T) {
	dir := t.TempDir()
	db, err := sqlite.Open(dir)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	c := health.NewChecker(db, dir)

	// Before any run there is nothing to report, which counts as healthy.
	if !c.IsHealthy() {
		t.Error("empty checker should report healthy")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // one immediate pass, then exit
	c.Run(ctx)

	statuses := c.Statuses()
	if len(statuses) != 2 {
		t.Fatalf("got %d statuses, want 2", len(statuses))
	}
	for _, s := range statuses {
		if !s.Healthy {
			t.Errorf("check %s unhealthy: %s", s.Name, s.Error)
		}
	}
	if !c.IsHealthy() {
		t.Error("checker should be healthy")
	}
}

func TestChecker_MissingDataDir(t *testing.T) {
	dir := t.TempDir()
	db, err := sqlite.Open(dir)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	c := health.NewChecker(db, dir+"/does-not-exist")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c.Run(ctx)

	if c.IsHealthy() {
		t.Error("checker should flag the missing data dir")
	}
}
