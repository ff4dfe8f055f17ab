package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/strikerhq/striker/internal/api"
	"github.com/strikerhq/striker/internal/app/progress"
	"github.com/strikerhq/striker/internal/domain"
	"github.com/strikerhq/striker/internal/infra/catalog"
	"github.com/strikerhq/striker/internal/infra/sqlite"
)

// testServer wires a real store over a temporary database.
func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := sqlite.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	now := func() time.Time { return time.Date(2025, 1, 7, 9, 0, 0, 0, time.UTC) }
	lib := catalog.New()
	store, err := progress.NewStore("test-user", lib, db, progress.Profile{Tier: domain.TierAdvanced}, now)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	srv := httptest.NewServer(api.NewServer(store, lib).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out interface{}) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func postJSON(t *testing.T, url string, body interface{}, out interface{}) int {
	t.Helper()
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", &buf)
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestAPI_CORSOrigins(t *testing.T) {
	db, err := sqlite.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	lib := catalog.New()
	store, err := progress.NewStore("test-user", lib, db, progress.Profile{}, nil)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	s := api.NewServer(store, lib)
	s.SetCORSOrigins([]string{"http://localhost:5173"})
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)

	get := func(origin string) *http.Response {
		t.Helper()
		req, _ := http.NewRequest(http.MethodGet, srv.URL+"/health", nil)
		if origin != "" {
			req.Header.Set("Origin", origin)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		return resp
	}

	resp := get("http://localhost:5173")
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("allowed origin header = %q, want echo", got)
	}

	resp = get("http://evil.example")
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("disallowed origin got header %q", got)
	}

	// The default server (no configured list) stays wide open for the
	// local frontend.
	open := testServer(t)
	resp2, err := http.Get(open.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	resp2.Body.Close()
	if got := resp2.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("unconfigured server header = %q, want *", got)
	}
}

func TestAPI_Health(t *testing.T) {
	srv := testServer(t)

	var out map[string]string
	if code := getJSON(t, srv.URL+"/health", &out); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if out["status"] != "ok" {
		t.Errorf("status body = %v", out)
	}
}

func TestAPI_ProgressLifecycle(t *testing.T) {
	srv := testServer(t)

	var res domain.CompletionResult
	code := postJSON(t, srv.URL+"/api/drills/shoot-1/complete",
		map[string]int{"duration_minutes": 10}, &res)
	if code != http.StatusOK {
		t.Fatalf("complete status = %d", code)
	}
	if res.XPEarned != 50 || res.Streak != 1 {
		t.Errorf("completion result = %+v", res)
	}

	var prog struct {
		Snapshot      domain.ProgressSnapshot `json:"snapshot"`
		XPToNextLevel int                     `json:"xp_to_next_level"`
	}
	if code := getJSON(t, srv.URL+"/api/progress", &prog); code != http.StatusOK {
		t.Fatalf("progress status = %d", code)
	}
	if prog.Snapshot.XP != 50 || prog.XPToNextLevel != 450 {
		t.Errorf("progress = xp %d, toNext %d", prog.Snapshot.XP, prog.XPToNextLevel)
	}
}

func TestAPI_CompleteUnknownDrill(t *testing.T) {
	srv := testServer(t)

	code := postJSON(t, srv.URL+"/api/drills/shoot-999/complete",
		map[string]int{"duration_minutes": 10}, nil)
	if code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", code)
	}
}

func TestAPI_NegativeDurationRejected(t *testing.T) {
	srv := testServer(t)

	code := postJSON(t, srv.URL+"/api/drills/shoot-1/complete",
		map[string]int{"duration_minutes": -5}, nil)
	if code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}
}

func TestAPI_WorkoutRequiresID(t *testing.T) {
	srv := testServer(t)

	code := postJSON(t, srv.URL+"/api/workouts/complete",
		map[string]interface{}{"duration_minutes": 30}, nil)
	if code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}
}

func TestAPI_DailyWorkout(t *testing.T) {
	srv := testServer(t)

	var w domain.DailyWorkout
	if code := getJSON(t, srv.URL+"/api/workout/today", &w); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if w.Date != "2025-01-07" || len(w.DrillIDs) == 0 {
		t.Errorf("workout = %+v", w)
	}
}

func TestAPI_SkillGates(t *testing.T) {
	srv := testServer(t)

	var gate struct {
		Unlocked  bool `json:"unlocked"`
		ProLocked bool `json:"pro_locked"`
	}
	if code := getJSON(t, srv.URL+"/api/skills/shooting/levels/2", &gate); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if gate.Unlocked {
		t.Error("level 2 unlocked for a fresh player")
	}
	if gate.ProLocked {
		t.Error("level 2 should not be pro-locked")
	}

	if code := getJSON(t, srv.URL+"/api/skills/juggling", nil); code != http.StatusNotFound {
		t.Errorf("unknown skill status = %d, want 404", code)
	}
}

func TestAPI_ProgramEnrollment(t *testing.T) {
	srv := testServer(t)

	if code := postJSON(t, srv.URL+"/api/programs/prog-finishing-14/enroll", nil, nil); code != http.StatusOK {
		t.Fatalf("enroll status = %d", code)
	}
	if code := postJSON(t, srv.URL+"/api/programs/prog-bogus/enroll", nil, nil); code != http.StatusNotFound {
		t.Errorf("bogus enroll status = %d, want 404", code)
	}

	var out struct {
		Programs []domain.EnrolledProgram `json:"programs"`
	}
	if code := getJSON(t, srv.URL+"/api/programs/enrolled", &out); code != http.StatusOK {
		t.Fatalf("enrolled status = %d", code)
	}
	if len(out.Programs) != 1 || out.Programs[0].Program.ID != "prog-finishing-14" {
		t.Errorf("enrolled = %+v", out.Programs)
	}

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/programs/prog-finishing-14/enroll", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unenroll status = %d", resp.StatusCode)
	}

	if code := getJSON(t, srv.URL+"/api/programs/enrolled", &out); code != http.StatusOK {
		t.Fatal("reload enrolled")
	}
	if len(out.Programs) != 0 {
		t.Errorf("still enrolled: %+v", out.Programs)
	}
}

func TestAPI_Reset(t *testing.T) {
	srv := testServer(t)

	if code := postJSON(t, srv.URL+"/api/drills/shoot-1/complete",
		map[string]int{"duration_minutes": 10}, nil); code != http.StatusOK {
		t.Fatal("seed completion")
	}
	if code := postJSON(t, srv.URL+"/api/progress/reset", nil, nil); code != http.StatusOK {
		t.Fatalf("reset status = %d", code)
	}

	var prog struct {
		Snapshot domain.ProgressSnapshot `json:"snapshot"`
	}
	getJSON(t, srv.URL+"/api/progress", &prog)
	if prog.Snapshot.XP != 0 || len(prog.Snapshot.CompletedDrills) != 0 {
		t.Errorf("state survived reset: %+v", prog.Snapshot)
	}
}
