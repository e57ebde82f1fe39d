package main

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRouter wires the real route table over a connection that is never
// reachable. Requests that get past input validation surface a 500 from the
// failed dial, so handler-level 400s can be told apart from storage errors.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sql.Open("postgres", "host=127.0.0.1 port=1 user=none dbname=none sslmode=disable")
	if err != nil {
		t.Fatalf("open sql: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open gorm: %v", err)
	}
	return setupRouter(db, gdb)
}

func doRequest(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(rr, req)
	return rr
}

func TestHealthRoute(t *testing.T) {
	r := newTestRouter(t)
	rr := doRequest(r, http.MethodGet, "/api/health")
	if rr.Code != http.StatusOK {
		t.Fatalf("health status = %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"ok"`) {
		t.Fatalf("health body = %s", rr.Body.String())
	}
}

func TestDeleteRoutesReachHandlers(t *testing.T) {
	r := newTestRouter(t)

	// A numeric id must be parsed by the handler bound to the route. If the
	// route parameter name drifts from what the handler reads, the id comes
	// back empty and these all short-circuit with a 400 instead of hitting
	// storage.
	paths := []string{
		"/api/daily-logs/42",
		"/api/cost-entries/42",
		"/api/budget-items/42",
		"/api/projects/42",
		"/api/milestones/42",
		"/api/delay-reasons/42",
		"/api/ra-bills/42",
		"/api/claims-variations/42",
		"/api/boq-items/42",
		"/api/quality-tests/42",
		"/api/ncrs/42",
		"/api/safety-incidents/42",
		"/api/labour-manpower/42",
		"/api/plant-machinery/42",
		"/api/material-inventory/42",
		"/api/project-packages/42",
		"/api/drawings-approvals/42",
		"/api/railway-blocks/42",
		"/api/risk-register/42",
	}
	for _, path := range paths {
		rr := doRequest(r, http.MethodDelete, path)
		if rr.Code == http.StatusBadRequest {
			t.Errorf("DELETE %s = 400 (%s), id not parsed from route", path, rr.Body.String())
		}
		if rr.Code != http.StatusInternalServerError {
			t.Errorf("DELETE %s = %d, want 500 from unreachable storage", path, rr.Code)
		}
	}
}

func TestDeleteRoutesRejectBadIDs(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{
		"/api/daily-logs/abc",
		"/api/cost-entries/abc",
		"/api/budget-items/abc",
		"/api/milestones/abc",
		"/api/risk-register/abc",
	} {
		rr := doRequest(r, http.MethodDelete, path)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("DELETE %s = %d, want 400", path, rr.Code)
		}
	}
}

func TestSummaryRoutesValidateInput(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		name string
		path string
	}{
		{"non-numeric project id", "/api/projects/abc/summary"},
		{"malformed from_date", "/api/projects/1/summary?from_date=2024-13-45"},
		{"malformed to_date", "/api/projects/1/job-costing?to_date=notadate"},
		{"cost entries bad bound", "/api/projects/1/cost-entries?from_date=01-02-2024"},
	}
	for _, tc := range cases {
		rr := doRequest(r, http.MethodGet, tc.path)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s: GET %s = %d, want 400", tc.name, tc.path, rr.Code)
		}
	}
}

func TestDailyLogsRangeParams(t *testing.T) {
	r := newTestRouter(t)

	for _, tc := range []struct {
		name string
		path string
		want int
	}{
		{"malformed from_date", "/api/projects/1/daily-logs?from_date=2024-13-45", http.StatusBadRequest},
		{"inverted window", "/api/projects/1/daily-logs?from_date=2024-02-10&to_date=2024-01-01", http.StatusBadRequest},
		{"valid window reaches storage", "/api/projects/1/daily-logs?from_date=2024-01-01&to_date=2024-02-10", http.StatusInternalServerError},
	} {
		rr := doRequest(r, http.MethodGet, tc.path)
		if rr.Code != tc.want {
			t.Errorf("%s: GET %s = %d, want %d", tc.name, tc.path, rr.Code, tc.want)
		}
	}
}
