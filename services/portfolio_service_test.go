package services

import (
	"backend/models"
	"testing"
	"time"
)

func TestBuildPortfolioOverviewEmpty(t *testing.T) {
	overview := BuildPortfolioOverview(nil, 0, 0, 0, time.Now())
	if overview.TotalProjects != 0 || overview.ActiveProjects != 0 || overview.DelayedProjects != 0 {
		t.Fatalf("empty portfolio must report zero counts, got %+v", overview)
	}
	if overview.OverallProgress != 0 {
		t.Fatalf("overall_progress = %v with no projects, want 0", overview.OverallProgress)
	}
	if len(overview.ProjectsByClient) != 0 || len(overview.ProjectsByStatus) != 0 {
		t.Fatalf("empty portfolio must report empty groupings")
	}
}

func TestBuildPortfolioOverviewDelayedPredicate(t *testing.T) {
	today := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		status  string
		endDate *string
		delayed bool
	}{
		{"Execution", strPtr("2026-06-14"), true},  // end date passed
		{"Execution", strPtr("2026-06-15"), false}, // ends today, not yet delayed
		{"Execution", strPtr("2026-06-16"), false},
		{"Completed", strPtr("2026-01-01"), false}, // completed projects never count
		{"On Hold", strPtr("2026-01-01"), true},    // any non-completed status counts
		{"Execution", nil, false},                  // no end date, nothing to exceed
	}
	for i, c := range cases {
		projects := []models.Project{{Client: "C", Status: c.status, EndDate: c.endDate}}
		overview := BuildPortfolioOverview(projects, 0, 0, 0, today)
		want := 0
		if c.delayed {
			want = 1
		}
		if overview.DelayedProjects != want {
			t.Fatalf("case %d: delayed_projects = %d, want %d", i, overview.DelayedProjects, want)
		}
	}
}

func TestBuildPortfolioOverviewRollups(t *testing.T) {
	today := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	projects := []models.Project{
		{Client: "Indian Railways / PWD", Status: "Execution", ProgressPercent: 80, TotalContractValue: floatPtr(100000000)},
		{Client: "Indian Railways / PWD", Status: "Completed", ProgressPercent: 100, TotalContractValue: floatPtr(50000000)},
		{Client: "NHAI", Status: "Planning", ProgressPercent: 30, TotalContractValue: nil},
	}

	overview := BuildPortfolioOverview(projects, 22500000, 4, 7, today)

	if overview.TotalProjects != 3 {
		t.Fatalf("total_projects = %d, want 3", overview.TotalProjects)
	}
	if overview.ActiveProjects != 2 {
		t.Fatalf("active_projects = %d, want 2", overview.ActiveProjects)
	}
	if overview.TotalContractValue != 150000000 {
		t.Fatalf("total_contract_value = %v, want 150000000", overview.TotalContractValue)
	}
	if overview.TotalBilledValue != 22500000 {
		t.Fatalf("total_billed_value = %v, want 22500000", overview.TotalBilledValue)
	}
	// Unweighted mean of progress across all projects.
	if !almostEqual(overview.OverallProgress, 70.0) {
		t.Fatalf("overall_progress = %v, want 70", overview.OverallProgress)
	}
	if overview.SafetyIncidentsTotal != 4 || overview.QualityNCRsTotal != 7 {
		t.Fatalf("incident/ncr totals = %d/%d, want 4/7", overview.SafetyIncidentsTotal, overview.QualityNCRsTotal)
	}
	if overview.ProjectsByClient["Indian Railways / PWD"] != 2 || overview.ProjectsByClient["NHAI"] != 1 {
		t.Fatalf("projects_by_client = %v", overview.ProjectsByClient)
	}
	if overview.ProjectsByStatus["Execution"] != 1 || overview.ProjectsByStatus["Planning"] != 1 || overview.ProjectsByStatus["Completed"] != 1 {
		t.Fatalf("projects_by_status = %v", overview.ProjectsByStatus)
	}
}
