package services

import (
	"backend/models"
	"errors"
	"math"
	"reflect"
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func sampleProject() *models.Project {
	return &models.Project{
		ID:                 1,
		Name:               "Railway ROB + Bridge Works",
		Client:             "Indian Railways / PWD",
		Location:           "Maharashtra",
		EndDate:            strPtr("2026-12-31"),
		TotalContractValue: floatPtr(100000000),
		ProfitMarginTarget: 12.0,
		Status:             "Execution",
	}
}

func TestCategoryForHead(t *testing.T) {
	cases := []struct {
		head string
		want string
	}{
		{"Labour", CategoryLabour},
		{"labour", CategoryLabour},
		{"  Labour - Skilled  ", CategoryLabour},
		{"Materials - Steel", CategoryMaterials},
		{"Materials - Cement", CategoryMaterials},
		{"Equipment Hire", CategoryEquipment},
		{"Machinery", CategoryEquipment},
		{"Subcontract - Piling", CategorySubcontractors},
		{"Site Overheads", CategoryOther},
		{"Something Unrecognized", CategoryOther},
		{"", CategoryOther},
	}
	for i, c := range cases {
		if got := CategoryForHead(c.head); got != c.want {
			t.Fatalf("case %d: CategoryForHead(%q) = %q, want %q", i, c.head, got, c.want)
		}
	}
	// The mapping is a fixed table: the same head always lands in the same
	// category across calls.
	for i := 0; i < 3; i++ {
		if CategoryForHead("Materials - Steel") != CategoryMaterials {
			t.Fatalf("iteration %d: mapping is not stable", i)
		}
	}
}

func TestValidateDateRange(t *testing.T) {
	cases := []struct {
		from, to string
		wantErr  bool
	}{
		{"", "", false},
		{"2024-01-01", "", false},
		{"", "2024-01-31", false},
		{"2024-01-01", "2024-01-31", false},
		{"2024-01-15", "2024-01-15", false},
		{"2024-01-31", "2024-01-01", true},
	}
	for i, c := range cases {
		err := ValidateDateRange(c.from, c.to)
		if c.wantErr && !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("case %d: expected ErrInvalidRange, got %v", i, err)
		}
		if !c.wantErr && err != nil {
			t.Fatalf("case %d: unexpected error %v", i, err)
		}
	}
}

func TestBuildDashboardSummaryWorkedExample(t *testing.T) {
	project := sampleProject()
	costs := []models.CostEntry{
		{ProjectID: 1, EntryDate: "2024-01-05", CostHead: "Labour", Amount: 1000},
		{ProjectID: 1, EntryDate: "2024-01-10", CostHead: "Materials - Steel", Amount: 500},
	}
	budgets := []models.BudgetItem{
		{ProjectID: 1, CostHead: "Labour", BudgetAmount: 1200},
	}

	summary, err := BuildDashboardSummary(project, costs, budgets, nil, "", "", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.TotalCost != 1500 {
		t.Fatalf("total_cost = %v, want 1500", summary.TotalCost)
	}
	wantCost := map[string]float64{"Labour": 1000, "Materials - Steel": 500}
	if !reflect.DeepEqual(summary.CostByHead, wantCost) {
		t.Fatalf("cost_by_head = %v, want %v", summary.CostByHead, wantCost)
	}
	if summary.TotalBudget != 1200 {
		t.Fatalf("total_budget = %v, want 1200", summary.TotalBudget)
	}
	wantBudget := map[string]float64{"Labour": 1200}
	if !reflect.DeepEqual(summary.BudgetByHead, wantBudget) {
		t.Fatalf("budget_by_head = %v, want %v", summary.BudgetByHead, wantBudget)
	}
	wantVariance := map[string]float64{"Labour": -200, "Materials - Steel": 500}
	if !reflect.DeepEqual(summary.VarianceByHead, wantVariance) {
		t.Fatalf("variance_by_head = %v, want %v", summary.VarianceByHead, wantVariance)
	}
	if summary.FromDate != nil || summary.ToDate != nil {
		t.Fatalf("absent bounds must be echoed as null, got from=%v to=%v", summary.FromDate, summary.ToDate)
	}
}

func TestBuildDashboardSummaryVarianceCoversUnionOfHeads(t *testing.T) {
	project := sampleProject()
	costs := []models.CostEntry{
		{EntryDate: "2024-02-01", CostHead: "Fuel & Lubricants", Amount: 300},
	}
	budgets := []models.BudgetItem{
		{CostHead: "Labour", BudgetAmount: 900},
	}

	summary, err := BuildDashboardSummary(project, costs, budgets, nil, "", "", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Every head from either side appears; each value is cost minus budget.
	if len(summary.VarianceByHead) != 2 {
		t.Fatalf("variance_by_head has %d heads, want 2", len(summary.VarianceByHead))
	}
	for head, variance := range summary.VarianceByHead {
		want := summary.CostByHead[head] - summary.BudgetByHead[head]
		if !almostEqual(variance, want) {
			t.Fatalf("variance[%q] = %v, want %v", head, variance, want)
		}
	}
}

func TestBuildDashboardSummaryDateFilterInclusive(t *testing.T) {
	project := sampleProject()
	costs := []models.CostEntry{
		{EntryDate: "2024-01-01", CostHead: "Labour", Amount: 100},
		{EntryDate: "2024-01-15", CostHead: "Labour", Amount: 200},
		{EntryDate: "2024-01-31", CostHead: "Labour", Amount: 400},
		{EntryDate: "2024-02-01", CostHead: "Labour", Amount: 800},
	}
	budgets := []models.BudgetItem{
		{CostHead: "Labour", BudgetAmount: 5000},
	}

	cases := []struct {
		from, to  string
		wantTotal float64
	}{
		{"", "", 1500},
		{"2024-01-01", "2024-01-31", 700}, // both boundary days included
		{"2024-01-15", "", 1400},
		{"", "2024-01-15", 300},
		{"2024-01-16", "2024-01-30", 0},
	}
	for i, c := range cases {
		summary, err := BuildDashboardSummary(project, costs, budgets, nil, c.from, c.to, time.Now())
		if err != nil {
			t.Fatalf("case %d: unexpected error %v", i, err)
		}
		if !almostEqual(summary.TotalCost, c.wantTotal) {
			t.Fatalf("case %d: total_cost = %v, want %v", i, summary.TotalCost, c.wantTotal)
		}
		// Budgets are period-independent and never date-filtered.
		if summary.TotalBudget != 5000 {
			t.Fatalf("case %d: total_budget = %v, want 5000", i, summary.TotalBudget)
		}
	}
}

func TestBuildDashboardSummaryEmptyRows(t *testing.T) {
	project := sampleProject()
	project.TotalContractValue = nil
	project.EndDate = nil

	summary, err := BuildDashboardSummary(project, nil, nil, nil, "", "", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalCost != 0 || summary.TotalBudget != 0 {
		t.Fatalf("empty rows must yield zero totals, got cost=%v budget=%v", summary.TotalCost, summary.TotalBudget)
	}
	if len(summary.CostByHead) != 0 || len(summary.BudgetByHead) != 0 || len(summary.VarianceByHead) != 0 {
		t.Fatalf("empty rows must yield empty mappings")
	}
	if summary.PercentOverUnderBudget != nil {
		t.Fatalf("percent_over_under_budget must be null with no budget, got %v", *summary.PercentOverUnderBudget)
	}
	if summary.CurrentProfitMargin != nil {
		t.Fatalf("current_profit_margin must be null without contract value")
	}
	if summary.DaysRemaining != nil {
		t.Fatalf("days_remaining must be null without end date")
	}
	if len(summary.JobCostingCategories) != 5 {
		t.Fatalf("all five categories must be present, got %d", len(summary.JobCostingCategories))
	}
}

func TestBuildDashboardSummaryErrors(t *testing.T) {
	if _, err := BuildDashboardSummary(nil, nil, nil, nil, "", "", time.Now()); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("nil project: expected ErrProjectNotFound, got %v", err)
	}
	if _, err := BuildDashboardSummary(sampleProject(), nil, nil, nil, "2024-02-01", "2024-01-01", time.Now()); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("inverted range: expected ErrInvalidRange, got %v", err)
	}
}

func TestBuildDashboardSummaryDerivedFields(t *testing.T) {
	project := sampleProject()
	costs := []models.CostEntry{
		{EntryDate: "2026-03-01", CostHead: "Labour", Amount: 40000000},
	}

	today := time.Date(2026, 12, 21, 0, 0, 0, 0, time.UTC)
	summary, err := BuildDashboardSummary(project, costs, nil, nil, "", "", today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.CurrentProfitMargin == nil || !almostEqual(*summary.CurrentProfitMargin, 60.0) {
		t.Fatalf("current_profit_margin = %v, want 60", summary.CurrentProfitMargin)
	}
	if summary.DaysRemaining == nil || *summary.DaysRemaining != 10 {
		t.Fatalf("days_remaining = %v, want 10", summary.DaysRemaining)
	}

	// Past the end date there is nothing remaining to report.
	late := time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC)
	summary, err = BuildDashboardSummary(project, costs, nil, nil, "", "", late)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.DaysRemaining != nil {
		t.Fatalf("days_remaining past end date = %v, want null", *summary.DaysRemaining)
	}
}

func TestBuildJobCostingSummaryWorkedExample(t *testing.T) {
	project := sampleProject()
	costs := []models.CostEntry{
		{EntryDate: "2024-01-05", CostHead: "Labour", Amount: 1000},
		{EntryDate: "2024-01-10", CostHead: "Materials - Steel", Amount: 500},
	}
	budgets := []models.BudgetItem{
		{CostHead: "Labour", BudgetAmount: 1200},
	}

	summary, err := BuildJobCostingSummary(project, costs, budgets, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byCat := map[string]models.JobCostingCategory{}
	for _, c := range summary.Categories {
		byCat[c.Category] = c
	}

	labour := byCat[CategoryLabour]
	if labour.ActualCost != 1000 || labour.PlannedCost != 1200 {
		t.Fatalf("Labour actual=%v planned=%v, want 1000/1200", labour.ActualCost, labour.PlannedCost)
	}
	if labour.PercentOverUnderBudget == nil || !almostEqual(*labour.PercentOverUnderBudget, (1000.0-1200.0)/1200.0*100.0) {
		t.Fatalf("Labour percent_over_under_budget = %v, want -16.67", labour.PercentOverUnderBudget)
	}

	materials := byCat[CategoryMaterials]
	if materials.ActualCost != 500 || materials.PlannedCost != 0 {
		t.Fatalf("Materials actual=%v planned=%v, want 500/0", materials.ActualCost, materials.PlannedCost)
	}
	if materials.PercentOverUnderBudget != nil {
		t.Fatalf("Materials percent_over_under_budget = %v, want null (no planned budget)", *materials.PercentOverUnderBudget)
	}
}

func TestBuildJobCostingSummaryFixedCategoryOrder(t *testing.T) {
	summary, err := BuildJobCostingSummary(sampleProject(), nil, nil, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summary.Categories) != len(CategoryOrder) {
		t.Fatalf("got %d categories, want %d", len(summary.Categories), len(CategoryOrder))
	}
	for i, c := range summary.Categories {
		if c.Category != CategoryOrder[i] {
			t.Fatalf("category %d = %q, want %q", i, c.Category, CategoryOrder[i])
		}
	}
}

func TestBuildJobCostingSummaryPercentOfTotal(t *testing.T) {
	project := sampleProject()
	costs := []models.CostEntry{
		{EntryDate: "2024-01-05", CostHead: "Labour", Amount: 750},
		{EntryDate: "2024-01-06", CostHead: "Equipment Hire", Amount: 150},
		{EntryDate: "2024-01-07", CostHead: "Unmapped Head", Amount: 100},
	}

	summary, err := BuildJobCostingSummary(project, costs, nil, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sum := 0.0
	for _, c := range summary.Categories {
		sum += c.PercentOfTotalActual
	}
	if !almostEqual(sum, 100.0) {
		t.Fatalf("percent_of_total_actual sums to %v, want 100", sum)
	}

	// With no cost at all every share is 0, not NaN.
	empty, err := BuildJobCostingSummary(project, nil, nil, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range empty.Categories {
		if c.PercentOfTotalActual != 0 {
			t.Fatalf("category %q share = %v with zero total, want 0", c.Category, c.PercentOfTotalActual)
		}
	}
}

func TestBuildJobCostingSummaryQuantityAndUnitCost(t *testing.T) {
	project := sampleProject()
	costs := []models.CostEntry{
		{EntryDate: "2024-01-05", CostHead: "Materials - Steel", Amount: 3000, Quantity: floatPtr(10), UOM: strPtr("MT")},
		{EntryDate: "2024-01-08", CostHead: "Materials - Cement", Amount: 1000, Quantity: floatPtr(20), UOM: strPtr("MT")},
		{EntryDate: "2024-01-09", CostHead: "Labour", Amount: 500},
	}

	summary, err := BuildJobCostingSummary(project, costs, nil, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	byCat := map[string]models.JobCostingCategory{}
	for _, c := range summary.Categories {
		byCat[c.Category] = c
	}

	materials := byCat[CategoryMaterials]
	if materials.Quantity == nil || *materials.Quantity != 30 {
		t.Fatalf("Materials quantity = %v, want 30", materials.Quantity)
	}
	if materials.UnitCost == nil || !almostEqual(*materials.UnitCost, 4000.0/30.0) {
		t.Fatalf("Materials unit_cost = %v, want %v", materials.UnitCost, 4000.0/30.0)
	}
	if materials.UOM == nil || *materials.UOM != "MT" {
		t.Fatalf("Materials uom = %v, want MT (single distinct uom)", materials.UOM)
	}

	labour := byCat[CategoryLabour]
	if labour.Quantity != nil || labour.UnitCost != nil {
		t.Fatalf("Labour quantity/unit_cost must be null without quantities")
	}
}

func TestBuildJobCostingSummaryMixedUOMs(t *testing.T) {
	costs := []models.CostEntry{
		{EntryDate: "2024-01-05", CostHead: "Materials - Steel", Amount: 100, Quantity: floatPtr(1), UOM: strPtr("MT")},
		{EntryDate: "2024-01-06", CostHead: "Materials - Cement", Amount: 100, Quantity: floatPtr(5), UOM: strPtr("Bags")},
	}

	summary, err := BuildJobCostingSummary(sampleProject(), costs, nil, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range summary.Categories {
		if c.Category == CategoryMaterials && c.UOM != nil {
			t.Fatalf("uom = %q with mixed units, want null", *c.UOM)
		}
	}
}

func TestBuildJobCostingSummaryIdempotent(t *testing.T) {
	project := sampleProject()
	costs := []models.CostEntry{
		{EntryDate: "2024-01-05", CostHead: "Labour", Amount: 1000},
		{EntryDate: "2024-01-10", CostHead: "Materials - Steel", Amount: 500},
	}
	budgets := []models.BudgetItem{
		{CostHead: "Labour", BudgetAmount: 1200},
	}

	first, err := BuildJobCostingSummary(project, costs, budgets, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := BuildJobCostingSummary(project, costs, budgets, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("summaries differ across identical calls:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
