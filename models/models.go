package models

import (
	_ "github.com/lib/pq"
)

// Project represents the projects table. Dates are ISO YYYY-MM-DD strings.
type Project struct {
	ID                 int      `json:"id" example:"1"`
	Name               string   `json:"name" example:"Railway ROB + Bridge Works"`
	Client             string   `json:"client" example:"Indian Railways / PWD"`
	Location           string   `json:"location" example:"Maharashtra"`
	ContractNo         *string  `json:"contract_no" example:"PWD-IR-ROB-001"`
	StartDate          *string  `json:"start_date" example:"2026-01-01"`
	EndDate            *string  `json:"end_date" example:"2026-12-31"`
	TotalContractValue *float64 `json:"total_contract_value" example:"100000000"`
	ProfitMarginTarget float64  `json:"profit_margin_target" example:"10"`
	Status             string   `json:"status" example:"Execution"`
	ProgressPercent    float64  `json:"progress_percent" example:"65.5"`
	ProjectManager     *string  `json:"project_manager,omitempty"`
	SiteEngineer       *string  `json:"site_engineer,omitempty"`
	CreatedAt          string   `json:"created_at"`
}

// CreateProjectRequest is the request body for project creation.
type CreateProjectRequest struct {
	Name               string   `json:"name" binding:"required,min=2"`
	Client             string   `json:"client" binding:"required"`
	Location           string   `json:"location" binding:"required"`
	ContractNo         *string  `json:"contract_no"`
	StartDate          *string  `json:"start_date"`
	EndDate            *string  `json:"end_date"`
	TotalContractValue *float64 `json:"total_contract_value"`
	ProfitMarginTarget *float64 `json:"profit_margin_target"`
	Status             *string  `json:"status"`
	ProgressPercent    *float64 `json:"progress_percent"`
	ProjectManager     *string  `json:"project_manager"`
	SiteEngineer       *string  `json:"site_engineer"`
}

// DailyLog represents the daily_logs table.
type DailyLog struct {
	ID         int             `json:"id" example:"1"`
	ProjectID  int             `json:"project_id" example:"1"`
	LogDate    string          `json:"log_date" example:"2026-01-15"`
	Weather    *string         `json:"weather" example:"Sunny"`
	Remarks    *string         `json:"remarks"`
	CreatedAt  string          `json:"created_at"`
	Activities []DailyActivity `json:"activities"`
}

// CreateDailyLogActivity is one activity line nested in a daily log request.
type CreateDailyLogActivity struct {
	Category    string  `json:"category" binding:"required"`
	Activity    string  `json:"activity" binding:"required"`
	UOM         string  `json:"uom" binding:"required"`
	Quantity    float64 `json:"quantity"`
	LabourCount int     `json:"labour_count"`
	Machinery   *string `json:"machinery"`
	Notes       *string `json:"notes"`
}

// CreateDailyLogRequest is the request body for daily log creation. The log
// and its activity lines are written in one transaction.
type CreateDailyLogRequest struct {
	ProjectID  int                      `json:"project_id" binding:"required"`
	LogDate    string                   `json:"log_date" binding:"required"`
	Weather    *string                  `json:"weather"`
	Remarks    *string                  `json:"remarks"`
	Activities []CreateDailyLogActivity `json:"activities"`
}

// DailyActivity represents the daily_activities table.
type DailyActivity struct {
	ID          int     `json:"id" example:"1"`
	DailyLogID  int     `json:"daily_log_id" example:"1"`
	Category    string  `json:"category" example:"Sub-Structure"`
	Activity    string  `json:"activity" example:"Pile cap casting"`
	UOM         string  `json:"uom" example:"CuM"`
	Quantity    float64 `json:"quantity" example:"12.5"`
	LabourCount int     `json:"labour_count" example:"18"`
	Machinery   *string `json:"machinery"`
	Notes       *string `json:"notes"`
}

// CreateDailyActivityRequest is the request body for daily activity creation.
type CreateDailyActivityRequest struct {
	DailyLogID  int     `json:"daily_log_id" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Activity    string  `json:"activity" binding:"required"`
	UOM         string  `json:"uom" binding:"required"`
	Quantity    float64 `json:"quantity"`
	LabourCount int     `json:"labour_count"`
	Machinery   *string `json:"machinery"`
	Notes       *string `json:"notes"`
}

// CostEntry represents the cost_entries table.
//
// Amount is the authoritative actual-cost figure. Quantity x UnitRate is
// informational only and may not equal Amount.
type CostEntry struct {
	ID          int      `json:"id" example:"1"`
	ProjectID   int      `json:"project_id" example:"1"`
	EntryDate   string   `json:"entry_date" example:"2026-01-15"`
	CostHead    string   `json:"cost_head" example:"Labour"`
	Description string   `json:"description"`
	Vendor      *string  `json:"vendor"`
	Amount      float64  `json:"amount" example:"3779500"`
	Quantity    *float64 `json:"quantity"`
	UOM         *string  `json:"uom"`
	UnitRate    *float64 `json:"unit_rate"`
	PaymentMode *string  `json:"payment_mode"`
	BillNo      *string  `json:"bill_no"`
	CreatedAt   string   `json:"created_at"`
}

// CreateCostEntryRequest is the request body for cost entry creation.
type CreateCostEntryRequest struct {
	ProjectID   int      `json:"project_id" binding:"required"`
	EntryDate   string   `json:"entry_date" binding:"required"`
	CostHead    string   `json:"cost_head" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Vendor      *string  `json:"vendor"`
	Amount      float64  `json:"amount" binding:"required"`
	Quantity    *float64 `json:"quantity"`
	UOM         *string  `json:"uom"`
	UnitRate    *float64 `json:"unit_rate"`
	PaymentMode *string  `json:"payment_mode"`
	BillNo      *string  `json:"bill_no"`
}

// BudgetItem represents the budget_items table. One row per (project, cost
// head); writes go through an upsert.
type BudgetItem struct {
	ID           int     `json:"id" example:"1"`
	ProjectID    int     `json:"project_id" example:"1"`
	CostHead     string  `json:"cost_head" example:"Labour"`
	BudgetAmount float64 `json:"budget_amount" example:"3250000"`
	Notes        *string `json:"notes"`
	CreatedAt    string  `json:"created_at"`
}

// UpsertBudgetItemRequest is the request body for budget upsert.
type UpsertBudgetItemRequest struct {
	ProjectID    int     `json:"project_id" binding:"required"`
	CostHead     string  `json:"cost_head" binding:"required"`
	BudgetAmount float64 `json:"budget_amount" binding:"required"`
	Notes        *string `json:"notes"`
}

// DashboardSummary is the derived per-project cost/budget view. It is
// recomputed from current rows on every request and never persisted.
type DashboardSummary struct {
	ProjectID              int                  `json:"project_id"`
	FromDate               *string              `json:"from_date"`
	ToDate                 *string              `json:"to_date"`
	TotalCost              float64              `json:"total_cost"`
	CostByHead             map[string]float64   `json:"cost_by_head"`
	TotalBudget            float64              `json:"total_budget"`
	BudgetByHead           map[string]float64   `json:"budget_by_head"`
	VarianceByHead         map[string]float64   `json:"variance_by_head"`
	PercentOverUnderBudget *float64             `json:"percent_over_under_budget"`
	TotalContractValue     *float64             `json:"total_contract_value"`
	ProfitMarginTarget     float64              `json:"profit_margin_target"`
	CurrentProfitMargin    *float64             `json:"current_profit_margin"`
	DaysRemaining          *int                 `json:"days_remaining"`
	JobCostingCategories   []JobCostingCategory `json:"job_costing_categories"`
	RecentLogs             []DailyLog           `json:"recent_logs"`
}

// JobCostingCategory is one row of the fixed five-category cost taxonomy.
// PercentOverUnderBudget is null when no budget is planned for the category.
type JobCostingCategory struct {
	Category               string   `json:"category" example:"Labour"`
	PlannedCost            float64  `json:"planned_cost"`
	ActualCost             float64  `json:"actual_cost"`
	Quantity               *float64 `json:"quantity"`
	UOM                    *string  `json:"uom"`
	UnitCost               *float64 `json:"unit_cost"`
	PercentOfTotalActual   float64  `json:"percent_of_total_actual"`
	PercentOverUnderBudget *float64 `json:"percent_over_under_budget"`
}

// JobCostingSummary is the derived category-level cost comparison.
type JobCostingSummary struct {
	ProjectID              int                  `json:"project_id"`
	ProjectName            string               `json:"project_name"`
	Client                 string               `json:"client"`
	Location               string               `json:"location"`
	FromDate               *string              `json:"from_date"`
	ToDate                 *string              `json:"to_date"`
	TotalPlannedCost       float64              `json:"total_planned_cost"`
	TotalActualCost        float64              `json:"total_actual_cost"`
	PercentOverUnderBudget *float64             `json:"percent_over_under_budget"`
	Categories             []JobCostingCategory `json:"categories"`
}

// PortfolioOverview is the derived fleet-level roll-up across all projects.
type PortfolioOverview struct {
	TotalProjects        int            `json:"total_projects"`
	ActiveProjects       int            `json:"active_projects"`
	DelayedProjects      int            `json:"delayed_projects"`
	TotalContractValue   float64        `json:"total_contract_value"`
	TotalBilledValue     float64        `json:"total_billed_value"`
	OverallProgress      float64        `json:"overall_progress"`
	SafetyIncidentsTotal int            `json:"safety_incidents_total"`
	QualityNCRsTotal     int            `json:"quality_ncrs_total"`
	ProjectsByClient     map[string]int `json:"projects_by_client"`
	ProjectsByStatus     map[string]int `json:"projects_by_status"`
}
