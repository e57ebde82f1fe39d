package repository

import (
	"backend/models"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// ProjectExists reports whether a project row with the given id exists.
func ProjectExists(db *sql.DB, projectID int) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS(SELECT 1 FROM projects WHERE id = $1)`, projectID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check project %d: %w", projectID, err)
	}
	return exists, nil
}

// GetProject fetches a single project, returning sql.ErrNoRows when missing.
func GetProject(db *sql.DB, projectID int) (*models.Project, error) {
	var p models.Project
	err := db.QueryRow(`
		SELECT id, name, client, location, contract_no, start_date, end_date,
		       total_contract_value, profit_margin_target, status, progress_percent,
		       project_manager, site_engineer, created_at
		FROM projects WHERE id = $1`, projectID).Scan(
		&p.ID, &p.Name, &p.Client, &p.Location, &p.ContractNo, &p.StartDate, &p.EndDate,
		&p.TotalContractValue, &p.ProfitMarginTarget, &p.Status, &p.ProgressPercent,
		&p.ProjectManager, &p.SiteEngineer, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProjects returns all projects ordered by id.
func ListProjects(db *sql.DB) ([]models.Project, error) {
	rows, err := db.Query(`
		SELECT id, name, client, location, contract_no, start_date, end_date,
		       total_contract_value, profit_margin_target, status, progress_percent,
		       project_manager, site_engineer, created_at
		FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Client, &p.Location, &p.ContractNo, &p.StartDate, &p.EndDate,
			&p.TotalContractValue, &p.ProfitMarginTarget, &p.Status, &p.ProgressPercent,
			&p.ProjectManager, &p.SiteEngineer, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// projectDefaults resolves the optional request fields that back NOT NULL
// columns: status defaults to Planning, margin target to 10, progress to 0.
func projectDefaults(req *models.CreateProjectRequest) (status string, margin, progress float64) {
	status = "Planning"
	if req.Status != nil && *req.Status != "" {
		status = *req.Status
	}
	margin = 10.0
	if req.ProfitMarginTarget != nil {
		margin = *req.ProfitMarginTarget
	}
	if req.ProgressPercent != nil {
		progress = *req.ProgressPercent
	}
	return status, margin, progress
}

// CreateProject inserts a project and returns its new id.
func CreateProject(db *sql.DB, req *models.CreateProjectRequest) (int, error) {
	status, margin, progress := projectDefaults(req)
	var id int
	err := db.QueryRow(`
		INSERT INTO projects (name, client, location, contract_no, start_date, end_date,
			total_contract_value, profit_margin_target, status, progress_percent,
			project_manager, site_engineer)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`,
		req.Name, req.Client, req.Location, req.ContractNo, req.StartDate, req.EndDate,
		req.TotalContractValue, margin, status, progress,
		req.ProjectManager, req.SiteEngineer).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create project: %w", err)
	}
	return id, nil
}

// UpdateProject rewrites all mutable columns of a project.
func UpdateProject(db *sql.DB, projectID int, req *models.CreateProjectRequest) error {
	status, margin, progress := projectDefaults(req)
	result, err := db.Exec(`
		UPDATE projects SET name = $1, client = $2, location = $3, contract_no = $4,
			start_date = $5, end_date = $6, total_contract_value = $7,
			profit_margin_target = $8, status = $9, progress_percent = $10,
			project_manager = $11, site_engineer = $12
		WHERE id = $13`,
		req.Name, req.Client, req.Location, req.ContractNo, req.StartDate, req.EndDate,
		req.TotalContractValue, margin, status, progress,
		req.ProjectManager, req.SiteEngineer, projectID)
	if err != nil {
		return fmt.Errorf("failed to update project %d: %w", projectID, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteProject removes a project. Dependent rows go with it via cascade.
func DeleteProject(db *sql.DB, projectID int) error {
	result, err := db.Exec(`DELETE FROM projects WHERE id = $1`, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project %d: %w", projectID, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CreateDailyLog inserts a log with its activities in one transaction.
func CreateDailyLog(db *sql.DB, req *models.CreateDailyLogRequest) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var logID int
	err = tx.QueryRow(`
		INSERT INTO daily_logs (project_id, log_date, weather, remarks)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		req.ProjectID, req.LogDate, req.Weather, req.Remarks).Scan(&logID)
	if err != nil {
		return 0, fmt.Errorf("failed to create daily log: %w", err)
	}

	for _, a := range req.Activities {
		_, err := tx.Exec(`
			INSERT INTO daily_activities (daily_log_id, category, activity, uom, quantity, labour_count, machinery, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			logID, a.Category, a.Activity, a.UOM, a.Quantity, a.LabourCount, a.Machinery, a.Notes)
		if err != nil {
			return 0, fmt.Errorf("failed to create daily activity: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit daily log: %w", err)
	}
	return logID, nil
}

// ListDailyLogs returns a project's logs newest first, each with its
// activities. Empty date bounds leave that side of the window open.
func ListDailyLogs(db *sql.DB, projectID int, fromDate, toDate string) ([]models.DailyLog, error) {
	query := `
		SELECT id, project_id, log_date, weather, remarks, created_at
		FROM daily_logs WHERE project_id = $1`
	args := []interface{}{projectID}
	if fromDate != "" {
		args = append(args, fromDate)
		query += fmt.Sprintf(" AND log_date >= $%d", len(args))
	}
	if toDate != "" {
		args = append(args, toDate)
		query += fmt.Sprintf(" AND log_date <= $%d", len(args))
	}
	query += " ORDER BY log_date DESC, id DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily logs: %w", err)
	}
	defer rows.Close()

	var logs []models.DailyLog
	var logIDs []int64
	for rows.Next() {
		var l models.DailyLog
		if err := rows.Scan(&l.ID, &l.ProjectID, &l.LogDate, &l.Weather, &l.Remarks, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan daily log: %w", err)
		}
		l.Activities = []models.DailyActivity{}
		logs = append(logs, l)
		logIDs = append(logIDs, int64(l.ID))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return logs, nil
	}

	actRows, err := db.Query(`
		SELECT id, daily_log_id, category, activity, uom, quantity, labour_count, machinery, notes
		FROM daily_activities WHERE daily_log_id = ANY($1)
		ORDER BY id`, pq.Array(logIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to list daily activities: %w", err)
	}
	defer actRows.Close()

	byLog := make(map[int][]models.DailyActivity)
	for actRows.Next() {
		var a models.DailyActivity
		if err := actRows.Scan(&a.ID, &a.DailyLogID, &a.Category, &a.Activity, &a.UOM, &a.Quantity, &a.LabourCount, &a.Machinery, &a.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan daily activity: %w", err)
		}
		byLog[a.DailyLogID] = append(byLog[a.DailyLogID], a)
	}
	if err := actRows.Err(); err != nil {
		return nil, err
	}
	for i := range logs {
		if acts, ok := byLog[logs[i].ID]; ok {
			logs[i].Activities = acts
		}
	}
	return logs, nil
}

// ListRecentDailyLogs returns the newest logs for a project, capped at limit.
func ListRecentDailyLogs(db *sql.DB, projectID, limit int) ([]models.DailyLog, error) {
	logs, err := ListDailyLogs(db, projectID, "", "")
	if err != nil {
		return nil, err
	}
	if len(logs) > limit {
		logs = logs[:limit]
	}
	return logs, nil
}

// DeleteDailyLog removes a log and, via cascade, its activities.
func DeleteDailyLog(db *sql.DB, logID int) error {
	result, err := db.Exec(`DELETE FROM daily_logs WHERE id = $1`, logID)
	if err != nil {
		return fmt.Errorf("failed to delete daily log %d: %w", logID, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CreateCostEntry inserts a cost entry and returns its new id.
func CreateCostEntry(db *sql.DB, req *models.CreateCostEntryRequest) (int, error) {
	var id int
	err := db.QueryRow(`
		INSERT INTO cost_entries (project_id, entry_date, cost_head, description, vendor,
			amount, quantity, uom, unit_rate, payment_mode, bill_no)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		req.ProjectID, req.EntryDate, req.CostHead, req.Description, req.Vendor,
		req.Amount, req.Quantity, req.UOM, req.UnitRate, req.PaymentMode, req.BillNo).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create cost entry: %w", err)
	}
	return id, nil
}

// ListCostEntries returns a project's cost entries, optionally bounded by an
// inclusive date window. Empty bounds are open-ended.
func ListCostEntries(db *sql.DB, projectID int, fromDate, toDate string) ([]models.CostEntry, error) {
	query := `
		SELECT id, project_id, entry_date, cost_head, description, vendor,
		       amount, quantity, uom, unit_rate, payment_mode, bill_no, created_at
		FROM cost_entries WHERE project_id = $1`
	args := []interface{}{projectID}
	if fromDate != "" {
		args = append(args, fromDate)
		query += fmt.Sprintf(" AND entry_date >= $%d", len(args))
	}
	if toDate != "" {
		args = append(args, toDate)
		query += fmt.Sprintf(" AND entry_date <= $%d", len(args))
	}
	query += " ORDER BY entry_date DESC, id DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cost entries: %w", err)
	}
	defer rows.Close()

	var entries []models.CostEntry
	for rows.Next() {
		var e models.CostEntry
		if err := rows.Scan(&e.ID, &e.ProjectID, &e.EntryDate, &e.CostHead, &e.Description, &e.Vendor,
			&e.Amount, &e.Quantity, &e.UOM, &e.UnitRate, &e.PaymentMode, &e.BillNo, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cost entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeleteCostEntry removes a cost entry by id.
func DeleteCostEntry(db *sql.DB, entryID int) error {
	result, err := db.Exec(`DELETE FROM cost_entries WHERE id = $1`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete cost entry %d: %w", entryID, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpsertBudgetItem inserts a planned budget line or, when a row for the same
// project and cost head exists, overwrites its amount and notes.
func UpsertBudgetItem(db *sql.DB, req *models.UpsertBudgetItemRequest) (int, error) {
	var id int
	err := db.QueryRow(`
		INSERT INTO budget_items (project_id, cost_head, budget_amount, notes)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (project_id, cost_head)
		DO UPDATE SET budget_amount = EXCLUDED.budget_amount, notes = EXCLUDED.notes
		RETURNING id`,
		req.ProjectID, req.CostHead, req.BudgetAmount, req.Notes).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert budget item: %w", err)
	}
	return id, nil
}

// ListBudgetItems returns a project's budget lines ordered by cost head.
func ListBudgetItems(db *sql.DB, projectID int) ([]models.BudgetItem, error) {
	rows, err := db.Query(`
		SELECT id, project_id, cost_head, budget_amount, notes, created_at
		FROM budget_items WHERE project_id = $1
		ORDER BY cost_head`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budget items: %w", err)
	}
	defer rows.Close()

	var items []models.BudgetItem
	for rows.Next() {
		var b models.BudgetItem
		if err := rows.Scan(&b.ID, &b.ProjectID, &b.CostHead, &b.BudgetAmount, &b.Notes, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan budget item: %w", err)
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

// DeleteBudgetItem removes a budget line by id.
func DeleteBudgetItem(db *sql.DB, itemID int) error {
	result, err := db.Exec(`DELETE FROM budget_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete budget item %d: %w", itemID, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SumBilledRABills totals bill_amount across all running account bills.
func SumBilledRABills(db *sql.DB) (float64, error) {
	var total float64
	err := db.QueryRow(`SELECT COALESCE(SUM(bill_amount), 0) FROM ra_bills`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum RA bills: %w", err)
	}
	return total, nil
}

// CountSafetyIncidents returns the total safety incident count across projects.
func CountSafetyIncidents(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM safety_incidents`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count safety incidents: %w", err)
	}
	return count, nil
}

// CountNCRs returns the total non-conformance report count across projects.
func CountNCRs(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM ncrs`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count NCRs: %w", err)
	}
	return count, nil
}
