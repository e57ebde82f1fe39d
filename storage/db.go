package storage

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

var db *sql.DB

func InitDB() *sql.DB {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")

	connStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		user, password, dbname, host, port)

	var err error
	db, err = sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Set connection pool settings optimized for light server load
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	return db
}

func GetDB() *sql.DB {
	return db
}

// InitSchema creates the core costing tables. Date columns hold ISO
// YYYY-MM-DD text so lexicographic comparison matches chronological order.
func InitSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS projects (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		client TEXT NOT NULL,
		location TEXT NOT NULL,
		contract_no TEXT,
		start_date TEXT,
		end_date TEXT,
		total_contract_value DOUBLE PRECISION,
		profit_margin_target DOUBLE PRECISION NOT NULL DEFAULT 10.0,
		status TEXT NOT NULL DEFAULT 'Planning',
		progress_percent DOUBLE PRECISION NOT NULL DEFAULT 0,
		project_manager TEXT,
		site_engineer TEXT,
		created_at TEXT NOT NULL DEFAULT to_char(now(), 'YYYY-MM-DD"T"HH24:MI:SS')
	);

	CREATE TABLE IF NOT EXISTS daily_logs (
		id SERIAL PRIMARY KEY,
		project_id INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		log_date TEXT NOT NULL,
		weather TEXT,
		remarks TEXT,
		created_at TEXT NOT NULL DEFAULT to_char(now(), 'YYYY-MM-DD"T"HH24:MI:SS')
	);

	CREATE TABLE IF NOT EXISTS daily_activities (
		id SERIAL PRIMARY KEY,
		daily_log_id INTEGER NOT NULL REFERENCES daily_logs(id) ON DELETE CASCADE,
		category TEXT NOT NULL,
		activity TEXT NOT NULL,
		uom TEXT NOT NULL,
		quantity DOUBLE PRECISION NOT NULL DEFAULT 0,
		labour_count INTEGER NOT NULL DEFAULT 0,
		machinery TEXT,
		notes TEXT
	);

	CREATE TABLE IF NOT EXISTS cost_entries (
		id SERIAL PRIMARY KEY,
		project_id INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		entry_date TEXT NOT NULL,
		cost_head TEXT NOT NULL,
		description TEXT NOT NULL,
		vendor TEXT,
		amount DOUBLE PRECISION NOT NULL,
		quantity DOUBLE PRECISION,
		uom TEXT,
		unit_rate DOUBLE PRECISION,
		payment_mode TEXT,
		bill_no TEXT,
		created_at TEXT NOT NULL DEFAULT to_char(now(), 'YYYY-MM-DD"T"HH24:MI:SS')
	);

	CREATE TABLE IF NOT EXISTS budget_items (
		id SERIAL PRIMARY KEY,
		project_id INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		cost_head TEXT NOT NULL,
		budget_amount DOUBLE PRECISION NOT NULL,
		notes TEXT,
		created_at TEXT NOT NULL DEFAULT to_char(now(), 'YYYY-MM-DD"T"HH24:MI:SS'),
		UNIQUE(project_id, cost_head)
	);

	CREATE INDEX IF NOT EXISTS idx_daily_logs_project_date ON daily_logs(project_id, log_date);
	CREATE INDEX IF NOT EXISTS idx_cost_entries_project_date ON cost_entries(project_id, entry_date);
	CREATE INDEX IF NOT EXISTS idx_budget_items_project ON budget_items(project_id);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %v", err)
	}
	return nil
}

// SeedIfEmpty inserts a sample project with supporting records when the
// projects table has no rows. Safe to call on every startup.
func SeedIfEmpty(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM projects`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count projects: %v", err)
	}
	if count > 0 {
		return nil
	}

	var projectID int
	err := db.QueryRow(`
		INSERT INTO projects (name, client, location, contract_no, start_date, end_date,
			total_contract_value, profit_margin_target, status, progress_percent,
			project_manager, site_engineer)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`,
		"Railway ROB + Bridge Works (Pile Foundation & Sub-Structure)",
		"Indian Railways / PWD",
		"Maharashtra",
		"PWD-IR-ROB-001",
		"2026-01-01",
		"2026-12-31",
		100000000.0,
		12.0,
		"Execution",
		72.5,
		"Shri. A. K. Sharma",
		"Er. R. K. Gupta",
	).Scan(&projectID)
	if err != nil {
		return fmt.Errorf("failed to seed project: %v", err)
	}

	budgets := []struct {
		costHead string
		amount   float64
		notes    string
	}{
		{"Labour - Skilled", 15000000, "Masons, carpenters, bar benders"},
		{"Materials - Cement", 12000000, "OPC 53 grade"},
		{"Materials - Steel", 18000000, "Fe500D reinforcement"},
		{"Equipment Hire", 9000000, "Piling rig, batching plant, cranes"},
		{"Subcontract - Piling", 20000000, "Pile foundation package"},
		{"Site Overheads", 6000000, "Office, utilities, consumables"},
	}
	for _, b := range budgets {
		_, err := db.Exec(`
			INSERT INTO budget_items (project_id, cost_head, budget_amount, notes)
			VALUES ($1, $2, $3, $4)`,
			projectID, b.costHead, b.amount, b.notes)
		if err != nil {
			return fmt.Errorf("failed to seed budget item %q: %v", b.costHead, err)
		}
	}

	costs := []struct {
		entryDate string
		costHead  string
		desc      string
		vendor    string
		amount    float64
	}{
		{"2026-02-10", "Labour - Skilled", "Pile cap shuttering gang", "Shree Labour Co", 420000},
		{"2026-02-18", "Materials - Cement", "OPC 53 supply, 400 bags", "UltraTech Dealer", 168000},
		{"2026-03-05", "Materials - Steel", "Fe500D 25mm bars, 60 MT", "JSW Stockist", 3480000},
		{"2026-03-20", "Equipment Hire", "Piling rig monthly hire", "Heavy Lift Rentals", 850000},
		{"2026-04-02", "Subcontract - Piling", "RA bill against pile package", "Deep Foundations Pvt Ltd", 4200000},
		{"2026-04-15", "Site Overheads", "Site office and utilities", "", 145000},
	}
	for _, ce := range costs {
		_, err := db.Exec(`
			INSERT INTO cost_entries (project_id, entry_date, cost_head, description, vendor, amount)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			projectID, ce.entryDate, ce.costHead, ce.desc, ce.vendor, ce.amount)
		if err != nil {
			return fmt.Errorf("failed to seed cost entry: %v", err)
		}
	}

	logs := []struct {
		logDate string
		weather string
		remarks string
	}{
		{"2026-04-12", "Sunny", "Pile boring continued at P14-P18"},
		{"2026-04-13", "Cloudy", "Reinforcement cage lowering for P14"},
		{"2026-04-14", "Rain", "Concreting held up in the afternoon"},
	}
	for _, dl := range logs {
		var logID int
		err := db.QueryRow(`
			INSERT INTO daily_logs (project_id, log_date, weather, remarks)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			projectID, dl.logDate, dl.weather, dl.remarks).Scan(&logID)
		if err != nil {
			return fmt.Errorf("failed to seed daily log: %v", err)
		}
		_, err = db.Exec(`
			INSERT INTO daily_activities (daily_log_id, category, activity, uom, quantity, labour_count, machinery)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			logID, "Foundation", "Pile boring", "m", 36.0, 18, "Piling rig")
		if err != nil {
			return fmt.Errorf("failed to seed daily activity: %v", err)
		}
	}

	log.Printf("Database seeded with sample project ID: %d", projectID)
	return nil
}
