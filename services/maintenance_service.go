package services

import (
	"backend/utils"
	"context"
	"database/sql"
	"fmt"
	"log"
)

// RecomputeQualityMetrics refreshes the derived columns on quality records:
// pass_rate from passed/conducted counts, and closure_days for NCRs that
// have both raised and closure dates.
func RecomputeQualityMetrics(ctx context.Context, db *sql.DB) error {
	queryCtx, cancel := utils.DefaultQueryContext(ctx)
	defer cancel()

	result, err := db.ExecContext(queryCtx, `
		UPDATE quality_tests
		SET pass_rate = ROUND((passed_tests::numeric / conducted_tests) * 100.0, 2)
		WHERE conducted_tests > 0`)
	if err != nil {
		return fmt.Errorf("failed to recompute pass rates: %w", err)
	}
	testRows, _ := result.RowsAffected()

	result, err = db.ExecContext(queryCtx, `
		UPDATE ncrs
		SET closure_days = (closure_date::date - raised_date::date)
		WHERE closure_date IS NOT NULL AND raised_date IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to recompute NCR closure days: %w", err)
	}
	ncrRows, _ := result.RowsAffected()

	log.Printf("Quality metrics recomputed: %d tests, %d NCRs", testRows, ncrRows)
	return nil
}

// RecomputeBillingCycles refreshes the certification and payment cycle-day
// columns on running account bills from their date trail.
func RecomputeBillingCycles(ctx context.Context, db *sql.DB) error {
	queryCtx, cancel := utils.SlowQueryContext(ctx)
	defer cancel()

	_, err := db.ExecContext(queryCtx, `
		UPDATE ra_bills
		SET certification_cycle_days = (certified_date::date - submitted_date::date)
		WHERE certified_date IS NOT NULL AND submitted_date IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to recompute certification cycles: %w", err)
	}

	_, err = db.ExecContext(queryCtx, `
		UPDATE ra_bills
		SET payment_cycle_days = (paid_date::date - certified_date::date)
		WHERE paid_date IS NOT NULL AND certified_date IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to recompute payment cycles: %w", err)
	}
	return nil
}
