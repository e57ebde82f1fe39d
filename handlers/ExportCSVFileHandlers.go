package handlers

import (
	"backend/repository"
	"backend/services"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// ExportCostEntriesExcel godoc
// @Summary      Export a project's cost entries as an Excel workbook
// @Tags         exports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        project_id  path   int     true   "Project ID"
// @Param        from_date   query  string  false  "Inclusive lower bound (YYYY-MM-DD)"
// @Param        to_date     query  string  false  "Inclusive upper bound (YYYY-MM-DD)"
// @Success      200  {file}    file
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/projects/{project_id}/cost-entries/export [get]
func ExportCostEntriesExcel(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := strconv.Atoi(c.Param("project_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
			return
		}
		fromDate, toDate, ok := bindDateRange(c)
		if !ok {
			return
		}
		if err := services.ValidateDateRange(fromDate, toDate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}

		project, err := repository.GetProject(db, projectID)
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project", "details": err.Error()})
			return
		}

		entries, err := repository.ListCostEntries(db, projectID, fromDate, toDate)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cost entries", "details": err.Error()})
			return
		}

		f := excelize.NewFile()
		defer func() {
			if err := f.Close(); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error closing Excel file"})
			}
		}()

		sheet := "Cost Entries"
		index, err := f.NewSheet(sheet)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating sheet"})
			return
		}
		f.SetActiveSheet(index)
		f.DeleteSheet("Sheet1")

		f.SetCellValue(sheet, "A1", "Project")
		f.SetCellValue(sheet, "B1", project.Name)
		f.SetCellValue(sheet, "A2", "Client")
		f.SetCellValue(sheet, "B2", project.Client)

		headers := []string{"ID", "Date", "Cost Head", "Category", "Description", "Vendor", "Amount", "Quantity", "UOM", "Unit Rate", "Payment Mode", "Bill No"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 4)
			f.SetCellValue(sheet, cell, h)
		}

		row := 5
		total := 0.0
		for _, e := range entries {
			values := []interface{}{
				e.ID, e.EntryDate, e.CostHead, services.CategoryForHead(e.CostHead),
				e.Description, deref(e.Vendor), e.Amount,
				derefFloat(e.Quantity), deref(e.UOM), derefFloat(e.UnitRate),
				deref(e.PaymentMode), deref(e.BillNo),
			}
			for i, v := range values {
				cell, _ := excelize.CoordinatesToCellName(i+1, row)
				f.SetCellValue(sheet, cell, v)
			}
			total += e.Amount
			row++
		}
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row+1), "Total")
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row+1), total)

		filename := fmt.Sprintf("cost_entries_%d_%s.xlsx", projectID, uuid.New().String()[:8])
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", "attachment;filename="+filename)
		if err := f.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error writing Excel file"})
		}
	}
}

// ExportJobCostingExcel godoc
// @Summary      Export the five-category job costing rollup as Excel
// @Tags         exports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        project_id  path   int     true   "Project ID"
// @Param        from_date   query  string  false  "Inclusive lower bound (YYYY-MM-DD)"
// @Param        to_date     query  string  false  "Inclusive upper bound (YYYY-MM-DD)"
// @Success      200  {file}    file
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/projects/{project_id}/job-costing/export [get]
func ExportJobCostingExcel(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := strconv.Atoi(c.Param("project_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
			return
		}
		fromDate, toDate, ok := bindDateRange(c)
		if !ok {
			return
		}

		project, costs, budgets, err := fetchSummaryInputs(db, projectID)
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load summary inputs", "details": err.Error()})
			return
		}

		summary, err := services.BuildJobCostingSummary(project, costs, budgets, fromDate, toDate)
		if errors.Is(err, services.ErrInvalidRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build job costing summary", "details": err.Error()})
			return
		}

		f := excelize.NewFile()
		defer func() {
			if err := f.Close(); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error closing Excel file"})
			}
		}()

		sheet := "Job Costing"
		index, err := f.NewSheet(sheet)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating sheet"})
			return
		}
		f.SetActiveSheet(index)
		f.DeleteSheet("Sheet1")

		f.SetCellValue(sheet, "A1", "Project")
		f.SetCellValue(sheet, "B1", summary.ProjectName)
		f.SetCellValue(sheet, "A2", "Client")
		f.SetCellValue(sheet, "B2", summary.Client)

		headers := []string{"Category", "Planned Cost", "Actual Cost", "% of Total Actual", "% Over/Under Budget"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 4)
			f.SetCellValue(sheet, cell, h)
		}
		row := 5
		for _, cat := range summary.Categories {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), cat.Category)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), cat.PlannedCost)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), cat.ActualCost)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), cat.PercentOfTotalActual)
			if cat.PercentOverUnderBudget != nil {
				f.SetCellValue(sheet, fmt.Sprintf("E%d", row), *cat.PercentOverUnderBudget)
			} else {
				f.SetCellValue(sheet, fmt.Sprintf("E%d", row), "n/a")
			}
			row++
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row+1), "Total")
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row+1), summary.TotalPlannedCost)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row+1), summary.TotalActualCost)

		filename := fmt.Sprintf("job_costing_%d_%s.xlsx", projectID, uuid.New().String()[:8])
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", "attachment;filename="+filename)
		if err := f.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error writing Excel file"})
		}
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
