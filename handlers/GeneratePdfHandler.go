package handlers

import (
	"backend/services"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// GenerateDashboardPDF godoc
// @Summary      Render a project's dashboard summary as a PDF report
// @Tags         exports
// @Produce      application/pdf
// @Param        project_id  path   int     true   "Project ID"
// @Param        from_date   query  string  false  "Inclusive lower bound (YYYY-MM-DD)"
// @Param        to_date     query  string  false  "Inclusive upper bound (YYYY-MM-DD)"
// @Success      200  {file}    file
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/projects/{project_id}/summary/pdf [get]
func GenerateDashboardPDF(db *sql.DB) gin.HandlerFunc {
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

		summary, err := services.BuildDashboardSummary(project, costs, budgets, nil, fromDate, toDate, time.Now())
		if errors.Is(err, services.ErrInvalidRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary", "details": err.Error()})
			return
		}

		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()

		pdf.SetFont("Arial", "B", 16)
		pdf.Cell(190, 10, "Project Cost Dashboard")
		pdf.Ln(12)

		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(190, 7, project.Name)
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(190, 6, fmt.Sprintf("Client: %s    Location: %s", project.Client, project.Location))
		pdf.Ln(6)
		window := "all time"
		if fromDate != "" || toDate != "" {
			window = fmt.Sprintf("%s to %s", orDash(fromDate), orDash(toDate))
		}
		pdf.Cell(190, 6, "Period: "+window)
		pdf.Ln(10)

		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(190, 7, "Totals")
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(95, 6, fmt.Sprintf("Total Cost: %.2f", summary.TotalCost))
		pdf.Cell(95, 6, fmt.Sprintf("Total Budget: %.2f", summary.TotalBudget))
		pdf.Ln(6)
		if summary.PercentOverUnderBudget != nil {
			pdf.Cell(95, 6, fmt.Sprintf("Over/Under Budget: %.2f%%", *summary.PercentOverUnderBudget))
		} else {
			pdf.Cell(95, 6, "Over/Under Budget: n/a")
		}
		if summary.CurrentProfitMargin != nil {
			pdf.Cell(95, 6, fmt.Sprintf("Current Profit Margin: %.2f%%", *summary.CurrentProfitMargin))
		}
		pdf.Ln(10)

		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(190, 7, "Variance by Cost Head")
		pdf.Ln(7)
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(70, 6, "Cost Head", "1", 0, "", false, 0, "")
		pdf.CellFormat(40, 6, "Actual", "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, "Budget", "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, "Variance", "1", 1, "R", false, 0, "")
		pdf.SetFont("Arial", "", 9)

		heads := make([]string, 0, len(summary.VarianceByHead))
		for head := range summary.VarianceByHead {
			heads = append(heads, head)
		}
		sort.Strings(heads)
		for _, head := range heads {
			pdf.CellFormat(70, 6, head, "1", 0, "", false, 0, "")
			pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", summary.CostByHead[head]), "1", 0, "R", false, 0, "")
			pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", summary.BudgetByHead[head]), "1", 0, "R", false, 0, "")
			pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", summary.VarianceByHead[head]), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(6)

		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(190, 7, "Job Costing Categories")
		pdf.Ln(7)
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(50, 6, "Category", "1", 0, "", false, 0, "")
		pdf.CellFormat(45, 6, "Planned", "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 6, "Actual", "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 6, "% of Total Actual", "1", 1, "R", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		for _, cat := range summary.JobCostingCategories {
			pdf.CellFormat(50, 6, cat.Category, "1", 0, "", false, 0, "")
			pdf.CellFormat(45, 6, fmt.Sprintf("%.2f", cat.PlannedCost), "1", 0, "R", false, 0, "")
			pdf.CellFormat(45, 6, fmt.Sprintf("%.2f", cat.ActualCost), "1", 0, "R", false, 0, "")
			pdf.CellFormat(50, 6, fmt.Sprintf("%.2f%%", cat.PercentOfTotalActual), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(8)

		pdf.SetFont("Arial", "I", 8)
		pdf.Cell(190, 6, "Generated on: "+time.Now().Format("2006-01-02 15:04:05"))

		c.Header("Content-Type", "application/pdf")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=dashboard_%d.pdf", projectID))
		if err := pdf.Output(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
			return
		}
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
