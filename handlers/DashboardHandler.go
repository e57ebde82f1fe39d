package handlers

import (
	"backend/models"
	"backend/repository"
	"backend/services"
	"backend/utils"
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// RecentLogsLimit caps how many daily logs ride along with a summary.
const RecentLogsLimit = 10

// fetchSummaryInputs loads the rows a per-project summary is computed from.
// Returns sql.ErrNoRows when the project does not exist.
func fetchSummaryInputs(db *sql.DB, projectID int) (*models.Project, []models.CostEntry, []models.BudgetItem, error) {
	project, err := repository.GetProject(db, projectID)
	if err != nil {
		return nil, nil, nil, err
	}
	costs, err := repository.ListCostEntries(db, projectID, "", "")
	if err != nil {
		return nil, nil, nil, err
	}
	budgets, err := repository.ListBudgetItems(db, projectID)
	if err != nil {
		return nil, nil, nil, err
	}
	return project, costs, budgets, nil
}

func bindDateRange(c *gin.Context) (string, string, bool) {
	fromDate := c.Query("from_date")
	toDate := c.Query("to_date")
	if err := utils.ValidateISODate(fromDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return "", "", false
	}
	if err := utils.ValidateISODate(toDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return "", "", false
	}
	return fromDate, toDate, true
}

// GetDashboardSummary godoc
// @Summary      Per-project cost/budget dashboard summary
// @Description  Recomputed from current rows on every request; cost entries
// @Description  honor the optional inclusive date window, budgets never do.
// @Tags         dashboard
// @Produce      json
// @Param        project_id  path      int     true   "Project ID"
// @Param        from_date   query    string  false  "Inclusive lower bound (YYYY-MM-DD)"
// @Param        to_date     query    string  false  "Inclusive upper bound (YYYY-MM-DD)"
// @Success      200         {object}  models.DashboardSummary
// @Failure      400         {object}  models.ErrorResponse
// @Failure      404         {object}  models.ErrorResponse
// @Failure      500         {object}  models.ErrorResponse
// @Router       /api/projects/{project_id}/summary [get]
func GetDashboardSummary(db *sql.DB) gin.HandlerFunc {
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

		recentLogs, err := repository.ListRecentDailyLogs(db, projectID, RecentLogsLimit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recent logs", "details": err.Error()})
			return
		}

		summary, err := services.BuildDashboardSummary(project, costs, budgets, recentLogs, fromDate, toDate, time.Now())
		if errors.Is(err, services.ErrInvalidRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

// GetJobCostingSummary godoc
// @Summary      Five-category job costing rollup for a project
// @Tags         dashboard
// @Produce      json
// @Param        project_id  path      int     true   "Project ID"
// @Param        from_date   query    string  false  "Inclusive lower bound (YYYY-MM-DD)"
// @Param        to_date     query    string  false  "Inclusive upper bound (YYYY-MM-DD)"
// @Success      200         {object}  models.JobCostingSummary
// @Failure      400         {object}  models.ErrorResponse
// @Failure      404         {object}  models.ErrorResponse
// @Failure      500         {object}  models.ErrorResponse
// @Router       /api/projects/{project_id}/job-costing [get]
func GetJobCostingSummary(db *sql.DB) gin.HandlerFunc {
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
		c.JSON(http.StatusOK, summary)
	}
}

// GetPortfolioOverview godoc
// @Summary      Fleet-level rollup across all projects
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  models.PortfolioOverview
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/portfolio/overview [get]
func GetPortfolioOverview(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		projects, err := repository.ListProjects(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list projects", "details": err.Error()})
			return
		}
		billedTotal, err := repository.SumBilledRABills(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sum billed value", "details": err.Error()})
			return
		}
		incidentCount, err := repository.CountSafetyIncidents(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count safety incidents", "details": err.Error()})
			return
		}
		ncrCount, err := repository.CountNCRs(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count NCRs", "details": err.Error()})
			return
		}

		overview := services.BuildPortfolioOverview(projects, billedTotal, incidentCount, ncrCount, time.Now())
		c.JSON(http.StatusOK, overview)
	}
}
