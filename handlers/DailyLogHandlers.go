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

	"github.com/gin-gonic/gin"
)

// CreateDailyLog godoc
// @Summary      Create a daily log with its activity lines
// @Tags         daily-logs
// @Accept       json
// @Produce      json
// @Param        log  body      models.CreateDailyLogRequest  true  "Daily log"
// @Success      201  {object}  models.CreateRecordResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/daily-logs [post]
func CreateDailyLog(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateDailyLogRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}
		if err := utils.ValidateISODate(req.LogDate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}

		exists, err := repository.ProjectExists(db, req.ProjectID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check project", "details": err.Error()})
			return
		}
		if !exists {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}

		id, err := repository.CreateDailyLog(db, &req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create daily log", "details": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, models.CreateRecordResponse{
			Message: "Daily log created successfully",
			ID:      id,
		})
	}
}

// ListDailyLogs godoc
// @Summary      List a project's daily logs, newest first, optionally date-bounded
// @Tags         daily-logs
// @Produce      json
// @Param        project_id  path      int     true   "Project ID"
// @Param        from_date   query    string  false  "Inclusive lower bound (YYYY-MM-DD)"
// @Param        to_date     query    string  false  "Inclusive upper bound (YYYY-MM-DD)"
// @Success      200         {array}   models.DailyLog
// @Failure      400         {object}  models.ErrorResponse
// @Failure      404         {object}  models.ErrorResponse
// @Failure      500         {object}  models.ErrorResponse
// @Router       /api/projects/{project_id}/daily-logs [get]
func ListDailyLogs(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := strconv.Atoi(c.Param("project_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
			return
		}

		fromDate := c.Query("from_date")
		toDate := c.Query("to_date")
		if err := utils.ValidateISODate(fromDate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}
		if err := utils.ValidateISODate(toDate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}
		if err := services.ValidateDateRange(fromDate, toDate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}

		exists, err := repository.ProjectExists(db, projectID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check project", "details": err.Error()})
			return
		}
		if !exists {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}

		logs, err := repository.ListDailyLogs(db, projectID, fromDate, toDate)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list daily logs", "details": err.Error()})
			return
		}
		if logs == nil {
			logs = []models.DailyLog{}
		}
		c.JSON(http.StatusOK, logs)
	}
}

// DeleteDailyLog godoc
// @Summary      Delete a daily log and its activities
// @Tags         daily-logs
// @Produce      json
// @Param        log_id  path      int  true  "Daily log ID"
// @Success      200     {object}  models.MessageResponse
// @Failure      404     {object}  models.ErrorResponse
// @Failure      500     {object}  models.ErrorResponse
// @Router       /api/daily-logs/{log_id} [delete]
func DeleteDailyLog(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		logID, err := strconv.Atoi(c.Param("log_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid log id"})
			return
		}

		err = repository.DeleteDailyLog(db, logID)
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Daily log not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete daily log", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse{Message: "Daily log deleted successfully"})
	}
}
