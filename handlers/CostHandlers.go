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

// CreateCostEntry godoc
// @Summary      Record an actual cost against a project
// @Tags         costs
// @Accept       json
// @Produce      json
// @Param        entry  body      models.CreateCostEntryRequest  true  "Cost entry"
// @Success      201    {object}  models.CreateRecordResponse
// @Failure      400    {object}  models.ErrorResponse
// @Failure      404    {object}  models.ErrorResponse
// @Failure      500    {object}  models.ErrorResponse
// @Router       /api/cost-entries [post]
func CreateCostEntry(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateCostEntryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}
		if err := utils.ValidateISODate(req.EntryDate); err != nil {
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

		id, err := repository.CreateCostEntry(db, &req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cost entry", "details": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, models.CreateRecordResponse{
			Message: "Cost entry created successfully",
			ID:      id,
		})
	}
}

// ListCostEntries godoc
// @Summary      List a project's cost entries, optionally date-bounded
// @Tags         costs
// @Produce      json
// @Param        project_id  path      int     true   "Project ID"
// @Param        from_date   query    string  false  "Inclusive lower bound (YYYY-MM-DD)"
// @Param        to_date     query    string  false  "Inclusive upper bound (YYYY-MM-DD)"
// @Success      200         {array}   models.CostEntry
// @Failure      400         {object}  models.ErrorResponse
// @Failure      404         {object}  models.ErrorResponse
// @Failure      500         {object}  models.ErrorResponse
// @Router       /api/projects/{project_id}/cost-entries [get]
func ListCostEntries(db *sql.DB) gin.HandlerFunc {
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

		entries, err := repository.ListCostEntries(db, projectID, fromDate, toDate)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cost entries", "details": err.Error()})
			return
		}
		if entries == nil {
			entries = []models.CostEntry{}
		}
		c.JSON(http.StatusOK, entries)
	}
}

// DeleteCostEntry godoc
// @Summary      Delete a cost entry
// @Tags         costs
// @Produce      json
// @Param        entry_id  path      int  true  "Cost entry ID"
// @Success      200       {object}  models.MessageResponse
// @Failure      404       {object}  models.ErrorResponse
// @Failure      500       {object}  models.ErrorResponse
// @Router       /api/cost-entries/{entry_id} [delete]
func DeleteCostEntry(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		entryID, err := strconv.Atoi(c.Param("entry_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry id"})
			return
		}

		err = repository.DeleteCostEntry(db, entryID)
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cost entry not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cost entry", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse{Message: "Cost entry deleted successfully"})
	}
}
