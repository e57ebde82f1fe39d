package handlers

import (
	"backend/models"
	"backend/repository"
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// UpsertBudgetItem godoc
// @Summary      Create or overwrite a project's budget line for a cost head
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        item  body      models.UpsertBudgetItemRequest  true  "Budget item"
// @Success      200   {object}  models.CreateRecordResponse
// @Failure      400   {object}  models.ErrorResponse
// @Failure      404   {object}  models.ErrorResponse
// @Failure      500   {object}  models.ErrorResponse
// @Router       /api/budget-items [post]
func UpsertBudgetItem(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.UpsertBudgetItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
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

		id, err := repository.UpsertBudgetItem(db, &req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save budget item", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, models.CreateRecordResponse{
			Message: "Budget item saved successfully",
			ID:      id,
		})
	}
}

// ListBudgetItems godoc
// @Summary      List a project's budget lines
// @Tags         budgets
// @Produce      json
// @Param        project_id  path      int  true  "Project ID"
// @Success      200         {array}   models.BudgetItem
// @Failure      404         {object}  models.ErrorResponse
// @Failure      500         {object}  models.ErrorResponse
// @Router       /api/projects/{project_id}/budget-items [get]
func ListBudgetItems(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := strconv.Atoi(c.Param("project_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
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

		items, err := repository.ListBudgetItems(db, projectID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list budget items", "details": err.Error()})
			return
		}
		if items == nil {
			items = []models.BudgetItem{}
		}
		c.JSON(http.StatusOK, items)
	}
}

// DeleteBudgetItem godoc
// @Summary      Delete a budget line
// @Tags         budgets
// @Produce      json
// @Param        item_id  path      int  true  "Budget item ID"
// @Success      200      {object}  models.MessageResponse
// @Failure      404      {object}  models.ErrorResponse
// @Failure      500      {object}  models.ErrorResponse
// @Router       /api/budget-items/{item_id} [delete]
func DeleteBudgetItem(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.Atoi(c.Param("item_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
			return
		}

		err = repository.DeleteBudgetItem(db, itemID)
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Budget item not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete budget item", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse{Message: "Budget item deleted successfully"})
	}
}
