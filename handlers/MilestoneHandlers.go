package handlers

import (
	"backend/models"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// scopeByProject narrows a query to one project when project_id is supplied.
func scopeByProject(c *gin.Context, query *gorm.DB) (*gorm.DB, bool) {
	raw := c.Query("project_id")
	if raw == "" {
		return query, true
	}
	projectID, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
		return nil, false
	}
	return query.Where("project_id = ?", projectID), true
}

// ListMilestones godoc
// @Summary      List project milestones
// @Tags         milestones
// @Produce      json
// @Param        project_id  query     int  false  "Filter by project"
// @Success      200         {array}   models.ProjectMilestone
// @Failure      500         {object}  models.ErrorResponse
// @Router       /api/milestones [get]
func ListMilestones(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query, ok := scopeByProject(c, gdb.Model(&models.ProjectMilestone{}))
		if !ok {
			return
		}
		milestones := []models.ProjectMilestone{}
		if err := query.Order("id").Find(&milestones).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list milestones", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, milestones)
	}
}

// CreateMilestone godoc
// @Summary      Create a project milestone
// @Tags         milestones
// @Accept       json
// @Produce      json
// @Param        milestone  body      models.ProjectMilestone  true  "Milestone"
// @Success      201        {object}  models.ProjectMilestone
// @Failure      400        {object}  models.ErrorResponse
// @Failure      500        {object}  models.ErrorResponse
// @Router       /api/milestones [post]
func CreateMilestone(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var milestone models.ProjectMilestone
		if err := c.ShouldBindJSON(&milestone); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}
		if err := gdb.Create(&milestone).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create milestone", "details": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, milestone)
	}
}

// DeleteMilestone godoc
// @Summary      Delete a project milestone
// @Tags         milestones
// @Produce      json
// @Param        id   path      int  true  "Milestone ID"
// @Success      200  {object}  models.MessageResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/milestones/{id} [delete]
func DeleteMilestone(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleteByID(c, gdb, &models.ProjectMilestone{}, "Milestone")
	}
}

// ListDelayReasons godoc
// @Summary      List recorded schedule delays
// @Tags         delays
// @Produce      json
// @Param        project_id  query     int  false  "Filter by project"
// @Success      200         {array}   models.DelayReason
// @Failure      500         {object}  models.ErrorResponse
// @Router       /api/delay-reasons [get]
func ListDelayReasons(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query, ok := scopeByProject(c, gdb.Model(&models.DelayReason{}))
		if !ok {
			return
		}
		delays := []models.DelayReason{}
		if err := query.Order("delay_date DESC, id DESC").Find(&delays).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list delay reasons", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, delays)
	}
}

// CreateDelayReason godoc
// @Summary      Record a schedule delay
// @Tags         delays
// @Accept       json
// @Produce      json
// @Param        delay  body      models.DelayReason  true  "Delay reason"
// @Success      201    {object}  models.DelayReason
// @Failure      400    {object}  models.ErrorResponse
// @Failure      500    {object}  models.ErrorResponse
// @Router       /api/delay-reasons [post]
func CreateDelayReason(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var delay models.DelayReason
		if err := c.ShouldBindJSON(&delay); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}
		if err := gdb.Create(&delay).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create delay reason", "details": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, delay)
	}
}

// DeleteDelayReason godoc
// @Summary      Delete a delay record
// @Tags         delays
// @Produce      json
// @Param        id   path      int  true  "Delay reason ID"
// @Success      200  {object}  models.MessageResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/delay-reasons/{id} [delete]
func DeleteDelayReason(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleteByID(c, gdb, &models.DelayReason{}, "Delay reason")
	}
}

// deleteByID removes one row of the given model, 404ing when absent.
func deleteByID(c *gin.Context, gdb *gorm.DB, model interface{}, label string) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}
	result := gdb.Delete(model, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete record", "details": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": label + " not found"})
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: label + " deleted successfully"})
}
