package handlers

import (
	"backend/models"
	"backend/repository"
	"backend/utils"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var projectStatuses = map[string]bool{
	"Planning":   true,
	"Execution":  true,
	"Monitoring": true,
	"Completed":  true,
	"Cancelled":  true,
}

func validateProjectRequest(req *models.CreateProjectRequest) error {
	if req.StartDate != nil {
		if err := utils.ValidateISODate(*req.StartDate); err != nil {
			return err
		}
	}
	if req.EndDate != nil {
		if err := utils.ValidateISODate(*req.EndDate); err != nil {
			return err
		}
	}
	if req.Status != nil && *req.Status != "" && !projectStatuses[*req.Status] {
		return fmt.Errorf("invalid status %q", *req.Status)
	}
	return nil
}

// CreateProject godoc
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        project  body      models.CreateProjectRequest  true  "Project"
// @Success      201      {object}  models.CreateProjectResponse
// @Failure      400      {object}  models.ErrorResponse
// @Failure      500      {object}  models.ErrorResponse
// @Router       /api/projects [post]
func CreateProject(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}
		if err := validateProjectRequest(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}

		id, err := repository.CreateProject(db, &req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project", "details": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, models.CreateProjectResponse{
			Message:   "Project created successfully",
			ProjectID: id,
		})
	}
}

// ListProjects godoc
// @Summary      List all projects
// @Tags         projects
// @Produce      json
// @Success      200  {array}   models.Project
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/projects [get]
func ListProjects(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		projects, err := repository.ListProjects(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list projects", "details": err.Error()})
			return
		}
		if projects == nil {
			projects = []models.Project{}
		}
		c.JSON(http.StatusOK, projects)
	}
}

// GetProject godoc
// @Summary      Get a project by id
// @Tags         projects
// @Produce      json
// @Param        project_id  path      int  true  "Project ID"
// @Success      200         {object}  models.Project
// @Failure      404         {object}  models.ErrorResponse
// @Failure      500         {object}  models.ErrorResponse
// @Router       /api/projects/{project_id} [get]
func GetProject(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := strconv.Atoi(c.Param("project_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
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
		c.JSON(http.StatusOK, project)
	}
}

// UpdateProject godoc
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        project_id  path      int                          true  "Project ID"
// @Param        project     body      models.CreateProjectRequest  true  "Project"
// @Success      200         {object}  models.MessageResponse
// @Failure      400         {object}  models.ErrorResponse
// @Failure      404         {object}  models.ErrorResponse
// @Failure      500         {object}  models.ErrorResponse
// @Router       /api/projects/{project_id} [put]
func UpdateProject(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := strconv.Atoi(c.Param("project_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
			return
		}

		var req models.CreateProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}
		if err := validateProjectRequest(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}

		err = repository.UpdateProject(db, projectID, &req)
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse{Message: "Project updated successfully"})
	}
}

// DeleteProject godoc
// @Summary      Delete a project and all its dependent records
// @Tags         projects
// @Produce      json
// @Param        project_id  path      int  true  "Project ID"
// @Success      200         {object}  models.MessageResponse
// @Failure      404         {object}  models.ErrorResponse
// @Failure      500         {object}  models.ErrorResponse
// @Router       /api/projects/{project_id} [delete]
func DeleteProject(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := strconv.Atoi(c.Param("project_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
			return
		}

		err = repository.DeleteProject(db, projectID)
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse{Message: "Project deleted successfully"})
	}
}
