package handlers

import (
	"backend/models"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListProjectPackages godoc
// @Summary      List work packages
// @Tags         packages
// @Produce      json
// @Param        project_id  query     int  false  "Filter by project"
// @Success      200         {array}   models.ProjectPackage
// @Failure      500         {object}  models.ErrorResponse
// @Router       /api/project-packages [get]
func ListProjectPackages(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query, ok := scopeByProject(c, gdb.Model(&models.ProjectPackage{}))
		if !ok {
			return
		}
		packages := []models.ProjectPackage{}
		if err := query.Order("id DESC").Find(&packages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list packages", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, packages)
	}
}

// CreateProjectPackage godoc
// @Summary      Create a work package
// @Tags         packages
// @Accept       json
// @Produce      json
// @Param        package  body      models.ProjectPackage  true  "Work package"
// @Success      201      {object}  models.ProjectPackage
// @Failure      400      {object}  models.ErrorResponse
// @Failure      500      {object}  models.ErrorResponse
// @Router       /api/project-packages [post]
func CreateProjectPackage(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pkg models.ProjectPackage
		if err := c.ShouldBindJSON(&pkg); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}
		if err := gdb.Create(&pkg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create package", "details": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, pkg)
	}
}

// DeleteProjectPackage godoc
// @Summary      Delete a work package
// @Tags         packages
// @Produce      json
// @Param        id   path      int  true  "Package ID"
// @Success      200  {object}  models.MessageResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/project-packages/{id} [delete]
func DeleteProjectPackage(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleteByID(c, gdb, &models.ProjectPackage{}, "Package")
	}
}

// ListDrawingsApprovals godoc
// @Summary      List drawing submissions and approvals
// @Tags         approvals
// @Produce      json
// @Param        project_id  query     int  false  "Filter by project"
// @Success      200         {array}   models.DrawingsApproval
// @Failure      500         {object}  models.ErrorResponse
// @Router       /api/drawings-approvals [get]
func ListDrawingsApprovals(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query, ok := scopeByProject(c, gdb.Model(&models.DrawingsApproval{}))
		if !ok {
			return
		}
		drawings := []models.DrawingsApproval{}
		if err := query.Order("submitted_date DESC, id DESC").Find(&drawings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list drawings", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, drawings)
	}
}

// CreateDrawingsApproval godoc
// @Summary      Record a drawing submission
// @Tags         approvals
// @Accept       json
// @Produce      json
// @Param        drawing  body      models.DrawingsApproval  true  "Drawing approval"
// @Success      201      {object}  models.DrawingsApproval
// @Failure      400      {object}  models.ErrorResponse
// @Failure      500      {object}  models.ErrorResponse
// @Router       /api/drawings-approvals [post]
func CreateDrawingsApproval(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var drawing models.DrawingsApproval
		if err := c.ShouldBindJSON(&drawing); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}
		if err := gdb.Create(&drawing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create drawing record", "details": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, drawing)
	}
}

// DeleteDrawingsApproval godoc
// @Summary      Delete a drawing record
// @Tags         approvals
// @Produce      json
// @Param        id   path      int  true  "Drawing record ID"
// @Success      200  {object}  models.MessageResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/drawings-approvals/{id} [delete]
func DeleteDrawingsApproval(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleteByID(c, gdb, &models.DrawingsApproval{}, "Drawing record")
	}
}

// ListRailwayBlocks godoc
// @Summary      List railway block possessions
// @Tags         blocks
// @Produce      json
// @Param        project_id  query     int  false  "Filter by project"
// @Success      200         {array}   models.RailwayBlock
// @Failure      500         {object}  models.ErrorResponse
// @Router       /api/railway-blocks [get]
func ListRailwayBlocks(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query, ok := scopeByProject(c, gdb.Model(&models.RailwayBlock{}))
		if !ok {
			return
		}
		blocks := []models.RailwayBlock{}
		if err := query.Order("block_date DESC, id DESC").Find(&blocks).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list railway blocks", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, blocks)
	}
}

// CreateRailwayBlock godoc
// @Summary      Record a railway block possession
// @Tags         blocks
// @Accept       json
// @Produce      json
// @Param        block  body      models.RailwayBlock  true  "Railway block"
// @Success      201    {object}  models.RailwayBlock
// @Failure      400    {object}  models.ErrorResponse
// @Failure      500    {object}  models.ErrorResponse
// @Router       /api/railway-blocks [post]
func CreateRailwayBlock(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var block models.RailwayBlock
		if err := c.ShouldBindJSON(&block); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}
		if err := gdb.Create(&block).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create railway block", "details": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, block)
	}
}

// DeleteRailwayBlock godoc
// @Summary      Delete a railway block record
// @Tags         blocks
// @Produce      json
// @Param        id   path      int  true  "Railway block ID"
// @Success      200  {object}  models.MessageResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/railway-blocks/{id} [delete]
func DeleteRailwayBlock(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleteByID(c, gdb, &models.RailwayBlock{}, "Railway block")
	}
}

// ListRiskRegister godoc
// @Summary      List register entries, highest risk first
// @Tags         risks
// @Produce      json
// @Param        project_id  query     int  false  "Filter by project"
// @Success      200         {array}   models.RiskRegister
// @Failure      500         {object}  models.ErrorResponse
// @Router       /api/risk-register [get]
func ListRiskRegister(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query, ok := scopeByProject(c, gdb.Model(&models.RiskRegister{}))
		if !ok {
			return
		}
		risks := []models.RiskRegister{}
		if err := query.Order("risk_level DESC, id DESC").Find(&risks).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list risks", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, risks)
	}
}

// CreateRiskRegisterEntry godoc
// @Summary      Add a risk register entry
// @Tags         risks
// @Accept       json
// @Produce      json
// @Param        risk  body      models.RiskRegister  true  "Risk entry"
// @Success      201   {object}  models.RiskRegister
// @Failure      400   {object}  models.ErrorResponse
// @Failure      500   {object}  models.ErrorResponse
// @Router       /api/risk-register [post]
func CreateRiskRegisterEntry(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var risk models.RiskRegister
		if err := c.ShouldBindJSON(&risk); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}
		if err := gdb.Create(&risk).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create risk entry", "details": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, risk)
	}
}

// DeleteRiskRegisterEntry godoc
// @Summary      Delete a risk register entry
// @Tags         risks
// @Produce      json
// @Param        id   path      int  true  "Risk entry ID"
// @Success      200  {object}  models.MessageResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/risk-register/{id} [delete]
func DeleteRiskRegisterEntry(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleteByID(c, gdb, &models.RiskRegister{}, "Risk entry")
	}
}
