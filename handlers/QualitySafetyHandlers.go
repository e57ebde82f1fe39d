package handlers

import (
	"backend/models"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListQualityTests godoc
// @Summary      List quality test records
// @Tags         quality
// @Produce      json
// @Param        project_id  query     int  false  "Filter by project"
// @Success      200         {array}   models.QualityTest
// @Failure      500         {object}  models.ErrorResponse
// @Router       /api/quality-tests [get]
func ListQualityTests(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query, ok := scopeByProject(c, gdb.Model(&models.QualityTest{}))
		if !ok {
			return
		}
		tests := []models.QualityTest{}
		if err := query.Order("id").Find(&tests).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list quality tests", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, tests)
	}
}

// CreateQualityTest godoc
// @Summary      Create a quality test record
// @Tags         quality
// @Accept       json
// @Produce      json
// @Param        test  body      models.QualityTest  true  "Quality test"
// @Success      201   {object}  models.QualityTest
// @Failure      400   {object}  models.ErrorResponse
// @Failure      500   {object}  models.ErrorResponse
// @Router       /api/quality-tests [post]
func CreateQualityTest(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var test models.QualityTest
		if err := c.ShouldBindJSON(&test); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}
		if test.PassRate == 0 && test.ConductedTests > 0 {
			test.PassRate = float64(test.PassedTests) / float64(test.ConductedTests) * 100.0
		}
		if err := gdb.Create(&test).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create quality test", "details": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, test)
	}
}

// DeleteQualityTest godoc
// @Summary      Delete a quality test record
// @Tags         quality
// @Produce      json
// @Param        id   path      int  true  "Quality test ID"
// @Success      200  {object}  models.MessageResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/quality-tests/{id} [delete]
func DeleteQualityTest(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleteByID(c, gdb, &models.QualityTest{}, "Quality test")
	}
}

// ListNCRs godoc
// @Summary      List non-conformance reports
// @Tags         quality
// @Produce      json
// @Param        project_id  query     int  false  "Filter by project"
// @Success      200         {array}   models.NCR
// @Failure      500         {object}  models.ErrorResponse
// @Router       /api/ncrs [get]
func ListNCRs(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query, ok := scopeByProject(c, gdb.Model(&models.NCR{}))
		if !ok {
			return
		}
		ncrs := []models.NCR{}
		if err := query.Order("id").Find(&ncrs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list NCRs", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, ncrs)
	}
}

// CreateNCR godoc
// @Summary      Raise a non-conformance report
// @Tags         quality
// @Accept       json
// @Produce      json
// @Param        ncr  body      models.NCR  true  "NCR"
// @Success      201  {object}  models.NCR
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/ncrs [post]
func CreateNCR(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ncr models.NCR
		if err := c.ShouldBindJSON(&ncr); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}
		if err := gdb.Create(&ncr).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create NCR", "details": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, ncr)
	}
}

// DeleteNCR godoc
// @Summary      Delete a non-conformance report
// @Tags         quality
// @Produce      json
// @Param        id   path      int  true  "NCR ID"
// @Success      200  {object}  models.MessageResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/ncrs/{id} [delete]
func DeleteNCR(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleteByID(c, gdb, &models.NCR{}, "NCR")
	}
}

// ListSafetyIncidents godoc
// @Summary      List safety incidents
// @Tags         safety
// @Produce      json
// @Param        project_id  query     int  false  "Filter by project"
// @Success      200         {array}   models.SafetyIncident
// @Failure      500         {object}  models.ErrorResponse
// @Router       /api/safety-incidents [get]
func ListSafetyIncidents(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query, ok := scopeByProject(c, gdb.Model(&models.SafetyIncident{}))
		if !ok {
			return
		}
		incidents := []models.SafetyIncident{}
		if err := query.Order("incident_date DESC, id DESC").Find(&incidents).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list safety incidents", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, incidents)
	}
}

// CreateSafetyIncident godoc
// @Summary      Report a safety incident
// @Tags         safety
// @Accept       json
// @Produce      json
// @Param        incident  body      models.SafetyIncident  true  "Safety incident"
// @Success      201       {object}  models.SafetyIncident
// @Failure      400       {object}  models.ErrorResponse
// @Failure      500       {object}  models.ErrorResponse
// @Router       /api/safety-incidents [post]
func CreateSafetyIncident(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var incident models.SafetyIncident
		if err := c.ShouldBindJSON(&incident); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}
		if err := gdb.Create(&incident).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create safety incident", "details": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, incident)
	}
}

// DeleteSafetyIncident godoc
// @Summary      Delete a safety incident
// @Tags         safety
// @Produce      json
// @Param        id   path      int  true  "Safety incident ID"
// @Success      200  {object}  models.MessageResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/safety-incidents/{id} [delete]
func DeleteSafetyIncident(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleteByID(c, gdb, &models.SafetyIncident{}, "Safety incident")
	}
}
