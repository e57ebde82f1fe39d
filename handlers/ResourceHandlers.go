package handlers

import (
	"backend/models"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListLabourManpower godoc
// @Summary      List daily manpower records
// @Tags         resources
// @Produce      json
// @Param        project_id  query     int  false  "Filter by project"
// @Success      200         {array}   models.LabourManpower
// @Failure      500         {object}  models.ErrorResponse
// @Router       /api/labour-manpower [get]
func ListLabourManpower(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query, ok := scopeByProject(c, gdb.Model(&models.LabourManpower{}))
		if !ok {
			return
		}
		records := []models.LabourManpower{}
		if err := query.Order("record_date DESC, id DESC").Find(&records).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list manpower records", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

// CreateLabourManpower godoc
// @Summary      Record daily manpower
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        record  body      models.LabourManpower  true  "Manpower record"
// @Success      201     {object}  models.LabourManpower
// @Failure      400     {object}  models.ErrorResponse
// @Failure      500     {object}  models.ErrorResponse
// @Router       /api/labour-manpower [post]
func CreateLabourManpower(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var record models.LabourManpower
		if err := c.ShouldBindJSON(&record); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}
		if record.AbsenteeismRate == 0 && record.TotalPlanned > 0 && record.TotalActual < record.TotalPlanned {
			record.AbsenteeismRate = float64(record.TotalPlanned-record.TotalActual) / float64(record.TotalPlanned) * 100.0
		}
		if err := gdb.Create(&record).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create manpower record", "details": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, record)
	}
}

// DeleteLabourManpower godoc
// @Summary      Delete a manpower record
// @Tags         resources
// @Produce      json
// @Param        id   path      int  true  "Manpower record ID"
// @Success      200  {object}  models.MessageResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/labour-manpower/{id} [delete]
func DeleteLabourManpower(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleteByID(c, gdb, &models.LabourManpower{}, "Manpower record")
	}
}

// ListPlantMachinery godoc
// @Summary      List plant and machinery utilization records
// @Tags         resources
// @Produce      json
// @Param        project_id  query     int  false  "Filter by project"
// @Success      200         {array}   models.PlantMachinery
// @Failure      500         {object}  models.ErrorResponse
// @Router       /api/plant-machinery [get]
func ListPlantMachinery(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query, ok := scopeByProject(c, gdb.Model(&models.PlantMachinery{}))
		if !ok {
			return
		}
		records := []models.PlantMachinery{}
		if err := query.Order("id").Find(&records).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list machinery records", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

// CreatePlantMachinery godoc
// @Summary      Record plant and machinery utilization
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        record  body      models.PlantMachinery  true  "Machinery record"
// @Success      201     {object}  models.PlantMachinery
// @Failure      400     {object}  models.ErrorResponse
// @Failure      500     {object}  models.ErrorResponse
// @Router       /api/plant-machinery [post]
func CreatePlantMachinery(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var record models.PlantMachinery
		if err := c.ShouldBindJSON(&record); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}
		if record.AvailableHours > 0 {
			if record.AvailabilityPercentage == 0 {
				record.AvailabilityPercentage = (record.AvailableHours - record.BreakdownHours) / record.AvailableHours * 100.0
			}
			if record.UtilizationPercentage == 0 {
				record.UtilizationPercentage = record.UtilizedHours / record.AvailableHours * 100.0
			}
		}
		if err := gdb.Create(&record).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create machinery record", "details": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, record)
	}
}

// DeletePlantMachinery godoc
// @Summary      Delete a plant and machinery record
// @Tags         resources
// @Produce      json
// @Param        id   path      int  true  "Machinery record ID"
// @Success      200  {object}  models.MessageResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/plant-machinery/{id} [delete]
func DeletePlantMachinery(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleteByID(c, gdb, &models.PlantMachinery{}, "Machinery record")
	}
}

// ListMaterialInventory godoc
// @Summary      List material inventory records
// @Tags         resources
// @Produce      json
// @Param        project_id  query     int  false  "Filter by project"
// @Success      200         {array}   models.MaterialInventory
// @Failure      500         {object}  models.ErrorResponse
// @Router       /api/material-inventory [get]
func ListMaterialInventory(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query, ok := scopeByProject(c, gdb.Model(&models.MaterialInventory{}))
		if !ok {
			return
		}
		records := []models.MaterialInventory{}
		if err := query.Order("id").Find(&records).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list material inventory", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

// CreateMaterialInventory godoc
// @Summary      Record material issue/consumption and stock level
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        record  body      models.MaterialInventory  true  "Material record"
// @Success      201     {object}  models.MaterialInventory
// @Failure      400     {object}  models.ErrorResponse
// @Failure      500     {object}  models.ErrorResponse
// @Router       /api/material-inventory [post]
func CreateMaterialInventory(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var record models.MaterialInventory
		if err := c.ShouldBindJSON(&record); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}
		if record.VariancePercentage == 0 && record.TheoreticalQuantity > 0 {
			record.VariancePercentage = (record.ConsumedQuantity - record.TheoreticalQuantity) / record.TheoreticalQuantity * 100.0
		}
		if record.Status == "" || record.Status == "OK" {
			if record.MinStock > 0 && record.StockLevel < record.MinStock {
				record.Status = "Below Min"
			}
		}
		if err := gdb.Create(&record).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create material record", "details": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, record)
	}
}

// DeleteMaterialInventory godoc
// @Summary      Delete a material inventory record
// @Tags         resources
// @Produce      json
// @Param        id   path      int  true  "Material record ID"
// @Success      200  {object}  models.MessageResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/material-inventory/{id} [delete]
func DeleteMaterialInventory(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleteByID(c, gdb, &models.MaterialInventory{}, "Material record")
	}
}
