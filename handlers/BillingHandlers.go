package handlers

import (
	"backend/models"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListRABills godoc
// @Summary      List running account bills
// @Tags         billing
// @Produce      json
// @Param        project_id  query     int  false  "Filter by project"
// @Success      200         {array}   models.RABill
// @Failure      500         {object}  models.ErrorResponse
// @Router       /api/ra-bills [get]
func ListRABills(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query, ok := scopeByProject(c, gdb.Model(&models.RABill{}))
		if !ok {
			return
		}
		bills := []models.RABill{}
		if err := query.Order("id").Find(&bills).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list RA bills", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, bills)
	}
}

// CreateRABill godoc
// @Summary      Create a running account bill
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        bill  body      models.RABill  true  "RA bill"
// @Success      201   {object}  models.RABill
// @Failure      400   {object}  models.ErrorResponse
// @Failure      500   {object}  models.ErrorResponse
// @Router       /api/ra-bills [post]
func CreateRABill(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bill models.RABill
		if err := c.ShouldBindJSON(&bill); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}
		if err := gdb.Create(&bill).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create RA bill", "details": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, bill)
	}
}

// DeleteRABill godoc
// @Summary      Delete a running account bill
// @Tags         billing
// @Produce      json
// @Param        id   path      int  true  "RA bill ID"
// @Success      200  {object}  models.MessageResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/ra-bills/{id} [delete]
func DeleteRABill(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleteByID(c, gdb, &models.RABill{}, "RA bill")
	}
}

// ListClaimsVariations godoc
// @Summary      List claims and variation orders
// @Tags         billing
// @Produce      json
// @Param        project_id  query     int  false  "Filter by project"
// @Success      200         {array}   models.ClaimsVariation
// @Failure      500         {object}  models.ErrorResponse
// @Router       /api/claims-variations [get]
func ListClaimsVariations(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query, ok := scopeByProject(c, gdb.Model(&models.ClaimsVariation{}))
		if !ok {
			return
		}
		claims := []models.ClaimsVariation{}
		if err := query.Order("id").Find(&claims).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list claims", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, claims)
	}
}

// CreateClaimsVariation godoc
// @Summary      Create a claim or variation order
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        claim  body      models.ClaimsVariation  true  "Claim / variation"
// @Success      201    {object}  models.ClaimsVariation
// @Failure      400    {object}  models.ErrorResponse
// @Failure      500    {object}  models.ErrorResponse
// @Router       /api/claims-variations [post]
func CreateClaimsVariation(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var claim models.ClaimsVariation
		if err := c.ShouldBindJSON(&claim); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}
		if err := gdb.Create(&claim).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create claim", "details": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, claim)
	}
}

// DeleteClaimsVariation godoc
// @Summary      Delete a claim or variation order
// @Tags         billing
// @Produce      json
// @Param        id   path      int  true  "Claim ID"
// @Success      200  {object}  models.MessageResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/claims-variations/{id} [delete]
func DeleteClaimsVariation(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleteByID(c, gdb, &models.ClaimsVariation{}, "Claim")
	}
}

// ListBOQItems godoc
// @Summary      List bill-of-quantities items
// @Tags         billing
// @Produce      json
// @Param        project_id  query     int  false  "Filter by project"
// @Success      200         {array}   models.BOQItem
// @Failure      500         {object}  models.ErrorResponse
// @Router       /api/boq-items [get]
func ListBOQItems(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query, ok := scopeByProject(c, gdb.Model(&models.BOQItem{}))
		if !ok {
			return
		}
		items := []models.BOQItem{}
		if err := query.Order("id").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list BOQ items", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// CreateBOQItem godoc
// @Summary      Create a bill-of-quantities item
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        item  body      models.BOQItem  true  "BOQ item"
// @Success      201   {object}  models.BOQItem
// @Failure      400   {object}  models.ErrorResponse
// @Failure      500   {object}  models.ErrorResponse
// @Router       /api/boq-items [post]
func CreateBOQItem(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.BOQItem
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}
		if err := gdb.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create BOQ item", "details": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// DeleteBOQItem godoc
// @Summary      Delete a bill-of-quantities item
// @Tags         billing
// @Produce      json
// @Param        id   path      int  true  "BOQ item ID"
// @Success      200  {object}  models.MessageResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/boq-items/{id} [delete]
func DeleteBOQItem(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleteByID(c, gdb, &models.BOQItem{}, "BOQ item")
	}
}
