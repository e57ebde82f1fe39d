package handlers

import (
	"backend/repository"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

// dashboardBaseURL is where the QR code points; overridable for deployments
// behind a different public hostname.
func dashboardBaseURL() string {
	if base := os.Getenv("DASHBOARD_BASE_URL"); base != "" {
		return base
	}
	return "http://localhost:8080"
}

// ProjectQRCode godoc
// @Summary      PNG QR code linking to a project's dashboard summary
// @Tags         exports
// @Produce      image/png
// @Param        project_id  path  int  true  "Project ID"
// @Success      200  {file}    file
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/projects/{project_id}/qrcode [get]
func ProjectQRCode(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := strconv.Atoi(c.Param("project_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
			return
		}

		_, err = repository.GetProject(db, projectID)
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project", "details": err.Error()})
			return
		}

		url := fmt.Sprintf("%s/api/projects/%d/summary", dashboardBaseURL(), projectID)
		png, err := qrcode.Encode(url, qrcode.Medium, 512)
		if err != nil {
			c.String(http.StatusInternalServerError, "QR code generation failed")
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("inline; filename=project_%d_qr.png", projectID))
		c.Data(http.StatusOK, "image/png", png)
	}
}
