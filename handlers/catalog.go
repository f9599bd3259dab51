package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"groomly/models"
	"groomly/services/catalog"

	"github.com/gin-gonic/gin"
)

// ListServicesHandler returns the catalog. Pass ?all=true to include
// inactive services (admin views).
func ListServicesHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		activeOnly := c.Query("all") != "true"
		services, err := svc.List(activeOnly)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, services)
	}
}

// GetServiceHandler returns one catalog entry.
func GetServiceHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		service, err := svc.GetByID(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, service)
	}
}

// CreateServiceHandler adds a catalog entry.
func CreateServiceHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.GroomService
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		created, err := svc.Create(input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// UpdateServiceHandler updates a catalog entry.
func UpdateServiceHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.GroomService
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		input.ID = c.Param("id")

		updated, err := svc.Update(input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// SetServiceActiveHandler toggles a catalog entry's visibility.
func SetServiceActiveHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Active bool `json:"active"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		if err := svc.SetActive(c.Param("id"), input.Active); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "service updated"})
	}
}

// UploadServiceImageHandler accepts a multipart image and attaches it to a
// catalog entry.
func UploadServiceImageHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "details": err.Error()})
			return
		}

		tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
		if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "details": err.Error()})
			return
		}
		defer os.Remove(tempFilePath)

		service, err := svc.AttachImage(c, c.Param("id"), tempFilePath)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, service)
	}
}
