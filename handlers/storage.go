package handlers

import (
	"net/http"

	"labport/services/storage"

	"github.com/gin-gonic/gin"
)

var Storage storage.StorageService

// UploadPrescription stores an uploaded prescription image and returns
// the id the booking draft references.
func UploadPrescription(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}
	defer file.Close()

	publicID, url, err := Storage.UploadPrescription(c.Request.Context(), file, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"prescriptionId": publicID, "url": url})
}

// GetPrescriptionURL resolves a stored prescription to a delivery URL.
func GetPrescriptionURL(c *gin.Context) {
	url, err := Storage.DownloadURL(c.Param("prescriptionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "prescription not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
