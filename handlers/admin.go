package handlers

import (
	"net/http"

	"labport/models"

	"github.com/gin-gonic/gin"
)

// AdminListBookings returns every booking record for the admin panel.
func AdminListBookings(c *gin.Context) {
	bookings, err := RecordsRepo.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// AdminGetStats returns the aggregate dashboard counters.
func AdminGetStats(c *gin.Context) {
	stats, err := RecordsRepo.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// AdminUpdateBookingStatus moves a booking through the fulfilment states.
func AdminUpdateBookingStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if !models.IsValidBookingStatus(input.Status) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown booking status"})
		return
	}
	if err := RecordsRepo.UpdateStatus(c.Request.Context(), c.Param("bookingID"), input.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}
