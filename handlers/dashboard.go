package handlers

import (
	"net/http"

	recordsRepo "labport/database/repository/records"

	"github.com/gin-gonic/gin"
)

var RecordsRepo recordsRepo.RecordsRepository

// ListBookingsByPhone returns a customer's bookings, newest first.
func ListBookingsByPhone(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone query parameter is required"})
		return
	}
	bookings, err := RecordsRepo.ListByPhone(c.Request.Context(), phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
