package handlers

import (
	"errors"
	"net/http"

	"labport/services/booking"

	"github.com/gin-gonic/gin"
)

// respondBookingError maps flow errors onto 4xx responses and everything
// else onto a 500.
func respondBookingError(c *gin.Context, err error) {
	var fe *booking.FlowError
	if errors.As(err, &fe) {
		status := http.StatusUnprocessableEntity
		switch fe.Code {
		case "session_not_found":
			status = http.StatusNotFound
		case "submitting", "cart_locked", "wrong_step", "not_submitting":
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": fe.Message, "code": fe.Code})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
