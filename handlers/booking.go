package handlers

import (
	"net/http"

	"labport/middleware"
	"labport/services/booking"

	"github.com/gin-gonic/gin"
)

var BookingService booking.BookingSessionService

// StartBookingSession creates a new browsing session.
func StartBookingSession(c *gin.Context) {
	session, err := BookingService.Initiate(c.Request.Context(), middleware.RequestLanguage(c))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": session.SessionID, "session": session})
}

// GetBookingSession returns the session with its derived view data
// (cart items, bill, days and slots).
func GetBookingSession(c *gin.Context) {
	view, err := BookingService.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type cartInput struct {
	TestID string `json:"testId" binding:"required"`
}

// AddToCart adds a test package to the session cart.
func AddToCart(c *gin.Context) {
	var input cartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := BookingService.AddTest(c.Request.Context(), c.Param("sessionID"), input.TestID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// RemoveFromCart removes a test package from the session cart.
func RemoveFromCart(c *gin.Context) {
	session, err := BookingService.RemoveTest(c.Request.Context(), c.Param("sessionID"), c.Param("testID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ToggleCartItem adds the test if absent, removes it if present.
func ToggleCartItem(c *gin.Context) {
	var input cartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := BookingService.ToggleTest(c.Request.Context(), c.Param("sessionID"), input.TestID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// OpenBookingFlow moves the session into the review step and pre-picks
// the first day with an open slot.
func OpenBookingFlow(c *gin.Context) {
	view, err := BookingService.OpenFlow(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SelectLab chooses the collecting lab during the review step.
func SelectLab(c *gin.Context) {
	var input struct {
		LabID string `json:"labId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := BookingService.SelectLab(c.Request.Context(), c.Param("sessionID"), input.LabID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// AdvanceBookingStep moves from review to schedule-and-details.
func AdvanceBookingStep(c *gin.Context) {
	session, err := BookingService.Advance(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// BackBookingStep moves from schedule-and-details back to review.
func BackBookingStep(c *gin.Context) {
	session, err := BookingService.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SetSchedule picks the collection date and time slot.
func SetSchedule(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
		Slot string `json:"slot"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := BookingService.SetSchedule(c.Request.Context(), c.Param("sessionID"), input.Date, input.Slot)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SetContactDetails fills the personal-details portion of the form.
func SetContactDetails(c *gin.Context) {
	var input booking.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := BookingService.SetContact(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ConfirmBooking validates the draft and hands it to the submission
// worker. The session stays locked until the worker finishes.
func ConfirmBooking(c *gin.Context) {
	session, err := BookingService.Confirm(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"bookingID":  session.BookingID,
		"submitting": session.Submitting,
		"session":    session,
	})
}

// CloseBookingFlow dismisses the flow and returns the session to browsing.
func CloseBookingFlow(c *gin.Context) {
	clearCart := c.Query("clearCart") == "true"
	if err := BookingService.Close(c.Request.Context(), c.Param("sessionID"), clearCart); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking flow closed"})
}
