package handlers

import (
	"errors"
	"net/http"

	"labport/middleware"
	"labport/models"
	ai "labport/services/intelligence"

	"github.com/gin-gonic/gin"
)

var ConsultService ai.ConsultService

// Consult runs the symptom-triage assistant for a session. Model
// failures come back as a localized apology, never as a 5xx.
func Consult(c *gin.Context) {
	var req models.ConsultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	lang := middleware.RequestLanguage(c)
	resp, err := ConsultService.Consult(c.Request.Context(), req.SessionID, lang, req.Symptoms)
	if err != nil {
		if errors.Is(err, ai.ErrConsultBusy) {
			c.JSON(http.StatusConflict, gin.H{"error": "a reply is still being generated"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "consult failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ConsultHistory returns the stored transcript for a session.
func ConsultHistory(c *gin.Context) {
	msgs, err := ConsultService.History(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load transcript"})
		return
	}
	if msgs == nil {
		msgs = []models.ChatMessage{}
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

// ResetConsult clears the transcript for a session.
func ResetConsult(c *gin.Context) {
	if err := ConsultService.Reset(c.Request.Context(), c.Param("sessionID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear transcript"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "transcript cleared"})
}
