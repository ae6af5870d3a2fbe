package models

// ConsultRequest is the payload coming from the frontend into /api/ai/consult.
type ConsultRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	Symptoms  string `json:"symptoms" binding:"required"`
}

// ConsultResponse is what the consult handler returns to the frontend.
type ConsultResponse struct {
	Reply string `json:"reply"`
}

// ChatMessage is one turn of a consult transcript.
type ChatMessage struct {
	ID   string `json:"id"`
	Role string `json:"role"` // "user" or "ai"
	Text string `json:"text"`
}
