package handlers

import (
	"context"
	"log"
	"net/http"

	"cloud.google.com/go/dialogflow/apiv2/dialogflowpb"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// IntentDetector is the slice of the Dialogflow client the chat endpoint
// needs.
type IntentDetector interface {
	DetectIntent(ctx context.Context, sessionID, text string) (*dialogflowpb.QueryResult, error)
}

type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"sessionId"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
	Done  bool   `json:"done"`
}

// ChatHandler forwards user messages to the NLU agent. The agent keeps the
// conversation state; this endpoint only relays text and the done flag.
type ChatHandler struct {
	detector IntentDetector
}

func NewChatHandler(detector IntentDetector) *ChatHandler {
	return &ChatHandler{detector: detector}
}

func (h *ChatHandler) HandleChat(c *gin.Context) {
	if h.detector == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Chat agent is not configured"})
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	result, err := h.detector.DetectIntent(c.Request.Context(), sessionID, req.Message)
	if err != nil {
		log.Printf("Detect intent failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Dialogflow API call failed"})
		return
	}

	// When the agent is still collecting a required slot, the fulfillment
	// text is its follow-up prompt.
	c.JSON(http.StatusOK, ChatResponse{
		Reply: result.GetFulfillmentText(),
		Done:  result.GetAllRequiredParamsPresent(),
	})
}
