package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jayani-123/tasbot/internal/storage/memory"
)

type handlers struct {
	conversation Conversation
}

type chatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
}

type chatResponse struct {
	Reply     string `json:"reply"`
	SessionID string `json:"session_id"`
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// chat answers one query. Callers without a session id get a fresh one
// minted and returned so they can keep the conversation going.
func (h *handlers) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = memory.NewSessionID()
	}

	reply := h.conversation.Chat(c.Request.Context(), sessionID, req.Message)
	c.JSON(http.StatusOK, chatResponse{Reply: reply, SessionID: sessionID})
}

func (h *handlers) reset(c *gin.Context) {
	message := h.conversation.Reset(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": message})
}
