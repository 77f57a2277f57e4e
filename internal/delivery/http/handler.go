package http

import (
	"context"
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/linklens/backend/internal/domain"
)

// MessageProcessor handles one incoming message and returns its replies
type MessageProcessor interface {
	ProcessMessage(ctx context.Context, msg domain.IncomingMessage) []domain.Reply
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	processor MessageProcessor
}

// NewHandler creates a new HTTP handler
func NewHandler(processor MessageProcessor) *Handler {
	return &Handler{processor: processor}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "linklens-backend",
		"version": "1.0.0",
	})
}

// processMessageRequest is the transport payload for one chat message
type processMessageRequest struct {
	MessageID   string `json:"messageId" binding:"required"`
	ChatID      string `json:"chatId" binding:"required"`
	Text        string `json:"text"`
	Caption     string `json:"caption"`
	ImageBase64 string `json:"imageBase64"`
	FromBot     bool   `json:"fromBot"`
}

// ProcessMessage accepts a chat message and returns the formatted
// product replies for any recognized shopping links it contains.
// A message with no recognized links (or a duplicate delivery) yields
// 200 with an empty reply list.
func (h *Handler) ProcessMessage(c *gin.Context) {
	var req processMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidRequest.Error()})
		return
	}

	var image []byte
	if req.ImageBase64 != "" {
		decoded, err := base64.StdEncoding.DecodeString(req.ImageBase64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "imageBase64 is not valid base64"})
			return
		}
		image = decoded
	}

	replies := h.processor.ProcessMessage(c.Request.Context(), domain.IncomingMessage{
		MessageID: req.MessageID,
		ChatID:    req.ChatID,
		Text:      req.Text,
		Caption:   req.Caption,
		Image:     image,
		FromBot:   req.FromBot,
	})

	if replies == nil {
		replies = []domain.Reply{}
	}
	c.JSON(http.StatusOK, gin.H{"replies": replies})
}
