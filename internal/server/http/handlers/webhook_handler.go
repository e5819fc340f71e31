package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/pawshope/internal/domain/model"
	"github.com/polkiloo/pawshope/internal/server/http/dto"
)

// WebhookHandler accepts processor notifications. Signatures are not verified.
type WebhookHandler struct {
	facade WebhookFacade
}

// NewWebhookHandler constructs WebhookHandler.
func NewWebhookHandler(facade WebhookFacade) *WebhookHandler {
	return &WebhookHandler{facade: facade}
}

// Receive handles POST /api/paypal/webhook.
func (h *WebhookHandler) Receive(c *gin.Context) {
	var event dto.WebhookEvent
	// Undecodable payloads are still acknowledged.
	_ = c.ShouldBindJSON(&event)

	h.facade.RecordWebhook(c.Request.Context(), model.WebhookEvent{
		ID:           event.ID,
		EventType:    event.EventType,
		ResourceType: event.ResourceType,
	})
	c.JSON(http.StatusOK, dto.WebhookAck{Received: true})
}
