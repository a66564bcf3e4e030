package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agency-console-api/internal/dto"
	"agency-console-api/internal/response"
	"agency-console-api/internal/service"
)

// MessageHandler handles the public contact form and the console inbox
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// SubmitMessage accepts a contact form submission from the public site
func (h *MessageHandler) SubmitMessage(c *gin.Context) {
	var req dto.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	message, err := h.messageService.SubmitMessage(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, message)
}

// ListMessages lists inbox messages, optionally unread only
func (h *MessageHandler) ListMessages(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"

	messages, err := h.messageService.ListMessages(c.Request.Context(), unreadOnly)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, messages)
}

// GetMessage returns a single message
func (h *MessageHandler) GetMessage(c *gin.Context) {
	messageID, ok := parseIDParam(c, "messageId")
	if !ok {
		return
	}

	message, err := h.messageService.GetMessage(c.Request.Context(), messageID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, message)
}

// MarkRead marks a message as read
func (h *MessageHandler) MarkRead(c *gin.Context) {
	messageID, ok := parseIDParam(c, "messageId")
	if !ok {
		return
	}

	if err := h.messageService.MarkRead(c.Request.Context(), messageID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Message marked as read"})
}

// DeleteMessage deletes a message
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	messageID, ok := parseIDParam(c, "messageId")
	if !ok {
		return
	}

	if err := h.messageService.DeleteMessage(c.Request.Context(), messageID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Message deleted successfully"})
}
