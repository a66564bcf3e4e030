package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agency-console-api/internal/dto"
	"agency-console-api/internal/response"
	"agency-console-api/internal/service"
)

// GenerateHandler handles AI-assisted content drafting. Every endpoint
// returns a draft for the operator to review; nothing is persisted here.
type GenerateHandler struct {
	generatorService service.GeneratorService
}

// NewGenerateHandler creates a new GenerateHandler
func NewGenerateHandler(generatorService service.GeneratorService) *GenerateHandler {
	return &GenerateHandler{generatorService: generatorService}
}

// GenerateProposal drafts structured proposal content from a project brief
func (h *GenerateHandler) GenerateProposal(c *gin.Context) {
	var req dto.GenerateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.generatorService.GenerateProposal(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// GeneratePost drafts a blog article from a topic
func (h *GenerateHandler) GeneratePost(c *gin.Context) {
	var req dto.GeneratePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.generatorService.GeneratePost(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// GenerateImage generates a cover image and stores it in object storage
func (h *GenerateHandler) GenerateImage(c *gin.Context) {
	var req dto.GenerateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.generatorService.GenerateImage(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}
