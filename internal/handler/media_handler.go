package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"agency-console-api/internal/domain"
	"agency-console-api/internal/dto"
	"agency-console-api/internal/response"
	"agency-console-api/internal/service"
)

// MediaHandler handles presigned uploads and media asset management
type MediaHandler struct {
	mediaService service.MediaService
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(mediaService service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// IssueUploadURL returns a presigned upload URL and a pending asset record
func (h *MediaHandler) IssueUploadURL(c *gin.Context) {
	adminID, exists := c.Get("admin_id")
	if !exists {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Admin ID not found in context")
		return
	}
	adminUUID, ok := adminID.(uuid.UUID)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Invalid admin ID format")
		return
	}

	var req dto.PresignedURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.mediaService.IssueUploadURL(c.Request.Context(), adminUUID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, result)
}

// ConfirmAssets binds uploaded assets to their entity, making them
// permanent
func (h *MediaHandler) ConfirmAssets(c *gin.Context) {
	var req dto.ConfirmMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	err := h.mediaService.ConfirmAssets(c.Request.Context(), req.AssetIDs, domain.MediaEntityType(req.EntityType), req.EntityID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Assets confirmed"})
}

// ListAssets lists confirmed assets for an entity
func (h *MediaHandler) ListAssets(c *gin.Context) {
	entityType := c.Query("entityType")
	switch domain.MediaEntityType(entityType) {
	case domain.MediaEntityPost, domain.MediaEntityProject, domain.MediaEntityTracker, domain.MediaEntityService:
	default:
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid entity type")
		return
	}

	entityID, err := uuid.Parse(c.Query("entityId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid entity ID")
		return
	}

	assets, err := h.mediaService.ListByEntity(c.Request.Context(), domain.MediaEntityType(entityType), entityID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, assets)
}

// DeleteAsset removes an asset record and its stored object
func (h *MediaHandler) DeleteAsset(c *gin.Context) {
	assetID, ok := parseIDParam(c, "assetId")
	if !ok {
		return
	}

	if err := h.mediaService.DeleteAsset(c.Request.Context(), assetID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Asset deleted successfully"})
}
