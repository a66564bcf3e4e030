package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agency-console-api/internal/dto"
	"agency-console-api/internal/response"
	"agency-console-api/internal/service"
)

// TrackerHandler handles project tracker management and the public
// tracker page clients follow from their acceptance email
type TrackerHandler struct {
	trackerService service.TrackerService
}

// NewTrackerHandler creates a new TrackerHandler
func NewTrackerHandler(trackerService service.TrackerService) *TrackerHandler {
	return &TrackerHandler{trackerService: trackerService}
}

// GetTracker returns a tracker with all details, vault files included
func (h *TrackerHandler) GetTracker(c *gin.Context) {
	trackerID, ok := parseIDParam(c, "trackerId")
	if !ok {
		return
	}

	tracker, err := h.trackerService.GetTracker(c.Request.Context(), trackerID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, tracker)
}

// UpdateTracker updates progress, phases and vault settings
func (h *TrackerHandler) UpdateTracker(c *gin.Context) {
	trackerID, ok := parseIDParam(c, "trackerId")
	if !ok {
		return
	}

	var req dto.UpdateTrackerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	tracker, err := h.trackerService.UpdateTracker(c.Request.Context(), trackerID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, tracker)
}

// AddUpdate posts a progress note to the tracker feed
func (h *TrackerHandler) AddUpdate(c *gin.Context) {
	trackerID, ok := parseIDParam(c, "trackerId")
	if !ok {
		return
	}

	var req dto.AddTrackerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	tracker, err := h.trackerService.AddUpdate(c.Request.Context(), trackerID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, tracker)
}

// AddFile registers an uploaded deliverable in the tracker vault
func (h *TrackerHandler) AddFile(c *gin.Context) {
	trackerID, ok := parseIDParam(c, "trackerId")
	if !ok {
		return
	}

	var req dto.AddTrackerFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	tracker, err := h.trackerService.AddFile(c.Request.Context(), trackerID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, tracker)
}

// RemoveFile removes a deliverable from the vault and from storage
func (h *TrackerHandler) RemoveFile(c *gin.Context) {
	trackerID, ok := parseIDParam(c, "trackerId")
	if !ok {
		return
	}

	fileKey := c.Query("key")
	if fileKey == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "File key is required")
		return
	}

	tracker, err := h.trackerService.RemoveFile(c.Request.Context(), trackerID, fileKey)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, tracker)
}

// GetPublicTracker serves the tracker page by its unguessable slug. Files
// are withheld when the vault is password protected.
func (h *TrackerHandler) GetPublicTracker(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Slug is required")
		return
	}

	tracker, err := h.trackerService.GetTrackerBySlug(c.Request.Context(), slug)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, tracker)
}

// VerifyVault checks the vault password and returns the file list on
// success
func (h *TrackerHandler) VerifyVault(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Slug is required")
		return
	}

	var req dto.VerifyVaultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	vault, err := h.trackerService.VerifyVault(c.Request.Context(), slug, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, vault)
}
