package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agency-console-api/internal/dto"
	"agency-console-api/internal/response"
	"agency-console-api/internal/service"
)

// CatalogHandler handles the service catalog, admin side and public side
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// CreateService creates a new catalog entry
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	svc, err := h.catalogService.CreateService(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, svc)
}

// ListServices lists every catalog entry including inactive ones
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.catalogService.ListServices(c.Request.Context(), false)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, services)
}

// GetService returns a single catalog entry
func (h *CatalogHandler) GetService(c *gin.Context) {
	serviceID, ok := parseIDParam(c, "serviceId")
	if !ok {
		return
	}

	svc, err := h.catalogService.GetService(c.Request.Context(), serviceID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, svc)
}

// UpdateService updates a catalog entry
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	serviceID, ok := parseIDParam(c, "serviceId")
	if !ok {
		return
	}

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	svc, err := h.catalogService.UpdateService(c.Request.Context(), serviceID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, svc)
}

// DeleteService deletes a catalog entry
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	serviceID, ok := parseIDParam(c, "serviceId")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteService(c.Request.Context(), serviceID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Service deleted successfully"})
}

// ListPublicServices lists active services for the public site
func (h *CatalogHandler) ListPublicServices(c *gin.Context) {
	services, err := h.catalogService.ListServices(c.Request.Context(), true)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, services)
}

// GetPublicService serves an active service by slug
func (h *CatalogHandler) GetPublicService(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Slug is required")
		return
	}

	svc, err := h.catalogService.GetServiceBySlug(c.Request.Context(), slug)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, svc)
}
