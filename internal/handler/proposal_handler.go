package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agency-console-api/internal/domain"
	"agency-console-api/internal/dto"
	"agency-console-api/internal/response"
	"agency-console-api/internal/service"
)

// ProposalHandler handles proposal management and the public proposal page
type ProposalHandler struct {
	proposalService service.ProposalService
}

// NewProposalHandler creates a new ProposalHandler
func NewProposalHandler(proposalService service.ProposalService) *ProposalHandler {
	return &ProposalHandler{proposalService: proposalService}
}

// CreateProposal creates a new proposal in DRAFT status
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var req dto.CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	proposal, err := h.proposalService.CreateProposal(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, proposal)
}

// ListProposals lists proposals, optionally filtered by status
func (h *ProposalHandler) ListProposals(c *gin.Context) {
	var status *domain.ProposalStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.ProposalStatus(raw)
		switch s {
		case domain.ProposalStatusDraft, domain.ProposalStatusPublished, domain.ProposalStatusAccepted,
			domain.ProposalStatusNegotiation, domain.ProposalStatusRejected:
			status = &s
		default:
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid status filter")
			return
		}
	}

	proposals, err := h.proposalService.ListProposals(c.Request.Context(), status)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, proposals)
}

// GetProposal returns a single proposal with full content
func (h *ProposalHandler) GetProposal(c *gin.Context) {
	proposalID, ok := parseIDParam(c, "proposalId")
	if !ok {
		return
	}

	proposal, err := h.proposalService.GetProposal(c.Request.Context(), proposalID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, proposal)
}

// UpdateProposal updates proposal fields other than status
func (h *ProposalHandler) UpdateProposal(c *gin.Context) {
	proposalID, ok := parseIDParam(c, "proposalId")
	if !ok {
		return
	}

	var req dto.UpdateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	proposal, err := h.proposalService.UpdateProposal(c.Request.Context(), proposalID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, proposal)
}

// UpdateProposalStatus moves a proposal through its lifecycle. Accepting
// a proposal provisions its project tracker; leaving ACCEPTED removes it.
func (h *ProposalHandler) UpdateProposalStatus(c *gin.Context) {
	proposalID, ok := parseIDParam(c, "proposalId")
	if !ok {
		return
	}

	var req dto.UpdateProposalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	proposal, err := h.proposalService.UpdateStatus(c.Request.Context(), proposalID, req.Status)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, proposal)
}

// DeleteProposal deletes a proposal
func (h *ProposalHandler) DeleteProposal(c *gin.Context) {
	proposalID, ok := parseIDParam(c, "proposalId")
	if !ok {
		return
	}

	if err := h.proposalService.DeleteProposal(c.Request.Context(), proposalID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Proposal deleted successfully"})
}

// GetPublicProposal serves a proposal on its public link. Drafts are not
// visible here.
func (h *ProposalHandler) GetPublicProposal(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Slug is required")
		return
	}

	proposal, err := h.proposalService.GetProposalBySlug(c.Request.Context(), slug)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, proposal)
}
