package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agency-console-api/internal/domain"
	"agency-console-api/internal/dto"
	"agency-console-api/internal/response"
)

func setupProposalRouter(svc *MockProposalService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewProposalHandler(svc)

	r := gin.New()
	r.POST("/admin/proposals", h.CreateProposal)
	r.GET("/admin/proposals", h.ListProposals)
	r.GET("/admin/proposals/:proposalId", h.GetProposal)
	r.PUT("/admin/proposals/:proposalId/status", h.UpdateProposalStatus)
	r.GET("/proposals/:slug", h.GetPublicProposal)
	return r
}

func TestProposalHandler_CreateProposal(t *testing.T) {
	svc := &MockProposalService{
		CreateProposalFunc: func(ctx context.Context, req *dto.CreateProposalRequest) (*dto.ProposalResponse, error) {
			return &dto.ProposalResponse{
				ID:     uuid.New(),
				Slug:   req.Slug,
				Title:  req.Title,
				Status: domain.ProposalStatusDraft,
			}, nil
		},
	}
	router := setupProposalRouter(svc)

	payload := `{"slug":"storefront-relaunch","title":"Storefront Relaunch","clientName":"Acme Corp"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/proposals", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "storefront-relaunch")
	assert.Contains(t, w.Body.String(), `"DRAFT"`)
}

func TestProposalHandler_CreateProposal_MissingFields(t *testing.T) {
	router := setupProposalRouter(&MockProposalService{})

	req := httptest.NewRequest(http.MethodPost, "/admin/proposals", strings.NewReader(`{"slug":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), response.ErrCodeValidation)
}

func TestProposalHandler_UpdateStatus(t *testing.T) {
	proposalID := uuid.New()
	var gotStatus domain.ProposalStatus
	svc := &MockProposalService{
		UpdateStatusFunc: func(ctx context.Context, id uuid.UUID, newStatus domain.ProposalStatus) (*dto.ProposalResponse, error) {
			assert.Equal(t, proposalID, id)
			gotStatus = newStatus
			return &dto.ProposalResponse{ID: id, Status: newStatus, TrackerSlug: "storefront-relaunch-ab12cd34"}, nil
		},
	}
	router := setupProposalRouter(svc)

	req := httptest.NewRequest(http.MethodPut, "/admin/proposals/"+proposalID.String()+"/status",
		strings.NewReader(`{"status":"ACCEPTED"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.ProposalStatusAccepted, gotStatus)
	assert.Contains(t, w.Body.String(), "storefront-relaunch-ab12cd34")
}

func TestProposalHandler_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	router := setupProposalRouter(&MockProposalService{})

	req := httptest.NewRequest(http.MethodPut, "/admin/proposals/"+uuid.NewString()+"/status",
		strings.NewReader(`{"status":"SIGNED"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProposalHandler_UpdateStatus_InvalidID(t *testing.T) {
	router := setupProposalRouter(&MockProposalService{})

	req := httptest.NewRequest(http.MethodPut, "/admin/proposals/not-a-uuid/status",
		strings.NewReader(`{"status":"ACCEPTED"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProposalHandler_ListProposals_StatusFilter(t *testing.T) {
	var gotStatus *domain.ProposalStatus
	svc := &MockProposalService{
		ListProposalsFunc: func(ctx context.Context, status *domain.ProposalStatus) ([]*dto.ProposalListItemResponse, error) {
			gotStatus = status
			return []*dto.ProposalListItemResponse{}, nil
		},
	}
	router := setupProposalRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/admin/proposals?status=ACCEPTED", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, gotStatus)
	assert.Equal(t, domain.ProposalStatusAccepted, *gotStatus)
}

func TestProposalHandler_ListProposals_RejectsBadFilter(t *testing.T) {
	router := setupProposalRouter(&MockProposalService{})

	req := httptest.NewRequest(http.MethodGet, "/admin/proposals?status=OPEN", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProposalHandler_GetPublicProposal_NotFound(t *testing.T) {
	svc := &MockProposalService{
		GetProposalBySlugFunc: func(ctx context.Context, slug string) (*dto.ProposalResponse, error) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Proposal not found", "")
		},
	}
	router := setupProposalRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/proposals/hidden-draft", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var envelope response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, response.ErrCodeNotFound, envelope.Error.Code)
}
