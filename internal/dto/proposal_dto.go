package dto

import (
	"time"

	"github.com/google/uuid"

	"agency-console-api/internal/domain"
)

// CreateProposalRequest represents the request to create a new proposal
type CreateProposalRequest struct {
	Slug        string                  `json:"slug" binding:"required,min=2,max=255"`
	Title       string                  `json:"title" binding:"required,min=2,max=255"`
	ClientName  string                  `json:"clientName" binding:"required,min=2,max=255"`
	ClientEmail string                  `json:"clientEmail" binding:"omitempty,email"`
	CustomerID  *uuid.UUID              `json:"customerId"`
	Content     *domain.ProposalContent `json:"content"`
}

// UpdateProposalRequest represents the request to update a proposal.
// All fields are optional; status changes go through the dedicated
// status endpoint.
type UpdateProposalRequest struct {
	Title       *string                 `json:"title" binding:"omitempty,min=2,max=255"`
	ClientName  *string                 `json:"clientName" binding:"omitempty,min=2,max=255"`
	ClientEmail *string                 `json:"clientEmail" binding:"omitempty,email"`
	CustomerID  *uuid.UUID              `json:"customerId"`
	Content     *domain.ProposalContent `json:"content"`
}

// UpdateProposalStatusRequest represents a proposal status change
type UpdateProposalStatusRequest struct {
	Status domain.ProposalStatus `json:"status" binding:"required,oneof=DRAFT PUBLISHED ACCEPTED NEGOTIATION REJECTED"`
}

// ProposalResponse represents the proposal response
type ProposalResponse struct {
	ID          uuid.UUID               `json:"proposalId"`
	Slug        string                  `json:"slug"`
	Title       string                  `json:"title"`
	ClientName  string                  `json:"clientName"`
	ClientEmail string                  `json:"clientEmail,omitempty"`
	CustomerID  *uuid.UUID              `json:"customerId,omitempty"`
	Status      domain.ProposalStatus   `json:"status"`
	Content     *domain.ProposalContent `json:"content"`
	TrackerSlug string                  `json:"trackerSlug,omitempty"`
	CreatedAt   time.Time               `json:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt"`
}

// ProposalListItemResponse is the summary shape used by list endpoints,
// without the content blob
type ProposalListItemResponse struct {
	ID         uuid.UUID             `json:"proposalId"`
	Slug       string                `json:"slug"`
	Title      string                `json:"title"`
	ClientName string                `json:"clientName"`
	Status     domain.ProposalStatus `json:"status"`
	TotalPrice float64               `json:"totalPrice"`
	Currency   string                `json:"currency,omitempty"`
	CreatedAt  time.Time             `json:"createdAt"`
	UpdatedAt  time.Time             `json:"updatedAt"`
}
