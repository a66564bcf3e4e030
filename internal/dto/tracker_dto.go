package dto

import (
	"time"

	"github.com/google/uuid"

	"agency-console-api/internal/domain"
)

// UpdateTrackerRequest represents the request to update tracker progress
// and settings. All fields are optional.
type UpdateTrackerRequest struct {
	Progress      *int                  `json:"progress" binding:"omitempty,min=0,max=100"`
	Phases        []domain.TrackerPhase `json:"phases"`
	VaultPassword *string               `json:"vaultPassword"`
	Language      *string               `json:"language" binding:"omitempty,max=10"`
}

// AddTrackerUpdateRequest represents a progress note posted to a tracker
type AddTrackerUpdateRequest struct {
	Title string `json:"title" binding:"required,min=2,max=255"`
	Body  string `json:"body" binding:"required"`
}

// AddTrackerFileRequest registers a vault deliverable already uploaded to
// object storage
type AddTrackerFileRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=255"`
	FileKey string `json:"fileKey" binding:"required"`
	Size    int64  `json:"size" binding:"omitempty,min=0"`
}

// VerifyVaultRequest represents a client's vault password attempt
type VerifyVaultRequest struct {
	Password string `json:"password" binding:"required"`
}

// TrackerFileResponse is a vault file entry with a download URL resolved
// from object storage
type TrackerFileResponse struct {
	Name       string    `json:"name"`
	FileURL    string    `json:"fileUrl"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// TrackerResponse represents the tracker as seen by clients following the
// public tracker link. Vault files are omitted unless the vault is open.
type TrackerResponse struct {
	ID             uuid.UUID              `json:"trackerId"`
	Slug           string                 `json:"slug"`
	ProposalID     uuid.UUID              `json:"proposalId"`
	Title          string                 `json:"title"`
	ClientName     string                 `json:"clientName"`
	Status         domain.TrackerStatus   `json:"status"`
	Progress       int                    `json:"progress"`
	Phases         []domain.TrackerPhase  `json:"phases"`
	Updates        []domain.TrackerUpdate `json:"updates"`
	VaultProtected bool                   `json:"vaultProtected"`
	Files          []TrackerFileResponse  `json:"files,omitempty"`
	Language       string                 `json:"language,omitempty"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

// VaultResponse is returned after a successful vault password check
type VaultResponse struct {
	Files []TrackerFileResponse `json:"files"`
}
