package dto

import (
	"time"

	"github.com/google/uuid"

	"agency-console-api/internal/domain"
)

// PresignedURLRequest asks for a direct-to-storage upload slot
type PresignedURLRequest struct {
	EntityType  string `json:"entityType" binding:"required,oneof=POST PROJECT TRACKER SERVICE"`
	FileName    string `json:"fileName" binding:"required,min=1,max=255"`
	FileSize    int64  `json:"fileSize" binding:"required,min=1"`
	ContentType string `json:"contentType" binding:"required"`
}

// PresignedURLResponse carries the upload URL and the pending asset record
type PresignedURLResponse struct {
	AssetID   uuid.UUID `json:"assetId"`
	UploadURL string    `json:"uploadUrl"`
	FileKey   string    `json:"fileKey"`
	ExpiresIn int       `json:"expiresIn"`
}

// ConfirmMediaRequest binds uploaded TEMP assets to an entity
type ConfirmMediaRequest struct {
	AssetIDs   []uuid.UUID `json:"assetIds" binding:"required,min=1"`
	EntityType string      `json:"entityType" binding:"required,oneof=POST PROJECT TRACKER SERVICE"`
	EntityID   uuid.UUID   `json:"entityId" binding:"required"`
}

// MediaAssetResponse represents a tracked media asset
type MediaAssetResponse struct {
	ID          uuid.UUID              `json:"assetId"`
	EntityType  domain.MediaEntityType `json:"entityType"`
	EntityID    *uuid.UUID             `json:"entityId,omitempty"`
	Status      domain.MediaStatus     `json:"status"`
	FileName    string                 `json:"fileName"`
	FileURL     string                 `json:"fileUrl"`
	FileSize    int64                  `json:"fileSize"`
	ContentType string                 `json:"contentType"`
	CreatedAt   time.Time              `json:"createdAt"`
}
