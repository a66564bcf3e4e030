package domain

import (
	"time"

	"github.com/google/uuid"
)

// MediaEntityType represents the type of entity a media asset belongs to
type MediaEntityType string

const (
	MediaEntityPost    MediaEntityType = "POST"
	MediaEntityProject MediaEntityType = "PROJECT"
	MediaEntityTracker MediaEntityType = "TRACKER"
	MediaEntityService MediaEntityType = "SERVICE"
)

// MediaStatus represents the confirmation status of a media asset
type MediaStatus string

const (
	MediaStatusTemp      MediaStatus = "TEMP"
	MediaStatusConfirmed MediaStatus = "CONFIRMED"
)

// MediaAsset represents an uploaded file tracked against object storage.
// Assets start TEMP when a presigned upload URL is issued and become
// CONFIRMED once attached to an entity; expired TEMP assets are swept by
// the cleanup job.
// EntityID is polymorphic across posts, projects, trackers and services,
// so it carries no foreign key constraint.
type MediaAsset struct {
	BaseModel
	EntityType  MediaEntityType `gorm:"type:varchar(50);not null;index:idx_media_assets_entity,priority:1" json:"entity_type"`
	EntityID    *uuid.UUID      `gorm:"type:uuid;index:idx_media_assets_entity,priority:2" json:"entity_id"`
	Status      MediaStatus     `gorm:"type:varchar(20);not null;default:'TEMP';index:idx_media_assets_status" json:"status"`
	FileName    string          `gorm:"type:varchar(255);not null" json:"file_name"`
	FileKey     string          `gorm:"type:text;not null" json:"file_key"`
	FileSize    int64           `gorm:"not null" json:"file_size"`
	ContentType string          `gorm:"type:varchar(100);not null" json:"content_type"`
	UploadedBy  uuid.UUID       `gorm:"type:uuid;not null;index:idx_media_assets_uploaded_by" json:"uploaded_by"`
	ExpiresAt   *time.Time      `gorm:"type:timestamp;index:idx_media_assets_expires_at" json:"expires_at"`
}

// TableName specifies the table name for MediaAsset
func (MediaAsset) TableName() string {
	return "media_assets"
}
