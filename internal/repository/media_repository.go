package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"agency-console-api/internal/domain"
)

// MediaRepository defines the interface for media asset data access
type MediaRepository interface {
	Create(ctx context.Context, asset *domain.MediaAsset) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.MediaAsset, error)
	FindByEntity(ctx context.Context, entityType domain.MediaEntityType, entityID uuid.UUID) ([]*domain.MediaAsset, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.MediaAsset, error)
	FindExpiredTemp(ctx context.Context) ([]*domain.MediaAsset, error)
	Confirm(ctx context.Context, assetIDs []uuid.UUID, entityID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteBatch(ctx context.Context, assetIDs []uuid.UUID) error
}

// mediaRepositoryImpl is the GORM implementation of MediaRepository
type mediaRepositoryImpl struct {
	db *gorm.DB
}

// NewMediaRepository creates a new instance of MediaRepository
func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepositoryImpl{db: db}
}

func (r *mediaRepositoryImpl) Create(ctx context.Context, asset *domain.MediaAsset) error {
	return r.db.WithContext(ctx).Create(asset).Error
}

func (r *mediaRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.MediaAsset, error) {
	var asset domain.MediaAsset
	if err := r.db.WithContext(ctx).First(&asset, id).Error; err != nil {
		return nil, err
	}
	return &asset, nil
}

// FindByEntity finds all media assets attached to an entity
func (r *mediaRepositoryImpl) FindByEntity(ctx context.Context, entityType domain.MediaEntityType, entityID uuid.UUID) ([]*domain.MediaAsset, error) {
	var assets []*domain.MediaAsset
	if err := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at DESC").
		Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

func (r *mediaRepositoryImpl) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.MediaAsset, error) {
	if len(ids) == 0 {
		return []*domain.MediaAsset{}, nil
	}

	var assets []*domain.MediaAsset
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

// FindExpiredTemp finds temporary assets that have exceeded their expiration time
func (r *mediaRepositoryImpl) FindExpiredTemp(ctx context.Context) ([]*domain.MediaAsset, error) {
	var assets []*domain.MediaAsset
	if err := r.db.WithContext(ctx).
		Where("status = ? AND expires_at < ?", domain.MediaStatusTemp, time.Now()).
		Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

// Confirm marks TEMP assets as CONFIRMED and binds them to an entity.
// Only TEMP rows are updated so a replayed request cannot rebind an
// asset already attached elsewhere.
func (r *mediaRepositoryImpl) Confirm(ctx context.Context, assetIDs []uuid.UUID, entityID uuid.UUID) error {
	if len(assetIDs) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&domain.MediaAsset{}).
		Where("id IN ? AND status = ?", assetIDs, domain.MediaStatusTemp).
		Updates(map[string]interface{}{
			"status":    domain.MediaStatusConfirmed,
			"entity_id": entityID,
		})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("no media assets were confirmed: all %d asset(s) are either not found or already confirmed",
			len(assetIDs))
	}

	if result.RowsAffected != int64(len(assetIDs)) {
		return fmt.Errorf("expected to confirm %d media asset(s) but only confirmed %d",
			len(assetIDs), result.RowsAffected)
	}

	return nil
}

// Delete soft deletes a media asset by ID
func (r *mediaRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.MediaAsset{}, id).Error
}

// DeleteBatch deletes multiple media assets by their IDs
func (r *mediaRepositoryImpl) DeleteBatch(ctx context.Context, assetIDs []uuid.UUID) error {
	if len(assetIDs) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Where("id IN ?", assetIDs).
		Delete(&domain.MediaAsset{}).Error
}
