package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"agency-console-api/internal/domain"
)

// TrackerRepository defines the interface for project tracker data access
type TrackerRepository interface {
	Create(ctx context.Context, tracker *domain.ProjectTracker) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.ProjectTracker, error)
	FindBySlug(ctx context.Context, slug string) (*domain.ProjectTracker, error)
	FindByProposalID(ctx context.Context, proposalID uuid.UUID) (*domain.ProjectTracker, error)
	ExistsByProposalID(ctx context.Context, proposalID uuid.UUID) (bool, error)
	Update(ctx context.Context, tracker *domain.ProjectTracker) error
	DeleteByProposalID(ctx context.Context, proposalID uuid.UUID) error
}

// trackerRepositoryImpl is the GORM implementation of TrackerRepository
type trackerRepositoryImpl struct {
	db *gorm.DB
}

// NewTrackerRepository creates a new instance of TrackerRepository
func NewTrackerRepository(db *gorm.DB) TrackerRepository {
	return &trackerRepositoryImpl{db: db}
}

// Create creates a new tracker. The unique index on proposal_id makes a
// concurrent duplicate create fail here rather than silently violating
// the one-tracker-per-proposal invariant.
func (r *trackerRepositoryImpl) Create(ctx context.Context, tracker *domain.ProjectTracker) error {
	if err := r.db.WithContext(ctx).Create(tracker).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a tracker by its ID
func (r *trackerRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.ProjectTracker, error) {
	var tracker domain.ProjectTracker
	if err := r.db.WithContext(ctx).First(&tracker, id).Error; err != nil {
		return nil, err
	}
	return &tracker, nil
}

// FindBySlug finds a tracker by its URL slug
func (r *trackerRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*domain.ProjectTracker, error) {
	var tracker domain.ProjectTracker
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&tracker).Error; err != nil {
		return nil, err
	}
	return &tracker, nil
}

// FindByProposalID finds the tracker owned by a proposal
func (r *trackerRepositoryImpl) FindByProposalID(ctx context.Context, proposalID uuid.UUID) (*domain.ProjectTracker, error) {
	var tracker domain.ProjectTracker
	if err := r.db.WithContext(ctx).Where("proposal_id = ?", proposalID).First(&tracker).Error; err != nil {
		return nil, err
	}
	return &tracker, nil
}

// ExistsByProposalID reports whether a tracker exists for a proposal
func (r *trackerRepositoryImpl) ExistsByProposalID(ctx context.Context, proposalID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.ProjectTracker{}).
		Where("proposal_id = ?", proposalID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update persists all fields of a tracker
func (r *trackerRepositoryImpl) Update(ctx context.Context, tracker *domain.ProjectTracker) error {
	if err := r.db.WithContext(ctx).Save(tracker).Error; err != nil {
		return err
	}
	return nil
}

// DeleteByProposalID removes the tracker owned by a proposal. Deleting
// when no tracker exists is not an error; the cleanup is unconditional
// by design.
func (r *trackerRepositoryImpl) DeleteByProposalID(ctx context.Context, proposalID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("proposal_id = ?", proposalID).
		Delete(&domain.ProjectTracker{}).Error; err != nil {
		return err
	}
	return nil
}
