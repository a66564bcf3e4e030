package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"agency-console-api/internal/domain"
)

// ProposalRepository defines the interface for proposal data access
type ProposalRepository interface {
	Create(ctx context.Context, proposal *domain.Proposal) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Proposal, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Proposal, error)
	FindAll(ctx context.Context, status *domain.ProposalStatus) ([]*domain.Proposal, error)
	Update(ctx context.Context, proposal *domain.Proposal) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// proposalRepositoryImpl is the GORM implementation of ProposalRepository
type proposalRepositoryImpl struct {
	db *gorm.DB
}

// NewProposalRepository creates a new instance of ProposalRepository
func NewProposalRepository(db *gorm.DB) ProposalRepository {
	return &proposalRepositoryImpl{db: db}
}

// Create creates a new proposal
func (r *proposalRepositoryImpl) Create(ctx context.Context, proposal *domain.Proposal) error {
	if err := r.db.WithContext(ctx).Create(proposal).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a proposal by its ID
func (r *proposalRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
	var proposal domain.Proposal
	if err := r.db.WithContext(ctx).First(&proposal, id).Error; err != nil {
		return nil, err
	}
	return &proposal, nil
}

// FindBySlug finds a proposal by its URL slug
func (r *proposalRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*domain.Proposal, error) {
	var proposal domain.Proposal
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&proposal).Error; err != nil {
		return nil, err
	}
	return &proposal, nil
}

// FindAll lists proposals, optionally filtered by status, newest first
func (r *proposalRepositoryImpl) FindAll(ctx context.Context, status *domain.ProposalStatus) ([]*domain.Proposal, error) {
	var proposals []*domain.Proposal
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if err := query.Find(&proposals).Error; err != nil {
		return nil, err
	}
	return proposals, nil
}

// Update persists all fields of a proposal
func (r *proposalRepositoryImpl) Update(ctx context.Context, proposal *domain.Proposal) error {
	if err := r.db.WithContext(ctx).Save(proposal).Error; err != nil {
		return err
	}
	return nil
}

// Delete soft deletes a proposal by ID
func (r *proposalRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Proposal{}, id).Error; err != nil {
		return err
	}
	return nil
}
