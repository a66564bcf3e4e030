package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"agency-console-api/internal/domain"
)

// ServiceRepository defines the interface for service catalog data access
type ServiceRepository interface {
	Create(ctx context.Context, service *domain.Service) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Service, error)
	FindAll(ctx context.Context, activeOnly bool) ([]*domain.Service, error)
	Update(ctx context.Context, service *domain.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type serviceRepositoryImpl struct {
	db *gorm.DB
}

// NewServiceRepository creates a new instance of ServiceRepository
func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepositoryImpl{db: db}
}

func (r *serviceRepositoryImpl) Create(ctx context.Context, service *domain.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *serviceRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	var service domain.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*domain.Service, error) {
	var service domain.Service
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// FindAll lists catalog entries in display order
func (r *serviceRepositoryImpl) FindAll(ctx context.Context, activeOnly bool) ([]*domain.Service, error) {
	var services []*domain.Service
	query := r.db.WithContext(ctx).Order("sort_order ASC, created_at ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepositoryImpl) Update(ctx context.Context, service *domain.Service) error {
	return r.db.WithContext(ctx).Save(service).Error
}

func (r *serviceRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Service{}, id).Error
}
