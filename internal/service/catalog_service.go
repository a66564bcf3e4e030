package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"agency-console-api/internal/domain"
	"agency-console-api/internal/dto"
	"agency-console-api/internal/repository"
	"agency-console-api/internal/response"
)

// CatalogService defines the interface for the service catalog
type CatalogService interface {
	CreateService(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	GetService(ctx context.Context, serviceID uuid.UUID) (*dto.ServiceResponse, error)
	GetServiceBySlug(ctx context.Context, slug string) (*dto.ServiceResponse, error)
	ListServices(ctx context.Context, activeOnly bool) ([]*dto.ServiceResponse, error)
	UpdateService(ctx context.Context, serviceID uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	DeleteService(ctx context.Context, serviceID uuid.UUID) error
}

// catalogServiceImpl is the implementation of CatalogService
type catalogServiceImpl struct {
	serviceRepo repository.ServiceRepository
	logger      *zap.Logger
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(serviceRepo repository.ServiceRepository, logger *zap.Logger) CatalogService {
	return &catalogServiceImpl{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// CreateService creates a new catalog entry
func (s *catalogServiceImpl) CreateService(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if _, err := s.serviceRepo.FindBySlug(ctx, req.Slug); err == nil {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Service slug already in use", req.Slug)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check service slug", err.Error())
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	service := &domain.Service{
		Slug:        req.Slug,
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		SortOrder:   req.SortOrder,
		Active:      active,
	}

	if err := s.serviceRepo.Create(ctx, service); err != nil {
		if isUniqueViolation(err) {
			return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Service slug already in use", req.Slug)
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create service", err.Error())
	}

	return toServiceResponse(service), nil
}

// GetService retrieves a catalog entry by ID
func (s *catalogServiceImpl) GetService(ctx context.Context, serviceID uuid.UUID) (*dto.ServiceResponse, error) {
	service, err := s.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Service not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch service", err.Error())
	}
	return toServiceResponse(service), nil
}

// GetServiceBySlug retrieves an active catalog entry for the public site
func (s *catalogServiceImpl) GetServiceBySlug(ctx context.Context, slug string) (*dto.ServiceResponse, error) {
	service, err := s.serviceRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Service not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch service", err.Error())
	}
	if !service.Active {
		return nil, response.NewAppError(response.ErrCodeNotFound, "Service not found", "")
	}
	return toServiceResponse(service), nil
}

// ListServices retrieves catalog entries in display order
func (s *catalogServiceImpl) ListServices(ctx context.Context, activeOnly bool) ([]*dto.ServiceResponse, error) {
	services, err := s.serviceRepo.FindAll(ctx, activeOnly)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch services", err.Error())
	}

	responses := make([]*dto.ServiceResponse, len(services))
	for i, service := range services {
		responses[i] = toServiceResponse(service)
	}
	return responses, nil
}

// UpdateService updates a catalog entry
func (s *catalogServiceImpl) UpdateService(ctx context.Context, serviceID uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	service, err := s.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Service not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch service", err.Error())
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Icon != nil {
		service.Icon = *req.Icon
	}
	if req.SortOrder != nil {
		service.SortOrder = *req.SortOrder
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := s.serviceRepo.Update(ctx, service); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update service", err.Error())
	}
	return toServiceResponse(service), nil
}

// DeleteService soft deletes a catalog entry
func (s *catalogServiceImpl) DeleteService(ctx context.Context, serviceID uuid.UUID) error {
	if _, err := s.serviceRepo.FindByID(ctx, serviceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Service not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch service", err.Error())
	}
	if err := s.serviceRepo.Delete(ctx, serviceID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete service", err.Error())
	}
	return nil
}

func toServiceResponse(service *domain.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:          service.ID,
		Slug:        service.Slug,
		Name:        service.Name,
		Description: service.Description,
		Icon:        service.Icon,
		SortOrder:   service.SortOrder,
		Active:      service.Active,
		CreatedAt:   service.CreatedAt,
		UpdatedAt:   service.UpdatedAt,
	}
}
