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

// CustomerService defines the interface for customer record management
type CustomerService interface {
	CreateCustomer(ctx context.Context, req *dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	GetCustomer(ctx context.Context, customerID uuid.UUID) (*dto.CustomerResponse, error)
	ListCustomers(ctx context.Context) ([]*dto.CustomerResponse, error)
	UpdateCustomer(ctx context.Context, customerID uuid.UUID, req *dto.UpdateCustomerRequest) (*dto.CustomerResponse, error)
	DeleteCustomer(ctx context.Context, customerID uuid.UUID) error
}

// customerServiceImpl is the implementation of CustomerService
type customerServiceImpl struct {
	customerRepo repository.CustomerRepository
	logger       *zap.Logger
}

// NewCustomerService creates a new instance of CustomerService
func NewCustomerService(customerRepo repository.CustomerRepository, logger *zap.Logger) CustomerService {
	return &customerServiceImpl{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// CreateCustomer creates a new customer record
func (s *customerServiceImpl) CreateCustomer(ctx context.Context, req *dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	customer := &domain.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Phone:   req.Phone,
		Notes:   req.Notes,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create customer", err.Error())
	}
	return toCustomerResponse(customer), nil
}

// GetCustomer retrieves a customer record by ID
func (s *customerServiceImpl) GetCustomer(ctx context.Context, customerID uuid.UUID) (*dto.CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Customer not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch customer", err.Error())
	}
	return toCustomerResponse(customer), nil
}

// ListCustomers retrieves all customer records
func (s *customerServiceImpl) ListCustomers(ctx context.Context) ([]*dto.CustomerResponse, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch customers", err.Error())
	}

	responses := make([]*dto.CustomerResponse, len(customers))
	for i, customer := range customers {
		responses[i] = toCustomerResponse(customer)
	}
	return responses, nil
}

// UpdateCustomer updates a customer record
func (s *customerServiceImpl) UpdateCustomer(ctx context.Context, customerID uuid.UUID, req *dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Customer not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch customer", err.Error())
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Company != nil {
		customer.Company = *req.Company
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update customer", err.Error())
	}
	return toCustomerResponse(customer), nil
}

// DeleteCustomer soft deletes a customer record. Proposals keep their
// customer reference as a dangling ID, they are not cascaded.
func (s *customerServiceImpl) DeleteCustomer(ctx context.Context, customerID uuid.UUID) error {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Customer not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch customer", err.Error())
	}
	if err := s.customerRepo.Delete(ctx, customerID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete customer", err.Error())
	}
	return nil
}

func toCustomerResponse(customer *domain.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		Email:     customer.Email,
		Company:   customer.Company,
		Phone:     customer.Phone,
		Notes:     customer.Notes,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}
}
