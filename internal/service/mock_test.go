package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"agency-console-api/internal/domain"
)

// MockProposalRepository is a mock implementation of ProposalRepository
type MockProposalRepository struct {
	CreateFunc     func(ctx context.Context, proposal *domain.Proposal) error
	FindByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Proposal, error)
	FindBySlugFunc func(ctx context.Context, slug string) (*domain.Proposal, error)
	FindAllFunc    func(ctx context.Context, status *domain.ProposalStatus) ([]*domain.Proposal, error)
	UpdateFunc     func(ctx context.Context, proposal *domain.Proposal) error
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error
}

func (m *MockProposalRepository) Create(ctx context.Context, proposal *domain.Proposal) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, proposal)
	}
	return nil
}

func (m *MockProposalRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockProposalRepository) FindBySlug(ctx context.Context, slug string) (*domain.Proposal, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockProposalRepository) FindAll(ctx context.Context, status *domain.ProposalStatus) ([]*domain.Proposal, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, status)
	}
	return nil, nil
}

func (m *MockProposalRepository) Update(ctx context.Context, proposal *domain.Proposal) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, proposal)
	}
	return nil
}

func (m *MockProposalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockTrackerRepository is a mock implementation of TrackerRepository
type MockTrackerRepository struct {
	CreateFunc             func(ctx context.Context, tracker *domain.ProjectTracker) error
	FindByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.ProjectTracker, error)
	FindBySlugFunc         func(ctx context.Context, slug string) (*domain.ProjectTracker, error)
	FindByProposalIDFunc   func(ctx context.Context, proposalID uuid.UUID) (*domain.ProjectTracker, error)
	ExistsByProposalIDFunc func(ctx context.Context, proposalID uuid.UUID) (bool, error)
	UpdateFunc             func(ctx context.Context, tracker *domain.ProjectTracker) error
	DeleteByProposalIDFunc func(ctx context.Context, proposalID uuid.UUID) error
}

func (m *MockTrackerRepository) Create(ctx context.Context, tracker *domain.ProjectTracker) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tracker)
	}
	return nil
}

func (m *MockTrackerRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.ProjectTracker, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockTrackerRepository) FindBySlug(ctx context.Context, slug string) (*domain.ProjectTracker, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockTrackerRepository) FindByProposalID(ctx context.Context, proposalID uuid.UUID) (*domain.ProjectTracker, error) {
	if m.FindByProposalIDFunc != nil {
		return m.FindByProposalIDFunc(ctx, proposalID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockTrackerRepository) ExistsByProposalID(ctx context.Context, proposalID uuid.UUID) (bool, error) {
	if m.ExistsByProposalIDFunc != nil {
		return m.ExistsByProposalIDFunc(ctx, proposalID)
	}
	return false, nil
}

func (m *MockTrackerRepository) Update(ctx context.Context, tracker *domain.ProjectTracker) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tracker)
	}
	return nil
}

func (m *MockTrackerRepository) DeleteByProposalID(ctx context.Context, proposalID uuid.UUID) error {
	if m.DeleteByProposalIDFunc != nil {
		return m.DeleteByProposalIDFunc(ctx, proposalID)
	}
	return nil
}

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	CreateFunc   func(ctx context.Context, customer *domain.Customer) error
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	FindAllFunc  func(ctx context.Context) ([]*domain.Customer, error)
	UpdateFunc   func(ctx context.Context, customer *domain.Customer) error
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, customer)
	}
	return nil
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockCustomerRepository) FindAll(ctx context.Context) ([]*domain.Customer, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, customer)
	}
	return nil
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockPostRepository is a mock implementation of PostRepository
type MockPostRepository struct {
	CreateFunc     func(ctx context.Context, post *domain.Post) error
	FindByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	FindBySlugFunc func(ctx context.Context, slug string) (*domain.Post, error)
	FindAllFunc    func(ctx context.Context, publishedOnly bool) ([]*domain.Post, error)
	UpdateFunc     func(ctx context.Context, post *domain.Post) error
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error
}

func (m *MockPostRepository) Create(ctx context.Context, post *domain.Post) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, post)
	}
	return nil
}

func (m *MockPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockPostRepository) FindBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockPostRepository) FindAll(ctx context.Context, publishedOnly bool) ([]*domain.Post, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, publishedOnly)
	}
	return nil, nil
}

func (m *MockPostRepository) Update(ctx context.Context, post *domain.Post) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, post)
	}
	return nil
}

func (m *MockPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockAIClient is a mock implementation of AIClientInterface
type MockAIClient struct {
	GenerateTextFunc  func(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	GenerateImageFunc func(ctx context.Context, prompt string) ([]byte, error)
}

func (m *MockAIClient) GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if m.GenerateTextFunc != nil {
		return m.GenerateTextFunc(ctx, systemPrompt, userPrompt)
	}
	return "", nil
}

func (m *MockAIClient) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	if m.GenerateImageFunc != nil {
		return m.GenerateImageFunc(ctx, prompt)
	}
	return nil, nil
}

// MockAdminRepository is a mock implementation of AdminRepository
type MockAdminRepository struct {
	CreateFunc      func(ctx context.Context, admin *domain.Admin) error
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Admin, error)
	FindByEmailFunc func(ctx context.Context, email string) (*domain.Admin, error)
	CountFunc       func(ctx context.Context) (int64, error)
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, admin)
	}
	return nil
}

func (m *MockAdminRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockAdminRepository) FindByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockAdminRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}
