package handler

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"agency-console-api/internal/domain"
	"agency-console-api/internal/dto"
)

// MockProposalService is a mock implementation of service.ProposalService
type MockProposalService struct {
	CreateProposalFunc    func(ctx context.Context, req *dto.CreateProposalRequest) (*dto.ProposalResponse, error)
	GetProposalFunc       func(ctx context.Context, proposalID uuid.UUID) (*dto.ProposalResponse, error)
	GetProposalBySlugFunc func(ctx context.Context, slug string) (*dto.ProposalResponse, error)
	ListProposalsFunc     func(ctx context.Context, status *domain.ProposalStatus) ([]*dto.ProposalListItemResponse, error)
	UpdateProposalFunc    func(ctx context.Context, proposalID uuid.UUID, req *dto.UpdateProposalRequest) (*dto.ProposalResponse, error)
	UpdateStatusFunc      func(ctx context.Context, proposalID uuid.UUID, newStatus domain.ProposalStatus) (*dto.ProposalResponse, error)
	DeleteProposalFunc    func(ctx context.Context, proposalID uuid.UUID) error
}

func (m *MockProposalService) CreateProposal(ctx context.Context, req *dto.CreateProposalRequest) (*dto.ProposalResponse, error) {
	if m.CreateProposalFunc != nil {
		return m.CreateProposalFunc(ctx, req)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockProposalService) GetProposal(ctx context.Context, proposalID uuid.UUID) (*dto.ProposalResponse, error) {
	if m.GetProposalFunc != nil {
		return m.GetProposalFunc(ctx, proposalID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockProposalService) GetProposalBySlug(ctx context.Context, slug string) (*dto.ProposalResponse, error) {
	if m.GetProposalBySlugFunc != nil {
		return m.GetProposalBySlugFunc(ctx, slug)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockProposalService) ListProposals(ctx context.Context, status *domain.ProposalStatus) ([]*dto.ProposalListItemResponse, error) {
	if m.ListProposalsFunc != nil {
		return m.ListProposalsFunc(ctx, status)
	}
	return nil, nil
}

func (m *MockProposalService) UpdateProposal(ctx context.Context, proposalID uuid.UUID, req *dto.UpdateProposalRequest) (*dto.ProposalResponse, error) {
	if m.UpdateProposalFunc != nil {
		return m.UpdateProposalFunc(ctx, proposalID, req)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockProposalService) UpdateStatus(ctx context.Context, proposalID uuid.UUID, newStatus domain.ProposalStatus) (*dto.ProposalResponse, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, proposalID, newStatus)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockProposalService) DeleteProposal(ctx context.Context, proposalID uuid.UUID) error {
	if m.DeleteProposalFunc != nil {
		return m.DeleteProposalFunc(ctx, proposalID)
	}
	return nil
}

// MockTrackerService is a mock implementation of service.TrackerService
type MockTrackerService struct {
	GetTrackerFunc       func(ctx context.Context, trackerID uuid.UUID) (*dto.TrackerResponse, error)
	GetTrackerBySlugFunc func(ctx context.Context, slug string) (*dto.TrackerResponse, error)
	UpdateTrackerFunc    func(ctx context.Context, trackerID uuid.UUID, req *dto.UpdateTrackerRequest) (*dto.TrackerResponse, error)
	AddUpdateFunc        func(ctx context.Context, trackerID uuid.UUID, req *dto.AddTrackerUpdateRequest) (*dto.TrackerResponse, error)
	AddFileFunc          func(ctx context.Context, trackerID uuid.UUID, req *dto.AddTrackerFileRequest) (*dto.TrackerResponse, error)
	RemoveFileFunc       func(ctx context.Context, trackerID uuid.UUID, fileKey string) (*dto.TrackerResponse, error)
	VerifyVaultFunc      func(ctx context.Context, slug string, password string) (*dto.VaultResponse, error)
}

func (m *MockTrackerService) GetTracker(ctx context.Context, trackerID uuid.UUID) (*dto.TrackerResponse, error) {
	if m.GetTrackerFunc != nil {
		return m.GetTrackerFunc(ctx, trackerID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockTrackerService) GetTrackerBySlug(ctx context.Context, slug string) (*dto.TrackerResponse, error) {
	if m.GetTrackerBySlugFunc != nil {
		return m.GetTrackerBySlugFunc(ctx, slug)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockTrackerService) UpdateTracker(ctx context.Context, trackerID uuid.UUID, req *dto.UpdateTrackerRequest) (*dto.TrackerResponse, error) {
	if m.UpdateTrackerFunc != nil {
		return m.UpdateTrackerFunc(ctx, trackerID, req)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockTrackerService) AddUpdate(ctx context.Context, trackerID uuid.UUID, req *dto.AddTrackerUpdateRequest) (*dto.TrackerResponse, error) {
	if m.AddUpdateFunc != nil {
		return m.AddUpdateFunc(ctx, trackerID, req)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockTrackerService) AddFile(ctx context.Context, trackerID uuid.UUID, req *dto.AddTrackerFileRequest) (*dto.TrackerResponse, error) {
	if m.AddFileFunc != nil {
		return m.AddFileFunc(ctx, trackerID, req)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockTrackerService) RemoveFile(ctx context.Context, trackerID uuid.UUID, fileKey string) (*dto.TrackerResponse, error) {
	if m.RemoveFileFunc != nil {
		return m.RemoveFileFunc(ctx, trackerID, fileKey)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockTrackerService) VerifyVault(ctx context.Context, slug string, password string) (*dto.VaultResponse, error) {
	if m.VerifyVaultFunc != nil {
		return m.VerifyVaultFunc(ctx, slug, password)
	}
	return nil, gorm.ErrRecordNotFound
}
