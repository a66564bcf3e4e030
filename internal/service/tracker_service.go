package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"agency-console-api/internal/client"
	"agency-console-api/internal/domain"
	"agency-console-api/internal/dto"
	"agency-console-api/internal/metrics"
	"agency-console-api/internal/repository"
	"agency-console-api/internal/response"
)

// TrackerService defines the interface for project tracker business logic
type TrackerService interface {
	GetTracker(ctx context.Context, trackerID uuid.UUID) (*dto.TrackerResponse, error)
	GetTrackerBySlug(ctx context.Context, slug string) (*dto.TrackerResponse, error)
	UpdateTracker(ctx context.Context, trackerID uuid.UUID, req *dto.UpdateTrackerRequest) (*dto.TrackerResponse, error)
	AddUpdate(ctx context.Context, trackerID uuid.UUID, req *dto.AddTrackerUpdateRequest) (*dto.TrackerResponse, error)
	AddFile(ctx context.Context, trackerID uuid.UUID, req *dto.AddTrackerFileRequest) (*dto.TrackerResponse, error)
	RemoveFile(ctx context.Context, trackerID uuid.UUID, fileKey string) (*dto.TrackerResponse, error)
	VerifyVault(ctx context.Context, slug string, password string) (*dto.VaultResponse, error)
}

// trackerServiceImpl is the implementation of TrackerService
type trackerServiceImpl struct {
	trackerRepo  repository.TrackerRepository
	proposalRepo repository.ProposalRepository
	s3Client     client.S3ClientInterface
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewTrackerService creates a new instance of TrackerService
func NewTrackerService(
	trackerRepo repository.TrackerRepository,
	proposalRepo repository.ProposalRepository,
	s3Client client.S3ClientInterface,
	m *metrics.Metrics,
	logger *zap.Logger,
) TrackerService {
	return &trackerServiceImpl{
		trackerRepo:  trackerRepo,
		proposalRepo: proposalRepo,
		s3Client:     s3Client,
		metrics:      m,
		logger:       logger,
	}
}

// GetTracker retrieves a tracker by ID for the console. Files are always
// included since the caller is an authenticated operator.
func (s *trackerServiceImpl) GetTracker(ctx context.Context, trackerID uuid.UUID) (*dto.TrackerResponse, error) {
	tracker, err := s.trackerRepo.FindByID(ctx, trackerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Tracker not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tracker", err.Error())
	}
	return s.toTrackerResponse(ctx, tracker, true)
}

// GetTrackerBySlug retrieves a tracker through its client link. When the
// vault is password protected the file list is withheld; clients get it
// back through VerifyVault.
func (s *trackerServiceImpl) GetTrackerBySlug(ctx context.Context, slug string) (*dto.TrackerResponse, error) {
	tracker, err := s.trackerRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Tracker not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tracker", err.Error())
	}
	return s.toTrackerResponse(ctx, tracker, !tracker.IsVaultProtected())
}

// UpdateTracker updates tracker progress and settings. Reaching 100%
// progress marks the tracker COMPLETED; dropping back below reopens it.
func (s *trackerServiceImpl) UpdateTracker(ctx context.Context, trackerID uuid.UUID, req *dto.UpdateTrackerRequest) (*dto.TrackerResponse, error) {
	tracker, err := s.trackerRepo.FindByID(ctx, trackerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Tracker not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tracker", err.Error())
	}

	if req.Progress != nil {
		if *req.Progress < 0 || *req.Progress > 100 {
			return nil, response.NewAppError(response.ErrCodeValidation, "Progress must be between 0 and 100", "")
		}
		tracker.Progress = *req.Progress
		if tracker.Progress == 100 {
			tracker.Status = domain.TrackerStatusCompleted
		} else {
			tracker.Status = domain.TrackerStatusActive
		}
	}
	if req.Phases != nil {
		if err := tracker.SetPhases(req.Phases); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode tracker phases", err.Error())
		}
	}
	if req.VaultPassword != nil {
		// Empty string removes the vault password
		tracker.VaultPassword = *req.VaultPassword
	}
	if req.Language != nil {
		tracker.Language = *req.Language
	}

	if err := s.trackerRepo.Update(ctx, tracker); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update tracker", err.Error())
	}

	return s.toTrackerResponse(ctx, tracker, true)
}

// AddUpdate appends a progress note to the tracker
func (s *trackerServiceImpl) AddUpdate(ctx context.Context, trackerID uuid.UUID, req *dto.AddTrackerUpdateRequest) (*dto.TrackerResponse, error) {
	tracker, err := s.trackerRepo.FindByID(ctx, trackerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Tracker not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tracker", err.Error())
	}

	updates, err := tracker.DecodeUpdates()
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to decode tracker updates", err.Error())
	}
	updates = append(updates, domain.TrackerUpdate{
		Title:    req.Title,
		Body:     req.Body,
		PostedAt: time.Now(),
	})
	if err := tracker.SetUpdates(updates); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode tracker updates", err.Error())
	}

	if err := s.trackerRepo.Update(ctx, tracker); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update tracker", err.Error())
	}

	return s.toTrackerResponse(ctx, tracker, true)
}

// AddFile registers an uploaded deliverable in the tracker's vault
func (s *trackerServiceImpl) AddFile(ctx context.Context, trackerID uuid.UUID, req *dto.AddTrackerFileRequest) (*dto.TrackerResponse, error) {
	tracker, err := s.trackerRepo.FindByID(ctx, trackerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Tracker not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tracker", err.Error())
	}

	files, err := tracker.DecodeFiles()
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to decode tracker files", err.Error())
	}
	for _, f := range files {
		if f.FileKey == req.FileKey {
			return nil, response.NewAppError(response.ErrCodeAlreadyExists, "File already registered", req.FileKey)
		}
	}
	files = append(files, domain.TrackerFile{
		Name:       req.Name,
		FileKey:    req.FileKey,
		Size:       req.Size,
		UploadedAt: time.Now(),
	})
	if err := tracker.SetFiles(files); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode tracker files", err.Error())
	}

	if err := s.trackerRepo.Update(ctx, tracker); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update tracker", err.Error())
	}

	return s.toTrackerResponse(ctx, tracker, true)
}

// RemoveFile drops a deliverable from the vault and removes the object
// from storage
func (s *trackerServiceImpl) RemoveFile(ctx context.Context, trackerID uuid.UUID, fileKey string) (*dto.TrackerResponse, error) {
	tracker, err := s.trackerRepo.FindByID(ctx, trackerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Tracker not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tracker", err.Error())
	}

	files, err := tracker.DecodeFiles()
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to decode tracker files", err.Error())
	}

	kept := make([]domain.TrackerFile, 0, len(files))
	found := false
	for _, f := range files {
		if f.FileKey == fileKey {
			found = true
			continue
		}
		kept = append(kept, f)
	}
	if !found {
		return nil, response.NewAppError(response.ErrCodeNotFound, "File not found in vault", fileKey)
	}

	if err := tracker.SetFiles(kept); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode tracker files", err.Error())
	}
	if err := s.trackerRepo.Update(ctx, tracker); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update tracker", err.Error())
	}

	// Storage cleanup is best-effort, the vault entry is already gone
	if err := s.s3Client.DeleteFile(ctx, fileKey); err != nil {
		s.logger.Warn("Failed to delete vault file from storage",
			zap.String("tracker_id", tracker.ID.String()),
			zap.String("file_key", fileKey),
			zap.Error(err))
	}

	return s.toTrackerResponse(ctx, tracker, true)
}

// VerifyVault checks a client's vault password attempt and returns the
// file list on success. The comparison is constant time so attempts leak
// nothing about the password.
func (s *trackerServiceImpl) VerifyVault(ctx context.Context, slug string, password string) (*dto.VaultResponse, error) {
	tracker, err := s.trackerRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Tracker not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tracker", err.Error())
	}

	if !tracker.IsVaultProtected() {
		return nil, response.NewAppError(response.ErrCodeValidation, "Vault is not password protected", "")
	}

	if subtle.ConstantTimeCompare([]byte(tracker.VaultPassword), []byte(password)) != 1 {
		if s.metrics != nil {
			s.metrics.IncrementVaultVerify("denied")
		}
		s.logger.Info("Vault password attempt denied",
			zap.String("tracker_id", tracker.ID.String()))
		return nil, response.NewAppError(response.ErrCodeForbidden, "Invalid vault password", "")
	}

	if s.metrics != nil {
		s.metrics.IncrementVaultVerify("granted")
	}

	files, err := s.resolveFiles(tracker)
	if err != nil {
		return nil, err
	}
	return &dto.VaultResponse{Files: files}, nil
}

func (s *trackerServiceImpl) resolveFiles(tracker *domain.ProjectTracker) ([]dto.TrackerFileResponse, error) {
	files, err := tracker.DecodeFiles()
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to decode tracker files", err.Error())
	}

	resolved := make([]dto.TrackerFileResponse, 0, len(files))
	for _, f := range files {
		resolved = append(resolved, dto.TrackerFileResponse{
			Name:       f.Name,
			FileURL:    s.s3Client.GetFileURL(f.FileKey),
			Size:       f.Size,
			UploadedAt: f.UploadedAt,
		})
	}
	return resolved, nil
}

// toTrackerResponse converts domain.ProjectTracker to dto.TrackerResponse.
// includeFiles controls whether the vault file list is exposed.
func (s *trackerServiceImpl) toTrackerResponse(ctx context.Context, tracker *domain.ProjectTracker, includeFiles bool) (*dto.TrackerResponse, error) {
	phases, err := tracker.DecodePhases()
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to decode tracker phases", err.Error())
	}
	updates, err := tracker.DecodeUpdates()
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to decode tracker updates", err.Error())
	}

	resp := &dto.TrackerResponse{
		ID:             tracker.ID,
		Slug:           tracker.Slug,
		ProposalID:     tracker.ProposalID,
		Status:         tracker.Status,
		Progress:       tracker.Progress,
		Phases:         phases,
		Updates:        updates,
		VaultProtected: tracker.IsVaultProtected(),
		Language:       tracker.Language,
		CreatedAt:      tracker.CreatedAt,
		UpdatedAt:      tracker.UpdatedAt,
	}

	proposal, err := s.proposalRepo.FindByID(ctx, tracker.ProposalID)
	if err != nil {
		s.logger.Warn("Failed to fetch proposal for tracker response",
			zap.String("tracker_id", tracker.ID.String()),
			zap.Error(err))
	} else {
		resp.Title = proposal.Title
		resp.ClientName = proposal.ClientName
	}

	if includeFiles {
		files, err := s.resolveFiles(tracker)
		if err != nil {
			return nil, err
		}
		resp.Files = files
	}
	return resp, nil
}
