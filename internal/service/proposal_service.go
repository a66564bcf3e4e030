package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"agency-console-api/internal/client"
	"agency-console-api/internal/config"
	"agency-console-api/internal/domain"
	"agency-console-api/internal/dto"
	"agency-console-api/internal/metrics"
	"agency-console-api/internal/repository"
	"agency-console-api/internal/response"
)

// ProposalService defines the interface for proposal business logic
type ProposalService interface {
	CreateProposal(ctx context.Context, req *dto.CreateProposalRequest) (*dto.ProposalResponse, error)
	GetProposal(ctx context.Context, proposalID uuid.UUID) (*dto.ProposalResponse, error)
	GetProposalBySlug(ctx context.Context, slug string) (*dto.ProposalResponse, error)
	ListProposals(ctx context.Context, status *domain.ProposalStatus) ([]*dto.ProposalListItemResponse, error)
	UpdateProposal(ctx context.Context, proposalID uuid.UUID, req *dto.UpdateProposalRequest) (*dto.ProposalResponse, error)
	UpdateStatus(ctx context.Context, proposalID uuid.UUID, newStatus domain.ProposalStatus) (*dto.ProposalResponse, error)
	DeleteProposal(ctx context.Context, proposalID uuid.UUID) error
}

// proposalServiceImpl is the implementation of ProposalService
type proposalServiceImpl struct {
	proposalRepo repository.ProposalRepository
	trackerRepo  repository.TrackerRepository
	customerRepo repository.CustomerRepository
	mailer       client.MailSender
	agency       config.AgencyConfig
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewProposalService creates a new instance of ProposalService
func NewProposalService(
	proposalRepo repository.ProposalRepository,
	trackerRepo repository.TrackerRepository,
	customerRepo repository.CustomerRepository,
	mailer client.MailSender,
	agency config.AgencyConfig,
	m *metrics.Metrics,
	logger *zap.Logger,
) ProposalService {
	return &proposalServiceImpl{
		proposalRepo: proposalRepo,
		trackerRepo:  trackerRepo,
		customerRepo: customerRepo,
		mailer:       mailer,
		agency:       agency,
		metrics:      m,
		logger:       logger,
	}
}

// CreateProposal creates a new proposal in DRAFT status
func (s *proposalServiceImpl) CreateProposal(ctx context.Context, req *dto.CreateProposalRequest) (*dto.ProposalResponse, error) {
	// Slug is the public identifier, reject duplicates up front
	if _, err := s.proposalRepo.FindBySlug(ctx, req.Slug); err == nil {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Proposal slug already in use", req.Slug)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check proposal slug", err.Error())
	}

	if req.CustomerID != nil {
		if _, err := s.customerRepo.FindByID(ctx, *req.CustomerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewAppError(response.ErrCodeNotFound, "Customer not found", "")
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify customer", err.Error())
		}
	}

	proposal := &domain.Proposal{
		Slug:        req.Slug,
		Title:       req.Title,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		CustomerID:  req.CustomerID,
		Status:      domain.ProposalStatusDraft,
	}

	content := req.Content
	if content == nil {
		content = &domain.ProposalContent{}
	}
	if err := proposal.SetContent(content); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode proposal content", err.Error())
	}

	if err := s.proposalRepo.Create(ctx, proposal); err != nil {
		if isUniqueViolation(err) {
			return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Proposal slug already in use", req.Slug)
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create proposal", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementProposalCreated()
	}

	return s.toProposalResponse(ctx, proposal), nil
}

// GetProposal retrieves a proposal by ID
func (s *proposalServiceImpl) GetProposal(ctx context.Context, proposalID uuid.UUID) (*dto.ProposalResponse, error) {
	proposal, err := s.proposalRepo.FindByID(ctx, proposalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Proposal not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch proposal", err.Error())
	}
	return s.toProposalResponse(ctx, proposal), nil
}

// GetProposalBySlug retrieves a proposal through its public link slug.
// Draft proposals have no public page.
func (s *proposalServiceImpl) GetProposalBySlug(ctx context.Context, slug string) (*dto.ProposalResponse, error) {
	proposal, err := s.proposalRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Proposal not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch proposal", err.Error())
	}
	if proposal.Status == domain.ProposalStatusDraft {
		return nil, response.NewAppError(response.ErrCodeNotFound, "Proposal not found", "")
	}
	return s.toProposalResponse(ctx, proposal), nil
}

// ListProposals retrieves proposal summaries, optionally filtered by status
func (s *proposalServiceImpl) ListProposals(ctx context.Context, status *domain.ProposalStatus) ([]*dto.ProposalListItemResponse, error) {
	proposals, err := s.proposalRepo.FindAll(ctx, status)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch proposals", err.Error())
	}

	items := make([]*dto.ProposalListItemResponse, 0, len(proposals))
	for _, p := range proposals {
		item := &dto.ProposalListItemResponse{
			ID:         p.ID,
			Slug:       p.Slug,
			Title:      p.Title,
			ClientName: p.ClientName,
			Status:     p.Status,
			CreatedAt:  p.CreatedAt,
			UpdatedAt:  p.UpdatedAt,
		}
		content, err := p.DecodeContent()
		if err != nil {
			s.logger.Warn("Failed to decode proposal content for listing",
				zap.String("proposal_id", p.ID.String()),
				zap.Error(err))
		} else {
			item.TotalPrice = content.TotalPrice
			item.Currency = content.Currency
		}
		items = append(items, item)
	}
	return items, nil
}

// UpdateProposal updates a proposal's attributes. Status changes are not
// accepted here, they go through UpdateStatus so the tracker side effects
// always run.
func (s *proposalServiceImpl) UpdateProposal(ctx context.Context, proposalID uuid.UUID, req *dto.UpdateProposalRequest) (*dto.ProposalResponse, error) {
	proposal, err := s.proposalRepo.FindByID(ctx, proposalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Proposal not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch proposal", err.Error())
	}

	if req.CustomerID != nil && *req.CustomerID != uuid.Nil {
		if _, err := s.customerRepo.FindByID(ctx, *req.CustomerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewAppError(response.ErrCodeNotFound, "Customer not found", "")
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify customer", err.Error())
		}
	}

	if req.Title != nil {
		proposal.Title = *req.Title
	}
	if req.ClientName != nil {
		proposal.ClientName = *req.ClientName
	}
	if req.ClientEmail != nil {
		proposal.ClientEmail = *req.ClientEmail
	}
	if req.CustomerID != nil {
		if *req.CustomerID == uuid.Nil {
			proposal.CustomerID = nil
		} else {
			proposal.CustomerID = req.CustomerID
		}
	}
	if req.Content != nil {
		if err := proposal.SetContent(req.Content); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode proposal content", err.Error())
		}
	}

	if err := s.proposalRepo.Update(ctx, proposal); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update proposal", err.Error())
	}

	return s.toProposalResponse(ctx, proposal), nil
}

// UpdateStatus moves a proposal to a new lifecycle status and applies the
// tracker side effect the transition requires. A fresh acceptance creates
// the tracker and sends the notification emails; moving out of ACCEPTED
// deletes the tracker; re-sending ACCEPTED while a tracker exists is a
// no-op, which keeps acceptance idempotent.
func (s *proposalServiceImpl) UpdateStatus(ctx context.Context, proposalID uuid.UUID, newStatus domain.ProposalStatus) (*dto.ProposalResponse, error) {
	proposal, err := s.proposalRepo.FindByID(ctx, proposalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Proposal not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch proposal", err.Error())
	}

	trackerExists, err := s.trackerRepo.ExistsByProposalID(ctx, proposal.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check project tracker", err.Error())
	}

	action := domain.TrackerTransition(trackerExists, newStatus)

	var createdTracker *domain.ProjectTracker
	switch action {
	case domain.TrackerActionCreate:
		createdTracker, err = s.createTrackerFor(ctx, proposal)
		if err != nil {
			return nil, err
		}
	case domain.TrackerActionDelete:
		if err := s.trackerRepo.DeleteByProposalID(ctx, proposal.ID); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to remove project tracker", err.Error())
		}
		if trackerExists && s.metrics != nil {
			s.metrics.IncrementTrackerDeleted()
		}
	}

	proposal.Status = newStatus
	if err := s.proposalRepo.Update(ctx, proposal); err != nil {
		// Roll back a tracker created for this transition so the
		// tracker-iff-ACCEPTED invariant holds
		if createdTracker != nil {
			if delErr := s.trackerRepo.DeleteByProposalID(ctx, proposal.ID); delErr != nil {
				s.logger.Error("Failed to roll back tracker after status update failure",
					zap.String("proposal_id", proposal.ID.String()),
					zap.Error(delErr))
			}
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update proposal status", err.Error())
	}

	if createdTracker != nil {
		if s.metrics != nil {
			s.metrics.IncrementProposalAccepted()
		}
		s.sendAcceptanceEmails(proposal, createdTracker)
	}

	s.logger.Info("Proposal status updated",
		zap.String("proposal_id", proposal.ID.String()),
		zap.String("status", string(newStatus)),
		zap.String("tracker_action", action.String()))

	return s.toProposalResponse(ctx, proposal), nil
}

// DeleteProposal soft deletes a proposal and its tracker
func (s *proposalServiceImpl) DeleteProposal(ctx context.Context, proposalID uuid.UUID) error {
	_, err := s.proposalRepo.FindByID(ctx, proposalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Proposal not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch proposal", err.Error())
	}

	if err := s.trackerRepo.DeleteByProposalID(ctx, proposalID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to remove project tracker", err.Error())
	}

	if err := s.proposalRepo.Delete(ctx, proposalID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete proposal", err.Error())
	}
	return nil
}

// createTrackerFor builds a fresh tracker from the proposal's current
// content. The tracker slug gets a random suffix so the client link is
// not guessable from the proposal slug.
func (s *proposalServiceImpl) createTrackerFor(ctx context.Context, proposal *domain.Proposal) (*domain.ProjectTracker, error) {
	content, err := proposal.DecodeContent()
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to decode proposal content", err.Error())
	}

	tracker := &domain.ProjectTracker{
		ProposalID: proposal.ID,
		Slug:       fmt.Sprintf("%s-%s", proposal.Slug, uuid.NewString()[:8]),
		Status:     domain.TrackerStatusActive,
		Progress:   0,
		Language:   content.Language,
	}
	if err := tracker.SetPhases(domain.PhasesFromTimeline(content.Timeline)); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode tracker phases", err.Error())
	}
	if err := tracker.SetUpdates([]domain.TrackerUpdate{}); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode tracker updates", err.Error())
	}
	if err := tracker.SetFiles([]domain.TrackerFile{}); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode tracker files", err.Error())
	}

	if err := s.trackerRepo.Create(ctx, tracker); err != nil {
		// A concurrent accept already created it, treat as settled
		if isUniqueViolation(err) {
			s.logger.Warn("Tracker already created by concurrent acceptance",
				zap.String("proposal_id", proposal.ID.String()))
			return nil, nil
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create project tracker", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementTrackerCreated()
	}
	return tracker, nil
}

// sendAcceptanceEmails notifies the agency and the client that a proposal
// was accepted. Delivery is best-effort: failures are logged and counted
// but never fail the acceptance.
func (s *proposalServiceImpl) sendAcceptanceEmails(proposal *domain.Proposal, tracker *domain.ProjectTracker) {
	trackerURL := fmt.Sprintf("%s/%s", strings.TrimRight(s.agency.TrackerBaseURL, "/"), tracker.Slug)

	go func() {
		subject := fmt.Sprintf("Proposal accepted: %s", proposal.Title)
		body := fmt.Sprintf(
			"<p><strong>%s</strong> accepted the proposal <strong>%s</strong>.</p><p>Project tracker: <a href=%q>%s</a></p>",
			proposal.ClientName, proposal.Title, trackerURL, trackerURL)
		if err := s.mailer.Send(s.agency.AdminEmail, subject, body); err != nil {
			s.logger.Error("Failed to send acceptance notification to agency",
				zap.String("proposal_id", proposal.ID.String()),
				zap.Error(err))
			if s.metrics != nil {
				s.metrics.IncrementEmailFailed("agency_acceptance")
			}
			return
		}
		if s.metrics != nil {
			s.metrics.IncrementEmailSent("agency_acceptance")
		}
	}()

	if proposal.ClientEmail == "" {
		return
	}
	go func() {
		subject := fmt.Sprintf("Your project is underway: %s", proposal.Title)
		body := fmt.Sprintf(
			"<p>Hi %s,</p><p>Thanks for accepting our proposal for <strong>%s</strong>. You can follow progress and deliverables here:</p><p><a href=%q>%s</a></p><p>%s</p>",
			proposal.ClientName, proposal.Title, trackerURL, trackerURL, s.agency.Name)
		if err := s.mailer.Send(proposal.ClientEmail, subject, body); err != nil {
			s.logger.Error("Failed to send acceptance confirmation to client",
				zap.String("proposal_id", proposal.ID.String()),
				zap.Error(err))
			if s.metrics != nil {
				s.metrics.IncrementEmailFailed("client_acceptance")
			}
			return
		}
		if s.metrics != nil {
			s.metrics.IncrementEmailSent("client_acceptance")
		}
	}()
}

// toProposalResponse converts domain.Proposal to dto.ProposalResponse
func (s *proposalServiceImpl) toProposalResponse(ctx context.Context, proposal *domain.Proposal) *dto.ProposalResponse {
	resp := &dto.ProposalResponse{
		ID:          proposal.ID,
		Slug:        proposal.Slug,
		Title:       proposal.Title,
		ClientName:  proposal.ClientName,
		ClientEmail: proposal.ClientEmail,
		CustomerID:  proposal.CustomerID,
		Status:      proposal.Status,
		CreatedAt:   proposal.CreatedAt,
		UpdatedAt:   proposal.UpdatedAt,
	}

	content, err := proposal.DecodeContent()
	if err != nil {
		s.logger.Warn("Failed to decode proposal content",
			zap.String("proposal_id", proposal.ID.String()),
			zap.Error(err))
		content = &domain.ProposalContent{}
	}
	resp.Content = content

	if proposal.Status == domain.ProposalStatusAccepted {
		tracker, err := s.trackerRepo.FindByProposalID(ctx, proposal.ID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				s.logger.Warn("Failed to fetch tracker for proposal response",
					zap.String("proposal_id", proposal.ID.String()),
					zap.Error(err))
			}
		} else {
			resp.TrackerSlug = tracker.Slug
		}
	}
	return resp
}

// isUniqueViolation reports whether a storage error is a unique
// constraint failure. Matched on message text since the postgres and
// sqlite drivers surface different error types.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
