package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"agency-console-api/internal/client"
	"agency-console-api/internal/config"
	"agency-console-api/internal/domain"
	"agency-console-api/internal/dto"
	"agency-console-api/internal/response"
)

func testAgencyConfig() config.AgencyConfig {
	return config.AgencyConfig{
		Name:           "Studio Nord",
		AdminEmail:     "hello@studionord.example",
		TrackerBaseURL: "https://studionord.example/track",
	}
}

func acceptedContent() *domain.ProposalContent {
	return &domain.ProposalContent{
		Vision: "Relaunch the storefront",
		Timeline: []domain.TimelinePhase{
			{Phase: "Discovery", Description: "Workshops", Duration: "2 weeks"},
			{Phase: "Build", Description: "Implementation", Duration: "6 weeks"},
		},
		TotalPrice: 24000,
		Currency:   "EUR",
		Language:   "en",
	}
}

func storedProposal(status domain.ProposalStatus) *domain.Proposal {
	p := &domain.Proposal{
		BaseModel:   domain.BaseModel{ID: uuid.New()},
		Slug:        "storefront-relaunch",
		Title:       "Storefront Relaunch",
		ClientName:  "Acme Corp",
		ClientEmail: "cto@acme.example",
		Status:      status,
	}
	if err := p.SetContent(acceptedContent()); err != nil {
		panic(err)
	}
	return p
}

func TestProposalService_UpdateStatus_AcceptCreatesTracker(t *testing.T) {
	proposal := storedProposal(domain.ProposalStatusPublished)

	var createdTracker *domain.ProjectTracker
	trackerRepo := &MockTrackerRepository{
		ExistsByProposalIDFunc: func(ctx context.Context, proposalID uuid.UUID) (bool, error) {
			return false, nil
		},
		CreateFunc: func(ctx context.Context, tracker *domain.ProjectTracker) error {
			createdTracker = tracker
			return nil
		},
		FindByProposalIDFunc: func(ctx context.Context, proposalID uuid.UUID) (*domain.ProjectTracker, error) {
			if createdTracker == nil {
				return nil, gorm.ErrRecordNotFound
			}
			return createdTracker, nil
		},
	}
	proposalRepo := &MockProposalRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
			return proposal, nil
		},
	}
	mailer := &client.MockMailSender{}

	svc := NewProposalService(proposalRepo, trackerRepo, &MockCustomerRepository{}, mailer, testAgencyConfig(), nil, zap.NewNop())

	resp, err := svc.UpdateStatus(context.Background(), proposal.ID, domain.ProposalStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.ProposalStatusAccepted, resp.Status)

	require.NotNil(t, createdTracker, "acceptance must create a tracker")
	assert.Equal(t, proposal.ID, createdTracker.ProposalID)
	assert.Equal(t, domain.TrackerStatusActive, createdTracker.Status)
	assert.Equal(t, 0, createdTracker.Progress)
	assert.NotEqual(t, proposal.Slug, createdTracker.Slug)
	assert.Contains(t, createdTracker.Slug, proposal.Slug)

	phases, err := createdTracker.DecodePhases()
	require.NoError(t, err)
	require.Len(t, phases, 2)
	assert.Equal(t, "Discovery", phases[0].Phase)
	assert.Equal(t, domain.PhaseStatusPending, phases[0].Status)
	assert.Equal(t, domain.PhaseStatusPending, phases[1].Status)

	// Both notification emails go out asynchronously
	require.Eventually(t, func() bool {
		return len(mailer.Sent()) == 2
	}, 2*time.Second, 10*time.Millisecond, "expected agency and client emails")

	recipients := map[string]bool{}
	for _, mail := range mailer.Sent() {
		recipients[mail.To] = true
		assert.Contains(t, mail.Body, createdTracker.Slug)
	}
	assert.True(t, recipients["hello@studionord.example"])
	assert.True(t, recipients["cto@acme.example"])
}

func TestProposalService_UpdateStatus_ReacceptIsIdempotent(t *testing.T) {
	proposal := storedProposal(domain.ProposalStatusAccepted)
	existing := &domain.ProjectTracker{
		BaseModel:  domain.BaseModel{ID: uuid.New()},
		ProposalID: proposal.ID,
		Slug:       "storefront-relaunch-ab12cd34",
		Status:     domain.TrackerStatusActive,
	}

	createCalls := 0
	deleteCalls := 0
	trackerRepo := &MockTrackerRepository{
		ExistsByProposalIDFunc: func(ctx context.Context, proposalID uuid.UUID) (bool, error) {
			return true, nil
		},
		CreateFunc: func(ctx context.Context, tracker *domain.ProjectTracker) error {
			createCalls++
			return nil
		},
		DeleteByProposalIDFunc: func(ctx context.Context, proposalID uuid.UUID) error {
			deleteCalls++
			return nil
		},
		FindByProposalIDFunc: func(ctx context.Context, proposalID uuid.UUID) (*domain.ProjectTracker, error) {
			return existing, nil
		},
	}
	proposalRepo := &MockProposalRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
			return proposal, nil
		},
	}
	mailer := &client.MockMailSender{}

	svc := NewProposalService(proposalRepo, trackerRepo, &MockCustomerRepository{}, mailer, testAgencyConfig(), nil, zap.NewNop())

	resp, err := svc.UpdateStatus(context.Background(), proposal.ID, domain.ProposalStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.ProposalStatusAccepted, resp.Status)
	assert.Equal(t, existing.Slug, resp.TrackerSlug)

	assert.Equal(t, 0, createCalls, "re-accept must not create a second tracker")
	assert.Equal(t, 0, deleteCalls, "re-accept must not touch the existing tracker")

	// No second round of acceptance emails
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, mailer.Sent())
}

func TestProposalService_UpdateStatus_LeavingAcceptedDeletesTracker(t *testing.T) {
	proposal := storedProposal(domain.ProposalStatusAccepted)

	deleteCalls := 0
	trackerRepo := &MockTrackerRepository{
		ExistsByProposalIDFunc: func(ctx context.Context, proposalID uuid.UUID) (bool, error) {
			return true, nil
		},
		DeleteByProposalIDFunc: func(ctx context.Context, proposalID uuid.UUID) error {
			deleteCalls++
			return nil
		},
	}
	proposalRepo := &MockProposalRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
			return proposal, nil
		},
	}

	svc := NewProposalService(proposalRepo, trackerRepo, &MockCustomerRepository{}, &client.MockMailSender{}, testAgencyConfig(), nil, zap.NewNop())

	resp, err := svc.UpdateStatus(context.Background(), proposal.ID, domain.ProposalStatusNegotiation)
	require.NoError(t, err)
	assert.Equal(t, domain.ProposalStatusNegotiation, resp.Status)
	assert.Equal(t, 1, deleteCalls)
}

func TestProposalService_UpdateStatus_ReacceptRebuildsFromCurrentContent(t *testing.T) {
	// Proposal was accepted, renegotiated with a changed timeline, and is
	// accepted again: the new tracker reflects the edited timeline.
	proposal := storedProposal(domain.ProposalStatusNegotiation)
	content := acceptedContent()
	content.Timeline = append(content.Timeline, domain.TimelinePhase{
		Phase: "Launch", Description: "Go live", Duration: "1 week",
	})
	require.NoError(t, proposal.SetContent(content))

	var createdTracker *domain.ProjectTracker
	trackerRepo := &MockTrackerRepository{
		ExistsByProposalIDFunc: func(ctx context.Context, proposalID uuid.UUID) (bool, error) {
			return false, nil
		},
		CreateFunc: func(ctx context.Context, tracker *domain.ProjectTracker) error {
			createdTracker = tracker
			return nil
		},
		FindByProposalIDFunc: func(ctx context.Context, proposalID uuid.UUID) (*domain.ProjectTracker, error) {
			return createdTracker, nil
		},
	}
	proposalRepo := &MockProposalRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
			return proposal, nil
		},
	}

	svc := NewProposalService(proposalRepo, trackerRepo, &MockCustomerRepository{}, &client.MockMailSender{}, testAgencyConfig(), nil, zap.NewNop())

	_, err := svc.UpdateStatus(context.Background(), proposal.ID, domain.ProposalStatusAccepted)
	require.NoError(t, err)

	require.NotNil(t, createdTracker)
	phases, err := createdTracker.DecodePhases()
	require.NoError(t, err)
	require.Len(t, phases, 3)
	assert.Equal(t, "Launch", phases[2].Phase)
	assert.Equal(t, domain.PhaseStatusPending, phases[2].Status)
}

func TestProposalService_UpdateStatus_RollsBackTrackerOnSaveFailure(t *testing.T) {
	proposal := storedProposal(domain.ProposalStatusPublished)

	deleteCalls := 0
	trackerRepo := &MockTrackerRepository{
		ExistsByProposalIDFunc: func(ctx context.Context, proposalID uuid.UUID) (bool, error) {
			return false, nil
		},
		DeleteByProposalIDFunc: func(ctx context.Context, proposalID uuid.UUID) error {
			deleteCalls++
			return nil
		},
	}
	proposalRepo := &MockProposalRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
			return proposal, nil
		},
		UpdateFunc: func(ctx context.Context, p *domain.Proposal) error {
			return gorm.ErrInvalidTransaction
		},
	}
	mailer := &client.MockMailSender{}

	svc := NewProposalService(proposalRepo, trackerRepo, &MockCustomerRepository{}, mailer, testAgencyConfig(), nil, zap.NewNop())

	_, err := svc.UpdateStatus(context.Background(), proposal.ID, domain.ProposalStatusAccepted)
	require.Error(t, err)
	assert.Equal(t, 1, deleteCalls, "created tracker must be rolled back")

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, mailer.Sent(), "no emails on failed acceptance")
}

func TestProposalService_UpdateStatus_NotFound(t *testing.T) {
	svc := NewProposalService(&MockProposalRepository{}, &MockTrackerRepository{}, &MockCustomerRepository{}, &client.MockMailSender{}, testAgencyConfig(), nil, zap.NewNop())

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), domain.ProposalStatusAccepted)
	require.Error(t, err)

	var appErr *response.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, response.ErrCodeNotFound, appErr.Code)
}

func TestProposalService_CreateProposal_DuplicateSlug(t *testing.T) {
	existing := storedProposal(domain.ProposalStatusDraft)
	proposalRepo := &MockProposalRepository{
		FindBySlugFunc: func(ctx context.Context, slug string) (*domain.Proposal, error) {
			return existing, nil
		},
	}

	svc := NewProposalService(proposalRepo, &MockTrackerRepository{}, &MockCustomerRepository{}, &client.MockMailSender{}, testAgencyConfig(), nil, zap.NewNop())

	_, err := svc.CreateProposal(context.Background(), &dto.CreateProposalRequest{
		Slug:       existing.Slug,
		Title:      "Another",
		ClientName: "Acme Corp",
	})
	require.Error(t, err)

	var appErr *response.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, response.ErrCodeAlreadyExists, appErr.Code)
}

func TestProposalService_GetProposalBySlug_HidesDrafts(t *testing.T) {
	draft := storedProposal(domain.ProposalStatusDraft)
	proposalRepo := &MockProposalRepository{
		FindBySlugFunc: func(ctx context.Context, slug string) (*domain.Proposal, error) {
			return draft, nil
		},
	}

	svc := NewProposalService(proposalRepo, &MockTrackerRepository{}, &MockCustomerRepository{}, &client.MockMailSender{}, testAgencyConfig(), nil, zap.NewNop())

	_, err := svc.GetProposalBySlug(context.Background(), draft.Slug)
	require.Error(t, err)

	var appErr *response.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, response.ErrCodeNotFound, appErr.Code)
}

func TestProposalService_UpdateStatus_NoClientEmailSkipsClientMail(t *testing.T) {
	proposal := storedProposal(domain.ProposalStatusPublished)
	proposal.ClientEmail = ""

	trackerRepo := &MockTrackerRepository{
		ExistsByProposalIDFunc: func(ctx context.Context, proposalID uuid.UUID) (bool, error) {
			return false, nil
		},
	}
	proposalRepo := &MockProposalRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
			return proposal, nil
		},
	}
	mailer := &client.MockMailSender{}

	svc := NewProposalService(proposalRepo, trackerRepo, &MockCustomerRepository{}, mailer, testAgencyConfig(), nil, zap.NewNop())

	_, err := svc.UpdateStatus(context.Background(), proposal.ID, domain.ProposalStatusAccepted)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(mailer.Sent()) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "hello@studionord.example", mailer.Sent()[0].To)
}
