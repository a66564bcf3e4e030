package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"agency-console-api/internal/client"
	"agency-console-api/internal/domain"
)

// trackerStore is a minimal in-memory stand-in for the tracker table,
// including the one-tracker-per-proposal unique constraint
type trackerStore struct {
	trackers map[uuid.UUID]*domain.ProjectTracker
}

func newTrackerStore() *trackerStore {
	return &trackerStore{trackers: make(map[uuid.UUID]*domain.ProjectTracker)}
}

func (ts *trackerStore) repo() *MockTrackerRepository {
	return &MockTrackerRepository{
		ExistsByProposalIDFunc: func(ctx context.Context, proposalID uuid.UUID) (bool, error) {
			_, ok := ts.trackers[proposalID]
			return ok, nil
		},
		CreateFunc: func(ctx context.Context, tracker *domain.ProjectTracker) error {
			if _, ok := ts.trackers[tracker.ProposalID]; ok {
				return gorm.ErrDuplicatedKey
			}
			tracker.ID = uuid.New()
			ts.trackers[tracker.ProposalID] = tracker
			return nil
		},
		DeleteByProposalIDFunc: func(ctx context.Context, proposalID uuid.UUID) error {
			delete(ts.trackers, proposalID)
			return nil
		},
		FindByProposalIDFunc: func(ctx context.Context, proposalID uuid.UUID) (*domain.ProjectTracker, error) {
			tracker, ok := ts.trackers[proposalID]
			if !ok {
				return nil, gorm.ErrRecordNotFound
			}
			return tracker, nil
		},
	}
}

var allStatuses = []domain.ProposalStatus{
	domain.ProposalStatusDraft,
	domain.ProposalStatusPublished,
	domain.ProposalStatusAccepted,
	domain.ProposalStatusNegotiation,
	domain.ProposalStatusRejected,
}

// For any sequence of status changes, a tracker exists exactly when the
// proposal is currently ACCEPTED, and re-acceptance after leaving
// ACCEPTED produces a fresh tracker rather than resurrecting the old one
func TestProperty_TrackerExistsExactlyWhenAccepted(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("tracker existence tracks ACCEPTED status through any transition sequence", prop.ForAll(
		func(statusIndices []int) bool {
			proposal := storedProposal(domain.ProposalStatusDraft)
			store := newTrackerStore()

			proposalRepo := &MockProposalRepository{
				FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
					return proposal, nil
				},
			}

			svc := NewProposalService(proposalRepo, store.repo(), &MockCustomerRepository{},
				&client.MockMailSender{}, testAgencyConfig(), nil, zap.NewNop())

			var previousTrackerID uuid.UUID
			wasAccepted := false

			for _, idx := range statusIndices {
				newStatus := allStatuses[idx%len(allStatuses)]

				if _, err := svc.UpdateStatus(context.Background(), proposal.ID, newStatus); err != nil {
					t.Logf("UpdateStatus(%s) failed: %v", newStatus, err)
					return false
				}

				tracker, exists := store.trackers[proposal.ID]
				shouldExist := newStatus == domain.ProposalStatusAccepted
				if exists != shouldExist {
					t.Logf("after %s: tracker exists=%v, want %v", newStatus, exists, shouldExist)
					return false
				}

				if exists {
					// A fresh acceptance after leaving ACCEPTED must not
					// reuse the previous tracker
					if !wasAccepted && previousTrackerID != uuid.Nil && tracker.ID == previousTrackerID {
						t.Logf("re-acceptance reused the previous tracker %s", tracker.ID)
						return false
					}
					previousTrackerID = tracker.ID
				}
				wasAccepted = shouldExist
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, len(allStatuses)-1)),
	))

	properties.TestingRun(t)
}

// Repeating ACCEPTED any number of times creates exactly one tracker and
// never recreates it
func TestProperty_RepeatedAcceptanceIsIdempotent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("N consecutive accepts create exactly one tracker", prop.ForAll(
		func(repeats int) bool {
			proposal := storedProposal(domain.ProposalStatusPublished)
			store := newTrackerStore()
			createCalls := 0

			repo := store.repo()
			inner := repo.CreateFunc
			repo.CreateFunc = func(ctx context.Context, tracker *domain.ProjectTracker) error {
				createCalls++
				return inner(ctx, tracker)
			}

			proposalRepo := &MockProposalRepository{
				FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
					return proposal, nil
				},
			}

			svc := NewProposalService(proposalRepo, repo, &MockCustomerRepository{},
				&client.MockMailSender{}, testAgencyConfig(), nil, zap.NewNop())

			var firstID uuid.UUID
			for i := 0; i < repeats; i++ {
				if _, err := svc.UpdateStatus(context.Background(), proposal.ID, domain.ProposalStatusAccepted); err != nil {
					t.Logf("accept #%d failed: %v", i+1, err)
					return false
				}
				tracker := store.trackers[proposal.ID]
				if tracker == nil {
					t.Logf("no tracker after accept #%d", i+1)
					return false
				}
				if firstID == uuid.Nil {
					firstID = tracker.ID
				} else if tracker.ID != firstID {
					t.Logf("tracker replaced on accept #%d", i+1)
					return false
				}
			}

			return createCalls == 1
		},
		gen.IntRange(1, 10),
	))

	properties.TestingRun(t)
}
