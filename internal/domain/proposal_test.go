package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerTransition(t *testing.T) {
	tests := []struct {
		name          string
		trackerExists bool
		newStatus     ProposalStatus
		want          TrackerAction
	}{
		{"accept without tracker creates", false, ProposalStatusAccepted, TrackerActionCreate},
		{"accept with tracker is idempotent", true, ProposalStatusAccepted, TrackerActionNoop},
		{"reject with tracker deletes", true, ProposalStatusRejected, TrackerActionDelete},
		{"reject without tracker still deletes", false, ProposalStatusRejected, TrackerActionDelete},
		{"draft with tracker deletes", true, ProposalStatusDraft, TrackerActionDelete},
		{"published without tracker deletes", false, ProposalStatusPublished, TrackerActionDelete},
		{"negotiation with tracker deletes", true, ProposalStatusNegotiation, TrackerActionDelete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrackerTransition(tt.trackerExists, tt.newStatus)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProposalContentRoundTrip(t *testing.T) {
	p := &Proposal{}

	content := &ProposalContent{
		Vision: "Relaunch the brand site",
		Scope: []ScopeItem{
			{Title: "Design", Description: "Full redesign"},
		},
		Pricing: []PricingLine{
			{Item: "Design", Amount: 3000},
			{Item: "Development", Amount: 2000},
		},
		Timeline: []TimelinePhase{
			{Phase: "Discovery", Description: "Stakeholder interviews", Duration: "1 week"},
		},
		TotalPrice: 5000,
		Currency:   "USD",
		Language:   "en",
	}

	require.NoError(t, p.SetContent(content))

	decoded, err := p.DecodeContent()
	require.NoError(t, err)
	assert.Equal(t, content, decoded)
}

func TestProposalDecodeContent_EmptyColumn(t *testing.T) {
	p := &Proposal{}

	content, err := p.DecodeContent()
	require.NoError(t, err)
	assert.Empty(t, content.Timeline)
	assert.Zero(t, content.TotalPrice)
}

func TestPhasesFromTimeline(t *testing.T) {
	timeline := []TimelinePhase{
		{Phase: "Discovery", Description: "Interviews", Duration: "1 week"},
		{Phase: "Build", Description: "Implementation", Duration: "4 weeks"},
	}

	phases := PhasesFromTimeline(timeline)

	require.Len(t, phases, 2)
	for i, phase := range phases {
		assert.Equal(t, timeline[i].Phase, phase.Phase)
		assert.Equal(t, timeline[i].Description, phase.Description)
		assert.Equal(t, timeline[i].Duration, phase.Duration)
		assert.Equal(t, PhaseStatusPending, phase.Status)
	}
}

func TestPhasesFromTimeline_Empty(t *testing.T) {
	phases := PhasesFromTimeline(nil)
	assert.NotNil(t, phases)
	assert.Len(t, phases, 0)
}

func TestTrackerListRoundTrips(t *testing.T) {
	tracker := &ProjectTracker{}

	phases := []TrackerPhase{{Phase: "Discovery", Duration: "1 week", Status: PhaseStatusPending}}
	require.NoError(t, tracker.SetPhases(phases))
	gotPhases, err := tracker.DecodePhases()
	require.NoError(t, err)
	assert.Equal(t, phases, gotPhases)

	// unset columns decode to empty lists, not nil errors
	files, err := tracker.DecodeFiles()
	require.NoError(t, err)
	assert.Empty(t, files)

	updates, err := tracker.DecodeUpdates()
	require.NoError(t, err)
	assert.Empty(t, updates)
}

func TestTrackerIsVaultProtected(t *testing.T) {
	assert.False(t, (&ProjectTracker{}).IsVaultProtected())
	assert.True(t, (&ProjectTracker{VaultPassword: "secret"}).IsVaultProtected())
}
