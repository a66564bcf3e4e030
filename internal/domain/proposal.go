package domain

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProposalStatus represents the lifecycle status of a proposal
type ProposalStatus string

const (
	ProposalStatusDraft       ProposalStatus = "DRAFT"
	ProposalStatusPublished   ProposalStatus = "PUBLISHED"
	ProposalStatusAccepted    ProposalStatus = "ACCEPTED"
	ProposalStatusNegotiation ProposalStatus = "NEGOTIATION"
	ProposalStatusRejected    ProposalStatus = "REJECTED"
)

// Proposal represents a client-facing project quote with structured content
type Proposal struct {
	BaseModel
	Slug        string         `gorm:"type:varchar(255);not null;uniqueIndex:uq_proposals_slug" json:"slug"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	ClientName  string         `gorm:"type:varchar(255);not null" json:"client_name"`
	ClientEmail string         `gorm:"type:varchar(255)" json:"client_email"`
	CustomerID  *uuid.UUID     `gorm:"type:uuid;index:idx_proposals_customer_id" json:"customer_id"`
	Content     datatypes.JSON `gorm:"type:jsonb" json:"content"`
	Status      ProposalStatus `gorm:"type:varchar(50);not null;default:'DRAFT';index:idx_proposals_status" json:"status"`
	Customer    *Customer      `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

// TableName specifies the table name for Proposal
func (Proposal) TableName() string {
	return "proposals"
}

// ScopeItem is a single deliverable line in a proposal's scope of work
type ScopeItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PricingLine is a single line item in a proposal's price breakdown
type PricingLine struct {
	Item   string  `json:"item"`
	Amount float64 `json:"amount"`
}

// TimelinePhase is a single phase of a proposal's delivery timeline
type TimelinePhase struct {
	Phase       string `json:"phase"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

// ProposalContent is the structured content blob stored on a proposal.
// It is persisted as a JSON column and decoded at the service boundary,
// internal logic never touches the raw encoded text.
type ProposalContent struct {
	Vision     string          `json:"vision"`
	Scope      []ScopeItem     `json:"scope"`
	Pricing    []PricingLine   `json:"pricing"`
	Timeline   []TimelinePhase `json:"timeline"`
	TotalPrice float64         `json:"totalPrice"`
	Currency   string          `json:"currency"`
	Language   string          `json:"language"`
}

// DecodeContent deserializes the proposal's stored content blob.
// An empty column decodes to a zero-value content struct.
func (p *Proposal) DecodeContent() (*ProposalContent, error) {
	content := &ProposalContent{}
	if len(p.Content) == 0 {
		return content, nil
	}
	if err := json.Unmarshal(p.Content, content); err != nil {
		return nil, err
	}
	return content, nil
}

// SetContent serializes structured content into the stored column form
func (p *Proposal) SetContent(content *ProposalContent) error {
	data, err := json.Marshal(content)
	if err != nil {
		return err
	}
	p.Content = datatypes.JSON(data)
	return nil
}

// TrackerAction is the side effect a proposal status change requires on
// the associated project tracker
type TrackerAction int

const (
	TrackerActionNoop TrackerAction = iota
	TrackerActionCreate
	TrackerActionDelete
)

// String returns a readable name for logging
func (a TrackerAction) String() string {
	switch a {
	case TrackerActionCreate:
		return "create"
	case TrackerActionDelete:
		return "delete"
	default:
		return "noop"
	}
}

// TrackerTransition decides the tracker side effect for a proposal moving
// into newStatus, given whether a tracker currently exists.
//
// The invariant it maintains: a tracker exists if and only if the proposal
// is currently ACCEPTED. The delete branch fires for every non-ACCEPTED
// status regardless of trackerExists so the cleanup stays unconditional
// and cannot desynchronize on a missed prior state.
func TrackerTransition(trackerExists bool, newStatus ProposalStatus) TrackerAction {
	if newStatus == ProposalStatusAccepted {
		if trackerExists {
			return TrackerActionNoop
		}
		return TrackerActionCreate
	}
	return TrackerActionDelete
}
