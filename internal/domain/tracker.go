package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TrackerStatus represents the overall status of a project tracker
type TrackerStatus string

const (
	TrackerStatusActive    TrackerStatus = "ACTIVE"
	TrackerStatusCompleted TrackerStatus = "COMPLETED"
)

// PhaseStatus represents the completion status of a single tracker phase
type PhaseStatus string

const (
	PhaseStatusPending    PhaseStatus = "PENDING"
	PhaseStatusInProgress PhaseStatus = "IN_PROGRESS"
	PhaseStatusCompleted  PhaseStatus = "COMPLETED"
)

// ProjectTracker is the operational record derived from an ACCEPTED
// proposal. It is disposable: deleted when acceptance is reverted and
// rebuilt from the proposal's current content on re-acceptance.
// The unique index on ProposalID enforces one tracker per proposal at the
// storage level, which keeps the invariant correct under concurrent
// accepts.
type ProjectTracker struct {
	BaseModel
	ProposalID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_project_trackers_proposal_id" json:"proposal_id"`
	Slug          string         `gorm:"type:varchar(255);not null;uniqueIndex:uq_project_trackers_slug" json:"slug"`
	Status        TrackerStatus  `gorm:"type:varchar(50);not null;default:'ACTIVE'" json:"status"`
	Progress      int            `gorm:"not null;default:0" json:"progress"`
	Phases        datatypes.JSON `gorm:"type:jsonb" json:"phases"`
	Updates       datatypes.JSON `gorm:"type:jsonb" json:"updates"`
	Files         datatypes.JSON `gorm:"type:jsonb" json:"files"`
	VaultPassword string         `gorm:"type:varchar(255)" json:"-"`
	Language      string         `gorm:"type:varchar(10)" json:"language"`
	Proposal      Proposal       `gorm:"foreignKey:ProposalID;constraint:OnDelete:CASCADE" json:"proposal,omitempty"`
}

// TableName specifies the table name for ProjectTracker
func (ProjectTracker) TableName() string {
	return "project_trackers"
}

// TrackerPhase is one timeline entry projected from a proposal's content
// with an independent completion status
type TrackerPhase struct {
	Phase       string      `json:"phase"`
	Description string      `json:"description"`
	Duration    string      `json:"duration"`
	Status      PhaseStatus `json:"status"`
}

// TrackerUpdate is a free-form progress note posted by an operator
type TrackerUpdate struct {
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	PostedAt time.Time `json:"postedAt"`
}

// TrackerFile is a reference to a deliverable stored in object storage
type TrackerFile struct {
	Name       string    `json:"name"`
	FileKey    string    `json:"fileKey"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// IsVaultProtected reports whether the tracker's file list is gated
// behind a shared-secret password
func (t *ProjectTracker) IsVaultProtected() bool {
	return t.VaultPassword != ""
}

// DecodePhases deserializes the stored phase list
func (t *ProjectTracker) DecodePhases() ([]TrackerPhase, error) {
	return decodeJSONList[TrackerPhase](t.Phases)
}

// DecodeUpdates deserializes the stored update list
func (t *ProjectTracker) DecodeUpdates() ([]TrackerUpdate, error) {
	return decodeJSONList[TrackerUpdate](t.Updates)
}

// DecodeFiles deserializes the stored file list
func (t *ProjectTracker) DecodeFiles() ([]TrackerFile, error) {
	return decodeJSONList[TrackerFile](t.Files)
}

// SetPhases serializes the phase list into the stored column form
func (t *ProjectTracker) SetPhases(phases []TrackerPhase) error {
	data, err := json.Marshal(phases)
	if err != nil {
		return err
	}
	t.Phases = datatypes.JSON(data)
	return nil
}

// SetUpdates serializes the update list into the stored column form
func (t *ProjectTracker) SetUpdates(updates []TrackerUpdate) error {
	data, err := json.Marshal(updates)
	if err != nil {
		return err
	}
	t.Updates = datatypes.JSON(data)
	return nil
}

// SetFiles serializes the file list into the stored column form
func (t *ProjectTracker) SetFiles(files []TrackerFile) error {
	data, err := json.Marshal(files)
	if err != nil {
		return err
	}
	t.Files = datatypes.JSON(data)
	return nil
}

// PhasesFromTimeline projects a proposal timeline into tracker phases,
// all starting as PENDING
func PhasesFromTimeline(timeline []TimelinePhase) []TrackerPhase {
	phases := make([]TrackerPhase, 0, len(timeline))
	for _, entry := range timeline {
		phases = append(phases, TrackerPhase{
			Phase:       entry.Phase,
			Description: entry.Description,
			Duration:    entry.Duration,
			Status:      PhaseStatusPending,
		})
	}
	return phases
}

func decodeJSONList[T any](raw datatypes.JSON) ([]T, error) {
	list := []T{}
	if len(raw) == 0 {
		return list, nil
	}
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, err
	}
	return list, nil
}
