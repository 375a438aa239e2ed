// Package activity models a relief-activity proposal and the business rules
// it must satisfy before it reaches moderation.
package activity

import (
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/relief-activity-service/internal/domain/calendar"
)

// Request is a fully parsed activity proposal. Pointer and nil-slice fields
// distinguish "absent" from "present but empty"; the parsing layer guarantees
// that every present value is well-typed. A Request is read-only for the
// duration of validation.
type Request struct {
	Name                       *string
	Address                    *string
	Location                   []float64
	EstimatedStartDate         *calendar.Date
	EstimatedEndDate           *calendar.Date
	DeliveringDate             *calendar.Date
	Description                *string
	Images                     []*FileRef
	ActivityTypeIDs            []uuid.UUID
	BranchIDs                  []uuid.UUID
	TargetProcessRequests      []TargetProcess
	AidItemForActivityRequests []AidItem
}

// FileRef is the metadata of an uploaded image. File bytes are never
// inspected.
type FileRef struct {
	FileName string
	Length   int64
}

// TargetProcess is a requested quantity of a catalog item.
type TargetProcess struct {
	ItemID   uuid.UUID
	Quantity int
}

// AidItem is a quantity of an organization's aid item pledged to the activity.
type AidItem struct {
	AidItemID uuid.UUID
	Quantity  int
}

// Submission is the moderation queue's acknowledgement of an accepted
// proposal.
type Submission struct {
	ID          uuid.UUID
	Status      SubmissionStatus
	SubmittedAt time.Time
}

// SubmissionStatus is the moderation state reported for a submission.
type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "pending"
	StatusApproved SubmissionStatus = "approved"
	StatusRejected SubmissionStatus = "rejected"
)

// IsValid returns true if the status is one of the defined constants.
func (s SubmissionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s SubmissionStatus) String() string {
	return string(s)
}
