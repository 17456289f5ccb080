package application

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("application not found")
	ErrInvalidStatus     = errors.New("invalid application status")
	ErrInvalidTransition = errors.New("invalid application status transition")
)

type Status string

const (
	StatusApplied   Status = "Applied"
	StatusReviewing Status = "Reviewing"
	StatusAccepted  Status = "Accepted"
	StatusRejected  Status = "Rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusApplied, StatusReviewing, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Accepted and Rejected are terminal. Repeating the current status is
// allowed so a double review click stays idempotent.
var transitions = map[Status][]Status{
	StatusApplied:   {StatusReviewing, StatusAccepted, StatusRejected},
	StatusReviewing: {StatusAccepted, StatusRejected},
}

func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Application records one talent user applying to one job. At most one
// row exists per (job, applicant) pair.
type Application struct {
	ID        uuid.UUID
	JobID     uuid.UUID
	UserID    uuid.UUID
	Status    Status
	Message   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CompanyQueueItem is an application enriched with the job and applicant
// display fields the company-side review queue renders.
type CompanyQueueItem struct {
	Application

	JobTitle    string
	JobLocation string
	JobType     string

	ApplicantFirstName string
	ApplicantLastName  string
	ApplicantEmail     string
	ApplicantPhone     string
	ApplicantAvatarURL string
	ApplicantSkills    []string
}

// UserItem is an application enriched with the job and company display
// fields the talent-side list renders.
type UserItem struct {
	Application

	JobTitle       string
	JobLocation    string
	JobType        string
	CompanyName    string
	CompanyLogoURL string
}
