package job

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("job not found")
	ErrInvalidStatus     = errors.New("invalid job status")
	ErrInvalidTransition = errors.New("invalid job status transition")
)

type Status string

const (
	StatusDraft  Status = "Draft"
	StatusActive Status = "Active"
	StatusClosed Status = "Closed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusClosed:
		return true
	}
	return false
}

// Legal status moves. Writing the current status back is always allowed
// so unrelated partial updates don't trip the guard.
var transitions = map[Status][]Status{
	StatusDraft:  {StatusActive},
	StatusActive: {StatusClosed},
	StatusClosed: {StatusActive},
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

// Listing is a job posting owned by a company. ApplicantsCount is derived
// at read time from job_applications; the stored column is display-only
// and never written.
type Listing struct {
	ID              uuid.UUID
	CompanyID       uuid.UUID
	Title           string
	Location        string
	JobType         string
	PayRate         string
	StartDate       *time.Time
	PostedDate      *time.Time
	ApplicantsCount int
	Status          Status
	Description     string
	Requirements    []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Update is a partial-field patch. A nil Requirements slice leaves the
// stored list untouched; an empty non-nil slice clears it.
type Update struct {
	Title        *string
	Location     *string
	JobType      *string
	PayRate      *string
	StartDate    *time.Time
	Status       *Status
	Description  *string
	Requirements []string
}

func (u Update) Empty() bool {
	return u.Title == nil && u.Location == nil && u.JobType == nil &&
		u.PayRate == nil && u.StartDate == nil && u.Status == nil &&
		u.Description == nil && u.Requirements == nil
}
