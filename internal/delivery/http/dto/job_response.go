package dto

import (
	"time"

	"crewcall/internal/domain/job"

	"github.com/google/uuid"
)

type JobResponse struct {
	ID              uuid.UUID `json:"id"`
	CompanyID       uuid.UUID `json:"company_id"`
	Title           string    `json:"title"`
	Location        string    `json:"location"`
	JobType         string    `json:"job_type"`
	PayRate         string    `json:"pay_rate"`
	StartDate       string    `json:"start_date,omitempty"`
	PostedDate      string    `json:"posted_date,omitempty"`
	ApplicantsCount int       `json:"applicants_count"`
	Status          string    `json:"status"`
	Description     string    `json:"description"`
	Requirements    []string  `json:"requirements"`
}

func NewJobResponse(l job.Listing) JobResponse {
	reqs := l.Requirements
	if reqs == nil {
		reqs = []string{}
	}
	return JobResponse{
		ID:              l.ID,
		CompanyID:       l.CompanyID,
		Title:           l.Title,
		Location:        l.Location,
		JobType:         l.JobType,
		PayRate:         l.PayRate,
		StartDate:       formatDate(l.StartDate),
		PostedDate:      formatDate(l.PostedDate),
		ApplicantsCount: l.ApplicantsCount,
		Status:          string(l.Status),
		Description:     l.Description,
		Requirements:    reqs,
	}
}

func NewJobListResponse(listings []job.Listing) []JobResponse {
	out := make([]JobResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, NewJobResponse(l))
	}
	return out
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
