package dto

import (
	"time"

	"crewcall/internal/domain/application"

	"github.com/google/uuid"
)

type ApplicationResponse struct {
	ID        uuid.UUID `json:"id"`
	JobID     uuid.UUID `json:"job_id"`
	UserID    uuid.UUID `json:"user_id"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:        a.ID,
		JobID:     a.JobID,
		UserID:    a.UserID,
		Status:    string(a.Status),
		Message:   a.Message,
		CreatedAt: formatTimestamp(a.CreatedAt),
		UpdatedAt: formatTimestamp(a.UpdatedAt),
	}
}

// CompanyQueueResponse is one row of the company-side review queue.
type CompanyQueueResponse struct {
	ApplicationResponse

	JobTitle    string `json:"job_title"`
	JobLocation string `json:"job_location"`
	JobType     string `json:"job_type"`

	Applicant ApplicantResponse `json:"applicant"`
}

type ApplicantResponse struct {
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	AvatarURL string   `json:"avatar_url"`
	Skills    []string `json:"skills"`
}

func NewCompanyQueueResponse(items []application.CompanyQueueItem) []CompanyQueueResponse {
	out := make([]CompanyQueueResponse, 0, len(items))
	for _, it := range items {
		skills := it.ApplicantSkills
		if skills == nil {
			skills = []string{}
		}
		out = append(out, CompanyQueueResponse{
			ApplicationResponse: NewApplicationResponse(it.Application),
			JobTitle:            it.JobTitle,
			JobLocation:         it.JobLocation,
			JobType:             it.JobType,
			Applicant: ApplicantResponse{
				FirstName: it.ApplicantFirstName,
				LastName:  it.ApplicantLastName,
				Email:     it.ApplicantEmail,
				Phone:     it.ApplicantPhone,
				AvatarURL: it.ApplicantAvatarURL,
				Skills:    skills,
			},
		})
	}
	return out
}

// UserApplicationResponse is one row of the talent-side application list.
type UserApplicationResponse struct {
	ApplicationResponse

	JobTitle       string `json:"job_title"`
	JobLocation    string `json:"job_location"`
	JobType        string `json:"job_type"`
	CompanyName    string `json:"company_name"`
	CompanyLogoURL string `json:"company_logo_url"`
}

func NewUserApplicationResponse(items []application.UserItem) []UserApplicationResponse {
	out := make([]UserApplicationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, UserApplicationResponse{
			ApplicationResponse: NewApplicationResponse(it.Application),
			JobTitle:            it.JobTitle,
			JobLocation:         it.JobLocation,
			JobType:             it.JobType,
			CompanyName:         it.CompanyName,
			CompanyLogoURL:      it.CompanyLogoURL,
		})
	}
	return out
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
