package dto

import (
	"crewcall/internal/domain/company"
	"crewcall/internal/usecase"

	"github.com/google/uuid"
)

type CompanyResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Type              string    `json:"type"`
	LogoURL           string    `json:"logo_url"`
	Website           string    `json:"website"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Description       string    `json:"description"`
	Founded           *int      `json:"founded"`
	NumberOfEmployees string    `json:"number_of_employees"`
	Street            string    `json:"street"`
	City              string    `json:"city"`
	State             string    `json:"state"`
	ZipCode           string    `json:"zip_code"`
	Facebook          string    `json:"facebook"`
	Twitter           string    `json:"twitter"`
	Instagram         string    `json:"instagram"`
	LinkedIn          string    `json:"linkedin"`
}

func NewCompanyResponse(p company.Profile) CompanyResponse {
	return CompanyResponse{
		ID:                p.ID,
		Name:              p.Name,
		Type:              p.Type,
		LogoURL:           p.LogoURL,
		Website:           p.Website,
		Email:             p.Email,
		Phone:             p.Phone,
		Description:       p.Description,
		Founded:           p.Founded,
		NumberOfEmployees: p.NumberOfEmployees,
		Street:            p.Street,
		City:              p.City,
		State:             p.State,
		ZipCode:           p.ZipCode,
		Facebook:          p.Facebook,
		Twitter:           p.Twitter,
		Instagram:         p.Instagram,
		LinkedIn:          p.LinkedIn,
	}
}

type CompletionCheckResponse struct {
	Label string `json:"label"`
	Done  bool   `json:"done"`
}

type CompletionResponse struct {
	Score  float64                   `json:"score"`
	Checks []CompletionCheckResponse `json:"checks"`
}

func NewCompletionResponse(c usecase.Completion) CompletionResponse {
	checks := make([]CompletionCheckResponse, 0, len(c.Checks))
	for _, chk := range c.Checks {
		checks = append(checks, CompletionCheckResponse{Label: chk.Label, Done: chk.Done})
	}
	return CompletionResponse{Score: c.Score, Checks: checks}
}
