package dto

import (
	"time"

	"crewcall/internal/domain/talent"

	"github.com/google/uuid"
)

type TalentProfileResponse struct {
	ID                   uuid.UUID `json:"id"`
	FirstName            string    `json:"first_name"`
	LastName             string    `json:"last_name"`
	Address              string    `json:"address"`
	Email                string    `json:"email"`
	Phone                string    `json:"phone"`
	ExperienceYears      int       `json:"experience_years"`
	ExperienceMonths     int       `json:"experience_months"`
	Gender               string    `json:"gender"`
	BirthDate            string    `json:"birth_date,omitempty"`
	HeightFeet           int       `json:"height_feet"`
	HeightInches         int       `json:"height_inches"`
	FacebookURL          string    `json:"facebook_url"`
	InstagramURL         string    `json:"instagram_url"`
	TwitterURL           string    `json:"twitter_url"`
	LinkedInURL          string    `json:"linkedin_url"`
	Skills               []string  `json:"skills"`
	AvatarURL            string    `json:"avatar_url"`
	ResumeURL            string    `json:"resume_url"`
	TravelNationally     bool      `json:"travel_nationally"`
	TravelDuration       string    `json:"travel_duration"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	TermsAccepted        bool      `json:"terms_accepted"`
	IsOnboarded          bool      `json:"is_onboarded"`
}

func NewTalentProfileResponse(p talent.Profile) TalentProfileResponse {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	birth := ""
	if p.BirthDate != nil && !p.BirthDate.IsZero() {
		birth = p.BirthDate.UTC().Format(time.DateOnly)
	}
	return TalentProfileResponse{
		ID:                   p.ID,
		FirstName:            p.FirstName,
		LastName:             p.LastName,
		Address:              p.Address,
		Email:                p.Email,
		Phone:                p.Phone,
		ExperienceYears:      p.ExperienceYears,
		ExperienceMonths:     p.ExperienceMonths,
		Gender:               p.Gender,
		BirthDate:            birth,
		HeightFeet:           p.HeightFeet,
		HeightInches:         p.HeightInches,
		FacebookURL:          p.FacebookURL,
		InstagramURL:         p.InstagramURL,
		TwitterURL:           p.TwitterURL,
		LinkedInURL:          p.LinkedInURL,
		Skills:               skills,
		AvatarURL:            p.AvatarURL,
		ResumeURL:            p.ResumeURL,
		TravelNationally:     p.TravelNationally,
		TravelDuration:       p.TravelDuration,
		NotificationsEnabled: p.NotificationsEnabled,
		TermsAccepted:        p.TermsAccepted,
		IsOnboarded:          p.IsOnboarded,
	}
}
