package talent

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("talent profile not found")

// Profile is the staff-side profile. Skills hold canonical role names from
// the skill taxonomy; writes are validated against it.
type Profile struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	FirstName            string
	LastName             string
	Address              string
	Email                string
	Phone                string
	ExperienceYears      int
	ExperienceMonths     int
	Gender               string
	BirthDate            *time.Time
	HeightFeet           int
	HeightInches         int
	FacebookURL          string
	InstagramURL         string
	TwitterURL           string
	LinkedInURL          string
	Skills               []string
	AvatarURL            string
	ResumeURL            string
	TravelNationally     bool
	TravelDuration       string
	NotificationsEnabled bool
	TermsAccepted        bool
	IsOnboarded          bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Update is a partial-field patch; a nil Skills slice leaves the stored
// set untouched.
type Update struct {
	FirstName            *string
	LastName             *string
	Address              *string
	Email                *string
	Phone                *string
	ExperienceYears      *int
	ExperienceMonths     *int
	Gender               *string
	BirthDate            *time.Time
	HeightFeet           *int
	HeightInches         *int
	FacebookURL          *string
	InstagramURL         *string
	TwitterURL           *string
	LinkedInURL          *string
	Skills               []string
	AvatarURL            *string
	ResumeURL            *string
	TravelNationally     *bool
	TravelDuration       *string
	NotificationsEnabled *bool
	TermsAccepted        *bool
	IsOnboarded          *bool
}

func (u Update) Empty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Address == nil &&
		u.Email == nil && u.Phone == nil && u.ExperienceYears == nil &&
		u.ExperienceMonths == nil && u.Gender == nil && u.BirthDate == nil &&
		u.HeightFeet == nil && u.HeightInches == nil &&
		u.FacebookURL == nil && u.InstagramURL == nil &&
		u.TwitterURL == nil && u.LinkedInURL == nil && u.Skills == nil &&
		u.AvatarURL == nil && u.ResumeURL == nil &&
		u.TravelNationally == nil && u.TravelDuration == nil &&
		u.NotificationsEnabled == nil && u.TermsAccepted == nil &&
		u.IsOnboarded == nil
}
