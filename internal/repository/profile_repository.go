package repository

import (
	"context"
	"fmt"
	"strings"

	"crewcall/internal/database"
	"crewcall/internal/domain/talent"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	Create(ctx context.Context, p talent.Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (talent.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, u talent.Update) error
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

const profileColumns = `id, user_id, first_name, last_name, address, email, phone,
	experience_years, experience_months, gender, birth_date, height_feet, height_inches,
	facebook_url, instagram_url, twitter_url, linkedin_url, skills, avatar_url, resume_url,
	travel_nationally, travel_duration, notifications_enabled, terms_accepted, is_onboarded,
	created_at, updated_at`

func (r *PostgresProfileRepository) Create(ctx context.Context, p talent.Profile) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO profiles (
			id, user_id, first_name, last_name, address, email, phone,
			experience_years, experience_months, gender, birth_date, height_feet, height_inches,
			facebook_url, instagram_url, twitter_url, linkedin_url, skills, avatar_url, resume_url,
			travel_nationally, travel_duration, notifications_enabled, terms_accepted, is_onboarded
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25
		)`,
		p.ID, p.UserID, p.FirstName, p.LastName, p.Address, p.Email, p.Phone,
		p.ExperienceYears, p.ExperienceMonths, p.Gender, p.BirthDate, p.HeightFeet, p.HeightInches,
		p.FacebookURL, p.InstagramURL, p.TwitterURL, p.LinkedInURL, p.Skills, p.AvatarURL, p.ResumeURL,
		p.TravelNationally, p.TravelDuration, p.NotificationsEnabled, p.TermsAccepted, p.IsOnboarded,
	)
	return err
}

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (talent.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`, userID)

	var p talent.Profile
	err := row.Scan(
		&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.Address, &p.Email, &p.Phone,
		&p.ExperienceYears, &p.ExperienceMonths, &p.Gender, &p.BirthDate, &p.HeightFeet, &p.HeightInches,
		&p.FacebookURL, &p.InstagramURL, &p.TwitterURL, &p.LinkedInURL, &p.Skills, &p.AvatarURL, &p.ResumeURL,
		&p.TravelNationally, &p.TravelDuration, &p.NotificationsEnabled, &p.TermsAccepted, &p.IsOnboarded,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return talent.Profile{}, talent.ErrNotFound
		}
		return talent.Profile{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepository) Update(ctx context.Context, userID uuid.UUID, u talent.Update) error {
	set := []string{"updated_at = now()"}
	args := []any{}
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if u.FirstName != nil {
		add("first_name", *u.FirstName)
	}
	if u.LastName != nil {
		add("last_name", *u.LastName)
	}
	if u.Address != nil {
		add("address", *u.Address)
	}
	if u.Email != nil {
		add("email", *u.Email)
	}
	if u.Phone != nil {
		add("phone", *u.Phone)
	}
	if u.ExperienceYears != nil {
		add("experience_years", *u.ExperienceYears)
	}
	if u.ExperienceMonths != nil {
		add("experience_months", *u.ExperienceMonths)
	}
	if u.Gender != nil {
		add("gender", *u.Gender)
	}
	if u.BirthDate != nil {
		add("birth_date", *u.BirthDate)
	}
	if u.HeightFeet != nil {
		add("height_feet", *u.HeightFeet)
	}
	if u.HeightInches != nil {
		add("height_inches", *u.HeightInches)
	}
	if u.FacebookURL != nil {
		add("facebook_url", *u.FacebookURL)
	}
	if u.InstagramURL != nil {
		add("instagram_url", *u.InstagramURL)
	}
	if u.TwitterURL != nil {
		add("twitter_url", *u.TwitterURL)
	}
	if u.LinkedInURL != nil {
		add("linkedin_url", *u.LinkedInURL)
	}
	if u.Skills != nil {
		add("skills", u.Skills)
	}
	if u.AvatarURL != nil {
		add("avatar_url", *u.AvatarURL)
	}
	if u.ResumeURL != nil {
		add("resume_url", *u.ResumeURL)
	}
	if u.TravelNationally != nil {
		add("travel_nationally", *u.TravelNationally)
	}
	if u.TravelDuration != nil {
		add("travel_duration", *u.TravelDuration)
	}
	if u.NotificationsEnabled != nil {
		add("notifications_enabled", *u.NotificationsEnabled)
	}
	if u.TermsAccepted != nil {
		add("terms_accepted", *u.TermsAccepted)
	}
	if u.IsOnboarded != nil {
		add("is_onboarded", *u.IsOnboarded)
	}

	args = append(args, userID)
	query := fmt.Sprintf(`UPDATE profiles SET %s WHERE user_id = $%d`,
		strings.Join(set, ", "), len(args))

	affected, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if affected == 0 {
		return talent.ErrNotFound
	}
	return nil
}
