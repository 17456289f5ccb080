package repository

import (
	"context"
	"fmt"
	"strings"

	"crewcall/internal/database"
	"crewcall/internal/domain/company"

	"github.com/google/uuid"
)

type CompanyRepository interface {
	Create(ctx context.Context, p company.Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (company.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (company.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, u company.Update) error
}

type PostgresCompanyRepository struct {
	db database.DB
}

func NewPostgresCompanyRepository(db database.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

const companyColumns = `id, company_id, name, type, logo_url, website, email, phone, description,
	founded, number_of_employees, street, city, state, zip_code,
	facebook, twitter, instagram, linkedin, created_at, updated_at`

func (r *PostgresCompanyRepository) Create(ctx context.Context, p company.Profile) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO companies (
			id, company_id, name, type, logo_url, website, email, phone, description,
			founded, number_of_employees, street, city, state, zip_code,
			facebook, twitter, instagram, linkedin
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		p.ID, p.OwnerUserID, p.Name, p.Type, p.LogoURL, p.Website, p.Email, p.Phone, p.Description,
		p.Founded, p.NumberOfEmployees, p.Street, p.City, p.State, p.ZipCode,
		p.Facebook, p.Twitter, p.Instagram, p.LinkedIn,
	)
	return err
}

func (r *PostgresCompanyRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (company.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE company_id = $1`, userID)
	return scanCompany(row)
}

func (r *PostgresCompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (company.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
	return scanCompany(row)
}

func (r *PostgresCompanyRepository) Update(ctx context.Context, userID uuid.UUID, u company.Update) error {
	set := []string{"updated_at = now()"}
	args := []any{}
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if u.Name != nil {
		add("name", *u.Name)
	}
	if u.Type != nil {
		add("type", *u.Type)
	}
	if u.LogoURL != nil {
		add("logo_url", *u.LogoURL)
	}
	if u.Website != nil {
		add("website", *u.Website)
	}
	if u.Email != nil {
		add("email", *u.Email)
	}
	if u.Phone != nil {
		add("phone", *u.Phone)
	}
	if u.Description != nil {
		add("description", *u.Description)
	}
	if u.Founded != nil {
		add("founded", *u.Founded)
	}
	if u.NumberOfEmployees != nil {
		add("number_of_employees", *u.NumberOfEmployees)
	}
	if u.Street != nil {
		add("street", *u.Street)
	}
	if u.City != nil {
		add("city", *u.City)
	}
	if u.State != nil {
		add("state", *u.State)
	}
	if u.ZipCode != nil {
		add("zip_code", *u.ZipCode)
	}
	if u.Facebook != nil {
		add("facebook", *u.Facebook)
	}
	if u.Twitter != nil {
		add("twitter", *u.Twitter)
	}
	if u.Instagram != nil {
		add("instagram", *u.Instagram)
	}
	if u.LinkedIn != nil {
		add("linkedin", *u.LinkedIn)
	}

	args = append(args, userID)
	query := fmt.Sprintf(`UPDATE companies SET %s WHERE company_id = $%d`,
		strings.Join(set, ", "), len(args))

	affected, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if affected == 0 {
		return company.ErrNotFound
	}
	return nil
}

func scanCompany(row database.Row) (company.Profile, error) {
	var p company.Profile
	err := row.Scan(
		&p.ID, &p.OwnerUserID, &p.Name, &p.Type, &p.LogoURL, &p.Website, &p.Email, &p.Phone, &p.Description,
		&p.Founded, &p.NumberOfEmployees, &p.Street, &p.City, &p.State, &p.ZipCode,
		&p.Facebook, &p.Twitter, &p.Instagram, &p.LinkedIn, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return company.Profile{}, company.ErrNotFound
		}
		return company.Profile{}, err
	}
	return p, nil
}
