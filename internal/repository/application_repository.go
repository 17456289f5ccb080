package repository

import (
	"context"

	"crewcall/internal/database"
	"crewcall/internal/domain/application"

	"github.com/google/uuid"
)

type ApplicationRepository interface {
	Create(ctx context.Context, a application.Application) error
	GetByID(ctx context.Context, id uuid.UUID) (application.Application, error)
	FindByJobAndUser(ctx context.Context, jobID, userID uuid.UUID) (application.Application, error)
	ListForCompany(ctx context.Context, companyID uuid.UUID) ([]application.CompanyQueueItem, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]application.UserItem, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) error
	OwnerUserID(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

const applicationColumns = `a.id, a.job_id, a.user_id, a.status, a.message, a.created_at, a.updated_at`

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO job_applications (id, job_id, user_id, status, message) VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.JobID, a.UserID, a.Status, a.Message,
	)
	return err
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM job_applications a WHERE a.id = $1`, id)
	return scanApplication(row)
}

func (r *PostgresApplicationRepository) FindByJobAndUser(ctx context.Context, jobID, userID uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM job_applications a WHERE a.job_id = $1 AND a.user_id = $2`,
		jobID, userID)
	return scanApplication(row)
}

// ListForCompany joins applications to their job and the applicant profile
// in one query, so the result is a consistent snapshot. A company with no
// jobs simply matches no rows.
func (r *PostgresApplicationRepository) ListForCompany(ctx context.Context, companyID uuid.UUID) ([]application.CompanyQueueItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+applicationColumns+`,
			j.title, j.location, j.job_type,
			COALESCE(p.first_name, ''), COALESCE(p.last_name, ''),
			COALESCE(p.email, ''), COALESCE(p.phone, ''),
			COALESCE(p.avatar_url, ''), COALESCE(p.skills, '{}'::text[])
		FROM job_applications a
		JOIN jobs j ON j.id = a.job_id
		LEFT JOIN profiles p ON p.user_id = a.user_id
		WHERE j.company_id = $1
		ORDER BY a.created_at DESC`,
		companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.CompanyQueueItem, 0)
	for rows.Next() {
		var it application.CompanyQueueItem
		err := rows.Scan(
			&it.ID, &it.JobID, &it.UserID, &it.Status, &it.Message, &it.CreatedAt, &it.UpdatedAt,
			&it.JobTitle, &it.JobLocation, &it.JobType,
			&it.ApplicantFirstName, &it.ApplicantLastName,
			&it.ApplicantEmail, &it.ApplicantPhone,
			&it.ApplicantAvatarURL, &it.ApplicantSkills,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]application.UserItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+applicationColumns+`,
			j.title, j.location, j.job_type, c.name, c.logo_url
		FROM job_applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN companies c ON c.id = j.company_id
		WHERE a.user_id = $1
		ORDER BY a.created_at DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.UserItem, 0)
	for rows.Next() {
		var it application.UserItem
		err := rows.Scan(
			&it.ID, &it.JobID, &it.UserID, &it.Status, &it.Message, &it.CreatedAt, &it.UpdatedAt,
			&it.JobTitle, &it.JobLocation, &it.JobType, &it.CompanyName, &it.CompanyLogoURL,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE job_applications SET status = $2, updated_at = now() WHERE id = $1`,
		id, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return application.ErrNotFound
	}
	return nil
}

// OwnerUserID resolves the user owning the company that posted the
// application's job, for authorization checks on status updates.
func (r *PostgresApplicationRepository) OwnerUserID(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	var ownerID uuid.UUID
	row := r.db.QueryRow(ctx,
		`SELECT c.company_id
		FROM job_applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN companies c ON c.id = j.company_id
		WHERE a.id = $1`,
		id)
	if err := row.Scan(&ownerID); err != nil {
		if isNoRows(err) {
			return uuid.Nil, application.ErrNotFound
		}
		return uuid.Nil, err
	}
	return ownerID, nil
}

func scanApplication(row database.Row) (application.Application, error) {
	var a application.Application
	err := row.Scan(&a.ID, &a.JobID, &a.UserID, &a.Status, &a.Message, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}
