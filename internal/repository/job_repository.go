package repository

import (
	"context"
	"fmt"
	"strings"

	"crewcall/internal/database"
	"crewcall/internal/domain/job"

	"github.com/google/uuid"
)

type JobRepository interface {
	Create(ctx context.Context, l job.Listing) error
	GetByID(ctx context.Context, id uuid.UUID) (job.Listing, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]job.Listing, error)
	ListActive(ctx context.Context) ([]job.Listing, error)
	Update(ctx context.Context, id uuid.UUID, u job.Update) error
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

// applicants_count is derived from job_applications on every read; the
// stored column is display-only and never written.
const jobColumns = `j.id, j.company_id, j.title, j.location, j.job_type, j.pay_rate,
	j.start_date, j.posted_date,
	(SELECT COUNT(*) FROM job_applications a WHERE a.job_id = j.id) AS applicants_count,
	j.status, j.description, j.requirements, j.created_at, j.updated_at`

func (r *PostgresJobRepository) Create(ctx context.Context, l job.Listing) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (
			id, company_id, title, location, job_type, pay_rate,
			start_date, posted_date, status, description, requirements
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		l.ID, l.CompanyID, l.Title, l.Location, l.JobType, l.PayRate,
		l.StartDate, l.PostedDate, l.Status, l.Description, l.Requirements,
	)
	return err
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Listing, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs j WHERE j.id = $1`, id)
	return scanJob(row)
}

func (r *PostgresJobRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]job.Listing, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs j WHERE j.company_id = $1 ORDER BY j.created_at DESC`,
		companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *PostgresJobRepository) ListActive(ctx context.Context) ([]job.Listing, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs j WHERE j.status = $1 ORDER BY j.posted_date DESC NULLS LAST`,
		job.StatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *PostgresJobRepository) Update(ctx context.Context, id uuid.UUID, u job.Update) error {
	set := []string{"updated_at = now()"}
	args := []any{}
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if u.Title != nil {
		add("title", *u.Title)
	}
	if u.Location != nil {
		add("location", *u.Location)
	}
	if u.JobType != nil {
		add("job_type", *u.JobType)
	}
	if u.PayRate != nil {
		add("pay_rate", *u.PayRate)
	}
	if u.StartDate != nil {
		add("start_date", *u.StartDate)
	}
	if u.Status != nil {
		add("status", *u.Status)
		if *u.Status == job.StatusActive {
			set = append(set, "posted_date = COALESCE(posted_date, now())")
		}
	}
	if u.Description != nil {
		add("description", *u.Description)
	}
	if u.Requirements != nil {
		add("requirements", u.Requirements)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE jobs SET %s WHERE id = $%d`,
		strings.Join(set, ", "), len(args))

	affected, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if affected == 0 {
		return job.ErrNotFound
	}
	return nil
}

func scanJob(row database.Row) (job.Listing, error) {
	var l job.Listing
	err := row.Scan(
		&l.ID, &l.CompanyID, &l.Title, &l.Location, &l.JobType, &l.PayRate,
		&l.StartDate, &l.PostedDate, &l.ApplicantsCount,
		&l.Status, &l.Description, &l.Requirements, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return job.Listing{}, job.ErrNotFound
		}
		return job.Listing{}, err
	}
	return l, nil
}

func collectJobs(rows database.Rows) ([]job.Listing, error) {
	out := make([]job.Listing, 0)
	for rows.Next() {
		l, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
