package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"crewcall/internal/domain/company"
	"crewcall/internal/domain/job"
	"crewcall/internal/events"
	"crewcall/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	activeJobsCacheKey = "jobs:active"
	activeJobsCacheTTL = 30 * time.Second
)

type JobInput struct {
	Title        string
	Location     string
	JobType      string
	PayRate      string
	StartDate    *time.Time
	Status       job.Status
	Description  string
	Requirements []string
}

type JobUsecase interface {
	ListActive(ctx context.Context) ([]job.Listing, error)
	ListForCompany(ctx context.Context, userID uuid.UUID) ([]job.Listing, error)
	GetByID(ctx context.Context, jobID uuid.UUID) (job.Listing, error)
	Create(ctx context.Context, userID uuid.UUID, in JobInput) (job.Listing, error)
	Update(ctx context.Context, userID, jobID uuid.UUID, patch job.Update) (job.Listing, error)
}

type jobUsecase struct {
	jobs      repository.JobRepository
	companies repository.CompanyRepository
	cache     Cache
	producer  EventProducer
	logger    *zap.Logger
}

func NewJobUsecase(jobs repository.JobRepository, companies repository.CompanyRepository, cache Cache, producer EventProducer, logger *zap.Logger) JobUsecase {
	return &jobUsecase{
		jobs:      jobs,
		companies: companies,
		cache:     cache,
		producer:  producer,
		logger:    logger.Named("job_usecase"),
	}
}

// ListActive serves the public job board. The listing set is cached
// briefly; staleness of a few seconds is acceptable there.
func (u *jobUsecase) ListActive(ctx context.Context) ([]job.Listing, error) {
	var cached []job.Listing
	if hit, err := u.cache.GetJSON(ctx, activeJobsCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	listings, err := u.jobs.ListActive(ctx)
	if err != nil {
		u.logger.Error("active jobs query failed", zap.Error(err))
		return nil, ErrInternal
	}

	if err := u.cache.SetJSON(ctx, activeJobsCacheKey, listings, activeJobsCacheTTL); err != nil {
		u.logger.Warn("active jobs cache write failed", zap.Error(err))
	}
	return listings, nil
}

func (u *jobUsecase) ListForCompany(ctx context.Context, userID uuid.UUID) ([]job.Listing, error) {
	owned, err := u.ownedCompany(ctx, userID)
	if err != nil {
		return nil, err
	}

	listings, err := u.jobs.ListByCompany(ctx, owned.ID)
	if err != nil {
		u.logger.Error("company jobs query failed", zap.Error(err))
		return nil, ErrInternal
	}
	return listings, nil
}

func (u *jobUsecase) GetByID(ctx context.Context, jobID uuid.UUID) (job.Listing, error) {
	l, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Listing{}, ErrNotFound
		}
		u.logger.Error("job fetch failed", zap.Error(err))
		return job.Listing{}, ErrInternal
	}
	return l, nil
}

func (u *jobUsecase) Create(ctx context.Context, userID uuid.UUID, in JobInput) (job.Listing, error) {
	owned, err := u.ownedCompany(ctx, userID)
	if err != nil {
		return job.Listing{}, err
	}

	if strings.TrimSpace(in.Title) == "" {
		return job.Listing{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	status := in.Status
	if status == "" {
		status = job.StatusDraft
	}
	if status != job.StatusDraft && status != job.StatusActive {
		return job.Listing{}, fmt.Errorf("%w: new jobs must be Draft or Active", ErrInvalidInput)
	}

	listing := job.Listing{
		ID:           uuid.New(),
		CompanyID:    owned.ID,
		Title:        strings.TrimSpace(in.Title),
		Location:     in.Location,
		JobType:      in.JobType,
		PayRate:      in.PayRate,
		StartDate:    in.StartDate,
		Status:       status,
		Description:  in.Description,
		Requirements: in.Requirements,
	}
	if status == job.StatusActive {
		now := time.Now().UTC()
		listing.PostedDate = &now
	}

	if err := u.jobs.Create(ctx, listing); err != nil {
		u.logger.Error("job insert failed", zap.Error(err), zap.String("company_id", owned.ID.String()))
		return job.Listing{}, ErrInternal
	}

	created, err := u.jobs.GetByID(ctx, listing.ID)
	if err != nil {
		u.logger.Error("job fetch after insert failed", zap.Error(err))
		return job.Listing{}, ErrInternal
	}

	u.invalidateActive(ctx)
	u.producer.Produce(events.JobCreated, created.ID, map[string]any{
		"company_id": created.CompanyID,
		"title":      created.Title,
		"status":     created.Status,
	})
	return created, nil
}

func (u *jobUsecase) Update(ctx context.Context, userID, jobID uuid.UUID, patch job.Update) (job.Listing, error) {
	if patch.Empty() {
		return job.Listing{}, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	owned, err := u.ownedCompany(ctx, userID)
	if err != nil {
		return job.Listing{}, err
	}

	current, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Listing{}, ErrNotFound
		}
		u.logger.Error("job fetch failed", zap.Error(err))
		return job.Listing{}, ErrInternal
	}
	if current.CompanyID != owned.ID {
		return job.Listing{}, ErrForbidden
	}

	if patch.Status != nil {
		if !patch.Status.Valid() {
			return job.Listing{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *patch.Status)
		}
		if !job.CanTransition(current.Status, *patch.Status) {
			return job.Listing{}, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, current.Status, *patch.Status)
		}
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return job.Listing{}, fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
	}

	if err := u.jobs.Update(ctx, jobID, patch); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Listing{}, ErrNotFound
		}
		u.logger.Error("job update failed", zap.Error(err))
		return job.Listing{}, ErrInternal
	}

	updated, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		u.logger.Error("job fetch after update failed", zap.Error(err))
		return job.Listing{}, ErrInternal
	}

	u.invalidateActive(ctx)
	u.producer.Produce(events.JobUpdated, updated.ID, map[string]any{
		"company_id": updated.CompanyID,
		"status":     updated.Status,
	})
	return updated, nil
}

// ownedCompany resolves the caller's company profile; users without one
// cannot touch the job board's company side.
func (u *jobUsecase) ownedCompany(ctx context.Context, userID uuid.UUID) (company.Profile, error) {
	owned, err := u.companies.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return company.Profile{}, fmt.Errorf("%w: company profile required", ErrForbidden)
		}
		u.logger.Error("company lookup failed", zap.Error(err))
		return company.Profile{}, ErrInternal
	}
	return owned, nil
}

func (u *jobUsecase) invalidateActive(ctx context.Context) {
	if err := u.cache.Delete(ctx, activeJobsCacheKey); err != nil {
		u.logger.Warn("active jobs cache invalidation failed", zap.Error(err))
	}
}
