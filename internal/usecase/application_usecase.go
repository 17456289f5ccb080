package usecase

import (
	"context"
	"errors"
	"fmt"

	"crewcall/internal/domain/application"
	"crewcall/internal/domain/company"
	"crewcall/internal/domain/job"
	"crewcall/internal/events"
	"crewcall/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApplicationUsecase interface {
	Apply(ctx context.Context, userID, jobID uuid.UUID, message string) (application.Application, error)
	ListForCompany(ctx context.Context, userID uuid.UUID) ([]application.CompanyQueueItem, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]application.UserItem, error)
	UpdateStatus(ctx context.Context, actorUserID, applicationID uuid.UUID, status application.Status) (application.Application, error)
}

type applicationUsecase struct {
	apps      repository.ApplicationRepository
	jobs      repository.JobRepository
	companies repository.CompanyRepository
	producer  EventProducer
	notify    Notifier
	logger    *zap.Logger
}

func NewApplicationUsecase(
	apps repository.ApplicationRepository,
	jobs repository.JobRepository,
	companies repository.CompanyRepository,
	producer EventProducer,
	notify Notifier,
	logger *zap.Logger,
) ApplicationUsecase {
	return &applicationUsecase{
		apps:      apps,
		jobs:      jobs,
		companies: companies,
		producer:  producer,
		notify:    notify,
		logger:    logger.Named("application_usecase"),
	}
}

// Apply is idempotent per (job, user): a repeat submission returns the
// existing application instead of creating a duplicate.
func (u *applicationUsecase) Apply(ctx context.Context, userID, jobID uuid.UUID, message string) (application.Application, error) {
	posting, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return application.Application{}, ErrNotFound
		}
		u.logger.Error("job fetch for apply failed", zap.Error(err))
		return application.Application{}, ErrInternal
	}
	if posting.Status != job.StatusActive {
		return application.Application{}, fmt.Errorf("%w: job is not accepting applications", ErrInvalidInput)
	}

	existing, err := u.apps.FindByJobAndUser(ctx, jobID, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, application.ErrNotFound) {
		u.logger.Error("duplicate application check failed", zap.Error(err))
		return application.Application{}, ErrInternal
	}

	app := application.Application{
		ID:      uuid.New(),
		JobID:   jobID,
		UserID:  userID,
		Status:  application.StatusApplied,
		Message: message,
	}
	if err := u.apps.Create(ctx, app); err != nil {
		// Lost a race with a concurrent submit: the unique constraint on
		// (job_id, user_id) fired, so the winner's row is the answer.
		if existing, findErr := u.apps.FindByJobAndUser(ctx, jobID, userID); findErr == nil {
			return existing, nil
		}
		u.logger.Error("application insert failed", zap.Error(err),
			zap.String("job_id", jobID.String()), zap.String("user_id", userID.String()))
		return application.Application{}, ErrInternal
	}

	created, err := u.apps.GetByID(ctx, app.ID)
	if err != nil {
		u.logger.Error("application fetch after insert failed", zap.Error(err))
		return application.Application{}, ErrInternal
	}

	u.producer.Produce(events.ApplicationSubmitted, created.ID, map[string]any{
		"job_id":  created.JobID,
		"user_id": created.UserID,
	})
	return created, nil
}

func (u *applicationUsecase) ListForCompany(ctx context.Context, userID uuid.UUID) ([]application.CompanyQueueItem, error) {
	owned, err := u.companies.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return nil, fmt.Errorf("%w: company profile required", ErrForbidden)
		}
		u.logger.Error("company lookup failed", zap.Error(err))
		return nil, ErrInternal
	}

	items, err := u.apps.ListForCompany(ctx, owned.ID)
	if err != nil {
		u.logger.Error("company application queue query failed", zap.Error(err))
		return nil, ErrInternal
	}
	return items, nil
}

func (u *applicationUsecase) ListForUser(ctx context.Context, userID uuid.UUID) ([]application.UserItem, error) {
	items, err := u.apps.ListForUser(ctx, userID)
	if err != nil {
		u.logger.Error("user applications query failed", zap.Error(err))
		return nil, ErrInternal
	}
	return items, nil
}

func (u *applicationUsecase) UpdateStatus(ctx context.Context, actorUserID, applicationID uuid.UUID, status application.Status) (application.Application, error) {
	if !status.Valid() {
		return application.Application{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	ownerID, err := u.apps.OwnerUserID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, ErrNotFound
		}
		u.logger.Error("application owner lookup failed", zap.Error(err))
		return application.Application{}, ErrInternal
	}
	if ownerID != actorUserID {
		return application.Application{}, ErrForbidden
	}

	current, err := u.apps.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, ErrNotFound
		}
		u.logger.Error("application fetch failed", zap.Error(err))
		return application.Application{}, ErrInternal
	}

	// Setting the current status again is a no-op, not an error, so the
	// client can safely retry.
	if current.Status == status {
		return current, nil
	}
	if !application.CanTransition(current.Status, status) {
		return application.Application{}, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, current.Status, status)
	}

	if err := u.apps.UpdateStatus(ctx, applicationID, status); err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, ErrNotFound
		}
		u.logger.Error("application status update failed", zap.Error(err))
		return application.Application{}, ErrInternal
	}

	updated, err := u.apps.GetByID(ctx, applicationID)
	if err != nil {
		u.logger.Error("application fetch after update failed", zap.Error(err))
		return application.Application{}, ErrInternal
	}

	u.producer.Produce(events.ApplicationStatusChanged, updated.ID, map[string]any{
		"job_id":  updated.JobID,
		"user_id": updated.UserID,
		"status":  updated.Status,
	})

	// Push the change to the applicant's open sessions. The job title is
	// decoration only; a fetch failure must not undo the update.
	jobTitle := ""
	if posting, jobErr := u.jobs.GetByID(ctx, updated.JobID); jobErr == nil {
		jobTitle = posting.Title
	}
	u.notify.ApplicationStatusChanged(updated.UserID, updated.ID, jobTitle, string(updated.Status))

	return updated, nil
}
