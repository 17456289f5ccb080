package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"crewcall/internal/domain/company"
	"crewcall/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Completion is the profile checklist shown during company onboarding.
type Completion struct {
	Score  float64
	Checks []company.CompletionCheck
}

type CompanyUsecase interface {
	GetForUser(ctx context.Context, userID uuid.UUID) (company.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (company.Profile, error)
	Save(ctx context.Context, userID uuid.UUID, p company.Profile) (company.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, patch company.Update) (company.Profile, error)
	CompletionForUser(ctx context.Context, userID uuid.UUID) (Completion, error)
}

type companyUsecase struct {
	companies repository.CompanyRepository
	logger    *zap.Logger
}

func NewCompanyUsecase(companies repository.CompanyRepository, logger *zap.Logger) CompanyUsecase {
	return &companyUsecase{companies: companies, logger: logger.Named("company_usecase")}
}

func (u *companyUsecase) GetForUser(ctx context.Context, userID uuid.UUID) (company.Profile, error) {
	p, err := u.companies.GetByUserID(ctx, userID)
	if err != nil {
		return company.Profile{}, u.mapStoreErr(err, "company fetch by user failed")
	}
	return p, nil
}

func (u *companyUsecase) GetByID(ctx context.Context, id uuid.UUID) (company.Profile, error) {
	p, err := u.companies.GetByID(ctx, id)
	if err != nil {
		return company.Profile{}, u.mapStoreErr(err, "company fetch failed")
	}
	return p, nil
}

// Save creates the company profile for a user that has none yet. ID,
// OwnerUserID and timestamps on the input are ignored.
func (u *companyUsecase) Save(ctx context.Context, userID uuid.UUID, p company.Profile) (company.Profile, error) {
	if err := validateCompany(p); err != nil {
		return company.Profile{}, err
	}

	_, err := u.companies.GetByUserID(ctx, userID)
	if err == nil {
		return company.Profile{}, fmt.Errorf("%w: company profile already exists", ErrAlreadyExists)
	}
	if !errors.Is(err, company.ErrNotFound) {
		return company.Profile{}, u.mapStoreErr(err, "company existence check failed")
	}

	p.ID = uuid.New()
	p.OwnerUserID = userID
	if err := u.companies.Create(ctx, p); err != nil {
		u.logger.Error("company insert failed", zap.Error(err), zap.String("user_id", userID.String()))
		return company.Profile{}, ErrInternal
	}

	created, err := u.companies.GetByUserID(ctx, userID)
	if err != nil {
		return company.Profile{}, u.mapStoreErr(err, "company fetch after insert failed")
	}
	return created, nil
}

func (u *companyUsecase) Update(ctx context.Context, userID uuid.UUID, patch company.Update) (company.Profile, error) {
	if patch.Empty() {
		return company.Profile{}, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return company.Profile{}, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
	}
	if patch.Type != nil && strings.TrimSpace(*patch.Type) == "" {
		return company.Profile{}, fmt.Errorf("%w: type cannot be empty", ErrInvalidInput)
	}

	if err := u.companies.Update(ctx, userID, patch); err != nil {
		return company.Profile{}, u.mapStoreErr(err, "company update failed")
	}

	updated, err := u.companies.GetByUserID(ctx, userID)
	if err != nil {
		return company.Profile{}, u.mapStoreErr(err, "company fetch after update failed")
	}
	return updated, nil
}

func (u *companyUsecase) CompletionForUser(ctx context.Context, userID uuid.UUID) (Completion, error) {
	p, err := u.companies.GetByUserID(ctx, userID)
	if err != nil {
		return Completion{}, u.mapStoreErr(err, "company fetch for completion failed")
	}
	score, checks := company.CompletionScore(p)
	return Completion{Score: score, Checks: checks}, nil
}

func validateCompany(p company.Profile) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(p.Type) == "" {
		return fmt.Errorf("%w: type is required", ErrInvalidInput)
	}
	if p.Email != "" && !strings.Contains(p.Email, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	return nil
}

func (u *companyUsecase) mapStoreErr(err error, msg string) error {
	if errors.Is(err, company.ErrNotFound) {
		return ErrNotFound
	}
	u.logger.Error(msg, zap.Error(err))
	return ErrInternal
}
