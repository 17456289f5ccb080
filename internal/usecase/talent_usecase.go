package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"crewcall/internal/domain/skill"
	"crewcall/internal/domain/talent"
	"crewcall/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TalentUsecase interface {
	GetForUser(ctx context.Context, userID uuid.UUID) (talent.Profile, error)
	Save(ctx context.Context, userID uuid.UUID, p talent.Profile) (talent.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, patch talent.Update) (talent.Profile, error)
}

type talentUsecase struct {
	profiles repository.ProfileRepository
	logger   *zap.Logger
}

func NewTalentUsecase(profiles repository.ProfileRepository, logger *zap.Logger) TalentUsecase {
	return &talentUsecase{profiles: profiles, logger: logger.Named("talent_usecase")}
}

func (u *talentUsecase) GetForUser(ctx context.Context, userID uuid.UUID) (talent.Profile, error) {
	p, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return talent.Profile{}, u.mapStoreErr(err, "talent profile fetch failed")
	}
	return p, nil
}

// Save creates the talent profile for a user that has none yet. ID,
// UserID and timestamps on the input are ignored.
func (u *talentUsecase) Save(ctx context.Context, userID uuid.UUID, p talent.Profile) (talent.Profile, error) {
	if strings.TrimSpace(p.FirstName) == "" || strings.TrimSpace(p.LastName) == "" {
		return talent.Profile{}, fmt.Errorf("%w: first and last name are required", ErrInvalidInput)
	}
	if err := skill.ValidateRoles(p.Skills); err != nil {
		return talent.Profile{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	_, err := u.profiles.GetByUserID(ctx, userID)
	if err == nil {
		return talent.Profile{}, fmt.Errorf("%w: talent profile already exists", ErrAlreadyExists)
	}
	if !errors.Is(err, talent.ErrNotFound) {
		return talent.Profile{}, u.mapStoreErr(err, "talent existence check failed")
	}

	p.ID = uuid.New()
	p.UserID = userID
	if err := u.profiles.Create(ctx, p); err != nil {
		u.logger.Error("talent profile insert failed", zap.Error(err), zap.String("user_id", userID.String()))
		return talent.Profile{}, ErrInternal
	}

	created, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return talent.Profile{}, u.mapStoreErr(err, "talent profile fetch after insert failed")
	}
	return created, nil
}

func (u *talentUsecase) Update(ctx context.Context, userID uuid.UUID, patch talent.Update) (talent.Profile, error) {
	if patch.Empty() {
		return talent.Profile{}, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	if patch.Skills != nil {
		if err := skill.ValidateRoles(patch.Skills); err != nil {
			return talent.Profile{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	if patch.FirstName != nil && strings.TrimSpace(*patch.FirstName) == "" {
		return talent.Profile{}, fmt.Errorf("%w: first name cannot be empty", ErrInvalidInput)
	}
	if patch.LastName != nil && strings.TrimSpace(*patch.LastName) == "" {
		return talent.Profile{}, fmt.Errorf("%w: last name cannot be empty", ErrInvalidInput)
	}

	if err := u.profiles.Update(ctx, userID, patch); err != nil {
		return talent.Profile{}, u.mapStoreErr(err, "talent profile update failed")
	}

	updated, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return talent.Profile{}, u.mapStoreErr(err, "talent profile fetch after update failed")
	}
	return updated, nil
}

func (u *talentUsecase) mapStoreErr(err error, msg string) error {
	if errors.Is(err, talent.ErrNotFound) {
		return ErrNotFound
	}
	u.logger.Error(msg, zap.Error(err))
	return ErrInternal
}
