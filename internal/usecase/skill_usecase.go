package usecase

import (
	"context"

	"crewcall/internal/domain/skill"
	"crewcall/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SkillItem struct {
	ID   uuid.UUID
	Name string
}

type SkillCategory struct {
	Name  string
	Roles []SkillItem
}

type SkillUsecase interface {
	List(ctx context.Context) ([]SkillCategory, error)
}

type skillUsecase struct {
	skills repository.SkillRepository
	logger *zap.Logger
}

func NewSkillUsecase(skills repository.SkillRepository, logger *zap.Logger) SkillUsecase {
	return &skillUsecase{skills: skills, logger: logger.Named("skill_usecase")}
}

// List returns the seeded skills grouped by category, in the taxonomy's
// display order rather than the table's alphabetical one.
func (u *skillUsecase) List(ctx context.Context) ([]SkillCategory, error) {
	rows, err := u.skills.GetAll(ctx)
	if err != nil {
		u.logger.Error("skills query failed", zap.Error(err))
		return nil, ErrInternal
	}

	byName := make(map[string]repository.Skill, len(rows))
	for _, s := range rows {
		byName[s.Name] = s
	}

	out := make([]SkillCategory, 0, len(skill.Taxonomy()))
	for _, cat := range skill.Taxonomy() {
		sc := SkillCategory{Name: cat.Name, Roles: make([]SkillItem, 0, len(cat.Roles))}
		for _, role := range cat.Roles {
			row, ok := byName[role]
			if !ok {
				continue
			}
			sc.Roles = append(sc.Roles, SkillItem{ID: row.ID, Name: row.Name})
		}
		out = append(out, sc)
	}
	return out, nil
}
