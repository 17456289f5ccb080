package usecase

import (
	"context"
	"testing"

	"crewcall/internal/domain/skill"
	"crewcall/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestListSkillsGroupedInTaxonomyOrder(t *testing.T) {
	repo := &fakeSkillRepo{}
	for _, cat := range skill.Taxonomy() {
		for _, role := range cat.Roles {
			repo.skills = append(repo.skills, repository.Skill{
				ID:       uuid.New(),
				Name:     role,
				Category: cat.Name,
			})
		}
	}

	uc := NewSkillUsecase(repo, zaptest.NewLogger(t))
	got, err := uc.List(context.Background())
	require.NoError(t, err)

	tax := skill.Taxonomy()
	require.Len(t, got, len(tax))
	for i, cat := range tax {
		assert.Equal(t, cat.Name, got[i].Name)
		require.Len(t, got[i].Roles, len(cat.Roles))
		for j, role := range cat.Roles {
			assert.Equal(t, role, got[i].Roles[j].Name)
			assert.NotEqual(t, uuid.Nil, got[i].Roles[j].ID)
		}
	}
}

func TestListSkillsSkipsUnseededRoles(t *testing.T) {
	repo := &fakeSkillRepo{skills: []repository.Skill{
		{ID: uuid.New(), Name: "Bartender", Category: "Catering & Food Service"},
	}}

	uc := NewSkillUsecase(repo, zaptest.NewLogger(t))
	got, err := uc.List(context.Background())
	require.NoError(t, err)

	var total int
	for _, cat := range got {
		total += len(cat.Roles)
	}
	assert.Equal(t, 1, total)
}
