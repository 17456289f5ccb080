package usecase

import (
	"context"
	"testing"

	"crewcall/internal/domain/talent"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTalentUsecaseForTest(t *testing.T) TalentUsecase {
	t.Helper()
	return NewTalentUsecase(newFakeProfileRepo(), zaptest.NewLogger(t))
}

func TestSaveTalentRoundTrip(t *testing.T) {
	uc := newTalentUsecaseForTest(t)
	userID := uuid.New()

	saved, err := uc.Save(context.Background(), userID, talent.Profile{
		FirstName: "Jordan",
		LastName:  "Reyes",
		Skills:    []string{"Bartender", "Banquet Server"},
	})
	require.NoError(t, err)
	assert.Equal(t, userID, saved.UserID)
	assert.NotEqual(t, uuid.Nil, saved.ID)

	got, err := uc.GetForUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bartender", "Banquet Server"}, got.Skills)
}

func TestSaveTalentRejectsUnknownSkill(t *testing.T) {
	uc := newTalentUsecaseForTest(t)

	_, err := uc.Save(context.Background(), uuid.New(), talent.Profile{
		FirstName: "Jordan",
		LastName:  "Reyes",
		Skills:    []string{"Bartender", "Underwater Welder"},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSaveTalentRequiresName(t *testing.T) {
	uc := newTalentUsecaseForTest(t)

	_, err := uc.Save(context.Background(), uuid.New(), talent.Profile{LastName: "Reyes"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Save(context.Background(), uuid.New(), talent.Profile{FirstName: "Jordan"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSaveTalentTwiceConflicts(t *testing.T) {
	uc := newTalentUsecaseForTest(t)
	userID := uuid.New()

	_, err := uc.Save(context.Background(), userID, talent.Profile{FirstName: "Jordan", LastName: "Reyes"})
	require.NoError(t, err)

	_, err = uc.Save(context.Background(), userID, talent.Profile{FirstName: "Jordan", LastName: "Reyes"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestUpdateTalentSkillsPatch(t *testing.T) {
	uc := newTalentUsecaseForTest(t)
	userID := uuid.New()

	_, err := uc.Save(context.Background(), userID, talent.Profile{
		FirstName: "Jordan",
		LastName:  "Reyes",
		Skills:    []string{"Bartender"},
	})
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), userID, talent.Update{
		Skills: []string{"Usher", "Brand Ambassador"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Usher", "Brand Ambassador"}, updated.Skills)
	assert.Equal(t, "Jordan", updated.FirstName)

	_, err = uc.Update(context.Background(), userID, talent.Update{
		Skills: []string{"Not A Role"},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateTalentEmptyPatch(t *testing.T) {
	uc := newTalentUsecaseForTest(t)

	_, err := uc.Update(context.Background(), uuid.New(), talent.Update{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateTalentMissingProfile(t *testing.T) {
	uc := newTalentUsecaseForTest(t)

	onboarded := true
	_, err := uc.Update(context.Background(), uuid.New(), talent.Update{IsOnboarded: &onboarded})
	assert.ErrorIs(t, err, ErrNotFound)
}
