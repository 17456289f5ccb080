package usecase

import (
	"context"
	"testing"

	"crewcall/internal/domain/company"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newCompanyUsecaseForTest(t *testing.T) (CompanyUsecase, *fakeCompanyRepo) {
	t.Helper()
	repo := newFakeCompanyRepo()
	return NewCompanyUsecase(repo, zaptest.NewLogger(t)), repo
}

func TestSaveCompanyRoundTrip(t *testing.T) {
	uc, _ := newCompanyUsecaseForTest(t)
	userID := uuid.New()

	saved, err := uc.Save(context.Background(), userID, company.Profile{
		Name:  "Apex Events",
		Type:  "Event Agency",
		Email: "hello@apexevents.example",
		City:  "Austin",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, saved.OwnerUserID)
	assert.NotEqual(t, uuid.Nil, saved.ID)

	got, err := uc.GetForUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "Apex Events", got.Name)
}

func TestSaveCompanyValidation(t *testing.T) {
	uc, _ := newCompanyUsecaseForTest(t)

	_, err := uc.Save(context.Background(), uuid.New(), company.Profile{Type: "Event Agency"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Save(context.Background(), uuid.New(), company.Profile{Name: "Apex Events"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Save(context.Background(), uuid.New(), company.Profile{
		Name: "Apex Events", Type: "Event Agency", Email: "not-an-email",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSaveCompanyTwiceConflicts(t *testing.T) {
	uc, _ := newCompanyUsecaseForTest(t)
	userID := uuid.New()

	_, err := uc.Save(context.Background(), userID, company.Profile{Name: "Apex Events", Type: "Event Agency"})
	require.NoError(t, err)

	_, err = uc.Save(context.Background(), userID, company.Profile{Name: "Apex Events 2", Type: "Event Agency"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestUpdateCompanyPartialPatch(t *testing.T) {
	uc, _ := newCompanyUsecaseForTest(t)
	userID := uuid.New()

	_, err := uc.Save(context.Background(), userID, company.Profile{
		Name: "Apex Events", Type: "Event Agency", City: "Austin",
	})
	require.NoError(t, err)

	city := "Dallas"
	updated, err := uc.Update(context.Background(), userID, company.Update{City: &city})
	require.NoError(t, err)
	assert.Equal(t, "Dallas", updated.City)
	assert.Equal(t, "Apex Events", updated.Name, "untouched fields must survive a patch")
}

func TestUpdateCompanyEmptyPatch(t *testing.T) {
	uc, _ := newCompanyUsecaseForTest(t)

	_, err := uc.Update(context.Background(), uuid.New(), company.Update{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateCompanyMissingProfile(t *testing.T) {
	uc, _ := newCompanyUsecaseForTest(t)

	city := "Dallas"
	_, err := uc.Update(context.Background(), uuid.New(), company.Update{City: &city})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompletionForUser(t *testing.T) {
	uc, _ := newCompanyUsecaseForTest(t)
	userID := uuid.New()

	// Name, type and description: 3 of the 9 checklist items.
	_, err := uc.Save(context.Background(), userID, company.Profile{
		Name:        "Apex Events",
		Type:        "Event Agency",
		Description: "Full-service event staffing.",
	})
	require.NoError(t, err)

	got, err := uc.CompletionForUser(context.Background(), userID)
	require.NoError(t, err)

	assert.InDelta(t, 100.0*3.0/9.0, got.Score, 0.01)
	require.Len(t, got.Checks, 9)

	done := map[string]bool{}
	for _, c := range got.Checks {
		done[c.Label] = c.Done
	}
	assert.True(t, done["Company name"])
	assert.True(t, done["Company type"])
	assert.True(t, done["Description"])
	assert.False(t, done["Company logo"])
	assert.False(t, done["Payment and verification documents"])
}

func TestCompletionMissingProfile(t *testing.T) {
	uc, _ := newCompanyUsecaseForTest(t)

	_, err := uc.CompletionForUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
