package usecase

import (
	"context"
	"testing"

	"crewcall/internal/domain/company"
	"crewcall/internal/domain/job"
	"crewcall/internal/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type jobFixture struct {
	uc        JobUsecase
	jobs      *fakeJobRepo
	companies *fakeCompanyRepo
	cache     *fakeCache
	producer  *fakeProducer

	ownerUserID uuid.UUID
	companyID   uuid.UUID
}

func newJobFixture(t *testing.T) *jobFixture {
	t.Helper()

	f := &jobFixture{
		jobs:        newFakeJobRepo(),
		companies:   newFakeCompanyRepo(),
		cache:       newFakeCache(),
		producer:    &fakeProducer{},
		ownerUserID: uuid.New(),
		companyID:   uuid.New(),
	}
	f.companies.byUser[f.ownerUserID] = company.Profile{
		ID:          f.companyID,
		OwnerUserID: f.ownerUserID,
		Name:        "Apex Events",
		Type:        "Event Agency",
	}
	f.uc = NewJobUsecase(f.jobs, f.companies, f.cache, f.producer, zaptest.NewLogger(t))
	return f
}

func TestCreateJobDraftHasNoPostedDate(t *testing.T) {
	f := newJobFixture(t)

	created, err := f.uc.Create(context.Background(), f.ownerUserID, JobInput{
		Title:  "Registration Staff",
		Status: job.StatusDraft,
	})
	require.NoError(t, err)

	assert.Equal(t, job.StatusDraft, created.Status)
	assert.Nil(t, created.PostedDate)
	assert.Equal(t, f.companyID, created.CompanyID)

	require.Len(t, f.producer.produced, 1)
	assert.Equal(t, events.JobCreated, f.producer.produced[0].Type)
}

func TestCreateJobActiveSetsPostedDate(t *testing.T) {
	f := newJobFixture(t)

	created, err := f.uc.Create(context.Background(), f.ownerUserID, JobInput{
		Title:  "Bartender",
		Status: job.StatusActive,
	})
	require.NoError(t, err)
	assert.NotNil(t, created.PostedDate)
}

func TestCreateJobRequiresCompanyProfile(t *testing.T) {
	f := newJobFixture(t)

	_, err := f.uc.Create(context.Background(), uuid.New(), JobInput{Title: "Usher"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateJobRequiresTitle(t *testing.T) {
	f := newJobFixture(t)

	_, err := f.uc.Create(context.Background(), f.ownerUserID, JobInput{Title: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateJobRejectsClosedStatus(t *testing.T) {
	f := newJobFixture(t)

	_, err := f.uc.Create(context.Background(), f.ownerUserID, JobInput{
		Title:  "Usher",
		Status: job.StatusClosed,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateJobStatusTransition(t *testing.T) {
	f := newJobFixture(t)

	created, err := f.uc.Create(context.Background(), f.ownerUserID, JobInput{
		Title:  "Booth Staff",
		Status: job.StatusDraft,
	})
	require.NoError(t, err)

	active := job.StatusActive
	updated, err := f.uc.Update(context.Background(), f.ownerUserID, created.ID, job.Update{Status: &active})
	require.NoError(t, err)
	assert.Equal(t, job.StatusActive, updated.Status)
	assert.NotNil(t, updated.PostedDate)

	// Draft is never reachable again once a job was published.
	draft := job.StatusDraft
	_, err = f.uc.Update(context.Background(), f.ownerUserID, created.ID, job.Update{Status: &draft})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateJobForeignCompanyForbidden(t *testing.T) {
	f := newJobFixture(t)

	created, err := f.uc.Create(context.Background(), f.ownerUserID, JobInput{Title: "Usher"})
	require.NoError(t, err)

	otherUser := uuid.New()
	f.companies.byUser[otherUser] = company.Profile{
		ID:          uuid.New(),
		OwnerUserID: otherUser,
		Name:        "Rival Staffing",
		Type:        "Staffing Agency",
	}

	title := "Hijacked"
	_, err = f.uc.Update(context.Background(), otherUser, created.ID, job.Update{Title: &title})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateJobUnknownID(t *testing.T) {
	f := newJobFixture(t)

	title := "Anything"
	_, err := f.uc.Update(context.Background(), f.ownerUserID, uuid.New(), job.Update{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListActiveUsesCache(t *testing.T) {
	f := newJobFixture(t)

	_, err := f.uc.Create(context.Background(), f.ownerUserID, JobInput{
		Title:  "Stagehand",
		Status: job.StatusActive,
	})
	require.NoError(t, err)

	first, err := f.uc.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := f.uc.ListActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, f.jobs.listActive, "second call must be served from cache")
}

func TestWriteInvalidatesActiveCache(t *testing.T) {
	f := newJobFixture(t)

	created, err := f.uc.Create(context.Background(), f.ownerUserID, JobInput{
		Title:  "Stagehand",
		Status: job.StatusActive,
	})
	require.NoError(t, err)

	listed, err := f.uc.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)

	closed := job.StatusClosed
	_, err = f.uc.Update(context.Background(), f.ownerUserID, created.ID, job.Update{Status: &closed})
	require.NoError(t, err)

	listed, err = f.uc.ListActive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, listed)
}
