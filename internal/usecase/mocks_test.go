package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"crewcall/internal/domain/application"
	"crewcall/internal/domain/company"
	"crewcall/internal/domain/job"
	"crewcall/internal/domain/talent"
	"crewcall/internal/domain/user"
	"crewcall/internal/events"
	"crewcall/internal/repository"

	"github.com/google/uuid"
)

var errFakeStore = errors.New("store failure")

type fakeUserRepo struct {
	users map[uuid.UUID]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]user.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u user.User) error {
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if errors.Is(err, user.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (r *fakeUserRepo) MarkEmailVerified(_ context.Context, id uuid.UUID) error {
	u, ok := r.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.EmailVerified = true
	r.users[id] = u
	return nil
}

type fakeCompanyRepo struct {
	byUser map[uuid.UUID]company.Profile
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{byUser: make(map[uuid.UUID]company.Profile)}
}

func (r *fakeCompanyRepo) Create(_ context.Context, p company.Profile) error {
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.byUser[p.OwnerUserID] = p
	return nil
}

func (r *fakeCompanyRepo) GetByUserID(_ context.Context, userID uuid.UUID) (company.Profile, error) {
	p, ok := r.byUser[userID]
	if !ok {
		return company.Profile{}, company.ErrNotFound
	}
	return p, nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id uuid.UUID) (company.Profile, error) {
	for _, p := range r.byUser {
		if p.ID == id {
			return p, nil
		}
	}
	return company.Profile{}, company.ErrNotFound
}

func (r *fakeCompanyRepo) Update(_ context.Context, userID uuid.UUID, u company.Update) error {
	p, ok := r.byUser[userID]
	if !ok {
		return company.ErrNotFound
	}
	applyStr := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyStr(&p.Name, u.Name)
	applyStr(&p.Type, u.Type)
	applyStr(&p.LogoURL, u.LogoURL)
	applyStr(&p.Website, u.Website)
	applyStr(&p.Email, u.Email)
	applyStr(&p.Phone, u.Phone)
	applyStr(&p.Description, u.Description)
	if u.Founded != nil {
		p.Founded = u.Founded
	}
	applyStr(&p.NumberOfEmployees, u.NumberOfEmployees)
	applyStr(&p.Street, u.Street)
	applyStr(&p.City, u.City)
	applyStr(&p.State, u.State)
	applyStr(&p.ZipCode, u.ZipCode)
	applyStr(&p.Facebook, u.Facebook)
	applyStr(&p.Twitter, u.Twitter)
	applyStr(&p.Instagram, u.Instagram)
	applyStr(&p.LinkedIn, u.LinkedIn)
	p.UpdatedAt = time.Now()
	r.byUser[userID] = p
	return nil
}

type fakeJobRepo struct {
	jobs       map[uuid.UUID]job.Listing
	listActive int
	failList   bool
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[uuid.UUID]job.Listing)}
}

func (r *fakeJobRepo) Create(_ context.Context, l job.Listing) error {
	l.CreatedAt = time.Now()
	l.UpdatedAt = l.CreatedAt
	r.jobs[l.ID] = l
	return nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Listing, error) {
	l, ok := r.jobs[id]
	if !ok {
		return job.Listing{}, job.ErrNotFound
	}
	return l, nil
}

func (r *fakeJobRepo) ListByCompany(_ context.Context, companyID uuid.UUID) ([]job.Listing, error) {
	out := make([]job.Listing, 0)
	for _, l := range r.jobs {
		if l.CompanyID == companyID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) ListActive(_ context.Context) ([]job.Listing, error) {
	r.listActive++
	if r.failList {
		return nil, errFakeStore
	}
	out := make([]job.Listing, 0)
	for _, l := range r.jobs {
		if l.Status == job.StatusActive {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) Update(_ context.Context, id uuid.UUID, u job.Update) error {
	l, ok := r.jobs[id]
	if !ok {
		return job.ErrNotFound
	}
	if u.Title != nil {
		l.Title = *u.Title
	}
	if u.Location != nil {
		l.Location = *u.Location
	}
	if u.JobType != nil {
		l.JobType = *u.JobType
	}
	if u.PayRate != nil {
		l.PayRate = *u.PayRate
	}
	if u.StartDate != nil {
		l.StartDate = u.StartDate
	}
	if u.Status != nil {
		l.Status = *u.Status
		if l.Status == job.StatusActive && l.PostedDate == nil {
			now := time.Now()
			l.PostedDate = &now
		}
	}
	if u.Description != nil {
		l.Description = *u.Description
	}
	if u.Requirements != nil {
		l.Requirements = u.Requirements
	}
	l.UpdatedAt = time.Now()
	r.jobs[id] = l
	return nil
}

type fakeApplicationRepo struct {
	apps       map[uuid.UUID]application.Application
	jobOwner   map[uuid.UUID]uuid.UUID
	jobCompany map[uuid.UUID]uuid.UUID
	failCreate bool
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{
		apps:       make(map[uuid.UUID]application.Application),
		jobOwner:   make(map[uuid.UUID]uuid.UUID),
		jobCompany: make(map[uuid.UUID]uuid.UUID),
	}
}

func (r *fakeApplicationRepo) Create(_ context.Context, a application.Application) error {
	if r.failCreate {
		return errFakeStore
	}
	for _, existing := range r.apps {
		if existing.JobID == a.JobID && existing.UserID == a.UserID {
			return errFakeStore
		}
	}
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	r.apps[a.ID] = a
	return nil
}

func (r *fakeApplicationRepo) GetByID(_ context.Context, id uuid.UUID) (application.Application, error) {
	a, ok := r.apps[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	return a, nil
}

func (r *fakeApplicationRepo) FindByJobAndUser(_ context.Context, jobID, userID uuid.UUID) (application.Application, error) {
	for _, a := range r.apps {
		if a.JobID == jobID && a.UserID == userID {
			return a, nil
		}
	}
	return application.Application{}, application.ErrNotFound
}

func (r *fakeApplicationRepo) ListForCompany(_ context.Context, companyID uuid.UUID) ([]application.CompanyQueueItem, error) {
	out := make([]application.CompanyQueueItem, 0)
	for _, a := range r.apps {
		if r.jobCompany[a.JobID] == companyID {
			out = append(out, application.CompanyQueueItem{Application: a})
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListForUser(_ context.Context, userID uuid.UUID) ([]application.UserItem, error) {
	out := make([]application.UserItem, 0)
	for _, a := range r.apps {
		if a.UserID == userID {
			out = append(out, application.UserItem{Application: a})
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status application.Status) error {
	a, ok := r.apps[id]
	if !ok {
		return application.ErrNotFound
	}
	a.Status = status
	a.UpdatedAt = time.Now()
	r.apps[id] = a
	return nil
}

func (r *fakeApplicationRepo) OwnerUserID(_ context.Context, id uuid.UUID) (uuid.UUID, error) {
	a, ok := r.apps[id]
	if !ok {
		return uuid.Nil, application.ErrNotFound
	}
	owner, ok := r.jobOwner[a.JobID]
	if !ok {
		return uuid.Nil, application.ErrNotFound
	}
	return owner, nil
}

type fakeProfileRepo struct {
	byUser map[uuid.UUID]talent.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byUser: make(map[uuid.UUID]talent.Profile)}
}

func (r *fakeProfileRepo) Create(_ context.Context, p talent.Profile) error {
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.byUser[p.UserID] = p
	return nil
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (talent.Profile, error) {
	p, ok := r.byUser[userID]
	if !ok {
		return talent.Profile{}, talent.ErrNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) Update(_ context.Context, userID uuid.UUID, u talent.Update) error {
	p, ok := r.byUser[userID]
	if !ok {
		return talent.ErrNotFound
	}
	if u.FirstName != nil {
		p.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		p.LastName = *u.LastName
	}
	if u.Skills != nil {
		p.Skills = u.Skills
	}
	if u.IsOnboarded != nil {
		p.IsOnboarded = *u.IsOnboarded
	}
	p.UpdatedAt = time.Now()
	r.byUser[userID] = p
	return nil
}

type fakeSkillRepo struct {
	skills []repository.Skill
}

func (r *fakeSkillRepo) GetAll(_ context.Context) ([]repository.Skill, error) {
	return r.skills, nil
}

// fakeCache is a map-backed Cache with no expiry.
type fakeCache struct {
	blobs map[string][]byte
	strs  map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{blobs: make(map[string][]byte), strs: make(map[string]string)}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := c.blobs[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.blobs[key] = b
	return nil
}

func (c *fakeCache) GetString(_ context.Context, key string) (string, bool, error) {
	v, ok := c.strs[key]
	return v, ok, nil
}

func (c *fakeCache) SetString(_ context.Context, key, value string, _ time.Duration) error {
	c.strs[key] = value
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	delete(c.blobs, key)
	delete(c.strs, key)
	return nil
}

func (c *fakeCache) SetIfNotExists(_ context.Context, key, value string, _ time.Duration) (bool, error) {
	if _, ok := c.strs[key]; ok {
		return false, nil
	}
	c.strs[key] = value
	return true, nil
}

type producedEvent struct {
	Type     events.EventType
	EntityID uuid.UUID
}

type fakeProducer struct {
	produced []producedEvent
}

func (p *fakeProducer) Produce(t events.EventType, id uuid.UUID, _ any) {
	p.produced = append(p.produced, producedEvent{Type: t, EntityID: id})
}

type statusNotification struct {
	UserID        uuid.UUID
	ApplicationID uuid.UUID
	JobTitle      string
	Status        string
}

type fakeNotifier struct {
	verified []uuid.UUID
	statuses []statusNotification
}

func (n *fakeNotifier) EmailVerified(userID uuid.UUID) {
	n.verified = append(n.verified, userID)
}

func (n *fakeNotifier) ApplicationStatusChanged(userID, applicationID uuid.UUID, jobTitle, status string) {
	n.statuses = append(n.statuses, statusNotification{
		UserID:        userID,
		ApplicationID: applicationID,
		JobTitle:      jobTitle,
		Status:        status,
	})
}

type sentMail struct {
	To   string
	Code string
}

type fakeMailer struct {
	sent []sentMail
	fail bool
}

func (m *fakeMailer) SendVerificationCode(_ context.Context, to, code string) error {
	if m.fail {
		return errFakeStore
	}
	m.sent = append(m.sent, sentMail{To: to, Code: code})
	return nil
}
