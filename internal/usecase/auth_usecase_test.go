package usecase

import (
	"context"
	"testing"
	"time"

	"crewcall/internal/domain/user"
	"crewcall/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type authFixture struct {
	uc       AuthUsecase
	users    *fakeUserRepo
	cache    *fakeCache
	mailer   *fakeMailer
	notifier *fakeNotifier
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	f := &authFixture{
		users:    newFakeUserRepo(),
		cache:    newFakeCache(),
		mailer:   &fakeMailer{},
		notifier: &fakeNotifier{},
	}
	tokens := jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
	f.uc = NewAuthUsecase(f.users, tokens, f.cache, f.mailer, f.notifier, zaptest.NewLogger(t))
	return f
}

func TestRegisterAndLogin(t *testing.T) {
	f := newAuthFixture(t)

	created, pair, err := f.uc.Register(context.Background(), RegisterInput{
		Email:    "Talent@Example.com",
		Password: "s3cret-pass",
		Role:     user.RoleTalent,
	})
	require.NoError(t, err)
	assert.Equal(t, "talent@example.com", created.Email)
	assert.Equal(t, user.RoleTalent, created.Role)
	assert.False(t, created.EmailVerified)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "talent@example.com", f.mailer.sent[0].To)
	assert.Len(t, f.mailer.sent[0].Code, 6)

	got, loginPair, err := f.uc.Login(context.Background(), LoginInput{
		Email:    "talent@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.NotEmpty(t, loginPair.AccessToken)
}

func TestRegisterValidation(t *testing.T) {
	f := newAuthFixture(t)

	_, _, err := f.uc.Register(context.Background(), RegisterInput{
		Email: "no-at-sign", Password: "s3cret-pass", Role: user.RoleTalent,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = f.uc.Register(context.Background(), RegisterInput{
		Email: "a@b.example", Password: "short", Role: user.RoleTalent,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = f.uc.Register(context.Background(), RegisterInput{
		Email: "a@b.example", Password: "s3cret-pass", Role: "admin",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)

	_, _, err := f.uc.Register(context.Background(), RegisterInput{
		Email: "dup@example.com", Password: "s3cret-pass", Role: user.RoleCompany,
	})
	require.NoError(t, err)

	_, _, err = f.uc.Register(context.Background(), RegisterInput{
		Email: "DUP@example.com", Password: "other-pass-123", Role: user.RoleTalent,
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestLoginWrongPassword(t *testing.T) {
	f := newAuthFixture(t)

	_, _, err := f.uc.Register(context.Background(), RegisterInput{
		Email: "a@b.example", Password: "s3cret-pass", Role: user.RoleTalent,
	})
	require.NoError(t, err)

	_, _, err = f.uc.Login(context.Background(), LoginInput{Email: "a@b.example", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = f.uc.Login(context.Background(), LoginInput{Email: "missing@b.example", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRotatesTokens(t *testing.T) {
	f := newAuthFixture(t)

	_, pair, err := f.uc.Register(context.Background(), RegisterInput{
		Email: "a@b.example", Password: "s3cret-pass", Role: user.RoleTalent,
	})
	require.NoError(t, err)

	rotated, err := f.uc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)
	assert.NotEmpty(t, rotated.RefreshToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	f := newAuthFixture(t)

	_, pair, err := f.uc.Register(context.Background(), RegisterInput{
		Email: "a@b.example", Password: "s3cret-pass", Role: user.RoleTalent,
	})
	require.NoError(t, err)

	_, err = f.uc.Refresh(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	_, err = f.uc.Refresh(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestVerifyEmailFlow(t *testing.T) {
	f := newAuthFixture(t)

	created, _, err := f.uc.Register(context.Background(), RegisterInput{
		Email: "a@b.example", Password: "s3cret-pass", Role: user.RoleTalent,
	})
	require.NoError(t, err)
	require.Len(t, f.mailer.sent, 1)
	code := f.mailer.sent[0].Code

	wrong := "000000"
	if code == wrong {
		wrong = "000001"
	}
	err = f.uc.VerifyEmail(context.Background(), created.ID, wrong)
	assert.ErrorIs(t, err, ErrInvalidCode)

	require.NoError(t, f.uc.VerifyEmail(context.Background(), created.ID, code))

	got, err := f.users.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, got.EmailVerified)

	require.Len(t, f.notifier.verified, 1)
	assert.Equal(t, created.ID, f.notifier.verified[0])

	// Code is single use.
	err = f.uc.VerifyEmail(context.Background(), created.ID, code)
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestResendVerification(t *testing.T) {
	f := newAuthFixture(t)

	created, _, err := f.uc.Register(context.Background(), RegisterInput{
		Email: "a@b.example", Password: "s3cret-pass", Role: user.RoleTalent,
	})
	require.NoError(t, err)
	require.Len(t, f.mailer.sent, 1)

	// The signup send does not arm the cooldown; only explicit resends do.
	require.NoError(t, f.uc.ResendVerification(context.Background(), created.ID))
	assert.Len(t, f.mailer.sent, 2)

	// Second resend inside the cooldown window is refused.
	err = f.uc.ResendVerification(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrResendFailed)
}

func TestResendVerificationAlreadyVerified(t *testing.T) {
	f := newAuthFixture(t)

	created, _, err := f.uc.Register(context.Background(), RegisterInput{
		Email: "a@b.example", Password: "s3cret-pass", Role: user.RoleTalent,
	})
	require.NoError(t, err)
	require.NoError(t, f.users.MarkEmailVerified(context.Background(), created.ID))

	err = f.uc.ResendVerification(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrAlreadyVerified)
}

func TestResendVerificationUnknownUser(t *testing.T) {
	f := newAuthFixture(t)

	err := f.uc.ResendVerification(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
