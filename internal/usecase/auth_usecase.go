package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"crewcall/internal/domain/user"
	"crewcall/internal/infrastructure/mail"
	"crewcall/internal/pkg/jwt"
	"crewcall/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrRefreshTokenExpired    = errors.New("refresh token expired")
	ErrInvalidRefreshToken    = errors.New("invalid refresh token")
	ErrAlreadyVerified        = errors.New("email already verified")
	ErrInvalidCode            = errors.New("invalid or expired verification code")
	ErrResendFailed           = errors.New("failed to resend verification code")
)

const (
	verificationCodeTTL = 10 * time.Minute
	resendCooldown      = time.Minute
)

type RegisterInput struct {
	Email    string
	Password string
	Role     user.Role
}

type LoginInput struct {
	Email    string
	Password string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, TokenPair, error)
	Login(ctx context.Context, in LoginInput) (user.User, TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
	ResendVerification(ctx context.Context, userID uuid.UUID) error
	VerifyEmail(ctx context.Context, userID uuid.UUID, code string) error
}

type authUsecase struct {
	users  repository.UserRepository
	tokens jwt.Service
	cache  Cache
	mailer mail.Sender
	notify Notifier
	logger *zap.Logger
}

func NewAuthUsecase(users repository.UserRepository, tokens jwt.Service, cache Cache, mailer mail.Sender, notify Notifier, logger *zap.Logger) AuthUsecase {
	return &authUsecase{
		users:  users,
		tokens: tokens,
		cache:  cache,
		mailer: mailer,
		notify: notify,
		logger: logger.Named("auth_usecase"),
	}
}

func (u *authUsecase) Register(ctx context.Context, in RegisterInput) (user.User, TokenPair, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return user.User{}, TokenPair{}, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(in.Password) < 8 {
		return user.User{}, TokenPair{}, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}
	if !in.Role.Valid() {
		return user.User{}, TokenPair{}, fmt.Errorf("%w: role must be company or talent", ErrInvalidInput)
	}

	exists, err := u.users.ExistsByEmail(ctx, email)
	if err != nil {
		u.logger.Error("email existence check failed", zap.Error(err))
		return user.User{}, TokenPair{}, ErrInternal
	}
	if exists {
		return user.User{}, TokenPair{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		u.logger.Error("password hashing failed", zap.Error(err))
		return user.User{}, TokenPair{}, ErrInternal
	}

	newUser := user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         in.Role,
	}
	if err := u.users.Create(ctx, newUser); err != nil {
		u.logger.Error("user insert failed", zap.Error(err), zap.String("email", email))
		return user.User{}, TokenPair{}, ErrInternal
	}

	created, err := u.users.GetByID(ctx, newUser.ID)
	if err != nil {
		u.logger.Error("user fetch after insert failed", zap.Error(err))
		return user.User{}, TokenPair{}, ErrInternal
	}

	pair, err := u.issueTokens(created)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}

	// Verification mail is best effort; a provider outage must not block
	// signup. The user can always resend from the app.
	if err := u.sendVerificationCode(ctx, created); err != nil {
		u.logger.Warn("initial verification send failed",
			zap.Error(err), zap.String("user_id", created.ID.String()))
	}

	return created, pair, nil
}

func (u *authUsecase) Login(ctx context.Context, in LoginInput) (user.User, TokenPair, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	found, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, TokenPair{}, ErrInvalidCredentials
		}
		u.logger.Error("user lookup failed", zap.Error(err))
		return user.User{}, TokenPair{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, TokenPair{}, ErrInvalidCredentials
	}

	pair, err := u.issueTokens(found)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}
	return found, pair, nil
}

func (u *authUsecase) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := u.tokens.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenPair{}, ErrRefreshTokenExpired
		}
		return TokenPair{}, ErrInvalidRefreshToken
	}
	if !u.tokens.IsRefreshToken(claims) {
		return TokenPair{}, ErrInvalidRefreshToken
	}

	found, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return TokenPair{}, ErrInvalidRefreshToken
		}
		u.logger.Error("user lookup on refresh failed", zap.Error(err))
		return TokenPair{}, ErrInternal
	}

	pair, err := u.issueTokens(found)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	return pair, nil
}

func (u *authUsecase) ResendVerification(ctx context.Context, userID uuid.UUID) error {
	found, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrNotFound
		}
		u.logger.Error("user lookup on resend failed", zap.Error(err))
		return ErrInternal
	}
	if found.EmailVerified {
		return ErrAlreadyVerified
	}

	acquired, err := u.cache.SetIfNotExists(ctx, resendLockKey(userID), "1", resendCooldown)
	if err != nil {
		u.logger.Warn("resend cooldown check failed", zap.Error(err))
	}
	if !acquired {
		return ErrResendFailed
	}

	return u.sendVerificationCode(ctx, found)
}

func (u *authUsecase) VerifyEmail(ctx context.Context, userID uuid.UUID, code string) error {
	stored, ok, err := u.cache.GetString(ctx, verificationCodeKey(userID))
	if err != nil {
		u.logger.Error("verification code lookup failed", zap.Error(err))
		return ErrInternal
	}
	if !ok || stored != strings.TrimSpace(code) {
		return ErrInvalidCode
	}

	if err := u.users.MarkEmailVerified(ctx, userID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrNotFound
		}
		u.logger.Error("marking email verified failed", zap.Error(err))
		return ErrInternal
	}

	if err := u.cache.Delete(ctx, verificationCodeKey(userID)); err != nil {
		u.logger.Warn("verification code cleanup failed", zap.Error(err))
	}

	u.notify.EmailVerified(userID)
	return nil
}

func (u *authUsecase) issueTokens(usr user.User) (TokenPair, error) {
	access, err := u.tokens.GenerateAccessToken(usr)
	if err != nil {
		u.logger.Error("access token generation failed", zap.Error(err))
		return TokenPair{}, err
	}
	refresh, err := u.tokens.GenerateRefreshToken(usr)
	if err != nil {
		u.logger.Error("refresh token generation failed", zap.Error(err))
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (u *authUsecase) sendVerificationCode(ctx context.Context, usr user.User) error {
	code, err := generateVerificationCode()
	if err != nil {
		u.logger.Error("code generation failed", zap.Error(err))
		return ErrResendFailed
	}

	if err := u.cache.SetString(ctx, verificationCodeKey(usr.ID), code, verificationCodeTTL); err != nil {
		u.logger.Error("verification code store failed", zap.Error(err))
		return ErrResendFailed
	}

	if err := u.mailer.SendVerificationCode(ctx, usr.Email, code); err != nil {
		return ErrResendFailed
	}
	return nil
}

func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func verificationCodeKey(userID uuid.UUID) string {
	return "auth:verify:code:" + userID.String()
}

func resendLockKey(userID uuid.UUID) string {
	return "auth:verify:resend:" + userID.String()
}
