package jwt

import (
	"errors"
	"testing"
	"time"

	"crewcall/internal/domain/user"

	"github.com/google/uuid"
)

func testUser() user.User {
	return user.User{
		ID:    uuid.New(),
		Email: "talent@example.com",
		Role:  user.RoleTalent,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := NewHMACService("access-secret", "refresh-secret", 15*time.Minute, time.Hour)
	u := testUser()

	tok, err := svc.GenerateAccessToken(u)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != u.ID {
		t.Errorf("UserID = %v, want %v", claims.UserID, u.ID)
	}
	if claims.Email != u.Email {
		t.Errorf("Email = %q, want %q", claims.Email, u.Email)
	}
	if claims.Role != user.RoleTalent {
		t.Errorf("Role = %q, want %q", claims.Role, user.RoleTalent)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, TokenTypeAccess)
	}
	if svc.IsRefreshToken(claims) {
		t.Error("access token classified as refresh")
	}
}

func TestRefreshTokenOmitsProfileClaims(t *testing.T) {
	svc := NewHMACService("access-secret", "refresh-secret", 15*time.Minute, time.Hour)

	tok, err := svc.GenerateRefreshToken(testUser())
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if !svc.IsRefreshToken(claims) {
		t.Error("refresh token not classified as refresh")
	}
	if claims.Email != "" || claims.Role != "" {
		t.Error("refresh token carries profile claims")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := NewHMACService("access-secret", "refresh-secret", 15*time.Minute, time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	tok, err := svc.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("ValidateToken(expired) = %v, want ErrTokenExpired", err)
	}
}

func TestValidateForeignToken(t *testing.T) {
	issuer := NewHMACService("one-secret", "two-secret", 15*time.Minute, time.Hour)
	verifier := NewHMACService("other-secret", "another-secret", 15*time.Minute, time.Hour)

	tok, err := issuer.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := verifier.ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("ValidateToken(foreign) = %v, want ErrTokenInvalid", err)
	}

	if _, err := verifier.ValidateToken("not-a-jwt"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("ValidateToken(garbage) = %v, want ErrTokenInvalid", err)
	}
}
