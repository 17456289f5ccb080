package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user not found")

type Role string

const (
	RoleCompany Role = "company"
	RoleTalent  Role = "talent"
)

func (r Role) Valid() bool {
	return r == RoleCompany || r == RoleTalent
}

type User struct {
	ID            uuid.UUID
	Email         string
	PasswordHash  string
	Role          Role
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
