package company

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("company not found")

// Profile is the company-side profile. OwnerUserID maps to the
// companies.company_id column, which holds the owning user id.
type Profile struct {
	ID                uuid.UUID
	OwnerUserID       uuid.UUID
	Name              string
	Type              string
	LogoURL           string
	Website           string
	Email             string
	Phone             string
	Description       string
	Founded           *int
	NumberOfEmployees string
	Street            string
	City              string
	State             string
	ZipCode           string
	Facebook          string
	Twitter           string
	Instagram         string
	LinkedIn          string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Update carries a partial-field patch. Nil pointers leave the stored
// value untouched.
type Update struct {
	Name              *string
	Type              *string
	LogoURL           *string
	Website           *string
	Email             *string
	Phone             *string
	Description       *string
	Founded           *int
	NumberOfEmployees *string
	Street            *string
	City              *string
	State             *string
	ZipCode           *string
	Facebook          *string
	Twitter           *string
	Instagram         *string
	LinkedIn          *string
}

func (u Update) Empty() bool {
	return u == Update{}
}
