// Package repository implements pgx-backed persistence for the marketplace
// entities. Every repository speaks the narrow database.DB interface so
// usecase tests can swap in mocks.
package repository

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
)

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}
