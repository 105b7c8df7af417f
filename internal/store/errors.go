package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors returned by the stores. Handlers map these to HTTP
// status codes; anything else is a storage failure and maps to 500.
var (
	// ErrNotFound is returned when an update or delete affects zero rows.
	ErrNotFound = errors.New("record not found")

	// ErrCategoryNotFound is returned when a product references a
	// category id that does not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryInUse is returned when deleting a category that still
	// has dependent products.
	ErrCategoryInUse = errors.New("category has dependent products")

	// ErrDuplicateEmail is returned when registering an email that is
	// already taken.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// PostgreSQL error codes (class 23 — integrity constraint violation).
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// isPgError reports whether err is a PostgreSQL error with the given code.
func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
