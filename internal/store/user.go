// Package store provides database access for the catalog entities.
// Each store wraps a *sql.DB and exposes typed query methods built on
// parameterized SQL.
package store

import (
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"tienda/internal/models"
)

// UserStore handles account registration and credential checks.
type UserStore struct {
	db *sql.DB
}

// NewUserStore creates a new UserStore with the given database connection.
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

const userColumns = `id, nombre, email, contrasena`

// FindByEmail retrieves a user by email address. Returns nil if not
// found. The comparison is case-sensitive.
func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	u := &models.User{}
	err := s.db.QueryRow(`SELECT `+userColumns+` FROM usuarios WHERE email = $1`, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

// FindByID retrieves a user by ID. Returns nil if not found.
func (s *UserStore) FindByID(id int64) (*models.User, error) {
	u := &models.User{}
	err := s.db.QueryRow(`SELECT `+userColumns+` FROM usuarios WHERE id = $1`, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return u, nil
}

// Register creates a new account with a bcrypt-hashed password. The
// duplicate-email check and the insert share one transaction, with the
// unique index on email as backstop against concurrent registrations.
// Returns ErrDuplicateEmail when the address is taken.
func (s *UserStore) Register(name, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("register user: begin tx: %w", err)
	}
	defer tx.Rollback()

	var existing int64
	err = tx.QueryRow(`SELECT id FROM usuarios WHERE email = $1`, email).Scan(&existing)
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("check email: %w", err)
	}

	u := &models.User{}
	err = tx.QueryRow(`
		INSERT INTO usuarios (nombre, email, contrasena)
		VALUES ($1, $2, $3)
		RETURNING `+userColumns,
		name, email, string(hash),
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash)
	if isPgError(err, pgUniqueViolation) {
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("register user: commit: %w", err)
	}
	return u, nil
}

// Authenticate verifies an email/password pair. Returns
// ErrInvalidCredentials when the account does not exist or the
// password does not match, without distinguishing the two.
func (s *UserStore) Authenticate(email, password string) (*models.User, error) {
	u, err := s.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
