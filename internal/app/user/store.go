package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"mmserver/internal/app/db"
)

// Store error sentinels. Callers classify failures with errors.Is; anything
// else coming out of the store is a database availability problem.
var (
	// ErrNotFound indicates that no user matched the lookup.
	ErrNotFound = errors.New("user not found")

	// ErrEmailTaken indicates that the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
)

// Store provides access to user rows in PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a user store backed by the given connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Create inserts a new user and returns the stored row.
func (s *Store) Create(ctx context.Context, email, passwordHash, fullName string) (User, error) {
	const q = `
		INSERT INTO users (email, password_hash, full_name)
		VALUES ($1, $2, $3)
		RETURNING id, email, password_hash, full_name, created_at`

	var u User
	err := s.pool.QueryRow(ctx, q, email, passwordHash, fullName).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.CreatedAt)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return User{}, ErrEmailTaken
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return u, nil
}

// GetByEmail fetches the user with exactly the given email.
func (s *Store) GetByEmail(ctx context.Context, email string) (User, error) {
	const q = `
		SELECT id, email, password_hash, full_name, created_at
		FROM users
		WHERE email = $1`

	var u User
	err := s.pool.QueryRow(ctx, q, email).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.CreatedAt)
	if err != nil {
		if db.IsNotFound(err) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("get user by email: %w", err)
	}

	return u, nil
}

// GetByID fetches the user with the given internal identifier.
func (s *Store) GetByID(ctx context.Context, id int64) (User, error) {
	const q = `
		SELECT id, email, password_hash, full_name, created_at
		FROM users
		WHERE id = $1`

	var u User
	err := s.pool.QueryRow(ctx, q, id).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.CreatedAt)
	if err != nil {
		if db.IsNotFound(err) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}

	return u, nil
}
