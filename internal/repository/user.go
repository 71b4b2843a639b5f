package repository

import (
	"context"
	"errors"
	"fmt"
	"nextup/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrUserExists error = errors.New("username or email already registered")

// UserRepository holds all database actions for the users and profiles tables.
type UserRepository struct {
	db Storage
}

func NewUserRepository(db Storage) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Migrate() error {
	if err := r.db.MigrateTable(&User{}, &Profile{}); err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}
	return nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user *User) error {
	if err := r.db.CreateRecord(ctx, user); err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return ErrUserExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// CreateProfile persists the empty profile row attached to a new user.
func (r *UserRepository) CreateProfile(ctx context.Context, profile *Profile) error {
	if err := r.db.CreateRecord(ctx, profile); err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "email", email, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by email: %w", err)
	}

	return user, nil
}

// UsernameTaken reports whether a user already holds the username,
// compared case-insensitively.
func (r *UserRepository) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var user User

	err := r.db.GetOneFold(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("check username taken: %w", err)
	}

	return true, nil
}

// EmailTaken reports whether a user already holds the email address,
// compared case-insensitively.
func (r *UserRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	var user User

	err := r.db.GetOneFold(ctx, "email", email, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("check email taken: %w", err)
	}

	return true, nil
}
