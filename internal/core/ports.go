package core

import (
	"context"
	"nextup/internal/repository"
	tokenIssuer "nextup/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name UserRepository . UserRepository
type UserRepository interface {
	CreateUser(ctx context.Context, user *repository.User) error
	CreateProfile(ctx context.Context, profile *repository.Profile) error
	GetByUsername(ctx context.Context, username string) (repository.User, error)
	GetByEmail(ctx context.Context, email string) (repository.User, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
}

//counterfeiter:generate -o fake -fake-name TodoRepository . TodoRepository
type TodoRepository interface {
	CreateTodo(ctx context.Context, todo *repository.Todo) error
	GetByID(ctx context.Context, id uint) (repository.Todo, error)
	ListAll(ctx context.Context) ([]repository.Todo, error)
	ListByOwner(ctx context.Context, owner uint) ([]repository.Todo, error)
	UpdateOwned(ctx context.Context, id, owner uint, updates map[string]any) (int64, error)
	DeleteOwned(ctx context.Context, id, owner uint) (int64, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Issue(data tokenIssuer.TokenInfo) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name PasswordHasher . PasswordHasher
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(password, salt string) (string, error)
	Verify(password, salt, hashed string) bool
}
