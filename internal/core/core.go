package core

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"nextup/internal/repository"
	tokenIssuer "nextup/pkg/jwt"

	"go.uber.org/zap"
)

var ErrInvalidCredentials error = errors.New("incorrect username or password")
var ErrUsernameTaken error = errors.New("username is already taken")
var ErrEmailTaken error = errors.New("email is already registered")
var ErrUnauthenticated error = errors.New("could not validate credentials")
var ErrTodoNotFound error = errors.New("todo not found")
var ErrNotOwner error = errors.New("todo belongs to another user")

// dummyHash keeps the unknown-user path of Authenticate timing-compatible
// with the wrong-password path. It never matches a real password.
const dummySalt = "0b36b82a-74a3-4d31-a9ab-e6e9f4c1eed6"
const dummyHash = "$2a$10$7PrikY/17DYiRAA6JlaGl.yo26gwhTT53ESuovxGWvWJ4HhvGI/GK"

// NextUp implements registration, authentication, the request authorization
// gate and the ownership-checked to-do operations.
type NextUp struct {
	logs        *zap.SugaredLogger
	users       UserRepository
	todos       TodoRepository
	jwtIssuer   JWTIssuer
	hasher      PasswordHasher
	tokenPrefix string
}

func NewNextUp(
	logger *zap.SugaredLogger,
	users UserRepository,
	todos TodoRepository,
	jwt JWTIssuer,
	hasher PasswordHasher,
	tokenPrefix string,
) *NextUp {
	return &NextUp{
		logs:        logger,
		users:       users,
		todos:       todos,
		jwtIssuer:   jwt,
		hasher:      hasher,
		tokenPrefix: tokenPrefix,
	}
}

// Register creates a new user with a fresh salt and password hash, attaches
// an empty profile and issues an access token for the new account.
func (n *NextUp) Register(ctx context.Context, msg RegisterMessage) (UserRecord, string, error) {
	taken, err := n.users.UsernameTaken(ctx, msg.Username)
	if err != nil {
		return UserRecord{}, "", fmt.Errorf("check username: %w", err)
	}
	if taken {
		return UserRecord{}, "", ErrUsernameTaken
	}

	taken, err = n.users.EmailTaken(ctx, msg.Email)
	if err != nil {
		return UserRecord{}, "", fmt.Errorf("check email: %w", err)
	}
	if taken {
		return UserRecord{}, "", ErrEmailTaken
	}

	salt, err := n.hasher.GenerateSalt()
	if err != nil {
		return UserRecord{}, "", fmt.Errorf("generate salt: %w", err)
	}

	passwordHash, err := n.hasher.Hash(msg.Password, salt)
	if err != nil {
		return UserRecord{}, "", fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		Username:     msg.Username,
		Email:        msg.Email,
		Salt:         salt,
		PasswordHash: passwordHash,
		IsActive:     true,
	}
	if err := n.users.CreateUser(ctx, &user); err != nil {
		// a concurrent registration can win the unique index between the
		// taken checks and the insert
		if errors.Is(err, repository.ErrUserExists) {
			taken, checkErr := n.users.UsernameTaken(ctx, msg.Username)
			if checkErr == nil && taken {
				return UserRecord{}, "", ErrUsernameTaken
			}
			return UserRecord{}, "", ErrEmailTaken
		}
		return UserRecord{}, "", fmt.Errorf("create user: %w", err)
	}

	if err := n.users.CreateProfile(ctx, &repository.Profile{UserID: user.ID}); err != nil {
		return UserRecord{}, "", fmt.Errorf("create profile: %w", err)
	}

	token, err := n.jwtIssuer.Issue(tokenIssuer.TokenInfo{
		Username: user.Username,
		Subject:  strconv.FormatUint(uint64(user.ID), 10),
	})
	if err != nil {
		return UserRecord{}, "", fmt.Errorf("issue token: %w", err)
	}

	n.logs.Infow("user registered", "userId", user.ID, "username", user.Username)

	return n.userToRecord(user), token, nil
}

// Authenticate checks the credentials and issues a token. An unknown
// identifier and a wrong password are indistinguishable to the caller.
func (n *NextUp) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := n.users.GetByUsername(ctx, msg.Username)
	if errors.Is(err, repository.ErrUserNotFound) {
		user, err = n.users.GetByEmail(ctx, msg.Username)
	}
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// burn the same hashing cost as the verify below
			n.hasher.Verify(msg.Password, dummySalt, dummyHash)
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	if !n.hasher.Verify(msg.Password, user.Salt, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := n.jwtIssuer.Issue(tokenIssuer.TokenInfo{
		Username: user.Username,
		Subject:  strconv.FormatUint(uint64(user.ID), 10),
	})
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}

// Authorize resolves the caller's identity from an Authorization header.
// Every failure collapses to ErrUnauthenticated; the specific cause is only
// logged.
func (n *NextUp) Authorize(ctx context.Context, authHeader string) (UserRecord, error) {
	if authHeader == "" {
		return UserRecord{}, ErrUnauthenticated
	}

	prefix, token, found := strings.Cut(authHeader, " ")
	if !found || prefix != n.tokenPrefix || token == "" {
		n.logs.Infow("rejected credential", "reason", "bad authorization scheme")
		return UserRecord{}, ErrUnauthenticated
	}

	claims, err := n.jwtIssuer.Validate(token)
	if err != nil {
		n.logs.Infow("rejected credential", "reason", err)
		return UserRecord{}, ErrUnauthenticated
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		n.logs.Infow("rejected credential", "reason", "missing username claim")
		return UserRecord{}, ErrUnauthenticated
	}

	user, err := n.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			n.logs.Infow("rejected credential", "reason", "unknown user", "username", username)
			return UserRecord{}, ErrUnauthenticated
		}
		return UserRecord{}, fmt.Errorf("get user: %w", err)
	}

	// inactive accounts behave exactly like nonexistent ones
	if !user.IsActive {
		n.logs.Infow("rejected credential", "reason", "inactive user", "username", username)
		return UserRecord{}, ErrUnauthenticated
	}

	return n.userToRecord(user), nil
}

// CreateTodo persists a new to-do owned by the authenticated caller. The
// owner is never taken from the request body.
func (n *NextUp) CreateTodo(ctx context.Context, user UserRecord, msg CreateTodoMessage) (TodoRecord, error) {
	todo := repository.Todo{
		Task:      msg.Task,
		Completed: msg.Completed,
		Owner:     user.ID,
	}
	if err := n.todos.CreateTodo(ctx, &todo); err != nil {
		return TodoRecord{}, fmt.Errorf("create todo: %w", err)
	}

	n.logs.Infow("todo created", "todoId", todo.ID, "owner", user.ID)

	return n.todoToRecord(todo), nil
}

func (n *NextUp) GetTodo(ctx context.Context, id uint) (TodoRecord, error) {
	todo, err := n.todos.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return TodoRecord{}, ErrTodoNotFound
		}
		return TodoRecord{}, fmt.Errorf("get todo: %w", err)
	}

	return n.todoToRecord(todo), nil
}

// ListTodos returns every stored to-do in creation order, reduced to the
// public summary shape.
func (n *NextUp) ListTodos(ctx context.Context) ([]TodoSummary, error) {
	todos, err := n.todos.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	summaries := make([]TodoSummary, len(todos))
	for i, todo := range todos {
		summaries[i] = TodoSummary{
			ID:        todo.ID,
			Task:      todo.Task,
			Completed: todo.Completed,
		}
	}
	return summaries, nil
}

func (n *NextUp) ListMyTodos(ctx context.Context, user UserRecord) ([]TodoRecord, error) {
	todos, err := n.todos.ListByOwner(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list todos by owner: %w", err)
	}

	records := make([]TodoRecord, len(todos))
	for i, todo := range todos {
		records[i] = n.todoToRecord(todo)
	}
	return records, nil
}

// UpdateTodo merges the patch onto the stored record and persists it through
// a single conditional statement keyed on id and owner. Only the owner may
// update a to-do.
func (n *NextUp) UpdateTodo(ctx context.Context, id uint, patch TodoPatch, user UserRecord) (TodoRecord, error) {
	existing, err := n.todos.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return TodoRecord{}, ErrTodoNotFound
		}
		return TodoRecord{}, fmt.Errorf("get todo: %w", err)
	}

	if existing.Owner != user.ID {
		return TodoRecord{}, ErrNotOwner
	}

	updates := map[string]any{}
	if patch.Task != nil {
		updates["task"] = *patch.Task
	}
	if patch.Completed != nil {
		updates["completed"] = *patch.Completed
	}
	if len(updates) == 0 {
		return n.todoToRecord(existing), nil
	}

	rows, err := n.todos.UpdateOwned(ctx, id, user.ID, updates)
	if err != nil {
		return TodoRecord{}, fmt.Errorf("update todo: %w", err)
	}
	if rows == 0 {
		// deleted out from under us after the ownership check
		return TodoRecord{}, ErrTodoNotFound
	}

	updated, err := n.todos.GetByID(ctx, id)
	if err != nil {
		return TodoRecord{}, fmt.Errorf("reload todo: %w", err)
	}

	n.logs.Infow("todo updated", "todoId", id, "owner", user.ID)

	return n.todoToRecord(updated), nil
}

// DeleteTodo permanently removes the to-do and returns its id. Only the
// owner may delete a to-do; a second delete reports not found.
func (n *NextUp) DeleteTodo(ctx context.Context, id uint, user UserRecord) (uint, error) {
	existing, err := n.todos.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return 0, ErrTodoNotFound
		}
		return 0, fmt.Errorf("get todo: %w", err)
	}

	if existing.Owner != user.ID {
		return 0, ErrNotOwner
	}

	rows, err := n.todos.DeleteOwned(ctx, id, user.ID)
	if err != nil {
		return 0, fmt.Errorf("delete todo: %w", err)
	}
	if rows == 0 {
		return 0, ErrTodoNotFound
	}

	n.logs.Infow("todo deleted", "todoId", id, "owner", user.ID)

	return id, nil
}

func (n *NextUp) userToRecord(user repository.User) UserRecord {
	return UserRecord{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		IsActive:    user.IsActive,
		IsSuperuser: user.IsSuperuser,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

func (n *NextUp) todoToRecord(todo repository.Todo) TodoRecord {
	return TodoRecord{
		ID:        todo.ID,
		Task:      todo.Task,
		Completed: todo.Completed,
		Owner:     todo.Owner,
		CreatedAt: todo.CreatedAt,
		UpdatedAt: todo.UpdatedAt,
	}
}
