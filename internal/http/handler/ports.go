package handler

import (
	"context"
	"net/http"

	"nextup/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TodoService . TodoService
type TodoService interface {
	Register(ctx context.Context, msg core.RegisterMessage) (core.UserRecord, string, error)
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	Authorize(ctx context.Context, authHeader string) (core.UserRecord, error)
	CreateTodo(ctx context.Context, user core.UserRecord, msg core.CreateTodoMessage) (core.TodoRecord, error)
	GetTodo(ctx context.Context, id uint) (core.TodoRecord, error)
	ListTodos(ctx context.Context) ([]core.TodoSummary, error)
	ListMyTodos(ctx context.Context, user core.UserRecord) ([]core.TodoRecord, error)
	UpdateTodo(ctx context.Context, id uint, patch core.TodoPatch, user core.UserRecord) (core.TodoRecord, error)
	DeleteTodo(ctx context.Context, id uint, user core.UserRecord) (uint, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
