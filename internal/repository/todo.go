package repository

import (
	"context"
	"errors"
	"fmt"
	"nextup/internal/db"
)

var ErrTodoNotFound error = errors.New("todo not found")

// TodoRepository holds all database actions for the todos table.
type TodoRepository struct {
	db Storage
}

func NewTodoRepository(db Storage) *TodoRepository {
	return &TodoRepository{
		db: db,
	}
}

func (r *TodoRepository) Migrate() error {
	if err := r.db.MigrateTable(&Todo{}); err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}
	return nil
}

func (r *TodoRepository) CreateTodo(ctx context.Context, todo *Todo) error {
	if err := r.db.CreateRecord(ctx, todo); err != nil {
		return fmt.Errorf("create todo: %w", err)
	}
	return nil
}

func (r *TodoRepository) GetByID(ctx context.Context, id uint) (Todo, error) {
	var todo Todo

	err := r.db.GetOneBy(ctx, "id", id, &todo)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Todo{}, ErrTodoNotFound
		}
		return Todo{}, fmt.Errorf("get todo by id: %w", err)
	}

	return todo, nil
}

func (r *TodoRepository) ListAll(ctx context.Context) ([]Todo, error) {
	todos := []Todo{}

	if err := r.db.GetAll(ctx, &todos); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	return todos, nil
}

func (r *TodoRepository) ListByOwner(ctx context.Context, owner uint) ([]Todo, error) {
	todos := []Todo{}

	if err := r.db.GetAllBy(ctx, "owner", owner, &todos); err != nil {
		return nil, fmt.Errorf("list todos by owner: %w", err)
	}

	return todos, nil
}

// UpdateOwned applies the column updates to the todo only if it still belongs
// to owner, in a single conditional statement. Returns rows affected.
func (r *TodoRepository) UpdateOwned(ctx context.Context, id, owner uint, updates map[string]any) (int64, error) {
	rows, err := r.db.UpdateWhere(ctx, &Todo{}, map[string]any{"id": id, "owner": owner}, updates)
	if err != nil {
		return 0, fmt.Errorf("update todo: %w", err)
	}
	return rows, nil
}

// DeleteOwned removes the todo only if it still belongs to owner, in a single
// conditional statement. Returns rows affected.
func (r *TodoRepository) DeleteOwned(ctx context.Context, id, owner uint) (int64, error) {
	rows, err := r.db.DeleteWhere(ctx, &Todo{}, map[string]any{"id": id, "owner": owner})
	if err != nil {
		return 0, fmt.Errorf("delete todo: %w", err)
	}
	return rows, nil
}
