package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	CreateRecord(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetOneFold(ctx context.Context, column string, value string, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entity any) error
	GetAll(ctx context.Context, entity any) error
	UpdateWhere(ctx context.Context, model any, conds map[string]any, updates map[string]any) (int64, error)
	DeleteWhere(ctx context.Context, model any, conds map[string]any) (int64, error)
}
