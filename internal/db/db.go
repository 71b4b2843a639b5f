package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicateKey = errors.New("duplicate key value")

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// CreateRecord inserts a single record and fills in its server-assigned
// id and timestamps.
func (f *PostgresDB) CreateRecord(ctx context.Context, record any) error {
	if err := f.DB.WithContext(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

// GetOneFold is GetOneBy with case-insensitive matching on a text column.
func (f *PostgresDB) GetOneFold(ctx context.Context, column string, value string, entity any) error {
	query := fmt.Sprintf("LOWER(%s) = LOWER(?)", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) GetAllBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	tx := f.DB.WithContext(ctx).Where(query, value).Order("id").Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

func (f *PostgresDB) GetAll(ctx context.Context, entity any) error {
	tx := f.DB.WithContext(ctx).Order("id").Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting all records: %w", tx.Error)
	}
	return nil
}

// UpdateWhere applies the given column updates to rows matching conds in a
// single statement and reports how many rows were touched.
func (f *PostgresDB) UpdateWhere(ctx context.Context, model any, conds map[string]any, updates map[string]any) (int64, error) {
	tx := f.DB.WithContext(ctx).Model(model).Where(conds).Updates(updates)
	if tx.Error != nil {
		return 0, fmt.Errorf("updating records: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}

// DeleteWhere removes rows matching conds in a single statement and reports
// how many rows were removed.
func (f *PostgresDB) DeleteWhere(ctx context.Context, model any, conds map[string]any) (int64, error) {
	tx := f.DB.WithContext(ctx).Where(conds).Delete(model)
	if tx.Error != nil {
		return 0, fmt.Errorf("deleting records: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}
