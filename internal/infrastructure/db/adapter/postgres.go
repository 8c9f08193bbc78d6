package adapter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/Thanaphat465415241003/book-tracker-app/internal/infrastructure/metrics"
)

// ErrNotFound запись не найдена
var ErrNotFound = errors.New("record not found")

// Condition условие выборки (равенство по колонкам)
type Condition struct {
	Equal sq.Eq
}

// SQLAdapter строит и выполняет запросы через squirrel.
// Карты «колонка -> значение» приходят из patch-структур сущностей,
// поэтому обновляются только явно переданные поля.
type SQLAdapter struct {
	DB      *sqlx.DB
	builder sq.StatementBuilderType
}

func NewSQLAdapter(db *sqlx.DB) *SQLAdapter {
	return &SQLAdapter{
		DB:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Insert вставляет запись из карты значений
func (a *SQLAdapter) Insert(ctx context.Context, tableName string, data map[string]interface{}) error {
	if len(data) == 0 {
		return fmt.Errorf("no data to insert")
	}

	query, args, err := a.builder.Insert(tableName).SetMap(data).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	start := time.Now()
	_, err = a.DB.ExecContext(ctx, query, args...)
	metrics.ObserveDBRequest("insert", time.Since(start))
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}

	return nil
}

// Update применяет карту значений к записям, удовлетворяющим условию
func (a *SQLAdapter) Update(ctx context.Context, tableName string, data map[string]interface{}, condition Condition) error {
	if len(data) == 0 {
		return fmt.Errorf("no data to update")
	}

	query, args, err := a.builder.Update(tableName).
		SetMap(data).
		Where(condition.Equal).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	start := time.Now()
	_, err = a.DB.ExecContext(ctx, query, args...)
	metrics.ObserveDBRequest("update", time.Since(start))
	if err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}

	return nil
}

// Delete удаляет записи, удовлетворяющие условию, и возвращает число удаленных
func (a *SQLAdapter) Delete(ctx context.Context, tableName string, condition Condition) (int64, error) {
	query, args, err := a.builder.Delete(tableName).
		Where(condition.Equal).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete query: %w", err)
	}

	start := time.Now()
	res, err := a.DB.ExecContext(ctx, query, args...)
	metrics.ObserveDBRequest("delete", time.Since(start))
	if err != nil {
		return 0, fmt.Errorf("failed to delete record: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted records: %w", err)
	}
	return affected, nil
}

// Get читает одну запись по условию; ErrNotFound, если записи нет
func (a *SQLAdapter) Get(ctx context.Context, dest interface{}, tableName string, condition Condition) error {
	query, args, err := a.builder.Select("*").
		From(tableName).
		Where(condition.Equal).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build select query: %w", err)
	}

	start := time.Now()
	err = a.DB.GetContext(ctx, dest, query, args...)
	metrics.ObserveDBRequest("get", time.Since(start))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get record: %w", err)
	}

	return nil
}

// List читает все записи по условию; порядок — как вернет хранилище
func (a *SQLAdapter) List(ctx context.Context, dest interface{}, tableName string, condition Condition) error {
	query, args, err := a.builder.Select("*").
		From(tableName).
		Where(condition.Equal).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build select query: %w", err)
	}

	start := time.Now()
	err = a.DB.SelectContext(ctx, dest, query, args...)
	metrics.ObserveDBRequest("list", time.Since(start))
	if err != nil {
		return fmt.Errorf("failed to select records: %w", err)
	}

	return nil
}
