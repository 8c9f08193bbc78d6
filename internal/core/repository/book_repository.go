package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/Thanaphat465415241003/book-tracker-app/internal/core/entity"
	"github.com/Thanaphat465415241003/book-tracker-app/internal/infrastructure/db/adapter"
)

var ErrBookNotFound = errors.New("book not found")

const booksTable = "books"

type BookRepository interface {
	Create(ctx context.Context, book entity.Book) (entity.Book, error)
	GetByID(ctx context.Context, id string) (entity.Book, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Book, error)
	Update(ctx context.Context, id string, changes map[string]interface{}) (entity.Book, error)
	Delete(ctx context.Context, id string) error
}

type bookRepository struct {
	adapter *adapter.SQLAdapter
}

func NewBookRepository(sqlAdapter *adapter.SQLAdapter) BookRepository {
	return &bookRepository{adapter: sqlAdapter}
}

func (r *bookRepository) Create(ctx context.Context, book entity.Book) (entity.Book, error) {
	book.ID = uuid.NewString()
	book.CreatedAt = time.Now()

	data := map[string]interface{}{
		"id":         book.ID,
		"user_id":    book.UserID,
		"title":      book.Title,
		"author":     book.Author,
		"status":     string(book.Status),
		"publisher":  book.Publisher,
		"category":   book.Category,
		"created_at": book.CreatedAt,
	}
	if err := r.adapter.Insert(ctx, booksTable, data); err != nil {
		return entity.Book{}, fmt.Errorf("failed to create book: %w", err)
	}

	return book, nil
}

func (r *bookRepository) GetByID(ctx context.Context, id string) (entity.Book, error) {
	var book entity.Book
	err := r.adapter.Get(ctx, &book, booksTable, adapter.Condition{Equal: sq.Eq{"id": id}})
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return entity.Book{}, ErrBookNotFound
		}
		return entity.Book{}, fmt.Errorf("failed to get book: %w", err)
	}
	return book, nil
}

// ListByUser возвращает книги владельца; порядок не гарантируется
func (r *bookRepository) ListByUser(ctx context.Context, userID string) ([]entity.Book, error) {
	books := []entity.Book{}
	err := r.adapter.List(ctx, &books, booksTable, adapter.Condition{Equal: sq.Eq{"user_id": userID}})
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

// Update применяет только переданные колонки и возвращает обновленную книгу
func (r *bookRepository) Update(ctx context.Context, id string, changes map[string]interface{}) (entity.Book, error) {
	err := r.adapter.Update(ctx, booksTable, changes, adapter.Condition{Equal: sq.Eq{"id": id}})
	if err != nil {
		return entity.Book{}, fmt.Errorf("failed to update book: %w", err)
	}
	return r.GetByID(ctx, id)
}

// Delete удаляет книгу насовсем; повторное удаление того же id — ErrBookNotFound
func (r *bookRepository) Delete(ctx context.Context, id string) error {
	affected, err := r.adapter.Delete(ctx, booksTable, adapter.Condition{Equal: sq.Eq{"id": id}})
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if affected == 0 {
		return ErrBookNotFound
	}
	return nil
}
