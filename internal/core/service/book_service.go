package service

import (
	"context"
	"errors"

	"github.com/Thanaphat465415241003/book-tracker-app/internal/core/entity"
	"github.com/Thanaphat465415241003/book-tracker-app/internal/core/repository"
)

var (
	ErrBookNotFound = repository.ErrBookNotFound

	// ErrNotOwner аутентифицированный пользователь не владеет книгой
	ErrNotOwner = errors.New("user not authorized")

	ErrMissingTitleAuthor = errors.New("title and author are required")
	ErrInvalidStatus      = errors.New("invalid book status")
)

// BookService CRUD над книгами с проверкой владельца.
// userId книги назначается при создании и служит единственной
// проверкой авторизации.
type BookService struct {
	repo repository.BookRepository
}

func NewBookService(repo repository.BookRepository) *BookService {
	return &BookService{repo: repo}
}

// List возвращает все книги пользователя
func (s *BookService) List(ctx context.Context, userID string) ([]entity.Book, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Create добавляет книгу с умолчаниями для опущенных полей
func (s *BookService) Create(ctx context.Context, userID string, req entity.CreateBookRequest) (entity.Book, error) {
	if req.Title == "" || req.Author == "" {
		return entity.Book{}, ErrMissingTitleAuthor
	}

	status := req.Status
	if status == "" {
		status = entity.StatusNotRead
	}
	if !status.Valid() {
		return entity.Book{}, ErrInvalidStatus
	}

	book := entity.Book{
		UserID:    userID,
		Title:     req.Title,
		Author:    req.Author,
		Status:    status,
		Publisher: req.Publisher,
		Category:  req.Category,
	}

	return s.repo.Create(ctx, book)
}

// Update применяет патч к книге после проверки существования и владельца
func (s *BookService) Update(ctx context.Context, bookID, userID string, patch entity.BookPatch) (entity.Book, error) {
	book, err := s.repo.GetByID(ctx, bookID)
	if err != nil {
		return entity.Book{}, err
	}
	if book.UserID != userID {
		return entity.Book{}, ErrNotOwner
	}

	if patch.Status != nil && !patch.Status.Valid() {
		return entity.Book{}, ErrInvalidStatus
	}

	changes := patch.Changes()
	if len(changes) == 0 {
		return entity.Book{}, ErrEmptyUpdate
	}

	return s.repo.Update(ctx, bookID, changes)
}

// Delete удаляет книгу после тех же проверок, что и Update
func (s *BookService) Delete(ctx context.Context, bookID, userID string) error {
	book, err := s.repo.GetByID(ctx, bookID)
	if err != nil {
		return err
	}
	if book.UserID != userID {
		return ErrNotOwner
	}

	return s.repo.Delete(ctx, bookID)
}
