package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Thanaphat465415241003/book-tracker-app/internal/core/entity"
	"github.com/Thanaphat465415241003/book-tracker-app/internal/core/repository"
)

// MockBookRepository implements repository.BookRepository
type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) Create(ctx context.Context, book entity.Book) (entity.Book, error) {
	args := m.Called(ctx, book)
	if args.Get(0) == nil {
		return entity.Book{}, args.Error(1)
	}
	return args.Get(0).(entity.Book), args.Error(1)
}

func (m *MockBookRepository) GetByID(ctx context.Context, id string) (entity.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return entity.Book{}, args.Error(1)
	}
	return args.Get(0).(entity.Book), args.Error(1)
}

func (m *MockBookRepository) ListByUser(ctx context.Context, userID string) ([]entity.Book, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Book), args.Error(1)
}

func (m *MockBookRepository) Update(ctx context.Context, id string, changes map[string]interface{}) (entity.Book, error) {
	args := m.Called(ctx, id, changes)
	if args.Get(0) == nil {
		return entity.Book{}, args.Error(1)
	}
	return args.Get(0).(entity.Book), args.Error(1)
}

func (m *MockBookRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func statusPtr(s entity.BookStatus) *entity.BookStatus { return &s }

// TestBookService_Create_Defaults опущенные поля получают умолчания
func TestBookService_Create_Defaults(t *testing.T) {
	mockRepo := new(MockBookRepository)
	svc := NewBookService(mockRepo)
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.MatchedBy(func(b entity.Book) bool {
		return b.UserID == "u1" &&
			b.Title == "Dune" &&
			b.Author == "Herbert" &&
			b.Status == entity.StatusNotRead &&
			b.Publisher == "" &&
			b.Category == ""
	})).Return(entity.Book{ID: "b1", UserID: "u1", Title: "Dune", Author: "Herbert", Status: entity.StatusNotRead}, nil)

	book, err := svc.Create(ctx, "u1", entity.CreateBookRequest{Title: "Dune", Author: "Herbert"})

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusNotRead, book.Status)
	mockRepo.AssertExpectations(t)
}

// TestBookService_Create_MissingFields без title или author книга не создается
func TestBookService_Create_MissingFields(t *testing.T) {
	mockRepo := new(MockBookRepository)
	svc := NewBookService(mockRepo)
	ctx := context.Background()

	_, err := svc.Create(ctx, "u1", entity.CreateBookRequest{Author: "Herbert"})
	assert.ErrorIs(t, err, ErrMissingTitleAuthor)

	_, err = svc.Create(ctx, "u1", entity.CreateBookRequest{Title: "Dune"})
	assert.ErrorIs(t, err, ErrMissingTitleAuthor)

	mockRepo.AssertNotCalled(t, "Create")
}

// TestBookService_Create_InvalidStatus значение вне перечисления отклоняется
func TestBookService_Create_InvalidStatus(t *testing.T) {
	mockRepo := new(MockBookRepository)
	svc := NewBookService(mockRepo)
	ctx := context.Background()

	_, err := svc.Create(ctx, "u1", entity.CreateBookRequest{
		Title:  "Dune",
		Author: "Herbert",
		Status: "abandoned",
	})

	assert.ErrorIs(t, err, ErrInvalidStatus)
	mockRepo.AssertNotCalled(t, "Create")
}

// TestBookService_Update_PartialFields меняется только переданный статус
func TestBookService_Update_PartialFields(t *testing.T) {
	mockRepo := new(MockBookRepository)
	svc := NewBookService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, "b1").
		Return(entity.Book{ID: "b1", UserID: "u1", Title: "Dune", Status: entity.StatusNotRead}, nil)
	expected := map[string]interface{}{"status": "reading"}
	mockRepo.On("Update", ctx, "b1", expected).
		Return(entity.Book{ID: "b1", UserID: "u1", Title: "Dune", Status: entity.StatusReading}, nil)

	book, err := svc.Update(ctx, "b1", "u1", entity.BookPatch{Status: statusPtr(entity.StatusReading)})

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusReading, book.Status)
	assert.Equal(t, "Dune", book.Title)
	mockRepo.AssertExpectations(t)
}

// TestBookService_Update_NotOwner чужая книга недоступна для изменения
func TestBookService_Update_NotOwner(t *testing.T) {
	mockRepo := new(MockBookRepository)
	svc := NewBookService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, "b1").
		Return(entity.Book{ID: "b1", UserID: "u1"}, nil)

	_, err := svc.Update(ctx, "b1", "u2", entity.BookPatch{Status: statusPtr(entity.StatusReading)})

	assert.ErrorIs(t, err, ErrNotOwner)
	mockRepo.AssertNotCalled(t, "Update")
}

// TestBookService_Update_NotFound проверка существования идет первой
func TestBookService_Update_NotFound(t *testing.T) {
	mockRepo := new(MockBookRepository)
	svc := NewBookService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, "ghost").Return(nil, repository.ErrBookNotFound)

	_, err := svc.Update(ctx, "ghost", "u1", entity.BookPatch{Status: statusPtr(entity.StatusReading)})
	assert.ErrorIs(t, err, ErrBookNotFound)
}

// TestBookService_Update_Empty патч без распознанных полей
func TestBookService_Update_Empty(t *testing.T) {
	mockRepo := new(MockBookRepository)
	svc := NewBookService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, "b1").
		Return(entity.Book{ID: "b1", UserID: "u1"}, nil)

	_, err := svc.Update(ctx, "b1", "u1", entity.BookPatch{})

	assert.ErrorIs(t, err, ErrEmptyUpdate)
	mockRepo.AssertNotCalled(t, "Update")
}

// TestBookService_Delete_Owner владелец удаляет книгу
func TestBookService_Delete_Owner(t *testing.T) {
	mockRepo := new(MockBookRepository)
	svc := NewBookService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, "b1").
		Return(entity.Book{ID: "b1", UserID: "u1"}, nil)
	mockRepo.On("Delete", ctx, "b1").Return(nil)

	assert.NoError(t, svc.Delete(ctx, "b1", "u1"))
	mockRepo.AssertExpectations(t)
}

// TestBookService_Delete_NotOwner те же проверки, что и у Update
func TestBookService_Delete_NotOwner(t *testing.T) {
	mockRepo := new(MockBookRepository)
	svc := NewBookService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, "b1").
		Return(entity.Book{ID: "b1", UserID: "u1"}, nil)

	err := svc.Delete(ctx, "b1", "u2")

	assert.ErrorIs(t, err, ErrNotOwner)
	mockRepo.AssertNotCalled(t, "Delete")
}

// TestBookService_List книги возвращаются без изменений
func TestBookService_List(t *testing.T) {
	mockRepo := new(MockBookRepository)
	svc := NewBookService(mockRepo)
	ctx := context.Background()

	books := []entity.Book{{ID: "b1", UserID: "u1", Title: "Dune"}}
	mockRepo.On("ListByUser", ctx, "u1").Return(books, nil)

	got, err := svc.List(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, books, got)
}
