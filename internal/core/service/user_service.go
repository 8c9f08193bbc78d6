package service

import (
	"context"
	"errors"

	"github.com/Thanaphat465415241003/book-tracker-app/internal/core/entity"
	"github.com/Thanaphat465415241003/book-tracker-app/internal/core/repository"
)

var (
	// ErrEmptyUpdate в запросе на частичное обновление нет ни одного
	// распознанного поля
	ErrEmptyUpdate = errors.New("no valid data provided for update")

	ErrInvalidReadingGoal = errors.New("reading goal must be a non-negative number")
)

// UserService операции над профилем пользователя
type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// GetProfile возвращает профиль. Пароль наружу не отдается — поле
// исключено из сериализации на уровне сущности.
func (s *UserService) GetProfile(ctx context.Context, userID string) (entity.User, error) {
	return s.repo.GetByID(ctx, userID)
}

// UpdateProfile применяет только явно переданные поля патча
func (s *UserService) UpdateProfile(ctx context.Context, userID string, patch entity.ProfilePatch) (entity.User, error) {
	if patch.ReadingGoal != nil && *patch.ReadingGoal < 0 {
		return entity.User{}, ErrInvalidReadingGoal
	}

	changes := patch.Changes()
	if len(changes) == 0 {
		return entity.User{}, ErrEmptyUpdate
	}

	return s.repo.UpdateProfile(ctx, userID, changes)
}
