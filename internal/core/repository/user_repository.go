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

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

const usersTable = "users"

type UserRepository interface {
	Create(ctx context.Context, user entity.User) (entity.User, error)
	GetByID(ctx context.Context, id string) (entity.User, error)
	GetByEmail(ctx context.Context, email string) (entity.User, error)
	UpdateProfile(ctx context.Context, id string, changes map[string]interface{}) (entity.User, error)
}

type userRepository struct {
	adapter *adapter.SQLAdapter
}

func NewUserRepository(sqlAdapter *adapter.SQLAdapter) UserRepository {
	return &userRepository{adapter: sqlAdapter}
}

// Create сохраняет нового пользователя. Уникальность email обеспечивается
// проверкой существования перед вставкой; проверка и вставка — два отдельных
// запроса, без транзакции (известная гонка, поведение зафиксировано как есть).
func (r *userRepository) Create(ctx context.Context, user entity.User) (entity.User, error) {
	_, err := r.GetByEmail(ctx, user.Email)
	if err == nil {
		return entity.User{}, ErrUserAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return entity.User{}, fmt.Errorf("failed to check user existence: %w", err)
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	data := map[string]interface{}{
		"id":             user.ID,
		"email":          user.Email,
		"password_hash":  user.PasswordHash,
		"name":           user.Name,
		"phone":          user.Phone,
		"bio":            user.Bio,
		"birth_date":     user.BirthDate,
		"reading_goal":   user.ReadingGoal,
		"favorite_genre": user.FavoriteGenre,
		"location":       user.Location,
		"created_at":     user.CreatedAt,
		"updated_at":     user.UpdatedAt,
	}
	if err := r.adapter.Insert(ctx, usersTable, data); err != nil {
		return entity.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (entity.User, error) {
	var user entity.User
	err := r.adapter.Get(ctx, &user, usersTable, adapter.Condition{Equal: sq.Eq{"id": id}})
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return entity.User{}, ErrUserNotFound
		}
		return entity.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	var user entity.User
	err := r.adapter.Get(ctx, &user, usersTable, adapter.Condition{Equal: sq.Eq{"email": email}})
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return entity.User{}, ErrUserNotFound
		}
		return entity.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// UpdateProfile применяет только переданные колонки и возвращает
// обновленного пользователя
func (r *userRepository) UpdateProfile(ctx context.Context, id string, changes map[string]interface{}) (entity.User, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return entity.User{}, err
	}

	changes["updated_at"] = time.Now()
	err := r.adapter.Update(ctx, usersTable, changes, adapter.Condition{Equal: sq.Eq{"id": id}})
	if err != nil {
		return entity.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return r.GetByID(ctx, id)
}
