package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/Thanaphat465415241003/book-tracker-app/internal/core/entity"
	"github.com/Thanaphat465415241003/book-tracker-app/internal/core/repository"
)

// MockUserRepository implements repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user entity.User) (entity.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return entity.User{}, args.Error(1)
	}
	return args.Get(0).(entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return entity.User{}, args.Error(1)
	}
	return args.Get(0).(entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return entity.User{}, args.Error(1)
	}
	return args.Get(0).(entity.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id string, changes map[string]interface{}) (entity.User, error) {
	args := m.Called(ctx, id, changes)
	if args.Get(0) == nil {
		return entity.User{}, args.Error(1)
	}
	return args.Get(0).(entity.User), args.Error(1)
}

// stubIssuer детерминированный выпуск токенов для тестов
type stubIssuer struct{}

func (stubIssuer) Issue(userID string) (string, error) {
	return "token-for-" + userID, nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)
	return string(h)
}

// TestAuthService_Register_Success успешная регистрация: пароль хэшируется,
// имя выводится из локальной части email, возвращается токен
func TestAuthService_Register_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewAuthService(mockRepo, stubIssuer{})
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.MatchedBy(func(u entity.User) bool {
		if u.Email != "a@x.com" || u.Name != "a" {
			return false
		}
		// в хранилище уходит хэш, а не пароль
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pw123")) == nil
	})).Return(entity.User{ID: "u1", Email: "a@x.com", Name: "a"}, nil)

	resp, err := svc.Register(ctx, "a@x.com", "pw123")

	assert.NoError(t, err)
	assert.Equal(t, "u1", resp.ID)
	assert.Equal(t, "a@x.com", resp.Email)
	assert.Equal(t, "a", resp.Name)
	assert.Equal(t, "token-for-u1", resp.Token)
	mockRepo.AssertExpectations(t)
}

// TestAuthService_Register_MissingFields отсутствие email или пароля
func TestAuthService_Register_MissingFields(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewAuthService(mockRepo, stubIssuer{})
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "pw123")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = svc.Register(ctx, "a@x.com", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	mockRepo.AssertNotCalled(t, "Create")
}

// TestAuthService_Register_Duplicate повторная регистрация того же email
func TestAuthService_Register_Duplicate(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewAuthService(mockRepo, stubIssuer{})
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.AnythingOfType("entity.User")).
		Return(nil, repository.ErrUserAlreadyExists)

	_, err := svc.Register(ctx, "a@x.com", "pw123")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

// TestAuthService_Login_Success вход с верным паролем
func TestAuthService_Login_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewAuthService(mockRepo, stubIssuer{})
	ctx := context.Background()

	mockRepo.On("GetByEmail", ctx, "a@x.com").Return(entity.User{
		ID:           "u1",
		Email:        "a@x.com",
		Name:         "a",
		PasswordHash: hashOf(t, "pw123"),
	}, nil)

	resp, err := svc.Login(ctx, "a@x.com", "pw123")

	assert.NoError(t, err)
	assert.Equal(t, "u1", resp.ID)
	assert.Equal(t, "token-for-u1", resp.Token)
}

// TestAuthService_Login_WrongPassword неверный пароль и неизвестный email
// дают одну и ту же ошибку — без утечки, какая проверка не прошла
func TestAuthService_Login_WrongPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewAuthService(mockRepo, stubIssuer{})
	ctx := context.Background()

	mockRepo.On("GetByEmail", ctx, "a@x.com").Return(entity.User{
		ID:           "u1",
		Email:        "a@x.com",
		PasswordHash: hashOf(t, "pw123"),
	}, nil)
	mockRepo.On("GetByEmail", ctx, "nobody@x.com").
		Return(nil, repository.ErrUserNotFound)

	_, errWrongPassword := svc.Login(ctx, "a@x.com", "wrong")
	_, errUnknownEmail := svc.Login(ctx, "nobody@x.com", "pw123")

	assert.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknownEmail, ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
}

// TestAuthService_Login_RepositoryError прочие ошибки хранилища проходят как есть
func TestAuthService_Login_RepositoryError(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewAuthService(mockRepo, stubIssuer{})
	ctx := context.Background()

	dbErr := errors.New("connection refused")
	mockRepo.On("GetByEmail", ctx, "a@x.com").Return(nil, dbErr)

	_, err := svc.Login(ctx, "a@x.com", "pw123")
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
