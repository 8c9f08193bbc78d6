package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Thanaphat465415241003/book-tracker-app/internal/core/entity"
	"github.com/Thanaphat465415241003/book-tracker-app/internal/core/repository"
)

var (
	ErrUserNotFound      = repository.ErrUserNotFound
	ErrUserAlreadyExists = repository.ErrUserAlreadyExists

	// ErrInvalidCredentials возвращается и для неизвестного email, и для
	// неверного пароля — ответ не раскрывает, какая проверка не прошла
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrMissingCredentials = errors.New("email and password are required")
)

// TokenIssuer выпускает сессионный токен для идентификатора пользователя
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// AuthService регистрация и вход: хэширование паролей и выдача токенов
type AuthService struct {
	repo   repository.UserRepository
	tokens TokenIssuer
}

func NewAuthService(repo repository.UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register создает пользователя с производным отображаемым именем
// (локальная часть email) и возвращает выданный токен
func (s *AuthService) Register(ctx context.Context, email, password string) (entity.AuthResponse, error) {
	if email == "" || password == "" {
		return entity.AuthResponse{}, ErrMissingCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entity.AuthResponse{}, err
	}

	user := entity.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		Name:         strings.Split(email, "@")[0],
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return entity.AuthResponse{}, err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return entity.AuthResponse{}, err
	}

	return entity.AuthResponse{
		ID:    created.ID,
		Name:  created.Name,
		Email: created.Email,
		Token: token,
	}, nil
}

// Login проверяет учетные данные и возвращает свежий токен
func (s *AuthService) Login(ctx context.Context, email, password string) (entity.AuthResponse, error) {
	if email == "" || password == "" {
		return entity.AuthResponse{}, ErrMissingCredentials
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return entity.AuthResponse{}, ErrInvalidCredentials
		}
		return entity.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return entity.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return entity.AuthResponse{}, err
	}

	return entity.AuthResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	}, nil
}
