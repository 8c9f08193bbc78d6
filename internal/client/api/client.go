package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Thanaphat465415241003/book-tracker-app/internal/client/credentials"
	"github.com/Thanaphat465415241003/book-tracker-app/internal/core/entity"
	"github.com/Thanaphat465415241003/book-tracker-app/internal/infrastructure/cache"
	"github.com/Thanaphat465415241003/book-tracker-app/pkg/responder"
)

const booksCacheTTL = 5 * time.Minute

// APIError ошибка сервера: HTTP-статус и строка message из тела ответа
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// Client шлюз к REST API. Каждый исходящий запрос автоматически несет
// текущий bearer-токен из хранилища; без токена запрос уходит как есть —
// отказ в авторизации вернет сервер своим 401.
type Client struct {
	baseURL string
	http    *http.Client
	creds   *credentials.Store
	books   cache.Cache
}

// NewClient создает шлюз поверх хранилища токена и кэша списка книг
func NewClient(baseURL string, creds *credentials.Store, books cache.Cache) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		creds:   creds,
		books:   books,
	}
}

// Register регистрирует пользователя и сохраняет выданный токен
func (c *Client) Register(ctx context.Context, email, password string) (entity.AuthResponse, error) {
	var resp entity.AuthResponse
	req := entity.CredentialsRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/users/register", req, &resp); err != nil {
		return entity.AuthResponse{}, err
	}
	if err := c.creds.SignIn(resp.Token); err != nil {
		return entity.AuthResponse{}, err
	}
	return resp, nil
}

// Login выполняет вход и сохраняет выданный токен
func (c *Client) Login(ctx context.Context, email, password string) (entity.AuthResponse, error) {
	var resp entity.AuthResponse
	req := entity.CredentialsRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/users/login", req, &resp); err != nil {
		return entity.AuthResponse{}, err
	}
	if err := c.creds.SignIn(resp.Token); err != nil {
		return entity.AuthResponse{}, err
	}
	return resp, nil
}

// SignOut удаляет токен и сбрасывает кэш
func (c *Client) SignOut() error {
	c.invalidateBooks()
	return c.creds.SignOut()
}

// Profile возвращает профиль текущего пользователя
func (c *Client) Profile(ctx context.Context) (entity.User, error) {
	var user entity.User
	if err := c.do(ctx, http.MethodGet, "/api/users/profile", nil, &user); err != nil {
		return entity.User{}, err
	}
	return user, nil
}

// UpdateProfile отправляет частичное обновление профиля
func (c *Client) UpdateProfile(ctx context.Context, patch entity.ProfilePatch) (entity.User, error) {
	var user entity.User
	if err := c.do(ctx, http.MethodPut, "/api/users/profile", patch, &user); err != nil {
		return entity.User{}, err
	}
	return user, nil
}

// ListBooks возвращает книги пользователя через сквозной кэш:
// повторный вызов в пределах TTL не ходит в сеть, любая мутация
// или выход сбрасывают кэш
func (c *Client) ListBooks(ctx context.Context) ([]entity.Book, error) {
	key := c.booksCacheKey()
	if cached, ok := c.books.Get(key); ok {
		if books, ok := cached.([]entity.Book); ok {
			return books, nil
		}
	}

	var books []entity.Book
	if err := c.do(ctx, http.MethodGet, "/api/books", nil, &books); err != nil {
		return nil, err
	}

	c.books.Set(key, books, booksCacheTTL)
	return books, nil
}

// AddBook добавляет книгу
func (c *Client) AddBook(ctx context.Context, req entity.CreateBookRequest) (entity.Book, error) {
	var book entity.Book
	if err := c.do(ctx, http.MethodPost, "/api/books", req, &book); err != nil {
		return entity.Book{}, err
	}
	c.invalidateBooks()
	return book, nil
}

// UpdateBook отправляет частичное обновление книги
func (c *Client) UpdateBook(ctx context.Context, id string, patch entity.BookPatch) (entity.Book, error) {
	var book entity.Book
	if err := c.do(ctx, http.MethodPut, "/api/books/"+id, patch, &book); err != nil {
		return entity.Book{}, err
	}
	c.invalidateBooks()
	return book, nil
}

// DeleteBook удаляет книгу
func (c *Client) DeleteBook(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/books/"+id, nil, nil); err != nil {
		return err
	}
	c.invalidateBooks()
	return nil
}

func (c *Client) booksCacheKey() string {
	return "books:" + c.creds.Token()
}

func (c *Client) invalidateBooks() {
	c.books.Delete(c.booksCacheKey())
}

// do выполняет запрос, прикладывает токен и разбирает JSON ответ.
// Ответы со статусом >= 400 превращаются в *APIError.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	if token := c.creds.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var errResp responder.ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr != nil || errResp.Message == "" {
			errResp.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: errResp.Message}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
