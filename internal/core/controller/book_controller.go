package controller

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Thanaphat465415241003/book-tracker-app/internal/core/entity"
	"github.com/Thanaphat465415241003/book-tracker-app/internal/core/service"
	"github.com/Thanaphat465415241003/book-tracker-app/internal/infrastructure/token"
	"github.com/Thanaphat465415241003/book-tracker-app/pkg/responder"
)

type BookController struct {
	bookService *service.BookService
	responder   responder.Responder
	logger      *zap.SugaredLogger
}

func NewBookController(bookService *service.BookService, responder responder.Responder, logger *zap.SugaredLogger) *BookController {
	return &BookController{
		bookService: bookService,
		responder:   responder,
		logger:      logger,
	}
}

// ListBooks godoc
// @Summary List books
// @Description List all books owned by the authenticated user
// @Tags books
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} entity.Book
// @Failure 401 {object} responder.ErrorResponse
// @Failure 500 {object} responder.ErrorResponse
// @Router /api/books [get]
func (c *BookController) ListBooks(w http.ResponseWriter, r *http.Request) {
	userID, ok := token.UserIDFromContext(r.Context())
	if !ok {
		c.responder.Error(w, http.StatusUnauthorized, "Not authorized, token failed")
		return
	}

	books, err := c.bookService.List(r.Context(), userID)
	if err != nil {
		c.logger.Errorw("failed to list books", "err", err, "userId", userID)
		c.responder.Error(w, http.StatusInternalServerError, "Server Error")
		return
	}

	c.responder.Respond(w, http.StatusOK, books)
}

// AddBook godoc
// @Summary Add a book
// @Description Create a book owned by the authenticated user
// @Tags books
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body entity.CreateBookRequest true "Book data"
// @Success 201 {object} entity.Book
// @Failure 400 {object} responder.ErrorResponse
// @Failure 401 {object} responder.ErrorResponse
// @Failure 500 {object} responder.ErrorResponse
// @Router /api/books [post]
func (c *BookController) AddBook(w http.ResponseWriter, r *http.Request) {
	userID, ok := token.UserIDFromContext(r.Context())
	if !ok {
		c.responder.Error(w, http.StatusUnauthorized, "Not authorized, token failed")
		return
	}

	var req entity.CreateBookRequest
	if err := c.responder.Decode(r, &req); err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	book, err := c.bookService.Create(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingTitleAuthor):
			c.responder.Error(w, http.StatusBadRequest, "Title and author are required")
		case errors.Is(err, service.ErrInvalidStatus):
			c.responder.Error(w, http.StatusBadRequest, "Invalid book status")
		default:
			c.logger.Errorw("failed to add book", "err", err, "userId", userID)
			c.responder.Error(w, http.StatusInternalServerError, "Server Error")
		}
		return
	}

	c.responder.Respond(w, http.StatusCreated, book)
}

// UpdateBook godoc
// @Summary Update a book
// @Description Apply a partial update to a book; only fields present in the body are changed
// @Tags books
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Book ID"
// @Param request body entity.BookPatch true "Book fields to update"
// @Success 200 {object} entity.Book
// @Failure 400 {object} responder.ErrorResponse
// @Failure 401 {object} responder.ErrorResponse
// @Failure 404 {object} responder.ErrorResponse
// @Failure 500 {object} responder.ErrorResponse
// @Router /api/books/{id} [put]
func (c *BookController) UpdateBook(w http.ResponseWriter, r *http.Request) {
	userID, ok := token.UserIDFromContext(r.Context())
	if !ok {
		c.responder.Error(w, http.StatusUnauthorized, "Not authorized, token failed")
		return
	}
	bookID := chi.URLParam(r, "id")

	var patch entity.BookPatch
	if err := c.responder.Decode(r, &patch); err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	book, err := c.bookService.Update(r.Context(), bookID, userID, patch)
	if err != nil {
		c.respondBookError(w, err, userID)
		return
	}

	c.responder.Respond(w, http.StatusOK, book)
}

// DeleteBook godoc
// @Summary Delete a book
// @Description Delete a book owned by the authenticated user; repeating the delete returns 404
// @Tags books
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Book ID"
// @Success 200 {object} responder.MessageResponse
// @Failure 401 {object} responder.ErrorResponse
// @Failure 404 {object} responder.ErrorResponse
// @Failure 500 {object} responder.ErrorResponse
// @Router /api/books/{id} [delete]
func (c *BookController) DeleteBook(w http.ResponseWriter, r *http.Request) {
	userID, ok := token.UserIDFromContext(r.Context())
	if !ok {
		c.responder.Error(w, http.StatusUnauthorized, "Not authorized, token failed")
		return
	}
	bookID := chi.URLParam(r, "id")

	if err := c.bookService.Delete(r.Context(), bookID, userID); err != nil {
		c.respondBookError(w, err, userID)
		return
	}

	c.responder.Respond(w, http.StatusOK, responder.MessageResponse{Message: "Book deleted successfully"})
}

// respondBookError общая схема статусов для операций над одной книгой
func (c *BookController) respondBookError(w http.ResponseWriter, err error, userID string) {
	switch {
	case errors.Is(err, service.ErrBookNotFound):
		c.responder.Error(w, http.StatusNotFound, "Book not found")
	case errors.Is(err, service.ErrNotOwner):
		// чужая книга отдается как 401, не 403 — так ведет себя API
		c.responder.Error(w, http.StatusUnauthorized, "User not authorized")
	case errors.Is(err, service.ErrEmptyUpdate):
		c.responder.Error(w, http.StatusBadRequest, "No valid data provided for update")
	case errors.Is(err, service.ErrInvalidStatus):
		c.responder.Error(w, http.StatusBadRequest, "Invalid book status")
	default:
		c.logger.Errorw("book operation failed", "err", err, "userId", userID)
		c.responder.Error(w, http.StatusInternalServerError, "Server Error")
	}
}
