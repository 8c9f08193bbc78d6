package controller

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Thanaphat465415241003/book-tracker-app/internal/core/entity"
	"github.com/Thanaphat465415241003/book-tracker-app/internal/core/service"
	"github.com/Thanaphat465415241003/book-tracker-app/pkg/responder"
)

type AuthController struct {
	authService *service.AuthService
	responder   responder.Responder
	logger      *zap.SugaredLogger
}

func NewAuthController(authService *service.AuthService, responder responder.Responder, logger *zap.SugaredLogger) *AuthController {
	return &AuthController{
		authService: authService,
		responder:   responder,
		logger:      logger,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Register a new user with email and password, returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body entity.CredentialsRequest true "User registration data"
// @Success 201 {object} entity.AuthResponse
// @Failure 400 {object} responder.ErrorResponse
// @Failure 500 {object} responder.ErrorResponse
// @Router /api/users/register [post]
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req entity.CredentialsRequest
	if err := c.responder.Decode(r, &req); err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Please add all fields")
		return
	}

	resp, err := c.authService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			c.responder.Error(w, http.StatusBadRequest, "Please add all fields")
		case errors.Is(err, service.ErrUserAlreadyExists):
			// дубликат email отдается как 400, не 409 — так ведет себя API
			c.responder.Error(w, http.StatusBadRequest, "User already exists")
		default:
			c.logger.Errorw("user registration failed", "err", err)
			c.responder.Error(w, http.StatusInternalServerError, "User registration failed")
		}
		return
	}

	c.responder.Respond(w, http.StatusCreated, resp)
}

// Login godoc
// @Summary Authenticate a user
// @Description Verify credentials and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body entity.CredentialsRequest true "User credentials"
// @Success 200 {object} entity.AuthResponse
// @Failure 400 {object} responder.ErrorResponse
// @Failure 500 {object} responder.ErrorResponse
// @Router /api/users/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req entity.CredentialsRequest
	if err := c.responder.Decode(r, &req); err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Please provide email and password")
		return
	}

	resp, err := c.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			c.responder.Error(w, http.StatusBadRequest, "Please provide email and password")
		case errors.Is(err, service.ErrInvalidCredentials):
			c.responder.Error(w, http.StatusBadRequest, "Invalid credentials")
		default:
			c.logger.Errorw("login failed", "err", err)
			c.responder.Error(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	c.responder.Respond(w, http.StatusOK, resp)
}
