package controller

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Thanaphat465415241003/book-tracker-app/internal/core/entity"
	"github.com/Thanaphat465415241003/book-tracker-app/internal/core/service"
	"github.com/Thanaphat465415241003/book-tracker-app/internal/infrastructure/token"
	"github.com/Thanaphat465415241003/book-tracker-app/pkg/responder"
)

type UserController struct {
	userService *service.UserService
	responder   responder.Responder
	logger      *zap.SugaredLogger
}

func NewUserController(userService *service.UserService, responder responder.Responder, logger *zap.SugaredLogger) *UserController {
	return &UserController{
		userService: userService,
		responder:   responder,
		logger:      logger,
	}
}

// GetProfile godoc
// @Summary Get current user profile
// @Description Get the authenticated user's profile, password excluded
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} entity.User
// @Failure 401 {object} responder.ErrorResponse
// @Failure 404 {object} responder.ErrorResponse
// @Failure 500 {object} responder.ErrorResponse
// @Router /api/users/profile [get]
func (c *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := token.UserIDFromContext(r.Context())
	if !ok {
		c.responder.Error(w, http.StatusUnauthorized, "Not authorized, token failed")
		return
	}

	user, err := c.userService.GetProfile(r.Context(), userID)
	if err != nil {
		// токен с валидным id не должен сюда попадать, но проверяем
		if errors.Is(err, service.ErrUserNotFound) {
			c.responder.Error(w, http.StatusNotFound, "User not found")
			return
		}
		c.logger.Errorw("failed to get profile", "err", err, "userId", userID)
		c.responder.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	c.responder.Respond(w, http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Update current user profile
// @Description Apply a partial profile update; only fields present in the body are changed
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body entity.ProfilePatch true "Profile fields to update"
// @Success 200 {object} entity.User
// @Failure 400 {object} responder.ErrorResponse
// @Failure 401 {object} responder.ErrorResponse
// @Failure 404 {object} responder.ErrorResponse
// @Failure 500 {object} responder.ErrorResponse
// @Router /api/users/profile [put]
func (c *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := token.UserIDFromContext(r.Context())
	if !ok {
		c.responder.Error(w, http.StatusUnauthorized, "Not authorized, token failed")
		return
	}

	var patch entity.ProfilePatch
	if err := c.responder.Decode(r, &patch); err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := c.userService.UpdateProfile(r.Context(), userID, patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyUpdate):
			c.responder.Error(w, http.StatusBadRequest, "No valid data provided for update")
		case errors.Is(err, service.ErrInvalidReadingGoal):
			c.responder.Error(w, http.StatusBadRequest, "Reading goal must be a non-negative number")
		case errors.Is(err, service.ErrUserNotFound):
			c.responder.Error(w, http.StatusNotFound, "User not found")
		default:
			c.logger.Errorw("failed to update profile", "err", err, "userId", userID)
			c.responder.Error(w, http.StatusInternalServerError, "Server error while updating profile")
		}
		return
	}

	c.responder.Respond(w, http.StatusOK, user)
}
