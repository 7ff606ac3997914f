package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sharespace/backend/internal/models"
	"github.com/sharespace/backend/internal/repositories"
)

// UserHandler handles profile-related HTTP requests
type UserHandler struct {
	userRepository repositories.UserRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{userRepository: userRepo}
}

// RegisterProfileRoutes registers the caller's profile routes
func (h *UserHandler) RegisterProfileRoutes(protected *echo.Group) {
	protected.GET("/users/me", h.GetProfile)
	protected.PUT("/users/me", h.UpdateProfile)
}

// GetProfile returns the authenticated caller's profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := h.userRepository.GetUserByID(c.Request().Context(), callerID(c))
	if err != nil {
		return aggregateError(err, "User not found")
	}

	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

// UpdateProfile updates the caller's name and avatar
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	user, err := h.userRepository.GetUserByID(ctx, callerID(c))
	if err != nil {
		return aggregateError(err, "User not found")
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.ProfilePictureURL != "" {
		user.ProfilePictureURL = req.ProfilePictureURL
	}
	if err := h.userRepository.UpdateUser(ctx, user); err != nil {
		return aggregateError(err, "User not found")
	}

	return c.JSON(http.StatusOK, echo.Map{"user": user})
}
