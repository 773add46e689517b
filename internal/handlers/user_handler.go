package handlers

import (
	"net/http"
	"strings"

	"github.com/careernest/backend/internal/models"
	"github.com/careernest/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserHandler handles user directory requests
type UserHandler struct {
	userRepository repositories.UserRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{userRepository: userRepo}
}

// RegisterUserRoutes registers user-related routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("", h.ListUsers)
	g.PUT("/:id/role", h.UpdateRole)
}

// ListUsers filters users by role, skills and free-text search
func (h *UserHandler) ListUsers(c echo.Context) error {
	role := c.QueryParam("role")
	search := c.QueryParam("search")

	var skills []string
	if raw := c.QueryParam("skills"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				skills = append(skills, s)
			}
		}
	}

	users, err := h.userRepository.Search(c.Request().Context(), role, skills, search)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateRole changes a user's role
func (h *UserHandler) UpdateRole(c echo.Context) error {
	userID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	var req struct {
		Role string `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if !models.Role(req.Role).Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid role")
	}

	user, err := h.userRepository.UpdateFields(c.Request().Context(), userID, bson.M{"role": req.Role})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, user)
}
