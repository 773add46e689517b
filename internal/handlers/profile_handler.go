package handlers

import (
	"net/http"
	"strings"

	"github.com/careernest/backend/internal/models"
	"github.com/careernest/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
)

// ProfileHandler handles the authenticated user's own profile
type ProfileHandler struct {
	userRepository repositories.UserRepository
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(userRepo repositories.UserRepository) *ProfileHandler {
	return &ProfileHandler{userRepository: userRepo}
}

// RegisterProfileRoutes registers profile-related routes
func (h *ProfileHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/me", h.Me)
	g.POST("/me", h.UpdateMe)
}

// Me returns the caller's account
func (h *ProfileHandler) Me(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	user, err := h.userRepository.GetByID(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateMe applies a partial profile update. Absent fields are left alone;
// skills may arrive as an array or a comma-separated string.
func (h *ProfileHandler) UpdateMe(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()

	set := bson.M{}
	if req.Username != "" {
		existing, err := h.userRepository.GetByUsername(ctx, req.Username)
		if err == nil && existing.ID != userID {
			return echo.NewHTTPError(http.StatusBadRequest, "Username is already taken")
		}
		set["username"] = req.Username
	}
	if req.Headline != nil {
		set["headline"] = *req.Headline
	}
	if req.Bio != nil {
		set["bio"] = *req.Bio
	}
	if req.Education != nil {
		set["education"] = *req.Education
	}
	if req.Location != nil {
		set["location"] = *req.Location
	}
	if req.Industry != nil {
		set["industry"] = *req.Industry
	}
	if req.Website != nil {
		set["website"] = *req.Website
	}
	if skills, ok := normalizeSkills(req.Skills); ok {
		set["skills"] = skills
	}

	if len(set) == 0 {
		user, err := h.userRepository.GetByID(ctx, userID)
		if err != nil {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return c.JSON(http.StatusOK, user)
	}

	user, err := h.userRepository.UpdateFields(ctx, userID, set)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	return c.JSON(http.StatusOK, user)
}

// normalizeSkills accepts a JSON array of strings or a comma-separated string
func normalizeSkills(v interface{}) ([]string, bool) {
	switch s := v.(type) {
	case []interface{}:
		skills := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				if str = strings.TrimSpace(str); str != "" {
					skills = append(skills, str)
				}
			}
		}
		return skills, true
	case string:
		skills := []string{}
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				skills = append(skills, part)
			}
		}
		return skills, true
	}
	return nil, false
}
