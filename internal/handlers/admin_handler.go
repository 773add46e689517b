package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/careernest/backend/internal/models"
	"github.com/careernest/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AdminHandler handles platform administration: stats, user management and
// content moderation
type AdminHandler struct {
	userRepository        repositories.UserRepository
	postRepository        repositories.PostRepository
	applicationRepository repositories.ApplicationRepository
	connectionRepository  repositories.ConnectionRepository
	opportunityRepository repositories.OpportunityRepository
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(userRepo repositories.UserRepository, postRepo repositories.PostRepository, appRepo repositories.ApplicationRepository, connRepo repositories.ConnectionRepository, oppRepo repositories.OpportunityRepository) *AdminHandler {
	return &AdminHandler{
		userRepository:        userRepo,
		postRepository:        postRepo,
		applicationRepository: appRepo,
		connectionRepository:  connRepo,
		opportunityRepository: oppRepo,
	}
}

// RegisterAdminRoutes registers admin routes, all gated by AdminOnly
func (h *AdminHandler) RegisterAdminRoutes(g *echo.Group) {
	g.Use(h.AdminOnly)
	g.GET("/stats", h.Stats)
	g.GET("/users", h.Users)
	g.PUT("/users/:id/role", h.UpdateUserRole)
	g.DELETE("/users/:id", h.DeleteUser)
	g.GET("/posts", h.Posts)
	g.DELETE("/posts/:id", h.DeletePost)
}

// AdminOnly rejects callers whose stored role is not admin. The role is
// re-read from the database, not trusted from the token.
func (h *AdminHandler) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := actorID(c)
		if err != nil {
			return err
		}
		user, err := h.userRepository.GetByID(c.Request().Context(), userID)
		if err != nil {
			return echo.NewHTTPError(http.StatusForbidden, "Access denied. Admin only.")
		}
		if user.Role != models.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "Access denied. Admin only.")
		}
		return next(c)
	}
}

// Stats returns platform-wide counts for the admin dashboard
func (h *AdminHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	totalUsers, err := h.userRepository.Count(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	usersByRole := echo.Map{}
	for _, role := range []models.Role{models.RoleCandidate, models.RoleRecruiter, models.RoleMentor, models.RoleAdmin} {
		count, err := h.userRepository.CountByRole(ctx, role)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		usersByRole[string(role)] = count
	}

	newThisWeek, err := h.userRepository.CountSince(ctx, time.Now().Add(-7*24*time.Hour))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	totalPosts, err := h.postRepository.Count(ctx, bson.M{})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	totalApplications, err := h.applicationRepository.Count(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	statusCounts, err := h.applicationRepository.CountByStatus(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	applicationsByStatus := echo.Map{}
	for _, sc := range statusCounts {
		applicationsByStatus[string(sc.Status)] = sc.Count
	}

	totalOpportunities, err := h.opportunityRepository.Count(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"total_users":            totalUsers,
		"users_by_role":          usersByRole,
		"new_users_this_week":    newThisWeek,
		"total_posts":            totalPosts,
		"total_applications":     totalApplications,
		"applications_by_status": applicationsByStatus,
		"total_opportunities":    totalOpportunities,
	})
}

// Users lists users with role/search filters, sorting and pagination
func (h *AdminHandler) Users(c echo.Context) error {
	page, _ := strconv.ParseInt(c.QueryParam("page"), 10, 64)
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	if limit == 0 {
		limit = 20
	}

	users, total, err := h.userRepository.AdminList(c.Request().Context(),
		c.QueryParam("role"), c.QueryParam("search"), c.QueryParam("sort"), page, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	pages := total / limit
	if total%limit != 0 {
		pages++
	}

	return c.JSON(http.StatusOK, echo.Map{
		"users": users,
		"pagination": echo.Map{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": pages,
		},
	})
}

// UpdateUserRole changes a user's role
func (h *AdminHandler) UpdateUserRole(c echo.Context) error {
	targetID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	var req struct {
		Role string `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	role := models.Role(req.Role)
	if !role.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid role")
	}

	user, err := h.userRepository.UpdateFields(c.Request().Context(), targetID, bson.M{"role": role})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteUser removes a user and cascades over their posts, applications and
// connection edges
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	adminID, err := actorID(c)
	if err != nil {
		return err
	}
	targetID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}
	if targetID == adminID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot delete yourself")
	}

	ctx := c.Request().Context()

	if _, err := h.userRepository.GetByID(ctx, targetID); err != nil {
		if err == mongo.ErrNoDocuments {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.postRepository.DeleteByUser(ctx, targetID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := h.applicationRepository.DeleteByUser(ctx, targetID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := h.connectionRepository.DeleteByUser(ctx, targetID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := h.userRepository.Delete(ctx, targetID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"msg": "User deleted"})
}

// Posts lists all posts for moderation, newest first
func (h *AdminHandler) Posts(c echo.Context) error {
	page, _ := strconv.ParseInt(c.QueryParam("page"), 10, 64)
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	if limit == 0 {
		limit = 20
	}

	ctx := c.Request().Context()

	posts, err := h.postRepository.Find(ctx, bson.M{}, (page-1)*limit, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	total, err := h.postRepository.Count(ctx, bson.M{})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	pages := total / limit
	if total%limit != 0 {
		pages++
	}

	return c.JSON(http.StatusOK, echo.Map{
		"posts": posts,
		"pagination": echo.Map{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": pages,
		},
	})
}

// DeletePost removes any post regardless of owner
func (h *AdminHandler) DeletePost(c echo.Context) error {
	postID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	if err := h.postRepository.Delete(c.Request().Context(), postID); err != nil {
		if err == mongo.ErrNoDocuments {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "Post removed"})
}
