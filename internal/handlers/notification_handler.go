package handlers

import (
	"net/http"
	"strconv"

	"github.com/careernest/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
)

// NotificationHandler handles HTTP requests related to notifications
type NotificationHandler struct {
	notificationRepository repositories.NotificationRepository
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifRepo repositories.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notificationRepository: notifRepo}
}

// RegisterNotificationRoutes registers notification-related routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("", h.ListNotifications)
	g.PUT("/read/:id", h.MarkRead)
	g.PUT("/read-all", h.MarkAllRead)
	g.GET("/unread-count", h.UnreadCount)
}

// ListNotifications returns a page of the caller's notifications together
// with total and unread counts
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	page, _ := strconv.ParseInt(c.QueryParam("page"), 10, 64)
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	if limit == 0 {
		limit = 20
	}
	unreadOnly := c.QueryParam("unreadOnly") == "true"

	ctx := c.Request().Context()

	notifications, err := h.notificationRepository.FindByRecipient(ctx, userID, unreadOnly, (page-1)*limit, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	total, err := h.notificationRepository.Count(ctx, userID, unreadOnly)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	unreadCount, err := h.notificationRepository.Count(ctx, userID, true)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"notifications": notifications,
		"total":         total,
		"unread_count":  unreadCount,
	})
}

// MarkRead flips the isRead flag on one of the caller's notifications
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	notificationID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	notification, err := h.notificationRepository.GetByID(ctx, notificationID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return echo.NewHTTPError(http.StatusNotFound, "Notification not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if notification.Recipient != userID {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized")
	}

	if err := h.notificationRepository.MarkRead(ctx, notificationID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	notification.IsRead = true
	return c.JSON(http.StatusOK, notification)
}

// MarkAllRead flips every unread notification of the caller
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	if err := h.notificationRepository.MarkAllRead(c.Request().Context(), userID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "All notifications marked as read"})
}

// UnreadCount returns how many unread notifications the caller has
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	count, err := h.notificationRepository.Count(c.Request().Context(), userID, true)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}
