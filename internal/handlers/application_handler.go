package handlers

import (
	"net/http"

	"github.com/careernest/backend/internal/models"
	"github.com/careernest/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplicationHandler handles HTTP requests related to applications
type ApplicationHandler struct {
	applicationRepository repositories.ApplicationRepository
	opportunityRepository repositories.OpportunityRepository
}

// NewApplicationHandler creates a new ApplicationHandler
func NewApplicationHandler(appRepo repositories.ApplicationRepository, oppRepo repositories.OpportunityRepository) *ApplicationHandler {
	return &ApplicationHandler{
		applicationRepository: appRepo,
		opportunityRepository: oppRepo,
	}
}

// RegisterApplicationRoutes registers application-related routes
func (h *ApplicationHandler) RegisterApplicationRoutes(g *echo.Group) {
	g.POST("/apply/:opportunityId", h.Apply)
	g.GET("/my-applications", h.MyApplications)
	g.DELETE("/:id", h.Withdraw)
}

// Apply submits an application; a user may apply to an opportunity only once
func (h *ApplicationHandler) Apply(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	opportunityID, err := pathObjectID(c, "opportunityId")
	if err != nil {
		return err
	}

	var req models.ApplyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()

	if _, err := h.opportunityRepository.GetByID(ctx, opportunityID); err != nil {
		if err == mongo.ErrNoDocuments {
			return echo.NewHTTPError(http.StatusNotFound, "Opportunity not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if _, err := h.applicationRepository.GetByUserAndOpportunity(ctx, userID, opportunityID); err == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "You have already applied to this opportunity")
	}

	application := &models.Application{
		User:        userID,
		Opportunity: opportunityID,
		Status:      models.ApplicationApplied,
		CoverLetter: req.CoverLetter,
		ResumeURL:   req.ResumeURL,
	}

	if err := h.applicationRepository.Create(ctx, application); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, application)
}

// MyApplications lists the caller's applications, most recent first
func (h *ApplicationHandler) MyApplications(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	applications, err := h.applicationRepository.FindByUser(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, applications)
}

// Withdraw deletes the caller's own application
func (h *ApplicationHandler) Withdraw(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	applicationID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	application, err := h.applicationRepository.GetByID(ctx, applicationID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return echo.NewHTTPError(http.StatusNotFound, "Application not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if application.User != userID {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized")
	}

	if err := h.applicationRepository.Delete(ctx, applicationID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"msg": "Application withdrawn successfully"})
}
