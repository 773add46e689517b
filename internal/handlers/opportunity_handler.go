package handlers

import (
	"net/http"

	"github.com/careernest/backend/internal/models"
	"github.com/careernest/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// OpportunityHandler handles HTTP requests related to opportunity listings
type OpportunityHandler struct {
	opportunityRepository repositories.OpportunityRepository
}

// NewOpportunityHandler creates a new OpportunityHandler
func NewOpportunityHandler(oppRepo repositories.OpportunityRepository) *OpportunityHandler {
	return &OpportunityHandler{opportunityRepository: oppRepo}
}

// RegisterOpportunityRoutes registers opportunity-related routes
func (h *OpportunityHandler) RegisterOpportunityRoutes(g *echo.Group) {
	g.GET("", h.ListOpportunities)
	g.POST("", h.CreateOpportunity)
}

// ListOpportunities returns all listings, newest first
func (h *OpportunityHandler) ListOpportunities(c echo.Context) error {
	opportunities, err := h.opportunityRepository.FindAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, opportunities)
}

// CreateOpportunity creates a new listing
func (h *OpportunityHandler) CreateOpportunity(c echo.Context) error {
	var req models.CreateOpportunityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	opportunity := &models.Opportunity{
		Title:       req.Title,
		Company:     req.Company,
		Type:        models.OpportunityType(req.Type),
		Description: req.Description,
		Deadline:    req.Deadline,
		Reward:      req.Reward,
		Logo:        req.Logo,
	}

	if err := h.opportunityRepository.Create(c.Request().Context(), opportunity); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, opportunity)
}
