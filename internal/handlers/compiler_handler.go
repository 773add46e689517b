package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/careernest/backend/internal/judge0"
	"github.com/labstack/echo/v4"
)

// RunCodeRequest defines the request body for running code
type RunCodeRequest struct {
	Language string `json:"language"`
	Code     string `json:"code"`
	Stdin    string `json:"stdin"`
}

// CompilerHandler proxies code execution to Judge0
type CompilerHandler struct {
	client *judge0.Client
}

// NewCompilerHandler creates a new CompilerHandler
func NewCompilerHandler(client *judge0.Client) *CompilerHandler {
	return &CompilerHandler{client: client}
}

// RegisterCompilerRoutes registers the authenticated compiler routes
func (h *CompilerHandler) RegisterCompilerRoutes(g *echo.Group) {
	g.POST("/run", h.Run)
}

// Languages lists the supported languages. Public, requires no token.
func (h *CompilerHandler) Languages(c echo.Context) error {
	return c.JSON(http.StatusOK, judge0.Languages())
}

// Run submits code to Judge0 and waits for a terminal result
func (h *CompilerHandler) Run(c echo.Context) error {
	var req RunCodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if req.Code == "" || req.Language == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Code and language are required")
	}

	languageID, ok := judge0.LanguageID(req.Language)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Unsupported language: %s", req.Language))
	}

	result, err := h.client.Run(c.Request().Context(), languageID, req.Code, req.Stdin)
	if err != nil {
		if errors.Is(err, judge0.ErrNotConfigured) {
			return echo.NewHTTPError(http.StatusBadGateway, "Code execution service is not configured")
		}
		var upstream *judge0.UpstreamError
		if errors.As(err, &upstream) {
			return echo.NewHTTPError(http.StatusBadGateway,
				fmt.Sprintf("Failed to reach the code execution service. Last error: %s", upstream.LastError))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}
