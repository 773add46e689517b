package middleware

import (
	"net/http"

	"github.com/careernest/backend/internal/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

// TokenHeader is the custom header carrying the bearer token. The SPA sends
// the raw token here rather than an Authorization: Bearer scheme.
const TokenHeader = "x-auth-token"

// ContextUserIDKey is where the middleware stores the authenticated user's
// id (hex string) on the echo context.
const ContextUserIDKey = "userID"

// AuthMiddleware checks for a valid JWT in the x-auth-token header and
// injects the authenticated user id into the request context.
func AuthMiddleware(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := c.Request().Header.Get(TokenHeader)
			if tokenString == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "No token, authorization denied")
			}

			claims := &models.JwtCustomClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unexpected signing method")
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "Token is not valid")
			}

			c.Set(ContextUserIDKey, claims.UserID)
			return next(c)
		}
	}
}
