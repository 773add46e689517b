package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/careernest/backend/internal/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, method jwt.SigningMethod, expiresAt time.Time) string {
	t.Helper()
	claims := &models.JwtCustomClaims{
		UserID: "64b0c68f2a5d4e0012345678",
		Role:   "candidate",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func invoke(token string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set(TokenHeader, token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := AuthMiddleware(testSecret)(func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get(ContextUserIDKey).(string))
	})
	return rec, handler(c)
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("valid token passes and sets user id", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.SigningMethodHS256, time.Now().Add(time.Hour))
		rec, err := invoke(token)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "64b0c68f2a5d4e0012345678", rec.Body.String())
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		_, err := invoke("")
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
		assert.Equal(t, "No token, authorization denied", httpErr.Message)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.SigningMethodHS256, time.Now().Add(-time.Hour))
		_, err := invoke(token)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		token := signToken(t, "other-secret", jwt.SigningMethodHS256, time.Now().Add(time.Hour))
		_, err := invoke(token)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := invoke("not.a.jwt")
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}
