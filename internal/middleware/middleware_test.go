//go:build !integration

package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"influencerMDP/business/selection"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler
	e.Use(TraceID())

	admin := e.Group("/admin", AuthMiddleware(testSecret), AdminOnly())
	admin.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get("user_id").(string))
	})

	e.GET("/trace", func(c echo.Context) error {
		return c.String(http.StatusOK, selection.TraceIDFromContext(c.Request().Context()))
	})
	e.GET("/missing", func(c echo.Context) error {
		return fmt.Errorf("lookup: %w", selection.ErrRunNotFound)
	})
	e.GET("/boom", func(c echo.Context) error {
		return fmt.Errorf("database on fire")
	})
	return e
}

func do(e *echo.Echo, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAdminOnly(t *testing.T) {
	e := newEcho()

	admin, err := GenerateToken(testSecret, "7", "admin", time.Hour)
	require.NoError(t, err)
	user, err := GenerateToken(testSecret, "8", "user", time.Hour)
	require.NoError(t, err)
	expired, err := GenerateToken(testSecret, "7", "admin", -time.Minute)
	require.NoError(t, err)
	forged, err := GenerateToken("other-secret", "7", "admin", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		code  int
	}{
		{"admin", admin, http.StatusOK},
		{"non admin", user, http.StatusForbidden},
		{"expired", expired, http.StatusForbidden},
		{"wrong key", forged, http.StatusUnauthorized},
		{"no token", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, "/admin/ping", tt.token)
			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
		})
	}

	rec := do(e, "/admin/ping", admin)
	assert.Equal(t, "7", rec.Body.String())
}

func TestTraceID(t *testing.T) {
	e := newEcho()

	req := httptest.NewRequest(http.MethodGet, "/trace", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Body.String())
	assert.Equal(t, "req-123", rec.Header().Get(echo.HeaderXRequestID))

	rec = do(e, "/trace", "")
	assert.NotEmpty(t, rec.Body.String())
	assert.Equal(t, rec.Body.String(), rec.Header().Get(echo.HeaderXRequestID))
}

func TestErrorHandler(t *testing.T) {
	e := newEcho()

	rec := do(e, "/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"lookup: selection run not found"}`, rec.Body.String())

	rec = do(e, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, rec.Body.String())

	rec = do(e, "/nowhere", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
