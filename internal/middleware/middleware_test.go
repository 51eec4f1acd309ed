package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/md_util/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(logger *slog.Logger, handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger))
	r.GET("/ping", append(handlers, func(c *gin.Context) {
		subject, _ := middleware.GetSubjectFromContext(c)
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("handled")
		c.String(http.StatusOK, subject)
	})...)
	return r
}

func TestStructuredLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter(slog.New(slog.NewTextHandler(&buf, nil)))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	requestID := w.Header().Get(middleware.RequestIDHeader)
	assert.NotEmpty(t, requestID)
	assert.Contains(t, buf.String(), "request_id="+requestID)
	assert.Contains(t, buf.String(), "msg=handled")
	assert.Contains(t, buf.String(), "status=200")
}

func TestStructuredLoggingMiddleware_KeepsValidRequestID(t *testing.T) {
	r := newRouter(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	id := "0b0c7d4c-58cb-4b5d-9d0d-1f35b1a0b3a2"

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, id)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, id, w.Header().Get(middleware.RequestIDHeader))
}

func TestGetLoggerFromCtx_DefaultsWhenMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, middleware.LoggerFromCtx(req.Context()))
	assert.Equal(t, slog.Default(), middleware.GetLoggerFromCtx(req.Context()))
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), middleware.AuthMiddleware(testSecret, "md-util"))

	valid, err := middleware.IssueToken(testSecret, "md-util", "reporting-client", time.Hour)
	require.NoError(t, err)
	expired, err := middleware.IssueToken(testSecret, "md-util", "reporting-client", -time.Hour)
	require.NoError(t, err)
	wrongIssuer, err := middleware.IssueToken(testSecret, "someone-else", "reporting-client", time.Hour)
	require.NoError(t, err)
	wrongSecret, err := middleware.IssueToken("other-secret", "md-util", "reporting-client", time.Hour)
	require.NoError(t, err)
	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "md-util",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"valid token", "Bearer " + valid, http.StatusOK, "reporting-client"},
		{"missing header", "", http.StatusUnauthorized, "Authorization header required"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "Bearer {token}"},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, "Token has expired"},
		{"wrong issuer", "Bearer " + wrongIssuer, http.StatusUnauthorized, "Invalid token"},
		{"wrong secret", "Bearer " + wrongSecret, http.StatusUnauthorized, "Invalid token"},
		{"no subject", "Bearer " + noSubject, http.StatusUnauthorized, "Invalid token claims"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestRateLimit(t *testing.T) {
	limiterInstance, err := middleware.NewRateLimiter("2-M")
	require.NoError(t, err)
	r := newRouter(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), middleware.RateLimit(limiterInstance))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewRateLimiter_InvalidFormat(t *testing.T) {
	_, err := middleware.NewRateLimiter("lots")
	assert.Error(t, err)
}
