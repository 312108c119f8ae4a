package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(NewRequestIDMiddleware())
	r.Use(mw...)
	r.Any("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("requestID")) })
	return r
}

func TestRequestID(t *testing.T) {
	r := newEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Len(t, w.Body.String(), 10)
	assert.Equal(t, w.Body.String(), w.Header().Get("X-Request-ID"))
}

func TestBodySizeLimiter(t *testing.T) {
	r := newEngine(BodySizeLimiter(8))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("this body is too long")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("ok")))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter(t *testing.T) {
	r := newEngine(RateLimiterMiddleware(RateLimiterConfig{RequestsPerSecond: 1, Burst: 1}))

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", ip)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("1.1.1.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("1.1.1.1"))
	assert.Equal(t, http.StatusOK, send("2.2.2.2"))
}

func TestRateLimiterDisabled(t *testing.T) {
	r := newEngine(RateLimiterMiddleware(RateLimiterConfig{}))

	for range 20 {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func sign(t *testing.T, secret string, exp time.Time) string {
	t.Helper()

	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": exp.Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestBearerGuard(t *testing.T) {
	r := newEngine(NewBearerGuard("s3cret"))

	send := func(header string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusUnauthorized, send(""))
	assert.Equal(t, http.StatusUnauthorized, send("Bearer garbage"))
	assert.Equal(t, http.StatusUnauthorized, send("Bearer "+sign(t, "other", time.Now().Add(time.Hour))))
	assert.Equal(t, http.StatusUnauthorized, send("Bearer "+sign(t, "s3cret", time.Now().Add(-time.Hour))))
	assert.Equal(t, http.StatusOK, send("Bearer "+sign(t, "s3cret", time.Now().Add(time.Hour))))
}

func TestBearerGuardOpenWithoutSecret(t *testing.T) {
	r := newEngine(NewBearerGuard(""))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
