package main

import (
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devops/pipeline-v1/internal/config"
)

func clearMiddlewareEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"RATE_LIMIT_ENABLED", "RATE_LIMIT_RATE", "RATE_LIMIT_PREFIX", "CACHE_ENABLED", "CACHE_TTL", "CACHE_PREFIX"} {
		t.Setenv(k, "")
	}
}

func liveRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func statusCounts(e *echo.Echo, path string, n int) map[int]int {
	counts := map[int]int{}
	for i := 0; i < n; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		counts[rec.Code]++
	}
	return counts
}

func TestNewServerWithoutRedis(t *testing.T) {
	clearMiddlewareEnv(t)
	e, err := newServer(config.Config{Env: "test", Port: "8080"}, nil)
	require.NoError(t, err)

	cases := []struct {
		method string
		path   string
		status int
		body   string
	}{
		{http.MethodGet, "/", http.StatusOK, "Welcome to the DevOps Pipeline V1 Application!"},
		{http.MethodGet, "/api/hello", http.StatusOK, "Hello from DevOps Spring Boot Application!"},
		{http.MethodGet, "/api/status", http.StatusOK, "Application is running successfully!"},
		{http.MethodGet, "/nonexistent", http.StatusNotFound, ""},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, tc.status, rec.Code)
			if tc.body != "" {
				assert.Equal(t, tc.body, rec.Body.String())
			}
			assert.Empty(t, rec.Header().Get("X-Cache"))
			assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
		})
	}
}

func TestDefaultsNeverThrottle(t *testing.T) {
	clearMiddlewareEnv(t)
	e, err := newServer(config.Config{Env: "prod", Port: "8080"}, liveRedis(t))
	require.NoError(t, err)

	assert.Equal(t, map[int]int{http.StatusOK: 70}, statusCounts(e, "/api/health", 70))
	assert.Equal(t, map[int]int{http.StatusOK: 70}, statusCounts(e, "/api/hello", 70))
}

func TestEnabledLimiterSkipsHealth(t *testing.T) {
	clearMiddlewareEnv(t)
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_RATE", "5-M")
	e, err := newServer(config.Config{Env: "prod", Port: "8080"}, liveRedis(t))
	require.NoError(t, err)

	assert.Equal(t, map[int]int{http.StatusOK: 20}, statusCounts(e, "/api/health", 20))
	assert.Equal(t, map[int]int{http.StatusOK: 5, http.StatusTooManyRequests: 3}, statusCounts(e, "/api/status", 8))
}

func TestNewServerRejectsBadRate(t *testing.T) {
	clearMiddlewareEnv(t)
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_RATE", "fast")
	_, err := newServer(config.Config{Env: "prod", Port: "8080"}, nil)
	assert.Error(t, err)
}

func TestNewServerRecoversFromPanics(t *testing.T) {
	clearMiddlewareEnv(t)
	e, err := newServer(config.Config{Env: "prod", Port: "8080"}, nil)
	require.NoError(t, err)
	e.GET("/boom", func(c echo.Context) error { panic("boom") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRunReturnsStartError(t *testing.T) {
	clearMiddlewareEnv(t)
	busy, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = busy.Close() })

	t.Setenv("APP_PORT", strconv.Itoa(busy.Addr().(*net.TCPAddr).Port))
	t.Setenv("REDIS_ADDR", "127.0.0.1:1")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_PORT", "")

	assert.Error(t, run())
}
