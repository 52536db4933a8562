package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/devops/pipeline-v1/internal/config"
)

// Hash fields of a cached response.
const (
	fieldType = "type"
	fieldBody = "body"
)

// NewRedisCache serves GET responses of fixed-body routes from Redis.  The
// first request is answered by the handler and its body recorded; later ones
// get the stored Content-Type and body back.  X-Cache tells which happened.
func NewRedisCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return passThrough
	}

	record := middleware.BodyDump(func(c echo.Context, _, body []byte) {
		if c.Response().Status != http.StatusOK {
			return
		}
		ctx := c.Request().Context()
		key := cacheKey(cfg, c)
		_, err := rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.HSet(ctx, key, fieldType, c.Response().Header().Get(echo.HeaderContentType), fieldBody, body)
			p.Expire(ctx, key, cfg.TTL)
			return nil
		})
		if err != nil {
			c.Logger().Debugf("[cache] store key=%s failed: %v", key, err)
		}
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		miss := record(next)
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			entry, err := rdb.HGetAll(c.Request().Context(), cacheKey(cfg, c)).Result()
			if body, ok := entry[fieldBody]; err == nil && ok {
				c.Response().Header().Set("X-Cache", "HIT")
				return c.Blob(http.StatusOK, entry[fieldType], []byte(body))
			}
			c.Response().Header().Set("X-Cache", "MISS")
			return miss(c)
		}
	}
}

// cacheKey ignores the query string: every cached route has one body.
func cacheKey(cfg config.CacheConfig, c echo.Context) string {
	return cfg.Prefix + ":" + c.Request().Method + ":" + c.Path()
}
