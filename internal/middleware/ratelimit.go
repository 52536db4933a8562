package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/devops/pipeline-v1/internal/config"
)

// passThrough is used whenever an optional middleware is switched off.
func passThrough(next echo.HandlerFunc) echo.HandlerFunc { return next }

// NewRateLimiter limits requests per client IP.  Counters live in Redis when
// rdb is set and in process memory otherwise.  Store errors let the request
// through; an exhausted client gets the framework's plain 429.
func NewRateLimiter(cfg config.RateLimitConfig, rdb *redis.Client) (echo.MiddlewareFunc, error) {
	if !cfg.Enabled {
		return passThrough, nil
	}
	rate, err := limiter.NewRateFromFormatted(cfg.Rate)
	if err != nil {
		return nil, fmt.Errorf("rate limit %q: %w", cfg.Rate, err)
	}
	store, err := newLimiterStore(cfg.Prefix, rdb)
	if err != nil {
		return nil, err
	}
	lim := limiter.New(store, rate)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			lc, err := lim.Get(c.Request().Context(), c.RealIP())
			if err != nil {
				c.Logger().Warnf("[ratelimit] store error: %v", err)
				return next(c)
			}

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.FormatInt(lc.Limit, 10))
			h.Set("X-RateLimit-Remaining", strconv.FormatInt(lc.Remaining, 10))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(lc.Reset, 10))

			if lc.Reached {
				return echo.NewHTTPError(http.StatusTooManyRequests)
			}
			return next(c)
		}
	}, nil
}

func newLimiterStore(prefix string, rdb *redis.Client) (limiter.Store, error) {
	opts := limiter.StoreOptions{
		Prefix:          prefix,
		MaxRetry:        limiter.DefaultMaxRetry,
		CleanUpInterval: limiter.DefaultCleanUpInterval,
	}
	if rdb == nil {
		return memory.NewStoreWithOptions(opts), nil
	}
	store, err := sredis.NewStoreWithOptions(rdb, opts)
	if err != nil {
		return nil, fmt.Errorf("rate limit store: %w", err)
	}
	return store, nil
}
