package main

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/devops/pipeline-v1/internal/config"
	appmw "github.com/devops/pipeline-v1/internal/middleware"
	"github.com/devops/pipeline-v1/internal/router"
)

// newServer builds the Echo instance: access log, panic recovery and the
// route table.  The opt-in rate limiter and the response cache wrap the
// static routes only.  rdb may be nil.
func newServer(cfg config.Config, rdb *redis.Client) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.Env == "dev"

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	limit, err := appmw.NewRateLimiter(config.LoadRateLimitConfig(), rdb)
	if err != nil {
		return nil, err
	}
	router.RegisterRoutes(e, limit, appmw.NewRedisCache(config.LoadCacheConfig(), rdb))
	return e, nil
}
