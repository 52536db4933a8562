package config

// Redis backs the optional rate limiter and the response cache for the static
// routes.  The service itself never needs it: when the server cannot be reached
// NewRedisClient returns nil and both middlewares degrade to pass-through.

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOptions builds client options from the environment.  Supported
// variables are:
//
//	REDIS_ADDR             host:port shorthand
//	REDIS_HOST, REDIS_PORT take precedence over REDIS_ADDR when both are set
//	REDIS_PASSWORD         optional password
//	REDIS_DB               database number (default 0)
//	REDIS_TLS              enable TLS when "true" or "1"
func RedisOptions() *redis.Options {
	addr := envStr("REDIS_ADDR", "localhost:6379")
	if host, port := envStr("REDIS_HOST", ""), envStr("REDIS_PORT", ""); host != "" && port != "" {
		addr = host + ":" + port
	}
	opts := &redis.Options{
		Addr:     addr,
		Password: envStr("REDIS_PASSWORD", ""),
		DB:       envInt("REDIS_DB", 0),
	}
	if envBool("REDIS_TLS", false) {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return opts
}

// NewRedisClient connects using RedisOptions and pings the server with a
// short timeout.  The returned client is nil if the ping fails.
func NewRedisClient(ctx context.Context) *redis.Client {
	client := redis.NewClient(RedisOptions())
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil
	}
	return client
}
