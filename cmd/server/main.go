package main // Entry point package

import (
	"context"   // Context for Redis setup and shutdown
	"errors"    // errors.Is distinguishes a normal server close
	"log"       // Logging library
	"net/http"  // http.ErrServerClosed
	"os"        // os.Signal
	"os/signal" // Signal notification for graceful shutdown
	"syscall"   // SIGTERM

	"github.com/joho/godotenv" // Optional .env loader

	"github.com/devops/pipeline-v1/internal/config" // Internal config loader
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err) // Log and exit once run has released its resources
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) { // .env is optional
		log.Printf("ignoring .env: %v", err)
	}

	cfg, err := config.Load() // Load environment config
	if err != nil {
		return err
	}

	rdb := config.NewRedisClient(context.Background()) // nil when Redis is unreachable
	if rdb == nil {
		log.Printf("redis unavailable; response cache disabled")
	} else {
		defer rdb.Close()
	}

	e, err := newServer(cfg, rdb)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s (env=%s)", cfg.Addr(), cfg.Env) // Print startup info
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		return err
	}
	log.Printf("server stopped")
	return nil
}
