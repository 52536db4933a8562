package router // package router defines how HTTP routes are registered for the API

import (
	"fmt"      // fmt formats the duplicate route panic
	"net/http" // net/http provides the method constants

	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/devops/pipeline-v1/internal/handler" // import the handlers that produce each response
)

// Route binds one (method, path) pair to a handler.  Static marks routes
// whose response never changes; only those get the optional rate limit and
// response cache.
type Route struct {
	Method  string
	Path    string
	Handler echo.HandlerFunc
	Static  bool
}

// Table returns the fixed route table of the service.  The health route is
// not static: its timestamp is read on every request and health checks are
// never throttled.
func Table() []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/", Handler: handler.Home, Static: true},
		{Method: http.MethodGet, Path: "/api/hello", Handler: handler.Hello, Static: true},
		{Method: http.MethodGet, Path: "/api/status", Handler: handler.Status, Static: true},
		{Method: http.MethodGet, Path: "/api/health", Handler: handler.Health},
	}
}

// RegisterRoutes registers the route table on the provided Echo instance.
// The static middleware chain wraps only the static routes.
func RegisterRoutes(e *echo.Echo, static ...echo.MiddlewareFunc) {
	Register(e, Table(), static...)
}

// Register adds every route to e.  Two routes with the same method and path
// are a programming error and cause a panic before anything is served.
func Register(e *echo.Echo, routes []Route, static ...echo.MiddlewareFunc) {
	seen := make(map[string]bool, len(routes))
	for _, r := range routes {
		key := r.Method + " " + r.Path
		if seen[key] {
			panic(fmt.Sprintf("router: duplicate route %s", key))
		}
		seen[key] = true

		if r.Static {
			e.Add(r.Method, r.Path, r.Handler, static...)
		} else {
			e.Add(r.Method, r.Path, r.Handler)
		}
	}
}
