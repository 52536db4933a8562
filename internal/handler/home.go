package handler // declare the package name; contains HTTP handlers

import (
	"net/http" // net/http provides status codes and response helpers

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// Response bodies of the plain text routes.
const (
	WelcomeMessage = "Welcome to the DevOps Pipeline V1 Application!"
	HelloMessage   = "Hello from DevOps Spring Boot Application!"
	StatusMessage  = "Application is running successfully!"
)

// Home answers the root path with a fixed welcome message.
func Home(c echo.Context) error {
	return c.String(http.StatusOK, WelcomeMessage) // String writes text/plain with a 200 status
}

// Hello returns the fixed greeting served under /api/hello.
func Hello(c echo.Context) error {
	return c.String(http.StatusOK, HelloMessage)
}

// Status reports that the application is running.  Unlike Health it carries
// no structured data; pipelines that only grep for a string use it.
func Status(c echo.Context) error {
	return c.String(http.StatusOK, StatusMessage)
}
