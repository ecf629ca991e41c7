package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"stonks/internal/config"
	"stonks/internal/handler"
)

// Register wires routes and middleware. The frontend bundle is served at
// the root path; the API lives under /api/v1.
func Register(e *echo.Echo, cfg *config.Config, userHandler *handler.UserHandler) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.Static("/", cfg.StaticDir)

	api := e.Group("/api/v1")

	api.GET("/users", userHandler.ListUsers)
	api.GET("/user/:uid", userHandler.GetUser)
	api.GET("/userexists/:uid", userHandler.UserExists)
	api.POST("/user/:pword", userHandler.CreateUser)
	api.DELETE("/deleteuser/:uid/:pword", userHandler.DeleteUser)
}
