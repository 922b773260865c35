package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NemesisGuy/portfolioforge-backend/internal/middleware"
	"github.com/NemesisGuy/portfolioforge-backend/internal/model"
	"github.com/NemesisGuy/portfolioforge-backend/internal/services"
)

func registerAdminRoutes(g *echo.Group, authSvc *services.AuthService) {
	admin := g.Group("/admin")
	admin.Use(middleware.RequireRole(model.RoleAdmin))

	admin.GET("/users", func(c echo.Context) error {
		users, err := authSvc.ListUsers(c.Request().Context())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, users)
	})
}
