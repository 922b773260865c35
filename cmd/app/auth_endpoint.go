package main

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/NemesisGuy/portfolioforge-backend/internal/middleware"
	"github.com/NemesisGuy/portfolioforge-backend/internal/services"
	"github.com/NemesisGuy/portfolioforge-backend/internal/token"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

func registerHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(registerRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if err := authSvc.Register(c.Request().Context(), req.Username, req.Email, req.Password); err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusCreated, echo.Map{"message": "User registered successfully!"})
	}
}

func loginHandler(authSvc *services.AuthService, codec *token.Codec) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		user, err := authSvc.Login(c.Request().Context(), req.UsernameOrEmail, req.Password)
		if err != nil {
			return serviceError(c, err)
		}
		accessToken, err := codec.Issue(user.Username, time.Now())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"accessToken": accessToken,
			"tokenType":   "Bearer",
		})
	}
}

// meHandler returns the identity resolved for the current request.
func meHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		id := middleware.CurrentIdentity(c)
		return c.JSON(http.StatusOK, echo.Map{
			"id":       id.UserID,
			"username": id.Username,
			"role":     id.Role,
		})
	}
}

func countUsersHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		n, err := authSvc.CountUsers(c.Request().Context())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, n)
	}
}

func registerAuthRoutes(g *echo.Group, authSvc *services.AuthService, codec *token.Codec) {
	auth := g.Group("/auth")

	// public
	auth.POST("/register", registerHandler(authSvc))
	auth.POST("/login", loginHandler(authSvc, codec))

	// authenticated
	auth.GET("/me", meHandler(), middleware.RequireAuth)
	auth.GET("/all", countUsersHandler(authSvc), middleware.RequireAuth)
}
