package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NemesisGuy/portfolioforge-backend/internal/repository"
	"github.com/NemesisGuy/portfolioforge-backend/internal/services"
)

// serviceError maps service/repository sentinels to HTTP responses.
// Anything unrecognized is logged and answered with a generic 500 so
// internal detail never reaches the client.
func serviceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, repository.ErrUsernameTaken),
		errors.Is(err, repository.ErrEmailTaken),
		errors.Is(err, repository.ErrSlugTaken),
		errors.Is(err, repository.ErrSkillExists):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	default:
		slog.Error("request failed",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
}
