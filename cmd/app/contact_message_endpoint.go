package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NemesisGuy/portfolioforge-backend/internal/middleware"
	"github.com/NemesisGuy/portfolioforge-backend/internal/services"
)

type updateReadStatusRequest struct {
	IsRead *bool `json:"isRead"`
}

func registerContactMessageRoutes(g *echo.Group, ms *services.ContactMessageService) {
	me := g.Group("/me/contact-messages")
	me.Use(middleware.RequireAuth)

	me.GET("", func(c echo.Context) error {
		id := middleware.CurrentIdentity(c)
		list, err := ms.List(c.Request().Context(), id.UserID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	me.GET("/:id", func(c echo.Context) error {
		id := middleware.CurrentIdentity(c)
		messageID, err := pathID(c, "id")
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		m, err := ms.Get(c.Request().Context(), messageID, id.UserID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, m)
	})

	me.PATCH("/:id", func(c echo.Context) error {
		id := middleware.CurrentIdentity(c)
		messageID, err := pathID(c, "id")
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		req := new(updateReadStatusRequest)
		if err := c.Bind(req); err != nil || req.IsRead == nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "isRead must be provided"})
		}
		m, err := ms.SetReadStatus(c.Request().Context(), messageID, id.UserID, *req.IsRead)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, m)
	})
}
