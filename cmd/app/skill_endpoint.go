package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NemesisGuy/portfolioforge-backend/internal/middleware"
	"github.com/NemesisGuy/portfolioforge-backend/internal/model"
	"github.com/NemesisGuy/portfolioforge-backend/internal/services"
)

type skillRequest struct {
	Name     string  `json:"name"`
	Category *string `json:"category"`
	Icon     *string `json:"icon"`
}

func (r *skillRequest) toModel() *model.Skill {
	return &model.Skill{Name: r.Name, Category: r.Category, Icon: r.Icon}
}

func registerSkillRoutes(g *echo.Group, ss *services.SkillService) {
	me := g.Group("/me/skills")
	me.Use(middleware.RequireAuth)

	me.GET("", func(c echo.Context) error {
		id := middleware.CurrentIdentity(c)
		list, err := ss.List(c.Request().Context(), id.UserID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	me.POST("", func(c echo.Context) error {
		id := middleware.CurrentIdentity(c)
		req := new(skillRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		created, err := ss.Create(c.Request().Context(), id.UserID, req.toModel())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusCreated, created)
	})

	me.GET("/:id", func(c echo.Context) error {
		id := middleware.CurrentIdentity(c)
		skillID, err := pathID(c, "id")
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		sk, err := ss.Get(c.Request().Context(), skillID, id.UserID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, sk)
	})

	me.PUT("/:id", func(c echo.Context) error {
		id := middleware.CurrentIdentity(c)
		skillID, err := pathID(c, "id")
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		req := new(skillRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		updated, err := ss.Update(c.Request().Context(), skillID, id.UserID, req.toModel())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, updated)
	})

	me.DELETE("/:id", func(c echo.Context) error {
		id := middleware.CurrentIdentity(c)
		skillID, err := pathID(c, "id")
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		if err := ss.Delete(c.Request().Context(), skillID, id.UserID); err != nil {
			return serviceError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}
