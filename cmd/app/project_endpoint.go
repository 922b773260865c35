package main

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/NemesisGuy/portfolioforge-backend/internal/middleware"
	"github.com/NemesisGuy/portfolioforge-backend/internal/model"
	"github.com/NemesisGuy/portfolioforge-backend/internal/services"
)

type projectRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Technologies *string `json:"technologies"`
	ImageURL     *string `json:"imageUrl"`
	LiveURL      *string `json:"liveUrl"`
	RepoURL      *string `json:"repoUrl"`
	DisplayOrder int     `json:"displayOrder"`
}

func (r *projectRequest) toModel() *model.Project {
	return &model.Project{
		Title:        r.Title,
		Description:  r.Description,
		Technologies: r.Technologies,
		ImageURL:     r.ImageURL,
		LiveURL:      r.LiveURL,
		RepoURL:      r.RepoURL,
		DisplayOrder: r.DisplayOrder,
	}
}

func pathID(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

func registerProjectRoutes(g *echo.Group, ps *services.ProjectService) {
	me := g.Group("/me/projects")
	me.Use(middleware.RequireAuth)

	me.GET("", func(c echo.Context) error {
		id := middleware.CurrentIdentity(c)
		list, err := ps.List(c.Request().Context(), id.UserID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	me.POST("", func(c echo.Context) error {
		id := middleware.CurrentIdentity(c)
		req := new(projectRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		created, err := ps.Create(c.Request().Context(), id.UserID, req.toModel())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusCreated, created)
	})

	me.GET("/:id", func(c echo.Context) error {
		id := middleware.CurrentIdentity(c)
		projectID, err := pathID(c, "id")
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		p, err := ps.Get(c.Request().Context(), projectID, id.UserID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, p)
	})

	me.PUT("/:id", func(c echo.Context) error {
		id := middleware.CurrentIdentity(c)
		projectID, err := pathID(c, "id")
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		req := new(projectRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		updated, err := ps.Update(c.Request().Context(), projectID, id.UserID, req.toModel())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, updated)
	})

	me.DELETE("/:id", func(c echo.Context) error {
		id := middleware.CurrentIdentity(c)
		projectID, err := pathID(c, "id")
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		if err := ps.Delete(c.Request().Context(), projectID, id.UserID); err != nil {
			return serviceError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}
