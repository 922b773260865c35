package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NemesisGuy/portfolioforge-backend/internal/middleware"
	"github.com/NemesisGuy/portfolioforge-backend/internal/model"
	"github.com/NemesisGuy/portfolioforge-backend/internal/services"
)

type portfolioRequest struct {
	AboutMeText  *string `json:"aboutMeText"`
	ResumeURL    *string `json:"resumeUrl"`
	LinkedInURL  *string `json:"linkedInUrl"`
	GithubURL    *string `json:"githubUrl"`
	ContactEmail *string `json:"contactEmail"`
	PublicSlug   *string `json:"publicSlug"`
}

func registerPortfolioRoutes(g *echo.Group, ps *services.PortfolioService) {
	me := g.Group("/me/portfolio")
	me.Use(middleware.RequireAuth)

	me.GET("", func(c echo.Context) error {
		id := middleware.CurrentIdentity(c)
		p, err := ps.GetForUser(c.Request().Context(), id.UserID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, p)
	})

	me.PUT("", func(c echo.Context) error {
		id := middleware.CurrentIdentity(c)
		req := new(portfolioRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		saved, err := ps.Save(c.Request().Context(), id.UserID, &model.Portfolio{
			AboutMeText:  req.AboutMeText,
			ResumeURL:    req.ResumeURL,
			LinkedInURL:  req.LinkedInURL,
			GithubURL:    req.GithubURL,
			ContactEmail: req.ContactEmail,
			PublicSlug:   req.PublicSlug,
		})
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, saved)
	})
}
