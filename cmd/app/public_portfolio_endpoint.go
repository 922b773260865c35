package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NemesisGuy/portfolioforge-backend/internal/model"
	"github.com/NemesisGuy/portfolioforge-backend/internal/services"
)

type contactMessageRequest struct {
	SenderName  string  `json:"senderName"`
	SenderEmail string  `json:"senderEmail"`
	Subject     *string `json:"subject"`
	Message     string  `json:"message"`
}

// registerPublicPortfolioRoutes exposes the read-only public surface:
// a portfolio, its projects and skills by slug (or username), plus
// contact-message submission. No identity required.
func registerPublicPortfolioRoutes(g *echo.Group, ps *services.PortfolioService, projects *services.ProjectService, skills *services.SkillService) {
	pub := g.Group("/portfolios")

	pub.GET("/:slug", func(c echo.Context) error {
		p, err := ps.GetPublic(c.Request().Context(), c.Param("slug"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, p)
	})

	pub.GET("/:slug/projects", func(c echo.Context) error {
		userID, err := ps.ResolveUserID(c.Request().Context(), c.Param("slug"))
		if err != nil {
			return serviceError(c, err)
		}
		list, err := projects.List(c.Request().Context(), userID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	pub.GET("/:slug/skills", func(c echo.Context) error {
		userID, err := ps.ResolveUserID(c.Request().Context(), c.Param("slug"))
		if err != nil {
			return serviceError(c, err)
		}
		list, err := skills.List(c.Request().Context(), userID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})
}

func registerContactSubmitRoute(g *echo.Group, ms *services.ContactMessageService) {
	g.POST("/portfolios/:slug/contact", func(c echo.Context) error {
		req := new(contactMessageRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		_, err := ms.Submit(c.Request().Context(), c.Param("slug"), &model.ContactMessage{
			SenderName:  req.SenderName,
			SenderEmail: req.SenderEmail,
			Subject:     req.Subject,
			Message:     req.Message,
		})
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusCreated, echo.Map{"message": "Message sent successfully."})
	})
}
