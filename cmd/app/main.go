package main

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	"github.com/NemesisGuy/portfolioforge-backend/internal/config"
	"github.com/NemesisGuy/portfolioforge-backend/internal/db"
	"github.com/NemesisGuy/portfolioforge-backend/internal/middleware"
	"github.com/NemesisGuy/portfolioforge-backend/internal/repository"
	"github.com/NemesisGuy/portfolioforge-backend/internal/services"
	"github.com/NemesisGuy/portfolioforge-backend/internal/token"
)

// application bundles the wired services so the router can be built
// the same way in serve and in tests.
type application struct {
	Users      repository.UserRepository
	Auth       *services.AuthService
	Portfolios *services.PortfolioService
	Projects   *services.ProjectService
	Skills     *services.SkillService
	Messages   *services.ContactMessageService
	Codec      *token.Codec
}

func newApplication(cfg *config.Config, pool *pgxpool.Pool) *application {
	userRepo := repository.NewUserRepository(pool)
	portfolioRepo := repository.NewPortfolioRepository(pool)
	projectRepo := repository.NewProjectRepository(pool)
	skillRepo := repository.NewSkillRepository(pool)
	messageRepo := repository.NewContactMessageRepository(pool)

	return &application{
		Users:      userRepo,
		Auth:       services.NewAuthService(userRepo),
		Portfolios: services.NewPortfolioService(portfolioRepo, userRepo),
		Projects:   services.NewProjectService(projectRepo, userRepo),
		Skills:     services.NewSkillService(skillRepo, userRepo),
		Messages:   services.NewContactMessageService(messageRepo, portfolioRepo, userRepo),
		Codec:      token.NewCodec(cfg.JWTSecret, cfg.TokenTTL),
	}
}

func (app *application) router() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpErrorHandler

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(middleware.Authenticate(app.Codec, app.Users))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	api := e.Group("/api/v1")
	registerAuthRoutes(api, app.Auth, app.Codec)
	registerAdminRoutes(api, app.Auth)
	registerPortfolioRoutes(api, app.Portfolios)
	registerProjectRoutes(api, app.Projects)
	registerSkillRoutes(api, app.Skills)
	registerContactMessageRoutes(api, app.Messages)
	registerPublicPortfolioRoutes(api, app.Portfolios, app.Projects, app.Skills)
	registerContactSubmitRoute(api, app.Messages)

	return e
}

// httpErrorHandler is the catch-all for errors that escape the
// per-route sentinel mapping: full detail is logged server-side,
// the client gets a generic body.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if he, ok := err.(*echo.HTTPError); ok {
		_ = c.JSON(he.Code, echo.Map{"error": fmt.Sprintf("%v", he.Message)})
		return
	}
	slog.Error("unhandled request error",
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"error", err,
	)
	_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := db.Migrate(ctx, cfg.DatabaseURL); err != nil {
		return err
	}

	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	app := newApplication(cfg, pool)
	e := app.router()

	slog.Info("starting server", "port", cfg.Port)
	return e.Start(":" + cfg.Port)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := db.Migrate(cmd.Context(), cfg.DatabaseURL); err != nil {
		return err
	}
	slog.Info("migrations applied")
	return nil
}

// runGenSecret prints a fresh base64 signing secret sized for HS512.
func runGenSecret(cmd *cobra.Command, args []string) error {
	raw := make([]byte, config.MinSecretLen)
	if _, err := rand.Read(raw); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), base64.StdEncoding.EncodeToString(raw))
	return nil
}

func main() {
	root := &cobra.Command{
		Use:          "portfolioforge",
		Short:        "Portfolio hosting backend",
		SilenceUsage: true,
		RunE:         runServe,
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run database migrations and start the HTTP server",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Run database migrations and exit",
			RunE:  runMigrate,
		},
		&cobra.Command{
			Use:   "gen-secret",
			Short: "Generate a base64 JWT signing secret",
			RunE:  runGenSecret,
		},
	)

	if err := root.ExecuteContext(context.Background()); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}
