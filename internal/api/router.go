package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/ruralroots/directory-api/internal/api/handler"
	"github.com/ruralroots/directory-api/internal/api/middleware"
	"github.com/ruralroots/directory-api/internal/core/domain"
	"github.com/ruralroots/directory-api/internal/core/ports"
	"github.com/ruralroots/directory-api/internal/core/service"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(store *service.Store, persist ports.SnapshotStore, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("directory"))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(store)
	farmHandler := handler.NewFarmHandler(store)
	jobHandler := handler.NewJobHandler(store)
	authMiddleware := middleware.Auth(jwtSecret)
	farmOnly := middleware.RBAC(domain.RoleFarm)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)

	// --- Farm directory ---
	v1 := e.Group("/v1")
	v1.GET("/farms", farmHandler.List)
	v1.GET("/farms/meta/tags", farmHandler.Tags)
	v1.GET("/farms/meta/regions", farmHandler.Regions)
	v1.POST("/farms", farmHandler.Create, authMiddleware, farmOnly)
	v1.POST("/farms/:id/reviews", farmHandler.AddReview, authMiddleware)

	// --- Recruitment board ---
	v1.GET("/jobs", jobHandler.List)
	v1.POST("/jobs", jobHandler.Create, authMiddleware, farmOnly)
	v1.POST("/jobs/:id/apply", jobHandler.Apply, authMiddleware)

	// --- Per-user projections ---
	v1.GET("/me/farms", farmHandler.MyFarms, authMiddleware)
	v1.GET("/me/applications", jobHandler.MyApplications, authMiddleware)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(persist)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the snapshot store up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
