package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/cityevents/events-system/internal/api/handler"
	"github.com/cityevents/events-system/internal/api/middleware"
	"github.com/cityevents/events-system/internal/core/domain"
	"github.com/cityevents/events-system/internal/core/ports"
	"github.com/cityevents/events-system/internal/core/service"
	"github.com/cityevents/events-system/internal/infrastructure/db/postgres"
)

const tokenTTL = 2 * time.Hour

// NewRouter builds and returns the Echo instance with all routes registered.
// feed may be nil when no change feed is configured.
func NewRouter(db *gorm.DB, feed ports.ChangeFeed, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("cityevents"))

	// --- Dependencies ---
	authRepo := postgres.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, jwtSecret, tokenTTL)
	authHandler := handler.NewAuthHandler(authService)

	eventRepo := postgres.NewEventRepository(db)
	eventService := service.NewEventService(eventRepo, feed, log)
	eventHandler := handler.NewEventHandler(eventService)

	healthHandler := handler.NewHealthHandler(db)

	// --- Public routes ---
	apiGroup := e.Group("/api")
	apiGroup.GET("/health", healthHandler.Check)
	apiGroup.POST("/auth/login", authHandler.Login)
	apiGroup.GET("/events", eventHandler.List)

	// --- Admin routes (bearer token + admin role) ---
	admin := apiGroup.Group("/admin", middleware.Auth(jwtSecret), middleware.RBAC(domain.RoleAdmin))
	admin.POST("/events", eventHandler.Create)
	admin.DELETE("/events/:id", eventHandler.Delete)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
