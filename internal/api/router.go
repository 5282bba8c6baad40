package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/clientinfo/client-registry/internal/api/handler"
	"github.com/clientinfo/client-registry/internal/api/middleware"
	"github.com/clientinfo/client-registry/internal/core/service"
	"github.com/clientinfo/client-registry/internal/infrastructure/config"
	mongodb "github.com/clientinfo/client-registry/internal/infrastructure/db/mongo"
	redisdb "github.com/clientinfo/client-registry/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all dependencies
// constructed and all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("registry"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	clientRepo := mongodb.NewClientRepository(db)

	tokenService := service.NewTokenService(userRepo, cfg.JWTSecret, 24*time.Hour)
	userService := service.NewUserService(userRepo, cfg.AdminAllowlist(), log)

	displayTZ, err := time.LoadLocation(cfg.DisplayTZ)
	if err != nil {
		log.Warn().Str("tz", cfg.DisplayTZ).Msg("unknown display timezone, falling back to UTC")
		displayTZ = time.UTC
	}
	clientService := service.NewClientService(clientRepo, displayTZ, log)

	roles := newRoleDirectory(userRepo, redisdb.NewRoleCache(rdb), log)
	authMW := middleware.Auth(tokenService)
	adminMW := middleware.AdminOnly(roles)

	tokenHandler := handler.NewTokenHandler(tokenService)
	userHandler := handler.NewUserHandler(userService)
	clientHandler := handler.NewClientHandler(clientService)

	// --- Auth routes ---
	e.POST("/jwt", tokenHandler.Issue)

	// --- User routes (listing is admin-gated; see DESIGN.md) ---
	e.POST("/users", userHandler.Create)
	e.GET("/users", userHandler.List, authMW, adminMW)

	// --- Client record routes ---
	e.POST("/client-information", clientHandler.Upsert)
	e.GET("/client-information", clientHandler.List, authMW, adminMW)

	// --- Health probes and operational routes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
