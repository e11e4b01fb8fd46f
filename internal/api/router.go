package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ecomarket/users-api/internal/api/handler"
	"github.com/ecomarket/users-api/internal/core/service"
	mongostore "github.com/ecomarket/users-api/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("usuarios"))

	// --- Dependencies ---
	accountRepo := mongostore.NewAccountRepository(db)
	accountService := service.NewAccountService(accountRepo, log)
	authService := service.NewAuthService(accountRepo, log)
	accountHandler := handler.NewAccountHandler(accountService)
	authHandler := handler.NewAuthHandler(authService)

	// --- Account routes (legacy wire contract) ---
	v1 := e.Group("/api/usuarios")
	v1.GET("", accountHandler.List)
	v1.POST("", accountHandler.Create)
	v1.POST("/login", authHandler.Login)
	v1.GET("/:id", accountHandler.Get)
	v1.PUT("/:id", accountHandler.Update)
	v1.DELETE("/:id", accountHandler.Delete)

	// --- Hypermedia variant ---
	v2 := e.Group("/api/v2/usuarios")
	v2.GET("", accountHandler.ListV2)
	v2.POST("", accountHandler.CreateV2)
	v2.GET("/:id", accountHandler.GetV2)
	v2.PUT("/:id", accountHandler.UpdateV2)
	v2.DELETE("/:id", accountHandler.DeleteV2)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
