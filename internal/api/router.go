package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/talenthub/accounts-api/internal/api/handler"
	"github.com/talenthub/accounts-api/internal/api/middleware"
	"github.com/talenthub/accounts-api/internal/auth"
	"github.com/talenthub/accounts-api/internal/core/domain"
	"github.com/talenthub/accounts-api/internal/core/service"
	"github.com/talenthub/accounts-api/internal/infrastructure/config"
	mongorepo "github.com/talenthub/accounts-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/talenthub/accounts-api/internal/infrastructure/db/redis"
	"github.com/talenthub/accounts-api/internal/infrastructure/storage"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, files *storage.LocalStore, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("accounts"))
	// One attachment plus form fields fits well under this; the per-file
	// ceiling is enforced by the upload filter.
	e.Use(echomiddleware.BodyLimit("12M"))
	if len(cfg.CORSOrigins) > 0 {
		e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins: cfg.CORSOrigins,
		}))
	}

	// --- Dependencies ---
	accountRepo := mongorepo.NewAccountRepository(db)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
	limiter := redisinfra.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.AttemptWindow)

	accountService := service.NewAccountService(accountRepo, files, tokens, limiter, log)
	profileService := service.NewProfileService(accountRepo, files, log)

	accountHandler := handler.NewAccountHandler(accountService, cfg.Upload.MaxBytes)
	profileHandler := handler.NewProfileHandler(profileService, cfg.Upload.MaxBytes)

	authRequired := middleware.Auth(tokens)
	clientOnly := middleware.RequireRole(domain.RoleClient)
	freelancerOnly := middleware.RequireRole(domain.RoleFreelancer)

	// --- Public routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/register/client", accountHandler.RegisterClient)
	apiGroup.POST("/register/freelancer", accountHandler.RegisterFreelancer)
	apiGroup.POST("/login", accountHandler.Login)

	// --- Role-gated routes ---
	clientGroup := apiGroup.Group("/client", authRequired, clientOnly)
	clientGroup.GET("/profile", profileHandler.GetProfile)
	clientGroup.POST("/update-bio", profileHandler.UpdateBio)
	clientGroup.POST("/update-picture", profileHandler.UpdatePicture)

	freelancerGroup := apiGroup.Group("/freelancer", authRequired, freelancerOnly)
	freelancerGroup.GET("/profile", profileHandler.GetProfile)
	freelancerGroup.POST("/update-bio", profileHandler.UpdateBio)
	freelancerGroup.POST("/update-picture", profileHandler.UpdatePicture)

	// --- Stored attachments, served back by path reference ---
	e.Static("/uploads", files.Dir())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
