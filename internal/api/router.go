package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/Asfa64/DOC-ASFA/docs"
	"github.com/Asfa64/DOC-ASFA/internal/api/handler"
	"github.com/Asfa64/DOC-ASFA/internal/api/middleware"
	"github.com/Asfa64/DOC-ASFA/internal/core/service"
	"github.com/Asfa64/DOC-ASFA/internal/infrastructure/config"
	mongostore "github.com/Asfa64/DOC-ASFA/internal/infrastructure/db/mongo"
	redisstore "github.com/Asfa64/DOC-ASFA/internal/infrastructure/db/redis"
	"github.com/Asfa64/DOC-ASFA/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("docasfa"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	profileRepo := mongostore.NewProfileRepository(db)
	buttonRepo := mongostore.NewButtonRepository(db)
	blobStore, err := mongostore.NewGridFSStore(db)
	if err != nil {
		return nil, err
	}
	buttonCache := redisstore.NewButtonCache(rdb, cfg.ButtonCacheTTL)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	userService := service.NewUserService(userRepo, log)
	profileService := service.NewProfileService(profileRepo, log)
	buttonService := service.NewButtonService(buttonRepo, buttonCache, log)
	documentService := service.NewDocumentService(blobStore, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	profileHandler := handler.NewProfileHandler(profileService)
	buttonHandler := handler.NewButtonHandler(buttonService)
	documentHandler := handler.NewDocumentHandler(documentService)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Authenticated surface ---
	v1 := e.Group("/v1", middleware.Auth(cfg.JWTSecret))
	v1.GET("/me", authHandler.Me)
	v1.GET("/buttons", buttonHandler.ListVisible)
	v1.GET("/viewer", buttonHandler.Resolve)
	v1.GET("/documents/:filename", documentHandler.Fetch)

	// --- Administrative surface ---
	admin := v1.Group("/admin", middleware.RBAC("admin"))
	admin.GET("/buttons", buttonHandler.ListAll)
	admin.POST("/buttons", buttonHandler.Create)
	admin.PATCH("/buttons/:id", buttonHandler.Update)
	admin.DELETE("/buttons/:id", buttonHandler.Delete)
	admin.GET("/profiles", profileHandler.List)
	admin.POST("/profiles", profileHandler.Create)
	admin.PATCH("/profiles/:id", profileHandler.Update)
	admin.DELETE("/profiles/:id", profileHandler.Delete)
	admin.GET("/users", userHandler.List)
	admin.POST("/users", userHandler.Create)
	admin.DELETE("/users/:id", userHandler.Delete)
	admin.POST("/documents", documentHandler.Upload)
	admin.DELETE("/documents/:filename", documentHandler.Delete)

	return e, nil
}
