package handlers

import (
	"github.com/SscSPs/md_util/cmd/docs"
	portssvc "github.com/SscSPs/md_util/internal/core/ports/services"
	"github.com/SscSPs/md_util/internal/dto"
	"github.com/SscSPs/md_util/internal/middleware"
	"github.com/SscSPs/md_util/internal/platform/config"
	"github.com/SscSPs/md_util/internal/platform/messages"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// Extra middleware, e.g. the rate limiter, runs on the /api/v1 group before authentication.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	v1Middleware ...gin.HandlerFunc,
) {
	dto.RegisterValidators()

	// Add health check route
	r.GET("/health", getHealth)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, v1Middleware)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	v1Middleware []gin.HandlerFunc,
) {
	chain := append(append([]gin.HandlerFunc{}, v1Middleware...), middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	v1 := r.Group("/api/v1", chain...)

	bundle := messages.Default(cfg.Locale)
	registerReportingRoutes(v1, service.Reporting, bundle)
	registerSecurityRoutes(v1, service.Security, bundle, cfg.DisplayCurrency)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
