package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"complaint-management/internal/middleware"
	"complaint-management/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.jwtManager)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

// registerMiddlewares installs the global chain. Metrics wraps
// ErrorReporter so recorded statuses include rendered errors.
func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(
		srv.metrics.Middleware(),
		mw.ErrorReporter(),
		mw.Recovery(),
		mw.RequestID(),
		mw.CORS(srv.cors.AllowedOrigins),
	)

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production, origins %v", srv.cors.AllowedOrigins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s, origins %v", srv.environment, srv.cors.AllowedOrigins)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api")

	srv.setupRoleDomain(ctx, api)
	srv.setupDepartmentDomain(ctx, api, mw)
	issueUC := srv.setupIssueDomain(ctx, api, mw)
	srv.setupServiceTypeDomain(ctx, api, issueUC)
	srv.setupUserDomain(ctx, api, mw)
	srv.setupComplaintDomain(ctx, api, mw)

	return nil
}
