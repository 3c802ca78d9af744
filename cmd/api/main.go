package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/crypto/bcrypt"

	"complaint-management/config"
	_ "complaint-management/docs" // Swagger docs
	"complaint-management/internal/httpserver"
	"complaint-management/pkg/database"
	"complaint-management/pkg/encrypter"
	"complaint-management/pkg/log"
	"complaint-management/pkg/metrics"
	"complaint-management/pkg/scope"
)

// @title       Complaint Management API
// @description Users, roles, departments, issues, service types and complaints behind JWT auth.
// @version     1
// @host        localhost:4000
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Complaint Management API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, dialect, err := database.Open(ctx, database.Config{
		Driver:                 cfg.Database.Driver,
		Host:                   cfg.Database.Host,
		Port:                   cfg.Database.Port,
		Name:                   cfg.Database.Name,
		User:                   cfg.Database.User,
		Password:               cfg.Database.Password,
		TrustServerCertificate: cfg.Database.TrustServerCertificate,
		MaxOpenConns:           cfg.Database.MaxOpenConns,
		MaxIdleConns:           cfg.Database.MaxIdleConns,
		ConnMaxLifetime:        cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Warnf(ctx, "Failed to close database: %v", err)
		}
	}()
	logger.Infof(ctx, "Connected to %s database %s", dialect.Driver(), cfg.Database.Name)

	// 4. Auth
	jwtManager, err := scope.New(scope.Config{
		AccessSecret:  cfg.JWT.AccessSecret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		AccessTTL:     cfg.JWT.AccessTTL,
		RefreshTTL:    cfg.JWT.RefreshTTL,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize JWT manager: %v", err)
		os.Exit(1)
	}

	// 5. Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		Dialect:     dialect,
		JWTManager:  jwtManager,
		Encrypter:   encrypter.New(bcrypt.DefaultCost),
		Cookie:      cfg.Cookie,
		Metrics:     metrics.New(reg),
		CORS:        cfg.CORS,
		RateLimit:   cfg.RateLimit,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
