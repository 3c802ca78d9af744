package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"complaint-management/config"
	"complaint-management/pkg/database"
	"complaint-management/pkg/encrypter"
	"complaint-management/pkg/log"
	"complaint-management/pkg/metrics"
	"complaint-management/pkg/scope"
)

const shutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Storage
	db      *sql.DB
	dialect database.Dialect

	// Auth
	jwtManager scope.Manager
	encrypter  encrypter.Encrypter
	cookie     config.CookieConfig

	// Edge
	metrics   *metrics.HTTP
	cors      config.CORSConfig
	rateLimit config.RateLimitConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	DB      *sql.DB
	Dialect database.Dialect

	JWTManager scope.Manager
	Encrypter  encrypter.Encrypter
	Cookie     config.CookieConfig

	Metrics   *metrics.HTTP
	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		db:          cfg.DB,
		dialect:     cfg.Dialect,
		jwtManager:  cfg.JWTManager,
		encrypter:   cfg.Encrypter,
		cookie:      cfg.Cookie,
		metrics:     cfg.Metrics,
		cors:        cfg.CORS,
		rateLimit:   cfg.RateLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("db is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}
	if srv.metrics == nil {
		return errors.New("metrics is required")
	}
	return nil
}

// Handler exposes the engine, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
