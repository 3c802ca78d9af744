package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Database DatabaseConfig

	// Auth
	JWT    JWTConfig
	Cookie CookieConfig

	// Edge
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	Driver                 string
	Host                   string
	Port                   int
	Name                   string
	User                   string
	Password               string
	TrustServerCertificate bool
	MaxOpenConns           int
	MaxIdleConns           int
	ConnMaxLifetime        time.Duration
}

type JWTConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// CookieConfig controls the session cookies set at login.
type CookieConfig struct {
	Secure bool
	Domain string
	MaxAge time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	LoginPerMinute int
	Burst          int
	MaxClients     int
}

var (
	ErrMissingJWTSecrets = errors.New("jwt.access_secret and jwt.refresh_secret are required")
	ErrSharedJWTSecret   = errors.New("jwt.access_secret and jwt.refresh_secret must differ")
	ErrMissingDatabase   = errors.New("database.name is required")
)

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := fromViper(v)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	if port := v.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}

	// Database
	cfg.Database.Driver = v.GetString("database.driver")
	cfg.Database.Host = v.GetString("database.host")
	cfg.Database.Port = v.GetInt("database.port")
	cfg.Database.Name = v.GetString("database.name")
	cfg.Database.User = v.GetString("database.user")
	cfg.Database.Password = v.GetString("database.password")
	cfg.Database.TrustServerCertificate = v.GetBool("database.trust_server_certificate")
	cfg.Database.MaxOpenConns = v.GetInt("database.max_open_conns")
	cfg.Database.MaxIdleConns = v.GetInt("database.max_idle_conns")
	cfg.Database.ConnMaxLifetime = v.GetDuration("database.conn_max_lifetime")
	overrideString(v, &cfg.Database.Host, "db_server")
	overrideString(v, &cfg.Database.Name, "db_name")
	overrideString(v, &cfg.Database.User, "db_user")
	overrideString(v, &cfg.Database.Password, "db_password")
	if port := v.GetInt("db_port"); port != 0 {
		cfg.Database.Port = port
	}

	// JWT
	cfg.JWT.AccessSecret = v.GetString("jwt.access_secret")
	cfg.JWT.RefreshSecret = v.GetString("jwt.refresh_secret")
	cfg.JWT.AccessTTL = v.GetDuration("jwt.access_ttl")
	cfg.JWT.RefreshTTL = v.GetDuration("jwt.refresh_ttl")
	overrideString(v, &cfg.JWT.AccessSecret, "jwt_access_secret")
	overrideString(v, &cfg.JWT.RefreshSecret, "jwt_refresh_secret")

	// Cookie
	cfg.Cookie.Secure = v.GetBool("cookie.secure")
	cfg.Cookie.Domain = v.GetString("cookie.domain")
	cfg.Cookie.MaxAge = v.GetDuration("cookie.max_age")

	// CORS: viper does not split env lists, so accept a comma-separated string too
	var origins []string
	for _, raw := range v.GetStringSlice("cors.allowed_origins") {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	cfg.CORS.AllowedOrigins = origins

	// Rate limit
	cfg.RateLimit.LoginPerMinute = v.GetInt("rate_limit.login_per_minute")
	cfg.RateLimit.Burst = v.GetInt("rate_limit.burst")
	cfg.RateLimit.MaxClients = v.GetInt("rate_limit.max_clients")

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 4000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("database.driver", "sqlserver")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 1433)
	v.SetDefault("database.trust_server_certificate", true)
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")

	v.SetDefault("jwt.access_ttl", "1h")
	v.SetDefault("jwt.refresh_ttl", "168h")

	v.SetDefault("cookie.secure", true)
	v.SetDefault("cookie.max_age", "168h")

	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})

	v.SetDefault("rate_limit.login_per_minute", 10)
	v.SetDefault("rate_limit.burst", 5)
	v.SetDefault("rate_limit.max_clients", 10000)
}

// overrideString replaces *dst with the flat key when it is set, keeping the
// flat variable names used by existing deployments (DB_SERVER, JWT_ACCESS_SECRET...).
func overrideString(v *viper.Viper, dst *string, key string) {
	if val := v.GetString(key); val != "" {
		*dst = val
	}
}

func (cfg *Config) validate() error {
	if cfg.JWT.AccessSecret == "" || cfg.JWT.RefreshSecret == "" {
		return ErrMissingJWTSecrets
	}
	if cfg.JWT.AccessSecret == cfg.JWT.RefreshSecret {
		return ErrSharedJWTSecret
	}
	if cfg.Database.Name == "" {
		return ErrMissingDatabase
	}
	return nil
}
