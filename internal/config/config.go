package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Identity IdentityConfig
	Redis    RedisConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	MigrationsDir string

	ConnectTimeout      time.Duration
	PoolMaxConns        int32
	PoolMinConns        int32
	PoolMaxConnLifetime time.Duration
	PoolMaxConnIdleTime time.Duration
}

// AuthConfig drives the bearer credential issued after a successful log-on.
type AuthConfig struct {
	JWTSecret string
	JWTTTL    time.Duration
}

// IdentityConfig points at the external identity provider used to exchange an
// authorization code for account information.
type IdentityConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:        opt("DB_HOST"),
		DBPort:        opt("DB_PORT"),
		DBName:        opt("DB_NAME"),
		DBUser:        opt("DB_USER"),
		DBPassword:    opt("DB_PASSWORD"),
		DBSSLMode:     opt("DB_SSL_MODE"),
		MigrationsDir: opt("DB_MIGRATIONS_DIR"),

		ConnectTimeout:      optSeconds("DB_CONNECT_TIMEOUT_SECONDS", 0),
		PoolMaxConns:        optInt32("DB_POOL_MAX_CONNS", 0),
		PoolMinConns:        optInt32("DB_POOL_MIN_CONNS", 0),
		PoolMaxConnLifetime: optSeconds("DB_POOL_MAX_CONN_LIFETIME_SECONDS", 0),
		PoolMaxConnIdleTime: optSeconds("DB_POOL_MAX_CONN_IDLE_SECONDS", 0),
	}

	cfg.Auth = AuthConfig{
		JWTSecret: req("AUTH_JWT_SECRET"),
		JWTTTL:    optSeconds("AUTH_JWT_TTL_SECONDS", int64((24 * time.Hour).Seconds())),
	}

	cfg.Identity = IdentityConfig{
		BaseURL:      req("IDENTITY_BASE_URL"),
		ClientID:     req("IDENTITY_CLIENT_ID"),
		ClientSecret: req("IDENTITY_CLIENT_SECRET"),
		RedirectURL:  opt("IDENTITY_REDIRECT_URL"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
		TTL:      optSeconds("REDIS_TTL", 600),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func optSeconds(key string, def int64) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return time.Duration(def) * time.Second
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return time.Duration(def) * time.Second
	}
	return time.Duration(v) * time.Second
}

func optInt32(key string, def int32) int32 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v < 0 {
		return def
	}
	return int32(v)
}
