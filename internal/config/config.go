package config

import (
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/propwise/manager-api/internal/utils"
)

const AppName = "manager-api"

// Config holds all process-wide configuration. It is built once at startup
// and passed by reference; nothing reads the environment after LoadConfig.
type Config struct {
	AppName    string
	AppPort    string
	AppEnv     string
	DBUrl      string
	CORSOrigin string

	JWTSecret []byte
	TokenTTL  time.Duration

	RequestLimitPerIP  int
	GlobalRequestLimit int
	RateLimitWindow    time.Duration
}

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	// Session tokens live three days (259,200,000 ms), matching the cookie
	// max-age.
	DefaultTokenTTL = 3 * 24 * time.Hour

	DefaultAppPort    = "8080"
	DefaultCORSOrigin = "http://localhost:3000"

	DefaultRequestLimitPerIP  = 100
	DefaultGlobalRequestLimit = 5000
	DefaultRateLimitWindow    = 30 * time.Minute
)

// LoadConfig reads the environment and fails fast on anything required.
// A missing JWT_SECRET is a fatal configuration error: every token
// operation would be unable to run.
func LoadConfig() *Config {
	env := os.Getenv("ENV")
	if env == "" {
		env = EnvDevelopment
	}
	if env == EnvDevelopment && os.Getenv("LOG_LEVEL") == "" {
		utils.Logger.SetLevel(logrus.DebugLevel)
	}

	dbUrl := os.Getenv("DB_URL")
	if dbUrl == "" {
		utils.Logger.Fatal("DB_URL env var is missing")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		utils.Logger.Fatal("JWT_SECRET env var is missing")
	}

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		appPort = DefaultAppPort
	}

	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = DefaultCORSOrigin
	}

	tokenTTL := DefaultTokenTTL
	if raw := os.Getenv("JWT_EXPIRES_IN"); raw != "" {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || ms <= 0 {
			utils.Logger.Warnf("Invalid JWT_EXPIRES_IN '%s', using default of %v", raw, DefaultTokenTTL)
		} else {
			tokenTTL = time.Duration(ms) * time.Millisecond
		}
	}

	utils.Logger.Debugf("Loaded config: env=%s port=%s tokenTTL=%v", env, appPort, tokenTTL)

	return &Config{
		AppName:            AppName,
		AppPort:            appPort,
		AppEnv:             env,
		DBUrl:              dbUrl,
		CORSOrigin:         corsOrigin,
		JWTSecret:          []byte(jwtSecret),
		TokenTTL:           tokenTTL,
		RequestLimitPerIP:  DefaultRequestLimitPerIP,
		GlobalRequestLimit: DefaultGlobalRequestLimit,
		RateLimitWindow:    DefaultRateLimitWindow,
	}
}

// IsProduction reports whether the secure cookie attribute and strict
// logging should apply.
func (c *Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}
