package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tickerdraft/tickerdraft/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration

	// DBURL empty means the in-memory repositories with seeded demo data.
	DBURL                   string
	DBDisablePreparedBinary bool

	CacheTTL           time.Duration
	CORSAllowedOrigins []string
	CronSecret         string

	PolygonBaseURL               string
	PolygonAPIKey                string
	PolygonTimeout               time.Duration
	PolygonMaxRetries            int
	PolygonCircuitEnabled        bool
	PolygonCircuitFailureCount   int
	PolygonCircuitOpenTimeout    time.Duration
	PolygonCircuitHalfOpenMaxReq int
	QuoteWorkers                 int

	GoTrueBaseURL string
	GoTrueAnonKey string
	GoTrueTimeout time.Duration

	PprofEnabled           bool
	PprofAddr              string
	UptraceEnabled         bool
	UptraceDSN             string
	PyroscopeEnabled       bool
	PyroscopeServerAddress string
	PyroscopeAppName       string
	PyroscopeAuthToken     string
	PyroscopeUploadRate    time.Duration

	LogLevel logging.Level
}

func (c Config) IsProd() bool {
	return c.AppEnv == EnvProd
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	polygonTimeout, err := time.ParseDuration(getEnv("POLYGON_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse POLYGON_TIMEOUT: %w", err)
	}
	if polygonTimeout <= 0 {
		return Config{}, fmt.Errorf("POLYGON_TIMEOUT must be > 0")
	}
	polygonMaxRetries, err := getEnvAsInt("POLYGON_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse POLYGON_MAX_RETRIES: %w", err)
	}
	if polygonMaxRetries < 0 {
		return Config{}, fmt.Errorf("POLYGON_MAX_RETRIES must be >= 0")
	}
	polygonCircuitEnabled, err := strconv.ParseBool(getEnv("POLYGON_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse POLYGON_CIRCUIT_ENABLED: %w", err)
	}
	polygonCircuitFailureCount, err := getEnvAsInt("POLYGON_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse POLYGON_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if polygonCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("POLYGON_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	polygonCircuitOpenTimeout, err := time.ParseDuration(getEnv("POLYGON_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse POLYGON_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if polygonCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("POLYGON_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	polygonCircuitHalfOpenMaxReq, err := getEnvAsInt("POLYGON_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse POLYGON_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if polygonCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("POLYGON_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}
	quoteWorkers, err := getEnvAsInt("QUOTE_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse QUOTE_WORKERS: %w", err)
	}
	if quoteWorkers < 1 {
		return Config{}, fmt.Errorf("QUOTE_WORKERS must be >= 1")
	}

	polygonAPIKey := strings.TrimSpace(getEnv("POLYGON_API_KEY", ""))
	if appEnv == EnvProd && polygonAPIKey == "" {
		return Config{}, fmt.Errorf("POLYGON_API_KEY is required when APP_ENV=prod")
	}

	goTrueTimeout, err := time.ParseDuration(getEnv("GOTRUE_TIMEOUT", "3s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse GOTRUE_TIMEOUT: %w", err)
	}
	if goTrueTimeout <= 0 {
		return Config{}, fmt.Errorf("GOTRUE_TIMEOUT must be > 0")
	}

	cronSecret := strings.TrimSpace(getEnv("CRON_SECRET", ""))
	if appEnv == EnvProd && cronSecret == "" {
		return Config{}, fmt.Errorf("CRON_SECRET is required when APP_ENV=prod")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cfg := Config{
		AppEnv:                       appEnv,
		ServiceName:                  getEnv("APP_SERVICE_NAME", "tickerdraft-api"),
		ServiceVersion:               getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                     getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:                  readTimeout,
		WriteTimeout:                 writeTimeout,
		DBURL:                        strings.TrimSpace(getEnv("DB_URL", "")),
		DBDisablePreparedBinary:      dbDisablePreparedBinary,
		CacheTTL:                     cacheTTL,
		CORSAllowedOrigins:           splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		CronSecret:                   cronSecret,
		PolygonBaseURL:               strings.TrimSpace(getEnv("POLYGON_BASE_URL", "https://api.polygon.io")),
		PolygonAPIKey:                polygonAPIKey,
		PolygonTimeout:               polygonTimeout,
		PolygonMaxRetries:            polygonMaxRetries,
		PolygonCircuitEnabled:        polygonCircuitEnabled,
		PolygonCircuitFailureCount:   polygonCircuitFailureCount,
		PolygonCircuitOpenTimeout:    polygonCircuitOpenTimeout,
		PolygonCircuitHalfOpenMaxReq: polygonCircuitHalfOpenMaxReq,
		QuoteWorkers:                 quoteWorkers,
		GoTrueBaseURL:                strings.TrimSpace(getEnv("GOTRUE_BASE_URL", "http://localhost:9999")),
		GoTrueAnonKey:                strings.TrimSpace(getEnv("GOTRUE_ANON_KEY", "")),
		GoTrueTimeout:                goTrueTimeout,
		PprofEnabled:                 pprofEnabled,
		PprofAddr:                    pprofAddr,
		UptraceEnabled:               uptraceEnabled,
		UptraceDSN:                   uptraceDSN,
		PyroscopeEnabled:             pyroscopeEnabled,
		PyroscopeServerAddress:       pyroscopeServerAddress,
		PyroscopeAuthToken:           strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeUploadRate:          pyroscopeUploadRate,
		LogLevel:                     parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}

	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if appEnv == EnvProd && cfg.DBURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when APP_ENV=prod")
	}

	return cfg, nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
