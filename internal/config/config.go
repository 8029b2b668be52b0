package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cricketlabs/livestats/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                     string
	ServiceName                string
	ServiceVersion             string
	HTTPAddr                   string
	DBURL                      string
	DBDisablePreparedBinary    bool
	CacheEnabled               bool
	CacheTTL                   time.Duration
	CORSAllowedOrigins         []string
	ReadTimeout                time.Duration
	WriteTimeout               time.Duration
	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	UptraceLogsEnabled         bool
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
	CricbuzzBaseURL            string
	CricbuzzAPIKey             string
	CricbuzzHost               string
	CricbuzzTimeout            time.Duration
	CricbuzzMaxRetries         int
	CricbuzzCircuitEnabled     bool
	CricbuzzCircuitFailures    int
	CricbuzzCircuitOpenFor     time.Duration
	CricbuzzCircuitHalfOpenReq int
	FeedSyncOnStart            bool
	LogLevel                   logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
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

	cricbuzzTimeout, err := time.ParseDuration(getEnv("CRICBUZZ_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICBUZZ_TIMEOUT: %w", err)
	}
	if cricbuzzTimeout <= 0 {
		return Config{}, fmt.Errorf("CRICBUZZ_TIMEOUT must be > 0")
	}
	cricbuzzMaxRetries, err := getEnvAsInt("CRICBUZZ_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICBUZZ_MAX_RETRIES: %w", err)
	}
	if cricbuzzMaxRetries < 0 {
		return Config{}, fmt.Errorf("CRICBUZZ_MAX_RETRIES must be >= 0")
	}
	cricbuzzCircuitEnabled, err := strconv.ParseBool(getEnv("CRICBUZZ_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICBUZZ_CIRCUIT_ENABLED: %w", err)
	}
	cricbuzzCircuitFailures, err := getEnvAsInt("CRICBUZZ_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICBUZZ_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if cricbuzzCircuitFailures < 1 {
		return Config{}, fmt.Errorf("CRICBUZZ_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	cricbuzzCircuitOpenFor, err := time.ParseDuration(getEnv("CRICBUZZ_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICBUZZ_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if cricbuzzCircuitOpenFor <= 0 {
		return Config{}, fmt.Errorf("CRICBUZZ_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	cricbuzzCircuitHalfOpenReq, err := getEnvAsInt("CRICBUZZ_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse CRICBUZZ_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if cricbuzzCircuitHalfOpenReq < 1 {
		return Config{}, fmt.Errorf("CRICBUZZ_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	feedSyncOnStart, err := strconv.ParseBool(getEnv("FEED_SYNC_ON_START", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FEED_SYNC_ON_START: %w", err)
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("APP_SERVICE_NAME", "livestats-api"),
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                   getEnv("APP_HTTP_ADDR", ":8080"),
		// No fallback DSN: an empty DB_URL selects the in-memory repositories.
		DBURL:                      strings.TrimSpace(getEnv("DB_URL", "")),
		CORSAllowedOrigins:         splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		PprofEnabled:               pprofEnabled,
		PprofAddr:                  pprofAddr,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		UptraceLogsEnabled:         uptraceLogsEnabled,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
		CricbuzzBaseURL:            strings.TrimSpace(getEnv("CRICBUZZ_BASE_URL", "https://cricbuzz-cricket.p.rapidapi.com")),
		CricbuzzAPIKey:             strings.TrimSpace(getEnv("CRICBUZZ_API_KEY", "")),
		CricbuzzHost:               strings.TrimSpace(getEnv("CRICBUZZ_HOST", "cricbuzz-cricket.p.rapidapi.com")),
		CricbuzzTimeout:            cricbuzzTimeout,
		CricbuzzMaxRetries:         cricbuzzMaxRetries,
		CricbuzzCircuitEnabled:     cricbuzzCircuitEnabled,
		CricbuzzCircuitFailures:    cricbuzzCircuitFailures,
		CricbuzzCircuitOpenFor:     cricbuzzCircuitOpenFor,
		CricbuzzCircuitHalfOpenReq: cricbuzzCircuitHalfOpenReq,
		FeedSyncOnStart:            feedSyncOnStart,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}
	cfg.DBDisablePreparedBinary = dbDisablePreparedBinary

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}
	cfg.CacheEnabled = cacheEnabled
	cfg.CacheTTL = cacheTTL

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cfg.ReadTimeout = readTimeout
	cfg.WriteTimeout = writeTimeout
	cfg.LogLevel = parseLogLevel(getEnv("APP_LOG_LEVEL", "info"))

	return cfg, nil
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

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
