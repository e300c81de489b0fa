package config

import (
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret         = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTIssuer         = "currency-exchange-app"
	defaultJWTExpiry         = time.Hour
	defaultIngestionInterval = time.Hour
	defaultIngestionTimeout  = 30 * time.Second
	defaultBaseCurrency      = "USD"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	LogLevel       slog.Level
	MigrationsPath string

	JWTSecret         string
	JWTIssuer         string
	JWTExpiryDuration time.Duration

	// AdminAPIKeyHash is the bcrypt hash of the X-Admin-Key value; empty disables the admin API.
	AdminAPIKeyHash string

	ExchangeRateAPIKey string
	ExchangeRateAPIURL string

	IngestionBaseCurrencies []string
	IngestionInterval       time.Duration
	IngestionTimeout        time.Duration

	// RateLimit uses the ulule/limiter format, e.g. "100-M".
	RateLimit          string
	CORSAllowedOrigins []string

	KafkaBrokers    []string
	KafkaRatesTopic string
}

// DefaultBaseCurrency is the base used when an ingestion run names none.
func (c *Config) DefaultBaseCurrency() string {
	if len(c.IngestionBaseCurrencies) == 0 {
		return defaultBaseCurrency
	}
	return c.IngestionBaseCurrencies[0]
}

// KafkaEnabled reports whether rate events should be published.
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

// LoadConfig loads configuration from environment variables and the given .env file
// (".env" when envFile is empty) if present.
func LoadConfig(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load(envFile)

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("ADMIN_API_KEY_HASH", "")
	v.SetDefault("EXCHANGE_RATE_API_KEY", "")
	v.SetDefault("EXCHANGE_RATE_API_URL", "https://v6.exchangerate-api.com/v6")
	v.SetDefault("INGESTION_BASE_CURRENCIES", defaultBaseCurrency)
	v.SetDefault("INGESTION_INTERVAL", "1h")
	v.SetDefault("INGESTION_TIMEOUT", "30s")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_RATES_TOPIC", "exchange-rates.refreshed")

	v.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")

	levelStr := v.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to %s.\n", levelStr, cfg.LogLevel)
	}

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTIssuer = v.GetString("JWT_ISSUER")
	cfg.JWTExpiryDuration = parseDuration(v, "JWT_EXPIRY_DURATION", defaultJWTExpiry)

	cfg.AdminAPIKeyHash = v.GetString("ADMIN_API_KEY_HASH")
	if cfg.AdminAPIKeyHash == "" {
		log.Println("Warning: ADMIN_API_KEY_HASH not set. Admin endpoints are disabled.")
	}

	cfg.ExchangeRateAPIKey = v.GetString("EXCHANGE_RATE_API_KEY")
	if cfg.ExchangeRateAPIKey == "" {
		log.Println("Warning: EXCHANGE_RATE_API_KEY not set. Rate ingestion will fail.")
	}
	cfg.ExchangeRateAPIURL = v.GetString("EXCHANGE_RATE_API_URL")

	cfg.IngestionBaseCurrencies = parseCurrencyList(v.GetString("INGESTION_BASE_CURRENCIES"))
	if len(cfg.IngestionBaseCurrencies) == 0 {
		cfg.IngestionBaseCurrencies = []string{defaultBaseCurrency}
		log.Printf("Warning: INGESTION_BASE_CURRENCIES has no valid code. Defaulting to %s.\n", defaultBaseCurrency)
	}
	cfg.IngestionInterval = parseDuration(v, "INGESTION_INTERVAL", defaultIngestionInterval)
	cfg.IngestionTimeout = parseDuration(v, "INGESTION_TIMEOUT", defaultIngestionTimeout)

	cfg.RateLimit = v.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.KafkaBrokers = splitList(v.GetString("KAFKA_BROKERS"))
	cfg.KafkaRatesTopic = v.GetString("KAFKA_RATES_TOPIC")

	return cfg, nil
}

// parseDuration reads key as a duration ("60m", "1h"); "0" is kept, invalid values fall back.
func parseDuration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseCurrencyList(raw string) []string {
	var codes []string
	seen := map[string]bool{}
	for _, part := range splitList(raw) {
		code := domain.NormalizeCurrencyCode(part)
		if !domain.IsValidCurrencyCode(code) {
			log.Printf("Warning: Ignoring invalid currency code '%s' in INGESTION_BASE_CURRENCIES.\n", part)
			continue
		}
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}
	return codes
}
