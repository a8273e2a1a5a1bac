package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), program rules
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Loyalty LoyaltyConfig
}

type ServerConfig struct {
	Port              string        `envconfig:"PORT" required:"true"`
	ReadHeaderTimeout time.Duration `envconfig:"SERVER_READ_HEADER_TIMEOUT" default:"10s"`
	WriteTimeout      time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout   time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"15s"`
}

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type StoreConfig struct {
	Driver     string        `envconfig:"STORE_DRIVER" default:"postgres"`
	MaxRetries int           `envconfig:"UOW_MAX_RETRIES" default:"3"`
	BaseDelay  time.Duration `envconfig:"UOW_BASE_BACKOFF" default:"100ms"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"12h"`
	// tokens come from the back-office auth service
	Issuer   string `envconfig:"JWT_ISSUER" default:"pos-backoffice"`
	Audience string `envconfig:"JWT_AUDIENCE" default:"pos-loyalty"`
	Leeway   string `envconfig:"JWT_LEEWAY" default:"30s"`
}

type LoyaltyConfig struct {
	// points credited per currency unit of a finalized sale, before the tier multiplier
	PointsPerCurrency decimal.Decimal `envconfig:"LOYALTY_POINTS_PER_CURRENCY" default:"1"`
	AllowDemotion     bool            `envconfig:"TIER_ALLOW_DEMOTION" default:"false"`
	CodeAttempts      int             `envconfig:"REDEMPTION_CODE_ATTEMPTS" default:"5"`
	CodeLength        int             `envconfig:"REDEMPTION_CODE_LENGTH" default:"8"`
	EvaluationWorkers int             `envconfig:"TIER_EVALUATION_WORKERS" default:"8"`
	EvaluationPage    int32           `envconfig:"TIER_EVALUATION_PAGE_SIZE" default:"200"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverPostgres:
		if c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("DB_USER and DB_NAME are required for store driver %q", c.Store.Driver)
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Loyalty.PointsPerCurrency.IsNegative() {
		return fmt.Errorf("LOYALTY_POINTS_PER_CURRENCY must not be negative")
	}
	if c.Loyalty.CodeAttempts < 1 {
		return fmt.Errorf("REDEMPTION_CODE_ATTEMPTS must be at least 1")
	}
	if c.Loyalty.CodeLength < 4 {
		return fmt.Errorf("REDEMPTION_CODE_LENGTH must be at least 4")
	}
	if c.Loyalty.EvaluationWorkers < 1 {
		return fmt.Errorf("TIER_EVALUATION_WORKERS must be at least 1")
	}
	if c.Loyalty.EvaluationPage < 1 {
		return fmt.Errorf("TIER_EVALUATION_PAGE_SIZE must be at least 1")
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:              "8889", // Test port
			ReadHeaderTimeout: time.Second,
			WriteTimeout:      5 * time.Second,
			ShutdownTimeout:   time.Second,
		},
		Store: StoreConfig{
			Driver:     StoreDriverMemory,
			MaxRetries: 20,
			BaseDelay:  time.Millisecond,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
			Issuer:   "pos-backoffice",
			Audience: "pos-loyalty",
			Leeway:   "0s",
		},
		Loyalty: LoyaltyConfig{
			PointsPerCurrency: decimal.NewFromInt(1),
			CodeAttempts:      5,
			CodeLength:        8,
			EvaluationWorkers: 4,
			EvaluationPage:    50,
		},
	}
}
