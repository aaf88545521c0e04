package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Booking BookingConfig
	Search  SearchConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

// Empty Addr disables catalog events; instances then rely on periodic refresh.
type RedisConfig struct {
	Addr           string `envconfig:"REDIS_ADDR"`
	Password       string `envconfig:"REDIS_PASSWORD"`
	DB             int    `envconfig:"REDIS_DB" default:"0"`
	CatalogChannel string `envconfig:"REDIS_CATALOG_CHANNEL" default:"catalog-events"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

// Operator tokens are issued elsewhere; only the verification secret lives here.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
	Issuer string `envconfig:"JWT_ISSUER" default:"court-booking"`
}

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type BookingConfig struct {
	GraceWindow        time.Duration `envconfig:"BOOKING_GRACE_WINDOW" default:"24h"`
	TimeZone           string        `envconfig:"BOOKING_TIMEZONE" default:"Asia/Tokyo"`
	DefaultSlotMinutes int           `envconfig:"BOOKING_DEFAULT_SLOT_MINUTES" default:"60"`
	Store              string        `envconfig:"BOOKING_STORE" default:"postgres"`
	// JSON catalog loaded when Store is "memory"
	CatalogSeed string `envconfig:"BOOKING_CATALOG_SEED"`
}

type SearchConfig struct {
	RefreshInterval time.Duration `envconfig:"SEARCH_REFRESH_INTERVAL" default:"5m"`
	RateLimit       float64       `envconfig:"SEARCH_RATE_LIMIT" default:"20"`
	RateBurst       int           `envconfig:"SEARCH_RATE_BURST" default:"40"`
	AutocompleteMax int           `envconfig:"SEARCH_AUTOCOMPLETE_MAX" default:"20"`
}

func (c *BookingConfig) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking timezone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c *BookingConfig) UsesMemoryStore() bool {
	return c.Store == StoreMemory
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Booking.Store != StorePostgres && cfg.Booking.Store != StoreMemory {
		return Config{}, fmt.Errorf("unsupported BOOKING_STORE %q", cfg.Booking.Store)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
			MaxConns: 10,
		},
		Redis: RedisConfig{
			CatalogChannel: "catalog-events-test",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret: "test-secret-key-for-operator-tokens",
			Issuer: "court-booking",
		},
		Booking: BookingConfig{
			GraceWindow:        24 * time.Hour,
			TimeZone:           "Asia/Tokyo",
			DefaultSlotMinutes: 60,
			Store:              StorePostgres,
		},
		Search: SearchConfig{
			RefreshInterval: time.Minute,
			RateLimit:       1000,
			RateBurst:       1000,
			AutocompleteMax: 20,
		},
	}
}
