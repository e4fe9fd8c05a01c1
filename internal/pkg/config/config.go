package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.)
// - default: Values common across all environments (policy, timeouts, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	Reservation ReservationConfig
	RateLimit   RateLimitConfig
	AMQP        AMQPConfig
	Redis       RedisConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Mexico_City"`
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
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// ReservationConfig selects the allocation policy and its parameters.
// "exclusive" binds one table per reservation; "capacity" only counts
// confirmed reservations per slot against SlotCapacity.
type ReservationConfig struct {
	Policy       string `envconfig:"RESERVATION_POLICY" default:"exclusive"`
	SlotCapacity int    `envconfig:"RESERVATION_SLOT_CAPACITY" default:"10"`
	SeedTables   int    `envconfig:"RESERVATION_SEED_TABLES" default:"3"`
	SeedCapacity int    `envconfig:"RESERVATION_SEED_CAPACITY" default:"4"`
}

type RateLimitConfig struct {
	Enabled        bool          `envconfig:"RATELIMIT_ENABLED" default:"false"`
	Capacity       int           `envconfig:"RATELIMIT_CAPACITY" default:"20"`
	RefillTokens   int           `envconfig:"RATELIMIT_REFILL_TOKENS" default:"10"`
	RefillInterval time.Duration `envconfig:"RATELIMIT_REFILL_INTERVAL" default:"1s"`
	TTL            time.Duration `envconfig:"RATELIMIT_TTL" default:"10m"`
	KeyPrefix      string        `envconfig:"RATELIMIT_KEY_PREFIX" default:"ratelimit"`
}

// AMQPConfig is optional; an empty URL disables the broker and
// confirmation events are only logged.
type AMQPConfig struct {
	URL   string `envconfig:"AMQP_URL" default:""`
	Queue string `envconfig:"AMQP_QUEUE" default:"reservation.events"`
}

// RedisConfig is optional; an empty Addr disables the rate limiter backend.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
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
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level: "error",
		},
		Reservation: ReservationConfig{
			Policy:       "exclusive",
			SlotCapacity: 10,
			SeedTables:   3,
			SeedCapacity: 4,
		},
	}
}
