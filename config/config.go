package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		APIKey      string   `envconfig:"API_KEY"`
		AdminEmails []string `envconfig:"ADMIN_EMAILS"`
	} `envconfig:"APP"`

	Booking struct {
		MaxAttempts      int `envconfig:"MAX_ATTEMPTS" default:"3"`
		InitialBackoffMs int `envconfig:"INITIAL_BACKOFF_MS" default:"50"`
		MaxBackoffMs     int `envconfig:"MAX_BACKOFF_MS" default:"500"`
		MaxNights        int `envconfig:"MAX_NIGHTS" default:"365"`
	} `envconfig:"BOOKING"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret    string `envconfig:"ACCESS_SECRET"`
		AccessExpireMin int    `envconfig:"ACCESS_EXPIRE_MIN"`
	} `envconfig:"JWT"`

	Kafka struct {
		Brokers       []string `envconfig:"BROKERS"`
		ConsumerGroup string   `envconfig:"CONSUMER_GROUP"`
		SASL          struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
		Topics struct {
			ReservationCreated string `envconfig:"RESERVATION_CREATED" default:"reservation.created"`
			InquiryReceived    string `envconfig:"INQUIRY_RECEIVED"    default:"inquiry.received"`
		} `envconfig:"TOPICS"`
	} `envconfig:"KAFKA"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME"`
			MigrationTable string `envconfig:"MIGRATION_TABLE"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"`
			Prefix         string `envconfig:"PREFIX"`
			Read           PostgresEndpoint `envconfig:"READ"`
			Write          PostgresEndpoint `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
			Directory       string `envconfig:"DIRECTORY" default:"apartments"`
		} `envconfig:"S3"`
	} `envconfig:"EXTERNAL"`
}

// PostgresEndpoint is one side of the read/write pool pair.
type PostgresEndpoint struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	Timezone string `envconfig:"TIMEZONE"`
	SSLMode  string `envconfig:"SSL_MODE"`
}

const (
	defaultBookingAttempts = 3
	defaultInitialBackoff  = 50 * time.Millisecond
	defaultMaxBackoff      = 500 * time.Millisecond
	defaultMaxNights       = 365
)

var errInvalidConfig = errors.New("invalid configuration")

var load = sync.OnceValues(func() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
	} else {
		log.Info().Msg("Successfully loaded variables from .env file into environment")
	}

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		return nil, fmt.Errorf("processing environment variables: %w", err)
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	log.Info().Msg("Service configuration initialized successfully")

	return &conf, nil
})

func Init() error {
	_, err := load()

	return err
}

func Get() *Config {
	conf, err := load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize configuration")
	}

	return conf
}

// Validate rejects settings that would make the booking retry loop or the rate limiter misbehave.
// Zero values are allowed and mean "use the default".
func (c *Config) Validate() error {
	var problems []string

	if c.Booking.MaxAttempts < 0 {
		problems = append(problems, "BOOKING_MAX_ATTEMPTS must not be negative")
	}

	if c.Booking.InitialBackoffMs < 0 || c.Booking.MaxBackoffMs < 0 {
		problems = append(problems, "BOOKING backoff must not be negative")
	}

	if c.Booking.MaxBackoffMs > 0 && c.Booking.InitialBackoffMs > c.Booking.MaxBackoffMs {
		problems = append(problems, "BOOKING_INITIAL_BACKOFF_MS exceeds BOOKING_MAX_BACKOFF_MS")
	}

	if c.Booking.MaxNights < 0 {
		problems = append(problems, "BOOKING_MAX_NIGHTS must not be negative")
	}

	if c.App.RateLimiter.Enable && (c.App.RateLimiter.MaxRequests <= 0 || c.App.RateLimiter.WindowSeconds <= 0) {
		problems = append(problems, "APP_RATE_LIMITER needs positive MAX_REQUESTS and WINDOW_SECONDS")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", errInvalidConfig, strings.Join(problems, "; "))
	}

	return nil
}

// RetryPolicy returns the attempt budget and backoff bounds for booking transactions.
func (c *Config) RetryPolicy() (attempts uint, initial, maximum time.Duration) {
	attempts, initial, maximum = defaultBookingAttempts, defaultInitialBackoff, defaultMaxBackoff

	if c.Booking.MaxAttempts > 0 {
		attempts = uint(c.Booking.MaxAttempts)
	}

	if c.Booking.InitialBackoffMs > 0 {
		initial = time.Duration(c.Booking.InitialBackoffMs) * time.Millisecond
	}

	if c.Booking.MaxBackoffMs > 0 {
		maximum = time.Duration(c.Booking.MaxBackoffMs) * time.Millisecond
	}

	return attempts, initial, maximum
}

// MaxStay is the longest stay, in nights, a reservation may span.
func (c *Config) MaxStay() int {
	if c.Booking.MaxNights > 0 {
		return c.Booking.MaxNights
	}

	return defaultMaxNights
}

// PostgresURL returns the connection URL of endpoint. The database name gets DB_POSTGRES_PREFIX
// prepended and query is merged into the URL parameters.
func (c *Config) PostgresURL(endpoint PostgresEndpoint, query url.Values) string {
	params := url.Values{}
	if endpoint.SSLMode != "" {
		params.Set("sslmode", endpoint.SSLMode)
	}

	if endpoint.Timezone != "" {
		params.Set("timezone", endpoint.Timezone)
	}

	for key, values := range query {
		params[key] = values
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(endpoint.Username, endpoint.Password),
		Host:     net.JoinHostPort(endpoint.Host, endpoint.Port),
		Path:     "/" + c.DB.Postgres.Prefix + endpoint.Name,
		RawQuery: params.Encode(),
	}

	return dsn.String()
}

// IsAdminEmail reports whether email belongs to the configured admin allowlist.
func (c *Config) IsAdminEmail(email string) bool {
	for _, admin := range c.App.AdminEmails {
		if strings.EqualFold(strings.TrimSpace(admin), email) {
			return true
		}
	}

	return false
}
