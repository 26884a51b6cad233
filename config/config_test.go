package config_test

import (
	"net/url"
	"testing"
	"time"

	"rental/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAdminEmail(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.AdminEmails = []string{"owner@villa.example", " Manager@Villa.Example "}

	assert.True(t, cfg.IsAdminEmail("owner@villa.example"))
	assert.True(t, cfg.IsAdminEmail("manager@villa.example"))
	assert.False(t, cfg.IsAdminEmail("guest@example.com"))
	assert.False(t, (&config.Config{}).IsAdminEmail("owner@villa.example"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *config.Config)
		wantErr bool
	}{
		{name: "zero values use defaults", mutate: func(*config.Config) {}},
		{name: "negative attempts", mutate: func(cfg *config.Config) { cfg.Booking.MaxAttempts = -1 }, wantErr: true},
		{
			name: "initial backoff above maximum",
			mutate: func(cfg *config.Config) {
				cfg.Booking.InitialBackoffMs = 900
				cfg.Booking.MaxBackoffMs = 100
			},
			wantErr: true,
		},
		{name: "negative max nights", mutate: func(cfg *config.Config) { cfg.Booking.MaxNights = -1 }, wantErr: true},
		{name: "rate limiter without window", mutate: func(cfg *config.Config) { cfg.App.RateLimiter.Enable = true }, wantErr: true},
		{
			name: "rate limiter configured",
			mutate: func(cfg *config.Config) {
				cfg.App.RateLimiter.Enable = true
				cfg.App.RateLimiter.MaxRequests = 10
				cfg.App.RateLimiter.WindowSeconds = 60
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRetryPolicy(t *testing.T) {
	attempts, initial, maximum := (&config.Config{}).RetryPolicy()
	assert.Equal(t, uint(3), attempts)
	assert.Equal(t, 50*time.Millisecond, initial)
	assert.Equal(t, 500*time.Millisecond, maximum)

	cfg := &config.Config{}
	cfg.Booking.MaxAttempts = 5
	cfg.Booking.InitialBackoffMs = 10
	cfg.Booking.MaxBackoffMs = 40

	attempts, initial, maximum = cfg.RetryPolicy()
	assert.Equal(t, uint(5), attempts)
	assert.Equal(t, 10*time.Millisecond, initial)
	assert.Equal(t, 40*time.Millisecond, maximum)
}

func TestMaxStay(t *testing.T) {
	assert.Equal(t, 365, (&config.Config{}).MaxStay())

	cfg := &config.Config{}
	cfg.Booking.MaxNights = 28
	assert.Equal(t, 28, cfg.MaxStay())
}

func TestPostgresURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "staging_"

	endpoint := config.PostgresEndpoint{
		Host:     "db.internal",
		Port:     "5432",
		Username: "rental",
		Password: "p@ss/word",
		Name:     "rental",
		SSLMode:  "disable",
	}

	dsn := cfg.PostgresURL(endpoint, url.Values{"x-migrations-table": {"schema_migrations"}})

	parsed, err := url.Parse(dsn)
	require.NoError(t, err)

	password, _ := parsed.User.Password()
	assert.Equal(t, "p@ss/word", password)
	assert.Equal(t, "db.internal:5432", parsed.Host)
	assert.Equal(t, "/staging_rental", parsed.Path)
	assert.Equal(t, "disable", parsed.Query().Get("sslmode"))
	assert.Equal(t, "schema_migrations", parsed.Query().Get("x-migrations-table"))
	assert.False(t, parsed.Query().Has("timezone"))
}
