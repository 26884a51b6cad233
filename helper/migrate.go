package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"

	"rental/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"

	defaultSource = "file://migrations/postgres"
)

var ErrUnknownAction = errors.New("unknown migration action")

// DatabaseURL builds the write connection URL understood by golang-migrate.
func DatabaseURL(cfg *config.Config) string {
	query := url.Values{}
	if cfg.DB.Postgres.MigrationTable != "" {
		query.Set("x-migrations-table", cfg.DB.Postgres.MigrationTable)
	}

	return cfg.PostgresURL(cfg.DB.Postgres.Write, query)
}

func getConnection(source, databaseURL string) (*migrate.Migrate, error) {
	mig, err := migrate.New(source, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Run applies action using the migrations found at source.
func Run(source, databaseURL, action string) error {
	mig, err := getConnection(source, databaseURL)
	if err != nil {
		return err
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	version, dirty, verr := mig.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading migration version: %w", verr)
	}

	log.Info().Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg("database migrations applied")

	return nil
}

func Runner(config *config.Config, action string) error {
	return Run(defaultSource, DatabaseURL(config), action)
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}

func StepUp(config *config.Config) error {
	return Runner(config, ActionStepUp)
}

func Down(config *config.Config) error {
	return Runner(config, ActionDown)
}

func Drop(config *config.Config) error {
	return Runner(config, ActionDrop)
}
