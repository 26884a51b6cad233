package postgres

//nolint:revive
import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rental/config"

	"github.com/cenkalti/backoff/v5"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	return &Connection{
		Read:  open(cfg, "read", cfg.DB.Postgres.Read),
		Write: open(cfg, "write", cfg.DB.Postgres.Write),
	}
}

// NewFromDB uses a single pool for both reads and writes.
func NewFromDB(db *sqlx.DB) *Connection {
	return &Connection{
		Read:  db,
		Write: db,
	}
}

// WithTx runs fn inside a transaction on the write pool. The transaction is rolled back when fn
// fails or ctx is cancelled before commit, and the returned error is classified with Classify.
func (c *Connection) WithTx(ctx context.Context, opts *sql.TxOptions, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := c.Write.BeginTxx(ctx, opts)
	if err != nil {
		return Classify(fmt.Errorf("begin transaction: %w", err))
	}

	defer func() {
		if err == nil {
			return
		}

		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Warn().Err(rbErr).Msg("Failed to rollback transaction")
		}
	}()

	if err = fn(tx); err != nil {
		return Classify(err)
	}

	if err = tx.Commit(); err != nil {
		return Classify(fmt.Errorf("commit transaction: %w", err))
	}

	return nil
}

// WithSerializableTx is WithTx at the SERIALIZABLE isolation level.
func (c *Connection) WithSerializableTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return c.WithTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

// Close closes both pools.
func (c *Connection) Close() error {
	var errs []error

	if c.Write != nil {
		errs = append(errs, c.Write.Close())
	}

	if c.Read != nil && c.Read != c.Write {
		errs = append(errs, c.Read.Close())
	}

	return errors.Join(errs...)
}

// Connect opens a pool on dsn, retrying up to attempts times with a fixed wait in between.
func Connect(ctx context.Context, dsn string, attempts uint, wait time.Duration) (*sqlx.DB, error) {
	db, err := backoff.Retry(ctx, func() (*sqlx.DB, error) {
		return sqlx.ConnectContext(ctx, "postgres", dsn)
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(wait)),
		backoff.WithMaxTries(max(attempts, 1)),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.Warn().Err(err).Dur("retryIn", next).Msg("Failed connecting to database, retrying")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	db.SetMaxIdleConns(postgresMaxIdleConnection)
	db.SetMaxOpenConns(postgresMaxOpenConnection)

	return db, nil
}

func open(cfg *config.Config, name string, endpoint config.PostgresEndpoint) *sqlx.DB {
	logger := log.With().
		Str("name", name).
		Str("host", endpoint.Host).
		Str("port", endpoint.Port).
		Str("dbName", cfg.DB.Postgres.Prefix+endpoint.Name).
		Logger()

	attempts := uint(max(cfg.DB.Postgres.MaxRetry, 1))
	wait := time.Duration(cfg.DB.Postgres.RetryWaitTime) * time.Second

	db, err := Connect(context.Background(), cfg.PostgresURL(endpoint, nil), attempts, wait)
	if err != nil {
		logger.Fatal().Err(err).Msg("Giving up connecting to database")
	}

	logger.Info().Msg("Connected to database")

	return db
}
