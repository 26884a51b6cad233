package postgres_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"rental/infras/postgres"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		expected  error
		retryable bool
	}{
		{name: "serialization failure", err: &pq.Error{Code: "40001"}, expected: postgres.ErrSerialization, retryable: true},
		{name: "deadlock", err: &pq.Error{Code: "40P01"}, expected: postgres.ErrSerialization, retryable: true},
		{name: "exclusion violation", err: &pq.Error{Code: "23P01"}, expected: postgres.ErrExclusionViolation},
		{name: "unique violation", err: fmt.Errorf("insert: %w", &pq.Error{Code: "23505"}), expected: postgres.ErrUniqueViolation},
		{name: "foreign key violation", err: &pq.Error{Code: "23503"}, expected: postgres.ErrForeignKeyViolation},
		{name: "connection failure class", err: &pq.Error{Code: "08006"}, expected: postgres.ErrUnavailable, retryable: true},
		{name: "admin shutdown", err: &pq.Error{Code: "57P01"}, expected: postgres.ErrUnavailable, retryable: true},
		{name: "bad connection", err: driver.ErrBadConn, expected: postgres.ErrUnavailable, retryable: true},
		{name: "network error", err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}, expected: postgres.ErrUnavailable, retryable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := postgres.Classify(tt.err)

			assert.ErrorIs(t, classified, tt.expected)
			assert.ErrorIs(t, classified, tt.err)
			assert.Equal(t, tt.retryable, postgres.IsRetryable(classified))
		})
	}
}

func TestClassifyPassThrough(t *testing.T) {
	plain := errors.New("syntax error")
	assert.Equal(t, plain, postgres.Classify(plain))
	assert.Equal(t, context.Canceled, postgres.Classify(context.Canceled))
	assert.Equal(t, error(&pq.Error{Code: "42601"}).Error(), postgres.Classify(&pq.Error{Code: "42601"}).Error())
	assert.Nil(t, postgres.Classify(nil))
	assert.False(t, postgres.IsRetryable(plain))

	once := postgres.Classify(&pq.Error{Code: "40001"})
	assert.Equal(t, once, postgres.Classify(once))
}
