package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"cashless/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitAndRollback(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	txManager := NewTransactionManager(db)

	committed := newTestAccount("committed")
	require.NoError(t, txManager.ExecuteSerializable(ctx, func(f repository.RepositoryFactory) error {
		return f.NewAccountRepository().Create(ctx, committed)
	}))

	boom := errors.New("boom")
	rolledBack := newTestAccount("rolled back")
	err := txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewAccountRepository().Create(ctx, rolledBack); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	ids, err := NewAccountRepository(db).ListIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{committed.ID}, ids)
}

func TestIsSerializationFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"Nil", nil, false},
		{"Serialization failure", &pgconn.PgError{Code: "40001"}, true},
		{"Deadlock", fmt.Errorf("commit: %w", &pgconn.PgError{Code: "40P01"}), true},
		{"Unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"SQLite busy", errors.New("database is locked"), true},
		{"Other", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isSerializationFailure(tt.err))
		})
	}
}

func TestClassifyTxError(t *testing.T) {
	err := classifyTxError(&pgconn.PgError{Code: "40001"})
	assert.ErrorIs(t, err, repository.ErrSerializationFailure)

	var pgErr *pgconn.PgError
	assert.ErrorAs(t, err, &pgErr)

	plain := errors.New("plain")
	assert.Equal(t, plain, classifyTxError(plain))
}

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueConstraintViolation(errors.New("UNIQUE constraint failed: account_auth_methods.lookup_key")))
	assert.False(t, isUniqueConstraintViolation(errors.New("syntax error")))
}
