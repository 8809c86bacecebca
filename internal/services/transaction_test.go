package services

import (
	"context"
	"errors"
	"testing"

	"leasehold/internal/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newMockTransactionService(t *testing.T) (*TransactionService, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: conn}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	return NewTransactionService(database.DB{SQL: gormDB}), mock
}

func TestTransactionService_Execute(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		service, mock := newMockTransactionService(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		called := false
		err := service.Execute(context.Background(), func(ctx context.Context, tx *gorm.DB) error {
			called = tx != nil
			return nil
		})

		assert.NoError(t, err)
		assert.True(t, called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back and returns the original error", func(t *testing.T) {
		service, mock := newMockTransactionService(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		notFound := errors.New("application not found")
		err := service.Execute(context.Background(), func(context.Context, *gorm.DB) error {
			return notFound
		})

		assert.ErrorIs(t, err, notFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("converts a panic into an error", func(t *testing.T) {
		service, mock := newMockTransactionService(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		err := service.Execute(context.Background(), func(context.Context, *gorm.DB) error {
			panic("photo list corrupted")
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "panic during transaction")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		service, mock := newMockTransactionService(t)
		mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

		called := false
		err := service.Execute(context.Background(), func(context.Context, *gorm.DB) error {
			called = true
			return nil
		})

		assert.Error(t, err)
		assert.False(t, called)
	})
}
