package store_test

import (
	"context"
	"testing"

	"go-esyleave/internal/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormMock(t *testing.T) (*store.GormBackend, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	return store.NewGormBackend(gormDB), mock
}

func TestGormBackend_ReadMissingTable(t *testing.T) {
	backend, mock := newGormMock(t)

	mock.ExpectQuery(`SELECT \* FROM "table_blobs" WHERE name = \$1`).
		WithArgs(store.TableUsers, 1).
		WillReturnRows(sqlmock.NewRows([]string{"name", "data"}))

	_, err := backend.ReadTable(context.Background(), store.TableUsers)
	assert.ErrorIs(t, err, store.ErrTableMissing)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormBackend_ReadTable(t *testing.T) {
	backend, mock := newGormMock(t)

	payload := []byte(`[{"id":"emp-1"}]`)
	mock.ExpectQuery(`SELECT \* FROM "table_blobs" WHERE name = \$1`).
		WithArgs(store.TableUsers, 1).
		WillReturnRows(sqlmock.NewRows([]string{"name", "data"}).AddRow(store.TableUsers, payload))

	data, err := backend.ReadTable(context.Background(), store.TableUsers)
	assert.NoError(t, err)
	assert.Equal(t, payload, data)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormBackend_WriteTableUpserts(t *testing.T) {
	backend, mock := newGormMock(t)

	payload := []byte(`[{"id":"emp-1"}]`)
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "table_blobs" .+ ON CONFLICT \("name"\) DO UPDATE`).
		WithArgs(store.TableUsers, payload).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := backend.WriteTable(context.Background(), store.TableUsers, payload)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
