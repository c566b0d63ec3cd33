package store

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/fleet-notify/internal/logger"
	"github.com/MKhiriev/fleet-notify/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPreferenceRepo(t *testing.T) (PreferenceRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewPreferenceRepository(newDBFromSQL(db), logger.Nop()), mock
}

func TestPreferenceRepository_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestPreferenceRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(getPreference)).
			WithArgs(models.RememberDriverKey).
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("alice"))

		value, found, err := repo.Get(testContext(), models.RememberDriverKey)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "alice", value)
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newTestPreferenceRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(getPreference)).
			WithArgs(models.RememberDriverKey).
			WillReturnRows(sqlmock.NewRows([]string{"value"}))

		value, found, err := repo.Get(testContext(), models.RememberDriverKey)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, value)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newTestPreferenceRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(getPreference)).
			WillReturnError(errors.New("disk I/O error"))

		_, _, err := repo.Get(testContext(), models.RememberDriverKey)
		assert.ErrorIs(t, err, ErrScanningRow)
	})

	t.Run("empty key", func(t *testing.T) {
		repo, _ := newTestPreferenceRepo(t)
		_, _, err := repo.Get(testContext(), "")
		assert.ErrorIs(t, err, ErrEmptyPreferenceKey)
	})
}

func TestPreferenceRepository_Set(t *testing.T) {
	repo, mock := newTestPreferenceRepo(t)
	mock.ExpectExec(regexp.QuoteMeta(upsertPreference)).
		WithArgs(models.RememberDriverKey, "alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Set(testContext(), models.RememberDriverKey, "alice"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepository_SetError(t *testing.T) {
	repo, mock := newTestPreferenceRepo(t)
	mock.ExpectExec(regexp.QuoteMeta(upsertPreference)).
		WillReturnError(errors.New("database is locked"))

	err := repo.Set(testContext(), models.RememberDriverKey, "alice")
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestPreferenceRepository_Delete(t *testing.T) {
	repo, mock := newTestPreferenceRepo(t)
	mock.ExpectExec(regexp.QuoteMeta(deletePreference)).
		WithArgs(models.RememberDriverKey).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(testContext(), models.RememberDriverKey))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepository_EmptyKeyWrites(t *testing.T) {
	repo, _ := newTestPreferenceRepo(t)
	assert.ErrorIs(t, repo.Set(testContext(), "", "x"), ErrEmptyPreferenceKey)
	assert.ErrorIs(t, repo.Delete(testContext(), ""), ErrEmptyPreferenceKey)
}

func TestCreateLocalSchema(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS preferences")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, newDBFromSQL(db).createLocalSchema(testContext()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSqliteDSN(t *testing.T) {
	dsn := sqliteDSN("/var/lib/fleet/driver.db")

	assert.True(t, strings.HasPrefix(dsn, "file:/var/lib/fleet/driver.db?"))
	assert.Contains(t, dsn, "_journal_mode=WAL")
	assert.Contains(t, dsn, "_busy_timeout=5000")
}
