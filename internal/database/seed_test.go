package database_test

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

const catalogSize = 13

func TestSeedInterests_SkipsExistingEntries(t *testing.T) {
	d, mock := newMockDatabase(t)

	for i := 0; i < catalogSize; i++ {
		mock.ExpectQuery(`SELECT count\(\*\) FROM "interests"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	}

	require.NoError(t, d.SeedInterests())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedInterests_CreatesMissingEntries(t *testing.T) {
	d, mock := newMockDatabase(t)

	for i := 0; i < catalogSize; i++ {
		mock.ExpectQuery(`SELECT count\(\*\) FROM "interests"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "interests"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(i + 1))
		mock.ExpectCommit()
	}

	require.NoError(t, d.SeedInterests())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedInterests_CountErrorPropagates(t *testing.T) {
	d, mock := newMockDatabase(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "interests"`).
		WillReturnError(errors.New("connection refused"))

	err := d.SeedInterests()
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
