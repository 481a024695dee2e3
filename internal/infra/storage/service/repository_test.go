package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetByIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM services WHERE company_id = $1 AND id IN ($2,$3) ORDER BY id ASC")).
		WithArgs(int64(1), int64(5), int64(6)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "company_id", "name", "duration_minutes", "price", "active"}).
			AddRow(int64(5), int64(1), "Haircut", 30, 25.0, true).
			AddRow(int64(6), int64(1), "Beard", 15, 10.0, true))

	got, err := NewRepository(db).GetByIDs(context.Background(), 1, []int64{5, 6, 5})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 30, got[0].DurationMinutes)
	assert.Equal(t, "Beard", got[1].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByIDs_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	got, err := NewRepository(db).GetByIDs(context.Background(), 1, nil)

	require.NoError(t, err)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByIDs_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM services").WillReturnError(errors.New("connection reset"))

	_, err = NewRepository(db).GetByIDs(context.Background(), 1, []int64{5})

	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_GetIDsByLocation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM location_services ls JOIN services s ON s.id = ls.service_id WHERE ls.location_id = $1 AND s.company_id = $2 AND s.active = $3")).
		WithArgs(int64(3), int64(1), true).
		WillReturnRows(sqlmock.NewRows([]string{"service_id"}).AddRow(int64(5)).AddRow(int64(9)))

	got, err := NewRepository(db).GetIDsByLocation(context.Background(), 1, 3)

	require.NoError(t, err)
	assert.Equal(t, []int64{5, 9}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}
