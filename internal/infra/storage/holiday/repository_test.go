package holiday

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var holidayColumns = []string{"id", "company_id", "staff_id", "date", "time_from", "time_to"}

func TestRepository_GetByStaffAndDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	date := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM staff_holidays WHERE company_id = $1 AND staff_id = $2 AND date = $3")).
		WithArgs(int64(1), int64(7), "2025-06-10").
		WillReturnRows(sqlmock.NewRows(holidayColumns).
			AddRow(int64(3), int64(1), int64(7), date, "12:00:00", "15:30:00"))

	got, err := NewRepository(db).GetByStaffAndDate(context.Background(), 1, 7, date)

	require.NoError(t, err)
	assert.False(t, got.IsDayOff())
	assert.Equal(t, "12:00", got.TimeFrom.String())
	assert.Equal(t, "15:30", got.TimeTo.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByStaffAndDate_DayOff(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM staff_holidays").
		WillReturnRows(sqlmock.NewRows(holidayColumns).AddRow(int64(3), int64(1), int64(7), date, nil, nil))

	got, err := NewRepository(db).GetByStaffAndDate(context.Background(), 1, 7, date)

	require.NoError(t, err)
	assert.Nil(t, got.TimeFrom)
	assert.True(t, got.IsDayOff())
}

func TestRepository_GetByStaffAndDate_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM staff_holidays").WillReturnRows(sqlmock.NewRows(holidayColumns))

	_, err = NewRepository(db).GetByStaffAndDate(context.Background(), 1, 7, time.Now())

	assert.ErrorIs(t, err, ErrHolidayNotFound)
}
