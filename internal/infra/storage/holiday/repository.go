package holiday

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Repository исключения из расписания мастеров (выходные и сокращённые дни)
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByStaffAndDate исключение мастера на дату или ErrHolidayNotFound
func (r *Repository) GetByStaffAndDate(ctx context.Context, companyID, staffID int64, date time.Time) (*domain.HolidayOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"company_id",
		"staff_id",
		"date",
		"time_from",
		"time_to",
	).
		From("staff_holidays").
		Where(squirrel.Eq{"company_id": companyID}).
		Where(squirrel.Eq{"staff_id": staffID}).
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffAndDate - build select query: %v", ErrBuildQuery, err)
	}

	var (
		h        domain.HolidayOverride
		timeFrom types.TimeString
		timeTo   types.TimeString
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&h.ID,
		&h.CompanyID,
		&h.StaffID,
		&h.Date,
		&timeFrom,
		&timeTo,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHolidayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffAndDate - scan holiday: %v", ErrScanRow, err)
	}

	if !timeFrom.IsZero() {
		h.TimeFrom = &timeFrom
	}
	if !timeTo.IsZero() {
		h.TimeTo = &timeTo
	}

	return &h, nil
}
