package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

// Repository читает недельные расписания точек и мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetLocationSchedule расписание точки.
// ErrLocationNotFound - точки нет в компании, ErrScheduleNotFound - расписание не назначено.
func (r *Repository) GetLocationSchedule(ctx context.Context, companyID, locationID int64) (*domain.Schedule, error) {
	return r.getOwnerSchedule(ctx, "locations", companyID, locationID, ErrLocationNotFound)
}

// GetStaffSchedule расписание мастера.
// ErrStaffNotFound - мастера нет в компании, ErrScheduleNotFound - расписание не назначено.
func (r *Repository) GetStaffSchedule(ctx context.Context, companyID, staffID int64) (*domain.Schedule, error) {
	return r.getOwnerSchedule(ctx, "staff", companyID, staffID, ErrStaffNotFound)
}

// getOwnerSchedule одним запросом проверяет владельца и собирает расписание с правилами по дням
func (r *Repository) getOwnerSchedule(ctx context.Context, ownerTable string, companyID, ownerID int64, errOwnerNotFound error) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"s.id",
		"s.company_id",
		"s.name",
		"d.day_number",
		"d.time_from",
		"d.time_to",
		"d.is_holiday",
	).
		From(ownerTable + " o").
		LeftJoin("schedules s ON s.id = o.schedule_id").
		LeftJoin("schedule_days d ON d.schedule_id = s.id").
		Where(squirrel.Eq{"o.id": ownerID}).
		Where(squirrel.Eq{"o.company_id": companyID}).
		OrderBy("d.day_number ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getOwnerSchedule(%s) - build select query: %v", ErrBuildQuery, ownerTable, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getOwnerSchedule(%s) - execute query: %v", ErrExecQuery, ownerTable, err)
	}
	defer rows.Close()

	var (
		schedule  *domain.Schedule
		ownerSeen bool
	)
	for rows.Next() {
		var (
			scheduleID sql.NullInt64
			company    sql.NullInt64
			name       sql.NullString
			dayNumber  sql.NullInt32
			day        domain.ScheduleDay
			isHoliday  sql.NullBool
		)
		if err := rows.Scan(&scheduleID, &company, &name, &dayNumber, &day.TimeFrom, &day.TimeTo, &isHoliday); err != nil {
			return nil, fmt.Errorf("%w: getOwnerSchedule(%s) - scan row: %v", ErrScanRow, ownerTable, err)
		}
		ownerSeen = true

		if !scheduleID.Valid {
			continue
		}
		if schedule == nil {
			schedule = &domain.Schedule{
				ID:        scheduleID.Int64,
				CompanyID: company.Int64,
				Name:      name.String,
				Days:      make([]domain.ScheduleDay, 0, 7),
			}
		}
		if dayNumber.Valid {
			day.DayNumber = int(dayNumber.Int32)
			day.IsHoliday = isHoliday.Bool
			schedule.Days = append(schedule.Days, day)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getOwnerSchedule(%s) - rows error: %v", ErrScanRow, ownerTable, err)
	}

	if !ownerSeen {
		return nil, errOwnerNotFound
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	return schedule, nil
}
