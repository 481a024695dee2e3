package schedule

import "errors"

var (
	// ErrLocationNotFound возвращается, когда точки нет или она принадлежит другой компании
	ErrLocationNotFound = errors.New("schedule.repository: location not found")

	// ErrStaffNotFound возвращается, когда мастера нет или он принадлежит другой компании
	ErrStaffNotFound = errors.New("schedule.repository: staff not found")

	// ErrScheduleNotFound возвращается, когда владельцу не назначено расписание
	ErrScheduleNotFound = errors.New("schedule.repository: schedule not assigned")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
