package holiday

import "errors"

var (
	// ErrHolidayNotFound возвращается, когда на дату нет исключения из расписания
	ErrHolidayNotFound = errors.New("holiday.repository: holiday override not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("holiday.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("holiday.repository: failed to scan row")
)
