package book_appointment

import "errors"

var (
	// ErrSlotNotAvailable возвращается, когда выбранное время уже недоступно
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrAppointmentNotFound возвращается, когда переносимая запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAppointmentCancelled возвращается при попытке перенести отменённую запись
	ErrAppointmentCancelled = errors.New("appointment is cancelled")

	// ErrLocationNotFound возвращается, когда точка не найдена
	ErrLocationNotFound = errors.New("location not found")

	// ErrStaffNotFound возвращается, когда мастер не найден
	ErrStaffNotFound = errors.New("staff not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrServiceNotOffered возвращается, когда услуга не оказывается на точке
	ErrServiceNotOffered = errors.New("service is not offered at this location")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
