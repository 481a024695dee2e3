package get_free_intervals

import "errors"

var (
	// ErrLocationNotFound возвращается, когда точка не найдена в компании
	ErrLocationNotFound = errors.New("location not found")

	// ErrStaffNotFound возвращается, когда мастер не найден в компании
	ErrStaffNotFound = errors.New("staff not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
