package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не существует или принадлежит другой компании
	ErrServiceNotFound = errors.New("service not found")

	// ErrServiceNotOffered возвращается, когда услуга не оказывается на выбранной точке
	ErrServiceNotOffered = errors.New("service is not offered at this location")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
