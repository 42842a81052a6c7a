package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, если бронь не найдена
	ErrReservationNotFound = errors.New("service/reservations: reservation not found")

	// ErrCannotCancel возвращается при попытке отозвать бронь не в статусе pending
	// Подтверждённые брони отменяются только через платёжное событие
	ErrCannotCancel = errors.New("service/reservations: reservation cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("service/reservations: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service/reservations: internal error")
)
