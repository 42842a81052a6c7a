package create_reservation

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате бронирования (в прошлом)
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrTooLateToBook возвращается, когда бронь нарушает правило минимального уведомления
	ErrTooLateToBook = errors.New("create_reservation: too late to book this time")

	// ErrOutsideWorkingHours возвращается, когда время вне окна [открытие, последняя бронь]
	ErrOutsideWorkingHours = errors.New("create_reservation: time is outside working hours")

	// ErrTableNotFound возвращается, когда указанный стол не существует или выведен из зала
	ErrTableNotFound = errors.New("create_reservation: table not found")

	// ErrTableTooSmall возвращается, когда указанный стол не вмещает компанию
	ErrTableTooSmall = errors.New("create_reservation: table is too small for the party")

	// ErrTableNotAvailable возвращается, когда указанный стол занят пересекающейся бронью
	ErrTableNotAvailable = errors.New("create_reservation: table is not available at this time")

	// ErrNoTablesAvailable возвращается, когда автоподбор не нашёл свободного стола
	// Запрос корректен, исчерпана вместимость - клиенту стоит выбрать другое время
	ErrNoTablesAvailable = errors.New("create_reservation: no suitable tables available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
