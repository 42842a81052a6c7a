package handle_payment_event

import "errors"

var (
	// ErrReservationNotFound возвращается при событии для неизвестной брони
	// Обрабатывается вызывающей стороной как мягкий no-op: платёжная система
	// не должна бесконечно ретраить уведомление по неизвестному id
	ErrReservationNotFound = errors.New("handle_payment_event: reservation not found")

	// ErrConflictingTransition возвращается при событии, противоречащем
	// терминальному состоянию брони (например, успешная оплата уже отменённой)
	ErrConflictingTransition = errors.New("handle_payment_event: conflicting state transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("handle_payment_event: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("handle_payment_event: internal error")
)
