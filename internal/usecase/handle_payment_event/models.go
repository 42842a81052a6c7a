package handle_payment_event

import "github.com/m04kA/SMC-ReservationService/internal/domain"

// Request входящее событие платёжной системы
type Request struct {
	ReservationID     int64                   // ID брони из metadata платежа
	Kind              domain.PaymentEventKind // Тип события
	ExternalPaymentID string                  // ID платежа во внешней системе
}

// Request валидируется структурно; семантические конфликты
// (неизвестная бронь, противоречащий переход) - отдельные ошибки

// Response результат применения события
type Response struct {
	// Applied true, если статус брони изменился этим событием
	// Повторная доставка того же события возвращает Applied=false
	Applied bool
	// Status статус брони после применения события
	Status domain.ReservationStatus
}
