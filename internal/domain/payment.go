package domain

// PaymentEventKind тип события платёжной системы
type PaymentEventKind string

const (
	// PaymentEventSucceeded платёж прошёл
	PaymentEventSucceeded PaymentEventKind = "payment.succeeded"
	// PaymentEventCanceled платёж отменён
	PaymentEventCanceled PaymentEventKind = "payment.canceled"
)

// IsValid returns true for known event kinds
func (k PaymentEventKind) IsValid() bool {
	return k == PaymentEventSucceeded || k == PaymentEventCanceled
}

// PaymentEvent входящее webhook-уведомление платёжной системы
// Доставка может дублироваться и приходить не по порядку
type PaymentEvent struct {
	ReservationID     int64
	Kind              PaymentEventKind
	ExternalPaymentID string
}
