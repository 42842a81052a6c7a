package payment_webhook

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	handlePaymentEvent "github.com/m04kA/SMC-ReservationService/internal/usecase/handle_payment_event"
)

// WebhookRequest HTTP request model платёжного уведомления
type WebhookRequest struct {
	ReservationID int64  `json:"reservationId"`
	Event         string `json:"event"` // "payment.succeeded" или "payment.canceled"
	PaymentID     string `json:"paymentId"`
}

// WebhookResponse подтверждение приёма события
type WebhookResponse struct {
	Accepted bool   `json:"accepted"`
	Status   string `json:"status,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *WebhookRequest) ToUseCaseRequest() *handlePaymentEvent.Request {
	return &handlePaymentEvent.Request{
		ReservationID:     r.ReservationID,
		Kind:              domain.PaymentEventKind(r.Event),
		ExternalPaymentID: r.PaymentID,
	}
}
