package payment_webhook

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	handlePaymentEvent "github.com/m04kA/SMC-ReservationService/internal/usecase/handle_payment_event"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidEvent       = "некорректное платёжное событие"
)

type Handler struct {
	useCase HandlePaymentEventUseCase
	logger  Logger
}

func NewHandler(useCase HandlePaymentEventUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/webhook
//
// Структурно корректное событие всегда подтверждается 200, даже если
// бронь не найдена или переход конфликтует с текущим статусом:
// платёжная система иначе будет бесконечно ретраить доставку
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req WebhookRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/webhook - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, handlePaymentEvent.ErrInvalidInput):
			h.logger.Warn("POST /payments/webhook - Invalid event: reservation_id=%d, event=%s",
				req.ReservationID, req.Event)
			handlers.RespondBadRequest(w, msgInvalidEvent)

		case errors.Is(err, handlePaymentEvent.ErrReservationNotFound):
			h.logger.Warn("POST /payments/webhook - Reservation not found: reservation_id=%d, event=%s",
				req.ReservationID, req.Event)
			handlers.RespondJSON(w, http.StatusOK, WebhookResponse{Accepted: true})

		case errors.Is(err, handlePaymentEvent.ErrConflictingTransition):
			h.logger.Warn("POST /payments/webhook - Conflicting transition: reservation_id=%d, event=%s",
				req.ReservationID, req.Event)
			handlers.RespondJSON(w, http.StatusOK, WebhookResponse{Accepted: true})

		default:
			h.logger.Error("POST /payments/webhook - Failed to handle event: reservation_id=%d, event=%s, error=%v",
				req.ReservationID, req.Event, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/webhook - Event handled: reservation_id=%d, event=%s, status=%s, applied=%t",
		req.ReservationID, req.Event, result.Status, result.Applied)
	handlers.RespondJSON(w, http.StatusOK, WebhookResponse{
		Accepted: true,
		Status:   string(result.Status),
	})
}
