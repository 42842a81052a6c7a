package notifyservice

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// ConfirmedReservation данные подтверждённой брони для уведомления
type ConfirmedReservation struct {
	ReservationID int64
	GuestName     string
	GuestPhone    string
	Date          time.Time
	StartTime     types.TimeString
	PartySize     int
	DepositAmount float64

	// Данные назначенного стола (опционально)
	TableID   *int64
	Zone      *domain.Zone
	SeatCount *int
}

// sendMessageRequest тело запроса Telegram Bot API sendMessage
type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// sendMessageResponse ответ Telegram Bot API
type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
}
