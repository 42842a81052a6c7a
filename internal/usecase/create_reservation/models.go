package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	GuestName  string           // Имя гостя
	GuestPhone string           // Телефон гостя
	Date       time.Time        // Дата бронирования (без времени)
	StartTime  types.TimeString // Время начала (например, "19:00")
	PartySize  int              // Количество гостей
	TableID    *int64           // Конкретный стол (опционально, иначе автоподбор)
	Comment    *string          // Комментарий гостя (опционально)
}

// Response модель ответа с созданной бронью
// Бронь создаётся в статусе pending и ждёт оплаты депозита
type Response struct {
	ID            int64
	GuestName     string
	GuestPhone    string
	Date          time.Time
	StartTime     types.TimeString
	PartySize     int
	TableID       int64
	Status        string
	DepositAmount float64
	Comment       *string
	CreatedAt     time.Time
}
