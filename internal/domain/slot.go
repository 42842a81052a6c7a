package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// SlotReason причина недоступности слота
// Закрытое перечисление вместо произвольных строк, чтобы клиенты
// могли обработать все случаи
type SlotReason string

const (
	// SlotReasonTooLate слот начинается раньше, чем now + minAdvanceHours
	SlotReasonTooLate SlotReason = "too_late"
	// SlotReasonFullyBooked все подходящие столы заняты пересекающимися бронями
	SlotReasonFullyBooked SlotReason = "fully_booked"
)

// Slot один бронируемый слот в сетке доступности дня
type Slot struct {
	StartTime           types.TimeString
	IsAvailable         bool
	AvailableTableCount int
	Reason              *SlotReason // nil, если слот доступен
}

// WorkingHours рабочее окно ресторана на день
type WorkingHours struct {
	OpeningTime     types.TimeString
	ClosingTime     types.TimeString
	LastBookingTime types.TimeString
}

// DayAvailability сетка доступности на календарный день
// Пустой список слотов означает, что ни один стол не подходит по вместимости
// (или дата в прошлом) - это не ошибка
type DayAvailability struct {
	Date            time.Time
	WorkingHours    WorkingHours
	MinAdvanceHours int
	Slots           []Slot
}
