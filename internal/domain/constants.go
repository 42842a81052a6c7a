package domain

import "github.com/m04kA/SMC-ReservationService/pkg/types"

// Настройки ресторана по умолчанию
// Используются, когда в БД нет строки restaurant_settings
const (
	DefaultOpeningTime              types.TimeString = "12:00"
	DefaultClosingTime              types.TimeString = "23:00"
	DefaultLastBookingTime          types.TimeString = "21:00"
	DefaultMinAdvanceHours                           = 3
	DefaultReservationDurationHours                  = 2
	DefaultTimezone                                  = "Europe/Moscow"
)

// SlotStepMinutes шаг сетки слотов, фиксированный
const SlotStepMinutes = 30

// DefaultDepositPerPerson депозит за одного гостя в рублях,
// переопределяется в config.toml
const DefaultDepositPerPerson = 500.0

// Ограничения входных данных
const (
	MinPartySize       = 1
	MaxPartySize       = 20
	MaxCommentLength   = 500
	MaxGuestNameLength = 100
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatusesForCreation статусы, которые занимают стол при проверке
// конфликтов в момент создания брони. Неоплаченные брони учитываются,
// чтобы на один стол и слот нельзя было создать два холда
var BlockingStatusesForCreation = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}

// BlockingStatusesForGrid статусы, которые занимают стол в публичной
// сетке доступности
var BlockingStatusesForGrid = []ReservationStatus{
	StatusConfirmed,
}
