package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// ReservationStatus represents the lifecycle status of a reservation
type ReservationStatus string

const (
	// StatusPending неоплаченная бронь, ждёт подтверждения оплаты
	StatusPending ReservationStatus = "pending"
	// StatusConfirmed оплаченная бронь, занимает стол
	StatusConfirmed ReservationStatus = "confirmed"
	// StatusCancelled отменённая бронь
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation represents a table reservation in the system
type Reservation struct {
	ID                int64
	GuestName         string
	GuestPhone        string
	Date              time.Time
	StartTime         types.TimeString
	PartySize         int
	TableID           *int64 // nil, пока стол не назначен
	Status            ReservationStatus
	DepositAmount     float64
	ExternalPaymentID *string // ID платежа во внешней платёжной системе
	Comment           *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal returns true if the reservation is in a terminal state
// Из confirmed и cancelled переходов нет
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusConfirmed || r.Status == StatusCancelled
}

// IsConfirmed returns true if the reservation is confirmed
func (r *Reservation) IsConfirmed() bool {
	return r.Status == StatusConfirmed
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// CanBeCancelled returns true if the reservation can still be withdrawn
// Отозвать можно только неоплаченную бронь
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending
}

// ReservationsFilter фильтр для выборки бронирований на дату
type ReservationsFilter struct {
	Date     *time.Time         // Дата бронирования (опционально)
	Status   *ReservationStatus // Фильтр по статусу (опционально)
	TableID  *int64             // Фильтр по столу (опционально)
	Statuses []ReservationStatus // Набор статусов (опционально, имеет приоритет над Status)
}
