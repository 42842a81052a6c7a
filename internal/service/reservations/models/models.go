package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// ReservationResponse бронирование в ответе API
type ReservationResponse struct {
	ID                int64            `json:"id"`
	GuestName         string           `json:"guestName"`
	GuestPhone        string           `json:"guestPhone"`
	Date              string           `json:"date"`
	StartTime         types.TimeString `json:"startTime"`
	PartySize         int              `json:"partySize"`
	TableID           *int64           `json:"tableId,omitempty"`
	Status            string           `json:"status"`
	DepositAmount     float64          `json:"depositAmount"`
	ExternalPaymentID *string          `json:"externalPaymentId,omitempty"`
	Comment           *string          `json:"comment,omitempty"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	Total        int                    `json:"total"`
}

// ListReservationsRequest параметры выборки бронирований
type ListReservationsRequest struct {
	Date    *time.Time
	Status  *string
	TableID *int64
}

// ToDomainFilter конвертирует запрос в доменный фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationsFilter, error) {
	filter := domain.ReservationsFilter{
		Date:    r.Date,
		TableID: r.TableID,
	}

	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return domain.ReservationsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomainReservationStatus валидирует и конвертирует строковый статус
func ToDomainReservationStatus(s string) (domain.ReservationStatus, error) {
	switch domain.ReservationStatus(s) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled:
		return domain.ReservationStatus(s), nil
	default:
		return "", fmt.Errorf("unknown reservation status %q", s)
	}
}

// FromDomainReservation конвертирует доменное бронирование в ответ API
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:                r.ID,
		GuestName:         r.GuestName,
		GuestPhone:        r.GuestPhone,
		Date:              r.Date.Format(domain.DateFormat),
		StartTime:         r.StartTime,
		PartySize:         r.PartySize,
		TableID:           r.TableID,
		Status:            string(r.Status),
		DepositAmount:     r.DepositAmount,
		ExternalPaymentID: r.ExternalPaymentID,
		Comment:           r.Comment,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список доменных бронирований
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	items := make([]*ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		items = append(items, FromDomainReservation(r))
	}
	return &ReservationListResponse{
		Reservations: items,
		Total:        len(items),
	}
}
