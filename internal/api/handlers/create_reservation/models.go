package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	GuestName  string  `json:"guestName"`
	GuestPhone string  `json:"guestPhone"`
	Date       string  `json:"date"`      // "2026-09-15"
	StartTime  string  `json:"startTime"` // "19:00"
	PartySize  int     `json:"partySize"`
	TableID    *int64  `json:"tableId,omitempty"`
	Comment    *string `json:"comment,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID            int64   `json:"id"`
	GuestName     string  `json:"guestName"`
	GuestPhone    string  `json:"guestPhone"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	PartySize     int     `json:"partySize"`
	TableID       int64   `json:"tableId"`
	Status        string  `json:"status"`
	DepositAmount float64 `json:"depositAmount"`
	Comment       *string `json:"comment,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		GuestName:  r.GuestName,
		GuestPhone: r.GuestPhone,
		Date:       date,
		StartTime:  startTime,
		PartySize:  r.PartySize,
		TableID:    r.TableID,
		Comment:    r.Comment,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:            resp.ID,
		GuestName:     resp.GuestName,
		GuestPhone:    resp.GuestPhone,
		Date:          resp.Date.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		PartySize:     resp.PartySize,
		TableID:       resp.TableID,
		Status:        resp.Status,
		DepositAmount: resp.DepositAmount,
		Comment:       resp.Comment,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
