package get_availability

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	getDayAvailability "github.com/m04kA/SMC-ReservationService/internal/usecase/get_day_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date            string         `json:"date"`
	WorkingHours    WorkingHours   `json:"workingHours"`
	MinAdvanceHours int            `json:"minAdvanceHours"`
	Slots           []SlotResponse `json:"slots"`
}

// WorkingHours рабочее окно ресторана на дату
type WorkingHours struct {
	Open        string `json:"open"`
	Close       string `json:"close"`
	LastBooking string `json:"lastBooking"`
}

// SlotResponse слот сетки доступности
type SlotResponse struct {
	StartTime           string  `json:"startTime"`
	IsAvailable         bool    `json:"isAvailable"`
	AvailableTableCount int     `json:"availableTableCount"`
	Reason              *string `json:"reason,omitempty"`
}

// ToUseCaseRequest конвертирует параметры HTTP запроса в модель use case
func ToUseCaseRequest(dateStr string, partySize int) (*getDayAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getDayAvailability.Request{
		Date:      date,
		PartySize: partySize,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDayAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		item := SlotResponse{
			StartTime:           slot.StartTime.String(),
			IsAvailable:         slot.IsAvailable,
			AvailableTableCount: slot.AvailableTableCount,
		}
		if slot.Reason != nil {
			reason := string(*slot.Reason)
			item.Reason = &reason
		}
		slots = append(slots, item)
	}

	return &AvailabilityResponse{
		Date: resp.Date.Format(domain.DateFormat),
		WorkingHours: WorkingHours{
			Open:        resp.WorkingHours.OpeningTime.String(),
			Close:       resp.WorkingHours.ClosingTime.String(),
			LastBooking: resp.WorkingHours.LastBookingTime.String(),
		},
		MinAdvanceHours: resp.MinAdvanceHours,
		Slots:           slots,
	}
}
