package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.GuestName == "" {
		return fmt.Errorf("%w: guestName is required", ErrInvalidInput)
	}
	if len(req.GuestName) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: guestName is too long", ErrInvalidInput)
	}

	if req.GuestPhone == "" {
		return fmt.Errorf("%w: guestPhone is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.PartySize < domain.MinPartySize {
		return fmt.Errorf("%w: partySize must be positive", ErrInvalidInput)
	}
	if req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: partySize must not exceed %d", ErrInvalidInput, domain.MaxPartySize)
	}

	if req.TableID != nil && *req.TableID <= 0 {
		return fmt.Errorf("%w: tableId must be positive", ErrInvalidInput)
	}

	if req.Comment != nil && len(*req.Comment) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment is too long", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(date, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}

// validateAdvanceNotice проверяет правило минимального уведомления:
// момент начала брони не может быть раньше now + minAdvanceHours
func validateAdvanceNotice(req *Request, now time.Time, settings domain.OperatingSettings) error {
	startAt, err := req.StartTime.At(req.Date, settings.Location())
	if err != nil {
		return fmt.Errorf("%w: failed to compute booking instant: %v", ErrInternal, err)
	}

	minAllowed := now.Add(time.Duration(settings.MinAdvanceHours) * time.Hour)
	if startAt.Before(minAllowed) {
		return fmt.Errorf("%w: must book at least %d hours in advance", ErrTooLateToBook, settings.MinAdvanceHours)
	}

	return nil
}

// validateWorkingWindow проверяет, что время начала внутри окна
// [открытие, последняя бронь] включительно
func validateWorkingWindow(req *Request, settings domain.OperatingSettings) error {
	if req.StartTime.IsBefore(settings.OpeningTime) || req.StartTime.IsAfter(settings.LastBookingTime) {
		return fmt.Errorf("%w: bookings are accepted from %s to %s",
			ErrOutsideWorkingHours, settings.OpeningTime, settings.LastBookingTime)
	}
	return nil
}
