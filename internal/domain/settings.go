package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// ErrInvalidSettings возвращается при нарушении инвариантов настроек
var ErrInvalidSettings = errors.New("invalid operating settings")

// OperatingSettings рабочие правила ресторана
// Единственная запись на ресторан; при отсутствии записи в БД
// подставляются дефолтные значения (никогда не сохраняются)
type OperatingSettings struct {
	OpeningTime              types.TimeString
	ClosingTime              types.TimeString
	LastBookingTime          types.TimeString
	MinAdvanceHours          int
	ReservationDurationHours int
	Timezone                 string // IANA имя, например "Europe/Moscow"
}

// DefaultSettings возвращает встроенные настройки по умолчанию
func DefaultSettings() OperatingSettings {
	return OperatingSettings{
		OpeningTime:              DefaultOpeningTime,
		ClosingTime:              DefaultClosingTime,
		LastBookingTime:          DefaultLastBookingTime,
		MinAdvanceHours:          DefaultMinAdvanceHours,
		ReservationDurationHours: DefaultReservationDurationHours,
		Timezone:                 DefaultTimezone,
	}
}

// Validate проверяет инварианты настроек:
// opening <= lastBooking <= closing, положительная длительность, валидная таймзона
func (s OperatingSettings) Validate() error {
	for _, t := range []types.TimeString{s.OpeningTime, s.ClosingTime, s.LastBookingTime} {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
		}
	}

	if s.LastBookingTime.IsBefore(s.OpeningTime) {
		return fmt.Errorf("%w: lastBookingTime is before openingTime", ErrInvalidSettings)
	}
	if s.ClosingTime.IsBefore(s.LastBookingTime) {
		return fmt.Errorf("%w: closingTime is before lastBookingTime", ErrInvalidSettings)
	}

	if s.MinAdvanceHours < 0 {
		return fmt.Errorf("%w: minAdvanceHours must not be negative", ErrInvalidSettings)
	}
	if s.ReservationDurationHours <= 0 {
		return fmt.Errorf("%w: reservationDurationHours must be positive", ErrInvalidSettings)
	}

	if _, err := time.LoadLocation(s.Timezone); err != nil {
		return fmt.Errorf("%w: unknown timezone %q", ErrInvalidSettings, s.Timezone)
	}

	return nil
}

// Location возвращает таймзону ресторана
// Настройки с неизвестной таймзоной не проходят Validate, поэтому
// здесь некорректное значение заменяется на дефолтное
func (s OperatingSettings) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		loc, _ = time.LoadLocation(DefaultTimezone)
	}
	return loc
}
