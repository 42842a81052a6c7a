package models

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// SettingsResponse режим работы ресторана
type SettingsResponse struct {
	OpeningTime              string `json:"openingTime"`
	ClosingTime              string `json:"closingTime"`
	LastBookingTime          string `json:"lastBookingTime"`
	MinAdvanceHours          int    `json:"minAdvanceHours"`
	ReservationDurationHours int    `json:"reservationDurationHours"`
	Timezone                 string `json:"timezone"`
}

// UpdateSettingsRequest частичное обновление настроек
// Неуказанные поля сохраняют текущие значения
type UpdateSettingsRequest struct {
	OpeningTime              *string `json:"openingTime,omitempty"`
	ClosingTime              *string `json:"closingTime,omitempty"`
	LastBookingTime          *string `json:"lastBookingTime,omitempty"`
	MinAdvanceHours          *int    `json:"minAdvanceHours,omitempty"`
	ReservationDurationHours *int    `json:"reservationDurationHours,omitempty"`
	Timezone                 *string `json:"timezone,omitempty"`
}

// ApplyToSettings применяет частичное обновление к настройкам
// Формат времени и согласованность границ проверяет domain.OperatingSettings.Validate
func (r *UpdateSettingsRequest) ApplyToSettings(s *domain.OperatingSettings) {
	if r.OpeningTime != nil {
		s.OpeningTime = types.TimeString(*r.OpeningTime)
	}
	if r.ClosingTime != nil {
		s.ClosingTime = types.TimeString(*r.ClosingTime)
	}
	if r.LastBookingTime != nil {
		s.LastBookingTime = types.TimeString(*r.LastBookingTime)
	}
	if r.MinAdvanceHours != nil {
		s.MinAdvanceHours = *r.MinAdvanceHours
	}
	if r.ReservationDurationHours != nil {
		s.ReservationDurationHours = *r.ReservationDurationHours
	}
	if r.Timezone != nil {
		s.Timezone = *r.Timezone
	}
}

// FromDomainSettings конвертирует доменные настройки в ответ API
func FromDomainSettings(s *domain.OperatingSettings) *SettingsResponse {
	return &SettingsResponse{
		OpeningTime:              s.OpeningTime.String(),
		ClosingTime:              s.ClosingTime.String(),
		LastBookingTime:          s.LastBookingTime.String(),
		MinAdvanceHours:          s.MinAdvanceHours,
		ReservationDurationHours: s.ReservationDurationHours,
		Timezone:                 s.Timezone,
	}
}
