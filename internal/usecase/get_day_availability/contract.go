package get_day_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetOccupied получает брони, занимающие столы на дату, с указанными статусами
	GetOccupied(ctx context.Context, date time.Time, blocking []domain.ReservationStatus) ([]*domain.Reservation, error)
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	// GetActiveWithCapacity получает активные столы с достаточной вместимостью
	GetActiveWithCapacity(ctx context.Context, partySize int) ([]*domain.Table, error)
}

// SettingsProvider интерфейс провайдера настроек ресторана
// Всегда возвращает рабочее значение (сохранённое или дефолтное)
type SettingsProvider interface {
	GetSettings(ctx context.Context) domain.OperatingSettings
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
