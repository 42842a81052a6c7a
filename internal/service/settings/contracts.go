package settings

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек ресторана
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.OperatingSettings, error)
	Upsert(ctx context.Context, s *domain.OperatingSettings) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
