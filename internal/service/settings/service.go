package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-ReservationService/internal/service/settings/models"
)

// Service сервис для работы с настройками режима работы ресторана
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetSettings возвращает действующие настройки ресторана
// Если строка настроек не создана или БД недоступна, возвращает дефолты:
// расчёт доступности не должен падать из-за отсутствия настроек
func (s *Service) GetSettings(ctx context.Context) domain.OperatingSettings {
	stored, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("GetSettings: repository error, falling back to defaults: %v", err)
		}
		return domain.DefaultSettings()
	}

	if err := stored.Validate(); err != nil {
		s.logger.Warn("GetSettings: stored settings are invalid, falling back to defaults: %v", err)
		return domain.DefaultSettings()
	}

	return *stored
}

// Get возвращает настройки для отдачи по API
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	settings := s.GetSettings(ctx)
	return models.FromDomainSettings(&settings), nil
}

// Update применяет частичное обновление настроек
// Обновлённые настройки валидируются целиком перед записью
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating restaurant settings")

	// 1. Берём действующие настройки как основу для частичного обновления
	current := s.GetSettings(ctx)

	// 2. Применяем указанные поля
	req.ApplyToSettings(&current)

	// 3. Валидируем результат целиком
	if err := current.Validate(); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 4. Сохраняем
	if err := s.settingsRepo.Upsert(ctx, &current); err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated settings: open=%s, close=%s, lastBooking=%s, advance=%dh, duration=%dh, tz=%s",
		current.OpeningTime, current.ClosingTime, current.LastBookingTime,
		current.MinAdvanceHours, current.ReservationDurationHours, current.Timezone)

	return models.FromDomainSettings(&current), nil
}
