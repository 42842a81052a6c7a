package get_day_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// UseCase use case построения сетки доступности на день
type UseCase struct {
	reservationRepo  ReservationRepository
	tableRepo        TableRepository
	settingsProvider SettingsProvider
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	settingsProvider SettingsProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo:  reservationRepo,
		tableRepo:        tableRepo,
		settingsProvider: settingsProvider,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case построения сетки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDayAvailability: date=%s, partySize=%d",
		req.Date.Format(domain.DateFormat), req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDayAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем настройки и текущее время в таймзоне ресторана
	settings := uc.settingsProvider.GetSettings(ctx)
	now := uc.timeProvider.Now().In(settings.Location())

	response := &Response{
		Date: req.Date,
		WorkingHours: domain.WorkingHours{
			OpeningTime:     settings.OpeningTime,
			ClosingTime:     settings.ClosingTime,
			LastBookingTime: settings.LastBookingTime,
		},
		MinAdvanceHours: settings.MinAdvanceHours,
		Slots:           []Slot{},
	}

	// 3. Для прошедшей даты слотов нет
	if isDateInPast(req.Date, now) {
		uc.logger.Info("GetDayAvailability: date %s is in the past", req.Date.Format(domain.DateFormat))
		return response, nil
	}

	// 4. Столы-кандидаты: активные с достаточной вместимостью
	// Пустой список означает "стола на такую компанию не существует" -
	// возвращаем пустую сетку, это не ошибка и не "всё занято"
	candidates, err := uc.tableRepo.GetActiveWithCapacity(ctx, req.PartySize)
	if err != nil {
		uc.logger.Error("GetDayAvailability: failed to get tables: %v", err)
		return nil, fmt.Errorf("%w: failed to get tables: %v", ErrInternal, err)
	}
	if len(candidates) == 0 {
		uc.logger.Info("GetDayAvailability: no tables fit party size %d", req.PartySize)
		return response, nil
	}

	// 5. Занятость на дату читаем один раз, не по слоту
	// Публичная сетка учитывает только подтверждённые брони
	occupied, err := uc.reservationRepo.GetOccupied(ctx, req.Date, domain.BlockingStatusesForGrid)
	if err != nil {
		uc.logger.Error("GetDayAvailability: failed to get occupied reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get occupied reservations: %v", ErrInternal, err)
	}

	intervals := domain.IntervalsFromReservations(occupied, settings.ReservationDurationHours, settings.Location())
	occupiedByTable := domain.IntervalsByTable(intervals)

	// 6. Размечаем слоты
	slots, err := buildSlots(settings, req.Date, now, candidates, occupiedByTable)
	if err != nil {
		uc.logger.Error("GetDayAvailability: failed to build slots: %v", err)
		return nil, fmt.Errorf("%w: failed to build slots: %v", ErrInternal, err)
	}
	response.Slots = slots

	uc.logger.Info("GetDayAvailability: generated %d slots for date=%s, partySize=%d",
		len(slots), req.Date.Format(domain.DateFormat), req.PartySize)

	return response, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.PartySize < domain.MinPartySize {
		return fmt.Errorf("%w: partySize must be positive", ErrInvalidInput)
	}

	if req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: partySize must not exceed %d", ErrInvalidInput, domain.MaxPartySize)
	}

	return nil
}
