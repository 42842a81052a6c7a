package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	tableRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/table"
)

// UseCase use case создания бронирования
type UseCase struct {
	reservationRepo  ReservationRepository
	tableRepo        TableRepository
	settingsProvider SettingsProvider
	txManager        TransactionManager
	timeProvider     TimeProvider
	depositPerPerson float64
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	settingsProvider SettingsProvider,
	txManager TransactionManager,
	depositPerPerson float64,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo:  reservationRepo,
		tableRepo:        tableRepo,
		settingsProvider: settingsProvider,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		depositPerPerson: depositPerPerson,
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Проверка занятости и вставка идут в одной сериализуемой транзакции:
// две конкурентные брони на один стол и пересекающееся время не могут
// пройти обе. В проверке конфликтов участвуют и неоплаченные (pending)
// брони, чтобы нельзя было создать два холда на один слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: guest=%s, date=%s, time=%s, partySize=%d",
		req.GuestName, req.Date.Format(domain.DateFormat), req.StartTime, req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Настройки и текущее время в таймзоне ресторана
		settings := uc.settingsProvider.GetSettings(txCtx)
		now := uc.timeProvider.Now().In(settings.Location())

		// 2.2. Дата не в прошлом
		if err := validateDate(req.Date, now); err != nil {
			uc.logger.Warn("CreateReservation: date validation failed: %v", err)
			return err
		}

		// 2.3. Правило минимального уведомления
		if err := validateAdvanceNotice(req, now, settings); err != nil {
			uc.logger.Warn("CreateReservation: advance notice validation failed: %v", err)
			return err
		}

		// 2.4. Время внутри рабочего окна
		if err := validateWorkingWindow(req, settings); err != nil {
			uc.logger.Warn("CreateReservation: working window validation failed: %v", err)
			return err
		}

		// 2.5. Занятость на дату с блокировкой строк (FOR UPDATE)
		occupied, err := uc.reservationRepo.GetOccupied(txCtx, req.Date, domain.BlockingStatusesForCreation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get occupied reservations: %v", err)
			return fmt.Errorf("%w: failed to get occupied reservations: %v", ErrInternal, err)
		}

		intervals := domain.IntervalsFromReservations(occupied, settings.ReservationDurationHours, settings.Location())
		occupiedByTable := domain.IntervalsByTable(intervals)

		// 2.6. Определяем стол: проверяем указанный или подбираем автоматически
		var assigned *domain.Table
		if req.TableID != nil {
			assigned, err = uc.checkRequestedTable(txCtx, req, settings, occupiedByTable)
			if err != nil {
				return err
			}
		} else {
			assigned, err = uc.autoSelectTable(txCtx, req, settings, occupiedByTable)
			if err != nil {
				return err
			}
		}

		// 2.7. Депозит считается один раз при создании и больше не меняется
		deposit := float64(req.PartySize) * uc.depositPerPerson

		// 2.8. Создаем бронь в статусе pending - стол станет занятым
		// для публичной сетки только после подтверждения оплаты
		reservation := &domain.Reservation{
			GuestName:     req.GuestName,
			GuestPhone:    req.GuestPhone,
			Date:          req.Date,
			StartTime:     req.StartTime,
			PartySize:     req.PartySize,
			TableID:       &assigned.ID,
			Status:        domain.StatusPending,
			DepositAmount: deposit,
			Comment:       req.Comment,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d, table=%d, deposit=%.2f",
		result.ID, *result.TableID, result.DepositAmount)

	return &Response{
		ID:            result.ID,
		GuestName:     result.GuestName,
		GuestPhone:    result.GuestPhone,
		Date:          result.Date,
		StartTime:     result.StartTime,
		PartySize:     result.PartySize,
		TableID:       *result.TableID,
		Status:        string(result.Status),
		DepositAmount: result.DepositAmount,
		Comment:       result.Comment,
		CreatedAt:     result.CreatedAt,
	}, nil
}

// checkRequestedTable проверяет явно указанный гостем стол:
// существование, активность, вместимость, отсутствие конфликтов
func (uc *UseCase) checkRequestedTable(
	ctx context.Context,
	req *Request,
	settings domain.OperatingSettings,
	occupiedByTable map[int64][]domain.Interval,
) (*domain.Table, error) {
	table, err := uc.tableRepo.GetByID(ctx, *req.TableID)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			uc.logger.Warn("CreateReservation: table id=%d not found", *req.TableID)
			return nil, ErrTableNotFound
		}
		uc.logger.Error("CreateReservation: failed to get table id=%d: %v", *req.TableID, err)
		return nil, fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
	}

	// Выведенный из зала стол для гостя не существует
	if !table.IsActive {
		uc.logger.Warn("CreateReservation: table id=%d is inactive", table.ID)
		return nil, ErrTableNotFound
	}

	if table.SeatCount < req.PartySize {
		uc.logger.Warn("CreateReservation: table id=%d seats %d, party of %d requested",
			table.ID, table.SeatCount, req.PartySize)
		return nil, ErrTableTooSmall
	}

	candidate, err := domain.NewInterval(table.ID, req.Date, req.StartTime, settings.ReservationDurationHours, settings.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compute interval: %v", ErrInternal, err)
	}
	if domain.HasOverlap(candidate, occupiedByTable[table.ID]) {
		uc.logger.Warn("CreateReservation: table id=%d has conflicting reservation at %s", table.ID, req.StartTime)
		return nil, ErrTableNotAvailable
	}

	return table, nil
}

// autoSelectTable подбирает стол автоматически
func (uc *UseCase) autoSelectTable(
	ctx context.Context,
	req *Request,
	settings domain.OperatingSettings,
	occupiedByTable map[int64][]domain.Interval,
) (*domain.Table, error) {
	candidates, err := uc.tableRepo.GetActiveWithCapacity(ctx, req.PartySize)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get candidate tables: %v", err)
		return nil, fmt.Errorf("%w: failed to get candidate tables: %v", ErrInternal, err)
	}

	selected := selectTable(candidates, req.Date, req, settings, occupiedByTable)
	if selected == nil {
		uc.logger.Warn("CreateReservation: no free tables for partySize=%d at %s %s",
			req.PartySize, req.Date.Format(domain.DateFormat), req.StartTime)
		return nil, ErrNoTablesAvailable
	}

	uc.logger.Info("CreateReservation: auto-selected table id=%d (seats %d)", selected.ID, selected.SeatCount)
	return selected, nil
}
