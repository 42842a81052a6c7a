package handle_payment_event

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/notifyservice"
)

// UseCase use case обработки платёжного события
type UseCase struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	notifyClient    NotifyClient
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	notifyClient NotifyClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		notifyClient:    notifyClient,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute применяет платёжное событие к брони
//
// Переходы выполняются в сериализуемой транзакции с блокировкой строки
// брони: конкурентная доставка одного события применится ровно один раз.
// Повторная доставка события в уже достигнутом состоянии - no-op
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("HandlePaymentEvent: reservation=%d, kind=%s, payment=%s",
		req.ReservationID, req.Kind, req.ExternalPaymentID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("HandlePaymentEvent: validation failed: %v", err)
		return nil, err
	}

	var (
		applied     bool
		finalStatus domain.ReservationStatus
		confirmed   *domain.Reservation
	)

	// 2. Применяем переход в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		applied = false
		confirmed = nil

		// 2.1. Загружаем бронь с блокировкой строки (FOR UPDATE)
		reservation, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("HandlePaymentEvent: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("HandlePaymentEvent: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 2.2. Определяем переход по типу события и текущему статусу
		switch req.Kind {
		case domain.PaymentEventSucceeded:
			switch reservation.Status {
			case domain.StatusConfirmed:
				// Повторная доставка - состояние уже достигнуто
			case domain.StatusCancelled:
				uc.logger.Warn("HandlePaymentEvent: payment succeeded for cancelled reservation id=%d", reservation.ID)
				return ErrConflictingTransition
			case domain.StatusPending:
				if err := uc.reservationRepo.UpdateStatus(txCtx, reservation.ID, domain.StatusConfirmed, &req.ExternalPaymentID); err != nil {
					uc.logger.Error("HandlePaymentEvent: failed to confirm reservation id=%d: %v", reservation.ID, err)
					return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
				}
				reservation.Status = domain.StatusConfirmed
				reservation.ExternalPaymentID = &req.ExternalPaymentID
				applied = true
				confirmed = reservation
			}
		case domain.PaymentEventCanceled:
			switch reservation.Status {
			case domain.StatusConfirmed, domain.StatusCancelled:
				// Отмена платежа по завершённой брони ничего не меняет
			case domain.StatusPending:
				if err := uc.reservationRepo.UpdateStatus(txCtx, reservation.ID, domain.StatusCancelled, nil); err != nil {
					uc.logger.Error("HandlePaymentEvent: failed to cancel reservation id=%d: %v", reservation.ID, err)
					return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
				}
				reservation.Status = domain.StatusCancelled
				applied = true
			}
		}

		finalStatus = reservation.Status
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 3. Уведомление отправляем после коммита и только при переходе
	// pending -> confirmed: ошибка отправки не откатывает подтверждение
	if confirmed != nil {
		uc.sendConfirmedNotification(ctx, confirmed)
	}

	uc.logger.Info("HandlePaymentEvent: reservation id=%d, status=%s, applied=%t",
		req.ReservationID, finalStatus, applied)

	return &Response{
		Applied: applied,
		Status:  finalStatus,
	}, nil
}

func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationId must be positive", ErrInvalidInput)
	}
	if !req.Kind.IsValid() {
		return fmt.Errorf("%w: unknown event kind %q", ErrInvalidInput, req.Kind)
	}
	return nil
}

// sendConfirmedNotification отправляет уведомление о подтверждённой брони
// Ошибки только логируются: бронь уже подтверждена
func (uc *UseCase) sendConfirmedNotification(ctx context.Context, reservation *domain.Reservation) {
	notification := &notifyservice.ConfirmedReservation{
		ReservationID: reservation.ID,
		GuestName:     reservation.GuestName,
		GuestPhone:    reservation.GuestPhone,
		Date:          reservation.Date,
		StartTime:     reservation.StartTime,
		PartySize:     reservation.PartySize,
		DepositAmount: reservation.DepositAmount,
		TableID:       reservation.TableID,
	}

	if reservation.TableID != nil {
		table, err := uc.tableRepo.GetByID(ctx, *reservation.TableID)
		if err != nil {
			uc.logger.Warn("HandlePaymentEvent: failed to load table id=%d for notification: %v", *reservation.TableID, err)
		} else {
			notification.Zone = &table.Zone
			notification.SeatCount = &table.SeatCount
		}
	}

	if err := uc.notifyClient.SendReservationConfirmed(ctx, notification); err != nil {
		uc.logger.Warn("HandlePaymentEvent: failed to send confirmation notification for reservation id=%d: %v",
			reservation.ID, err)
	}
}
