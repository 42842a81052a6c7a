package handle_payment_event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationStorage "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/notifyservice"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

type statusUpdate struct {
	id                int64
	status            domain.ReservationStatus
	externalPaymentID *string
}

type stubReservationRepo struct {
	reservations map[int64]*domain.Reservation
	updates      []statusUpdate
}

func (s *stubReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := s.reservations[id]
	if !ok {
		return nil, reservationStorage.ErrReservationNotFound
	}
	copied := *r
	return &copied, nil
}

func (s *stubReservationRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus, externalPaymentID *string) error {
	s.updates = append(s.updates, statusUpdate{id: id, status: status, externalPaymentID: externalPaymentID})
	if r, ok := s.reservations[id]; ok {
		r.Status = status
		if externalPaymentID != nil {
			r.ExternalPaymentID = externalPaymentID
		}
	}
	return nil
}

type stubTableRepo struct {
	tables map[int64]*domain.Table
	err    error
}

func (s *stubTableRepo) GetByID(_ context.Context, id int64) (*domain.Table, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.tables[id], nil
}

type stubNotifyClient struct {
	sent []*notifyservice.ConfirmedReservation
	err  error
}

func (s *stubNotifyClient) SendReservationConfirmed(_ context.Context, n *notifyservice.ConfirmedReservation) error {
	s.sent = append(s.sent, n)
	return s.err
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingReservation(id int64) *domain.Reservation {
	return &domain.Reservation{
		ID:            id,
		GuestName:     "Иван Петров",
		GuestPhone:    "+79991234567",
		Date:          time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     "19:00",
		PartySize:     4,
		TableID:       ptr.Ptr(int64(3)),
		Status:        domain.StatusPending,
		DepositAmount: 2000,
	}
}

func newTestUseCase(repo *stubReservationRepo, tables *stubTableRepo, notify *stubNotifyClient) *UseCase {
	return NewUseCase(repo, tables, notify, stubTxManager{}, nopLogger{})
}

func TestExecute_SucceededConfirmsPending(t *testing.T) {
	repo := &stubReservationRepo{reservations: map[int64]*domain.Reservation{10: pendingReservation(10)}}
	tables := &stubTableRepo{tables: map[int64]*domain.Table{
		3: {ID: 3, Zone: domain.ZoneTerrace, SeatCount: 6, IsActive: true},
	}}
	notify := &stubNotifyClient{}

	uc := newTestUseCase(repo, tables, notify)

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID:     10,
		Kind:              domain.PaymentEventSucceeded,
		ExternalPaymentID: "pay-123",
	})
	require.NoError(t, err)

	assert.True(t, resp.Applied)
	assert.Equal(t, domain.StatusConfirmed, resp.Status)

	require.Len(t, repo.updates, 1)
	assert.Equal(t, domain.StatusConfirmed, repo.updates[0].status)
	require.NotNil(t, repo.updates[0].externalPaymentID)
	assert.Equal(t, "pay-123", *repo.updates[0].externalPaymentID)

	// Уведомление отправлено один раз с данными стола
	require.Len(t, notify.sent, 1)
	assert.Equal(t, int64(10), notify.sent[0].ReservationID)
	require.NotNil(t, notify.sent[0].Zone)
	assert.Equal(t, domain.ZoneTerrace, *notify.sent[0].Zone)
	require.NotNil(t, notify.sent[0].SeatCount)
	assert.Equal(t, 6, *notify.sent[0].SeatCount)
}

func TestExecute_SucceededIsIdempotent(t *testing.T) {
	confirmed := pendingReservation(10)
	confirmed.Status = domain.StatusConfirmed
	repo := &stubReservationRepo{reservations: map[int64]*domain.Reservation{10: confirmed}}
	notify := &stubNotifyClient{}

	uc := newTestUseCase(repo, &stubTableRepo{}, notify)

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID:     10,
		Kind:              domain.PaymentEventSucceeded,
		ExternalPaymentID: "pay-123",
	})
	require.NoError(t, err)

	// Повторная доставка события ничего не меняет и не шлёт уведомление
	assert.False(t, resp.Applied)
	assert.Equal(t, domain.StatusConfirmed, resp.Status)
	assert.Empty(t, repo.updates)
	assert.Empty(t, notify.sent)
}

func TestExecute_SucceededOnCancelledConflicts(t *testing.T) {
	cancelled := pendingReservation(10)
	cancelled.Status = domain.StatusCancelled
	repo := &stubReservationRepo{reservations: map[int64]*domain.Reservation{10: cancelled}}

	uc := newTestUseCase(repo, &stubTableRepo{}, &stubNotifyClient{})

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID:     10,
		Kind:              domain.PaymentEventSucceeded,
		ExternalPaymentID: "pay-123",
	})
	assert.ErrorIs(t, err, ErrConflictingTransition)
	assert.Empty(t, repo.updates)
}

func TestExecute_CanceledReleasesPending(t *testing.T) {
	repo := &stubReservationRepo{reservations: map[int64]*domain.Reservation{10: pendingReservation(10)}}
	notify := &stubNotifyClient{}

	uc := newTestUseCase(repo, &stubTableRepo{}, notify)

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID:     10,
		Kind:              domain.PaymentEventCanceled,
		ExternalPaymentID: "pay-123",
	})
	require.NoError(t, err)

	assert.True(t, resp.Applied)
	assert.Equal(t, domain.StatusCancelled, resp.Status)
	require.Len(t, repo.updates, 1)
	assert.Equal(t, domain.StatusCancelled, repo.updates[0].status)
	assert.Nil(t, repo.updates[0].externalPaymentID)
	assert.Empty(t, notify.sent)
}

func TestExecute_CanceledOnTerminalIsNoop(t *testing.T) {
	for _, status := range []domain.ReservationStatus{domain.StatusConfirmed, domain.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			r := pendingReservation(10)
			r.Status = status
			repo := &stubReservationRepo{reservations: map[int64]*domain.Reservation{10: r}}

			uc := newTestUseCase(repo, &stubTableRepo{}, &stubNotifyClient{})

			resp, err := uc.Execute(context.Background(), &Request{
				ReservationID:     10,
				Kind:              domain.PaymentEventCanceled,
				ExternalPaymentID: "pay-123",
			})
			require.NoError(t, err)
			assert.False(t, resp.Applied)
			assert.Equal(t, status, resp.Status)
			assert.Empty(t, repo.updates)
		})
	}
}

func TestExecute_UnknownReservation(t *testing.T) {
	repo := &stubReservationRepo{reservations: map[int64]*domain.Reservation{}}

	uc := newTestUseCase(repo, &stubTableRepo{}, &stubNotifyClient{})

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID:     404,
		Kind:              domain.PaymentEventSucceeded,
		ExternalPaymentID: "pay-123",
	})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&stubReservationRepo{}, &stubTableRepo{}, &stubNotifyClient{})

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID:     0,
		Kind:              domain.PaymentEventSucceeded,
		ExternalPaymentID: "pay-123",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		ReservationID:     10,
		Kind:              "payment.refunded",
		ExternalPaymentID: "pay-123",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_NotificationFailureDoesNotFail(t *testing.T) {
	repo := &stubReservationRepo{reservations: map[int64]*domain.Reservation{10: pendingReservation(10)}}
	tables := &stubTableRepo{err: errors.New("tables unavailable")}
	notify := &stubNotifyClient{err: errors.New("telegram is down")}

	uc := newTestUseCase(repo, tables, notify)

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID:     10,
		Kind:              domain.PaymentEventSucceeded,
		ExternalPaymentID: "pay-123",
	})

	// Бронь подтверждена, ошибка уведомления только логируется
	require.NoError(t, err)
	assert.True(t, resp.Applied)
	assert.Equal(t, domain.StatusConfirmed, resp.Status)
	require.Len(t, notify.sent, 1)
	assert.Nil(t, notify.sent[0].Zone)
}
