package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationStorage "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

type stubReservationRepo struct {
	reservations map[int64]*domain.Reservation
	listResult   []*domain.Reservation
	gotFilter    domain.ReservationsFilter
	updates      []domain.ReservationStatus
}

func (s *stubReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := s.reservations[id]
	if !ok {
		return nil, reservationStorage.ErrReservationNotFound
	}
	return r, nil
}

func (s *stubReservationRepo) GetWithFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	s.gotFilter = filter
	return s.listResult, nil
}

func (s *stubReservationRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus, _ *string) error {
	s.updates = append(s.updates, status)
	if r, ok := s.reservations[id]; ok {
		r.Status = status
	}
	return nil
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testReservation(id int64, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:            id,
		GuestName:     "Анна Смирнова",
		GuestPhone:    "+79997654321",
		Date:          time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     "19:00",
		PartySize:     2,
		TableID:       ptr.Ptr(int64(1)),
		Status:        status,
		DepositAmount: 1000,
	}
}

func TestGetByID(t *testing.T) {
	repo := &stubReservationRepo{reservations: map[int64]*domain.Reservation{
		1: testReservation(1, domain.StatusConfirmed),
	}}
	svc := NewService(repo, stubTxManager{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2026-09-15", resp.Date)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)

	_, err = svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestList(t *testing.T) {
	repo := &stubReservationRepo{listResult: []*domain.Reservation{
		testReservation(1, domain.StatusConfirmed),
		testReservation(2, domain.StatusPending),
	}}
	svc := NewService(repo, stubTxManager{}, nopLogger{})

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	status := "confirmed"

	resp, err := svc.List(context.Background(), &models.ListReservationsRequest{
		Date:   &date,
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	require.NotNil(t, repo.gotFilter.Date)
	assert.Equal(t, date, *repo.gotFilter.Date)
	require.NotNil(t, repo.gotFilter.Status)
	assert.Equal(t, domain.StatusConfirmed, *repo.gotFilter.Status)
}

func TestList_InvalidStatus(t *testing.T) {
	svc := NewService(&stubReservationRepo{}, stubTxManager{}, nopLogger{})

	status := "done"
	_, err := svc.List(context.Background(), &models.ListReservationsRequest{Status: &status})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.ReservationStatus
		wantErr error
	}{
		{name: "pending can be withdrawn", status: domain.StatusPending},
		{name: "confirmed cannot", status: domain.StatusConfirmed, wantErr: ErrCannotCancel},
		{name: "cancelled cannot", status: domain.StatusCancelled, wantErr: ErrCannotCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubReservationRepo{reservations: map[int64]*domain.Reservation{
				1: testReservation(1, tt.status),
			}}
			svc := NewService(repo, stubTxManager{}, nopLogger{})

			err := svc.Cancel(context.Background(), 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.updates)
				return
			}
			require.NoError(t, err)
			require.Len(t, repo.updates, 1)
			assert.Equal(t, domain.StatusCancelled, repo.updates[0])
		})
	}
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(&stubReservationRepo{reservations: map[int64]*domain.Reservation{}}, stubTxManager{}, nopLogger{})

	err := svc.Cancel(context.Background(), 404)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
