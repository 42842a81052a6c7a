package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	tableStorage "github.com/m04kA/SMC-ReservationService/internal/infra/storage/table"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type stubReservationRepo struct {
	occupied    []*domain.Reservation
	gotBlocking []domain.ReservationStatus
	created     *domain.Reservation
	nextID      int64
}

func (s *stubReservationRepo) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	r.ID = s.nextID
	r.CreatedAt = time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	r.UpdatedAt = r.CreatedAt
	s.created = r
	return r, nil
}

func (s *stubReservationRepo) GetOccupied(_ context.Context, _ time.Time, blocking []domain.ReservationStatus) ([]*domain.Reservation, error) {
	s.gotBlocking = blocking
	return s.occupied, nil
}

type stubTableRepo struct {
	byID       map[int64]*domain.Table
	candidates []*domain.Table
}

func (s *stubTableRepo) GetByID(_ context.Context, id int64) (*domain.Table, error) {
	table, ok := s.byID[id]
	if !ok {
		return nil, tableStorage.ErrTableNotFound
	}
	return table, nil
}

func (s *stubTableRepo) GetActiveWithCapacity(_ context.Context, _ int) ([]*domain.Table, error) {
	return s.candidates, nil
}

type stubSettingsProvider struct {
	settings domain.OperatingSettings
}

func (s *stubSettingsProvider) GetSettings(_ context.Context) domain.OperatingSettings {
	return s.settings
}

// stubTxManager выполняет функцию без реальной транзакции
type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testSettings() domain.OperatingSettings {
	return domain.OperatingSettings{
		OpeningTime:              "12:00",
		ClosingTime:              "23:00",
		LastBookingTime:          "21:00",
		MinAdvanceHours:          3,
		ReservationDurationHours: 2,
		Timezone:                 "UTC",
	}
}

func newTestUseCase(reservationRepo *stubReservationRepo, tableRepo *stubTableRepo, now time.Time) *UseCase {
	uc := NewUseCase(
		reservationRepo,
		tableRepo,
		&stubSettingsProvider{settings: testSettings()},
		stubTxManager{},
		domain.DefaultDepositPerPerson,
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		GuestName:  "Иван Петров",
		GuestPhone: "+79991234567",
		Date:       time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:  "19:00",
		PartySize:  2,
	}
}

func testNow() time.Time {
	return time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
}

func TestExecute_AutoSelectSmallestFreeTable(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	reservationRepo := &stubReservationRepo{
		nextID: 42,
		occupied: []*domain.Reservation{
			// Маленький стол занят конфликтующей бронью 18:00-20:00
			{ID: 1, TableID: ptr.Ptr(int64(1)), Date: date, StartTime: "18:00", Status: domain.StatusConfirmed},
		},
	}
	tableRepo := &stubTableRepo{
		candidates: []*domain.Table{
			{ID: 1, Zone: domain.ZoneHall1, SeatCount: 2, IsActive: true},
			{ID: 2, Zone: domain.ZoneHall1, SeatCount: 4, IsActive: true},
		},
	}

	uc := newTestUseCase(reservationRepo, tableRepo, testNow())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, int64(2), resp.TableID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 2*domain.DefaultDepositPerPerson, resp.DepositAmount)

	require.NotNil(t, reservationRepo.created)
	assert.Equal(t, domain.StatusPending, reservationRepo.created.Status)
}

func TestExecute_PendingHoldsBlockCreation(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	reservationRepo := &stubReservationRepo{
		nextID: 1,
		occupied: []*domain.Reservation{
			// Неоплаченный холд тоже занимает стол при создании
			{ID: 7, TableID: ptr.Ptr(int64(1)), Date: date, StartTime: "19:00", Status: domain.StatusPending},
		},
	}
	tableRepo := &stubTableRepo{
		candidates: []*domain.Table{{ID: 1, Zone: domain.ZoneHall1, SeatCount: 4, IsActive: true}},
	}

	uc := newTestUseCase(reservationRepo, tableRepo, testNow())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNoTablesAvailable)

	// Проверка занятости учитывает и pending, и confirmed
	assert.Equal(t, domain.BlockingStatusesForCreation, reservationRepo.gotBlocking)
}

func TestExecute_RequestedTable(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	occupied := []*domain.Reservation{
		{ID: 1, TableID: ptr.Ptr(int64(5)), Date: date, StartTime: "18:00", Status: domain.StatusConfirmed},
	}

	tests := []struct {
		name      string
		tableID   int64
		tables    map[int64]*domain.Table
		startTime string
		partySize int
		wantErr   error
	}{
		{
			name:      "free table is assigned",
			tableID:   6,
			tables:    map[int64]*domain.Table{6: {ID: 6, Zone: domain.ZoneHall2, SeatCount: 4, IsActive: true}},
			startTime: "19:00",
			partySize: 2,
		},
		{
			name:      "conflicting reservation",
			tableID:   5,
			tables:    map[int64]*domain.Table{5: {ID: 5, Zone: domain.ZoneHall2, SeatCount: 4, IsActive: true}},
			startTime: "19:00",
			partySize: 2,
			wantErr:   ErrTableNotAvailable,
		},
		{
			name:      "touching interval is free",
			tableID:   5,
			tables:    map[int64]*domain.Table{5: {ID: 5, Zone: domain.ZoneHall2, SeatCount: 4, IsActive: true}},
			startTime: "20:00",
			partySize: 2,
		},
		{
			name:      "unknown table",
			tableID:   99,
			tables:    map[int64]*domain.Table{},
			startTime: "19:00",
			partySize: 2,
			wantErr:   ErrTableNotFound,
		},
		{
			name:      "inactive table",
			tableID:   6,
			tables:    map[int64]*domain.Table{6: {ID: 6, Zone: domain.ZoneHall2, SeatCount: 4, IsActive: false}},
			startTime: "19:00",
			partySize: 2,
			wantErr:   ErrTableNotFound,
		},
		{
			name:      "table too small",
			tableID:   6,
			tables:    map[int64]*domain.Table{6: {ID: 6, Zone: domain.ZoneHall2, SeatCount: 2, IsActive: true}},
			startTime: "19:00",
			partySize: 4,
			wantErr:   ErrTableTooSmall,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reservationRepo := &stubReservationRepo{nextID: 1, occupied: occupied}
			tableRepo := &stubTableRepo{byID: tt.tables}
			uc := newTestUseCase(reservationRepo, tableRepo, testNow())

			req := validRequest()
			req.TableID = &tt.tableID
			req.StartTime = types.TimeString(tt.startTime)
			req.PartySize = tt.partySize

			resp, err := uc.Execute(context.Background(), req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, reservationRepo.created)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.tableID, resp.TableID)
		})
	}
}

func TestExecute_TimeValidation(t *testing.T) {
	tests := []struct {
		name      string
		date      time.Time
		startTime string
		wantErr   error
	}{
		{
			name:      "past date",
			date:      time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
			startTime: "19:00",
			wantErr:   ErrInvalidDate,
		},
		{
			name:      "violates advance notice",
			date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			startTime: "12:00",
			wantErr:   ErrTooLateToBook,
		},
		{
			name:      "exactly at advance boundary",
			date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			startTime: "13:00",
		},
		{
			name:      "before opening",
			date:      time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
			startTime: "11:30",
			wantErr:   ErrOutsideWorkingHours,
		},
		{
			name:      "after last booking",
			date:      time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
			startTime: "21:30",
			wantErr:   ErrOutsideWorkingHours,
		},
		{
			name:      "at last booking time",
			date:      time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
			startTime: "21:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reservationRepo := &stubReservationRepo{nextID: 1}
			tableRepo := &stubTableRepo{
				candidates: []*domain.Table{{ID: 1, Zone: domain.ZoneHall1, SeatCount: 4, IsActive: true}},
			}
			uc := newTestUseCase(reservationRepo, tableRepo, testNow())

			req := validRequest()
			req.Date = tt.date
			req.StartTime = types.TimeString(tt.startTime)

			_, err := uc.Execute(context.Background(), req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExecute_InputValidation(t *testing.T) {
	uc := newTestUseCase(&stubReservationRepo{}, &stubTableRepo{}, testNow())

	mutations := map[string]func(r *Request){
		"empty guest name":   func(r *Request) { r.GuestName = "" },
		"empty guest phone":  func(r *Request) { r.GuestPhone = "" },
		"zero party size":    func(r *Request) { r.PartySize = 0 },
		"party size too big": func(r *Request) { r.PartySize = domain.MaxPartySize + 1 },
		"non-positive table": func(r *Request) { r.TableID = ptr.Ptr(int64(0)) },
		"invalid start time": func(r *Request) { r.StartTime = "half past seven" },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
