package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	settingsStorage "github.com/m04kA/SMC-ReservationService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-ReservationService/internal/service/settings/models"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

type stubSettingsRepo struct {
	stored   *domain.OperatingSettings
	getErr   error
	upserted *domain.OperatingSettings
}

func (s *stubSettingsRepo) Get(_ context.Context) (*domain.OperatingSettings, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.stored, nil
}

func (s *stubSettingsRepo) Upsert(_ context.Context, settings *domain.OperatingSettings) error {
	s.upserted = settings
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetSettings_FallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name string
		repo *stubSettingsRepo
	}{
		{name: "no stored row", repo: &stubSettingsRepo{getErr: settingsStorage.ErrSettingsNotFound}},
		{name: "repository failure", repo: &stubSettingsRepo{getErr: errors.New("connection refused")}},
		{name: "stored settings invalid", repo: &stubSettingsRepo{stored: &domain.OperatingSettings{
			OpeningTime:              "22:00",
			ClosingTime:              "23:00",
			LastBookingTime:          "12:00",
			MinAdvanceHours:          3,
			ReservationDurationHours: 2,
			Timezone:                 "UTC",
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.repo, nopLogger{})
			got := svc.GetSettings(context.Background())
			assert.Equal(t, domain.DefaultSettings(), got)
		})
	}
}

func TestGetSettings_ReturnsStored(t *testing.T) {
	stored := &domain.OperatingSettings{
		OpeningTime:              "10:00",
		ClosingTime:              "22:00",
		LastBookingTime:          "20:00",
		MinAdvanceHours:          2,
		ReservationDurationHours: 3,
		Timezone:                 "UTC",
	}
	svc := NewService(&stubSettingsRepo{stored: stored}, nopLogger{})

	got := svc.GetSettings(context.Background())
	assert.Equal(t, *stored, got)
}

func TestUpdate_PartialMerge(t *testing.T) {
	repo := &stubSettingsRepo{getErr: settingsStorage.ErrSettingsNotFound}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		OpeningTime:     ptr.Ptr("11:00"),
		MinAdvanceHours: ptr.Ptr(5),
	})
	require.NoError(t, err)

	// Неуказанные поля взяты из действующих настроек (дефолтов)
	assert.Equal(t, "11:00", resp.OpeningTime)
	assert.Equal(t, 5, resp.MinAdvanceHours)
	assert.Equal(t, domain.DefaultClosingTime.String(), resp.ClosingTime)
	assert.Equal(t, domain.DefaultTimezone, resp.Timezone)

	require.NotNil(t, repo.upserted)
	assert.Equal(t, 5, repo.upserted.MinAdvanceHours)
}

func TestUpdate_RejectsInvalid(t *testing.T) {
	repo := &stubSettingsRepo{getErr: settingsStorage.ErrSettingsNotFound}
	svc := NewService(repo, nopLogger{})

	tests := []struct {
		name string
		req  *models.UpdateSettingsRequest
	}{
		{name: "last booking after closing", req: &models.UpdateSettingsRequest{
			LastBookingTime: ptr.Ptr("23:30"),
		}},
		{name: "bad time format", req: &models.UpdateSettingsRequest{
			OpeningTime: ptr.Ptr("noon"),
		}},
		{name: "unknown timezone", req: &models.UpdateSettingsRequest{
			Timezone: ptr.Ptr("Mars/Olympus"),
		}},
		{name: "zero duration", req: &models.UpdateSettingsRequest{
			ReservationDurationHours: ptr.Ptr(0),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, repo.upserted)
		})
	}
}
