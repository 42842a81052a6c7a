package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	require.NoError(t, s.Validate())
	assert.Equal(t, DefaultOpeningTime, s.OpeningTime)
	assert.Equal(t, DefaultClosingTime, s.ClosingTime)
	assert.Equal(t, DefaultLastBookingTime, s.LastBookingTime)
	assert.Equal(t, DefaultTimezone, s.Timezone)
}

func TestOperatingSettings_Validate(t *testing.T) {
	valid := DefaultSettings()

	tests := []struct {
		name    string
		mutate  func(s *OperatingSettings)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(s *OperatingSettings) {}},
		{name: "last booking equals opening", mutate: func(s *OperatingSettings) {
			s.LastBookingTime = s.OpeningTime
		}},
		{name: "last booking equals closing", mutate: func(s *OperatingSettings) {
			s.LastBookingTime = s.ClosingTime
		}},
		{name: "last booking before opening", mutate: func(s *OperatingSettings) {
			s.LastBookingTime = "11:00"
		}, wantErr: true},
		{name: "closing before last booking", mutate: func(s *OperatingSettings) {
			s.ClosingTime = "20:00"
		}, wantErr: true},
		{name: "bad time format", mutate: func(s *OperatingSettings) {
			s.OpeningTime = "noon"
		}, wantErr: true},
		{name: "negative advance", mutate: func(s *OperatingSettings) {
			s.MinAdvanceHours = -1
		}, wantErr: true},
		{name: "zero advance is allowed", mutate: func(s *OperatingSettings) {
			s.MinAdvanceHours = 0
		}},
		{name: "zero duration", mutate: func(s *OperatingSettings) {
			s.ReservationDurationHours = 0
		}, wantErr: true},
		{name: "unknown timezone", mutate: func(s *OperatingSettings) {
			s.Timezone = "Mars/Olympus"
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSettings)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOperatingSettings_Location(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, DefaultTimezone, s.Location().String())

	s.Timezone = "Mars/Olympus"
	assert.Equal(t, DefaultTimezone, s.Location().String())
}
