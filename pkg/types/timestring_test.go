package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "09:30", want: "09:30"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid evening", input: "21:00", want: "21:00"},
		{name: "with seconds", input: "09:30:00", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "out of range minute", input: "12:60", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("12:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 12*60+30, m)

	m, err = TimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("12:00").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("12:30"), got)

	got, err = TimeString("12:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("13:15"), got)

	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	// Ровно полночь тоже непредставима - иначе 23:30 + 30 даст "00:00"
	// и сравнение времён в пределах суток перестанет работать
	_, err = TimeString("23:30").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = TimeString("12:00").AddMinutes(-30)
	assert.ErrorIs(t, err, ErrNegativeMinutes)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("12:00").IsBefore("12:30"))
	assert.False(t, TimeString("12:30").IsBefore("12:00"))
	assert.False(t, TimeString("12:00").IsBefore("12:00"))

	assert.True(t, TimeString("21:00").IsAfter("12:00"))
	assert.False(t, TimeString("12:00").IsAfter("21:00"))
	assert.False(t, TimeString("12:00").IsAfter("12:00"))
}

func TestTimeString_At(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	at, err := TimeString("19:30").At(date, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 15, 19, 30, 0, 0, time.UTC), at)

	_, err = TimeString("bad").At(date, time.UTC)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// TIME колонка Postgres
	require.NoError(t, ts.Scan("18:30:00"))
	assert.Equal(t, TimeString("18:30"), ts)

	require.NoError(t, ts.Scan([]byte("09:00:00")))
	assert.Equal(t, TimeString("09:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 9, 15, 21, 0, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("21:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
	assert.Error(t, ts.Scan("bad"))
}

func TestTimeString_JSON(t *testing.T) {
	data, err := json.Marshal(TimeString("19:00"))
	require.NoError(t, err)
	assert.Equal(t, `"19:00"`, string(data))

	var ts TimeString
	require.NoError(t, json.Unmarshal([]byte(`"19:30"`), &ts))
	assert.Equal(t, TimeString("19:30"), ts)

	assert.Error(t, json.Unmarshal([]byte(`"late evening"`), &ts))
}
