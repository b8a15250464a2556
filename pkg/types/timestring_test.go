package types

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: "09:00"},
		{name: "valid late", input: "23:59"},
		{name: "no leading zero", input: "9:00", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "garbage", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("09:30")

	next, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:00"), next)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("11:30"))
	assert.False(t, TimeString("11:30").IsBefore("09:00"))
	assert.True(t, TimeString("11:30").IsAfter("09:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestTimeString_On(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	at, err := TimeString("10:15").On(date, paris)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 1, 10, 15, 0, 0, paris), at)
	assert.Equal(t, 9, at.UTC().Hour())
}
