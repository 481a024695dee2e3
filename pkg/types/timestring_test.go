package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "morning", input: "09:00", want: "09:00"},
		{name: "last minute", input: "23:59", want: "23:59"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "garbage", input: "9am", wantErr: true},
		{name: "out of range", input: "25:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
			assert.False(t, got.IsZero())
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := MustTimeString("17:30")

	later, err := ts.AddMinutes(29)
	require.NoError(t, err)
	assert.Equal(t, "17:59", later.String())
	assert.True(t, later.IsAfter(ts))
	assert.True(t, ts.IsBefore(later))

	_, err = ts.AddMinutes(7 * 60)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_On(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	date := time.Date(2025, 3, 14, 22, 10, 0, 0, loc)

	got := MustTimeString("09:45").On(date)

	assert.Equal(t, time.Date(2025, 3, 14, 9, 45, 0, 0, loc), got)
}

func TestTimeString_ScanValue(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("10:15:00")))
	assert.Equal(t, "10:15", ts.String())

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 8, 5, 0, 0, time.UTC)))
	assert.Equal(t, "08:05", ts.String())

	v, err := ts.Value()
	require.NoError(t, err)
	assert.Equal(t, "08:05:00", v)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())
	v, err = ts.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Text(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.UnmarshalText([]byte("12:00")))

	b, err := ts.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "12:00", string(b))

	assert.Error(t, ts.UnmarshalText([]byte("noon")))
}
