package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "09:00", want: 9 * 60},
		{in: "00:00", want: 0},
		{in: "23:59", want: 23*60 + 59},
		{in: "10:30:45", want: 10*60 + 30}, // seconds dropped
		{in: "24:00", wantErr: true},
		{in: "09:60", wantErr: true},
		{in: "0900", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "09:05", MustTimeOfDay("09:05").String())
	assert.Equal(t, "00:00", TimeOfDay(0).String())
	assert.Equal(t, "10:00", MustTimeOfDay("09:00").Add(60).String())
}

func TestTimeOfDayJSON(t *testing.T) {
	data, err := json.Marshal(MustTimeOfDay("14:30"))
	require.NoError(t, err)
	assert.Equal(t, `"14:30"`, string(data))

	var parsed TimeOfDay
	require.NoError(t, json.Unmarshal([]byte(`"08:15"`), &parsed))
	assert.Equal(t, MustTimeOfDay("08:15"), parsed)

	assert.Error(t, json.Unmarshal([]byte(`"25:00"`), &parsed))
}
