package detect_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vigilocam/detection-scheduler/internal/detect"
	"gopkg.in/yaml.v3"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    detect.ClockTime
		wantErr assert.ErrorAssertionFunc
	}{
		{name: "valid", input: "23:30", want: detect.ClockTime{Hour: 23, Minute: 30}, wantErr: assert.NoError},
		{name: "midnight", input: "00:00", want: detect.ClockTime{}, wantErr: assert.NoError},
		{name: "invalid", input: "aa:30", wantErr: assert.Error},
		{name: "hour out of range", input: "24:00", wantErr: assert.Error},
		{name: "minute out of range", input: "12:60", wantErr: assert.Error},
		{name: "too long", input: "123:30", wantErr: assert.Error},
		{name: "too short", input: "23", wantErr: assert.Error},
		{name: "empty", input: "", wantErr: assert.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			output, err := detect.ParseClockTime(tt.input)
			tt.wantErr(t, err)
			if err != nil {
				assert.ErrorIs(t, err, detect.ErrValidation)
			}
			assert.Equal(t, tt.want, output)
		})
	}
}

func TestClockTime_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    detect.ClockTime
		wantErr assert.ErrorAssertionFunc
	}{
		{name: "valid", input: "23:30", want: detect.ClockTime{Hour: 23, Minute: 30}, wantErr: assert.NoError},
		{name: "quoted", input: `"07:45"`, want: detect.ClockTime{Hour: 7, Minute: 45}, wantErr: assert.NoError},
		{name: "invalid", input: "aa:30", wantErr: assert.Error},
		{name: "no minutes", input: `"23"`, wantErr: assert.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var output detect.ClockTime
			tt.wantErr(t, yaml.Unmarshal([]byte(tt.input), &output))
			assert.Equal(t, tt.want, output)
		})
	}
}

func TestClockTime_MarshalYAML(t *testing.T) {
	ct := detect.ClockTime{Hour: 23, Minute: 30}
	output, err := yaml.Marshal(ct)
	require.NoError(t, err)
	assert.Equal(t, "\"23:30\"\n", string(output))

	output, err = yaml.Marshal(&ct)
	require.NoError(t, err)
	assert.Equal(t, "\"23:30\"\n", string(output))
}

func TestClockTime_MarshalJSON(t *testing.T) {
	output, err := json.Marshal(detect.ClockTime{Hour: 9, Minute: 5})
	require.NoError(t, err)
	assert.Equal(t, `"09:05"`, string(output))

	var roundTrip detect.ClockTime
	require.NoError(t, json.Unmarshal(output, &roundTrip))
	assert.Equal(t, detect.ClockTime{Hour: 9, Minute: 5}, roundTrip)

	assert.Error(t, json.Unmarshal([]byte(`"9am"`), &roundTrip))
	assert.Error(t, json.Unmarshal([]byte(`42`), &roundTrip))
}

func TestClockTime_MinuteOfDay(t *testing.T) {
	assert.Equal(t, 0, detect.ClockTime{}.MinuteOfDay())
	assert.Equal(t, 570, detect.ClockTime{Hour: 9, Minute: 30}.MinuteOfDay())
	assert.Equal(t, 1439, detect.ClockTime{Hour: 23, Minute: 59}.MinuteOfDay())

	assert.True(t, detect.ClockTime{Hour: 9}.Before(detect.ClockTime{Hour: 9, Minute: 1}))
	assert.True(t, detect.ClockTime{Hour: 20}.After(detect.ClockTime{Hour: 19, Minute: 59}))
	assert.False(t, detect.ClockTime{Hour: 20}.After(detect.ClockTime{Hour: 20}))
}
