package humandur

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type probeConfig struct {
	Timeout  time.Duration `mapstructure:"timeout"`
	Interval time.Duration `mapstructure:"interval"`
	Retain   Duration      `mapstructure:"retain"`
	Name     string        `mapstructure:"name"`
}

func TestDecodeHookWithViper(t *testing.T) {
	v := viper.New()
	v.Set("timeout", "90")
	v.Set("interval", "1h30m")
	v.Set("retain", 400)
	v.Set("name", "probe")

	var cfg probeConfig
	require.NoError(t, v.Unmarshal(&cfg, viper.DecodeHook(DecodeHook(Second))))

	assert.Equal(t, 90*time.Second, cfg.Timeout)
	assert.Equal(t, 90*time.Minute, cfg.Interval)
	assert.Equal(t, FromSecs(400), cfg.Retain)
	assert.Equal(t, "probe", cfg.Name)
}

func TestDecodeHookJSONNumbersUseFallbackUnit(t *testing.T) {
	v := viper.New()
	v.SetConfigType("json")
	require.NoError(t, v.ReadConfig(strings.NewReader(`{
		"timeout": 30,
		"interval": "1h30m",
		"retain": 2
	}`)))

	var cfg probeConfig
	require.NoError(t, v.Unmarshal(&cfg, viper.DecodeHook(DecodeHook(Second))))

	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 90*time.Minute, cfg.Interval)
	assert.Equal(t, FromSecs(2), cfg.Retain)
}

func TestDecodeHookWholeFloats(t *testing.T) {
	var cfg probeConfig
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: DecodeHook(Hour),
		Result:     &cfg,
	})
	require.NoError(t, err)

	require.NoError(t, dec.Decode(map[string]any{
		"timeout": float64(3),
		"retain":  float32(200000),
	}))
	assert.Equal(t, 3*time.Hour, cfg.Timeout)
	assert.Equal(t, FromSecs(200000*3600), cfg.Retain)
}

func TestDecodeHookKeepsTimeDuration(t *testing.T) {
	var cfg probeConfig
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: DecodeHook(Minute),
		Result:     &cfg,
	})
	require.NoError(t, err)

	require.NoError(t, dec.Decode(map[string]any{
		"timeout":  5 * time.Second,
		"interval": uint16(3),
		"retain":   "2 days",
	}))
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 3*time.Minute, cfg.Interval)
	assert.Equal(t, FromSecs(2*secsPerDay), cfg.Retain)
}

func TestDecodeHookRejects(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"negative", -5, "invalid duration '-5' with unit 'day': negative duration"},
		{"garbage", "later", "invalid duration 'later' with unit 'day'"},
		{"overflow", "1000000", "duration overflow"},
		{"fractional float", 1.5, "invalid duration '1.5' with unit 'day'"},
		{"negative float", -2.0, "invalid duration '-2' with unit 'day': negative duration"},
		{"float past uint64", 1e20, "invalid duration '100000000000000000000' with unit 'day'"},
		{"NaN", math.NaN(), "invalid duration 'NaN' with unit 'day'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg probeConfig
			dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
				DecodeHook: DecodeHook(Day),
				Result:     &cfg,
			})
			require.NoError(t, err)

			err = dec.Decode(map[string]any{"timeout": tt.in})
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
