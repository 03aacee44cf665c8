package main

import (
	"bytes"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, config{Scale: "UTC", Target: "TDB", Precision: 9}, cfg)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ASTROCAL_SCALE", "tt")
	t.Setenv("ASTROCAL_PRECISION", "4")
	t.Setenv("ASTROCAL_VERBOSE", "true")

	cfg, err := loadConfig(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, config{Scale: "tt", Target: "TDB", Precision: 4, Verbose: true}, cfg)
}

func TestConfigEncodeRoundTrip(t *testing.T) {
	in := config{Scale: "TAI", Target: "TT", Precision: 3, Verbose: true}
	var buf bytes.Buffer
	require.NoError(t, in.encode(&buf))

	var out config
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, in, out)
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name string
		cfg  config
	}{
		{name: "unknown scale", cfg: config{Scale: "GPS", Target: "TT"}},
		{name: "unknown target", cfg: config{Scale: "UTC", Target: "TCB"}},
		{name: "negative precision", cfg: config{Scale: "UTC", Target: "TT", Precision: -1}},
		{name: "precision too large", cfg: config{Scale: "UTC", Target: "TT", Precision: maxPrecision + 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.cfg.validate())
		})
	}
}

func TestBindFlags(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("precision", 9, "")
	v := viper.New()

	require.NoError(t, bindFlags(v, flags, "precision"))
	require.NoError(t, flags.Set("precision", "4"))
	assert.Equal(t, 4, v.GetInt("precision"))

	assert.ErrorContains(t, bindFlags(v, flags, "missing"), "missing")
}
