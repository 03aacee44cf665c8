package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/mshafiee/astrocal"
)

const maxPrecision = 15

// config holds the CLI settings.
// Values are populated from .astrocal.toml, ASTROCAL_* env vars, and flags.
type config struct {
	Scale     string `mapstructure:"scale" toml:"scale"`
	Target    string `mapstructure:"target" toml:"target"`
	Precision int    `mapstructure:"precision" toml:"precision"`
	Verbose   bool   `mapstructure:"verbose" toml:"verbose"`
}

// loadConfig reads configuration into v, applying defaults for any value not set by a
// config file, the environment or a bound flag. A missing default config file is fine;
// a missing explicit one is not.
func loadConfig(v *viper.Viper, file string) (config, error) {
	v.SetDefault("scale", astrocal.UTC.String())
	v.SetDefault("target", astrocal.TDB.String())
	v.SetDefault("precision", 9)
	v.SetDefault("verbose", false)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(".astrocal")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix("ASTROCAL")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func (c config) validate() error {
	if _, err := astrocal.ParseScale(c.Scale); err != nil {
		return fmt.Errorf("config scale: %w", err)
	}
	if _, err := astrocal.ParseScale(c.Target); err != nil {
		return fmt.Errorf("config target: %w", err)
	}
	if c.Precision < 0 || c.Precision > maxPrecision {
		return fmt.Errorf("config precision %d: must be within 0..%d", c.Precision, maxPrecision)
	}
	return nil
}

// encode writes c as TOML.
func (c config) encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
