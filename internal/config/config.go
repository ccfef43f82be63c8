/*
 * config.go, part of gasteiger.
 *
 *
 * Copyright 2013 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

// Package config loads the settings of the gasteiger command from defaults,
// an optional YAML file, GASTEIGER_ environment variables and command flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/rmera/gasteiger"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "GASTEIGER"

// Output formats.
var Formats = []string{"text", "json", "yaml"}

// Input formats. An empty input means "guess from the file extension".
var Inputs = []string{"", "sdf", "json"}

type Config struct {
	Iterations int     `mapstructure:"iterations" yaml:"iterations"`
	Damping    float64 `mapstructure:"damping" yaml:"damping"`
	Format     string  `mapstructure:"format" yaml:"format"`
	Input      string  `mapstructure:"input" yaml:"input"`
	Plot       string  `mapstructure:"plot" yaml:"plot"`
	Verbose    bool    `mapstructure:"verbose" yaml:"verbose"`
	LogLevel   string  `mapstructure:"log_level" yaml:"log_level"`
}

// Solver returns a solver with the configured settings.
func (C *Config) Solver() *gasteiger.Solver {
	return &gasteiger.Solver{Iterations: C.Iterations, Damping: C.Damping}
}

// Level returns the slog level named by LogLevel. Unknown names give Info.
func (C *Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(C.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// Validate checks that the settings make sense.
func (C *Config) Validate() error {
	var errs []error
	if C.Iterations < 0 {
		errs = append(errs, fmt.Errorf("iterations must be >= 0, got %d", C.Iterations))
	}
	if C.Damping <= 0 || C.Damping > 1 {
		errs = append(errs, fmt.Errorf("damping must be in (0,1], got %g", C.Damping))
	}
	if !contains(Formats, C.Format) {
		errs = append(errs, fmt.Errorf("unknown output format %q (want one of %s)", C.Format, strings.Join(Formats, ", ")))
	}
	if !contains(Inputs, C.Input) {
		errs = append(errs, fmt.Errorf("unknown input format %q", C.Input))
	}
	return errors.Join(errs...)
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// New returns a viper instance with the defaults set and the environment bound.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("iterations", gasteiger.DefaultIterations)
	v.SetDefault("damping", gasteiger.DefaultDamping)
	v.SetDefault("format", "text")
	v.SetDefault("input", "")
	v.SetDefault("plot", "")
	v.SetDefault("verbose", false)
	v.SetDefault("log_level", "info")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration. If file is empty, gasteiger.yaml is searched
// in the current directory and in $HOME/.config/gasteiger, and its absence is
// not an error. Flags in fs, if given, override everything else when set.
func Load(v *viper.Viper, file string, fs *pflag.FlagSet) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("gasteiger")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "gasteiger"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &nf) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	if fs != nil {
		for _, k := range []string{"iterations", "damping", "format", "input", "plot", "verbose"} {
			if f := fs.Lookup(k); f != nil {
				if err := v.BindPFlag(k, f); err != nil {
					return nil, err
				}
			}
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
