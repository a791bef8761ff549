// Package config loads runtime settings for the maze-chase binaries.
//
// Precedence, lowest first: built-in defaults, YAML file, .env file, process environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/maze-chase/engine"
	"github.com/lixenwraith/maze-chase/parameter"
)

// Environment keys
const (
	EnvConfig   = "MAZECHASE_CONFIG"
	EnvSeed     = "MAZECHASE_SEED"
	EnvDebug    = "MAZECHASE_DEBUG"
	EnvLogLevel = "MAZECHASE_LOG_LEVEL"
	EnvCellSize = "MAZECHASE_CELL_SIZE"
)

// Config is the user-tunable subset of the simulation and frontend
type Config struct {
	Seed             uint64        `yaml:"seed"`      // 0 picks a clock seed
	CellSize         float64       `yaml:"cell_size"` // 0 derives from viewport width
	FlowFieldCadence int           `yaml:"flow_field_cadence"`
	WaveInterval     time.Duration `yaml:"wave_interval"`
	FPS              int           `yaml:"fps"`
	Debug            bool          `yaml:"debug"`
	LogLevel         string        `yaml:"log_level"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		FlowFieldCadence: parameter.FlowFieldCadence,
		WaveInterval:     parameter.WaveInterval,
		FPS:              60,
		LogLevel:         "info",
	}
}

// Load reads path over the defaults, then applies envFile and the environment
// Empty path skips the file; a missing envFile is not an error
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
		if err := cfg.Decode(data); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(errors.Cause(err)) {
			return nil, errors.Wrapf(err, "load env file %s", envFile)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode overlays YAML data onto c; absent keys keep their current values
func (c *Config) Decode(data []byte) error {
	return yaml.Unmarshal(data, c)
}

// ApplyEnv overrides fields from environment variables found by lookup
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvSeed)
		}
		c.Seed = seed
	}
	if v, ok := lookup(EnvDebug); ok && v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvDebug)
		}
		c.Debug = debug
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvCellSize); ok && v != "" {
		size, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvCellSize)
		}
		c.CellSize = size
	}
	return nil
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	if c.CellSize < 0 {
		return errors.Errorf("cell_size must not be negative, got %v", c.CellSize)
	}
	if c.FlowFieldCadence < 0 {
		return errors.Errorf("flow_field_cadence must not be negative, got %d", c.FlowFieldCadence)
	}
	if c.WaveInterval < 0 {
		return errors.Errorf("wave_interval must not be negative, got %s", c.WaveInterval)
	}
	if c.FPS <= 0 {
		return errors.Errorf("fps must be positive, got %d", c.FPS)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	return nil
}

// Level returns the parsed log level, info when unparsable
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// FrameDuration is the tick period for the configured frame rate
func (c *Config) FrameDuration() time.Duration {
	if c.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FPS)
}

// Options converts the config to simulation options
func (c *Config) Options(logger logrus.FieldLogger) engine.Options {
	return engine.Options{
		Seed:             c.Seed,
		CellSize:         c.CellSize,
		FlowFieldCadence: c.FlowFieldCadence,
		WaveInterval:     c.WaveInterval,
		Logger:           logger,
	}
}
