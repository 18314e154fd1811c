package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	defaultSampleInterval = 250 * time.Millisecond
	defaultVolume         = 1.0
)

// Config holds runtime settings for the playback engine. Values come from
// an optional YAML file pointed at by EMBERPLAY_CONFIG, with individual
// environment variables taking precedence over the file.
type Config struct {
	// SampleInterval is the cue sampling quantum for media elements.
	SampleInterval time.Duration
	// DefaultVolume is the initial volume for new media elements, in [0,1].
	DefaultVolume float64
	// Autoplay makes new elements start playback as soon as a source
	// attaches.
	Autoplay bool
}

// fileConfig mirrors Config for YAML decoding. Durations are strings in
// the file ("250ms", "1s"); pointer fields distinguish absent keys from
// zero values.
type fileConfig struct {
	SampleInterval string   `yaml:"sample_interval"`
	DefaultVolume  *float64 `yaml:"default_volume"`
	Autoplay       *bool    `yaml:"autoplay"`
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if fc.SampleInterval != "" {
		interval, err := time.ParseDuration(fc.SampleInterval)
		if err != nil {
			return fmt.Errorf("invalid sample_interval in config file: %w", err)
		}
		cfg.SampleInterval = interval
	}
	if fc.DefaultVolume != nil {
		cfg.DefaultVolume = *fc.DefaultVolume
	}
	if fc.Autoplay != nil {
		cfg.Autoplay = *fc.Autoplay
	}
	return nil
}

// Load builds the configuration from file and environment.
func Load(logger *zap.Logger) (*Config, error) {
	cfg := &Config{
		SampleInterval: defaultSampleInterval,
		DefaultVolume:  defaultVolume,
	}

	if path := os.Getenv("EMBERPLAY_CONFIG"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
		logger.Info("Configuration file loaded", zap.String("path", path))
	}

	if v := os.Getenv("EMBERPLAY_SAMPLE_INTERVAL"); v != "" {
		interval, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid EMBERPLAY_SAMPLE_INTERVAL: %w", err)
		}
		cfg.SampleInterval = interval
	}

	if v := os.Getenv("EMBERPLAY_DEFAULT_VOLUME"); v != "" {
		volume, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid EMBERPLAY_DEFAULT_VOLUME: %w", err)
		}
		cfg.DefaultVolume = volume
	}

	if v := os.Getenv("EMBERPLAY_AUTOPLAY"); v != "" {
		autoplay, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid EMBERPLAY_AUTOPLAY: %w", err)
		}
		cfg.Autoplay = autoplay
	}

	if cfg.SampleInterval <= 0 {
		logger.Warn("Non-positive sample interval, using default",
			zap.Duration("interval", cfg.SampleInterval))
		cfg.SampleInterval = defaultSampleInterval
	}
	if cfg.DefaultVolume < 0 || cfg.DefaultVolume > 1 {
		logger.Warn("Volume out of range, using default",
			zap.Float64("volume", cfg.DefaultVolume))
		cfg.DefaultVolume = defaultVolume
	}

	logger.Info("Configuration loaded",
		zap.Duration("sampleInterval", cfg.SampleInterval),
		zap.Float64("defaultVolume", cfg.DefaultVolume),
		zap.Bool("autoplay", cfg.Autoplay))
	return cfg, nil
}
