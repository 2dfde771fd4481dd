package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// minGridDimension mirrors the smallest grid the engine accepts.
const minGridDimension = 3

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	MaxGenerations      int           `json:"max_generations"`
	RandomDensity       float64       `json:"random_density"`
	InjectionCount      int           `json:"injection_count"`
	HistorySize         int           `json:"history_size"`
	Pattern             string        `json:"pattern"`
	Seed                int64         `json:"seed"`
	StartPaused         bool          `json:"start_paused"`
	Trace               bool          `json:"trace"`
	TraceFile           string        `json:"trace_file"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		FrameRate:           150 * time.Millisecond,
		AutoRestart:         true,
		StagnationThreshold: 5,
		UseMemoryPool:       true,
		MaxGenerations:      1000,
		RandomDensity:       0.15,
		InjectionCount:      3,
		HistorySize:         5,
		Pattern:             "",
		Seed:                42,
		StartPaused:         true,
		Trace:               false,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate rejects values the game cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Width < minGridDimension || c.Height < minGridDimension:
		return errors.Errorf("grid %dx%d is smaller than %dx%d", c.Width, c.Height, minGridDimension, minGridDimension)
	case c.FrameRate <= 0:
		return errors.Errorf("frame_rate must be positive, got %v", c.FrameRate)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("random_density must be within [0,1], got %v", c.RandomDensity)
	case c.StagnationThreshold < 0 || c.InjectionCount < 0 || c.MaxGenerations < 0:
		return errors.New("stagnation_threshold, injection_count and max_generations must not be negative")
	}
	return nil
}
