package vklayers

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultMinQueueCount is the queue count advertised per family when
// the driver reports fewer: the queue muxer's MIN_ADVERTISED.
const DefaultMinQueueCount = 16

// SettingsPathEnv names the environment variable that points at the
// settings file; SettingsFile is the name probed in the working
// directory when the variable is unset.
const (
	SettingsPathEnv = "VKLAYERS_SETTINGS_PATH"
	SettingsFile    = "vklayers_settings.yaml"

	minQueueCountEnv = "VKLAYERS_MIN_QUEUE_COUNT"
	logLevelEnv      = "VKLAYERS_LOG_LEVEL"
	logFormatEnv     = "VKLAYERS_LOG_FORMAT"
)

// Settings are the knobs both layers read at construction. They come
// from an optional YAML file with environment overrides on top;
// everything has a usable default, so running with no configuration
// at all is the normal case.
type Settings struct {
	// MinQueueCount is the per-family queue count the muxer
	// advertises when the driver exposes fewer.
	MinQueueCount uint32 `yaml:"min_queue_count"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// EnableMetrics turns on the Prometheus counters.
	EnableMetrics bool `yaml:"enable_metrics"`
}

func DefaultSettings() Settings {
	return Settings{
		MinQueueCount: DefaultMinQueueCount,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// WithDefaults fills each zero-valued field from DefaultSettings and
// leaves set fields alone, so a caller may specify only the knobs it
// cares about.
func (s Settings) WithDefaults() Settings {
	d := DefaultSettings()
	if s.MinQueueCount == 0 {
		s.MinQueueCount = d.MinQueueCount
	}
	if s.LogLevel == "" {
		s.LogLevel = d.LogLevel
	}
	if s.LogFormat == "" {
		s.LogFormat = d.LogFormat
	}
	return s
}

// LoadSettings reads a settings file. A missing file yields the
// defaults; a file that exists but does not parse is an error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse settings file: %w", err)
	}
	return s.WithDefaults(), nil
}

// LoadSettingsFromEnv resolves the settings file location from the
// environment, loads it, and applies per-variable overrides.
func LoadSettingsFromEnv() (Settings, error) {
	path := os.Getenv(SettingsPathEnv)
	if path == "" {
		path = SettingsFile
	}
	s, err := LoadSettings(path)
	if err != nil {
		return s, err
	}
	if v := os.Getenv(minQueueCountEnv); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil || n == 0 {
			return s, fmt.Errorf("invalid %s value %q", minQueueCountEnv, v)
		}
		s.MinQueueCount = uint32(n)
	}
	if v := os.Getenv(logLevelEnv); v != "" {
		s.LogLevel = v
	}
	if v := os.Getenv(logFormatEnv); v != "" {
		s.LogFormat = v
	}
	return s, nil
}
