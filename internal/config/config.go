package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	appName        = "pulse"
	configFileName = "config.toml"
	logFileName    = "pulse.log"

	DefaultLogLevel       = "info"
	DefaultMeterInterval  = 100 * time.Millisecond
	DefaultGamma          = 2.0
	DefaultSampleRate     = 44100
	DefaultAudioBuffer    = 100 * time.Millisecond
	minSampleRate         = 8000
	maxSampleRate         = 192000
	maxAudioBufferMillis  = 1000
	minMeterIntervalMilli = 10
)

type Config struct {
	MusicDir string `koanf:"music_dir"` // directory sources are resolved against
	Artwork  string `koanf:"artwork"`   // static artwork for now-playing, optional
	LogLevel string `koanf:"log_level"` // "debug", "info", "warn", "error"
	LogFile  string `koanf:"log_file"`  // empty means the XDG state dir

	Meter         MeterConfig         `koanf:"meter"`
	Audio         AudioConfig         `koanf:"audio"`
	MPRIS         MPRISConfig         `koanf:"mpris"`
	Notifications NotificationsConfig `koanf:"notifications"`

	// Tracks is the initial playlist. When empty, MusicDir is scanned.
	Tracks []TrackConfig `koanf:"tracks"`
}

// MeterConfig holds visualizer sampling settings.
type MeterConfig struct {
	IntervalMS int     `koanf:"interval_ms"` // sampling period (default: 100)
	Gamma      float64 `koanf:"gamma"`       // curve exponent, 1.5-2.0 (default: 2.0)
}

// Interval returns the sampling period.
func (m MeterConfig) Interval() time.Duration {
	return time.Duration(m.IntervalMS) * time.Millisecond
}

// AudioConfig holds speaker settings.
type AudioConfig struct {
	SampleRate int `koanf:"sample_rate"` // output rate in Hz (default: 44100)
	BufferMS   int `koanf:"buffer_ms"`   // speaker buffer (default: 100)
}

// Buffer returns the speaker buffer length.
func (a AudioConfig) Buffer() time.Duration {
	return time.Duration(a.BufferMS) * time.Millisecond
}

// MPRISConfig controls the media player D-Bus interface.
type MPRISConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
}

// NotificationsConfig controls desktop notifications on track change.
type NotificationsConfig struct {
	Enabled bool `koanf:"enabled"` // default: false
}

// TrackConfig is one entry of the initial playlist.
type TrackConfig struct {
	Title  string `koanf:"title"`
	Artist string `koanf:"artist"`
	Source string `koanf:"source"` // file name relative to music_dir, extension optional
}

// Load reads the standard config files, then explicit if not empty.
// A missing explicit file is an error; missing standard files are skipped.
func Load(explicit string) (*Config, error) {
	paths := getConfigPaths()
	if explicit != "" {
		explicit = expandPath(explicit)
		if _, err := os.Stat(explicit); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		paths = append(paths, explicit)
	}
	return load(paths)
}

func load(paths []string) (*Config, error) {
	k := koanf.New(".")

	// Last wins
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.MusicDir = expandPath(cfg.MusicDir)
	cfg.Artwork = expandPath(cfg.Artwork)
	cfg.LogFile = expandPath(cfg.LogFile)
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/pulse/config.toml
		filepath.Join(xdg.ConfigHome, appName, configFileName),
		// 2. ./config.toml (pwd)
		configFileName,
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetMusicDir returns the music directory, defaulting to the XDG music dir.
func (c *Config) GetMusicDir() string {
	if c.MusicDir != "" {
		return c.MusicDir
	}
	return xdg.UserDirs.Music
}

// GetLogFile returns the log file path, defaulting to the XDG state dir.
func (c *Config) GetLogFile() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(xdg.StateHome, appName, logFileName)
}

// GetLogLevel returns the configured log level or the default.
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return DefaultLogLevel
	}
	return c.LogLevel
}

// MPRISEnabled reports whether the MPRIS interface should be started.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS.Enabled == nil || *c.MPRIS.Enabled
}

// NotificationsEnabled reports whether track change notifications are sent.
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications.Enabled
}

// GetMeterConfig returns the meter configuration with defaults applied.
func (c *Config) GetMeterConfig() MeterConfig {
	cfg := c.Meter
	if cfg.IntervalMS < minMeterIntervalMilli {
		cfg.IntervalMS = int(DefaultMeterInterval / time.Millisecond)
	}
	if cfg.Gamma <= 0 {
		cfg.Gamma = DefaultGamma
	}
	return cfg
}

// GetAudioConfig returns the audio configuration with defaults applied.
func (c *Config) GetAudioConfig() AudioConfig {
	cfg := c.Audio
	if cfg.SampleRate < minSampleRate || cfg.SampleRate > maxSampleRate {
		cfg.SampleRate = DefaultSampleRate
	}
	if cfg.BufferMS <= 0 || cfg.BufferMS > maxAudioBufferMillis {
		cfg.BufferMS = int(DefaultAudioBuffer / time.Millisecond)
	}
	return cfg
}

// HasTracks returns true if an explicit playlist is configured.
func (c *Config) HasTracks() bool {
	return len(c.Tracks) > 0
}
