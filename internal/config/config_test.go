//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tilde expands to home", "~/music", filepath.Join(home, "music")},
		{"tilde with nested path", "~/music/library/albums", filepath.Join(home, "music", "library", "albums")},
		{"absolute path unchanged", "/usr/local/music", "/usr/local/music"},
		{"relative path unchanged", "music/albums", "music/albums"},
		{"empty string unchanged", "", ""},
		{"tilde only", "~", home},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() returned %d paths, want 2", len(paths))
	}
	if want := filepath.Join(xdg.ConfigHome, "pulse", "config.toml"); paths[0] != want {
		t.Errorf("first config path = %q, want %q", paths[0], want)
	}
	if paths[1] != "config.toml" {
		t.Errorf("last config path = %q, want %q", paths[1], "config.toml")
	}
}

func TestLoad_FullFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
music_dir = "/srv/music"
artwork   = "/srv/music/cover.jpg"
log_level = "DEBUG"

[meter]
interval_ms = 50
gamma       = 1.5

[audio]
sample_rate = 48000
buffer_ms   = 200

[mpris]
enabled = false

[notifications]
enabled = true

[[tracks]]
title  = "taobao"
artist = "yungmioder, mlodygolab"
source = "taobao"

[[tracks]]
title  = "second"
source = "second.flac"
`)

	cfg, err := load([]string{path})
	if err != nil {
		t.Fatalf("load() error: %v", err)
	}

	if cfg.MusicDir != "/srv/music" {
		t.Errorf("MusicDir = %q", cfg.MusicDir)
	}
	if cfg.Artwork != "/srv/music/cover.jpg" {
		t.Errorf("Artwork = %q", cfg.Artwork)
	}
	if cfg.GetLogLevel() != "debug" {
		t.Errorf("GetLogLevel() = %q, want debug", cfg.GetLogLevel())
	}
	if m := cfg.GetMeterConfig(); m.Interval() != 50*time.Millisecond || m.Gamma != 1.5 {
		t.Errorf("GetMeterConfig() = %+v", m)
	}
	if a := cfg.GetAudioConfig(); a.SampleRate != 48000 || a.Buffer() != 200*time.Millisecond {
		t.Errorf("GetAudioConfig() = %+v", a)
	}
	if cfg.MPRISEnabled() {
		t.Error("MPRISEnabled() = true, want false")
	}
	if !cfg.NotificationsEnabled() {
		t.Error("NotificationsEnabled() = false, want true")
	}
	if !cfg.HasTracks() || len(cfg.Tracks) != 2 {
		t.Fatalf("Tracks = %+v", cfg.Tracks)
	}
	if cfg.Tracks[0].Artist != "yungmioder, mlodygolab" || cfg.Tracks[1].Source != "second.flac" {
		t.Errorf("Tracks = %+v", cfg.Tracks)
	}
}

func TestLoad_LaterFileWins(t *testing.T) {
	base := writeConfig(t, t.TempDir(), `
music_dir = "/a"
[meter]
gamma = 1.5
`)
	override := writeConfig(t, t.TempDir(), `
music_dir = "/b"
`)

	cfg, err := load([]string{base, override})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MusicDir != "/b" {
		t.Errorf("MusicDir = %q, want /b", cfg.MusicDir)
	}
	if cfg.Meter.Gamma != 1.5 {
		t.Errorf("Meter.Gamma = %v, want 1.5 from first file", cfg.Meter.Gamma)
	}
}

func TestLoad_MissingFilesSkipped(t *testing.T) {
	cfg, err := load([]string{filepath.Join(t.TempDir(), "nope.toml")})
	if err != nil {
		t.Fatalf("load() error: %v", err)
	}
	if cfg.HasTracks() {
		t.Error("empty config should have no tracks")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "music_dir = [")
	if _, err := load([]string{path}); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoad_ExplicitMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing explicit config")
	}
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}

	if cfg.GetLogLevel() != DefaultLogLevel {
		t.Errorf("GetLogLevel() = %q", cfg.GetLogLevel())
	}
	if !cfg.MPRISEnabled() {
		t.Error("MPRIS should be enabled by default")
	}
	if cfg.NotificationsEnabled() {
		t.Error("notifications should be disabled by default")
	}
	if cfg.GetMusicDir() != xdg.UserDirs.Music {
		t.Errorf("GetMusicDir() = %q", cfg.GetMusicDir())
	}
	if want := filepath.Join(xdg.StateHome, "pulse", "pulse.log"); cfg.GetLogFile() != want {
		t.Errorf("GetLogFile() = %q, want %q", cfg.GetLogFile(), want)
	}
}

func TestGetMeterConfig_Defaults(t *testing.T) {
	tests := []struct {
		name         string
		input        MeterConfig
		wantInterval time.Duration
		wantGamma    float64
	}{
		{"zero values", MeterConfig{}, DefaultMeterInterval, DefaultGamma},
		{"too fast", MeterConfig{IntervalMS: 1}, DefaultMeterInterval, DefaultGamma},
		{"negative gamma", MeterConfig{IntervalMS: 250, Gamma: -1}, 250 * time.Millisecond, DefaultGamma},
		{"kept", MeterConfig{IntervalMS: 40, Gamma: 1.8}, 40 * time.Millisecond, 1.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := (&Config{Meter: tt.input}).GetMeterConfig()
			if got.Interval() != tt.wantInterval || got.Gamma != tt.wantGamma {
				t.Errorf("GetMeterConfig() = %v/%v, want %v/%v",
					got.Interval(), got.Gamma, tt.wantInterval, tt.wantGamma)
			}
		})
	}
}

func TestGetAudioConfig_Defaults(t *testing.T) {
	tests := []struct {
		name       string
		input      AudioConfig
		wantRate   int
		wantBuffer time.Duration
	}{
		{"zero values", AudioConfig{}, DefaultSampleRate, DefaultAudioBuffer},
		{"rate too low", AudioConfig{SampleRate: 100, BufferMS: 50}, DefaultSampleRate, 50 * time.Millisecond},
		{"buffer too long", AudioConfig{SampleRate: 96000, BufferMS: 5000}, 96000, DefaultAudioBuffer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := (&Config{Audio: tt.input}).GetAudioConfig()
			if got.SampleRate != tt.wantRate || got.Buffer() != tt.wantBuffer {
				t.Errorf("GetAudioConfig() = %+v", got)
			}
		})
	}
}
