// Package config resolves napstack settings from defaults, an optional YAML
// file and NAPSTACK_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything main needs to wire the app.
type Config struct {
	DBPath   string
	LogPath  string // "stderr" logs to standard error
	LogLevel slog.Level
	Seed     uint64 // 0 picks a time-based seed

	SoundDir    string
	AudioPlayer string

	TickInterval     time.Duration
	RefreshInterval  time.Duration
	IdleTimeout      time.Duration
	FreshFor         time.Duration
	Celebration      time.Duration
	PresenceInterval time.Duration

	Retained int
	Visible  int
}

// fileConfig is the on-disk shape. Durations are whole seconds.
type fileConfig struct {
	DB                      string `yaml:"db"`
	Log                     string `yaml:"log"`
	LogLevel                string `yaml:"log_level"`
	Seed                    uint64 `yaml:"seed"`
	SoundDir                string `yaml:"sound_dir"`
	AudioPlayer             string `yaml:"audio_player"`
	TickSeconds             int    `yaml:"tick_seconds"`
	RefreshSeconds          int    `yaml:"refresh_seconds"`
	IdleTimeoutSeconds      int    `yaml:"idle_timeout_seconds"`
	FreshSeconds            int    `yaml:"fresh_seconds"`
	CelebrationSeconds      int    `yaml:"celebration_seconds"`
	PresenceIntervalSeconds int    `yaml:"presence_interval_seconds"`
	Retained                int    `yaml:"retained"`
	Visible                 int    `yaml:"visible"`
}

// DefaultConfig returns the defaults rooted at dir (normally ~/.napstack).
func DefaultConfig(dir string) Config {
	return Config{
		DBPath:           filepath.Join(dir, "napstack.db"),
		LogPath:          filepath.Join(dir, "napstack.log"),
		LogLevel:         slog.LevelInfo,
		SoundDir:         filepath.Join(dir, "sounds"),
		AudioPlayer:      "ffplay",
		TickInterval:     time.Second,
		RefreshInterval:  5 * time.Minute,
		IdleTimeout:      60 * time.Second,
		FreshFor:         2 * time.Minute,
		Celebration:      3 * time.Second,
		PresenceInterval: 45 * time.Second,
		Retained:         20,
		Visible:          5,
	}
}

// Dir returns the napstack home directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".napstack"), nil
}

// Load resolves the full configuration. NAPSTACK_CONFIG overrides the file
// location; a missing file is not an error.
func Load() (Config, error) {
	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}
	path := os.Getenv("NAPSTACK_CONFIG")
	if path == "" {
		path = filepath.Join(dir, "config.yaml")
	}
	return LoadFrom(dir, path)
}

// LoadFrom applies defaults rooted at dir, then the YAML file at path, then
// the environment.
func LoadFrom(dir, path string) (Config, error) {
	cfg := DefaultConfig(dir)

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("reading config file: %w", err)
	default:
		var fc fileConfig
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
		}
		applyFile(&cfg, fc)
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyFile(cfg *Config, fc fileConfig) {
	if fc.DB != "" {
		cfg.DBPath = fc.DB
	}
	if fc.Log != "" {
		cfg.LogPath = fc.Log
	}
	if lvl, ok := parseLevel(fc.LogLevel); ok {
		cfg.LogLevel = lvl
	}
	if fc.Seed != 0 {
		cfg.Seed = fc.Seed
	}
	if fc.SoundDir != "" {
		cfg.SoundDir = fc.SoundDir
	}
	if fc.AudioPlayer != "" {
		cfg.AudioPlayer = fc.AudioPlayer
	}
	setSeconds(&cfg.TickInterval, fc.TickSeconds)
	setSeconds(&cfg.RefreshInterval, fc.RefreshSeconds)
	setSeconds(&cfg.IdleTimeout, fc.IdleTimeoutSeconds)
	setSeconds(&cfg.FreshFor, fc.FreshSeconds)
	setSeconds(&cfg.Celebration, fc.CelebrationSeconds)
	setSeconds(&cfg.PresenceInterval, fc.PresenceIntervalSeconds)
	if fc.Retained > 0 {
		cfg.Retained = fc.Retained
	}
	if fc.Visible > 0 {
		cfg.Visible = fc.Visible
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("NAPSTACK_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("NAPSTACK_LOG"); v != "" {
		cfg.LogPath = v
	}
	if lvl, ok := parseLevel(os.Getenv("NAPSTACK_LOG_LEVEL")); ok {
		cfg.LogLevel = lvl
	}
	if v := os.Getenv("NAPSTACK_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = n
		}
	}
	if v := os.Getenv("NAPSTACK_SOUND_DIR"); v != "" {
		cfg.SoundDir = v
	}
	applySecondsEnv(&cfg.TickInterval, "NAPSTACK_TICK_SECONDS")
	applySecondsEnv(&cfg.RefreshInterval, "NAPSTACK_REFRESH_SECONDS")
	applySecondsEnv(&cfg.IdleTimeout, "NAPSTACK_IDLE_TIMEOUT")
	applySecondsEnv(&cfg.FreshFor, "NAPSTACK_FRESH_SECONDS")
	applySecondsEnv(&cfg.Celebration, "NAPSTACK_CELEBRATION_SECONDS")
	applySecondsEnv(&cfg.PresenceInterval, "NAPSTACK_PRESENCE_SECONDS")
}

func applySecondsEnv(d *time.Duration, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	setSeconds(d, n)
}

func setSeconds(d *time.Duration, n int) {
	if n > 0 {
		*d = time.Duration(n) * time.Second
	}
}

func parseLevel(s string) (slog.Level, bool) {
	if s == "" {
		return 0, false
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, false
	}
	return lvl, true
}
