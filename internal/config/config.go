package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds everything fitjourney reads at startup.
type Config struct {
	DataDir    string
	QuotaBytes int64

	LogFile   string
	LogLevel  string
	LogFormat string // "text" or "json"

	OfflineListen   string
	OfflineUpstream string
	CacheDir        string
	CacheSizeMB     int
}

const (
	defaultConfigPath  = "~/.config/fitjourney/config.toml"
	defaultDataDir     = "~/.local/share/fitjourney"
	defaultLogName     = "fitjourney.log"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultQuotaBytes  = 5 << 20
	defaultListen      = "127.0.0.1:7488"
	defaultCacheSizeMB = 16
)

// DefaultPath returns the config file used when none is given.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	dataDir := mustExpand(defaultDataDir)
	return Config{
		DataDir:       dataDir,
		QuotaBytes:    defaultQuotaBytes,
		LogFile:       filepath.Join(dataDir, defaultLogName),
		LogLevel:      defaultLogLevel,
		LogFormat:     defaultLogFormat,
		OfflineListen: defaultListen,
		CacheSizeMB:   defaultCacheSizeMB,
	}
}

type rawConfig struct {
	DataDir    string `toml:"data_dir"`
	QuotaBytes int64  `toml:"quota_bytes"`
	Log        struct {
		File   string `toml:"file"`
		Level  string `toml:"level"`
		Format string `toml:"format"`
	} `toml:"log"`
	Offline struct {
		Listen      string `toml:"listen"`
		Upstream    string `toml:"upstream"`
		CacheDir    string `toml:"cache_dir"`
		CacheSizeMB int    `toml:"cache_size_mb"`
	} `toml:"offline"`
}

// Load locates and parses the config file, falling back to defaults when it is
// missing. Blank or non-positive fields also take their defaults.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Config{
		DataDir:         mustExpand(orDefault(raw.DataDir, defaultDataDir)),
		QuotaBytes:      raw.QuotaBytes,
		LogLevel:        orDefault(raw.Log.Level, defaultLogLevel),
		LogFormat:       strings.ToLower(orDefault(raw.Log.Format, defaultLogFormat)),
		OfflineListen:   orDefault(raw.Offline.Listen, defaultListen),
		OfflineUpstream: strings.TrimSpace(raw.Offline.Upstream),
		CacheSizeMB:     raw.Offline.CacheSizeMB,
	}
	if cfg.QuotaBytes <= 0 {
		cfg.QuotaBytes = defaultQuotaBytes
	}
	if cfg.CacheSizeMB <= 0 {
		cfg.CacheSizeMB = defaultCacheSizeMB
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("log format %q: want text or json", cfg.LogFormat)
	}
	if logFile := strings.TrimSpace(raw.Log.File); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	} else {
		cfg.LogFile = filepath.Join(cfg.DataDir, defaultLogName)
	}
	if cacheDir := strings.TrimSpace(raw.Offline.CacheDir); cacheDir != "" {
		cfg.CacheDir = mustExpand(cacheDir)
	}

	return cfg, nil
}

// CacheSizeBytes returns the in-memory offline cache size.
func (c Config) CacheSizeBytes() int {
	if c.CacheSizeMB <= 0 {
		return defaultCacheSizeMB << 20
	}
	return c.CacheSizeMB << 20
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
