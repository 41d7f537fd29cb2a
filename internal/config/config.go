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

// Config holds the startup settings for tabnav.
type Config struct {
	StartRoute string
	LogPath    string
	LogLevel   string
	Friends    []string
}

const (
	defaultConfigPath = "~/.config/tabnav/config.toml"
	defaultLogPath    = "~/.local/state/tabnav/tabnav.log"
	defaultLogLevel   = "info"
)

var defaultFriends = []string{"Ada", "Grace", "Linus", "Margaret", "Ken", "Barbara"}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogPath:  mustExpand(defaultLogPath),
		LogLevel: defaultLogLevel,
		Friends:  append([]string(nil), defaultFriends...),
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		StartRoute string   `toml:"start_route"`
		LogPath    string   `toml:"log_path"`
		LogLevel   string   `toml:"log_level"`
		Friends    []string `toml:"friends"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.StartRoute = strings.TrimSpace(raw.StartRoute)

	if p := strings.TrimSpace(raw.LogPath); p != "" {
		cfg.LogPath = mustExpand(p)
	}

	if lvl := strings.ToLower(strings.TrimSpace(raw.LogLevel)); lvl != "" {
		if !validLevels[lvl] {
			return Config{}, fmt.Errorf("parse config: unknown log_level %q", raw.LogLevel)
		}
		cfg.LogLevel = lvl
	}

	if raw.Friends != nil {
		cfg.Friends = cfg.Friends[:0]
		for _, name := range raw.Friends {
			if name = strings.TrimSpace(name); name != "" {
				cfg.Friends = append(cfg.Friends, name)
			}
		}
	}

	return cfg, nil
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
