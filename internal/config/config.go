package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Profile describes the local user shown at the top of every view.
type Profile struct {
	Name      string `toml:"name"`
	AvatarURL string `toml:"avatar_url"`
}

// UI holds the default view settings commands start from; flags override
// them per invocation.
type UI struct {
	View          string `toml:"view"`
	SortBy        string `toml:"sort_by"`
	SortDirection string `toml:"sort_direction"`
	Locale        string `toml:"locale"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for medialog.
type Config struct {
	// DemoData seeds the in-memory store with the demo dataset on startup.
	// With it off, every command starts from an empty library.
	DemoData bool    `toml:"demo_data"`
	Profile  Profile `toml:"profile"`
	UI       UI      `toml:"ui"`
	Logging  Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/medialog/config.toml")
}

// Load locates, parses, and validates a configuration file. A missing file
// is not an error; defaults apply. The second return is the resolved path,
// the third reports whether the file existed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("medialog.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// CreateSample writes the embedded sample configuration to target.
func CreateSample(target string) error {
	if err := os.WriteFile(target, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// ExpandPath resolves a leading ~ against the current user's home directory.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", nil
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		if trimmed == "~" {
			return home, nil
		}
		return filepath.Join(home, trimmed[2:]), nil
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", trimmed, err)
	}
	return abs, nil
}

func (c *Config) normalize() {
	c.Profile.Name = strings.TrimSpace(c.Profile.Name)
	c.UI.View = strings.ToLower(strings.TrimSpace(c.UI.View))
	c.UI.SortBy = strings.ToLower(strings.TrimSpace(c.UI.SortBy))
	c.UI.SortDirection = strings.ToLower(strings.TrimSpace(c.UI.SortDirection))
	c.UI.Locale = strings.TrimSpace(c.UI.Locale)
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))

	defaults := Default()
	if c.UI.View == "" {
		c.UI.View = defaults.UI.View
	}
	if c.UI.SortBy == "" {
		c.UI.SortBy = defaults.UI.SortBy
	}
	if c.UI.SortDirection == "" {
		c.UI.SortDirection = defaults.UI.SortDirection
	}
	if c.UI.Locale == "" {
		c.UI.Locale = defaults.UI.Locale
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaults.Logging.Format
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	if c.Profile.Name == "" {
		c.Profile.Name = defaults.Profile.Name
	}
}
