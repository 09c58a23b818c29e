package config

import (
	"fmt"

	"golang.org/x/text/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateUI(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateUI() error {
	switch c.UI.View {
	case "grid", "list":
	default:
		return fmt.Errorf("ui.view must be grid or list, got %q", c.UI.View)
	}
	switch c.UI.SortBy {
	case "title", "rating", "last-reviewed":
	default:
		return fmt.Errorf("ui.sort_by must be title, rating, or last-reviewed, got %q", c.UI.SortBy)
	}
	switch c.UI.SortDirection {
	case "asc", "desc":
	default:
		return fmt.Errorf("ui.sort_direction must be asc or desc, got %q", c.UI.SortDirection)
	}
	if _, err := language.Parse(c.UI.Locale); err != nil {
		return fmt.Errorf("ui.locale %q is not a valid BCP 47 tag: %w", c.UI.Locale, err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

// LocaleTag parses the configured locale. Validate guarantees this succeeds
// on a loaded config.
func (c *Config) LocaleTag() language.Tag {
	tag, err := language.Parse(c.UI.Locale)
	if err != nil {
		return language.Und
	}
	return tag
}
