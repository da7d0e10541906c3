// Package config handles the FlexUI configuration file: appearance and
// drag-feel settings stored as TOML under the XDG config home.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// UserConfig is the on-disk configuration.
type UserConfig struct {
	Appearance AppearanceConfig `toml:"appearance"`
	Drag       DragConfig       `toml:"drag"`
}

// AppearanceConfig controls theming and chrome.
type AppearanceConfig struct {
	// Theme is a bubbletint theme ID; empty disables theming and uses the
	// terminal's own colors.
	Theme string `toml:"theme"`
	// BorderStyle is one of "rounded", "normal", "thick".
	BorderStyle string `toml:"border_style"`
	// StripPosition places the docked-window strip at "top" or "bottom".
	StripPosition string `toml:"strip_position"`
}

// DragConfig tunes how dragging feels.
type DragConfig struct {
	// PlaceholderThickness is the marker's thickness in cells.
	PlaceholderThickness int `toml:"placeholder_thickness"`
	// StickyStrip keeps the strip visible while any drag is in progress,
	// even when it has no docked windows.
	StickyStrip bool `toml:"sticky_strip"`
	// CancelKey aborts an in-progress drag.
	CancelKey string `toml:"cancel_key"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Appearance: AppearanceConfig{
			Theme:         "",
			BorderStyle:   "rounded",
			StripPosition: "top",
		},
		Drag: DragConfig{
			PlaceholderThickness: 1,
			StickyStrip:          true,
			CancelKey:            "esc",
		},
	}
}

// ConfigFilePath returns the path of the configuration file, creating the
// parent directory if needed.
func ConfigFilePath() (string, error) {
	path, err := xdg.ConfigFile(filepath.Join("flexui", "config.toml"))
	if err != nil {
		return "", fmt.Errorf("resolving config path: %w", err)
	}
	return path, nil
}

// LoadUserConfig reads the configuration file, falling back to defaults when
// it does not exist. Unknown keys are ignored; invalid values are an error.
func LoadUserConfig() (*UserConfig, error) {
	path, err := ConfigFilePath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveUserConfig writes the configuration to its standard location.
func SaveUserConfig(cfg *UserConfig) error {
	path, err := ConfigFilePath()
	if err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks value ranges and enumerations.
func (c *UserConfig) Validate() error {
	switch c.Appearance.BorderStyle {
	case "rounded", "normal", "thick":
	default:
		return fmt.Errorf("config: unknown border_style %q", c.Appearance.BorderStyle)
	}
	switch c.Appearance.StripPosition {
	case "top", "bottom":
	default:
		return fmt.Errorf("config: unknown strip_position %q", c.Appearance.StripPosition)
	}
	if c.Drag.PlaceholderThickness < 1 || c.Drag.PlaceholderThickness > 4 {
		return fmt.Errorf("config: placeholder_thickness %d out of range 1-4", c.Drag.PlaceholderThickness)
	}
	return nil
}
