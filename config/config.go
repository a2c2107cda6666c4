// Package config owns the overlay configuration: the TOML file contract,
// the immutable snapshot model, and the hot-reloading store.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// File mirrors the on-disk TOML layout. Fields left out of the file keep
// their default values.
type File struct {
	TimeoutMS int64                  `toml:"timeout_ms"`
	Window    WindowConfig           `toml:"window"`
	Web       WebConfig              `toml:"web"`
	Styles    map[string]StyleConfig `toml:"styles"`
}

// WebConfig controls the embedded overlay server.
type WebConfig struct {
	Port int `toml:"port"`
}

// WindowConfig places the overlay window. Monitor selection is carried for
// the rendering collaborator; the core does not interpret it.
type WindowConfig struct {
	Monitor  int        `toml:"monitor"`
	Position [2]float64 `toml:"position"`
	Size     [2]float64 `toml:"size"`
}

// StyleConfig is the visual style for one key group. Colors are `#RRGGBB`
// hex strings; the core validates shape, not taste.
type StyleConfig struct {
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	IconSize float64 `toml:"icon_size"`
	TextSize float64 `toml:"text_size"`
	BgColor  string  `toml:"bg_color"`
	FgColor  string  `toml:"fg_color"`
}

// ConfigPath returns the path to the configuration file, creating the
// directory if needed.
func ConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		base, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve config directory: %w", err)
		}
	}

	configDir := filepath.Join(base, "keyglow")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.toml"), nil
}

// Load reads the configuration file at path. If the file doesn't exist, it
// writes the defaults out first so the user has something to edit.
func Load(path string) (*File, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := defaultFile()
		if err := save(path, cfg); err != nil {
			return nil, fmt.Errorf("create default config: %w", err)
		}
		return cfg, nil
	}

	return parse(path)
}

// parse decodes an existing file on top of the defaults, so a partial file
// only overrides what it mentions.
func parse(path string) (*File, error) {
	cfg := defaultFile()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return cfg, nil
}

// save writes the configuration to the TOML file.
func save(path string, cfg *File) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// ParseError reports a malformed config file. It is recoverable: the store
// keeps the previous snapshot live.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
