package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/breakout.yaml
var defaultYAML []byte

// Format is a configuration file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unsupported config format %q", filepath.Ext(path))
}

// Parse decodes data over the defaults, so partial files only override what they name.
func Parse(data []byte, format Format) (Config, error) {
	cfg := Default()
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &cfg)
	case FormatTOML:
		err = toml.Unmarshal(data, &cfg)
	default:
		err = fmt.Errorf("unsupported config format %q", format)
	}
	return cfg, err
}

// Load loads the configuration and reports where it came from.
// Search order: customPath -> ~/.breakout/config.{yaml,toml} -> ./configs/breakout.yaml -> embedded default
func Load(customPath string) (Config, string, error) {
	// An explicit path must load; fallbacks are silently skipped.
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, cfg.Validate()
	}

	candidates := userConfigPaths()
	candidates = append(candidates, filepath.Join("configs", "breakout.yaml"))
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := loadFile(path)
		if err != nil {
			continue
		}
		return cfg, path, cfg.Validate()
	}

	cfg, err := Parse(defaultYAML, FormatYAML)
	if err != nil {
		return Default(), "builtin", nil
	}
	return cfg, "embedded", cfg.Validate()
}

func loadFile(path string) (Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Default(), err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPaths returns the per-user config candidates, or nothing if home is unavailable.
func userConfigPaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	dir := filepath.Join(home, ".breakout")
	return []string{
		filepath.Join(dir, "config.yaml"),
		filepath.Join(dir, "config.toml"),
	}
}

// Marshal encodes the configuration in the given format.
func (c Config) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(c)
	case FormatTOML:
		return toml.Marshal(c)
	}
	return nil, fmt.Errorf("unsupported config format %q", format)
}
