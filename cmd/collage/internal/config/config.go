// Package config loads the optional collage.yaml workspace configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/go-collage/collage/pkg/document"
	"github.com/go-collage/collage/pkg/style"
)

// Config represents the optional collage.yaml configuration.
type Config struct {
	Document DocumentConfig `yaml:"document"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Archive  ArchiveConfig  `yaml:"archive"`
}

// DocumentConfig contains document format settings.
type DocumentConfig struct {
	Format string `yaml:"format,omitempty"`
}

// DefaultsConfig contains the default text style applied by "add text".
type DefaultsConfig struct {
	FontFamily string  `yaml:"fontFamily,omitempty"`
	FontSize   float64 `yaml:"fontSize,omitempty"`
	FontWeight int     `yaml:"fontWeight,omitempty"`
	Color      string  `yaml:"color,omitempty"`
	LineHeight float64 `yaml:"lineHeight,omitempty"`
	TextAlign  string  `yaml:"textAlign,omitempty"`
}

// ArchiveConfig contains archive database settings.
type ArchiveConfig struct {
	Path string `yaml:"path,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Format       string
	DefaultStyle style.TextStyle
	TextAlign    document.Alignment
	ArchivePath  string
}

// LoadOptional reads collage.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "collage.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read collage.yaml: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse collage.yaml: %w", err)
	}
	return &cfg, nil
}

// Resolve loads the configuration from dir and fills in defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	r := &Resolved{
		Format:       document.FormatVersion,
		DefaultStyle: style.Default(),
		TextAlign:    document.AlignLeft,
	}

	if cfg.Document.Format != "" {
		if err := document.CheckFormat(cfg.Document.Format); err != nil {
			return nil, fmt.Errorf("collage.yaml: %w", err)
		}
		r.Format = cfg.Document.Format
	}
	if cfg.Defaults.FontFamily != "" {
		r.DefaultStyle.FontFamily = cfg.Defaults.FontFamily
	}
	if cfg.Defaults.FontSize > 0 {
		r.DefaultStyle.FontSize = cfg.Defaults.FontSize
	}
	if cfg.Defaults.FontWeight != 0 {
		if cfg.Defaults.FontWeight < 100 || cfg.Defaults.FontWeight > 900 {
			return nil, fmt.Errorf("collage.yaml: font weight %d out of range", cfg.Defaults.FontWeight)
		}
		r.DefaultStyle.FontWeight = cfg.Defaults.FontWeight
	}
	if cfg.Defaults.Color != "" {
		if !style.ValidColor(cfg.Defaults.Color) {
			return nil, fmt.Errorf("collage.yaml: invalid color %q", cfg.Defaults.Color)
		}
		r.DefaultStyle.Color = cfg.Defaults.Color
	}
	if cfg.Defaults.LineHeight > 0 {
		r.DefaultStyle.LineHeight = cfg.Defaults.LineHeight
	}
	if cfg.Defaults.TextAlign != "" {
		var a document.Alignment
		if err := a.UnmarshalText([]byte(cfg.Defaults.TextAlign)); err != nil {
			return nil, fmt.Errorf("collage.yaml: %w", err)
		}
		r.TextAlign = a
	}

	r.ArchivePath = cfg.Archive.Path
	if r.ArchivePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		r.ArchivePath = filepath.Join(home, ".collage", "archive.db")
	}
	return r, nil
}
