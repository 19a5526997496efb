package uidebug

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Settings is a named key/value store for persisted preferences.
type Settings interface {
	Bool(key string, def bool) bool
	SetBool(key string, v bool)
	Float(key string, def float32) float32
	SetFloat(key string, v float32)
}

// ViperSettings stores settings in a viper instance, optionally backed by a
// config file.
type ViperSettings struct {
	v    *viper.Viper
	path string
}

// NewViperSettings creates an in-memory settings store.
func NewViperSettings() *ViperSettings {
	v := viper.New()
	v.SetConfigType("toml")
	return &ViperSettings{v: v}
}

// LoadSettings reads settings from path. A missing file is not an error;
// Save creates it later.
func LoadSettings(path string) (*ViperSettings, error) {
	s := NewViperSettings()
	s.path = path
	s.v.SetConfigFile(path)
	if err := s.v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return s, nil
		}
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}
	return s, nil
}

// Path returns the backing file, or "" for an in-memory store.
func (s *ViperSettings) Path() string { return s.path }

// Bool implements Settings.
func (s *ViperSettings) Bool(key string, def bool) bool {
	if !s.v.IsSet(key) {
		return def
	}
	return s.v.GetBool(key)
}

// SetBool implements Settings.
func (s *ViperSettings) SetBool(key string, v bool) { s.v.Set(key, v) }

// Float implements Settings.
func (s *ViperSettings) Float(key string, def float32) float32 {
	if !s.v.IsSet(key) {
		return def
	}
	return float32(s.v.GetFloat64(key))
}

// SetFloat implements Settings.
func (s *ViperSettings) SetFloat(key string, v float32) { s.v.Set(key, float64(v)) }

// Save writes the settings to the backing file, creating its directory.
func (s *ViperSettings) Save() error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir settings dir: %w", err)
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
