package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings is the user configuration file. Every field has a working
// default; a missing or unreadable file must never stop the dashboard
// from opening.
type Settings struct {
	// Theme selects the base16 palette by name.
	Theme string `yaml:"theme"`
	// Editor overrides $VISUAL / $EDITOR for the edit workflow.
	Editor string `yaml:"editor"`
	// IssuesPerPipeline caps the eager fetch fan-out per pipeline.
	IssuesPerPipeline int `yaml:"issues_per_pipeline"`
	// MaxConcurrentFetches bounds in-flight issue fetches.
	MaxConcurrentFetches int `yaml:"max_concurrent_fetches"`
}

// Default returns the built-in configuration.
func Default() Settings {
	return Settings{
		Theme:                "icy",
		IssuesPerPipeline:    7,
		MaxConcurrentFetches: 8,
	}
}

// Path returns the default settings file location, e.g.
// ~/.config/zentui/settings.yaml on Linux.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "zentui", "settings.yaml"), nil
}

// Load reads the settings file at path, filling absent fields with
// defaults. A missing file yields the defaults without error.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parse settings: %w", err)
	}
	if s.IssuesPerPipeline <= 0 {
		s.IssuesPerPipeline = Default().IssuesPerPipeline
	}
	if s.MaxConcurrentFetches <= 0 {
		s.MaxConcurrentFetches = Default().MaxConcurrentFetches
	}
	return s, nil
}

// WriteDefault writes the default settings file to path, creating
// parent directories. It refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("settings file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
