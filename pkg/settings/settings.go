// Package settings persists the journal's user settings: where notes live and
// how large the panel is drawn.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the settings file kept in the base directory.
const FileName = "journal.yaml"

// Panel size bounds, in the units the settings sliders use.
const (
	DefaultWidth  = 700
	DefaultHeight = 875
	MinWidth      = 200
	MaxWidth      = 1500
	MinHeight     = 200
	MaxHeight     = 1000

	// DefaultDirName is the notes directory under the base directory.
	DefaultDirName = "Journal"
)

// Layout is the requested panel size.
type Layout struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Settings is the content of journal.yaml.
type Settings struct {
	DirName      string `yaml:"dir_name" json:"dir_name"`
	AtomicWrites bool   `yaml:"atomic_writes" json:"atomic_writes"`
	Watch        bool   `yaml:"watch" json:"watch"`
	Layout       Layout `yaml:"layout" json:"layout"`
}

// Default returns the settings used when no file exists.
func Default() Settings {
	return Settings{
		DirName: DefaultDirName,
		Watch:   true,
		Layout:  Layout{Width: DefaultWidth, Height: DefaultHeight},
	}
}

// Reset restores the panel size to its defaults, leaving storage settings alone.
func (s *Settings) Reset() {
	s.Layout = Layout{Width: DefaultWidth, Height: DefaultHeight}
}

// Clamp keeps the layout inside the slider bounds and fills empty fields.
func (s *Settings) Clamp() {
	if s.DirName == "" {
		s.DirName = DefaultDirName
	}
	s.Layout.Width = clamp(s.Layout.Width, MinWidth, MaxWidth, DefaultWidth)
	s.Layout.Height = clamp(s.Layout.Height, MinHeight, MaxHeight, DefaultHeight)
}

func clamp(v, lo, hi, def int) int {
	switch {
	case v == 0:
		return def
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

// Path returns the settings file location for a base directory.
func Path(baseDir string) string {
	return filepath.Join(baseDir, FileName)
}

// Load reads the settings file under baseDir. A missing file yields Default().
func Load(baseDir string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(Path(baseDir))
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("invalid settings file %s: %w", Path(baseDir), err)
	}
	s.Clamp()
	return s, nil
}

// Save writes s to the settings file under baseDir, creating baseDir if needed.
func Save(baseDir string, s Settings) error {
	s.Clamp()

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return fmt.Errorf("failed to create base directory: %w", err)
	}
	if err := os.WriteFile(Path(baseDir), data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
