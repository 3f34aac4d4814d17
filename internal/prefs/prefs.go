package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"taskboard/internal/view"
)

const (
	prefsDir      = ".taskboard"
	prefsFileName = "prefs.json"
)

// Prefs persists UI state between invocations: the active view mode and
// the last saved filter.
type Prefs struct {
	ViewMode string      `json:"view_mode"`
	Filter   view.Filter `json:"filter"`
}

// Path returns the location of the prefs file (~/.taskboard/prefs.json).
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, prefsDir, prefsFileName), nil
}

// Load reads the prefs file. A missing or unreadable file yields
// defaults.
func Load() (*Prefs, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	defaults := &Prefs{ViewMode: view.ModeStatus.String()}

	data, err := os.ReadFile(path)
	if err != nil {
		return defaults, nil
	}

	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return defaults, nil
	}
	if p.ViewMode == "" {
		p.ViewMode = view.ModeStatus.String()
	}
	return &p, nil
}

// Save writes the prefs file, creating its directory if needed.
func Save(p *Prefs) error {
	path, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
