package loaders

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"

	"github.com/df07/go-raycaster/pkg/renderer"
)

// PreferencesDirName is the directory under the user's home scanned for
// preference files
const PreferencesDirName = ".raytracer"

// Preferences are user defaults read from the [render] section of .ini
// files. Unset values are left nil or zero.
type Preferences struct {
	Width           int
	Height          int
	ReflectDepth    *int
	MultiSampleRate *int
	Output          string
}

// PreferencesDir returns the preference directory, creating it if missing
func PreferencesDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	dir := filepath.Join(home, PreferencesDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create preferences directory: %w", err)
	}
	return dir, nil
}

// LoadPreferences reads a single preference file
func LoadPreferences(path string) (*Preferences, error) {
	return loadPreferences(path)
}

// ScanPreferences merges every *.ini file in dir in lexical order, later
// files overriding earlier ones. A missing directory yields empty preferences.
func ScanPreferences(dir string) (*Preferences, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.ini"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan preferences: %w", err)
	}
	if len(files) == 0 {
		return &Preferences{}, nil
	}

	sources := make([]interface{}, len(files))
	for i, f := range files {
		sources[i] = f
	}
	return loadPreferences(sources[0], sources[1:]...)
}

func loadPreferences(source interface{}, others ...interface{}) (*Preferences, error) {
	cfg, err := ini.Load(source, others...)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	section := cfg.Section("render")
	prefs := &Preferences{
		Output: section.Key("output").String(),
	}

	ints := []struct {
		key    string
		assign func(int)
	}{
		{"width", func(v int) { prefs.Width = v }},
		{"height", func(v int) { prefs.Height = v }},
		{"reflect_depth", func(v int) { prefs.ReflectDepth = &v }},
		{"multi_sample_rate", func(v int) { prefs.MultiSampleRate = &v }},
	}
	for _, field := range ints {
		if !section.HasKey(field.key) {
			continue
		}
		v, err := section.Key(field.key).Int()
		if err != nil {
			return nil, fmt.Errorf("preference render.%s: %w", field.key, err)
		}
		field.assign(v)
	}

	return prefs, nil
}

// Apply overrides config with every preference that is set
func (p *Preferences) Apply(config *renderer.Config) {
	if p.ReflectDepth != nil {
		config.ReflectDepth = *p.ReflectDepth
	}
	if p.MultiSampleRate != nil {
		config.MultiSampleRate = *p.MultiSampleRate
	}
}

// Size returns the preferred size, falling back to the given one for
// unset dimensions
func (p *Preferences) Size(width, height int) (int, int) {
	if p.Width > 0 {
		width = p.Width
	}
	if p.Height > 0 {
		height = p.Height
	}
	return width, height
}
