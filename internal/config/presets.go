package config

// Canvas presets for common sprite sizes, selectable with --preset.
var presets = map[string]*Config{
	"icon": {
		Rows: 8, Cols: 8,
		IntervalMS:    DefaultIntervalMS,
		Magnification: 24,
		Theme:         DefaultTheme,
		DataDir:       DefaultDataDir,
	},
	"sprite": {
		Rows: 16, Cols: 16,
		IntervalMS:    DefaultIntervalMS,
		Magnification: 16,
		Theme:         DefaultTheme,
		DataDir:       DefaultDataDir,
	},
	"tile": {
		Rows: 32, Cols: 32,
		IntervalMS:    DefaultIntervalMS,
		Magnification: 8,
		Theme:         DefaultTheme,
		DataDir:       DefaultDataDir,
	},
	"banner": {
		Rows: 16, Cols: 64,
		IntervalMS:    100,
		Magnification: 8,
		Theme:         DefaultTheme,
		DataDir:       DefaultDataDir,
	},
}

// GetPreset returns a copy of the named preset, or nil when unknown.
func GetPreset(name string) *Config {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}
