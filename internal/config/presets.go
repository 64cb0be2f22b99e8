package config

import "sort"

var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"dense": {
		Field: "metaballs", Threshold: 1, Seed: 7, Frames: 300, Saddle: "independent",
		View:    ViewConfig{Width: 1024, Height: 640},
		Grid:    GridConfig{Spacing: 8, ScaleX: 1, ScaleY: 1},
		Sources: SourceConfig{Count: 12, MinRadius: 5, MaxRadius: 35, MaxSpeed: 10},
	},
	"single": {
		Field: "metaballs", Threshold: 1, Seed: 3, Frames: 200, Saddle: "independent",
		View:    ViewConfig{Width: 320, Height: 200},
		Grid:    GridConfig{Spacing: 10, ScaleX: 1, ScaleY: 1},
		Sources: SourceConfig{Count: 1, MinRadius: 20, MaxRadius: 20, MaxSpeed: 3},
	},
	"calm": {
		Field: "metaballs", Threshold: 1, Seed: 11, Frames: 600, Saddle: "center",
		View:    ViewConfig{Width: 1024, Height: 640},
		Grid:    GridConfig{Spacing: 16, ScaleX: 1, ScaleY: 1},
		Sources: SourceConfig{Count: 5, MinRadius: 15, MaxRadius: 40, MaxSpeed: 2},
	},
	"heart": {
		Field: "heart", Threshold: 1, Frames: 1, Saddle: "independent",
		View:  ViewConfig{Width: 1024, Height: 640},
		Grid:  GridConfig{Spacing: 16, ScaleX: 1.0 / 256, ScaleY: 1.0 / 160},
		Heart: HeartConfig{CenterX: 2, CenterY: 2},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
