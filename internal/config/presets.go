package config

import "sort"

// Presets are built-in scene descriptions, keyed by name.
var Presets = map[string]*Config{
	"projectile": {
		Bodies: []BodyConfig{
			{
				Name:      "P",
				Type:      "particle",
				Mass:      "m",
				Position:  Triple{X: "x", Y: "y"},
				Velocity:  Triple{X: "vx", Y: "vy"},
				Potential: "m*g*y",
			},
		},
	},
	"pendulum": {
		Bodies: []BodyConfig{
			{
				Name:      "bob",
				Type:      "particle",
				Mass:      "m",
				Position:  Triple{X: "l*sin(q)", Y: "-l*cos(q)"},
				Velocity:  Triple{X: "l*cos(q)*u", Y: "l*sin(q)*u"},
				Potential: "-m*g*l*cos(q)",
			},
		},
	},
	"top": {
		Bodies: []BodyConfig{
			{
				Name:    "top",
				Type:    "rigid",
				Mass:    "M",
				Inertia: InertiaComponents{Ixx: "Ixx", Iyy: "Ixx", Izz: "Izz"},
				Spin:    Triple{Z: "wz"},
			},
		},
	},
	"two_particles": {
		Bodies: []BodyConfig{
			{
				Name:     "a",
				Mass:     "ma",
				Position: Triple{X: "xa"},
				Velocity: Triple{X: "va"},
			},
			{
				Name:     "b",
				Mass:     "mb",
				Position: Triple{X: "xb"},
				Velocity: Triple{X: "vb"},
			},
		},
	},
}

// GetPreset returns the named preset or nil.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
