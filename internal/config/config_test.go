package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/mechsym/internal/mechanics"
	"github.com/san-kum/mechsym/internal/symbol"
)

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("pendulum")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if len(cfg.Bodies) != 1 || cfg.Bodies[0].Name != "bob" {
		t.Errorf("unexpected pendulum preset: %+v", cfg.Bodies)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected built-in presets")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("preset names should be sorted: %v", names)
		}
	}
}

func TestBuildPendulum(t *testing.T) {
	scene, err := GetPreset("pendulum").Build()
	if err != nil {
		t.Fatal(err)
	}
	if scene.World.Name() != WorldFrame {
		t.Errorf("world frame = %q, want %q", scene.World.Name(), WorldFrame)
	}
	if len(scene.Bodies) != 1 {
		t.Fatalf("expected 1 body, got %d", len(scene.Bodies))
	}

	bob := scene.Bodies[0]
	if bob.Mass().String() != "m" {
		t.Errorf("mass = %s, want m", bob.Mass())
	}
	ke, err := bob.KineticEnergy(scene.World)
	if err != nil {
		t.Fatal(err)
	}
	// KE = m*l^2*u^2*(sin^2 + cos^2)/2; numerically m*l^2*u^2/2.
	env := map[string]float64{"m": 2, "l": 3, "u": 0.5, "q": 0.7, "g": 9.81}
	got, ok := ke.Eval(env)
	if !ok {
		t.Fatal("kinetic energy did not evaluate")
	}
	want := 0.5 * 2 * 9 * 0.25
	if diff := got - want; diff > 1e-10 || diff < -1e-10 {
		t.Errorf("kinetic energy = %v, want %v", got, want)
	}
}

func TestBuildRigidTop(t *testing.T) {
	scene, err := GetPreset("top").Build()
	if err != nil {
		t.Fatal(err)
	}
	rb, ok := scene.Bodies[0].(*mechanics.RigidBody)
	if !ok {
		t.Fatalf("expected rigid body, got %T", scene.Bodies[0])
	}

	ke, err := rb.KineticEnergy(scene.World)
	if err != nil {
		t.Fatal(err)
	}
	want := symbol.MustSympify("Izz*wz^2/2")
	if !ke.Equal(want) {
		t.Errorf("kinetic energy = %s, want %s", ke, want)
	}
}

func TestBuildDefaultsMass(t *testing.T) {
	cfg := &Config{Bodies: []BodyConfig{{Name: "p"}}}
	scene, err := cfg.Build()
	if err != nil {
		t.Fatal(err)
	}
	m, ok := scene.Bodies[0].Mass().(*symbol.Sym)
	if !ok || m.Name() != "p_mass" {
		t.Errorf("default mass = %v, want symbol p_mass", scene.Bodies[0].Mass())
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{"unknown type", &Config{Bodies: []BodyConfig{{Name: "x", Type: "soft"}}}},
		{"bad expression", &Config{Bodies: []BodyConfig{{Name: "x", Mass: "m*"}}}},
		{"empty name", &Config{Bodies: []BodyConfig{{}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.cfg.Build(); err == nil {
				t.Error("expected build error")
			}
		})
	}
}

func TestBuildBadParseError(t *testing.T) {
	cfg := &Config{Bodies: []BodyConfig{{
		Name:     "x",
		Position: Triple{X: "l*("},
	}}}
	_, err := cfg.Build()
	if !errors.Is(err, symbol.ErrParse) {
		t.Errorf("error = %v, want ErrParse", err)
	}
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	orig := GetPreset("two_particles")
	if err := Save(path, orig); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Bodies) != len(orig.Bodies) {
		t.Fatalf("round trip lost bodies: %d vs %d", len(loaded.Bodies), len(orig.Bodies))
	}
	for i := range orig.Bodies {
		if loaded.Bodies[i] != orig.Bodies[i] {
			t.Errorf("body %d changed in round trip: %+v vs %+v", i, loaded.Bodies[i], orig.Bodies[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "none.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want ErrNotExist", err)
	}
}
