package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/mechsym/internal/mechanics"
	"github.com/san-kum/mechsym/internal/symbol"
	"github.com/san-kum/mechsym/internal/vector"
)

// WorldFrame and OriginPoint name the inertial frame and fixed point every
// scene is built around.
const (
	WorldFrame  = "world"
	OriginPoint = "origin"
)

// Config is a YAML scene description: a list of bodies with symbolic
// fields. Every scalar field is a sympifiable expression string.
type Config struct {
	Bodies []BodyConfig `yaml:"bodies"`
}

// BodyConfig describes one body of a scene.
type BodyConfig struct {
	Name string `yaml:"name"`
	// Type is "particle" (default) or "rigid".
	Type string `yaml:"type,omitempty"`
	// Mass is a sympifiable expression; empty means the default symbol
	// "<name>_mass".
	Mass string `yaml:"mass,omitempty"`
	// Position is the mass center offset from the scene origin, in world
	// basis components.
	Position Triple `yaml:"position,omitempty"`
	// Velocity is the mass center velocity in the world frame.
	Velocity Triple `yaml:"velocity,omitempty"`
	// Spin is the body frame's angular velocity in the world frame
	// (rigid bodies only).
	Spin Triple `yaml:"spin,omitempty"`
	// Inertia gives the central inertia components in the body frame
	// (rigid bodies only); empty entries default to the body's symbols.
	Inertia InertiaComponents `yaml:"inertia,omitempty"`
	// Potential is the body's potential energy; empty means 0.
	Potential string `yaml:"potential,omitempty"`
}

// Triple is a vector given componentwise as expression strings; empty
// components are 0.
type Triple struct {
	X string `yaml:"x,omitempty"`
	Y string `yaml:"y,omitempty"`
	Z string `yaml:"z,omitempty"`
}

// InertiaComponents are the independent entries of a symmetric inertia
// matrix as expression strings.
type InertiaComponents struct {
	Ixx string `yaml:"ixx,omitempty"`
	Iyy string `yaml:"iyy,omitempty"`
	Izz string `yaml:"izz,omitempty"`
	Ixy string `yaml:"ixy,omitempty"`
	Iyz string `yaml:"iyz,omitempty"`
	Izx string `yaml:"izx,omitempty"`
}

func (t Triple) isSet() bool { return t.X != "" || t.Y != "" || t.Z != "" }

func (i InertiaComponents) isSet() bool {
	return i.Ixx != "" || i.Iyy != "" || i.Izz != "" || i.Ixy != "" || i.Iyz != "" || i.Izx != ""
}

// Load reads a scene description from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a scene description to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Scene is a materialized configuration: the inertial frame, the fixed
// origin, and the bodies wired into the shared point/frame graph.
type Scene struct {
	World  *vector.Frame
	Origin *vector.Point
	Bodies []mechanics.Body
}

// Build materializes the configuration into a scene. Positions anchor each
// mass center to the origin, velocities and spins are declared in the
// world frame, and every expression string is coerced through the symbol
// kernel.
func (c *Config) Build() (*Scene, error) {
	world := vector.NewFrame(WorldFrame)
	origin := vector.NewPoint(OriginPoint)
	origin.SetVel(world, vector.Vector{})

	scene := &Scene{World: world, Origin: origin}
	for _, bc := range c.Bodies {
		body, err := buildBody(bc, world, origin)
		if err != nil {
			return nil, fmt.Errorf("body %q: %w", bc.Name, err)
		}
		scene.Bodies = append(scene.Bodies, body)
	}
	return scene, nil
}

func buildBody(bc BodyConfig, world *vector.Frame, origin *vector.Point) (mechanics.Body, error) {
	var mass any
	if bc.Mass != "" {
		mass = bc.Mass
	}

	var body mechanics.Body
	switch bc.Type {
	case "", "particle":
		p, err := mechanics.NewParticle(bc.Name, nil, mass)
		if err != nil {
			return nil, err
		}
		body = p
	case "rigid":
		rb, err := mechanics.NewRigidBody(bc.Name, nil, nil, mass, nil)
		if err != nil {
			return nil, err
		}
		// Scene components are given in world basis, so the body frame
		// starts aligned with world.
		if err := rb.Frame().Orient(world, vector.AxisZ, symbol.Int(0)); err != nil {
			return nil, err
		}
		if bc.Inertia.isSet() {
			inertia, err := parseInertia(bc.Inertia, rb.Frame())
			if err != nil {
				return nil, err
			}
			rb.SetCentralInertia(inertia)
		}
		spin := vector.Vector{}
		if bc.Spin.isSet() {
			var err error
			spin, err = parseTriple(bc.Spin, world)
			if err != nil {
				return nil, err
			}
		}
		rb.Frame().SetAngVel(world, spin)
		body = rb
	default:
		return nil, fmt.Errorf("unknown body type: %s", bc.Type)
	}

	pos, err := parseTriple(bc.Position, world)
	if err != nil {
		return nil, err
	}
	body.Masscenter().SetPos(origin, pos)

	vel, err := parseTriple(bc.Velocity, world)
	if err != nil {
		return nil, err
	}
	body.Masscenter().SetVel(world, vel)
	body.RegisterPoint(body.Masscenter())

	if bc.Potential != "" {
		if err := body.SetPotentialEnergy(bc.Potential); err != nil {
			return nil, err
		}
	}
	return body, nil
}

func parseTriple(t Triple, f *vector.Frame) (vector.Vector, error) {
	x, err := parseOrZero(t.X)
	if err != nil {
		return vector.Vector{}, err
	}
	y, err := parseOrZero(t.Y)
	if err != nil {
		return vector.Vector{}, err
	}
	z, err := parseOrZero(t.Z)
	if err != nil {
		return vector.Vector{}, err
	}
	return vector.InFrame(f, x, y, z), nil
}

func parseInertia(ic InertiaComponents, f *vector.Frame) (*vector.Dyadic, error) {
	vals := make([]symbol.Expr, 6)
	for i, s := range []string{ic.Ixx, ic.Iyy, ic.Izz, ic.Ixy, ic.Iyz, ic.Izx} {
		e, err := parseOrZero(s)
		if err != nil {
			return nil, err
		}
		vals[i] = e
	}
	return vector.Inertia(f, vals[0], vals[1], vals[2], vals[3], vals[4], vals[5]), nil
}

func parseOrZero(s string) (symbol.Expr, error) {
	if s == "" {
		return symbol.Int(0), nil
	}
	return symbol.Parse(s)
}
