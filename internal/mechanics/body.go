package mechanics

import (
	"github.com/san-kum/mechsym/internal/symbol"
	"github.com/san-kum/mechsym/internal/vector"
)

// Body is the contract every body variant satisfies. Generic mechanics
// code (energy methods, momentum balances, equation-of-motion assembly)
// operates on this interface and never on the concrete types.
//
// Interface satisfaction is checked at compile time, so a variant that
// omits any operation cannot be used as a Body at all.
type Body interface {
	// Name returns the immutable identifier the body was constructed with.
	Name() string

	// Mass returns the body's mass as a symbolic scalar.
	Mass() symbol.Expr
	// SetMass coerces v through symbol.Sympify and stores it.
	SetMass(v any) error

	// Masscenter returns the body's center of mass.
	Masscenter() *vector.Point
	// SetMasscenter replaces the center of mass; nil is rejected.
	SetMasscenter(p *vector.Point) error

	// PotentialEnergy returns the body's potential energy, 0 by default.
	PotentialEnergy() symbol.Expr
	// SetPotentialEnergy coerces v through symbol.Sympify and stores it.
	SetPotentialEnergy(v any) error

	// Points returns the registry of points associated with the body.
	Points() []*vector.Point
	// RegisterPoint appends a point to the registry.
	RegisterPoint(p *vector.Point)

	// Frame returns the reference frame fixed to the body.
	Frame() *vector.Frame
	// SetFrame re-anchors the body to a new frame, leaving mass and
	// mass center untouched.
	SetFrame(f *vector.Frame) error

	// X, Y, Z return the basis vectors of the body's frame.
	X() vector.Vector
	Y() vector.Vector
	Z() vector.Vector

	// KineticEnergy returns the kinetic energy of the body with
	// velocities measured in frame.
	KineticEnergy(frame *vector.Frame) (symbol.Expr, error)

	// LinearMomentum returns mass times the mass center's velocity in
	// frame.
	LinearMomentum(frame *vector.Frame) (vector.Vector, error)

	// AngularMomentum returns the angular momentum about point, measured
	// in frame.
	AngularMomentum(point *vector.Point, frame *vector.Frame) (vector.Vector, error)

	// ParallelAxis returns the body's inertia dyadic shifted to point via
	// the parallel-axis theorem, expressed in frame.
	ParallelAxis(point *vector.Point, frame *vector.Frame) (*vector.Dyadic, error)
}

// BodyBase holds the identity and scalar state shared by every body
// variant. It deliberately does not store a frame; each variant supplies
// its own.
type BodyBase struct {
	name       string
	mass       symbol.Expr
	masscenter *vector.Point
	potential  symbol.Expr
	points     []*vector.Point
}

// newBodyBase validates the name and fills in the defaults: a fresh point
// "<name>_masscenter" when none is given and a fresh symbol "<name>_mass"
// when no mass is given. Potential energy starts at 0 and the point
// registry starts empty.
func newBodyBase(name string, masscenter *vector.Point, mass any) (BodyBase, error) {
	if name == "" {
		return BodyBase{}, ErrInvalidName
	}
	if masscenter == nil {
		masscenter = vector.NewPoint(name + "_masscenter")
	}
	if mass == nil {
		mass = symbol.Symbol(name + "_mass")
	}
	m, err := symbol.Sympify(mass)
	if err != nil {
		return BodyBase{}, err
	}
	return BodyBase{
		name:       name,
		mass:       m,
		masscenter: masscenter,
		potential:  symbol.Int(0),
	}, nil
}

// Name returns the identifier the body was constructed with.
func (b *BodyBase) Name() string { return b.name }

func (b *BodyBase) String() string { return b.name }

// Mass returns the body's mass.
func (b *BodyBase) Mass() symbol.Expr { return b.mass }

// SetMass coerces v into a symbolic expression and stores it.
func (b *BodyBase) SetMass(v any) error {
	m, err := symbol.Sympify(v)
	if err != nil {
		return err
	}
	b.mass = m
	return nil
}

// Masscenter returns the body's center of mass.
func (b *BodyBase) Masscenter() *vector.Point { return b.masscenter }

// SetMasscenter replaces the center of mass. A nil point is rejected with
// ErrNotAPoint.
func (b *BodyBase) SetMasscenter(p *vector.Point) error {
	if p == nil {
		return ErrNotAPoint
	}
	b.masscenter = p
	return nil
}

// PotentialEnergy returns the body's potential energy.
func (b *BodyBase) PotentialEnergy() symbol.Expr { return b.potential }

// SetPotentialEnergy coerces v into a symbolic expression and stores it.
// Reassignment has no side effects beyond the stored value.
func (b *BodyBase) SetPotentialEnergy(v any) error {
	e, err := symbol.Sympify(v)
	if err != nil {
		return err
	}
	b.potential = e
	return nil
}

// Points returns the registry of points associated with the body. The
// registry is append-only; nothing in this package removes entries.
func (b *BodyBase) Points() []*vector.Point { return b.points }

// RegisterPoint appends p to the body's point registry.
func (b *BodyBase) RegisterPoint(p *vector.Point) {
	b.points = append(b.points, p)
}
