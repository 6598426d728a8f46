package mechanics

import (
	"github.com/san-kum/mechsym/internal/symbol"
	"github.com/san-kum/mechsym/internal/vector"
)

// Particle is a body with mass but no spatial extent: all of its inertia
// comes from the motion of its mass center.
type Particle struct {
	BodyBase
	frame *vector.Frame
}

var _ Body = (*Particle)(nil)

// NewParticle constructs a particle. A nil masscenter yields a fresh
// point "<name>_masscenter"; a nil mass yields a fresh symbol
// "<name>_mass"; any other mass value is coerced with symbol.Sympify.
func NewParticle(name string, masscenter *vector.Point, mass any) (*Particle, error) {
	base, err := newBodyBase(name, masscenter, mass)
	if err != nil {
		return nil, err
	}
	return &Particle{
		BodyBase: base,
		frame:    vector.NewFrame(name + "_frame"),
	}, nil
}

// Frame returns the reference frame fixed to the particle.
func (p *Particle) Frame() *vector.Frame { return p.frame }

// SetFrame re-anchors the particle to f without touching mass or
// mass center.
func (p *Particle) SetFrame(f *vector.Frame) error {
	if f == nil {
		return ErrNoFrame
	}
	p.frame = f
	return nil
}

// X returns the first basis vector of the particle's frame.
func (p *Particle) X() vector.Vector { return p.frame.X() }

// Y returns the second basis vector of the particle's frame.
func (p *Particle) Y() vector.Vector { return p.frame.Y() }

// Z returns the third basis vector of the particle's frame.
func (p *Particle) Z() vector.Vector { return p.frame.Z() }

// KineticEnergy returns m*(v.v)/2 with v the mass center's velocity in
// frame.
func (p *Particle) KineticEnergy(frame *vector.Frame) (symbol.Expr, error) {
	v, err := p.Masscenter().Vel(frame)
	if err != nil {
		return nil, err
	}
	v2, err := v.Dot(v)
	if err != nil {
		return nil, err
	}
	return symbol.Half(symbol.MulOf(p.Mass(), v2)), nil
}

// LinearMomentum returns m*v with v the mass center's velocity in frame.
func (p *Particle) LinearMomentum(frame *vector.Frame) (vector.Vector, error) {
	v, err := p.Masscenter().Vel(frame)
	if err != nil {
		return vector.Vector{}, err
	}
	return v.Scale(p.Mass()), nil
}

// AngularMomentum returns r x m*v about point, with r the position of the
// mass center from point and v its velocity in frame.
func (p *Particle) AngularMomentum(point *vector.Point, frame *vector.Frame) (vector.Vector, error) {
	r, err := p.Masscenter().PosFrom(point)
	if err != nil {
		return vector.Vector{}, err
	}
	mv, err := p.LinearMomentum(frame)
	if err != nil {
		return vector.Vector{}, err
	}
	return r.Cross(mv)
}

// ParallelAxis returns the point-mass inertia contribution of the particle
// about point, expressed in frame.
func (p *Particle) ParallelAxis(point *vector.Point, frame *vector.Frame) (*vector.Dyadic, error) {
	r, err := p.Masscenter().PosFrom(point)
	if err != nil {
		return nil, err
	}
	return vector.PointMassInertia(p.Mass(), r, frame)
}
