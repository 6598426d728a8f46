package mechanics

import (
	"github.com/san-kum/mechsym/internal/symbol"
	"github.com/san-kum/mechsym/internal/vector"
)

// RigidBody is a body with spatial extent: in addition to the translational
// terms it carries a central inertia dyadic and gains rotational energy and
// spin angular momentum from its frame's angular velocity.
type RigidBody struct {
	BodyBase
	frame   *vector.Frame
	inertia *vector.Dyadic
}

var _ Body = (*RigidBody)(nil)

// NewRigidBody constructs a rigid body. Nil arguments take defaults: a
// fresh frame "<name>_frame", a fresh point "<name>_masscenter", a fresh
// mass symbol "<name>_mass", and a symbolic central inertia with entries
// "<name>_ixx" etc. in the body frame.
func NewRigidBody(name string, masscenter *vector.Point, frame *vector.Frame, mass any, inertia *vector.Dyadic) (*RigidBody, error) {
	base, err := newBodyBase(name, masscenter, mass)
	if err != nil {
		return nil, err
	}
	if frame == nil {
		frame = vector.NewFrame(name + "_frame")
	}
	if inertia == nil {
		inertia = vector.Inertia(frame,
			symbol.Symbol(name+"_ixx"),
			symbol.Symbol(name+"_iyy"),
			symbol.Symbol(name+"_izz"),
			symbol.Symbol(name+"_ixy"),
			symbol.Symbol(name+"_iyz"),
			symbol.Symbol(name+"_izx"),
		)
	}
	return &RigidBody{BodyBase: base, frame: frame, inertia: inertia}, nil
}

// Frame returns the reference frame fixed to the body.
func (r *RigidBody) Frame() *vector.Frame { return r.frame }

// SetFrame re-anchors the body to f without touching mass, mass center, or
// central inertia.
func (r *RigidBody) SetFrame(f *vector.Frame) error {
	if f == nil {
		return ErrNoFrame
	}
	r.frame = f
	return nil
}

// CentralInertia returns the inertia dyadic about the mass center.
func (r *RigidBody) CentralInertia() *vector.Dyadic { return r.inertia }

// SetCentralInertia replaces the inertia dyadic about the mass center.
func (r *RigidBody) SetCentralInertia(d *vector.Dyadic) { r.inertia = d }

// X returns the first basis vector of the body's frame.
func (r *RigidBody) X() vector.Vector { return r.frame.X() }

// Y returns the second basis vector of the body's frame.
func (r *RigidBody) Y() vector.Vector { return r.frame.Y() }

// Z returns the third basis vector of the body's frame.
func (r *RigidBody) Z() vector.Vector { return r.frame.Z() }

// KineticEnergy returns the translational term m*(v.v)/2 plus the
// rotational term w.(I.w)/2, with v the mass center's velocity and w the
// body frame's angular velocity, both measured in frame.
func (r *RigidBody) KineticEnergy(frame *vector.Frame) (symbol.Expr, error) {
	v, err := r.Masscenter().Vel(frame)
	if err != nil {
		return nil, err
	}
	v2, err := v.Dot(v)
	if err != nil {
		return nil, err
	}
	translational := symbol.Half(symbol.MulOf(r.Mass(), v2))

	w, err := r.frame.AngVelIn(frame)
	if err != nil {
		return nil, err
	}
	iw, err := r.inertia.DotVec(w)
	if err != nil {
		return nil, err
	}
	wiw, err := w.Dot(iw)
	if err != nil {
		return nil, err
	}
	return symbol.AddOf(translational, symbol.Half(wiw)), nil
}

// LinearMomentum returns m*v with v the mass center's velocity in frame.
func (r *RigidBody) LinearMomentum(frame *vector.Frame) (vector.Vector, error) {
	v, err := r.Masscenter().Vel(frame)
	if err != nil {
		return vector.Vector{}, err
	}
	return v.Scale(r.Mass()), nil
}

// AngularMomentum returns the spin term I.w plus the orbital term
// r x m*v about point, measured in frame.
func (r *RigidBody) AngularMomentum(point *vector.Point, frame *vector.Frame) (vector.Vector, error) {
	w, err := r.frame.AngVelIn(frame)
	if err != nil {
		return vector.Vector{}, err
	}
	spin, err := r.inertia.DotVec(w)
	if err != nil {
		return vector.Vector{}, err
	}
	pos, err := r.Masscenter().PosFrom(point)
	if err != nil {
		return vector.Vector{}, err
	}
	mv, err := r.LinearMomentum(frame)
	if err != nil {
		return vector.Vector{}, err
	}
	orbital, err := pos.Cross(mv)
	if err != nil {
		return vector.Vector{}, err
	}
	return spin.Add(orbital), nil
}

// ParallelAxis returns the central inertia shifted to point, expressed in
// frame: I_central + m*(|d|^2 * identity - d (x) d) with d the offset of
// the mass center from point.
func (r *RigidBody) ParallelAxis(point *vector.Point, frame *vector.Frame) (*vector.Dyadic, error) {
	central, err := r.inertia.Express(frame)
	if err != nil {
		return nil, err
	}
	d, err := r.Masscenter().PosFrom(point)
	if err != nil {
		return nil, err
	}
	shift, err := vector.PointMassInertia(r.Mass(), d, frame)
	if err != nil {
		return nil, err
	}
	return central.Add(shift)
}
