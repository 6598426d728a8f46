package vector

import (
	"github.com/san-kum/mechsym/internal/symbol"
)

// Dyadic is a rank-2 symbolic tensor expressed in a single frame, used for
// rotational inertia.
type Dyadic struct {
	frame *Frame
	m     Mat3
}

// NewDyadic builds a dyadic from its component matrix in f.
func NewDyadic(f *Frame, m Mat3) *Dyadic {
	return &Dyadic{frame: f, m: m}
}

// Inertia builds the standard inertia dyadic in f from the independent
// components of the symmetric inertia matrix. Products of inertia may be
// nil for zero.
func Inertia(f *Frame, ixx, iyy, izz, ixy, iyz, izx symbol.Expr) *Dyadic {
	z := symbol.Expr(symbol.Int(0))
	if ixy == nil {
		ixy = z
	}
	if iyz == nil {
		iyz = z
	}
	if izx == nil {
		izx = z
	}
	return &Dyadic{frame: f, m: Mat3{
		{ixx, ixy, izx},
		{ixy, iyy, iyz},
		{izx, iyz, izz},
	}}
}

// Outer returns the outer product a (x) b expressed in f.
func Outer(f *Frame, a, b Vector) (*Dyadic, error) {
	ca, err := a.Components(f)
	if err != nil {
		return nil, err
	}
	cb, err := b.Components(f)
	if err != nil {
		return nil, err
	}
	var m Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = symbol.MulOf(ca[i], cb[j])
		}
	}
	return &Dyadic{frame: f, m: m}, nil
}

// Frame reports the frame the components refer to.
func (d *Dyadic) Frame() *Frame { return d.frame }

// Component returns the (i, j) entry of the component matrix.
func (d *Dyadic) Component(i, j int) symbol.Expr { return d.m[i][j] }

// Express rewrites the dyadic in the basis of f.
func (d *Dyadic) Express(f *Frame) (*Dyadic, error) {
	if f == d.frame {
		return d, nil
	}
	r, err := f.DCM(d.frame)
	if err != nil {
		return nil, err
	}
	return &Dyadic{frame: f, m: matMul(r, matMul(d.m, matTranspose(r)))}, nil
}

// Add returns d + other expressed in d's frame.
func (d *Dyadic) Add(other *Dyadic) (*Dyadic, error) {
	o, err := other.Express(d.frame)
	if err != nil {
		return nil, err
	}
	var m Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = symbol.AddOf(d.m[i][j], o.m[i][j])
		}
	}
	return &Dyadic{frame: d.frame, m: m}, nil
}

// Scale returns s*d.
func (d *Dyadic) Scale(s symbol.Expr) *Dyadic {
	var m Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = symbol.MulOf(s, d.m[i][j])
		}
	}
	return &Dyadic{frame: d.frame, m: m}
}

// DotVec contracts the dyadic with a vector on the right, returning a
// vector in the dyadic's frame.
func (d *Dyadic) DotVec(v Vector) (Vector, error) {
	c, err := v.Components(d.frame)
	if err != nil {
		return Vector{}, err
	}
	out := matVec(d.m, c)
	return InFrame(d.frame, out[0], out[1], out[2]), nil
}

// PointMassInertia returns the inertia dyadic of a point mass offset by r
// from the reference point, expressed in f:
// m*(|r|^2 * identity - r (x) r).
func PointMassInertia(mass symbol.Expr, r Vector, f *Frame) (*Dyadic, error) {
	c, err := r.Components(f)
	if err != nil {
		return nil, err
	}
	r2 := symbol.AddOf(
		symbol.MulOf(c[0], c[0]),
		symbol.MulOf(c[1], c[1]),
		symbol.MulOf(c[2], c[2]),
	)
	var m Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			term := symbol.Neg(symbol.MulOf(c[i], c[j]))
			if i == j {
				term = symbol.AddOf(r2, term)
			}
			m[i][j] = symbol.MulOf(mass, term)
		}
	}
	return &Dyadic{frame: f, m: m}, nil
}
