package vector

import (
	"github.com/san-kum/mechsym/internal/symbol"
)

// Axis selects a basis direction for single-axis rotations.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Mat3 is a 3x3 matrix of symbolic entries, used for direction cosine
// matrices and dyadic components.
type Mat3 [3][3]symbol.Expr

func identityMat() Mat3 {
	one, zero := symbol.Int(1), symbol.Int(0)
	return Mat3{
		{one, zero, zero},
		{zero, one, zero},
		{zero, zero, one},
	}
}

func matMul(a, b Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = symbol.AddOf(
				symbol.MulOf(a[i][0], b[0][j]),
				symbol.MulOf(a[i][1], b[1][j]),
				symbol.MulOf(a[i][2], b[2][j]),
			)
		}
	}
	return out
}

func matTranspose(a Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = a[j][i]
		}
	}
	return out
}

func matVec(a Mat3, v [3]symbol.Expr) [3]symbol.Expr {
	var out [3]symbol.Expr
	for i := 0; i < 3; i++ {
		out[i] = symbol.AddOf(
			symbol.MulOf(a[i][0], v[0]),
			symbol.MulOf(a[i][1], v[1]),
			symbol.MulOf(a[i][2], v[2]),
		)
	}
	return out
}

// Frame is a named reference frame with an orthonormal basis. A frame may
// be oriented relative to a parent frame, forming an orientation tree that
// DCM walks to relate any two connected frames.
type Frame struct {
	name      string
	parent    *Frame
	dcmParent Mat3 // components in this frame = dcmParent * components in parent

	angVelPeers []*Frame
	angVel      map[*Frame]Vector
}

// NewFrame returns a free-standing frame with the given name.
func NewFrame(name string) *Frame {
	return &Frame{name: name, angVel: map[*Frame]Vector{}}
}

// Name reports the frame's identifier.
func (f *Frame) Name() string { return f.name }

func (f *Frame) String() string { return f.name }

// X returns the first basis vector of the frame.
func (f *Frame) X() Vector { return f.basis(0) }

// Y returns the second basis vector of the frame.
func (f *Frame) Y() Vector { return f.basis(1) }

// Z returns the third basis vector of the frame.
func (f *Frame) Z() Vector { return f.basis(2) }

func (f *Frame) basis(i int) Vector {
	c := [3]symbol.Expr{symbol.Int(0), symbol.Int(0), symbol.Int(0)}
	c[i] = symbol.Int(1)
	return Vector{parts: []component{{frame: f, c: c}}}
}

// Orient fixes this frame relative to parent by a right-handed rotation of
// angle about the given parent axis. A frame can have one parent; orienting
// again re-parents it. Orienting toward a frame that already descends from
// this one fails with ErrCircularOrientation, so the orientation graph stays
// a forest.
func (f *Frame) Orient(parent *Frame, axis Axis, angle symbol.Expr) error {
	for cur := parent; cur != nil; cur = cur.parent {
		if cur == f {
			return ErrCircularOrientation
		}
	}
	s, c := symbol.Sin(angle), symbol.Cos(angle)
	ns := symbol.Neg(s)
	zero, one := symbol.Expr(symbol.Int(0)), symbol.Expr(symbol.Int(1))
	var dcm Mat3
	switch axis {
	case AxisX:
		dcm = Mat3{
			{one, zero, zero},
			{zero, c, s},
			{zero, ns, c},
		}
	case AxisY:
		dcm = Mat3{
			{c, zero, ns},
			{zero, one, zero},
			{s, zero, c},
		}
	case AxisZ:
		dcm = Mat3{
			{c, s, zero},
			{ns, c, zero},
			{zero, zero, one},
		}
	default:
		return ErrInvalidAxis
	}
	f.parent = parent
	f.dcmParent = dcm
	return nil
}

// DCM returns the direction cosine matrix M such that a vector's components
// in this frame equal M times its components in other. The two frames must
// belong to the same orientation tree.
func (f *Frame) DCM(other *Frame) (Mat3, error) {
	if f == other {
		return identityMat(), nil
	}
	anc, err := commonAncestor(f, other)
	if err != nil {
		return Mat3{}, err
	}
	df := f.dcmToAncestor(anc)
	do := other.dcmToAncestor(anc)
	return matMul(df, matTranspose(do)), nil
}

func (f *Frame) dcmToAncestor(anc *Frame) Mat3 {
	m := identityMat()
	for cur := f; cur != anc; cur = cur.parent {
		m = matMul(m, cur.dcmParent)
	}
	return m
}

func commonAncestor(a, b *Frame) (*Frame, error) {
	seen := map[*Frame]struct{}{}
	for cur := a; cur != nil; cur = cur.parent {
		seen[cur] = struct{}{}
	}
	for cur := b; cur != nil; cur = cur.parent {
		if _, ok := seen[cur]; ok {
			return cur, nil
		}
	}
	return nil, ErrDisconnectedFrames
}

// SetAngVel declares the angular velocity of this frame measured in other.
// The reverse relation is recorded with opposite sign.
func (f *Frame) SetAngVel(other *Frame, w Vector) {
	f.recordAngVel(other, w)
	other.recordAngVel(f, w.Neg())
}

func (f *Frame) recordAngVel(other *Frame, w Vector) {
	if _, seen := f.angVel[other]; !seen {
		f.angVelPeers = append(f.angVelPeers, other)
	}
	f.angVel[other] = w
}

// AngVelIn returns the angular velocity of this frame measured in other,
// composing known relations along the angular-velocity graph
// (w of A in C = w of A in B + w of B in C).
func (f *Frame) AngVelIn(other *Frame) (Vector, error) {
	if f == other {
		return Vector{}, nil
	}
	type node struct {
		frame *Frame
		accum Vector
	}
	visited := map[*Frame]struct{}{f: {}}
	queue := []node{{frame: f}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, peer := range cur.frame.angVelPeers {
			if _, seen := visited[peer]; seen {
				continue
			}
			visited[peer] = struct{}{}
			acc := cur.accum.Add(cur.frame.angVel[peer])
			if peer == other {
				return acc, nil
			}
			queue = append(queue, node{frame: peer, accum: acc})
		}
	}
	return Vector{}, ErrNoAngularVelocity
}
