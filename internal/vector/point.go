package vector

// Point is a named location in affine space. Positions are recorded
// relative to other points and composed over the resulting graph;
// velocities are recorded per observation frame.
type Point struct {
	name string

	posPeers []*Point
	pos      map[*Point]Vector

	vel map[*Frame]Vector
}

// NewPoint returns a point with no position or velocity relations.
func NewPoint(name string) *Point {
	return &Point{
		name: name,
		pos:  map[*Point]Vector{},
		vel:  map[*Frame]Vector{},
	}
}

// Name reports the point's identifier.
func (p *Point) Name() string { return p.name }

func (p *Point) String() string { return p.name }

// SetPos declares the position of this point relative to other. The
// reverse relation is recorded with opposite sign.
func (p *Point) SetPos(other *Point, r Vector) {
	p.recordPos(other, r)
	other.recordPos(p, r.Neg())
}

func (p *Point) recordPos(other *Point, r Vector) {
	if _, seen := p.pos[other]; !seen {
		p.posPeers = append(p.posPeers, other)
	}
	p.pos[other] = r
}

// LocateNew creates a point positioned at r relative to this one.
func (p *Point) LocateNew(name string, r Vector) *Point {
	q := NewPoint(name)
	q.SetPos(p, r)
	return q
}

// PosFrom returns the position of this point relative to other, composing
// relative positions over the point graph.
func (p *Point) PosFrom(other *Point) (Vector, error) {
	if p == other {
		return Vector{}, nil
	}
	type node struct {
		point *Point
		accum Vector
	}
	visited := map[*Point]struct{}{p: {}}
	queue := []node{{point: p}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, peer := range cur.point.posPeers {
			if _, seen := visited[peer]; seen {
				continue
			}
			visited[peer] = struct{}{}
			acc := cur.accum.Add(cur.point.pos[peer])
			if peer == other {
				return acc, nil
			}
			queue = append(queue, node{point: peer, accum: acc})
		}
	}
	return Vector{}, ErrDisconnectedPoints
}

// SetVel declares the velocity of this point as observed in frame f.
func (p *Point) SetVel(f *Frame, v Vector) { p.vel[f] = v }

// Vel returns the velocity of this point in f. The velocity must have been
// declared with SetVel.
func (p *Point) Vel(f *Frame) (Vector, error) {
	v, ok := p.vel[f]
	if !ok {
		return Vector{}, ErrNoVelocity
	}
	return v, nil
}

// HasVel reports whether a velocity is known in f.
func (p *Point) HasVel(f *Frame) bool {
	_, ok := p.vel[f]
	return ok
}
