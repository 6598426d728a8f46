package vector

import (
	"strings"

	"github.com/san-kum/mechsym/internal/symbol"
)

// Vector is a symbolic vector: a sum of component triples, each tagged with
// the frame whose basis the components refer to. The zero Vector is the
// zero vector.
type Vector struct {
	parts []component
}

type component struct {
	frame *Frame
	c     [3]symbol.Expr
}

// InFrame builds a vector from components along the basis of f.
func InFrame(f *Frame, x, y, z symbol.Expr) Vector {
	v := Vector{}
	return v.merge(component{frame: f, c: [3]symbol.Expr{x, y, z}})
}

func (v Vector) merge(p component) Vector {
	if exprIsZero(p.c[0]) && exprIsZero(p.c[1]) && exprIsZero(p.c[2]) {
		return v
	}
	out := Vector{parts: make([]component, len(v.parts))}
	copy(out.parts, v.parts)
	for i, q := range out.parts {
		if q.frame == p.frame {
			merged := component{frame: p.frame}
			for k := 0; k < 3; k++ {
				merged.c[k] = symbol.AddOf(q.c[k], p.c[k])
			}
			if exprIsZero(merged.c[0]) && exprIsZero(merged.c[1]) && exprIsZero(merged.c[2]) {
				out.parts = append(out.parts[:i], out.parts[i+1:]...)
			} else {
				out.parts[i] = merged
			}
			return out
		}
	}
	out.parts = append(out.parts, p)
	return out
}

func exprIsZero(e symbol.Expr) bool {
	n, ok := e.(*symbol.Num)
	return ok && n.IsZero()
}

// IsZero reports whether the vector has no nonzero components.
func (v Vector) IsZero() bool { return len(v.parts) == 0 }

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	out := v
	for _, p := range w.parts {
		out = out.merge(p)
	}
	return out
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector { return v.Add(w.Neg()) }

// Neg returns -v.
func (v Vector) Neg() Vector { return v.Scale(symbol.Int(-1)) }

// Scale returns s*v.
func (v Vector) Scale(s symbol.Expr) Vector {
	out := Vector{}
	for _, p := range v.parts {
		out = out.merge(component{
			frame: p.frame,
			c: [3]symbol.Expr{
				symbol.MulOf(s, p.c[0]),
				symbol.MulOf(s, p.c[1]),
				symbol.MulOf(s, p.c[2]),
			},
		})
	}
	return out
}

// Express rewrites the vector entirely in the basis of f. All component
// frames must be connected to f in the orientation tree.
func (v Vector) Express(f *Frame) (Vector, error) {
	out := Vector{}
	for _, p := range v.parts {
		m, err := f.DCM(p.frame)
		if err != nil {
			return Vector{}, err
		}
		out = out.merge(component{frame: f, c: matVec(m, p.c)})
	}
	return out, nil
}

// Components returns the component triple of the vector along the basis of
// f, re-expressing as needed.
func (v Vector) Components(f *Frame) ([3]symbol.Expr, error) {
	zero := [3]symbol.Expr{symbol.Int(0), symbol.Int(0), symbol.Int(0)}
	e, err := v.Express(f)
	if err != nil {
		return zero, err
	}
	if len(e.parts) == 0 {
		return zero, nil
	}
	return e.parts[0].c, nil
}

// Dot returns the scalar product v . w.
func (v Vector) Dot(w Vector) (symbol.Expr, error) {
	if v.IsZero() || w.IsZero() {
		return symbol.Int(0), nil
	}
	f := v.parts[0].frame
	a, err := v.Components(f)
	if err != nil {
		return nil, err
	}
	b, err := w.Components(f)
	if err != nil {
		return nil, err
	}
	return symbol.AddOf(
		symbol.MulOf(a[0], b[0]),
		symbol.MulOf(a[1], b[1]),
		symbol.MulOf(a[2], b[2]),
	), nil
}

// Cross returns the vector product v x w, expressed in the frame of v's
// first component.
func (v Vector) Cross(w Vector) (Vector, error) {
	if v.IsZero() || w.IsZero() {
		return Vector{}, nil
	}
	f := v.parts[0].frame
	a, err := v.Components(f)
	if err != nil {
		return Vector{}, err
	}
	b, err := w.Components(f)
	if err != nil {
		return Vector{}, err
	}
	return InFrame(f,
		symbol.SubOf(symbol.MulOf(a[1], b[2]), symbol.MulOf(a[2], b[1])),
		symbol.SubOf(symbol.MulOf(a[2], b[0]), symbol.MulOf(a[0], b[2])),
		symbol.SubOf(symbol.MulOf(a[0], b[1]), symbol.MulOf(a[1], b[0])),
	), nil
}

// MagnitudeSquared returns v . v.
func (v Vector) MagnitudeSquared() (symbol.Expr, error) { return v.Dot(v) }

// Magnitude returns |v|.
func (v Vector) Magnitude() (symbol.Expr, error) {
	m2, err := v.Dot(v)
	if err != nil {
		return nil, err
	}
	return symbol.Sqrt(m2), nil
}

// Subst substitutes symbols in every component.
func (v Vector) Subst(env map[string]symbol.Expr) Vector {
	out := Vector{}
	for _, p := range v.parts {
		out = out.merge(component{
			frame: p.frame,
			c: [3]symbol.Expr{
				p.c[0].Subst(env),
				p.c[1].Subst(env),
				p.c[2].Subst(env),
			},
		})
	}
	return out
}

func (v Vector) String() string {
	if v.IsZero() {
		return "0"
	}
	var b strings.Builder
	axes := [3]string{"x", "y", "z"}
	first := true
	for _, p := range v.parts {
		for i := 0; i < 3; i++ {
			if exprIsZero(p.c[i]) {
				continue
			}
			if !first {
				b.WriteString(" + ")
			}
			first = false
			cs := p.c[i].String()
			if strings.ContainsAny(cs, "+- ") {
				cs = "(" + cs + ")"
			}
			b.WriteString(cs)
			b.WriteString("*")
			b.WriteString(p.frame.name)
			b.WriteString(".")
			b.WriteString(axes[i])
		}
	}
	return b.String()
}
