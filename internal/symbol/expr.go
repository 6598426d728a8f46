package symbol

import (
	"math"
	"math/big"
)

// Expr is an immutable symbolic scalar expression. All implementations in
// this package are produced in simplified, deterministically ordered form,
// so structural equality coincides with algebraic equality for the
// rule set the kernel knows about.
type Expr interface {
	// String renders the expression in canonical form.
	String() string

	// Equal reports whether the other expression is structurally identical.
	Equal(other Expr) bool

	// Subst replaces symbols by expressions and re-simplifies.
	Subst(env map[string]Expr) Expr

	// Eval computes a numeric value given bindings for every free symbol.
	// The second result is false when an unbound symbol remains.
	Eval(env map[string]float64) (float64, bool)

	// FreeSymbols appends the names of unbound symbols to the set.
	FreeSymbols(set map[string]struct{})

	isExpr()
}

// Num is an exact rational constant.
type Num struct{ val *big.Rat }

// Int returns the expression for an integer constant.
func Int(n int64) *Num { return &Num{val: new(big.Rat).SetInt64(n)} }

// Rat returns the expression for the exact fraction p/q.
func Rat(p, q int64) *Num {
	if q == 0 {
		panic(ErrDivisionByZero)
	}
	return &Num{val: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}
}

// Float returns the expression for a finite float, converted exactly. It
// panics with ErrNotFinite on NaN or an infinity; Sympify screens those
// values and returns an error instead.
func Float(f float64) *Num {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		panic(ErrNotFinite)
	}
	return &Num{val: r}
}

var oneRat = new(big.Rat).SetInt64(1)

func (n *Num) isExpr() {}

func (n *Num) String() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	return n.val.RatString()
}

func (n *Num) Equal(other Expr) bool {
	o, ok := other.(*Num)
	return ok && n.val.Cmp(o.val) == 0
}

func (n *Num) Subst(map[string]Expr) Expr { return n }

func (n *Num) Eval(map[string]float64) (float64, bool) {
	f, _ := n.val.Float64()
	return f, true
}

func (n *Num) FreeSymbols(map[string]struct{}) {}

// Rational returns a copy of the underlying exact value.
func (n *Num) Rational() *big.Rat { return new(big.Rat).Set(n.val) }

func (n *Num) IsZero() bool   { return n.val.Sign() == 0 }
func (n *Num) IsOne() bool    { return n.val.Cmp(oneRat) == 0 }
func (n *Num) Sign() int      { return n.val.Sign() }
func (n *Num) IsInteger() bool { return n.val.IsInt() }

func numFromRat(r *big.Rat) *Num { return &Num{val: new(big.Rat).Set(r)} }

func ratPowInt(r *big.Rat, n int64) *big.Rat {
	if n == 0 {
		return new(big.Rat).SetInt64(1)
	}
	neg := n < 0
	if neg {
		n = -n
	}
	out := new(big.Rat).SetInt64(1)
	base := new(big.Rat).Set(r)
	for i := int64(0); i < n; i++ {
		out.Mul(out, base)
	}
	if neg {
		out.Inv(out)
	}
	return out
}

// Sym is a named symbolic variable.
type Sym struct{ name string }

// Symbol returns the expression for a free symbol with the given name.
func Symbol(name string) *Sym { return &Sym{name: name} }

func (s *Sym) isExpr() {}

func (s *Sym) String() string { return s.name }

// Name reports the symbol's identifier.
func (s *Sym) Name() string { return s.name }

func (s *Sym) Equal(other Expr) bool {
	o, ok := other.(*Sym)
	return ok && s.name == o.name
}

func (s *Sym) Subst(env map[string]Expr) Expr {
	if e, ok := env[s.name]; ok {
		return e
	}
	return s
}

func (s *Sym) Eval(env map[string]float64) (float64, bool) {
	v, ok := env[s.name]
	if !ok {
		return math.NaN(), false
	}
	return v, true
}

func (s *Sym) FreeSymbols(set map[string]struct{}) { set[s.name] = struct{}{} }
