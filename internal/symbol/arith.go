package symbol

import (
	"math"
	"math/big"
	"sort"
	"strings"
)

var negOneRat = new(big.Rat).SetInt64(-1)

// Add is a sum of canonically ordered terms.
type Add struct{ terms []Expr }

// Mul is a product with an optional leading numeric coefficient followed by
// canonically ordered factors.
type Mul struct{ factors []Expr }

// Pow is base raised to an exponent.
type Pow struct{ base, exp Expr }

// Fn is an elementary function application.
type Fn struct {
	name string
	arg  Expr
}

// AddOf returns the simplified sum of the given terms. Like terms are
// collected with exact rational coefficients and the result is ordered
// deterministically.
func AddOf(terms ...Expr) Expr {
	var flat []Expr
	for _, t := range terms {
		if a, ok := t.(*Add); ok {
			flat = append(flat, a.terms...)
		} else {
			flat = append(flat, t)
		}
	}

	num := new(big.Rat)
	coeffs := map[string]*big.Rat{}
	bases := map[string][]Expr{}
	var order []string
	for _, t := range flat {
		c, fs := splitCoeff(t)
		if len(fs) == 0 {
			num.Add(num, c)
			continue
		}
		key := mulKey(fs)
		if _, seen := coeffs[key]; !seen {
			coeffs[key] = new(big.Rat)
			bases[key] = fs
			order = append(order, key)
		}
		coeffs[key].Add(coeffs[key], c)
	}

	sort.Strings(order)
	var out []Expr
	for _, k := range order {
		c := coeffs[k]
		if c.Sign() == 0 {
			continue
		}
		out = append(out, rebuildMul(c, bases[k]))
	}
	if num.Sign() != 0 {
		out = append(out, numFromRat(num))
	}

	switch len(out) {
	case 0:
		return Int(0)
	case 1:
		return out[0]
	}
	return &Add{terms: out}
}

// MulOf returns the simplified product of the given factors. Repeated bases
// collapse into powers, numeric factors fold into a single leading
// coefficient, and factors are ordered deterministically.
func MulOf(factors ...Expr) Expr {
	var flat []Expr
	for _, f := range factors {
		if m, ok := f.(*Mul); ok {
			flat = append(flat, m.factors...)
		} else {
			flat = append(flat, f)
		}
	}

	coeff := new(big.Rat).SetInt64(1)
	exps := map[string]Expr{}
	baseByKey := map[string]Expr{}
	var order []string
	for _, f := range flat {
		if n, ok := f.(*Num); ok {
			if n.IsZero() {
				return Int(0)
			}
			coeff.Mul(coeff, n.val)
			continue
		}
		base, exp := f, Expr(Int(1))
		if p, ok := f.(*Pow); ok {
			base, exp = p.base, p.exp
		}
		k := base.String()
		if _, seen := exps[k]; !seen {
			baseByKey[k] = base
			exps[k] = exp
			order = append(order, k)
		} else {
			exps[k] = AddOf(exps[k], exp)
		}
	}

	sort.Strings(order)
	var out []Expr
	for _, k := range order {
		e := PowOf(baseByKey[k], exps[k])
		if n, ok := e.(*Num); ok {
			if n.IsZero() {
				return Int(0)
			}
			coeff.Mul(coeff, n.val)
			continue
		}
		out = append(out, e)
	}

	switch {
	case len(out) == 0:
		return numFromRat(coeff)
	case coeff.Cmp(oneRat) == 0 && len(out) == 1:
		return out[0]
	case coeff.Cmp(oneRat) == 0:
		return &Mul{factors: out}
	}
	return &Mul{factors: append([]Expr{numFromRat(coeff)}, out...)}
}

// PowOf returns the simplified power base^exp. An exact zero base with a
// negative numeric exponent panics with ErrDivisionByZero; Parse and Sympify
// surface that case as an error instead.
func PowOf(base, exp Expr) Expr {
	if en, ok := exp.(*Num); ok {
		if en.IsZero() {
			return Int(1)
		}
		if en.IsOne() {
			return base
		}
		if bn, ok := base.(*Num); ok {
			if bn.IsZero() {
				if en.Sign() > 0 {
					return Int(0)
				}
				panic(ErrDivisionByZero)
			}
			if bn.IsOne() {
				return Int(1)
			}
			if en.IsInteger() && en.val.Num().IsInt64() {
				return numFromRat(ratPowInt(bn.val, en.val.Num().Int64()))
			}
		}
		if p, ok := base.(*Pow); ok {
			if pe, ok := p.exp.(*Num); ok {
				return PowOf(p.base, numFromRat(new(big.Rat).Mul(pe.val, en.val)))
			}
		}
	}
	if bn, ok := base.(*Num); ok && bn.IsOne() {
		return Int(1)
	}
	return &Pow{base: base, exp: exp}
}

// SubOf returns a - b.
func SubOf(a, b Expr) Expr { return AddOf(a, Neg(b)) }

// Neg returns -e.
func Neg(e Expr) Expr { return MulOf(Int(-1), e) }

// DivOf returns a / b as a * b^-1.
func DivOf(a, b Expr) Expr { return MulOf(a, PowOf(b, Int(-1))) }

// Half returns e / 2, the recurring factor in energy expressions.
func Half(e Expr) Expr { return MulOf(Rat(1, 2), e) }

// Sin returns the simplified sine of arg.
func Sin(arg Expr) Expr {
	if n, ok := arg.(*Num); ok && n.IsZero() {
		return Int(0)
	}
	return &Fn{name: "sin", arg: arg}
}

// Cos returns the simplified cosine of arg.
func Cos(arg Expr) Expr {
	if n, ok := arg.(*Num); ok && n.IsZero() {
		return Int(1)
	}
	return &Fn{name: "cos", arg: arg}
}

// Sqrt returns arg^(1/2).
func Sqrt(arg Expr) Expr { return PowOf(arg, Rat(1, 2)) }

// splitCoeff separates a term into its rational coefficient and the
// remaining factor list. A bare Num has an empty factor list.
func splitCoeff(t Expr) (*big.Rat, []Expr) {
	switch v := t.(type) {
	case *Num:
		return new(big.Rat).Set(v.val), nil
	case *Mul:
		if n, ok := v.factors[0].(*Num); ok {
			return new(big.Rat).Set(n.val), v.factors[1:]
		}
		return new(big.Rat).SetInt64(1), v.factors
	default:
		return new(big.Rat).SetInt64(1), []Expr{t}
	}
}

func mulKey(fs []Expr) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = f.String()
	}
	return strings.Join(parts, "*")
}

func rebuildMul(c *big.Rat, fs []Expr) Expr {
	if c.Cmp(oneRat) == 0 {
		if len(fs) == 1 {
			return fs[0]
		}
		return &Mul{factors: fs}
	}
	return &Mul{factors: append([]Expr{numFromRat(c)}, fs...)}
}

func (a *Add) isExpr() {}
func (m *Mul) isExpr() {}
func (p *Pow) isExpr() {}
func (f *Fn) isExpr()  {}

// Terms returns the ordered terms of the sum.
func (a *Add) Terms() []Expr { return a.terms }

// Factors returns the ordered factors of the product.
func (m *Mul) Factors() []Expr { return m.factors }

func (a *Add) String() string {
	var b strings.Builder
	for i, t := range a.terms {
		neg, mag := negSplit(t)
		switch {
		case i == 0 && neg:
			b.WriteString("-")
		case i > 0 && neg:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		b.WriteString(mag)
	}
	return b.String()
}

// negSplit renders a term as a sign and its magnitude string so sums print
// with infix minus signs.
func negSplit(t Expr) (bool, string) {
	switch v := t.(type) {
	case *Num:
		if v.val.Sign() < 0 {
			return true, numFromRat(new(big.Rat).Neg(v.val)).String()
		}
	case *Mul:
		if n, ok := v.factors[0].(*Num); ok && n.val.Sign() < 0 {
			return true, rebuildMul(new(big.Rat).Neg(n.val), v.factors[1:]).String()
		}
	}
	return false, t.String()
}

func (m *Mul) String() string {
	var b strings.Builder
	factors := m.factors
	if n, ok := factors[0].(*Num); ok {
		if n.val.Cmp(negOneRat) == 0 {
			b.WriteString("-")
		} else {
			b.WriteString(n.String())
			b.WriteString("*")
		}
		factors = factors[1:]
	}
	for i, f := range factors {
		if i > 0 {
			b.WriteString("*")
		}
		if _, ok := f.(*Add); ok {
			b.WriteString("(")
			b.WriteString(f.String())
			b.WriteString(")")
		} else {
			b.WriteString(f.String())
		}
	}
	return b.String()
}

func (p *Pow) String() string {
	base := p.base.String()
	switch b := p.base.(type) {
	case *Add, *Mul, *Pow:
		base = "(" + base + ")"
	case *Num:
		if b.val.Sign() < 0 || !b.val.IsInt() {
			base = "(" + base + ")"
		}
	}
	exp := p.exp.String()
	switch e := p.exp.(type) {
	case *Add, *Mul, *Pow:
		exp = "(" + exp + ")"
	case *Num:
		if e.val.Sign() < 0 || !e.val.IsInt() {
			exp = "(" + exp + ")"
		}
	}
	return base + "^" + exp
}

func (f *Fn) String() string { return f.name + "(" + f.arg.String() + ")" }

func (a *Add) Equal(other Expr) bool {
	o, ok := other.(*Add)
	if !ok || len(a.terms) != len(o.terms) {
		return false
	}
	for i := range a.terms {
		if !a.terms[i].Equal(o.terms[i]) {
			return false
		}
	}
	return true
}

func (m *Mul) Equal(other Expr) bool {
	o, ok := other.(*Mul)
	if !ok || len(m.factors) != len(o.factors) {
		return false
	}
	for i := range m.factors {
		if !m.factors[i].Equal(o.factors[i]) {
			return false
		}
	}
	return true
}

func (p *Pow) Equal(other Expr) bool {
	o, ok := other.(*Pow)
	return ok && p.base.Equal(o.base) && p.exp.Equal(o.exp)
}

func (f *Fn) Equal(other Expr) bool {
	o, ok := other.(*Fn)
	return ok && f.name == o.name && f.arg.Equal(o.arg)
}

func (a *Add) Subst(env map[string]Expr) Expr {
	out := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		out[i] = t.Subst(env)
	}
	return AddOf(out...)
}

func (m *Mul) Subst(env map[string]Expr) Expr {
	out := make([]Expr, len(m.factors))
	for i, f := range m.factors {
		out[i] = f.Subst(env)
	}
	return MulOf(out...)
}

func (p *Pow) Subst(env map[string]Expr) Expr {
	return PowOf(p.base.Subst(env), p.exp.Subst(env))
}

func (f *Fn) Subst(env map[string]Expr) Expr {
	arg := f.arg.Subst(env)
	switch f.name {
	case "sin":
		return Sin(arg)
	case "cos":
		return Cos(arg)
	}
	return &Fn{name: f.name, arg: arg}
}

func (a *Add) Eval(env map[string]float64) (float64, bool) {
	sum := 0.0
	for _, t := range a.terms {
		v, ok := t.Eval(env)
		if !ok {
			return math.NaN(), false
		}
		sum += v
	}
	return sum, true
}

func (m *Mul) Eval(env map[string]float64) (float64, bool) {
	prod := 1.0
	for _, f := range m.factors {
		v, ok := f.Eval(env)
		if !ok {
			return math.NaN(), false
		}
		prod *= v
	}
	return prod, true
}

func (p *Pow) Eval(env map[string]float64) (float64, bool) {
	b, ok := p.base.Eval(env)
	if !ok {
		return math.NaN(), false
	}
	e, ok := p.exp.Eval(env)
	if !ok {
		return math.NaN(), false
	}
	return math.Pow(b, e), true
}

func (f *Fn) Eval(env map[string]float64) (float64, bool) {
	v, ok := f.arg.Eval(env)
	if !ok {
		return math.NaN(), false
	}
	switch f.name {
	case "sin":
		return math.Sin(v), true
	case "cos":
		return math.Cos(v), true
	}
	return math.NaN(), false
}

func (a *Add) FreeSymbols(set map[string]struct{}) {
	for _, t := range a.terms {
		t.FreeSymbols(set)
	}
}

func (m *Mul) FreeSymbols(set map[string]struct{}) {
	for _, f := range m.factors {
		f.FreeSymbols(set)
	}
}

func (p *Pow) FreeSymbols(set map[string]struct{}) {
	p.base.FreeSymbols(set)
	p.exp.FreeSymbols(set)
}

func (f *Fn) FreeSymbols(set map[string]struct{}) { f.arg.FreeSymbols(set) }
