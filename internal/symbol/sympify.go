package symbol

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sympify coerces an arbitrary value into a symbolic expression. It accepts
// existing expressions (returned unchanged, so the coercion is idempotent),
// Go integer and float values, exact rationals, and strings parsed with
// Parse. Any other value fails with ErrSympify.
func Sympify(v any) (Expr, error) {
	switch x := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil", ErrSympify)
	case Expr:
		return x, nil
	case int:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Int(int64(x)), nil
	case float32:
		return sympifyFloat(float64(x))
	case float64:
		return sympifyFloat(x)
	case *big.Rat:
		return numFromRat(x), nil
	case string:
		e, err := Parse(x)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSympify, err)
		}
		return e, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrSympify, v)
	}
}

func sympifyFloat(f float64) (Expr, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %w (%v)", ErrSympify, ErrNotFinite, f)
	}
	return Float(f), nil
}

// MustSympify is Sympify for values known to be valid; it panics otherwise.
func MustSympify(v any) Expr {
	e, err := Sympify(v)
	if err != nil {
		panic(err)
	}
	return e
}

// Parse reads an expression from its textual form. The grammar covers
// symbols, integer and decimal literals, + - * / ^ (also ** for powers),
// unary minus, parentheses, and sin/cos/sqrt calls. Expressions that reduce
// to a division by an exact zero, such as "1/0" or "x/(2-2)", fail with an
// error wrapping ErrDivisionByZero.
func Parse(s string) (e Expr, err error) {
	// Simplification rejects zero raised to a negative power by panicking
	// with ErrDivisionByZero; at this boundary that becomes a parse error.
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if re, ok := r.(error); ok && errors.Is(re, ErrDivisionByZero) {
			e, err = nil, fmt.Errorf("%w: %w", ErrParse, ErrDivisionByZero)
			return
		}
		panic(r)
	}()
	p := &parser{src: s}
	e, err = p.parseSum()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrParse, p.src[p.pos:], p.pos)
	}
	return e, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		r, w := utf8.DecodeRuneInString(p.src[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += w
	}
}

func (p *parser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) parseSum() (Expr, error) {
	lhs, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			rhs, err := p.parseProduct()
			if err != nil {
				return nil, err
			}
			lhs = AddOf(lhs, rhs)
		case '-':
			p.pos++
			rhs, err := p.parseProduct()
			if err != nil {
				return nil, err
			}
			lhs = SubOf(lhs, rhs)
		default:
			return lhs, nil
		}
	}
}

func (p *parser) parseProduct() (Expr, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek() {
		case '*':
			if p.pos+1 < len(p.src) && p.src[p.pos+1] == '*' {
				return lhs, nil // power, handled by parsePower
			}
			p.pos++
			rhs, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			lhs = MulOf(lhs, rhs)
		case '/':
			p.pos++
			rhs, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			lhs = DivOf(lhs, rhs)
		default:
			return lhs, nil
		}
	}
}

func (p *parser) parseUnary() (Expr, error) {
	if p.peek() == '-' {
		p.pos++
		e, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Neg(e), nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (Expr, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	c := p.peek()
	if c == '^' {
		p.pos++
	} else if c == '*' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '*' {
		p.pos += 2
	} else {
		return base, nil
	}
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return PowOf(base, exp), nil
}

func (p *parser) parseAtom() (Expr, error) {
	c := p.peek()
	switch {
	case c == '(':
		p.pos++
		e, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.peek() != ')' {
			return nil, fmt.Errorf("%w: missing closing parenthesis", ErrParse)
		}
		p.pos++
		return e, nil
	case c >= '0' && c <= '9':
		return p.parseNumber()
	case isIdentStart(rune(c)):
		return p.parseIdent()
	}
	return nil, fmt.Errorf("%w: unexpected character %q", ErrParse, string(c))
}

func (p *parser) parseNumber() (Expr, error) {
	start := p.pos
	seenDot := false
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == '.' {
			if seenDot {
				break
			}
			seenDot = true
			p.pos++
			continue
		}
		if c < '0' || c > '9' {
			break
		}
		p.pos++
	}
	lit := p.src[start:p.pos]
	r, ok := new(big.Rat).SetString(lit)
	if !ok {
		return nil, fmt.Errorf("%w: bad numeric literal %q", ErrParse, lit)
	}
	return numFromRat(r), nil
}

func (p *parser) parseIdent() (Expr, error) {
	start := p.pos
	for p.pos < len(p.src) && isIdentPart(rune(p.src[p.pos])) {
		p.pos++
	}
	name := p.src[start:p.pos]
	if p.peek() != '(' {
		return Symbol(name), nil
	}
	p.pos++
	arg, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if p.peek() != ')' {
		return nil, fmt.Errorf("%w: missing closing parenthesis after %s(", ErrParse, name)
	}
	p.pos++
	switch strings.ToLower(name) {
	case "sin":
		return Sin(arg), nil
	case "cos":
		return Cos(arg), nil
	case "sqrt":
		return Sqrt(arg), nil
	}
	return nil, fmt.Errorf("%w: unknown function %q", ErrParse, name)
}

func isIdentStart(r rune) bool { return r == '_' || unicode.IsLetter(r) }
func isIdentPart(r rune) bool  { return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) }
