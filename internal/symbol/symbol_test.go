package symbol

import (
	"errors"
	"math"
	"testing"
)

func TestSympify(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"int", 3, "3"},
		{"int64", int64(-7), "-7"},
		{"float", 0.5, "1/2"},
		{"string symbol", "m", "m"},
		{"string product", "m*g*h", "g*h*m"},
		{"string quotient", "m*v^2/2", "1/2*m*v^2"},
		{"string power", "x**2", "x^2"},
		{"string sum", "a + b - a", "b"},
		{"parenthesized", "(a + b)*c", "(a + b)*c"},
		{"unary minus", "-x", "-x"},
		{"sin of zero", "sin(0)", "0"},
		{"tab and newline spacing", "m *\tg +\nh", "g*m + h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Sympify(tt.input)
			if err != nil {
				t.Fatalf("Sympify(%v) error: %v", tt.input, err)
			}
			if got := e.String(); got != tt.want {
				t.Errorf("Sympify(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSympifyIdempotent(t *testing.T) {
	e := MustSympify("m*g*h")
	again, err := Sympify(e)
	if err != nil {
		t.Fatalf("re-sympify error: %v", err)
	}
	if again != e {
		t.Error("Sympify of an Expr should return the same expression")
	}
}

func TestSympifyRejects(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"nil", nil},
		{"struct", struct{}{}},
		{"slice", []int{1}},
		{"bad string", "m*"},
		{"unknown function", "tanh(x)"},
		{"division by zero", "1/0"},
		{"division by vanishing sum", "x/(2-2)"},
		{"negative power of zero", "0^-1"},
		{"nan", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", float32(math.Inf(-1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Sympify(tt.input); !errors.Is(err, ErrSympify) {
				t.Errorf("Sympify(%v) error = %v, want ErrSympify", tt.input, err)
			}
		})
	}
}

func TestParseDivisionByZero(t *testing.T) {
	for _, src := range []string{"1/0", "x/(2-2)", "0**-2", "(1-1)^-1"} {
		if _, err := Parse(src); !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("Parse(%q) error = %v, want ErrDivisionByZero", src, err)
		}
	}
}

func TestOrderNormalization(t *testing.T) {
	a := MulOf(Symbol("m"), Symbol("g"), Symbol("h"))
	b := MulOf(Symbol("h"), Symbol("g"), Symbol("m"))
	if !a.Equal(b) {
		t.Errorf("m*g*h and h*g*m should normalize identically: %q vs %q", a, b)
	}
	if a.String() != "g*h*m" {
		t.Errorf("canonical form = %q, want %q", a, "g*h*m")
	}
}

func TestArithmeticIdentities(t *testing.T) {
	x := Symbol("x")
	tests := []struct {
		name string
		got  Expr
		want string
	}{
		{"add zero", AddOf(x, Int(0)), "x"},
		{"mul one", MulOf(x, Int(1)), "x"},
		{"mul zero", MulOf(x, Int(0)), "0"},
		{"cancel", AddOf(x, Neg(x)), "0"},
		{"collect", AddOf(x, x, x), "3*x"},
		{"power collapse", MulOf(x, x), "x^2"},
		{"pow of pow", PowOf(PowOf(x, Int(2)), Int(3)), "x^6"},
		{"pow zero", PowOf(x, Int(0)), "1"},
		{"num pow", PowOf(Int(2), Int(10)), "1024"},
		{"rational div", DivOf(Int(3), Int(4)), "3/4"},
		{"half", Half(MulOf(Symbol("m"), PowOf(Symbol("v"), Int(2)))), "1/2*m*v^2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSubst(t *testing.T) {
	e := MustSympify("m*g*h")
	got := e.Subst(map[string]Expr{"g": Rat(981, 100)})
	if got.String() != "981/100*h*m" {
		t.Errorf("Subst = %q, want %q", got, "981/100*h*m")
	}

	cancelled := MustSympify("x^2 - y").Subst(map[string]Expr{"y": MustSympify("x^2")})
	if got := cancelled.String(); got != "0" {
		t.Errorf("substitution should re-simplify, got %q", got)
	}
}

func TestEval(t *testing.T) {
	e := MustSympify("m*v^2/2 + m*g*h")
	env := map[string]float64{"m": 2, "v": 3, "g": 9.81, "h": 10}
	v, ok := e.Eval(env)
	if !ok {
		t.Fatal("Eval failed with full bindings")
	}
	want := 0.5*2*9 + 2*9.81*10
	if math.Abs(v-want) > 1e-10 {
		t.Errorf("Eval = %v, want %v", v, want)
	}

	if _, ok := e.Eval(map[string]float64{"m": 1}); ok {
		t.Error("Eval should fail with unbound symbols")
	}
}

func TestTrigEval(t *testing.T) {
	e := AddOf(
		PowOf(Sin(Symbol("q")), Int(2)),
		PowOf(Cos(Symbol("q")), Int(2)),
	)
	v, ok := e.Eval(map[string]float64{"q": 0.7})
	if !ok {
		t.Fatal("Eval failed")
	}
	if math.Abs(v-1.0) > 1e-12 {
		t.Errorf("sin^2 + cos^2 = %v, want 1", v)
	}
}

func TestFreeSymbols(t *testing.T) {
	e := MustSympify("m*g*h + sin(q)")
	set := map[string]struct{}{}
	e.FreeSymbols(set)
	for _, name := range []string{"m", "g", "h", "q"} {
		if _, ok := set[name]; !ok {
			t.Errorf("missing free symbol %q", name)
		}
	}
	if len(set) != 4 {
		t.Errorf("free symbols = %v, want 4 entries", set)
	}
}
