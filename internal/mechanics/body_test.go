package mechanics

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/mechsym/internal/symbol"
	"github.com/san-kum/mechsym/internal/vector"
)

func TestParticleDefaults(t *testing.T) {
	p, err := NewParticle("B", nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	if p.Name() != "B" {
		t.Errorf("Name = %q, want %q", p.Name(), "B")
	}
	mass, ok := p.Mass().(*symbol.Sym)
	if !ok || mass.Name() != "B_mass" {
		t.Errorf("default mass = %v, want symbol B_mass", p.Mass())
	}
	if p.Masscenter().Name() != "B_masscenter" {
		t.Errorf("default masscenter = %q, want B_masscenter", p.Masscenter().Name())
	}
	if p.PotentialEnergy().String() != "0" {
		t.Errorf("default potential energy = %s, want 0", p.PotentialEnergy())
	}
	if len(p.Points()) != 0 {
		t.Errorf("points should start empty, got %d", len(p.Points()))
	}
	if p.Frame().Name() != "B_frame" {
		t.Errorf("default frame = %q, want B_frame", p.Frame().Name())
	}
}

func TestEmptyNameRejected(t *testing.T) {
	if _, err := NewParticle("", nil, nil); !errors.Is(err, ErrInvalidName) {
		t.Errorf("particle error = %v, want ErrInvalidName", err)
	}
	if _, err := NewRigidBody("", nil, nil, nil, nil); !errors.Is(err, ErrInvalidName) {
		t.Errorf("rigid body error = %v, want ErrInvalidName", err)
	}
}

func TestMassCoercion(t *testing.T) {
	p, err := NewParticle("B", nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"int", 2, "2"},
		{"float", 1.5, "3/2"},
		{"string", "m1 + m2", "m1 + m2"},
		{"expr", symbol.Symbol("m"), "m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := p.SetMass(tt.value); err != nil {
				t.Fatalf("SetMass(%v) error: %v", tt.value, err)
			}
			if got := p.Mass().String(); got != tt.want {
				t.Errorf("Mass = %q, want %q", got, tt.want)
			}
		})
	}

	if err := p.SetMass(struct{}{}); !errors.Is(err, symbol.ErrSympify) {
		t.Errorf("SetMass(struct) error = %v, want ErrSympify", err)
	}
}

func TestSetMassRejectsInvalid(t *testing.T) {
	p, _ := NewParticle("B", nil, nil)
	if err := p.SetMass("3"); err != nil {
		t.Fatal(err)
	}

	for _, bad := range []any{math.NaN(), math.Inf(1), "1/0"} {
		if err := p.SetMass(bad); !errors.Is(err, symbol.ErrSympify) {
			t.Errorf("SetMass(%v) error = %v, want ErrSympify", bad, err)
		}
	}

	// Failed assignments leave the previous mass in place and usable.
	if got := p.Mass().String(); got != "3" {
		t.Errorf("mass after rejected assignments = %q, want %q", got, "3")
	}
}

func TestMassCoercionIdempotent(t *testing.T) {
	p, _ := NewParticle("B", nil, nil)
	if err := p.SetMass("m*2"); err != nil {
		t.Fatal(err)
	}
	first := p.Mass()
	if err := p.SetMass(first); err != nil {
		t.Fatal(err)
	}
	if p.Mass() != first {
		t.Error("re-assigning an already coerced mass should keep the same expression")
	}
}

func TestPotentialEnergyNormalization(t *testing.T) {
	p, _ := NewParticle("P", nil, nil)
	if err := p.SetPotentialEnergy("m*g*h"); err != nil {
		t.Fatal(err)
	}
	if got := p.PotentialEnergy().String(); got != "g*h*m" {
		t.Errorf("potential energy = %q, want order-normalized %q", got, "g*h*m")
	}

	want := symbol.MulOf(symbol.Symbol("h"), symbol.Symbol("g"), symbol.Symbol("m"))
	if !p.PotentialEnergy().Equal(want) {
		t.Error("potential energy should be value-equal regardless of input token order")
	}
}

func TestMasscenterAssignment(t *testing.T) {
	p, _ := NewParticle("B", nil, nil)

	if err := p.SetMasscenter(nil); !errors.Is(err, ErrNotAPoint) {
		t.Errorf("SetMasscenter(nil) error = %v, want ErrNotAPoint", err)
	}

	o := vector.NewPoint("O")
	if err := p.SetMasscenter(o); err != nil {
		t.Fatalf("SetMasscenter error: %v", err)
	}
	if p.Masscenter() != o {
		t.Error("masscenter should be stored by reference, unchanged")
	}
}

func TestPointsRegistryGrows(t *testing.T) {
	p, _ := NewParticle("B", nil, nil)
	a := vector.NewPoint("a")
	b := vector.NewPoint("b")
	p.RegisterPoint(a)
	p.RegisterPoint(b)
	pts := p.Points()
	if len(pts) != 2 || pts[0] != a || pts[1] != b {
		t.Errorf("points registry = %v, want [a b] in insertion order", pts)
	}
}

func TestBasisTracksFrame(t *testing.T) {
	p, _ := NewParticle("B", nil, nil)
	orig := p.Frame()
	x, err := p.X().Dot(orig.X())
	if err != nil {
		t.Fatal(err)
	}
	if x.String() != "1" {
		t.Errorf("X should be the frame's first basis vector, dot = %s", x)
	}

	n := vector.NewFrame("N")
	if err := p.SetFrame(n); err != nil {
		t.Fatal(err)
	}
	d, err := p.Z().Dot(n.Z())
	if err != nil {
		t.Fatal(err)
	}
	if d.String() != "1" {
		t.Errorf("after SetFrame, Z should track the new frame, dot = %s", d)
	}
	if err := p.SetFrame(nil); !errors.Is(err, ErrNoFrame) {
		t.Errorf("SetFrame(nil) error = %v, want ErrNoFrame", err)
	}
}

func TestParticleKineticEnergy(t *testing.T) {
	n := vector.NewFrame("N")
	o := vector.NewPoint("O")
	p, _ := NewParticle("P", o, "m")
	v := n.X().Scale(symbol.Symbol("v"))
	o.SetVel(n, v)

	ke, err := p.KineticEnergy(n)
	if err != nil {
		t.Fatal(err)
	}
	want := symbol.MustSympify("m*v^2/2")
	if !ke.Equal(want) {
		t.Errorf("kinetic energy = %s, want %s", ke, want)
	}
}

func TestParticleKineticEnergyNoVelocity(t *testing.T) {
	n := vector.NewFrame("N")
	p, _ := NewParticle("P", nil, nil)
	if _, err := p.KineticEnergy(n); !errors.Is(err, vector.ErrNoVelocity) {
		t.Errorf("error = %v, want ErrNoVelocity", err)
	}
}

func TestParticleMomenta(t *testing.T) {
	n := vector.NewFrame("N")
	o := vector.NewPoint("O")
	l, u, m := symbol.Symbol("l"), symbol.Symbol("u"), symbol.Symbol("m")

	// Mass at l along x, moving with speed l*u along y.
	mc := o.LocateNew("P_masscenter", n.X().Scale(l))
	mc.SetVel(n, n.Y().Scale(symbol.MulOf(l, u)))
	p, _ := NewParticle("P", mc, m)

	lm, err := p.LinearMomentum(n)
	if err != nil {
		t.Fatal(err)
	}
	c, err := lm.Components(n)
	if err != nil {
		t.Fatal(err)
	}
	wantY := symbol.MulOf(l, m, u)
	if !c[1].Equal(wantY) {
		t.Errorf("linear momentum y = %s, want %s", c[1], wantY)
	}

	am, err := p.AngularMomentum(o, n)
	if err != nil {
		t.Fatal(err)
	}
	ac, err := am.Components(n)
	if err != nil {
		t.Fatal(err)
	}
	wantZ := symbol.MustSympify("m*l^2*u")
	if !ac[2].Equal(wantZ) {
		t.Errorf("angular momentum z = %s, want %s", ac[2], wantZ)
	}
	if ac[0].String() != "0" || ac[1].String() != "0" {
		t.Errorf("angular momentum should be along z, got (%s, %s, %s)", ac[0], ac[1], ac[2])
	}
}

func TestParticleParallelAxis(t *testing.T) {
	n := vector.NewFrame("N")
	o := vector.NewPoint("O")
	m, d := symbol.Symbol("m"), symbol.Symbol("d")
	mc := o.LocateNew("P_masscenter", n.X().Scale(d))
	p, _ := NewParticle("P", mc, m)

	inertia, err := p.ParallelAxis(o, n)
	if err != nil {
		t.Fatal(err)
	}
	md2 := symbol.MulOf(m, symbol.PowOf(d, symbol.Int(2)))
	if inertia.Component(0, 0).String() != "0" {
		t.Errorf("Ixx = %s, want 0", inertia.Component(0, 0))
	}
	if !inertia.Component(1, 1).Equal(md2) {
		t.Errorf("Iyy = %s, want %s", inertia.Component(1, 1), md2)
	}
	if !inertia.Component(2, 2).Equal(md2) {
		t.Errorf("Izz = %s, want %s", inertia.Component(2, 2), md2)
	}
}

func TestSystemEnergies(t *testing.T) {
	n := vector.NewFrame("N")
	o := vector.NewPoint("O")

	a, _ := NewParticle("a", nil, "ma")
	a.Masscenter().SetPos(o, n.X().Scale(symbol.Symbol("xa")))
	a.Masscenter().SetVel(n, n.X().Scale(symbol.Symbol("va")))
	if err := a.SetPotentialEnergy("ma*g*ya"); err != nil {
		t.Fatal(err)
	}

	b, _ := NewParticle("b", nil, "mb")
	b.Masscenter().SetVel(n, n.X().Scale(symbol.Symbol("vb")))

	total, err := KineticEnergy(n, a, b)
	if err != nil {
		t.Fatal(err)
	}
	want := symbol.MustSympify("ma*va^2/2 + mb*vb^2/2")
	if !total.Equal(want) {
		t.Errorf("system kinetic energy = %s, want %s", total, want)
	}

	v := PotentialEnergy(a, b)
	if !v.Equal(symbol.MustSympify("ma*g*ya")) {
		t.Errorf("system potential energy = %s", v)
	}

	lag, err := Lagrangian(n, a, b)
	if err != nil {
		t.Fatal(err)
	}
	wantLag := symbol.SubOf(want, v)
	if !lag.Equal(wantLag) {
		t.Errorf("Lagrangian = %s, want %s", lag, wantLag)
	}
}
