package mechanics

import (
	"github.com/san-kum/mechsym/internal/symbol"
	"github.com/san-kum/mechsym/internal/vector"
)

// KineticEnergy sums the kinetic energies of the bodies with velocities
// measured in frame.
func KineticEnergy(frame *vector.Frame, bodies ...Body) (symbol.Expr, error) {
	total := symbol.Expr(symbol.Int(0))
	for _, b := range bodies {
		ke, err := b.KineticEnergy(frame)
		if err != nil {
			return nil, err
		}
		total = symbol.AddOf(total, ke)
	}
	return total, nil
}

// PotentialEnergy sums the potential energies of the bodies.
func PotentialEnergy(bodies ...Body) symbol.Expr {
	total := symbol.Expr(symbol.Int(0))
	for _, b := range bodies {
		total = symbol.AddOf(total, b.PotentialEnergy())
	}
	return total
}

// Lagrangian returns T - V for the bodies: total kinetic energy in frame
// minus total potential energy.
func Lagrangian(frame *vector.Frame, bodies ...Body) (symbol.Expr, error) {
	t, err := KineticEnergy(frame, bodies...)
	if err != nil {
		return nil, err
	}
	return symbol.SubOf(t, PotentialEnergy(bodies...)), nil
}

// LinearMomentum sums the linear momenta of the bodies in frame.
func LinearMomentum(frame *vector.Frame, bodies ...Body) (vector.Vector, error) {
	var total vector.Vector
	for _, b := range bodies {
		p, err := b.LinearMomentum(frame)
		if err != nil {
			return vector.Vector{}, err
		}
		total = total.Add(p)
	}
	return total, nil
}

// AngularMomentum sums the angular momenta of the bodies about point,
// measured in frame.
func AngularMomentum(point *vector.Point, frame *vector.Frame, bodies ...Body) (vector.Vector, error) {
	var total vector.Vector
	for _, b := range bodies {
		h, err := b.AngularMomentum(point, frame)
		if err != nil {
			return vector.Vector{}, err
		}
		total = total.Add(h)
	}
	return total, nil
}
