// Package render formats scenes and body properties for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/san-kum/mechsym/internal/mechanics"
	"github.com/san-kum/mechsym/internal/vector"
)

func kind(b mechanics.Body) string {
	if _, ok := b.(*mechanics.RigidBody); ok {
		return "rigid"
	}
	return "particle"
}

// BodyTable renders one panel per body with its identity and scalar fields.
func BodyTable(bodies []mechanics.Body) string {
	var out []string
	for _, b := range bodies {
		var sb strings.Builder
		sb.WriteString(Title.Render(b.Name()))
		sb.WriteString(Label.Render("  (" + kind(b) + ")"))
		sb.WriteString("\n")
		row(&sb, "mass", b.Mass().String())
		row(&sb, "masscenter", b.Masscenter().Name())
		row(&sb, "frame", b.Frame().Name())
		row(&sb, "potential", b.PotentialEnergy().String())
		if rb, ok := b.(*mechanics.RigidBody); ok {
			i := rb.CentralInertia()
			row(&sb, "inertia", fmt.Sprintf("[%s, %s, %s]",
				i.Component(0, 0), i.Component(1, 1), i.Component(2, 2)))
		}
		if pts := b.Points(); len(pts) > 0 {
			names := make([]string, len(pts))
			for j, p := range pts {
				names[j] = p.Name()
			}
			row(&sb, "points", strings.Join(names, ", "))
		}
		out = append(out, Panel.Render(sb.String()))
	}
	return strings.Join(out, "\n")
}

func row(sb *strings.Builder, label, value string) {
	fmt.Fprintf(sb, "%s %s\n", Label.Render(fmt.Sprintf("%-11s", label)), Value.Render(value))
}

// EnergyReport renders per-body kinetic and potential energies measured in
// frame, with totals and the Lagrangian.
func EnergyReport(frame *vector.Frame, bodies []mechanics.Body) (string, error) {
	var sb strings.Builder
	sb.WriteString(Header.Render(fmt.Sprintf("energies in frame %s", frame.Name())))
	sb.WriteString("\n")
	for _, b := range bodies {
		ke, err := b.KineticEnergy(frame)
		if err != nil {
			return "", fmt.Errorf("body %q: %w", b.Name(), err)
		}
		sb.WriteString(Title.Render(b.Name()))
		sb.WriteString("\n")
		row(&sb, "kinetic", ke.String())
		row(&sb, "potential", b.PotentialEnergy().String())
	}
	total, err := mechanics.KineticEnergy(frame, bodies...)
	if err != nil {
		return "", err
	}
	lag, err := mechanics.Lagrangian(frame, bodies...)
	if err != nil {
		return "", err
	}
	sb.WriteString(Accent.Render("total"))
	sb.WriteString("\n")
	row(&sb, "T", total.String())
	row(&sb, "V", mechanics.PotentialEnergy(bodies...).String())
	row(&sb, "L = T - V", lag.String())
	return sb.String(), nil
}

// MomentumReport renders per-body linear momentum in frame and angular
// momentum about the given point.
func MomentumReport(about *vector.Point, frame *vector.Frame, bodies []mechanics.Body) (string, error) {
	var sb strings.Builder
	sb.WriteString(Header.Render(fmt.Sprintf("momenta in frame %s about %s", frame.Name(), about.Name())))
	sb.WriteString("\n")
	for _, b := range bodies {
		lm, err := b.LinearMomentum(frame)
		if err != nil {
			return "", fmt.Errorf("body %q: %w", b.Name(), err)
		}
		am, err := b.AngularMomentum(about, frame)
		if err != nil {
			return "", fmt.Errorf("body %q: %w", b.Name(), err)
		}
		sb.WriteString(Title.Render(b.Name()))
		sb.WriteString("\n")
		row(&sb, "linear", lm.String())
		row(&sb, "angular", am.String())
	}
	return sb.String(), nil
}
