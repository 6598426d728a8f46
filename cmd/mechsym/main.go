package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/mechsym/internal/config"
	"github.com/san-kum/mechsym/internal/mechanics"
	"github.com/san-kum/mechsym/internal/render"
	"github.com/san-kum/mechsym/internal/symbol"
	"github.com/san-kum/mechsym/internal/tui"
)

var (
	preset string
	// sweep parameters
	sweepParam string
	sweepFrom  float64
	sweepTo    float64
	sweepSteps int
	bindings   []string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mechsym",
		Short: "symbolic multibody mechanics workbench",
	}
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use a built-in scene preset")

	describeCmd := &cobra.Command{
		Use:   "describe [scene.yaml]",
		Short: "show the bodies of a scene",
		Args:  cobra.MaximumNArgs(1),
		RunE:  describeScene,
	}

	energyCmd := &cobra.Command{
		Use:   "energy [scene.yaml]",
		Short: "symbolic kinetic and potential energies",
		Args:  cobra.MaximumNArgs(1),
		RunE:  energyReport,
	}

	momentumCmd := &cobra.Command{
		Use:   "momentum [scene.yaml]",
		Short: "symbolic linear and angular momenta",
		Args:  cobra.MaximumNArgs(1),
		RunE:  momentumReport,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [scene.yaml]",
		Short: "plot total mechanical energy over a parameter sweep",
		Args:  cobra.MaximumNArgs(1),
		RunE:  sweepEnergy,
	}
	sweepCmd.Flags().StringVar(&sweepParam, "param", "", "symbol to sweep (required)")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0.0, "sweep start")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 1.0, "sweep end")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 60, "number of samples")
	sweepCmd.Flags().StringArrayVar(&bindings, "set", nil, "bind a symbol, e.g. --set g=9.81")
	_ = sweepCmd.MarkFlagRequired("param")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect [scene.yaml]",
		Short: "interactive scene inspector",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := loadScene(args)
			if err != nil {
				return err
			}
			return tui.Run(scene)
		},
	}

	rootCmd.AddCommand(describeCmd, energyCmd, momentumCmd, sweepCmd, presetsCmd, inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadScene(args []string) (*config.Scene, error) {
	var cfg *config.Config
	switch {
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	case len(args) == 1:
		var err error
		cfg, err = config.Load(args[0])
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("a scene file or --preset is required")
	}
	return cfg.Build()
}

func describeScene(cmd *cobra.Command, args []string) error {
	scene, err := loadScene(args)
	if err != nil {
		return err
	}
	fmt.Println(render.BodyTable(scene.Bodies))
	return nil
}

func energyReport(cmd *cobra.Command, args []string) error {
	scene, err := loadScene(args)
	if err != nil {
		return err
	}
	report, err := render.EnergyReport(scene.World, scene.Bodies)
	if err != nil {
		return err
	}
	fmt.Println(report)
	return nil
}

func momentumReport(cmd *cobra.Command, args []string) error {
	scene, err := loadScene(args)
	if err != nil {
		return err
	}
	report, err := render.MomentumReport(scene.Origin, scene.World, scene.Bodies)
	if err != nil {
		return err
	}
	fmt.Println(report)
	return nil
}

func sweepEnergy(cmd *cobra.Command, args []string) error {
	scene, err := loadScene(args)
	if err != nil {
		return err
	}
	if sweepSteps < 2 {
		return fmt.Errorf("steps must be at least 2")
	}

	t, err := mechanics.KineticEnergy(scene.World, scene.Bodies...)
	if err != nil {
		return err
	}
	total := symbol.AddOf(t, mechanics.PotentialEnergy(scene.Bodies...))

	env := map[string]float64{}
	for _, b := range bindings {
		name, val, ok := strings.Cut(b, "=")
		if !ok {
			return fmt.Errorf("bad binding %q, want name=value", b)
		}
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("bad binding %q: %w", b, err)
		}
		env[name] = f
	}

	free := map[string]struct{}{}
	total.FreeSymbols(free)
	for name := range free {
		if name == sweepParam {
			continue
		}
		if _, bound := env[name]; !bound {
			return fmt.Errorf("symbol %q is unbound; add --set %s=<value>", name, name)
		}
	}

	data := make([]float64, sweepSteps)
	step := (sweepTo - sweepFrom) / float64(sweepSteps-1)
	for i := range data {
		env[sweepParam] = sweepFrom + float64(i)*step
		v, ok := total.Eval(env)
		if !ok {
			return fmt.Errorf("evaluation failed at %s=%g", sweepParam, env[sweepParam])
		}
		data[i] = v
	}

	caption := fmt.Sprintf("total energy vs %s in [%g, %g]", sweepParam, sweepFrom, sweepTo)
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(16),
		asciigraph.Width(72),
		asciigraph.Caption(caption),
	))
	return nil
}
