package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhcnlab/dhcn/experiments"
	"github.com/dhcnlab/dhcn/plotting"
)

var (
	inertiaForce float64
	inertiaMass  float64
	inertiaTime  float64
)

var inertiaCmd = &cobra.Command{
	Use:   "inertia",
	Short: "Run the inertia limit experiment",
	Long: `inertia pushes a body with a constant thrust. Momentum grows ` +
		`linearly, but the bandwidth limit makes the marginal cost of speed ` +
		`diverge, so the body approaches the maximum signal speed without ` +
		`ever reaching it.`,
	RunE: runInertia,
}

func init() {
	inertiaCmd.Flags().Float64Var(&inertiaForce, "force", 0.5,
		"constant thrust applied to the body")
	inertiaCmd.Flags().Float64Var(&inertiaMass, "mass", 1.0,
		"rest mass of the body")
	inertiaCmd.Flags().Float64Var(&inertiaTime, "time", 20.0,
		"simulated time span")
	rootCmd.AddCommand(inertiaCmd)
}

func runInertia(_ *cobra.Command, _ []string) error {
	params := experiments.DefaultInertiaParams()
	params.C = envC()
	params.OmegaMax = envOmegaMax()
	params.Force = inertiaForce
	params.RestMass = inertiaMass
	params.TotalTime = inertiaTime

	rec, dbPath := newRecorder("inertia")
	defer rec.Close()

	fmt.Println("--- DHCN Inertia Limit ---")
	fmt.Printf("Applied constant thrust: %.2f\n", params.Force)
	fmt.Printf("Rest mass:               %.2f\n", params.RestMass)

	res, err := experiments.RunInertia(params, rec)
	if err != nil {
		return err
	}

	fmt.Printf("Final speed:             %.4f c\n", res.FinalSpeed/params.C)
	fmt.Printf("Final acceleration:      %.6f\n", res.FinalAcceleration)
	fmt.Printf("Final effective inertia: %.4f\n", res.FinalInertia)

	var fig *plotting.Figure
	if flagPlot != "" {
		f, err := lineFigure(dbPath,
			"thrust_history", "GlobalTime",
			[]string{"Speed"},
			"Velocity under Constant Thrust",
			"Global Network Time", "Speed (c)")
		if err != nil {
			return err
		}
		fig = &f
	}

	return finishRun(dbPath, fig)
}
