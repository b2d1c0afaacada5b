package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhcnlab/dhcn/experiments"
	"github.com/dhcnlab/dhcn/plotting"
)

var dilationSpeed float64

var dilationCmd = &cobra.Command{
	Use:   "dilation",
	Short: "Run the time dilation experiment",
	Long: `dilation compares the proper clock of a static observer with the ` +
		`clock of a traveler moving at a fraction of the maximum signal ` +
		`speed. The bandwidth conservation law slows the traveler clock by ` +
		`the Lorentz factor.`,
	RunE: runDilation,
}

func init() {
	dilationCmd.Flags().Float64Var(&dilationSpeed, "speed", 0.8,
		"traveler speed as a fraction of the maximum signal speed")
	rootCmd.AddCommand(dilationCmd)
}

func runDilation(_ *cobra.Command, _ []string) error {
	params := experiments.DefaultDilationParams()
	params.C = envC()
	params.OmegaMax = envOmegaMax()
	params.Speed = dilationSpeed * params.C

	rec, dbPath := newRecorder("dilation")
	defer rec.Close()

	fmt.Println("--- DHCN Time Dilation ---")
	fmt.Printf("System bandwidth (Omega_max): %.1f Hz\n", params.OmegaMax)
	fmt.Printf("Traveler speed:               %.2fc\n", params.Speed/params.C)

	res, err := experiments.RunDilation(params, rec)
	if err != nil {
		return err
	}

	fmt.Printf("Final internal clock (static):   %.2f ticks\n", res.StaticTicks)
	fmt.Printf("Final internal clock (traveler): %.2f ticks\n", res.TravelerTicks)
	fmt.Printf("Time dilation ratio (traveler/static): %.4f\n", res.Ratio)
	fmt.Printf("Theoretical prediction sqrt(1-v^2/c^2): %.4f\n", res.Predicted)

	var fig *plotting.Figure
	if flagPlot != "" {
		f, err := lineFigure(dbPath,
			"clock_history", "GlobalTime",
			[]string{"StaticTicks", "TravelerTicks"},
			"Bandwidth Conservation: Proper Time",
			"Global Network Time", "Proper Time (Internal Ticks)")
		if err != nil {
			return err
		}
		fig = &f
	}

	return finishRun(dbPath, fig)
}
