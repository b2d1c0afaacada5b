package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhcnlab/dhcn/cosmology"
	"github.com/dhcnlab/dhcn/experiments"
	"github.com/dhcnlab/dhcn/plotting"
)

var (
	expansionLambda float64
	expansionSteps  int
)

var expansionCmd = &cobra.Command{
	Use:   "expansion",
	Short: "Run the cosmic expansion experiment",
	Long: `expansion evolves the scale of the network under matter drag and a ` +
		`dark-energy term proportional to the current size, and locates the ` +
		`cosmic jerk where the expansion switches from slowing to speeding up.`,
	RunE: runExpansion,
}

func init() {
	expansionCmd.Flags().Float64Var(&expansionLambda, "lambda", 0.008,
		"dark-energy coupling per unit of network size")
	expansionCmd.Flags().IntVar(&expansionSteps, "steps", 150,
		"number of cosmic time steps to evolve")
	rootCmd.AddCommand(expansionCmd)
}

func runExpansion(_ *cobra.Command, _ []string) error {
	params := cosmology.DefaultParams()
	params.Lambda = expansionLambda
	params.Steps = expansionSteps

	rec, dbPath := newRecorder("expansion")
	defer rec.Close()

	fmt.Println("--- DHCN Cosmic Expansion ---")
	fmt.Printf("Dark-energy coupling: %.4f\n", params.Lambda)

	res, err := experiments.RunExpansion(params, rec)
	if err != nil {
		return err
	}

	if res.JerkFound {
		fmt.Printf("Cosmic jerk at step %d: "+
			"expansion switched from deceleration to acceleration\n",
			res.JerkStep)
	} else {
		fmt.Println("No cosmic jerk found: expansion never switched sign")
	}
	fmt.Printf("Final expansion velocity: %.4f\n", res.FinalVelocity)
	fmt.Printf("Final network size:       %.1f\n", res.FinalSize)

	var fig *plotting.Figure
	if flagPlot != "" {
		f, err := lineFigure(dbPath,
			"expansion_history", "Step",
			[]string{"Velocity"},
			"Cosmic Expansion Velocity",
			"Cosmic Time Step", "Expansion Velocity")
		if err != nil {
			return err
		}
		fig = &f
	}

	return finishRun(dbPath, fig)
}
