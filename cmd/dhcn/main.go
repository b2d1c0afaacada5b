// Command dhcn runs the Discrete Holographic Causal Network experiments.
// Each subcommand reproduces one numerical study, prints its headline
// figures, records the full curves to a SQLite results file, and can
// render the figures to PNG or serve them over HTTP.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dhcn",
	Short: "dhcn runs the Discrete Holographic Causal Network experiments.",
	Long: `dhcn runs the numerical experiments of the Discrete Holographic ` +
		`Causal Network model: time dilation, the inertia limit, galaxy ` +
		`rotation curves, the double slit, cosmic expansion, and spacetime ` +
		`crystallization. Results are recorded to SQLite and can be rendered ` +
		`to PNG or inspected in the browser.`,
	SilenceUsage: true,
}

var (
	flagDB    string
	flagPlot  string
	flagServe bool
	flagPort  int
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "",
		"results database path (default: per-run file name)")
	rootCmd.PersistentFlags().StringVar(&flagPlot, "plot", "",
		"render the experiment figure to this PNG file")
	rootCmd.PersistentFlags().BoolVar(&flagServe, "serve", false,
		"serve the recorded results over HTTP after the run")
	rootCmd.PersistentFlags().IntVar(&flagPort, "port", 0,
		"port of the results server (default: random)")
}

func main() {
	// Shared physical constants can be overridden from a .env file.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
