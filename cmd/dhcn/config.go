package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/xid"

	"github.com/dhcnlab/dhcn/plotting"
	"github.com/dhcnlab/dhcn/recording"
	"github.com/dhcnlab/dhcn/viewer"
)

// envFloat reads a float from the environment, falling back to the given
// default when the variable is absent or malformed.
func envFloat(key string, fallback float64) float64 {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ignoring %s=%q: %s\n", key, raw, err)
		return fallback
	}

	return value
}

// Shared DHCN constants, overridable from the environment.
func envC() float64 {
	return envFloat("DHCN_C", 1.0)
}

func envOmegaMax() float64 {
	return envFloat("DHCN_OMEGA_MAX", 100.0)
}

func envAlpha() float64 {
	return envFloat("DHCN_ALPHA", 2.0)
}

// newRecorder opens the results database for one experiment run.
func newRecorder(experiment string) (recording.Recorder, string) {
	path := flagDB
	if path == "" {
		path = fmt.Sprintf("dhcn_%s_%s", experiment, xid.New().String())
	}

	return recording.NewRecorder(path), path
}

// lineFigure reads curves back from the results database and assembles a
// line figure from one table.
func lineFigure(
	dbPath, table, xCol string,
	yCols []string,
	title, xLabel, yLabel string,
) (plotting.Figure, error) {
	reader, err := recording.OpenReader(dbPath)
	if err != nil {
		return plotting.Figure{}, err
	}
	defer reader.Close()

	fig := plotting.Figure{Title: title, XLabel: xLabel, YLabel: yLabel}
	for _, yCol := range yCols {
		points, err := reader.ReadXY(table, xCol, yCol)
		if err != nil {
			return plotting.Figure{}, err
		}

		fig.Lines = append(fig.Lines, plotting.Series{
			Name:   yCol,
			Points: points,
		})
	}

	return fig, nil
}

// finishRun renders and/or serves the recorded results according to the
// global flags. It blocks when serving.
func finishRun(dbPath string, fig *plotting.Figure) error {
	if flagPlot != "" && fig != nil {
		if err := fig.Save(flagPlot); err != nil {
			return err
		}
		fmt.Printf("Figure written to %s\n", flagPlot)
	}

	if !flagServe {
		return nil
	}

	reader, err := recording.OpenReader(dbPath)
	if err != nil {
		return err
	}

	v := viewer.New(reader).WithBrowser()
	if flagPort != 0 {
		v = v.WithPortNumber(flagPort)
	}

	if err := v.StartServer(); err != nil {
		return err
	}

	select {} // serve until interrupted
}
