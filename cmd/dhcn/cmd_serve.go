package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhcnlab/dhcn/recording"
	"github.com/dhcnlab/dhcn/viewer"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a recorded results database in the web viewer",
	Long: `serve opens an existing results database and starts the web ` +
		`viewer on it, without running any experiment.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	if flagDB == "" {
		return fmt.Errorf("serve requires --db pointing at a results database")
	}

	reader, err := recording.OpenReader(flagDB)
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
