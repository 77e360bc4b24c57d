package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var root = &cobra.Command{
		Use:   "billtracker",
		Short: "Legislative bill dashboard and export pipeline",
	}

	root.AddCommand(serveCMD(), exportCMD())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
