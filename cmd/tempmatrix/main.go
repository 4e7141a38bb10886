package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/salomonkoivisto/CSCE-679/internal/config"
	"github.com/spf13/cobra"
)

func main() {
	if os.Getenv("TEMPMATRIX_DEBUG") != "" {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Config path: %s\n", config.ConfigPath())
		os.Exit(1)
	}

	var (
		csvPath     string
		windowYears int
	)

	root := cobra.Command{
		Use:   "tempmatrix [dataset.csv]",
		Short: "Tempmatrix is a terminal heatmap of daily temperature records, one cell per year and month.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.Dataset.Path = args[0]
			}
			if csvPath != "" {
				cfg.Dataset.Path = csvPath
			}
			if windowYears > 0 {
				cfg.Dataset.WindowYears = windowYears
			}
			return runDashboard(cfg)
		},
	}
	root.Flags().StringVar(&csvPath, "csv", "", "path to the daily records CSV (overrides config)")
	root.Flags().IntVar(&windowYears, "years", 0, "number of most recent years to display (overrides config)")
	root.SilenceUsage = true

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
