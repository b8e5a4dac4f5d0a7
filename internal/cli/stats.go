package cli

import (
	"github.com/spf13/cobra"
	"github.com/zekejulia/phivolcs-earthquake-data-scraper/internal/quake"
	"github.com/zekejulia/phivolcs-earthquake-data-scraper/internal/storage"
)

var (
	flagStatsInput  string
	flagStatsTop    int
	flagStatsMinMag float64
)

// newStatsCmd creates the stats subcommand
func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize a previously scraped CSV dataset",
		RunE:  runStats,
	}

	cmd.Flags().StringVar(&flagStatsInput, "input", "", "Path to a dataset CSV file (required)")
	cmd.Flags().IntVar(&flagStatsTop, "top", 10, "Number of strongest earthquakes to list")
	cmd.Flags().Float64Var(&flagStatsMinMag, "min-magnitude", 0, "Only consider records with at least this magnitude")

	cmd.MarkFlagRequired("input")

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	records, err := storage.ReadDataset(flagStatsInput)
	if err != nil {
		return err
	}

	if flagStatsMinMag > 0 {
		records = quake.FilterByMagnitude(records, flagStatsMinMag)
	}

	writeStats(cmd.OutOrStdout(), records, flagStatsTop)
	return nil
}
