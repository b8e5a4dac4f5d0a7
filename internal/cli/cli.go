package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/zekejulia/phivolcs-earthquake-data-scraper/internal/config"
	"github.com/zekejulia/phivolcs-earthquake-data-scraper/internal/scraper"
	"github.com/zekejulia/phivolcs-earthquake-data-scraper/internal/storage"
)

var (
	flagConfig    string
	flagYearsBack int
	flagOutputDir string
	flagVerbose   bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phivolcs-scraper",
		Short: "Scrape PHIVOLCS monthly earthquake bulletins into CSV datasets",
		Long: `Fetches the monthly earthquake bulletin pages published by PHIVOLCS,
extracts the event tables, and writes one CSV dataset per scraped year plus
a combined dataset across all years.`,
		RunE:         runScrape,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	cmd.Flags().IntVar(&flagYearsBack, "years-back", 0, "Trailing years to scrape, including the current year (overrides config)")
	cmd.Flags().StringVar(&flagOutputDir, "output-dir", "", "Directory for CSV datasets (overrides config)")

	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if flagVerbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level})))
	}

	cmd.AddCommand(newStatsCmd())

	return cmd
}

// runScrape is the main command logic
func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagYearsBack > 0 {
		cfg.YearsBack = flagYearsBack
	}
	if flagOutputDir != "" {
		cfg.OutputDir = flagOutputDir
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Initialize storage
	store, err := storage.New(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	clock := clockwork.NewRealClock()
	runner := &Runner{
		Fetcher: scraper.NewWithOptions(scraper.Options{
			BaseURL:   cfg.BaseURL,
			UserAgent: cfg.UserAgent,
			Timeout:   cfg.Timeout,
		}),
		Store: store,
		Clock: clock,
		Delay: cfg.PacingDelay,
		Out:   cmd.OutOrStdout(),
	}

	// The trailing window is anchored here, at the command layer; the runner
	// and the extraction core never read the calendar themselves.
	currentYear := clock.Now().Year()

	_, err = runner.Run(cmd.Context(), currentYear, cfg.YearsBack)
	return err
}
