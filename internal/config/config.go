package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the scraper run settings. Precedence is flags (applied by the
// CLI layer) over environment variables over the YAML file over defaults.
type Config struct {
	BaseURL     string        `yaml:"base_url"`
	UserAgent   string        `yaml:"user_agent"`
	Timeout     time.Duration `yaml:"timeout"`      // per-request timeout
	PacingDelay time.Duration `yaml:"pacing_delay"` // courtesy throttle after every fetch
	YearsBack   int           `yaml:"years_back"`   // trailing years to scrape, including the current year
	OutputDir   string        `yaml:"output_dir"`
}

// Default returns the built-in settings: the PHIVOLCS endpoint, a 15s
// request timeout, a 500ms courtesy throttle, and the last 3 years written
// under ./data.
func Default() Config {
	return Config{
		BaseURL:     "https://earthquake.phivolcs.dost.gov.ph",
		Timeout:     15 * time.Second,
		PacingDelay: 500 * time.Millisecond,
		YearsBack:   3,
		OutputDir:   "data",
	}
}

// Load builds a Config from defaults, the YAML file at path (optional, pass
// "" to skip), and environment overrides. A .env file in the working
// directory is loaded first if present.
func Load(path string) (Config, error) {
	// .env is optional; a missing file is not an error
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("PHIVOLCS_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("PHIVOLCS_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("PHIVOLCS_YEARS_BACK"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing PHIVOLCS_YEARS_BACK: %w", err)
		}
		cfg.YearsBack = n
	}
	if v := os.Getenv("PHIVOLCS_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parsing PHIVOLCS_TIMEOUT: %w", err)
		}
		cfg.Timeout = d
	}
	if v := os.Getenv("PHIVOLCS_PACING_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parsing PHIVOLCS_PACING_DELAY: %w", err)
		}
		cfg.PacingDelay = d
	}
	return nil
}

// Validate checks the settings a run depends on.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base_url must not be empty")
	}
	if c.OutputDir == "" {
		return errors.New("output_dir must not be empty")
	}
	if c.YearsBack < 1 {
		return errors.New("years_back must be at least 1")
	}
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	if c.PacingDelay < 0 {
		return errors.New("pacing_delay must not be negative")
	}
	return nil
}
