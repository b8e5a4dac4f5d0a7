package scraper

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"github.com/zekejulia/phivolcs-earthquake-data-scraper/internal/quake"
)

const (
	// DefaultBaseURL is the PHIVOLCS site hosting the monthly bulletins.
	DefaultBaseURL = "https://earthquake.phivolcs.dost.gov.ph"
	UserAgent      = "phivolcs-scraper/1.0 (github.com/zekejulia/phivolcs-earthquake-data-scraper)"
	Timeout        = 15 * time.Second
)

// Scraper handles fetching and parsing PHIVOLCS monthly bulletin pages
type Scraper struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// Options configures a Scraper. Zero fields fall back to package defaults.
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// New creates a new Scraper instance with default options
func New() *Scraper {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a Scraper with explicit base URL, user agent and
// timeout, filling defaults for zero fields.
func NewWithOptions(opts Options) *Scraper {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = UserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = Timeout
	}

	return &Scraper{
		client: &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				// The PHIVOLCS endpoint serves an incomplete certificate
				// chain, so verification has to be skipped for this host.
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
		baseURL:   opts.BaseURL,
		userAgent: opts.UserAgent,
	}
}

// monthURL builds the bulletin URL for a (year, month) pair, e.g.
// {base}/EQLatest-Monthly/2023/2023_March.html
func (s *Scraper) monthURL(year int, month string) string {
	return fmt.Sprintf("%s/EQLatest-Monthly/%d/%d_%s.html", s.baseURL, year, year, month)
}

// FetchMonth fetches one monthly bulletin page and extracts its earthquake
// records. month must be a full English month name with initial capital.
func (s *Scraper) FetchMonth(ctx context.Context, year int, month string) ([]quake.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.monthURL(year, month), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return ExtractRecords(resp.Body, year, month)
}
