package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/zekejulia/phivolcs-earthquake-data-scraper/internal/quake"
)

// utf8BOM makes spreadsheet tools detect the encoding of the dataset files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Storage handles persistence of earthquake datasets
type Storage struct {
	outputDir string
}

// New creates a new Storage instance
func New(outputDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(outputDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		outputDir = filepath.Join(home, outputDir[2:])
	}

	// Create output directory if it doesn't exist
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Storage{
		outputDir: outputDir,
	}, nil
}

// yearPath returns the path of the per-year dataset file
func (s *Storage) yearPath(year int) string {
	return filepath.Join(s.outputDir, fmt.Sprintf("phivolcs_earthquake_%d.csv", year))
}

// combinedPath returns the path of the all-years dataset file
func (s *Storage) combinedPath() string {
	return filepath.Join(s.outputDir, "phivolcs_earthquake_all_years.csv")
}

// WriteYear writes one year's records to its dataset file and returns the
// written path.
func (s *Storage) WriteYear(year int, records []quake.Record) (string, error) {
	path := s.yearPath(year)
	if err := s.writeCSV(path, records); err != nil {
		return "", err
	}
	return path, nil
}

// WriteCombined writes the all-years dataset file and returns the written
// path.
func (s *Storage) WriteCombined(records []quake.Record) (string, error) {
	path := s.combinedPath()
	if err := s.writeCSV(path, records); err != nil {
		return "", err
	}
	return path, nil
}

func (s *Storage) writeCSV(path string, records []quake.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating dataset file: %w", err)
	}

	if _, err := f.Write(utf8BOM); err != nil {
		f.Close()
		return fmt.Errorf("writing BOM: %w", err)
	}
	if err := gocsv.Marshal(&records, f); err != nil {
		f.Close()
		return fmt.Errorf("encoding dataset: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing dataset file: %w", err)
	}
	return nil
}

// ReadDataset loads a previously written dataset file. A leading byte-order
// mark is tolerated.
func ReadDataset(path string) ([]quake.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	var records []quake.Record
	if err := gocsv.UnmarshalBytes(data, &records); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}
	return records, nil
}
