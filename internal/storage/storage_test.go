package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/zekejulia/phivolcs-earthquake-data-scraper/internal/quake"
)

func testRecords() []quake.Record {
	return []quake.Record{
		{
			DateTime:  "01 March 2023 - 04:12 AM",
			Latitude:  "05.71",
			Longitude: "126.09",
			Depth:     "010",
			Magnitude: "4.8",
			Location:  "023 km S 44° E of Governor Generoso (Davao Oriental)",
			Month:     "March",
			Year:      2023,
		},
		{
			DateTime:  "03 March 2023 - 11:37 PM",
			Latitude:  "13.95",
			Longitude: "120.51",
			Depth:     "102",
			Magnitude: "2.3",
			Location:  "008 km N 62° W of Calatagan (Batangas)",
			Month:     "March",
			Year:      2023,
		},
	}
}

func TestNew_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	if _, err := New(dir); err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("output directory was not created: %v", err)
	}
}

func TestWriteYear(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	path, err := store.WriteYear(2023, testRecords())
	if err != nil {
		t.Fatalf("WriteYear() error: %v", err)
	}
	if filepath.Base(path) != "phivolcs_earthquake_2023.csv" {
		t.Errorf("WriteYear() path = %q, want phivolcs_earthquake_2023.csv", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}

	if !bytes.HasPrefix(data, utf8BOM) {
		t.Error("dataset file missing UTF-8 BOM")
	}

	content := string(bytes.TrimPrefix(data, utf8BOM))
	lines := strings.Split(strings.TrimSpace(content), "\n")
	if len(lines) != 3 {
		t.Fatalf("dataset has %d lines, want header + 2 records", len(lines))
	}
	if strings.TrimSpace(lines[0]) != "Date-Time,Latitude,Longitude,Depth,Magnitude,Location,Month,Year" {
		t.Errorf("header = %q, want the 8-field schema header", lines[0])
	}
	if !strings.Contains(lines[1], "4.8") || !strings.Contains(lines[1], "March") {
		t.Errorf("first record line = %q, missing expected fields", lines[1])
	}
}

func TestWriteCombined(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	path, err := store.WriteCombined(testRecords())
	if err != nil {
		t.Fatalf("WriteCombined() error: %v", err)
	}
	if filepath.Base(path) != "phivolcs_earthquake_all_years.csv" {
		t.Errorf("WriteCombined() path = %q, want phivolcs_earthquake_all_years.csv", path)
	}
}

func TestReadDataset_RoundTrip(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	want := testRecords()
	path, err := store.WriteYear(2023, want)
	if err != nil {
		t.Fatalf("WriteYear() error: %v", err)
	}

	got, err := ReadDataset(path)
	if err != nil {
		t.Fatalf("ReadDataset() error: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadDataset() = %+v, want %+v", got, want)
	}
}

func TestReadDataset_MissingFile(t *testing.T) {
	if _, err := ReadDataset(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("ReadDataset() expected error for missing file, got nil")
	}
}

func TestWriteYear_Overwrites(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if _, err := store.WriteYear(2023, testRecords()); err != nil {
		t.Fatalf("first WriteYear() error: %v", err)
	}
	path, err := store.WriteYear(2023, testRecords()[:1])
	if err != nil {
		t.Fatalf("second WriteYear() error: %v", err)
	}

	got, err := ReadDataset(path)
	if err != nil {
		t.Fatalf("ReadDataset() error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("rewritten dataset has %d records, want 1", len(got))
	}
}
