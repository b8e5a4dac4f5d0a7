package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"
)

func TestFetchMonth(t *testing.T) {
	fixture, err := os.ReadFile("../../testdata/fixtures/sample_month.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/EQLatest-Monthly/2023/2023_March.html" {
			t.Errorf("request path = %q, want the monthly bulletin path", r.URL.Path)
		}
		if userAgent := r.Header.Get("User-Agent"); !strings.Contains(userAgent, "phivolcs-scraper") {
			t.Errorf("User-Agent = %q, should contain 'phivolcs-scraper'", userAgent)
		}
		w.Write(fixture)
	}))
	defer server.Close()

	s := NewWithOptions(Options{BaseURL: server.URL})

	records, err := s.FetchMonth(context.Background(), 2023, "March")
	if err != nil {
		t.Fatalf("FetchMonth() unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("FetchMonth() returned %d records, want 3", len(records))
	}
}

func TestFetchMonth_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	s := NewWithOptions(Options{BaseURL: server.URL})

	if _, err := s.FetchMonth(context.Background(), 2023, "March"); err == nil {
		t.Error("FetchMonth() expected error for 404, got nil")
	}
}

func TestFetchMonth_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	s := NewWithOptions(Options{BaseURL: server.URL, Timeout: 10 * time.Millisecond})

	if _, err := s.FetchMonth(context.Background(), 2023, "March"); err == nil {
		t.Error("FetchMonth() expected timeout error, got nil")
	}
}

func TestNew(t *testing.T) {
	s := New()

	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.client == nil {
		t.Error("scraper client is nil")
	}
	if s.client.Timeout != Timeout {
		t.Errorf("client timeout = %v, want %v", s.client.Timeout, Timeout)
	}
	if s.baseURL != DefaultBaseURL {
		t.Errorf("scraper baseURL = %q, want %q", s.baseURL, DefaultBaseURL)
	}
}

func TestMonthURL(t *testing.T) {
	s := New()
	got := s.monthURL(2024, "September")
	want := DefaultBaseURL + "/EQLatest-Monthly/2024/2024_September.html"
	if got != want {
		t.Errorf("monthURL() = %q, want %q", got, want)
	}
}
