package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/holeops/adpause/internal/config"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		PiholeURL:      baseURL,
		PiholeAPIKey:   "secret",
		DisableSeconds: 30,
		RequestTimeout: 2 * time.Second,
		JournalType:    "none",
		JournalTTL:     time.Hour,
		JournalCleanup: time.Hour,
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := testConfig("pihole.local") // no scheme
	if _, err := New(context.Background(), cfg, nil); err == nil {
		t.Fatalf("expected error for schemeless URL")
	}

	cfg = testConfig("http://pihole.local")
	cfg.PiholeAPIKey = ""
	if _, err := New(context.Background(), cfg, nil); err == nil {
		t.Fatalf("expected error for empty key")
	}
}

func TestPauseSuccess(t *testing.T) {
	var gotDisable string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDisable = r.URL.Query().Get("disable")
		w.Write([]byte(`{"status":"disabled"}`))
	}))
	defer srv.Close()

	a, err := New(context.Background(), testConfig(srv.URL), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	if err := a.Pause(context.Background()); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if gotDisable != "30" {
		t.Fatalf("disable param = %q", gotDisable)
	}
}

func TestPauseRefusalMapsToErrRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad auth", http.StatusForbidden)
	}))
	defer srv.Close()

	a, err := New(context.Background(), testConfig(srv.URL), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	err = a.Pause(context.Background())
	if !errors.Is(err, ErrRefused) {
		t.Fatalf("expected ErrRefused, got %v", err)
	}
}

func TestPausePropagatesBrokenExchange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	a, err := New(context.Background(), testConfig(srv.URL), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	err = a.Pause(context.Background())
	if err == nil || errors.Is(err, ErrRefused) {
		t.Fatalf("expected a propagated exchange error, got %v", err)
	}
}

func TestResumeSuccessJournalsOutcome(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, present := r.URL.Query()["enable"]; !present {
			t.Fatalf("enable param missing: %s", r.URL.RawQuery)
		}
		w.Write([]byte(`{"status":"enabled"}`))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.JournalType = "bbolt"
	cfg.JournalPath = t.TempDir() + "/journal.db"

	a, err := New(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	if err := a.Resume(context.Background()); err != nil {
		t.Fatalf("Resume: %v", err)
	}

	entries, err := a.journal.Recent(5)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 1 || entries[0].Action != "resume" || !entries[0].Succeeded {
		t.Fatalf("unexpected journal entries: %#v", entries)
	}
}
