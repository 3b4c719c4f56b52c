package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AppName != "adpause" {
		t.Fatalf("AppName = %q", cfg.AppName)
	}
	if cfg.DisableSeconds != 30 {
		t.Fatalf("DisableSeconds = %v", cfg.DisableSeconds)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Fatalf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.JournalType != "bbolt" {
		t.Fatalf("JournalType = %q", cfg.JournalType)
	}
	if cfg.ProbeAdminPage {
		t.Fatalf("ProbeAdminPage should default to false")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PIHOLE_URL", "http://pihole.local")
	t.Setenv("PIHOLE_API_KEY", "abc123")
	t.Setenv("DISABLE_SECONDS", "120")
	t.Setenv("JOURNAL_TYPE", "none")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PiholeURL != "http://pihole.local" {
		t.Fatalf("PiholeURL = %q", cfg.PiholeURL)
	}
	if cfg.PiholeAPIKey != "abc123" {
		t.Fatalf("PiholeAPIKey = %q", cfg.PiholeAPIKey)
	}
	if cfg.DisableSeconds != 120 {
		t.Fatalf("DisableSeconds = %v", cfg.DisableSeconds)
	}
	if cfg.JournalType != "none" {
		t.Fatalf("JournalType = %q", cfg.JournalType)
	}
}

func TestLoadRejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero timeout")
	}
}
