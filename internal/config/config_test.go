package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ANALYZER_BASE_URL", "ANALYZER_TIMEOUT", "GEMINI_MODEL",
		"GEMINI_TEMPERATURE", "MAX_FILE_SIZE", "HISTORY_ENABLED", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Server.Port != "8000" {
		t.Errorf("Server.Port = %q, want 8000", cfg.Server.Port)
	}
	if cfg.Client.BaseURL != "http://localhost:8000" {
		t.Errorf("Client.BaseURL = %q", cfg.Client.BaseURL)
	}
	if cfg.Client.Timeout != 30*time.Second {
		t.Errorf("Client.Timeout = %v, want 30s", cfg.Client.Timeout)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Gemini.Model = %q", cfg.Gemini.Model)
	}
	if cfg.Gemini.Temperature != 0.3 {
		t.Errorf("Gemini.Temperature = %v, want 0.3", cfg.Gemini.Temperature)
	}
	if cfg.Upload.MaxFileSize != 10*1024*1024 {
		t.Errorf("Upload.MaxFileSize = %d", cfg.Upload.MaxFileSize)
	}
	if cfg.History.Enabled {
		t.Error("History.Enabled should default to false")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ANALYZER_BASE_URL", "http://analyzer.internal:9000")
	t.Setenv("ANALYZER_TIMEOUT", "5s")
	t.Setenv("HISTORY_ENABLED", "true")
	t.Setenv("GEMINI_MAX_OUTPUT_TOKENS", "1024")

	cfg := Load()

	if cfg.Client.BaseURL != "http://analyzer.internal:9000" {
		t.Errorf("Client.BaseURL = %q", cfg.Client.BaseURL)
	}
	if cfg.Client.Timeout != 5*time.Second {
		t.Errorf("Client.Timeout = %v, want 5s", cfg.Client.Timeout)
	}
	if !cfg.History.Enabled {
		t.Error("History.Enabled = false, want true")
	}
	if cfg.Gemini.MaxOutputTokens != 1024 {
		t.Errorf("Gemini.MaxOutputTokens = %d, want 1024", cfg.Gemini.MaxOutputTokens)
	}
}

func TestInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("ANALYZER_TIMEOUT", "soon")

	if got := Load().Client.Timeout; got != 30*time.Second {
		t.Fatalf("Client.Timeout = %v, want fallback 30s", got)
	}
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: "5433", User: "u", Password: "p", DBName: "n",
	}}
	want := "host=db port=5433 user=u password=p dbname=n sslmode=disable"
	if got := cfg.GetDatabaseDSN(); got != want {
		t.Fatalf("GetDatabaseDSN = %q, want %q", got, want)
	}
}
