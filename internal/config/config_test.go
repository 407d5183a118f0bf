package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Path != "moodtrack.db" {
		t.Errorf("database path = %q, want moodtrack.db", cfg.Database.Path)
	}
	if cfg.Analytics.UTCOffsetHours != -3 {
		t.Errorf("utc offset = %d, want -3", cfg.Analytics.UTCOffsetHours)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("log config = %+v, want info/json", cfg.Log)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Database:  DatabaseConfig{Path: "test.db"},
		Analytics: AnalyticsConfig{UTCOffsetHours: -3},
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	cfg.Database.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing database path")
	}

	cfg.Database.Path = "test.db"
	cfg.Analytics.UTCOffsetHours = 20
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for out-of-range UTC offset")
	}
}
