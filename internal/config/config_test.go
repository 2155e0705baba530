package config

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if cfg.Database.Provider != "postgresql" {
		t.Errorf("Expected database provider to be 'postgresql', got '%s'", cfg.Database.Provider)
	}
	if cfg.Database.URLEnv != "DATABASE_URL" {
		t.Errorf("Expected database url_env to be 'DATABASE_URL', got '%s'", cfg.Database.URLEnv)
	}
	if cfg.Seed.Count != 40 {
		t.Errorf("Expected seed count 40, got %d", cfg.Seed.Count)
	}
	if cfg.Seed.Admins != 3 {
		t.Errorf("Expected admin count 3, got %d", cfg.Seed.Admins)
	}
	if cfg.Seed.Batch != 500 {
		t.Errorf("Expected batch 500, got %d", cfg.Seed.Batch)
	}
	if cfg.Verify.MinRows != 20 {
		t.Errorf("Expected min_rows 20, got %d", cfg.Verify.MinRows)
	}
}

func TestValidateProvider(t *testing.T) {
	for _, provider := range []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"} {
		cfg := Default()
		cfg.Database.Provider = provider
		if err := cfg.Validate(); err != nil {
			t.Errorf("Provider %q should be valid: %v", provider, err)
		}
	}

	cfg := Default()
	cfg.Database.Provider = "mongodb"
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for unsupported provider, got none")
	}
}

func TestSeedParams(t *testing.T) {
	cfg := Default()
	params, err := cfg.SeedParams()
	if err != nil {
		t.Fatalf("SeedParams failed: %v", err)
	}

	if params.RowCount != cfg.Seed.Count {
		t.Errorf("Expected row count %d, got %d", cfg.Seed.Count, params.RowCount)
	}
	if !params.WindowStart.Before(params.WindowEnd) {
		t.Errorf("Window start %s not before end %s", params.WindowStart, params.WindowEnd)
	}
	if params.CalendarDays != 365 {
		t.Errorf("Expected 365 calendar days, got %d", params.CalendarDays)
	}
}

func TestSeedParamsRejectsBadWindow(t *testing.T) {
	cfg := Default()
	cfg.Seed.WindowStart = "not-a-date"
	if _, err := cfg.SeedParams(); err == nil {
		t.Error("Expected error for unparseable window start, got none")
	}
}
