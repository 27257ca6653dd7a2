package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GIN_MODE", "")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("SESSION_TTL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("SessionTTL = %v", cfg.SessionTTL)
	}
	if cfg.SweepInterval != time.Hour {
		t.Errorf("SweepInterval = %v", cfg.SweepInterval)
	}
	if cfg.SessionSecret == "" {
		t.Error("expected development secret")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SESSION_TTL", "20m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9000" || cfg.SessionSecret != "s3cret" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.SessionTTL != 20*time.Minute || cfg.SweepInterval != 5*time.Minute {
		t.Errorf("ttl=%v sweep=%v", cfg.SessionTTL, cfg.SweepInterval)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string]map[string]string{
		"bad ttl":             {"SESSION_TTL": "soon", "SESSION_SECRET": "x"},
		"negative ttl":        {"SESSION_TTL": "-1h", "SESSION_SECRET": "x"},
		"release sans secret": {"GIN_MODE": "release", "SESSION_SECRET": "", "SESSION_TTL": ""},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("GIN_MODE", "")
			for k, v := range env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestGetDBConfig(t *testing.T) {
	t.Setenv("DB_HOST", "")
	if GetDBConfig() != nil {
		t.Fatal("expected nil config without DB_HOST")
	}

	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "guide")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "tours")
	t.Setenv("DB_PORT", "")
	want := "host=db user=guide password=pw dbname=tours port=5432 sslmode=disable"
	if got := GetDBConfig().DSN(); got != want {
		t.Fatalf("DSN = %q, want %q", got, want)
	}
}

func TestR2ConfigEnabled(t *testing.T) {
	c := &R2Config{AccountID: "a", AccessKeyID: "k", SecretAccessKey: "s"}
	if c.Enabled() {
		t.Fatal("enabled without bucket")
	}
	c.BucketName = "audio"
	if !c.Enabled() {
		t.Fatal("expected enabled")
	}
}
