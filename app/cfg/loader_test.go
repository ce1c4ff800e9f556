package cfg

import (
	"testing"
)

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}
}

func TestConfigFields(t *testing.T) {
	cfg := &Cfg{
		Port:              "8000",
		SiteConfig:        "./site.yml",
		HarvestInterval:   3600,
		EnrichConcurrency: 5,
		UserAgent:         "Test Agent",
		Version:           "test-version",
		DBHost:            "localhost",
		DBPort:            "5432",
		DBUser:            "test_user",
		DBPassword:        "test_password",
		DBName:            "test_db",
		Timezone:          "UTC",
		Debug:             true,
	}

	if cfg.Port != "8000" {
		t.Errorf("Expected port '8000', got '%s'", cfg.Port)
	}
	if cfg.SiteConfig != "./site.yml" {
		t.Errorf("Expected site config './site.yml', got '%s'", cfg.SiteConfig)
	}
	if cfg.HarvestInterval != 3600 {
		t.Errorf("Expected harvest interval 3600, got %d", cfg.HarvestInterval)
	}
	if cfg.EnrichConcurrency != 5 {
		t.Errorf("Expected enrich concurrency 5, got %d", cfg.EnrichConcurrency)
	}
	if cfg.UserAgent != "Test Agent" {
		t.Errorf("Expected user agent 'Test Agent', got '%s'", cfg.UserAgent)
	}
	if cfg.Version != "test-version" {
		t.Errorf("Expected version 'test-version', got '%s'", cfg.Version)
	}
	if cfg.DBHost != "localhost" {
		t.Errorf("Expected DB host 'localhost', got '%s'", cfg.DBHost)
	}
	if cfg.DBName != "test_db" {
		t.Errorf("Expected DB name 'test_db', got '%s'", cfg.DBName)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
	if cfg.Clear {
		t.Error("Expected clear mode to be disabled by default")
	}
}
