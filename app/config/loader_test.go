package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "absent.yml"))

	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Expected no error for missing profile, got: %v", err)
	}

	if config.Site.Origin != "https://uralpolit.ru" {
		t.Errorf("Expected default origin, got '%s'", config.Site.Origin)
	}
	if config.Site.ListingURL != "https://uralpolit.ru/news/urfo" {
		t.Errorf("Expected default listing URL, got '%s'", config.Site.ListingURL)
	}
	if config.Selectors.Entry != "article.news-article" {
		t.Errorf("Expected default entry selector, got '%s'", config.Selectors.Entry)
	}
	if config.Selectors.Body != "div[itemprop=articleBody]" {
		t.Errorf("Expected default body selector, got '%s'", config.Selectors.Body)
	}
	if config.Settings.WindowHours != 24 {
		t.Errorf("Expected default window of 24 hours, got %d", config.Settings.WindowHours)
	}
	if config.Settings.Timeout != 30 {
		t.Errorf("Expected default timeout of 30 seconds, got %d", config.Settings.Timeout)
	}
}

func TestLoad_ProfileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yml")
	content := `
site:
  name: example
  origin: https://example.test
  listing_url: https://example.test/news
selectors:
  entry: article.item
settings:
  timeout: 10
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write profile: %v", err)
	}

	config, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if config.Site.Origin != "https://example.test" {
		t.Errorf("Expected overridden origin, got '%s'", config.Site.Origin)
	}
	if config.Selectors.Entry != "article.item" {
		t.Errorf("Expected overridden entry selector, got '%s'", config.Selectors.Entry)
	}
	if config.Settings.Timeout != 10 {
		t.Errorf("Expected overridden timeout 10, got %d", config.Settings.Timeout)
	}

	// Fields absent from the file keep their defaults
	if config.Selectors.TitleLink != "a.news-article__title" {
		t.Errorf("Expected default title link selector, got '%s'", config.Selectors.TitleLink)
	}
	if config.Settings.DateFormat != "02.01.2006" {
		t.Errorf("Expected default date format, got '%s'", config.Settings.DateFormat)
	}
}

func TestLoad_InvalidOrigin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yml")
	content := `
site:
  origin: example.test
  listing_url: https://example.test/news
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write profile: %v", err)
	}

	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("Expected error for non-absolute origin")
	}
}

func TestLoad_ListingOutsideOrigin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yml")
	content := `
site:
  origin: https://example.test
  listing_url: https://other.test/news
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write profile: %v", err)
	}

	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("Expected error for listing URL outside origin")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yml")
	if err := os.WriteFile(path, []byte("site: [broken"), 0644); err != nil {
		t.Fatalf("Failed to write profile: %v", err)
	}

	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}
