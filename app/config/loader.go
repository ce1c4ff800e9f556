package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of the site profile
type Loader struct {
	path string
}

// NewLoader creates a new site profile loader
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads the site profile YAML file. A missing file is not an error:
// the built-in defaults describe the production site and are used as-is.
func (l *Loader) Load() (*SiteConfig, error) {
	config := &SiteConfig{}

	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		slog.Info("Site profile not found, using defaults", "path", l.path)
		setDefaults(config)
		return config, nil
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read site profile: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse site profile YAML: %w", err)
	}

	setDefaults(config)

	if err := validate(config); err != nil {
		return nil, fmt.Errorf("invalid site profile %s: %w", l.path, err)
	}

	slog.Debug("Site profile loaded", "path", l.path, "site", config.Site.Name)

	return config, nil
}

func setDefaults(config *SiteConfig) {
	if config.Site.Name == "" {
		config.Site.Name = "uralpolit"
	}
	if config.Site.Origin == "" {
		config.Site.Origin = "https://uralpolit.ru"
	}
	if config.Site.ListingURL == "" {
		config.Site.ListingURL = "https://uralpolit.ru/news/urfo"
	}
	if config.Selectors.Entry == "" {
		config.Selectors.Entry = "article.news-article"
	}
	if config.Selectors.TitleLink == "" {
		config.Selectors.TitleLink = "a.news-article__title"
	}
	if config.Selectors.Time == "" {
		config.Selectors.Time = "time"
	}
	if config.Selectors.Body == "" {
		config.Selectors.Body = "div[itemprop=articleBody]"
	}
	if config.Settings.DateFormat == "" {
		config.Settings.DateFormat = "02.01.2006"
	}
	if config.Settings.TimeFormat == "" {
		config.Settings.TimeFormat = "15:04"
	}
	if config.Settings.WindowHours == 0 {
		config.Settings.WindowHours = 24
	}
	if config.Settings.Timeout == 0 {
		config.Settings.Timeout = 30 // seconds
	}
}

func validate(config *SiteConfig) error {
	if !strings.HasPrefix(config.Site.Origin, "http://") && !strings.HasPrefix(config.Site.Origin, "https://") {
		return fmt.Errorf("site origin must be an absolute URL, got '%s'", config.Site.Origin)
	}
	if strings.HasSuffix(config.Site.Origin, "/") {
		return fmt.Errorf("site origin must not end with a slash, got '%s'", config.Site.Origin)
	}
	if !strings.HasPrefix(config.Site.ListingURL, config.Site.Origin) {
		return fmt.Errorf("listing URL '%s' is outside site origin '%s'", config.Site.ListingURL, config.Site.Origin)
	}
	if config.Settings.WindowHours < 0 {
		return fmt.Errorf("window_hours must not be negative, got %d", config.Settings.WindowHours)
	}
	return nil
}
