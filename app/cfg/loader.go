package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Database configuration
	DBHost     string `long:"db-host" env:"DB_HOST" default:"localhost" description:"Database host"`
	DBPort     string `long:"db-port" env:"DB_PORT" default:"5432" description:"Database port"`
	DBUser     string `long:"db-user" env:"DB_USER" default:"news_user" description:"Database user"`
	DBPassword string `long:"db-password" env:"DB_PASSWORD" default:"news_password" description:"Database password (required)" required:"true"`
	DBName     string `long:"db-name" env:"DB_NAME" default:"news_db" description:"Database name"`

	// Application configuration
	SiteConfig        string `long:"site-config" env:"SITE_CONFIG" default:"./site.yml" description:"Path to the site profile YAML file"`
	Port              string `long:"port" env:"PORT" default:"8000" description:"HTTP server port"`
	HarvestInterval   int    `long:"harvest-interval" env:"HARVEST_INTERVAL" default:"3600" description:"Seconds to wait between harvest cycles"`
	EnrichConcurrency int    `long:"enrich-concurrency" env:"ENRICH_CONCURRENCY" default:"5" description:"Maximum simultaneous article fetches during enrichment"`
	Clear             bool   `long:"clear" description:"Clear all stored news items and exit"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"News Harvester/1.0" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"Asia/Yekaterinburg" description:"Timezone for timestamps (e.g., UTC, Asia/Yekaterinburg)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		DBHost:            raw.DBHost,
		DBPort:            raw.DBPort,
		DBUser:            raw.DBUser,
		DBPassword:        raw.DBPassword,
		DBName:            raw.DBName,
		SiteConfig:        raw.SiteConfig,
		Port:              raw.Port,
		HarvestInterval:   raw.HarvestInterval,
		EnrichConcurrency: raw.EnrichConcurrency,
		Clear:             raw.Clear,
		UserAgent:         raw.UserAgent,
		Timezone:          raw.Timezone,
		Debug:             raw.Debug,
		Version:           GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	return cfg, nil
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
			fmt.Printf("Timezone configured: %s\n", timezone)
		}
	}
	return nil
}
