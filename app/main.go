package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lysyi3m/news-harvester/app/api"
	"github.com/lysyi3m/news-harvester/app/cfg"
	"github.com/lysyi3m/news-harvester/app/config"
	"github.com/lysyi3m/news-harvester/app/database"
	"github.com/lysyi3m/news-harvester/app/harvest"
	"github.com/lysyi3m/news-harvester/app/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	appCfg, err := cfg.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	setupLogger(appCfg.Debug)

	log.Printf("Starting News Harvester %s...", appCfg.Version)

	// Storage is acquired lazily: an unreachable database fails the
	// operation at hand (and the cycle it belongs to), not the process,
	// and the next scheduled cycle tries again.
	connect := func() (*database.DB, error) {
		log.Println("Connecting to database...")
		db, err := database.NewConnection(
			appCfg.DBHost, appCfg.DBPort, appCfg.DBUser,
			appCfg.DBPassword, appCfg.DBName)
		if err != nil {
			return nil, err
		}

		if err := database.RunMigrations(db); err != nil {
			db.Close()
			return nil, err
		}

		log.Println("Connected to database, schema up to date")
		return db, nil
	}

	newsRepo := database.NewLazyNewsRepository(connect)
	defer newsRepo.Close()

	if appCfg.Clear {
		log.Println("Clearing all stored news items...")
		if err := newsRepo.Clear(); err != nil {
			log.Fatal("Failed to clear news items:", err)
		}
		log.Println("All stored news items cleared")
		return
	}

	log.Printf("Loading site profile from %s...", appCfg.SiteConfig)
	siteConfig, err := config.NewLoader(appCfg.SiteConfig).Load()
	if err != nil {
		log.Fatal("Failed to load site profile:", err)
	}
	log.Printf("Harvesting %s (%s)", siteConfig.Site.Name, siteConfig.Site.ListingURL)

	// Harvest pipeline
	fetcher := harvest.NewFetcher(time.Duration(siteConfig.Settings.Timeout)*time.Second, appCfg.UserAgent)
	listingParser := harvest.NewListingParser(siteConfig)
	extractor := harvest.NewContentExtractor(siteConfig.Selectors.Body)
	enricher := harvest.NewEnricher(fetcher, extractor, appCfg.EnrichConcurrency)
	harvester := harvest.NewHarvester(siteConfig, fetcher, listingParser, enricher)

	cycle := func(ctx context.Context) error {
		candidates := harvester.Run(ctx)
		if len(candidates) == 0 {
			slog.Warn("No news found to ingest")
			return nil
		}

		entries := make([]database.NewsEntry, 0, len(candidates))
		for _, candidate := range candidates {
			entries = append(entries, database.NewsEntry{
				Title:       candidate.Title,
				Link:        candidate.Link,
				PublishedAt: candidate.PublishedAt,
				Content:     candidate.Content,
			})
		}

		inserted, err := newsRepo.InsertNew(entries)
		if err != nil {
			return fmt.Errorf("failed to store news items: %w", err)
		}

		if inserted == 0 {
			slog.Info("No new news items to add", "candidates", len(entries))
		} else {
			slog.Info("New news items stored", "inserted", inserted, "candidates", len(entries))
		}

		return nil
	}

	log.Printf("Starting harvest scheduler (interval: %ds)...", appCfg.HarvestInterval)
	harvestScheduler := scheduler.NewScheduler(cycle, time.Duration(appCfg.HarvestInterval)*time.Second)
	harvestScheduler.Start()
	defer harvestScheduler.Stop()

	// HTTP read API
	log.Println("Initializing HTTP server...")
	apiHandler := api.NewHandler(newsRepo)
	server := api.NewServer(apiHandler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on port %s", appCfg.Port)
		log.Printf("  News lookup:   http://localhost:%s/news/<id>", appCfg.Port)
		log.Printf("  Health check:  http://localhost:%s/health", appCfg.Port)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	log.Println("News Harvester started successfully!")

	select {
	case sig := <-sigChan:
		log.Printf("Received signal: %v", sig)
	case err := <-serverErrChan:
		log.Printf("Server error: %v", err)
	}

	log.Println("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	} else {
		log.Println("HTTP server stopped")
	}

	// Scheduler is stopped via defer
	log.Println("News Harvester shutdown complete")
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))
}
