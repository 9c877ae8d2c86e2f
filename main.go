package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"olx-scraper/config"
	"olx-scraper/models"
	"olx-scraper/scraper/olx"
	"olx-scraper/services"
	"olx-scraper/storage"
	"olx-scraper/utils"
)

var (
	flagCategory     string
	flagLocation     string
	flagSubcategory1 string
	flagSubcategory2 string
	flagFilters      string
	flagStartPage    int
	flagEndPage      int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "olx-scraper",
		Short: "Harvest structured ad records from olx.ua",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&flagCategory, "category", "list", "OLX category (list, nedvizhimost, transport)")
	rootCmd.Flags().StringVar(&flagLocation, "location", "", "City or region slug")
	rootCmd.Flags().StringVar(&flagSubcategory1, "subcategory1", "", "First subcategory slug")
	rootCmd.Flags().StringVar(&flagSubcategory2, "subcategory2", "", "Second subcategory slug")
	rootCmd.Flags().StringVar(&flagFilters, "filters", "", "JSON filter map, e.g. '{\"q\":\"thinkpad\"}'")
	rootCmd.Flags().IntVar(&flagStartPage, "start-page", 1, "First listing page")
	rootCmd.Flags().IntVar(&flagEndPage, "end-page", 1, "Last listing page")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	logger := utils.NewLogger()
	defer logger.Sync()
	cfg := config.Load()

	logger.Info("OLX Classifieds Harvester")
	logger.Info("Workers: %d | Rate delay: %dms | Retries: %d",
		cfg.Workers, cfg.RateLimitDelay, cfg.MaxRetries)

	filters := map[string]string{}
	if flagFilters != "" {
		if err := json.Unmarshal([]byte(flagFilters), &filters); err != nil {
			return fmt.Errorf("invalid --filters JSON: %w", err)
		}
	}
	query := models.UrlQuery{
		Category:     flagCategory,
		Location:     flagLocation,
		Subcategory1: flagSubcategory1,
		Subcategory2: flagSubcategory2,
		Filters:      filters,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ============ PostgreSQL setup ============
	gateway, err := storage.NewGateway(cfg.DatabaseDSN(), logger)
	if err != nil {
		return fmt.Errorf("cannot connect to PostgreSQL: %w", err)
	}
	defer gateway.Close()

	if err := gateway.CreateTable(); err != nil {
		return fmt.Errorf("failed to create DB table: %w", err)
	}

	// ============ Browser session ============
	browser, err := olx.NewBrowser(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to launch browser: %w", err)
	}
	defer browser.Close()

	if err := browser.RestoreSession(cfg.StateFilePath); err != nil {
		logger.Warn("Session restore failed: %v", err)
	}
	if err := browser.Login(cfg); err != nil {
		logger.Warn("Login step failed: %v", err)
	}

	// ============ Crawl ============
	scraper := olx.NewScraper(cfg, logger, browser, gateway)
	logger.Info("%s", scraper)

	stats, records, err := scraper.Run(ctx, query, flagStartPage, flagEndPage)
	if stats == nil {
		return err
	}
	if err != nil {
		logger.Warn("Crawl interrupted: %v", err)
	}

	// ============ CSV backup ============
	if len(records) > 0 {
		csvWriter := storage.NewCSVWriter(cfg.CSVFilePath, logger)
		if err := csvWriter.WriteRecords(records); err != nil {
			logger.Error("Failed to write CSV: %v", err)
			// Non-fatal: records are already in the database
		}
	}

	services.PrintRunReport(stats)
	return nil
}
