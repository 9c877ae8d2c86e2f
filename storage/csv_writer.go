package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"olx-scraper/models"
	"olx-scraper/utils"
)

// CSVWriter dumps harvested records to a CSV file as a raw backup next to
// the database.
type CSVWriter struct {
	filePath string
	logger   *utils.Logger
}

// NewCSVWriter creates a new CSVWriter
func NewCSVWriter(filePath string, logger *utils.Logger) *CSVWriter {
	return &CSVWriter{filePath: filePath, logger: logger}
}

// WriteRecords writes a slice of AdRecords to the CSV file
func (w *CSVWriter) WriteRecords(records []*models.AdRecord) error {
	dir := filepath.Dir(w.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(w.filePath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"ad_id", "title", "price", "user_name", "phone_number", "user_score",
		"user_registration", "user_last_seen", "ad_view_counter", "location",
		"ad_pub_date", "url", "description", "ad_tags", "img_src_list",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.AdID,
			r.Title,
			r.Price,
			r.UserName,
			r.PhoneNumber,
			r.UserScore,
			r.UserRegistration,
			r.UserLastSeen,
			r.AdViewCounter,
			r.Location,
			r.AdPubDate,
			r.URL,
			r.Description,
			strings.Join(r.AdTags, "|"),
			strings.Join(r.ImgSrcList, "|"),
		}
		if err := writer.Write(row); err != nil {
			w.logger.Error("Failed to write CSV row for ad %s: %v", r.AdID, err)
		}
	}

	w.logger.Info("Records written to: %s (%d rows)", w.filePath, len(records))
	return nil
}
