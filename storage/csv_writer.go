package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"netflix-analysis/models"
	"netflix-analysis/utils"
)

// CSVWriter writes each report table to <dir>/<table>.csv
type CSVWriter struct {
	dir    string
	logger *utils.Logger
}

// NewCSVWriter creates a new CSVWriter
func NewCSVWriter(dir string, logger *utils.Logger) *CSVWriter {
	return &CSVWriter{dir: dir, logger: logger}
}

// WriteReport writes every aggregate table of the report
func (w *CSVWriter) WriteReport(runID string, report *models.InsightReport) error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tables := ReportTables(report)
	for _, t := range tables {
		if err := w.writeTable(t); err != nil {
			return err
		}
	}

	w.logger.Info("Report %s written to %s (%d CSV tables)", runID, w.dir, len(tables))
	return nil
}

func (w *CSVWriter) writeTable(t Table) error {
	path := filepath.Join(w.dir, t.Name+".csv")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(t.Headers); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := writer.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
