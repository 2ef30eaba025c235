package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"netflix-analysis/models"
	"netflix-analysis/utils"
)

const defaultSheet = "Sheet1"

// XLSXWriter writes the report as one workbook, one sheet per table
type XLSXWriter struct {
	path   string
	logger *utils.Logger
}

// NewXLSXWriter creates a new XLSXWriter
func NewXLSXWriter(path string, logger *utils.Logger) *XLSXWriter {
	return &XLSXWriter{path: path, logger: logger}
}

// WriteReport writes the workbook, replacing any previous file
func (w *XLSXWriter) WriteReport(runID string, report *models.InsightReport) error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	tables := ReportTables(report)
	for _, t := range tables {
		if _, err := f.NewSheet(t.Name); err != nil {
			return fmt.Errorf("failed to add sheet %s: %w", t.Name, err)
		}
		if err := writeSheet(f, t); err != nil {
			return err
		}
	}
	if err := f.DeleteSheet(defaultSheet); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}
	if idx, err := f.GetSheetIndex(tables[0].Name); err == nil {
		f.SetActiveSheet(idx)
	}
	if err := f.SetDocProps(&excelize.DocProperties{Title: "Title catalogue insights", Identifier: runID}); err != nil {
		return fmt.Errorf("failed to set workbook properties: %w", err)
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	w.logger.Info("Report %s written to %s (%d sheets)", runID, w.path, len(tables))
	return nil
}

// writeSheet writes headers then rows; numeric cells are stored as numbers
func writeSheet(f *excelize.File, t Table) error {
	header := make([]interface{}, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(t.Name, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", t.Name, err)
	}

	for r, row := range t.Rows {
		cells := make([]interface{}, len(row))
		for i, v := range row {
			cells[i] = cellValue(t.Headers[i], v)
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(t.Name, cell, &cells); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", t.Name, r+1, err)
		}
	}
	return nil
}

func cellValue(column, v string) interface{} {
	switch column {
	case "count", "year":
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	case "percent":
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return v
}
