package storage

import "netflix-analysis/models"

// ReportSink persists the aggregate tables of an insight report
type ReportSink interface {
	WriteReport(runID string, report *models.InsightReport) error
}
