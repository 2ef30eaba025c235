package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"netflix-analysis/config"
	"netflix-analysis/metrics"
	"netflix-analysis/plots"
	"netflix-analysis/services"
	"netflix-analysis/storage"
	"netflix-analysis/utils"
)

func main() {
	// ================== Bootstrap ====================
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(2)
	}

	logger := utils.NewLogger(utils.LogOptions{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
	})
	defer logger.Close()

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("%v", err)
		logger.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *utils.Logger) error {
	runID := uuid.NewString()
	logger.Info("Title dataset analysis (run %s)", runID)
	logger.Info("Dataset: %s | Charts: %s | Snapshots: %t", cfg.DatasetPath, cfg.ChartDir, cfg.ChartSnapshot)

	reporter := services.NewReporter(os.Stdout)

	// =================== Load ========================================
	start := time.Now()
	raw, err := services.NewDataLoader(logger).Load(cfg.DatasetPath)
	if err != nil {
		return err
	}
	metrics.TimeStage("load", start)
	reporter.PrintDatasetSummary("RAW DATASET", services.Summarize(raw, cfg.HeadRows))

	// =========== Data Cleaning ======================
	start = time.Now()
	clean, stats := services.NewDataCleaner(logger).Clean(raw)
	if clean.Err != nil {
		return fmt.Errorf("cleaning failed: %w", clean.Err)
	}
	metrics.TimeStage("clean", start)
	metrics.ObserveClean(stats)
	reporter.PrintDatasetSummary("AFTER CLEANING", services.Summarize(clean, cfg.HeadRows))

	// ==== Insights ============================
	start = time.Now()
	report := services.NewInsightService(logger, services.InsightOptions{
		TopN:       cfg.TopN,
		ChartTopN:  cfg.ChartTopN,
		SampleRows: cfg.HeadRows,
	}).Generate(clean)
	metrics.TimeStage("insights", start)
	reporter.PrintInsightReport(report)

	// ========= Report export (optional) ===========================
	sinks, closeSinks := reportSinks(cfg, logger)
	defer closeSinks()
	for _, sink := range sinks {
		if err := sink.WriteReport(runID, report); err != nil {
			// Non-fatal: the console report is already out
			logger.Error("Failed to export report: %v", err)
		}
	}

	// =========== Charts ======================
	start = time.Now()
	var snapshotter plots.Capturer
	if cfg.ChartSnapshot {
		snapshotter = plots.NewSnapshotter(cfg.SnapshotTimeout, cfg.SnapshotSettle, logger)
	}
	renderer := plots.NewChartRenderer(cfg.ChartDir, plots.Options{AssetsHost: cfg.AssetsHost}, snapshotter, logger)
	rendered, err := renderer.RenderAll(ctx, report)
	if err != nil {
		return err
	}
	metrics.TimeStage("charts", start)
	metrics.ChartsRendered.WithLabelValues("html").Add(float64(len(rendered.HTML)))
	metrics.ChartsRendered.WithLabelValues("png").Add(float64(len(rendered.PNG)))

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Error("Failed to write metrics: %v", err)
		}
	}

	fmt.Printf(" Done! %d titles analysed, %d charts → %s\n", report.TotalTitles, len(rendered.HTML), cfg.ChartDir)
	return nil
}

// reportSinks returns the export targets enabled in the configuration and a
// function releasing them
func reportSinks(cfg *config.Config, logger *utils.Logger) ([]storage.ReportSink, func()) {
	var sinks []storage.ReportSink
	noop := func() {}
	if cfg.ReportDir != "" {
		sinks = append(sinks,
			storage.NewCSVWriter(cfg.ReportDir, logger),
			storage.NewXLSXWriter(filepath.Join(cfg.ReportDir, "insights.xlsx"), logger),
		)
	}
	if cfg.DatabaseURL != "" {
		pg, err := storage.NewPostgresWriter(cfg.DatabaseURL, logger)
		if err != nil {
			logger.Error("Cannot connect to PostgreSQL: %v", err)
			return sinks, noop
		}
		if err := pg.CreateTable(); err != nil {
			logger.Error("Failed to create DB table: %v", err)
			pg.Close()
			return sinks, noop
		}
		return append(sinks, pg), pg.Close
	}
	return sinks, noop
}
