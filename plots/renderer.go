package plots

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"netflix-analysis/models"
	"netflix-analysis/utils"
)

// Rendered lists the files a render pass produced
type Rendered struct {
	HTML []string
	PNG  []string
}

// Capturer turns rendered chart pages into images, returning the files written
type Capturer interface {
	Capture(ctx context.Context, jobs []SnapshotJob) ([]string, error)
}

// ChartRenderer writes the exploratory charts to a directory
type ChartRenderer struct {
	dir         string
	opts        Options
	snapshotter Capturer // nil disables PNG output
	logger      *utils.Logger
}

// NewChartRenderer creates a new ChartRenderer
func NewChartRenderer(dir string, o Options, snapshotter Capturer, logger *utils.Logger) *ChartRenderer {
	return &ChartRenderer{dir: dir, opts: o, snapshotter: snapshotter, logger: logger}
}

// RenderAll writes every chart as a standalone HTML page, then captures PNGs
// if a snapshotter is configured. A snapshot failure is logged, not returned.
func (r *ChartRenderer) RenderAll(ctx context.Context, report *models.InsightReport) (Rendered, error) {
	var out Rendered

	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return out, fmt.Errorf("failed to create chart directory: %w", err)
	}

	var jobs []SnapshotJob
	for _, chart := range Build(report, r.opts) {
		path := filepath.Join(r.dir, chart.Name+".html")
		if err := writePage(path, chart.page); err != nil {
			return out, fmt.Errorf("failed to render %s: %w", chart.Name, err)
		}
		out.HTML = append(out.HTML, path)
		jobs = append(jobs, SnapshotJob{
			HTMLPath: path,
			PNGPath:  filepath.Join(r.dir, chart.Name+".png"),
		})
		r.logger.Info("Chart %q written to %s", chart.Title, path)
	}

	if r.snapshotter == nil {
		return out, nil
	}
	png, err := r.snapshotter.Capture(ctx, jobs)
	out.PNG = png
	if err != nil {
		r.logger.Warn("Chart snapshots incomplete (%d of %d written): %v", len(png), len(jobs), err)
	}
	return out, nil
}

func writePage(path string, p page) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := p.Render(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
