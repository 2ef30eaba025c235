package plots

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"

	"netflix-analysis/utils"
)

// SnapshotJob maps a rendered chart page to the PNG it should produce
type SnapshotJob struct {
	HTMLPath string
	PNGPath  string
}

// Snapshotter rasterises chart pages with headless Chrome
type Snapshotter struct {
	timeout time.Duration
	settle  time.Duration // time given to the chart script before capture
	logger  *utils.Logger
}

// NewSnapshotter creates a new Snapshotter
func NewSnapshotter(timeout, settle time.Duration, logger *utils.Logger) *Snapshotter {
	return &Snapshotter{timeout: timeout, settle: settle, logger: logger}
}

// newContext creates a fresh chromedp context (one browser, one tab)
func (s *Snapshotter) newContext(parent context.Context) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("allow-file-access-from-files", true),
		chromedp.Flag("log-level", "3"), // suppress Chrome logs
		chromedp.WindowSize(1280, 720),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, opts...)
	ctx, cancelCtx := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	cancel := func() {
		cancelCtx()
		cancelAlloc()
	}
	return ctx, cancel
}

// Capture renders each job's page and writes a PNG screenshot. Pages are
// visited one after another in a single tab; the first failure stops the batch
// and the PNGs written before it are still returned.
func (s *Snapshotter) Capture(parent context.Context, jobs []SnapshotJob) ([]string, error) {
	var written []string
	if len(jobs) == 0 {
		return written, nil
	}

	ctx, cancel := s.newContext(parent)
	defer cancel()

	ctx, cancelTimeout := context.WithTimeout(ctx, s.timeout)
	defer cancelTimeout()

	for _, job := range jobs {
		abs, err := filepath.Abs(job.HTMLPath)
		if err != nil {
			return written, fmt.Errorf("resolve %s: %w", job.HTMLPath, err)
		}

		var png []byte
		err = chromedp.Run(ctx,
			chromedp.Navigate("file://"+filepath.ToSlash(abs)),
			chromedp.WaitVisible(".item", chromedp.ByQuery),
			chromedp.Sleep(s.settle),
			chromedp.FullScreenshot(&png, 100),
		)
		if err != nil {
			return written, fmt.Errorf("snapshot %s failed: %w", job.HTMLPath, err)
		}

		if err := os.WriteFile(job.PNGPath, png, 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", job.PNGPath, err)
		}
		written = append(written, job.PNGPath)
		s.logger.Debug("Snapshot written: %s", job.PNGPath)
	}
	return written, nil
}
