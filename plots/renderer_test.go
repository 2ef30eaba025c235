package plots

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netflix-analysis/models"
	"netflix-analysis/utils"
)

func sampleReport() *models.InsightReport {
	return &models.InsightReport{
		TypeCounts: []models.ValueCount{{Value: "Movie", Count: 3}, {Value: "TV Show", Count: 1}},
		TypeShares: []models.Share{
			{Label: "Movie", Count: 3, Percent: 75},
			{Label: "TV Show", Count: 1, Percent: 25},
		},
		ChartCountries: []models.ValueCount{{Value: "India", Count: 2}, {Value: "Japan", Count: 1}},
		ChartGenres:    []models.ValueCount{{Value: "Dramas", Count: 3}},
		RatingsByType: models.CrossTab{
			Categories: []string{"PG", "TV-MA"},
			Series: []models.GroupSeries{
				{Group: "Movie", Counts: []int{2, 1}},
				{Group: "TV Show", Counts: []int{0, 1}},
			},
		},
		YearsByType: models.CrossTab{
			Categories: []string{"2019", "2020"},
			Series:     []models.GroupSeries{{Group: "Movie", Counts: []int{1, 2}}},
		},
	}
}

func TestBuild(t *testing.T) {
	charts := Build(sampleReport(), Options{})

	names := make([]string, len(charts))
	for i, c := range charts {
		names[i] = c.Name
		assert.NotEmpty(t, c.Title)
		assert.NotNil(t, c.page)
	}
	assert.Equal(t, []string{
		"type_counts", "rating_distribution", "content_by_year",
		"top_countries", "top_genres", "type_share",
	}, names)
}

func TestChartRenderer_RenderAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	logger := utils.NewLoggerTo(io.Discard, "info")

	out, err := NewChartRenderer(dir, Options{}, nil, logger).RenderAll(context.Background(), sampleReport())
	require.NoError(t, err)

	assert.Len(t, out.HTML, 6)
	assert.Empty(t, out.PNG)

	titles := map[string]string{
		"type_counts":         "Count of Movies vs TV Shows",
		"rating_distribution": "Distribution of Content Ratings",
		"content_by_year":     "Content Added Each Year (Movies vs TV Shows)",
		"top_countries":       "Top 10 Countries by Number of Titles",
		"top_genres":          "Top 10 Genres",
		"type_share":          "Movie vs TV Show - Percentage",
	}
	for name, title := range titles {
		data, err := os.ReadFile(filepath.Join(dir, name+".html"))
		require.NoError(t, err, name)
		assert.Contains(t, string(data), title, name)
	}

	pie, err := os.ReadFile(filepath.Join(dir, "type_share.html"))
	require.NoError(t, err)
	assert.Contains(t, string(pie), "toFixed(1)")
	assert.Contains(t, string(pie), "lightcoral")
}

func TestChartRenderer_RenderAll_EmptyReport(t *testing.T) {
	dir := t.TempDir()
	logger := utils.NewLoggerTo(io.Discard, "info")

	out, err := NewChartRenderer(dir, Options{}, nil, logger).RenderAll(context.Background(), &models.InsightReport{})
	require.NoError(t, err)
	assert.Len(t, out.HTML, 6)
}

func TestSnapshotter_Capture_NoJobs(t *testing.T) {
	s := NewSnapshotter(0, 0, utils.NewLoggerTo(io.Discard, "info"))
	png, err := s.Capture(context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, png)
}

// failingCapturer writes the first n PNGs and then fails
type failingCapturer struct {
	n int
}

func (f failingCapturer) Capture(_ context.Context, jobs []SnapshotJob) ([]string, error) {
	var written []string
	for i, job := range jobs {
		if i == f.n {
			return written, errors.New("browser crashed")
		}
		if err := os.WriteFile(job.PNGPath, []byte("png"), 0644); err != nil {
			return written, err
		}
		written = append(written, job.PNGPath)
	}
	return written, nil
}

func TestChartRenderer_RenderAll_PartialSnapshots(t *testing.T) {
	dir := t.TempDir()
	logger := utils.NewLoggerTo(io.Discard, "info")

	out, err := NewChartRenderer(dir, Options{}, failingCapturer{n: 2}, logger).RenderAll(context.Background(), sampleReport())
	require.NoError(t, err)

	assert.Len(t, out.HTML, 6)
	assert.Equal(t, []string{
		filepath.Join(dir, "type_counts.png"),
		filepath.Join(dir, "rating_distribution.png"),
	}, out.PNG)
	for _, p := range out.PNG {
		assert.FileExists(t, p)
	}
}
