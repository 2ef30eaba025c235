// Package metrics records per-run pipeline counters and writes them in the
// Prometheus textfile format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"netflix-analysis/models"
)

// Registry holds the run metrics; it is written once, as a textfile, when the run ends
var Registry = prometheus.NewRegistry()

var (
	RowsLoaded = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "titles_rows_loaded",
			Help: "Rows read from the input dataset.",
		},
	)
	RowsDropped = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "titles_rows_dropped",
			Help: "Rows removed because date_added or duration was missing.",
		},
	)
	ValuesFilled = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "titles_values_filled",
			Help: "Missing categorical values replaced with the unknown sentinel, by column.",
		},
		[]string{"column"},
	)
	UnparsedDates = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "titles_unparsed_dates",
			Help: "Rows kept with a date_added that could not be parsed.",
		},
	)
	ChartsRendered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "titles_charts_rendered_total",
			Help: "Chart files written, by format.",
		},
		[]string{"format"},
	)
	StageDuration = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "titles_stage_duration_seconds",
			Help: "Wall time spent in each pipeline stage.",
		},
		[]string{"stage"},
	)
	LastRunTimestamp = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "titles_last_run_timestamp_seconds",
			Help: "Unix time at which the analysis finished.",
		},
	)
)

func init() {
	Registry.MustRegister(RowsLoaded)
	Registry.MustRegister(RowsDropped)
	Registry.MustRegister(ValuesFilled)
	Registry.MustRegister(UnparsedDates)
	Registry.MustRegister(ChartsRendered)
	Registry.MustRegister(StageDuration)
	Registry.MustRegister(LastRunTimestamp)
}

// ObserveClean records what the cleaner changed
func ObserveClean(stats models.CleanStats) {
	RowsLoaded.Set(float64(stats.RowsBefore))
	RowsDropped.Set(float64(stats.RowsDropped()))
	UnparsedDates.Set(float64(stats.UnparsedDates))
	for col, n := range stats.Filled {
		ValuesFilled.WithLabelValues(col).Set(float64(n))
	}
}

// TimeStage records how long a stage took since start
func TimeStage(stage string, start time.Time) {
	StageDuration.WithLabelValues(stage).Set(time.Since(start).Seconds())
}

// WriteTextfile dumps the registry in the node_exporter textfile format
func WriteTextfile(path string) error {
	LastRunTimestamp.SetToCurrentTime()
	return prometheus.WriteToTextfile(path, Registry)
}
