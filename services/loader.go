package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"netflix-analysis/models"
	"netflix-analysis/utils"
)

// ErrMissingColumns is returned when the header lacks a required column
var ErrMissingColumns = errors.New("missing required columns")

// DataLoader reads the title dataset into a table
type DataLoader struct {
	logger *utils.Logger
}

// NewDataLoader creates a new DataLoader
func NewDataLoader(logger *utils.Logger) *DataLoader {
	return &DataLoader{logger: logger}
}

// Load opens and parses the CSV file at path
func (l *DataLoader) Load(path string) (dataframe.DataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	df, err := l.Read(file)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	l.logger.Info("Loaded %d rows x %d columns from %s", df.Nrow(), df.Ncol(), path)
	return df, nil
}

// Read parses CSV from r. Every column is kept as strings; null markers become NaN.
// A header with no data rows gives an empty table with those columns.
func (l *DataLoader) Read(r io.Reader) (dataframe.DataFrame, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	var df dataframe.DataFrame
	if len(records) == 1 {
		df = emptyTable(records[0])
	} else {
		df = dataframe.LoadRecords(records,
			dataframe.HasHeader(true),
			dataframe.DetectTypes(false),
			dataframe.DefaultType(series.String),
			dataframe.NaNValues(models.NullMarkers),
		)
	}
	if df.Err != nil {
		return dataframe.DataFrame{}, df.Err
	}

	if missing := missingColumns(df.Names(), models.RequiredColumns); len(missing) > 0 {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return df, nil
}

// emptyTable builds a zero-row string table with the given header
func emptyTable(header []string) dataframe.DataFrame {
	columns := make([]series.Series, len(header))
	for i, name := range header {
		columns[i] = series.New([]string{}, series.String, name)
	}
	return dataframe.New(columns...)
}

// Summarize reports shape, per-column null counts and the first headRows rows
func Summarize(df dataframe.DataFrame, headRows int) models.DatasetSummary {
	rows, cols := df.Dims()
	summary := models.DatasetSummary{
		Rows:    rows,
		Cols:    cols,
		Columns: df.Names(),
	}

	for _, name := range summary.Columns {
		summary.Nulls = append(summary.Nulls, models.ColumnNulls{
			Column: name,
			Nulls:  countNulls(df.Col(name)),
		})
	}

	if n := min(headRows, rows); n > 0 {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		summary.Head = df.Subset(idx)
	}
	return summary
}

func countNulls(s series.Series) int {
	n := 0
	for _, na := range s.IsNaN() {
		if na {
			n++
		}
	}
	return n
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

func missingColumns(have, want []string) []string {
	present := make(map[string]struct{}, len(have))
	for _, h := range have {
		present[h] = struct{}{}
	}
	var missing []string
	for _, w := range want {
		if _, ok := present[w]; !ok {
			missing = append(missing, w)
		}
	}
	return missing
}
