package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"netflix-analysis/models"
	"netflix-analysis/utils"
)

// nan is how gota spells a missing value when building a series from strings
const nan = "NaN"

var dateLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	models.DateLayout,
	"2006-01-02 15:04:05",
	time.RFC3339,
	"1/2/2006",
	"02-Jan-06",
}

// DataCleaner applies the missing-value policy to a title table
type DataCleaner struct {
	logger *utils.Logger
}

// NewDataCleaner creates a new DataCleaner
func NewDataCleaner(logger *utils.Logger) *DataCleaner {
	return &DataCleaner{logger: logger}
}

// Clean returns a cleaned copy of df. Steps, in order:
//
//  1. nulls in director, cast, country and rating become "unknown"
//  2. rows with a null date_added or duration are dropped
//  3. date_added is parsed; unparseable values become null
//  4. year is derived from date_added
//
// The drop in step 2 looks at the source string, so a row whose date_added is
// present but unparseable is kept and ends up with null date_added and year.
// The source string is carried in date_added_raw, which also makes Clean
// idempotent.
func (c *DataCleaner) Clean(df dataframe.DataFrame) (dataframe.DataFrame, models.CleanStats) {
	stats := models.CleanStats{
		RowsBefore: df.Nrow(),
		Filled:     make(map[string]int, len(models.FillColumns)),
	}
	df = df.Copy()

	for _, col := range models.FillColumns {
		filled, n := fillNulls(df.Col(col), models.Unknown)
		df = df.Mutate(filled)
		stats.Filled[col] = n
	}

	if !hasColumn(df, models.ColDateAddedRaw) {
		raw := df.Col(models.ColDateAdded).Copy()
		raw.Name = models.ColDateAddedRaw
		df = df.Mutate(raw)
	}

	df = df.Subset(presentRows(df.Col(models.ColDateAddedRaw), df.Col(models.ColDuration)))

	dates, years, unparsed := parseDates(df.Col(models.ColDateAddedRaw))
	df = df.Mutate(dates).Mutate(years)

	stats.RowsAfter = df.Nrow()
	stats.UnparsedDates = unparsed

	c.logger.Info("Cleaned table: %d -> %d rows (%d dropped)", stats.RowsBefore, stats.RowsAfter, stats.RowsDropped())
	for _, col := range models.FillColumns {
		if n := stats.Filled[col]; n > 0 {
			c.logger.Debug("Filled %d missing %s values with %q", n, col, models.Unknown)
		}
	}
	if unparsed > 0 {
		c.logger.Warn("%d rows kept with an unparseable date_added; their date_added and year are null", unparsed)
	}
	return df, stats
}

// ParseDate parses a date_added value in any of the accepted layouts
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// fillNulls replaces NaN elements with value and reports how many it replaced
func fillNulls(s series.Series, value string) (series.Series, int) {
	out := make([]string, s.Len())
	filled := 0
	for i := range out {
		el := s.Elem(i)
		if el.IsNA() {
			out[i] = value
			filled++
			continue
		}
		out[i] = el.String()
	}
	return series.New(out, series.String, s.Name), filled
}

// presentRows returns the indexes where every given series is non-null
func presentRows(cols ...series.Series) []int {
	if len(cols) == 0 {
		return nil
	}
	keep := make([]int, 0, cols[0].Len())
rows:
	for i := 0; i < cols[0].Len(); i++ {
		for _, s := range cols {
			if s.Elem(i).IsNA() {
				continue rows
			}
		}
		keep = append(keep, i)
	}
	return keep
}

// parseDates builds the date_added and year series from the source strings
func parseDates(raw series.Series) (series.Series, series.Series, int) {
	dates := make([]string, raw.Len())
	years := make([]string, raw.Len())
	unparsed := 0
	for i := range dates {
		dates[i], years[i] = nan, nan
		el := raw.Elem(i)
		if el.IsNA() {
			continue
		}
		t, ok := ParseDate(el.String())
		if !ok {
			unparsed++
			continue
		}
		dates[i] = t.Format(models.DateLayout)
		years[i] = strconv.Itoa(t.Year())
	}
	return series.New(dates, series.String, models.ColDateAdded),
		series.New(years, series.Int, models.ColYear),
		unparsed
}
