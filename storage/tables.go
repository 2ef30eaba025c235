package storage

import (
	"strconv"

	"netflix-analysis/models"
)

// Table is a flat, named view of one aggregate in the report
type Table struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// ReportTables flattens the report into the tables every sink writes
func ReportTables(report *models.InsightReport) []Table {
	return []Table{
		countTable("type_counts", "type", report.TypeCounts),
		countTable("top_genres", "listed_in", report.TopGenres),
		countTable("top_countries", "country", report.TopCountries),
		countTable("rating_counts", "rating", report.RatingCounts),
		countTable("top_directors", "director", report.TopDirectors),
		countTable("top_durations", "duration", report.TopDurations),
		yearTable(report.TitlesByYear),
		shareTable(report.TypeShares),
		titleTable("oldest_titles", report.OldestTitles),
	}
}

func countTable(name, column string, counts []models.ValueCount) Table {
	t := Table{Name: name, Headers: []string{column, "count"}}
	for _, c := range counts {
		t.Rows = append(t.Rows, []string{c.Value, strconv.Itoa(c.Count)})
	}
	return t
}

func yearTable(counts []models.YearCount) Table {
	t := Table{Name: "titles_by_year", Headers: []string{"year", "count"}}
	for _, c := range counts {
		t.Rows = append(t.Rows, []string{strconv.Itoa(c.Year), strconv.Itoa(c.Count)})
	}
	return t
}

func shareTable(shares []models.Share) Table {
	t := Table{Name: "type_share", Headers: []string{"type", "count", "percent"}}
	for _, s := range shares {
		t.Rows = append(t.Rows, []string{
			s.Label,
			strconv.Itoa(s.Count),
			strconv.FormatFloat(s.Percent, 'f', 1, 64),
		})
	}
	return t
}

func titleTable(name string, titles []models.TitleSummary) Table {
	t := Table{Name: name, Headers: []string{"title", "type", "date_added", "year"}}
	for _, ts := range titles {
		year := ""
		if ts.Year != nil {
			year = strconv.Itoa(*ts.Year)
		}
		t.Rows = append(t.Rows, []string{ts.Title, ts.Type, ts.DateAdded, year})
	}
	return t
}
