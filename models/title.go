package models

import "github.com/go-gota/gota/dataframe"

// Column names of the title record table
const (
	ColType         = "type"
	ColTitle        = "title"
	ColDirector     = "director"
	ColCast         = "cast"
	ColCountry      = "country"
	ColDateAdded    = "date_added"
	ColRating       = "rating"
	ColDuration     = "duration"
	ColListedIn     = "listed_in"
	ColDateAddedRaw = "date_added_raw" // derived: source string of date_added
	ColYear         = "year"           // derived: calendar year of date_added
)

// Unknown is the sentinel written into missing categorical values
const Unknown = "unknown"

// DateLayout is how a parsed date_added is stored in the table
const DateLayout = "2006-01-02"

// RequiredColumns must be present in the input header
var RequiredColumns = []string{
	ColTitle, ColDirector, ColCast, ColCountry, ColDateAdded,
	ColDuration, ColRating, ColListedIn, ColType,
}

// FillColumns are the categorical columns whose nulls become Unknown
var FillColumns = []string{ColDirector, ColCast, ColCountry, ColRating}

// NullMarkers are the cell values read as missing, matching what
// spreadsheet-style CSV exports use for empty cells
var NullMarkers = []string{
	"", "NA", "N/A", "n/a", "NaN", "nan", "-NaN", "-nan",
	"NULL", "null", "None", "#N/A", "<NA>", "<nil>",
}

// ColumnNulls is the null count of a single column
type ColumnNulls struct {
	Column string
	Nulls  int
}

// DatasetSummary describes the shape and completeness of a table
type DatasetSummary struct {
	Rows    int
	Cols    int
	Columns []string
	Nulls   []ColumnNulls
	Head    dataframe.DataFrame
}

// CleanStats records what the cleaner changed
type CleanStats struct {
	RowsBefore    int
	RowsAfter     int
	Filled        map[string]int // column -> values replaced with Unknown
	UnparsedDates int            // rows kept with a present but unparseable date_added
}

// RowsDropped is the number of rows the cleaner removed
func (s CleanStats) RowsDropped() int {
	return s.RowsBefore - s.RowsAfter
}
