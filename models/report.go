package models

// ValueCount is one entry of a frequency table
type ValueCount struct {
	Value string
	Count int
}

// YearCount is the number of titles added in a year
type YearCount struct {
	Year  int
	Count int
}

// TitleSummary is a compact view of a single title record
type TitleSummary struct {
	Title     string
	Type      string
	DateAdded string // empty when unknown
	Year      *int
}

// Share is a category's fraction of the whole, Percent in [0,100]
type Share struct {
	Label   string
	Count   int
	Percent float64
}

// GroupSeries holds one group's counts aligned with CrossTab.Categories
type GroupSeries struct {
	Group  string
	Counts []int
}

// CrossTab counts rows per (category, group) pair
type CrossTab struct {
	Categories []string
	Series     []GroupSeries
}

// InsightReport holds computed analytics from the cleaned dataset
type InsightReport struct {
	TotalTitles int

	TypeCounts   []ValueCount
	TopGenres    []ValueCount
	TopCountries []ValueCount
	RatingCounts []ValueCount
	TopDirectors []ValueCount
	TopDurations []ValueCount

	TitleYears   []TitleSummary // first rows with their derived year
	TitlesByYear []YearCount
	OldestTitles []TitleSummary
	TypeShares   []Share

	// Chart inputs
	ChartCountries []ValueCount
	ChartGenres    []ValueCount
	RatingsByType  CrossTab
	YearsByType    CrossTab
}
