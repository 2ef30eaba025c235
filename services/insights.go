package services

import (
	"sort"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"netflix-analysis/models"
	"netflix-analysis/utils"
)

// InsightOptions sizes the tables in the insight report
type InsightOptions struct {
	TopN       int // rows in the printed top-N tables
	ChartTopN  int // bars in the country and genre charts
	SampleRows int // rows in the title/year sample and the oldest-titles table
}

// InsightService computes analytics from the cleaned dataset
type InsightService struct {
	logger *utils.Logger
	opts   InsightOptions
}

// NewInsightService creates a new InsightService
func NewInsightService(logger *utils.Logger, opts InsightOptions) *InsightService {
	if opts.TopN <= 0 {
		opts.TopN = 5
	}
	if opts.ChartTopN <= 0 {
		opts.ChartTopN = 10
	}
	if opts.SampleRows <= 0 {
		opts.SampleRows = 5
	}
	return &InsightService{logger: logger, opts: opts}
}

// Generate computes all insights from the cleaned table. df is only read.
func (s *InsightService) Generate(df dataframe.DataFrame) *models.InsightReport {
	report := &models.InsightReport{TotalTitles: df.Nrow()}
	if report.TotalTitles == 0 {
		s.logger.Warn("No titles to generate insights from")
	}

	types := ValueCounts(df.Col(models.ColType))
	genres := ValueCounts(df.Col(models.ColListedIn))
	countries := ValueCounts(df.Col(models.ColCountry))
	ratings := ValueCounts(df.Col(models.ColRating))

	report.TypeCounts = types
	report.TopGenres = Top(genres, s.opts.TopN)
	report.TopCountries = Top(countries, s.opts.TopN)
	report.RatingCounts = ratings
	report.TopDirectors = Top(ValueCounts(df.Col(models.ColDirector)), s.opts.TopN)
	report.TopDurations = Top(ValueCounts(df.Col(models.ColDuration)), s.opts.TopN)

	rows := newTitleRows(df)
	report.TitleYears = rows.head(s.opts.SampleRows)
	report.TitlesByYear = rows.countByYear()
	report.OldestTitles = rows.oldest(s.opts.SampleRows)
	report.TypeShares = Shares(types)

	report.ChartCountries = Top(countries, s.opts.ChartTopN)
	report.ChartGenres = Top(genres, s.opts.ChartTopN)
	report.RatingsByType = CrossTabulate(df.Col(models.ColRating), df.Col(models.ColType), values(ratings))
	report.YearsByType = CrossTabulate(df.Col(models.ColYear), df.Col(models.ColType), rows.yearLabels())

	s.logger.Info("Generated insights for %d titles across %d years", report.TotalTitles, len(report.TitlesByYear))
	return report
}

// ValueCounts counts each non-null value, most frequent first. Ties keep the
// order in which the values first appear.
func ValueCounts(s series.Series) []models.ValueCount {
	index := make(map[string]int)
	var counts []models.ValueCount
	for i := 0; i < s.Len(); i++ {
		el := s.Elem(i)
		if el.IsNA() {
			continue
		}
		v := el.String()
		pos, ok := index[v]
		if !ok {
			pos = len(counts)
			index[v] = pos
			counts = append(counts, models.ValueCount{Value: v})
		}
		counts[pos].Count++
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// Top returns at most n leading entries of counts
func Top(counts []models.ValueCount, n int) []models.ValueCount {
	if n > len(counts) {
		n = len(counts)
	}
	out := make([]models.ValueCount, n)
	copy(out, counts[:n])
	return out
}

// Shares converts counts into percentages of their total
func Shares(counts []models.ValueCount) []models.Share {
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	shares := make([]models.Share, 0, len(counts))
	for _, c := range counts {
		share := models.Share{Label: c.Value, Count: c.Count}
		if total > 0 {
			share.Percent = float64(c.Count) * 100 / float64(total)
		}
		shares = append(shares, share)
	}
	return shares
}

// CrossTabulate counts rows per (category, group). Categories are taken in
// the given order; groups in order of first appearance. Rows with a null
// category or group, or a category not listed, are ignored.
func CrossTabulate(category, group series.Series, categories []string) models.CrossTab {
	pos := make(map[string]int, len(categories))
	for i, c := range categories {
		pos[c] = i
	}

	tab := models.CrossTab{Categories: categories}
	groupIdx := make(map[string]int)
	for i := 0; i < category.Len(); i++ {
		c, g := category.Elem(i), group.Elem(i)
		if c.IsNA() || g.IsNA() {
			continue
		}
		ci, ok := pos[c.String()]
		if !ok {
			continue
		}
		gi, ok := groupIdx[g.String()]
		if !ok {
			gi = len(tab.Series)
			groupIdx[g.String()] = gi
			tab.Series = append(tab.Series, models.GroupSeries{
				Group:  g.String(),
				Counts: make([]int, len(categories)),
			})
		}
		tab.Series[gi].Counts[ci]++
	}
	return tab
}

func values(counts []models.ValueCount) []string {
	out := make([]string, len(counts))
	for i, c := range counts {
		out[i] = c.Value
	}
	return out
}


// titleRows is a read-only view over the columns the year tables need
type titleRows struct {
	title, kind, date, year series.Series
}

func newTitleRows(df dataframe.DataFrame) titleRows {
	return titleRows{
		title: df.Col(models.ColTitle),
		kind:  df.Col(models.ColType),
		date:  df.Col(models.ColDateAdded),
		year:  df.Col(models.ColYear),
	}
}

func (r titleRows) len() int {
	return r.title.Len()
}

func (r titleRows) yearAt(i int) (int, bool) {
	el := r.year.Elem(i)
	if el.IsNA() {
		return 0, false
	}
	y, err := el.Int()
	if err != nil {
		return 0, false
	}
	return y, true
}

func (r titleRows) summary(i int) models.TitleSummary {
	ts := models.TitleSummary{
		Title: stringAt(r.title, i),
		Type:  stringAt(r.kind, i),
	}
	ts.DateAdded = stringAt(r.date, i)
	if y, ok := r.yearAt(i); ok {
		ts.Year = &y
	}
	return ts
}

func (r titleRows) head(n int) []models.TitleSummary {
	n = min(n, r.len())
	out := make([]models.TitleSummary, n)
	for i := range out {
		out[i] = r.summary(i)
	}
	return out
}

// countByYear counts non-null titles per known year, ascending by year
func (r titleRows) countByYear() []models.YearCount {
	byYear := make(map[int]int)
	for i := 0; i < r.len(); i++ {
		y, ok := r.yearAt(i)
		if !ok || r.title.Elem(i).IsNA() {
			continue
		}
		byYear[y]++
	}
	counts := make([]models.YearCount, 0, len(byYear))
	for y, n := range byYear {
		counts = append(counts, models.YearCount{Year: y, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Year < counts[j].Year
	})
	return counts
}

// yearLabels lists every known year once, ascending, whatever the title
func (r titleRows) yearLabels() []string {
	seen := make(map[int]bool)
	var years []int
	for i := 0; i < r.len(); i++ {
		if y, ok := r.yearAt(i); ok && !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	sort.Ints(years)
	out := make([]string, len(years))
	for i, y := range years {
		out[i] = strconv.Itoa(y)
	}
	return out
}

// oldest returns the n rows with the smallest year; unknown years sort last
// and ties keep table order
func (r titleRows) oldest(n int) []models.TitleSummary {
	idx := make([]int, r.len())
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ya, okA := r.yearAt(idx[a])
		yb, okB := r.yearAt(idx[b])
		if okA != okB {
			return okA
		}
		return okA && ya < yb
	})

	n = min(n, len(idx))
	out := make([]models.TitleSummary, n)
	for i := range out {
		out[i] = r.summary(idx[i])
	}
	return out
}

func stringAt(s series.Series, i int) string {
	if s.Err != nil || i >= s.Len() {
		return ""
	}
	el := s.Elem(i)
	if el.IsNA() {
		return ""
	}
	return el.String()
}
