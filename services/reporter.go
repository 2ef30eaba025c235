package services

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"netflix-analysis/models"
)

const width = 55

// Reporter prints dataset summaries and insight reports as terminal text
type Reporter struct {
	w io.Writer
	p *message.Printer
}

// NewReporter creates a Reporter writing to w
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w, p: message.NewPrinter(language.English)}
}

// PrintDatasetSummary prints shape, columns, null counts and the first rows
func (r *Reporter) PrintDatasetSummary(heading string, s models.DatasetSummary) {
	thin := strings.Repeat("─", width)

	r.banner(heading)

	if s.Head.Nrow() > 0 {
		fmt.Fprintf(r.w, "\n FIRST %d ROWS\n%s\n", s.Head.Nrow(), thin)
		fmt.Fprintln(r.w, s.Head)
	}

	fmt.Fprintf(r.w, "\n SHAPE\n%s\n", thin)
	r.p.Fprintf(r.w, "  Rows    : %d\n", s.Rows)
	r.p.Fprintf(r.w, "  Columns : %d\n", s.Cols)

	fmt.Fprintf(r.w, "\n MISSING VALUES PER COLUMN\n%s\n", thin)
	for _, n := range s.Nulls {
		r.p.Fprintf(r.w, "  %-25s %8d\n", n.Column+":", n.Nulls)
	}

	fmt.Fprintf(r.w, "\n COLUMNS\n%s\n", thin)
	fmt.Fprintf(r.w, "  %s\n", strings.Join(s.Columns, ", "))
}

// PrintInsightReport formats and prints the insight report
func (r *Reporter) PrintInsightReport(report *models.InsightReport) {
	border := strings.Repeat("═", width)

	r.banner("TITLE CATALOGUE INSIGHTS")
	r.p.Fprintf(r.w, "\n  Total titles after cleaning : %d\n", report.TotalTitles)

	r.counts("TYPE COUNT (MOVIE VS TV SHOW)", report.TypeCounts)
	r.shares("TYPE SHARE", report.TypeShares)
	r.counts("TOP GENRES", report.TopGenres)
	r.counts("TOP COUNTRIES", report.TopCountries)
	r.counts("RATING DISTRIBUTION", report.RatingCounts)
	r.counts("TOP DIRECTORS", report.TopDirectors)
	r.counts("DURATION TYPES", report.TopDurations)
	r.titles("TITLE WITH YEAR OF ADDITION", report.TitleYears)
	r.years("CONTENT COUNT BY YEAR", report.TitlesByYear)
	r.titles("OLDEST CONTENT", report.OldestTitles)

	fmt.Fprintf(r.w, "\n%s\n\n", border)
}

func (r *Reporter) banner(heading string) {
	border := strings.Repeat("═", width)
	fmt.Fprintf(r.w, "\n╔%s╗\n", border)
	fmt.Fprintf(r.w, "║%s║\n", center(heading, width))
	fmt.Fprintf(r.w, "╚%s╝\n", border)
}

func (r *Reporter) section(title string) {
	fmt.Fprintf(r.w, "\n %s\n%s\n", title, strings.Repeat("─", width))
}

func (r *Reporter) counts(title string, counts []models.ValueCount) {
	r.section(title)
	if len(counts) == 0 {
		fmt.Fprintln(r.w, "  (none)")
		return
	}
	for _, c := range counts {
		r.p.Fprintf(r.w, "  %-40s %8d\n", truncate(c.Value, 40), c.Count)
	}
}

func (r *Reporter) shares(title string, shares []models.Share) {
	r.section(title)
	for _, s := range shares {
		r.p.Fprintf(r.w, "  %-25s %8d  %5.1f%%\n", s.Label+":", s.Count, s.Percent)
	}
}

func (r *Reporter) years(title string, counts []models.YearCount) {
	r.section(title)
	for _, c := range counts {
		r.p.Fprintf(r.w, "  %-8s %8d\n", strconv.Itoa(c.Year), c.Count)
	}
}

func (r *Reporter) titles(title string, rows []models.TitleSummary) {
	r.section(title)
	for i, t := range rows {
		fmt.Fprintf(r.w, "  %d. %-35s %-8s %-10s %s\n",
			i+1, truncate(t.Title, 35), t.Type, orDash(t.DateAdded), formatYear(t.Year))
	}
}

func formatYear(y *int) string {
	if y == nil {
		return "-"
	}
	return strconv.Itoa(*y)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func center(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}
	pad := (width - len(runes)) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-len(runes)-pad)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
