package plots

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"netflix-analysis/models"
)

var (
	pastel   = []string{"#a1c9f4", "#ffb482", "#8de5a1", "#ff9f9b", "#d0bbff", "#debb9b"}
	set2     = []string{"#66c2a5", "#fc8d62", "#8da0cb", "#e78ac3", "#a6d854", "#ffd92f"}
	coolwarm = []string{"#3b4cc0", "#b40426", "#8db0fe", "#f49a7b"}
	pieFill  = []string{"lightcoral", "skyblue"}
)

// pieLabel shows each slice with its share to one decimal place
var pieLabel = opts.FuncOpts(`function (p) { return p.name + ': ' + p.percent.toFixed(1) + '%'; }`)

// page is anything go-echarts can write as a standalone HTML document
type page interface {
	Render(w io.Writer) error
}

// Chart is one named visualization
type Chart struct {
	Name  string
	Title string
	page  page
}

// Options controls chart appearance
type Options struct {
	AssetsHost string
	Width      string
	Height     string
}

// Build assembles the exploratory charts from the report
func Build(report *models.InsightReport, o Options) []Chart {
	if o.Width == "" {
		o.Width = "1200px"
	}
	if o.Height == "" {
		o.Height = "600px"
	}

	return []Chart{
		typeCounts(report, o),
		ratingDistribution(report, o),
		contentByYear(report, o),
		topCounts("top_countries", "Top 10 Countries by Number of Titles", "Country", "lightseagreen", report.ChartCountries, o),
		topCounts("top_genres", "Top 10 Genres", "Genre", "mediumorchid", report.ChartGenres, o),
		typeShare(report, o),
	}
}

func typeCounts(report *models.InsightReport, o Options) Chart {
	const title = "Count of Movies vs TV Shows"
	bar := newBar(title, "Type", "Count", false, o)

	x := make([]string, len(report.TypeCounts))
	data := make([]opts.BarData, len(report.TypeCounts))
	for i, c := range report.TypeCounts {
		x[i] = c.Value
		data[i] = opts.BarData{
			Name:      c.Value,
			Value:     c.Count,
			ItemStyle: &opts.ItemStyle{Color: pastel[i%len(pastel)]},
		}
	}
	bar.SetXAxis(x).AddSeries("Count", data)
	return Chart{Name: "type_counts", Title: title, page: bar}
}

func ratingDistribution(report *models.InsightReport, o Options) Chart {
	const title = "Distribution of Content Ratings"
	bar := newBar(title, "Rating", "Count", true, o)
	addCrossTab(bar, report.RatingsByType, set2)
	return Chart{Name: "rating_distribution", Title: title, page: bar}
}

func contentByYear(report *models.InsightReport, o Options) Chart {
	const title = "Content Added Each Year (Movies vs TV Shows)"
	bar := newBar(title, "Year", "Count", true, o)
	addCrossTab(bar, report.YearsByType, coolwarm)
	return Chart{Name: "content_by_year", Title: title, page: bar}
}

func topCounts(name, title, xName, color string, counts []models.ValueCount, o Options) Chart {
	bar := newBar(title, xName, "Number of Titles", true, o)

	x := make([]string, len(counts))
	data := make([]opts.BarData, len(counts))
	for i, c := range counts {
		x[i] = c.Value
		data[i] = opts.BarData{Name: c.Value, Value: c.Count}
	}
	bar.SetXAxis(x).AddSeries(xName, data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
	)
	return Chart{Name: name, Title: title, page: bar}
}

func typeShare(report *models.InsightReport, o Options) Chart {
	const title = "Movie vs TV Show - Percentage"
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts(title, o)),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
	)

	data := make([]opts.PieData, len(report.TypeShares))
	for i, s := range report.TypeShares {
		data[i] = opts.PieData{
			Name:      s.Label,
			Value:     s.Count,
			ItemStyle: &opts.ItemStyle{Color: pieFill[i%len(pieFill)]},
		}
	}
	pie.AddSeries("type", data,
		charts.WithLabelOpts(opts.Label{Show: true, Formatter: pieLabel}),
	)
	return Chart{Name: "type_share", Title: title, page: pie}
}

func newBar(title, xName, yName string, rotate bool, o Options) *charts.Bar {
	xAxis := opts.XAxis{Name: xName}
	if rotate {
		xAxis.AxisLabel = &opts.AxisLabel{Show: true, Rotate: 45}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts(title, o)),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(xAxis),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
	)
	return bar
}

// addCrossTab adds one bar series per group, hue-style
func addCrossTab(bar *charts.Bar, tab models.CrossTab, palette []string) {
	bar.SetXAxis(tab.Categories)
	for i, s := range tab.Series {
		data := make([]opts.BarData, len(s.Counts))
		for j, n := range s.Counts {
			data[j] = opts.BarData{Value: n}
		}
		bar.AddSeries(s.Group, data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: palette[i%len(palette)]}),
		)
	}
}

func initOpts(title string, o Options) opts.Initialization {
	return opts.Initialization{
		PageTitle:  title,
		Width:      o.Width,
		Height:     o.Height,
		AssetsHost: o.AssetsHost,
	}
}
