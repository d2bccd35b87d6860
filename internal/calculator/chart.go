package calculator

import "github.com/mmynk/realwage/internal/models"

// Series names, in the order they are charted.
const (
	SeriesSalary = "Salary"
	SeriesEroded = "Eroded Salary"
	SeriesTarget = "Target Salary"
)

var seriesColors = map[string]string{
	SeriesSalary: "#468FE6",
	SeriesEroded: "#E64662",
	SeriesTarget: "#2CDC15",
}

// ChartPoint is a single value on a chart line.
type ChartPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// ChartSeries is one named line of the salary chart.
type ChartSeries struct {
	Name   string       `json:"name"`
	Color  string       `json:"color"`
	Points []ChartPoint `json:"points"`
}

// BuildChartSeries converts rows into the three chart lines, rounded to cents.
func BuildChartSeries(rows []models.AdjustedSalary) []ChartSeries {
	names := []string{SeriesSalary, SeriesEroded, SeriesTarget}
	series := make([]ChartSeries, len(names))
	for i, name := range names {
		series[i] = ChartSeries{
			Name:   name,
			Color:  seriesColors[name],
			Points: make([]ChartPoint, 0, len(rows)),
		}
	}

	for _, r := range rows {
		values := [...]float64{r.Salary, r.ErodedSalary, r.TargetSalary}
		for i, v := range values {
			series[i].Points = append(series[i].Points, ChartPoint{Year: r.Year, Value: RoundCents(v)})
		}
	}

	return series
}
