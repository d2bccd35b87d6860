package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/realwage/internal/calculator"
	"github.com/mmynk/realwage/internal/middleware"
	"github.com/mmynk/realwage/internal/models"
)

// AdjustRequest asks for amount earned in FromYear expressed in ToYear's money.
type AdjustRequest struct {
	Amount   float64 `json:"amount"`
	FromYear int     `json:"from_year"`
	ToYear   int     `json:"to_year"`
}

// AdjustResponse carries the target salary, rounded to cents.
type AdjustResponse struct {
	AdjustedAmount float64 `json:"adjusted_amount"`
}

// ErodedRequest asks what Amount, fixed in RefYear, is worth in ComparisonYear.
type ErodedRequest struct {
	Amount         float64 `json:"amount"`
	RefYear        int     `json:"ref_year"`
	ComparisonYear int     `json:"comparison_year"`
}

// ErodedResponse carries the eroded salary, rounded to cents.
type ErodedResponse struct {
	ErodedAmount float64 `json:"eroded_amount"`
}

// SalariesRequest is the user's salary table plus chart options.
type SalariesRequest struct {
	Salaries []models.SalaryPoint `json:"salaries"`

	// ReferenceYear switches to a single reference year when non-zero.
	ReferenceYear int `json:"reference_year,omitempty"`

	// EndYear overrides the service's default last year when non-zero.
	EndYear int `json:"end_year,omitempty"`
}

// SalariesResponse holds the per-year rows and the chart lines built from them.
type SalariesResponse struct {
	Rows   []models.AdjustedSalary  `json:"rows"`
	Series []calculator.ChartSeries `json:"series"`
}

// CPIRequest takes no parameters.
type CPIRequest struct{}

// CPIResponse lists the loaded CPI dataset.
type CPIResponse struct {
	Records []models.CPIRecord `json:"records"`
}

// InflationService exposes the inflation calculations over a fixed CPI table.
// It holds no per-user state; the table is shared read-only by all requests.
type InflationService struct {
	table   *calculator.CPITable
	endYear int
	metrics *middleware.Metrics
}

// Option configures an InflationService.
type Option func(*InflationService)

// WithEndYear sets the default last year of salary series. Zero means the last CPI year.
func WithEndYear(year int) Option {
	return func(s *InflationService) { s.endYear = year }
}

// WithMetrics records rejected calculations in m.
func WithMetrics(m *middleware.Metrics) Option {
	return func(s *InflationService) { s.metrics = m }
}

// NewInflationService creates a service over table.
func NewInflationService(table *calculator.CPITable, opts ...Option) *InflationService {
	s := &InflationService{table: table}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CPI returns the loaded dataset ordered by year.
func (s *InflationService) CPI(ctx context.Context, req *connect.Request[CPIRequest]) (*connect.Response[CPIResponse], error) {
	return connect.NewResponse(&CPIResponse{Records: s.table.Records()}), nil
}

// Adjust computes the target salary.
func (s *InflationService) Adjust(ctx context.Context, req *connect.Request[AdjustRequest]) (*connect.Response[AdjustResponse], error) {
	adjusted, err := calculator.AdjustSalary(req.Msg.Amount, req.Msg.FromYear, req.Msg.ToYear, s.table)
	if err != nil {
		return nil, s.reject(err)
	}
	slog.DebugContext(ctx, "Adjusted salary",
		"amount", req.Msg.Amount,
		"from_year", req.Msg.FromYear,
		"to_year", req.Msg.ToYear,
		"adjusted", adjusted,
	)
	return connect.NewResponse(&AdjustResponse{AdjustedAmount: calculator.RoundCents(adjusted)}), nil
}

// Eroded computes the eroded salary.
func (s *InflationService) Eroded(ctx context.Context, req *connect.Request[ErodedRequest]) (*connect.Response[ErodedResponse], error) {
	eroded, err := calculator.ErodedValue(req.Msg.Amount, req.Msg.RefYear, req.Msg.ComparisonYear, s.table)
	if err != nil {
		return nil, s.reject(err)
	}
	slog.DebugContext(ctx, "Eroded salary",
		"amount", req.Msg.Amount,
		"ref_year", req.Msg.RefYear,
		"comparison_year", req.Msg.ComparisonYear,
		"eroded", eroded,
	)
	return connect.NewResponse(&ErodedResponse{ErodedAmount: calculator.RoundCents(eroded)}), nil
}

// Salaries builds the salary series and its chart lines.
func (s *InflationService) Salaries(ctx context.Context, req *connect.Request[SalariesRequest]) (*connect.Response[SalariesResponse], error) {
	endYear := req.Msg.EndYear
	if endYear == 0 {
		endYear = s.endYear
	}

	rows, err := calculator.AdjustedSalaries(req.Msg.Salaries, s.table, calculator.SeriesOptions{
		ReferenceYear: req.Msg.ReferenceYear,
		EndYear:       endYear,
	})
	if err != nil {
		return nil, s.reject(err)
	}

	series := calculator.BuildChartSeries(rows)
	for i := range rows {
		rows[i].ErodedSalary = calculator.RoundCents(rows[i].ErodedSalary)
		rows[i].TargetSalary = calculator.RoundCents(rows[i].TargetSalary)
	}
	slog.DebugContext(ctx, "Built salary series",
		"salaries", len(req.Msg.Salaries),
		"rows", len(rows),
		"reference_year", req.Msg.ReferenceYear,
	)

	return connect.NewResponse(&SalariesResponse{Rows: rows, Series: series}), nil
}

// reject is the single place a failed calculation is counted. Requests that
// never decode are refused by Connect before reaching the service and only
// show up in the per-route HTTP status counts.
func (s *InflationService) reject(err error) *connect.Error {
	code, _ := Classify(err)
	s.metrics.CalculationFailed(string(code))
	return connectError(err)
}
