package analytics

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// TrendPoint is a cash-flow point annotated with period-over-period
// growth of the net figure, as a percentage.
type TrendPoint struct {
	MonthlyPoint
	Growth decimal.Decimal `json:"growth"`
}

// Growth computes period-over-period growth as a percentage:
// (current − previous) / previous × 100. When the previous period is
// zero the growth is reported as zero. This is a deliberate policy,
// not an approximation: a NaN or infinity would poison every chart
// downstream, and "no previous data" reads naturally as flat.
func Growth(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred)
}

// Trend annotates a cash-flow series with month-over-month net growth.
// The first point has zero growth (no previous period).
func Trend(points []MonthlyPoint) []TrendPoint {
	out := make([]TrendPoint, len(points))
	for i, p := range points {
		out[i] = TrendPoint{MonthlyPoint: p}
		if i > 0 {
			out[i].Growth = Growth(p.Net, points[i-1].Net)
		} else {
			out[i].Growth = decimal.Zero
		}
	}
	return out
}
