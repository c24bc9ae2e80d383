package pipeline

import (
	"math"

	"github.com/theirongolddev/lumina/internal/model"
)

// Projection defaults.
const (
	DefaultHorizonMonths = 60
	DefaultStepMonths    = 3
)

// DefaultMilestoneYears are the horizons shown next to a portfolio.
var DefaultMilestoneYears = []int{1, 5, 10}

// MonthlyRate converts an annual percentage rate into the equivalent
// effective monthly rate: (1 + annual/100)^(1/12) - 1.
func MonthlyRate(annualRate float64) float64 {
	return math.Pow(1+annualRate/100, 1.0/12) - 1
}

// FutureValue returns the accumulated value of contribution paid monthly for
// months months at annualRate, compounding monthly (ordinary annuity).
// A zero or non-finite monthly rate degrades to contribution*months, and
// months <= 0 yields 0.
func FutureValue(contribution, annualRate float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	linear := contribution * float64(months)

	r := MonthlyRate(annualRate)
	if r == 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return linear
	}

	v := contribution * (math.Pow(1+r, float64(months)) - 1) / r
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return linear
	}
	return v
}

// ProjectAt sums the projection of every investment after months months.
func ProjectAt(investments []model.Investment, months int) model.ProjectionPoint {
	p := model.ProjectionPoint{Month: max(0, months)}
	for _, inv := range investments {
		p.Value += FutureValue(inv.MonthlyContribution, inv.AnnualRate, months)
		if months > 0 {
			p.Invested += inv.MonthlyContribution * float64(months)
		}
	}
	p.Yield = p.Value - p.Invested
	return p
}

// ProjectSeries samples the portfolio every step months from month 0 up to
// and including horizon. step <= 0 is treated as 1 and horizon < 0 as 0.
func ProjectSeries(investments []model.Investment, horizon, step int) []model.ProjectionPoint {
	if step <= 0 {
		step = 1
	}
	if horizon < 0 {
		horizon = 0
	}

	points := make([]model.ProjectionPoint, 0, horizon/step+1)
	for m := 0; m <= horizon; m += step {
		points = append(points, ProjectAt(investments, m))
	}
	return points
}

// ProjectMilestones evaluates the portfolio after each number of years.
func ProjectMilestones(investments []model.Investment, years ...int) []model.ProjectionPoint {
	if len(years) == 0 {
		years = DefaultMilestoneYears
	}
	points := make([]model.ProjectionPoint, 0, len(years))
	for _, y := range years {
		points = append(points, ProjectAt(investments, y*12))
	}
	return points
}

// TotalMonthlyContribution sums the monthly contribution of every investment.
func TotalMonthlyContribution(investments []model.Investment) float64 {
	total := 0.0
	for _, inv := range investments {
		total += inv.MonthlyContribution
	}
	return total
}
