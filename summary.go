package mathapp

import (
	"fmt"
	"math"
	"sort"
)

// Summary describes the distribution of one metric over a collection.
type Summary struct {
	Metric Metric
	Count  int
	NaNs   int // shapes whose metric is NaN
	Total  float64
	Min    float64
	Max    float64
	Mean   float64
	Median float64
}

// Summarize computes a Summary of metric over the current collection.
//
// An empty collection yields a zero Summary with Count 0.
//
// NaN values (from degenerate dimensions) are carried into Total and Mean
// as-is, so one NaN makes both NaN. Min, Max and Median are taken over the
// non-NaN values only, and are NaN when every value is NaN.
func (m *Manager) Summarize(metric Metric) (Summary, error) {
	if !metric.valid() {
		return Summary{}, fmt.Errorf("summarize: %w: %v", ErrUnknownMetric, metric)
	}

	sum := Summary{Metric: metric}
	if len(m.shapes) == 0 {
		return sum, nil
	}

	values := make([]float64, 0, len(m.shapes))
	for _, s := range m.shapes {
		values = append(values, metric.of(s))
	}

	// sort.Float64s puts NaN first; the rest is ordered.
	sort.Float64s(values)

	for _, v := range values {
		sum.Total += v
		if math.IsNaN(v) {
			sum.NaNs++
		}
	}
	sum.Count = len(values)
	sum.Mean = sum.Total / float64(len(values))

	numbers := values[sum.NaNs:]
	if len(numbers) == 0 {
		sum.Min, sum.Max, sum.Median = math.NaN(), math.NaN(), math.NaN()
		return sum, nil
	}
	sum.Min = numbers[0]
	sum.Max = numbers[len(numbers)-1]
	sum.Median = percentile(numbers, 0.50)

	return sum, nil
}

// percentile returns the p-th percentile (0 ≤ p ≤ 1) of sorted values,
// interpolating between the two nearest ranks.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}

	pos := float64(n-1) * p
	lo := int(pos)
	if lo < 0 {
		lo = 0
	}
	if lo >= n-1 {
		return sorted[n-1]
	}

	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
