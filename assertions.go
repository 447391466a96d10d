package mathapp

import (
	"cmp"
	"math"
	"testing"
)

// DefaultTolerance is the absolute tolerance used when comparing computed
// metrics against expected values.
const DefaultTolerance = 1e-9

// AssertMetrics verifies a shape's name, area and perimeter.
//
// Area and perimeter are compared with an absolute tolerance, since the
// formulas go through floating point (and Pi = 3.14 for circles).
func AssertMetrics(t testing.TB, s Shape, name string, area, perimeter, tol float64) {
	t.Helper()

	if s.Name() != name {
		t.Errorf("Name: expected %q, got %q", name, s.Name())
	}
	if !approxEqual(s.Area(), area, tol) {
		t.Errorf("%s area: expected %.6f, got %.6f (tolerance %g)", s.Name(), area, s.Area(), tol)
	}
	if !approxEqual(s.Perimeter(), perimeter, tol) {
		t.Errorf("%s perimeter: expected %.6f, got %.6f (tolerance %g)", s.Name(), perimeter, s.Perimeter(), tol)
	}
}

// AssertOrdered verifies shapes are sorted by metric in the given
// direction: non-decreasing for Ascending, non-increasing for Descending.
// NaN ranks below every number, matching OrderBy.
func AssertOrdered(t testing.TB, shapes []Shape, metric Metric, dir Direction) {
	t.Helper()

	if !metric.valid() {
		t.Fatalf("AssertOrdered: unknown metric %v", metric)
	}
	if dir != Ascending && dir != Descending {
		t.Fatalf("AssertOrdered: unknown direction %v", dir)
	}

	for i := 1; i < len(shapes); i++ {
		prev := metric.of(shapes[i-1])
		cur := metric.of(shapes[i])

		c := cmp.Compare(prev, cur)
		if (dir == Ascending && c > 0) || (dir == Descending && c < 0) {
			t.Errorf("Not ordered %v by %v at index %d: %s=%.6f then %s=%.6f",
				dir, metric, i, shapes[i-1].Name(), prev, shapes[i].Name(), cur)
		}
	}
}

// approxEqual treats two NaNs as equal so degenerate shapes can be asserted.
func approxEqual(got, want, tol float64) bool {
	if math.IsNaN(want) {
		return math.IsNaN(got)
	}
	return math.Abs(got-want) <= tol
}
