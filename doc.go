// Package mathapp computes area and perimeter for a closed set of shapes and
// keeps the shapes it creates in an ordered, in-memory collection.
//
// # Overview
//
// Four shape variants are supported:
//
//   - Circle:    integer radius, using Pi = 3.14
//   - Triangle:  three sides, or two legs plus a computed hypotenuse
//   - Square:    integer width × length
//   - Rectangle: integer width × length (same formulas as Square)
//
// Shapes are created through a Manager. Construction registers the shape in
// that Manager's collection; there is no way to build a registered shape
// without it.
//
// # Quick Start
//
//	m := mathapp.NewManager()
//
//	m.NewCircle(5)
//	m.NewRightTriangle(5, 4)
//	m.NewTriangle(5, 5, 5)
//	m.NewSquare(5, 5)
//	m.NewRectangle(10, 10)
//
//	out, err := m.SerializeJSON()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out)
//
//	// Largest perimeter first
//	if err := m.OrderBy(mathapp.MetricPerimeter, mathapp.Descending); err != nil {
//	    log.Fatal(err)
//	}
//
// # Triangle Classification
//
// A triangle is named once, from its three sides:
//
//	all three equal  → "Equilateral"   area = √3/4 · side1 · side2
//	any two equal    → "Isosceles"     area = Heron's formula
//	otherwise        → "Triangle"      area = side1 · side2 / 2
//
// The last formula assumes side1 and side2 are the legs of a right triangle.
//
// # Ordering
//
// OrderBy sorts ascending with a stable sort. Descending reverses the whole
// ascending result, so shapes with equal values appear in reverse input
// order.
//
// # Serialization
//
// Serialize writes an array of {name, area, perimeter} records as JSON or
// YAML. Dimensions are never validated: negative or degenerate input flows
// through the formulas, and NaN results are written as JSON null.
//
// # Testing
//
// AssertMetrics and AssertOrdered check shapes from tests:
//
//	func TestCircle(t *testing.T) {
//	    c := mathapp.NewManager().NewCircle(2)
//	    mathapp.AssertMetrics(t, c, "Circle", 12.56, 12.56, mathapp.DefaultTolerance)
//	}
package mathapp
