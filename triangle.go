package mathapp

import "math"

// Triangle names, assigned once at construction.
const (
	NameTriangle    = "Triangle"
	NameEquilateral = "Equilateral"
	NameIsosceles   = "Isosceles"
)

// Triangle is a triangle described by its three side lengths.
//
// The area formula is chosen by classification:
//   - Equilateral: √3/4 · side1 · side2
//   - Isosceles:   Heron's formula, s = perimeter/2
//   - otherwise:   side1 · side2 / 2 (treats side1 and side2 as the legs
//     of a right triangle)
//
// The last case is only exact for right triangles. Scalene triangles that
// are not right-angled get the leg-product value anyway.
type Triangle struct {
	side1, side2, side3 float64
	name                string
}

func newTriangle(side1, side2, side3 float64) *Triangle {
	t := &Triangle{side1: side1, side2: side2, side3: side3, name: NameTriangle}
	switch {
	case side1 == side2 && side2 == side3:
		t.name = NameEquilateral
	case side1 == side2 || side1 == side3 || side2 == side3:
		t.name = NameIsosceles
	}
	return t
}

// hypotenuse returns √(a² + b²).
func hypotenuse(a, b float64) float64 {
	return math.Sqrt(a*a + b*b)
}

// Sides returns the three side lengths in construction order.
func (t *Triangle) Sides() (float64, float64, float64) {
	return t.side1, t.side2, t.side3
}

func (t *Triangle) Name() string { return t.name }

func (t *Triangle) Kind() Kind { return KindTriangle }

func (t *Triangle) Area() float64 {
	switch t.name {
	case NameEquilateral:
		return math.Sqrt(3) / 4 * t.side1 * t.side2
	case NameIsosceles:
		s := t.semiPerimeter()
		return math.Sqrt(s * (s - t.side1) * (s - t.side2) * (s - t.side3))
	default:
		return t.side1 * t.side2 / 2
	}
}

func (t *Triangle) Perimeter() float64 {
	return t.side1 + t.side2 + t.side3
}

func (t *Triangle) semiPerimeter() float64 {
	return t.Perimeter() / 2
}
