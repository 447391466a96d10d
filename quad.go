package mathapp

// quad holds the width×length dimensions shared by Square and Rectangle.
type quad struct {
	width, length int
}

// Width returns the width.
func (q quad) Width() int { return q.width }

// Length returns the length.
func (q quad) Length() int { return q.length }

func (q quad) Area() float64 {
	return float64(q.width * q.length)
}

func (q quad) Perimeter() float64 {
	return float64((q.width + q.length) * 2)
}

// Square is a width×length quadrilateral named "Square".
// Width and length are not required to be equal.
type Square struct {
	quad
}

func (s *Square) Name() string { return "Square" }

func (s *Square) Kind() Kind { return KindSquare }

// Rectangle is a width×length quadrilateral named "Rectangle".
// It shares every formula with Square; only the name differs.
type Rectangle struct {
	quad
}

func (r *Rectangle) Name() string { return "Rectangle" }

func (r *Rectangle) Kind() Kind { return KindRectangle }
