package mathapp

// Pi is the approximation used for every circle computation.
// Output compatibility depends on it being exactly 3.14, not math.Pi.
const Pi = 3.14

// Circle is a circle with an integer radius.
type Circle struct {
	radius int
}

// Radius returns the circle's radius.
func (c *Circle) Radius() int { return c.radius }

func (c *Circle) Name() string { return "Circle" }

func (c *Circle) Kind() Kind { return KindCircle }

// Area returns Pi·r².
func (c *Circle) Area() float64 {
	r := float64(c.radius)
	return Pi * r * r
}

// Perimeter returns 2·Pi·r.
func (c *Circle) Perimeter() float64 {
	return 2 * Pi * float64(c.radius)
}
