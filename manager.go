package mathapp

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
)

var (
	ErrUnknownKind      = errors.New("unknown shape kind")
	ErrUnknownMetric    = errors.New("unknown metric")
	ErrUnknownDirection = errors.New("unknown direction")
	ErrUnknownFormat    = errors.New("unknown format")
)

// Metric selects the value a collection is ordered or summarized by.
type Metric int

const (
	MetricArea Metric = iota // default
	MetricPerimeter
)

func (m Metric) String() string {
	switch m {
	case MetricArea:
		return "area"
	case MetricPerimeter:
		return "perimeter"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

func (m Metric) valid() bool {
	return m == MetricArea || m == MetricPerimeter
}

// of returns the metric's value for s. m must be valid.
func (m Metric) of(s Shape) float64 {
	if m == MetricPerimeter {
		return s.Perimeter()
	}
	return s.Area()
}

// ParseMetric parses "area" or "perimeter", ignoring case.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "area":
		return MetricArea, nil
	case "perimeter":
		return MetricPerimeter, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, s)
	}
}

// Direction is the sort direction used by OrderBy.
type Direction int

const (
	Ascending Direction = iota // default
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts "asc"/"ascending" and "desc"/"descending".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
	}
}

// Manager owns an ordered collection of shapes.
//
// Every shape is created through one of the Manager's New* methods and is
// appended to the collection as part of construction. Shapes are never
// removed; the collection can only be queried or reordered as a whole.
//
// Each Manager has its own collection. A Manager is not safe for concurrent
// use.
type Manager struct {
	shapes []Shape
	logger *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for registration and ordering events.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewManager creates a Manager with an empty collection.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		shapes: make([]Shape, 0),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewCircle creates a circle and adds it to the collection.
func (m *Manager) NewCircle(radius int) *Circle {
	c := &Circle{radius: radius}
	m.register(c)
	return c
}

// NewTriangle creates a triangle from three explicit sides and adds it to
// the collection.
func (m *Manager) NewTriangle(side1, side2, side3 float64) *Triangle {
	t := newTriangle(side1, side2, side3)
	m.register(t)
	return t
}

// NewRightTriangle creates a triangle whose third side is the hypotenuse of
// side1 and side2, and adds it to the collection.
func (m *Manager) NewRightTriangle(side1, side2 float64) *Triangle {
	t := newTriangle(side1, side2, hypotenuse(side1, side2))
	m.register(t)
	return t
}

// NewSquare creates a square and adds it to the collection.
func (m *Manager) NewSquare(width, length int) *Square {
	s := &Square{quad{width: width, length: length}}
	m.register(s)
	return s
}

// NewRectangle creates a rectangle and adds it to the collection.
func (m *Manager) NewRectangle(width, length int) *Rectangle {
	r := &Rectangle{quad{width: width, length: length}}
	m.register(r)
	return r
}

func (m *Manager) register(s Shape) {
	m.shapes = append(m.shapes, s)
	m.logger.Debug("shape registered",
		"kind", s.Kind().String(),
		"name", s.Name(),
		"count", len(m.shapes))
}

// Count returns the number of shapes in the collection.
func (m *Manager) Count() int {
	return len(m.shapes)
}

// Shapes returns a copy of the collection in its current order.
func (m *Manager) Shapes() []Shape {
	return slices.Clone(m.shapes)
}

// OrderBy reorders the collection by metric.
//
// The ascending sort is stable, so shapes with equal values keep their
// relative order. Descending is the ascending result reversed as a whole,
// ties included. NaN sorts below every number, so degenerate shapes come
// first ascending and last descending. On an unknown metric or direction
// the collection is left unchanged.
func (m *Manager) OrderBy(metric Metric, dir Direction) error {
	if !metric.valid() {
		return fmt.Errorf("order by: %w: %v", ErrUnknownMetric, metric)
	}
	if dir != Ascending && dir != Descending {
		return fmt.Errorf("order by: %w: %v", ErrUnknownDirection, dir)
	}

	keys := make(map[Shape]float64, len(m.shapes))
	for _, s := range m.shapes {
		keys[s] = metric.of(s)
	}

	ordered := slices.Clone(m.shapes)
	slices.SortStableFunc(ordered, func(a, b Shape) int {
		return cmp.Compare(keys[a], keys[b])
	})
	if dir == Descending {
		slices.Reverse(ordered)
	}
	m.shapes = ordered

	m.logger.Debug("shapes reordered",
		"metric", metric.String(),
		"direction", dir.String(),
		"count", len(ordered))
	return nil
}
