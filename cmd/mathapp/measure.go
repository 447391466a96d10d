package main

import (
	"fmt"
	"strconv"

	"github.com/alexshd/mathapp"
)

// buildShape constructs a shape of kind from command-line dimensions.
func buildShape(m *mathapp.Manager, kind mathapp.Kind, dims []string) (mathapp.Shape, error) {
	switch kind {
	case mathapp.KindCircle:
		ints, err := parseInts(dims, 1)
		if err != nil {
			return nil, fmt.Errorf("circle: %w", err)
		}
		return m.NewCircle(ints[0]), nil

	case mathapp.KindTriangle:
		if len(dims) != 2 && len(dims) != 3 {
			return nil, fmt.Errorf("triangle: expected 2 or 3 sides, got %d", len(dims))
		}
		sides, err := parseFloats(dims)
		if err != nil {
			return nil, fmt.Errorf("triangle: %w", err)
		}
		if len(sides) == 2 {
			return m.NewRightTriangle(sides[0], sides[1]), nil
		}
		return m.NewTriangle(sides[0], sides[1], sides[2]), nil

	case mathapp.KindSquare, mathapp.KindRectangle:
		ints, err := parseInts(dims, 2)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", kind, err)
		}
		if kind == mathapp.KindSquare {
			return m.NewSquare(ints[0], ints[1]), nil
		}
		return m.NewRectangle(ints[0], ints[1]), nil

	default:
		return nil, fmt.Errorf("%w: %v", mathapp.ErrUnknownKind, kind)
	}
}

func parseInts(args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d dimension(s), got %d", n, len(args))
	}
	out := make([]int, n)
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("dimension %q: %w", arg, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("dimension %q: %w", arg, err)
		}
		out[i] = v
	}
	return out, nil
}
