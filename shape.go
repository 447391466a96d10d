package mathapp

import (
	"fmt"
	"strings"
)

// Shape is anything with a name, an area and a perimeter.
//
// Area and Perimeter are computed from the shape's dimensions on every call.
// Nothing is cached and nothing can be set directly.
type Shape interface {
	Name() string
	Kind() Kind
	Area() float64
	Perimeter() float64
}

// Kind identifies one of the four supported shape variants.
type Kind int

const (
	KindCircle Kind = iota
	KindTriangle
	KindSquare
	KindRectangle
)

var kindNames = map[Kind]string{
	KindCircle:    "circle",
	KindTriangle:  "triangle",
	KindSquare:    "square",
	KindRectangle: "rectangle",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind parses a kind name, ignoring case.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
