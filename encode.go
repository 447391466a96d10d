package mathapp

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a text interchange format the collection can be written in.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat parses "json" or "yaml" ("yml" is accepted), ignoring case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Measure is a computed metric as it appears in serialized output.
//
// Degenerate dimensions can produce NaN or ±Inf. JSON has no literal for
// those, so a non-finite Measure is written as null. YAML writes them as
// .nan / .inf.
type Measure float64

func (m Measure) MarshalJSON() ([]byte, error) {
	f := float64(m)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// Record is the serialized form of one shape.
type Record struct {
	Name      string  `json:"name" yaml:"name"`
	Area      Measure `json:"area" yaml:"area"`
	Perimeter Measure `json:"perimeter" yaml:"perimeter"`
}

// NewRecord snapshots the public fields of s.
func NewRecord(s Shape) Record {
	return Record{
		Name:      s.Name(),
		Area:      Measure(s.Area()),
		Perimeter: Measure(s.Perimeter()),
	}
}

// Records returns one Record per shape, in collection order.
func (m *Manager) Records() []Record {
	records := make([]Record, 0, len(m.shapes))
	for _, s := range m.shapes {
		records = append(records, NewRecord(s))
	}
	return records
}

// SerializeJSON returns the collection as a JSON array of
// {"name","area","perimeter"} objects. An empty collection yields "[]".
func (m *Manager) SerializeJSON() (string, error) {
	return m.Serialize(FormatJSON)
}

// Serialize returns the collection encoded in the given format.
func (m *Manager) Serialize(format Format) (string, error) {
	records := m.Records()

	switch format {
	case FormatJSON:
		data, err := json.Marshal(records)
		if err != nil {
			return "", fmt.Errorf("encoding json: %w", err)
		}
		return string(data), nil

	case FormatYAML:
		data, err := yaml.Marshal(records)
		if err != nil {
			return "", fmt.Errorf("encoding yaml: %w", err)
		}
		return string(data), nil

	default:
		return "", fmt.Errorf("serialize: %w: %v", ErrUnknownFormat, format)
	}
}
