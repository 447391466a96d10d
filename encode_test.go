package mathapp

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gopkg.in/yaml.v3"
)

type decodedRecord struct {
	Name      string   `json:"name"`
	Area      *float64 `json:"area"`
	Perimeter *float64 `json:"perimeter"`
}

func ptr(f float64) *float64 { return &f }

func TestSerializeJSON_Empty(t *testing.T) {
	out, err := NewManager().SerializeJSON()
	if err != nil {
		t.Fatalf("SerializeJSON failed: %v", err)
	}
	if out != "[]" {
		t.Errorf("Empty collection: expected [], got %s", out)
	}
}

func TestSerializeJSON_Exact(t *testing.T) {
	m := NewManager()
	m.NewSquare(5, 5)
	m.NewRectangle(10, 10)

	out, err := m.SerializeJSON()
	if err != nil {
		t.Fatalf("SerializeJSON failed: %v", err)
	}

	want := `[{"name":"Square","area":25,"perimeter":20},{"name":"Rectangle","area":100,"perimeter":40}]`
	if out != want {
		t.Errorf("JSON mismatch:\nwant: %s\ngot:  %s", want, out)
	}
}

func TestSerializeJSON_FollowsCollectionOrder(t *testing.T) {
	m := newSampleManager()

	decode := func() []decodedRecord {
		t.Helper()
		out, err := m.SerializeJSON()
		if err != nil {
			t.Fatalf("SerializeJSON failed: %v", err)
		}
		var got []decodedRecord
		if err := json.Unmarshal([]byte(out), &got); err != nil {
			t.Fatalf("Output is not valid JSON: %v\n%s", err, out)
		}
		return got
	}

	want := []decodedRecord{
		{"Circle", ptr(78.5), ptr(31.4)},
		{"Triangle", ptr(10), ptr(9 + math.Sqrt(41))},
		{"Equilateral", ptr(math.Sqrt(3) / 4 * 25), ptr(15)},
		{"Isosceles", ptr(math.Sqrt(6.1875)), ptr(11)},
		{"Square", ptr(25), ptr(20)},
		{"Rectangle", ptr(100), ptr(40)},
	}
	approx := cmpopts.EquateApprox(0, 1e-9)

	if diff := cmp.Diff(want, decode(), approx); diff != "" {
		t.Errorf("Initial order (-want +got):\n%s", diff)
	}

	if err := m.OrderBy(MetricPerimeter, Descending); err != nil {
		t.Fatalf("OrderBy failed: %v", err)
	}
	reordered := []decodedRecord{want[5], want[0], want[4], want[1], want[2], want[3]}
	if diff := cmp.Diff(reordered, decode(), approx); diff != "" {
		t.Errorf("After OrderBy (-want +got):\n%s", diff)
	}
}

func TestSerializeJSON_NonFiniteAsNull(t *testing.T) {
	m := NewManager()
	m.NewTriangle(1, 1, 5) // Heron's radicand < 0

	out, err := m.SerializeJSON()
	if err != nil {
		t.Fatalf("SerializeJSON must not fail on NaN: %v", err)
	}
	if !strings.Contains(out, `"area":null`) {
		t.Errorf("Expected NaN area to encode as null, got %s", out)
	}
	if !strings.Contains(out, `"perimeter":7`) {
		t.Errorf("Expected finite perimeter to encode as a number, got %s", out)
	}
}

func TestSerializeYAML(t *testing.T) {
	m := NewManager()
	m.NewSquare(5, 5)
	m.NewRectangle(10, 10)

	out, err := m.Serialize(FormatYAML)
	if err != nil {
		t.Fatalf("Serialize(yaml) failed: %v", err)
	}

	var got []Record
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("Output is not valid YAML: %v\n%s", err, out)
	}
	if diff := cmp.Diff(m.Records(), got); diff != "" {
		t.Errorf("YAML records (-want +got):\n%s", diff)
	}

	if !strings.Contains(out, "name: Square") {
		t.Errorf("Expected readable YAML, got:\n%s", out)
	}

	t.Logf("✓ YAML:\n%s", out)
}

func TestSerializeYAML_Empty(t *testing.T) {
	out, err := NewManager().Serialize(FormatYAML)
	if err != nil {
		t.Fatalf("Serialize(yaml) failed: %v", err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("Empty collection: expected [], got %q", out)
	}
}

func TestSerialize_UnknownFormat(t *testing.T) {
	_, err := newSampleManager().Serialize(Format(99))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"yaml", FormatYAML},
		{"yml", FormatYAML},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}

	if _, err := ParseFormat("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(xml): expected ErrUnknownFormat, got %v", err)
	}
}
