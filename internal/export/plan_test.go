package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/tripcost/internal/trip"
)

func sampleEstimate(t *testing.T) trip.Estimate {
	t.Helper()
	p := trip.NewPlanner(trip.DefaultCatalog())
	est, err := p.Estimate(trip.Request{
		Route:  "Bulgaria → Germany",
		Cities: []string{"Sofia", "Belgrade", "Vienna", "Munich", "Nowhere"},
		Days:   4,
		Mode:   trip.Car,
		Budget: 2000,
	})
	if err != nil {
		t.Fatal(err)
	}
	return est
}

func TestWriteJSON(t *testing.T) {
	dir := t.TempDir()
	doc := NewDocument(sampleEstimate(t))

	path, err := WriteJSON(filepath.Join(dir, "plans", DefaultJSONName), doc)
	if err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("path %q is not absolute", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\n  \"route\": [") {
		t.Errorf("expected two-space indentation, got:\n%s", data)
	}
	if !strings.Contains(string(data), "Schönbrunn Palace") {
		t.Error("non-ASCII text should be written literally")
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"route", "days", "transport", "breakdown", "costs"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
	if raw["transport"] != "Car" || raw["days"] != float64(4) {
		t.Errorf("transport/days = %v/%v", raw["transport"], raw["days"])
	}

	costs := raw["costs"].(map[string]any)
	for _, key := range []string{"transport", "food", "hotel", "total"} {
		if _, ok := costs[key]; !ok {
			t.Errorf("costs missing %q", key)
		}
	}
	if costs["transport"] != float64(300) || costs["total"] != float64(1980) {
		t.Errorf("costs = %v", costs)
	}

	breakdown := raw["breakdown"].([]any)
	if len(breakdown) != 5 {
		t.Fatalf("breakdown len = %d", len(breakdown))
	}
	first := breakdown[0].(map[string]any)
	hotel := first["hotel"].(map[string]any)
	food := first["food"].(map[string]any)
	if first["city"] != "Sofia" || hotel["per_night"] != float64(70) || hotel["total"] != float64(280) ||
		food["per_day"] != float64(20) || first["sight"] == nil {
		t.Errorf("first record = %v", first)
	}
	last := breakdown[4].(map[string]any)
	if last["sight"] != trip.NoData {
		t.Errorf("unknown city sight = %v", last["sight"])
	}
}

func TestNewDocument_Empty(t *testing.T) {
	p := trip.NewPlanner(trip.DefaultCatalog())
	res, err := p.CalculateTrip(nil, 1, p.Profiles[trip.Train])
	if err != nil {
		t.Fatal(err)
	}
	doc := NewDocument(trip.Estimate{Request: trip.Request{Days: 1}, Transport: p.Profiles[trip.Train], Result: res})

	data, err := MarshalJSON(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`"route": []`)) || !bytes.Contains(data, []byte(`"breakdown": []`)) {
		t.Errorf("empty sequences should encode as [], got:\n%s", data)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		dir, name, want string
	}{
		{"", "plan.json", "plan.json"},
		{"/exports", "plan.json", filepath.Join("/exports", "plan.json")},
		{"/exports", "/tmp/plan.json", "/tmp/plan.json"},
	}
	for _, tt := range tests {
		if got := Resolve(tt.dir, tt.name); got != tt.want {
			t.Errorf("Resolve(%q, %q) = %q, want %q", tt.dir, tt.name, got, tt.want)
		}
	}
}

func TestWritePDF(t *testing.T) {
	doc := NewDocument(sampleEstimate(t))
	path, err := WritePDF(filepath.Join(t.TempDir(), DefaultPDFName), doc, "BGN")
	if err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not look like a PDF: %q", data[:min(len(data), 16)])
	}
}
