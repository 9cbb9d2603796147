package yamlbatch

import (
	"strings"
	"testing"
)

func ptr(f float64) *float64 { return &f }

func TestMapBatch_RequiresFields(t *testing.T) {
	cases := []struct {
		name  string
		item  yamlItem
		field string
	}{
		{"category", yamlItem{Category: "mass", Value: ptr(1), From: "a", To: "b"}, "items[0].category"},
		{"from", yamlItem{Category: "length", Value: ptr(1), To: "meters"}, "items[0].from"},
		{"to", yamlItem{Category: "length", Value: ptr(1), From: "meters"}, "items[0].to"},
		{"value", yamlItem{Category: "length", From: "meters", To: "feet"}, "items[0].value"},
		{"both", yamlItem{Category: "length", Value: ptr(1), JSON: &yamlJSONSource{File: "f", Path: "$.v"}, From: "meters", To: "feet"}, "mutually exclusive"},
		{"json file", yamlItem{Category: "length", JSON: &yamlJSONSource{Path: "$.v"}, From: "meters", To: "feet"}, "items[0].json.file"},
		{"json path", yamlItem{Category: "length", JSON: &yamlJSONSource{File: "f"}, From: "meters", To: "feet"}, "items[0].json.path"},
		{"tolerance", yamlItem{Category: "length", Value: ptr(1), From: "meters", To: "feet", Tolerance: -1}, "items[0].tolerance"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := mapBatch("b.yaml", yamlBatch{Name: "x", Items: []yamlItem{c.item}})
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), c.field) {
				t.Fatalf("expected %q in error, got %v", c.field, err)
			}
		})
	}
}

func TestMapBatch_EmptyItems(t *testing.T) {
	_, err := mapBatch("b.yaml", yamlBatch{Name: "x"})
	if err == nil || !strings.Contains(err.Error(), "items") {
		t.Fatalf("expected items error, got %v", err)
	}
}

func TestMapBatch_NameFromFile(t *testing.T) {
	b, err := mapBatch("batches/daily.yaml", yamlBatch{Items: []yamlItem{
		{Category: "length", Value: ptr(0), From: "meters", To: "feet"},
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Name != "daily" {
		t.Fatalf("expected name daily, got %q", b.Name)
	}
	if b.Items[0].Expect != nil {
		t.Fatalf("expected no expectation")
	}
}

func TestMapBatch_UnsupportedCategoryStillMaps(t *testing.T) {
	// time is a declared category; the failure is reported at conversion time.
	b, err := mapBatch("b.yaml", yamlBatch{Items: []yamlItem{
		{Category: "time", Value: ptr(1), From: "seconds", To: "minutes"},
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(b.Items) != 1 {
		t.Fatalf("expected 1 item")
	}
}
