package exam

import (
	"os"
	"path/filepath"
	"testing"
)

const validTableJSON = `{
  "sections": [
    {"id": "reading", "name": "Reading", "weight": 0.6},
    {"id": "writing", "name": "Writing", "weight": 0.4}
  ]
}`

func TestParseTable_Valid(t *testing.T) {
	table, err := ParseTable([]byte(validTableJSON))
	if err != nil {
		t.Fatal(err)
	}
	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}
	if s, ok := table.Get("reading"); !ok || s.Weight != 0.6 {
		t.Errorf("Get(reading) = %+v %v, want weight 0.6", s, ok)
	}
}

func TestParseTable_InvalidJSON(t *testing.T) {
	if _, err := ParseTable([]byte(`{"sections": [`)); err == nil {
		t.Fatal("expected error for truncated JSON")
	}
}

func TestParseTable_SchemaViolations(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"missing sections", `{}`},
		{"empty sections", `{"sections": []}`},
		{"missing weight", `{"sections": [{"id": "a", "name": "A"}]}`},
		{"bad id pattern", `{"sections": [{"id": "Not-Valid", "name": "A", "weight": 1.0}]}`},
		{"zero weight", `{"sections": [{"id": "a", "name": "A", "weight": 0}]}`},
		{"weight above one", `{"sections": [{"id": "a", "name": "A", "weight": 1.5}]}`},
		{"extra field", `{"sections": [{"id": "a", "name": "A", "weight": 1.0, "color": "red"}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseTable([]byte(tc.raw)); err == nil {
				t.Errorf("ParseTable accepted %s", tc.name)
			}
		})
	}
}

func TestParseTable_SchemaPassesButSumFails(t *testing.T) {
	raw := `{"sections": [
      {"id": "a", "name": "A", "weight": 0.5},
      {"id": "b", "name": "B", "weight": 0.4}
    ]}`
	if _, err := ParseTable([]byte(raw)); err == nil {
		t.Fatal("expected weight-sum error past schema validation")
	}
}

func TestLoadTable_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sections.json")
	if err := os.WriteFile(path, []byte(validTableJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	table, err := LoadTable(path)
	if err != nil {
		t.Fatal(err)
	}
	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}
}

func TestLoadTable_MissingFile(t *testing.T) {
	if _, err := LoadTable(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
