package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cqlex/internal/config"
	"cqlex/internal/domain"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		ProjectPath:    t.TempDir(),
		OutputJSONDir:  "storage",
		OutputJSONFile: "extracted-tests.json",
	}
}

func sampleOutput() *domain.ExtractOutput {
	return &domain.ExtractOutput{
		Meta: domain.ExtractMeta{
			TotalFiles:     1,
			TotalFunctions: 1,
			TotalCases:     2,
			Timestamp:      "2026-08-30T12:00:00Z",
		},
		Files: []domain.FileExtraction{
			{
				Source: "operator_test.go",
				Functions: []domain.FunctionCases{
					{
						Function: "TestOperators",
						Cases: []domain.TestCase{
							{Name: "add", CQL: "1 + 2", Expected: domain.IntegerValue(3)},
							{Name: "cmp", CQL: "1 < 2", Expected: domain.BooleanValue(true)},
						},
					},
				},
			},
		},
	}
}

func TestJSONStorage_SaveLoad(t *testing.T) {
	st := NewJSONStorage(testConfig(t))

	if err := st.Save(sampleOutput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loaded.Meta.TotalCases != 2 {
		t.Errorf("expected meta to survive, got %+v", loaded.Meta)
	}
	if len(loaded.Files) != 1 || loaded.Files[0].Source != "operator_test.go" {
		t.Fatalf("expected one file extraction, got %+v", loaded.Files)
	}
	cases := loaded.Files[0].Functions[0].Cases
	if len(cases) != 2 || cases[0].Expected != domain.IntegerValue(3) {
		t.Errorf("expected cases to survive, got %+v", cases)
	}
}

func TestJSONStorage_LoadMissing(t *testing.T) {
	st := NewJSONStorage(testConfig(t))
	if _, err := st.Load(); err == nil {
		t.Error("expected error when no output exists")
	}
}

func TestJSONStorage_SaveFile(t *testing.T) {
	cfg := testConfig(t)
	st := NewJSONStorage(cfg)

	result := &sampleOutput().Files[0]
	path := filepath.Join(cfg.ProjectPath, "out", "fixture.json")

	if err := st.SaveFile(result, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"source": "operator_test.go"`) {
		t.Errorf("expected per-file shape, got %s", out)
	}
	if !strings.Contains(out, `"functions"`) {
		t.Errorf("expected functions key, got %s", out)
	}
}

func TestJSONStorage_CanonicalOutput(t *testing.T) {
	cfg := testConfig(t)
	cfg.Flags.Canonical = true
	st := NewJSONStorage(cfg)

	if err := st.Save(sampleOutput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(cfg.GetOutputPath())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := string(data)
	// RFC 8785 output has no insignificant whitespace and sorted keys at
	// each level ("files" before "meta").
	if strings.Contains(out, "\n") || strings.Contains(out, ": ") {
		t.Errorf("expected canonical bytes without whitespace, got %s", out)
	}
	if !strings.HasPrefix(out, `{"files":`) {
		t.Errorf("expected sorted top-level keys, got %s", out)
	}

	// Still valid JSON that round-trips.
	var loaded domain.ExtractOutput
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("canonical output does not parse: %v", err)
	}
	if loaded.Meta.TotalCases != 2 {
		t.Errorf("expected meta to survive, got %+v", loaded.Meta)
	}
}
