package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, RunMetadata{ID: "x", Name: "classic"}, sampleTrace()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if data.Frames != 2 || len(data.Factors) != 2 {
		t.Errorf("expected 2 frames, got %d/%d", data.Frames, len(data.Factors))
	}
	if data.Factors[1] != 0.005 || !data.Forward[1] {
		t.Errorf("unexpected second sample: %v %v", data.Factors[1], data.Forward[1])
	}
	if data.Discarded != 1 {
		t.Errorf("expected 1 discarded, got %d", data.Discarded)
	}
	if data.Run.Name != "classic" {
		t.Errorf("expected run name 'classic', got '%s'", data.Run.Name)
	}
}

func TestStoreExportJSON(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	st.Init()

	runID, err := st.Save(RunMetadata{Name: "exp"}, sampleTrace())
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(tmpDir, "out.json")
	if err := st.ExportJSON(runID, out); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		t.Fatal(err)
	}
	if data.Run.ID != runID {
		t.Errorf("expected id %s, got %s", runID, data.Run.ID)
	}

	if err := st.ExportJSON("missing", out); err == nil {
		t.Error("expected error for missing run")
	}
}
