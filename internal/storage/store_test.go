package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/shapemorph/internal/config"
	"github.com/san-kum/shapemorph/internal/engine"
	"github.com/san-kum/shapemorph/internal/morph"
)

func sampleTrace() []engine.FrameStats {
	return []engine.FrameStats{
		{Frame: 0, Elapsed: 0, Drawn: 800, Morph: morph.Sample{Step: 1, Phase: 0.016667, Factor: 0, Hold: 0.01}},
		{Frame: 1, Elapsed: 0.016667, Drawn: 799, Discarded: 1, Morph: morph.Sample{Step: 2, Phase: 0.033333, Factor: 0.005, Forward: true}},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(RunMetadata{Name: "classic", Vertices: 800, Flips: 1, Config: config.DefaultConfig()}, sampleTrace())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Name != "classic" {
		t.Errorf("expected name 'classic', got '%s'", meta.Name)
	}
	if meta.Frames != 2 {
		t.Errorf("expected 2 frames, got %d", meta.Frames)
	}
	if meta.Config == nil || meta.Config.Projection.Perspective != 200 {
		t.Errorf("expected stored config, got %+v", meta.Config)
	}

	trace, err := st.LoadTrace(runID)
	if err != nil {
		t.Fatalf("load trace failed: %v", err)
	}

	if len(trace) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(trace))
	}
	want := sampleTrace()
	if trace[1].Morph.Factor != want[1].Morph.Factor || !trace[1].Morph.Forward || trace[1].Discarded != 1 {
		t.Errorf("unexpected sample %+v", trace[1])
	}
	if trace[0].Morph.Hold != 0.01 || trace[0].Morph.Step != 1 {
		t.Errorf("unexpected sample %+v", trace[0])
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list on empty dir failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	st.Init()
	if _, err := st.Save(RunMetadata{Name: "a"}, sampleTrace()); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Save(RunMetadata{}, nil); err != nil {
		t.Fatal(err)
	}
	os.MkdirAll(filepath.Join(tmpDir, "junk"), 0755)
	os.WriteFile(filepath.Join(tmpDir, "stray.txt"), []byte("x"), 0644)

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestLoadTraceSkipsBadRows(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	runDir := filepath.Join(tmpDir, "manual")
	os.MkdirAll(runDir, 0755)

	data := "frame,elapsed,step,phase,factor,hold,forward,drawn,discarded\n" +
		"0,0,1,0.1,0,0.01,false,800,0\n" +
		"x,0,1,0.1,0,0.01,false,800,0\n" +
		"2,0,1\n" +
		"3,0.05,4,0.2,0.5,0,maybe,800,0\n"
	os.WriteFile(filepath.Join(runDir, "trace.csv"), []byte(data), 0644)

	trace, err := st.LoadTrace("manual")
	if err != nil {
		t.Fatalf("load trace failed: %v", err)
	}
	if len(trace) != 1 {
		t.Errorf("expected 1 valid sample, got %d", len(trace))
	}

	if _, err := st.LoadTrace("missing"); err == nil {
		t.Error("expected error for missing run")
	}
}
