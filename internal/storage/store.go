package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/shapemorph/internal/config"
	"github.com/san-kum/shapemorph/internal/engine"
	"github.com/san-kum/shapemorph/internal/morph"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Timestamp time.Time      `json:"timestamp"`
	Frames    int            `json:"frames"`
	Vertices  int            `json:"vertices"`
	Flips     int            `json:"flips"`
	Outputs   []string       `json:"outputs,omitempty"`
	Config    *config.Config `json:"config"`
}

var traceHeader = []string{"frame", "elapsed", "step", "phase", "factor", "hold", "forward", "drawn", "discarded"}

// Save writes metadata.json and trace.csv under a new run directory.
func (s *Store) Save(meta RunMetadata, trace []engine.FrameStats) (string, error) {
	if meta.Name == "" {
		meta.Name = "run"
	}
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", meta.Name, now.UnixMilli())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = now
	meta.Frames = len(trace)

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trace.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(traceHeader); err != nil {
		return "", err
	}
	for _, st := range trace {
		row := []string{
			strconv.Itoa(st.Frame),
			strconv.FormatFloat(st.Elapsed, 'f', 6, 64),
			strconv.Itoa(st.Morph.Step),
			strconv.FormatFloat(st.Morph.Phase, 'f', 6, 64),
			strconv.FormatFloat(st.Morph.Factor, 'g', -1, 64),
			strconv.FormatFloat(st.Morph.Hold, 'g', -1, 64),
			strconv.FormatBool(st.Morph.Forward),
			strconv.Itoa(st.Drawn),
			strconv.Itoa(st.Discarded),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns all readable runs, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadTrace skips rows it cannot parse.
func (s *Store) LoadTrace(runID string) ([]engine.FrameStats, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trace.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []engine.FrameStats{}, nil
	}

	trace := make([]engine.FrameStats, 0, len(records)-1)
	for _, rec := range records[1:] {
		st, err := parseRow(rec)
		if err != nil {
			continue
		}
		trace = append(trace, st)
	}

	return trace, nil
}

func parseRow(rec []string) (engine.FrameStats, error) {
	if len(rec) != len(traceHeader) {
		return engine.FrameStats{}, fmt.Errorf("storage: expected %d fields, got %d", len(traceHeader), len(rec))
	}

	var (
		st  engine.FrameStats
		m   morph.Sample
		err error
	)
	ints := []struct {
		dst *int
		src string
	}{{&st.Frame, rec[0]}, {&m.Step, rec[2]}, {&st.Drawn, rec[7]}, {&st.Discarded, rec[8]}}
	for _, f := range ints {
		if *f.dst, err = strconv.Atoi(f.src); err != nil {
			return st, err
		}
	}
	floats := []struct {
		dst *float64
		src string
	}{{&st.Elapsed, rec[1]}, {&m.Phase, rec[3]}, {&m.Factor, rec[4]}, {&m.Hold, rec[5]}}
	for _, f := range floats {
		if *f.dst, err = strconv.ParseFloat(f.src, 64); err != nil {
			return st, err
		}
	}
	if m.Forward, err = strconv.ParseBool(rec[6]); err != nil {
		return st, err
	}

	st.Morph = m
	return st, nil
}
