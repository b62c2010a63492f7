package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/shapemorph/internal/engine"
)

type ExportData struct {
	Run       RunMetadata `json:"run"`
	Frames    int         `json:"frames"`
	Elapsed   []float64   `json:"elapsed"`
	Factors   []float64   `json:"factors"`
	Holds     []float64   `json:"holds"`
	Forward   []bool      `json:"forward"`
	Drawn     []int       `json:"drawn"`
	Discarded int         `json:"discarded"`
}

func newExportData(meta RunMetadata, trace []engine.FrameStats) ExportData {
	data := ExportData{
		Run:     meta,
		Frames:  len(trace),
		Elapsed: make([]float64, len(trace)),
		Factors: make([]float64, len(trace)),
		Holds:   make([]float64, len(trace)),
		Forward: make([]bool, len(trace)),
		Drawn:   make([]int, len(trace)),
	}
	for i, s := range trace {
		data.Elapsed[i] = s.Elapsed
		data.Factors[i] = s.Morph.Factor
		data.Holds[i] = s.Morph.Hold
		data.Forward[i] = s.Morph.Forward
		data.Drawn[i] = s.Drawn
		data.Discarded += s.Discarded
	}
	return data
}

// WriteJSON encodes a run and its trace as indented JSON.
func WriteJSON(w io.Writer, meta RunMetadata, trace []engine.FrameStats) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newExportData(meta, trace))
}

// ExportJSON writes a stored run to path, or to stdout when path is empty.
func (s *Store) ExportJSON(runID, path string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	trace, err := s.LoadTrace(runID)
	if err != nil {
		return err
	}

	if path == "" {
		return WriteJSON(os.Stdout, *meta, trace)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, *meta, trace)
}
