package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/mandelterm/internal/analysis"
	"github.com/san-kum/mandelterm/internal/grid"
	"github.com/san-kum/mandelterm/internal/mandel"
)

type ExportData struct {
	Params  mandel.Params    `json:"params"`
	Rows    int              `json:"rows"`
	Cols    int              `json:"cols"`
	Lines   []string         `json:"lines"`
	Counts  [][]int          `json:"counts,omitempty"`
	Summary analysis.Summary `json:"summary"`
}

func NewExport(p mandel.Params, g *grid.Grid, counts [][]int) ExportData {
	return ExportData{
		Params:  p,
		Rows:    g.Rows(),
		Cols:    g.Cols(),
		Lines:   g.Lines(),
		Counts:  counts,
		Summary: analysis.Summarize(counts),
	}
}

func ExportJSON(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSONFile(path string, data ExportData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := ExportJSON(file, data); err != nil {
		return err
	}
	return file.Close()
}
