package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/mandelterm/internal/analysis"
	"github.com/san-kum/mandelterm/internal/grid"
	"github.com/san-kum/mandelterm/internal/mandel"
)

const (
	metadataFile = "metadata.json"
	frameFile    = "frame.txt"
	countsFile   = "counts.csv"
)

// ErrNotFound indicates an unknown render id.
var ErrNotFound = errors.New("storage: render not found")

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RenderMetadata struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Timestamp time.Time        `json:"timestamp"`
	Params    mandel.Params    `json:"params"`
	Summary   analysis.Summary `json:"summary"`
}

// Save writes the frame, its escape counts and metadata under a new id
// derived from name. Metadata goes last so that List never sees a partial
// render; on failure the render directory is removed.
func (s *Store) Save(name string, p mandel.Params, g *grid.Grid, counts [][]int) (string, error) {
	now := s.now()
	renderID := fmt.Sprintf("%s_%d", name, now.UnixNano())
	renderDir := filepath.Join(s.baseDir, renderID)

	if err := os.MkdirAll(renderDir, 0755); err != nil {
		return "", err
	}

	meta := RenderMetadata{
		ID:        renderID,
		Name:      name,
		Timestamp: now,
		Params:    p,
		Summary:   analysis.Summarize(counts),
	}

	if err := writeRender(renderDir, meta, g, counts); err != nil {
		os.RemoveAll(renderDir)
		return "", fmt.Errorf("save %s: %w", renderID, err)
	}
	return renderID, nil
}

func writeRender(dir string, meta RenderMetadata, g *grid.Grid, counts [][]int) error {
	if err := os.WriteFile(filepath.Join(dir, frameFile), []byte(g.String()), 0644); err != nil {
		return err
	}
	if err := writeCounts(filepath.Join(dir, countsFile), counts); err != nil {
		return err
	}
	return writeMetadata(filepath.Join(dir, metadataFile), meta)
}

func writeMetadata(path string, meta RenderMetadata) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeCounts(path string, counts [][]int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, row := range counts {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = strconv.Itoa(v)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns stored renders oldest first. Entries without readable
// metadata are skipped.
func (s *Store) List() ([]RenderMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RenderMetadata{}, nil
		}
		return nil, err
	}

	renders := make([]RenderMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		renders = append(renders, *meta)
	}

	sort.Slice(renders, func(i, j int) bool {
		return renders[i].Timestamp.Before(renders[j].Timestamp)
	})
	return renders, nil
}

func (s *Store) Load(renderID string) (*RenderMetadata, error) {
	data, err := s.read(renderID, metadataFile)
	if err != nil {
		return nil, err
	}

	var meta RenderMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadGrid parses the stored frame back into a grid.
func (s *Store) LoadGrid(renderID string) (*grid.Grid, error) {
	data, err := s.read(renderID, frameFile)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	return grid.FromLines(lines)
}

func (s *Store) LoadCounts(renderID string) ([][]int, error) {
	path := filepath.Join(s.baseDir, renderID, countsFile)
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", renderID, ErrNotFound)
		}
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}

	counts := make([][]int, len(records))
	for r, record := range records {
		counts[r] = make([]int, len(record))
		for c, field := range record {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%s row %d col %d: %w", countsFile, r, c, err)
			}
			counts[r][c] = v
		}
	}
	return counts, nil
}

func (s *Store) read(renderID, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, renderID, name))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: %w", renderID, ErrNotFound)
	}
	return data, err
}
