package main

import (
	"testing"

	"github.com/san-kum/mandelterm/internal/mandel"
	"github.com/san-kum/mandelterm/internal/storage"
	"github.com/spf13/cobra"
)

func TestStatsSource_StoredRender(t *testing.T) {
	oldDir, oldID := dataDir, statsID
	defer func() { dataDir, statsID = oldDir, oldID }()

	dataDir = t.TempDir()
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	p := mandel.DefaultParams()
	p.Width, p.Height = 10, 4
	g, err := mandel.Render(p)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	want := mandel.Counts(p)
	id, err := st.Save("stats", p, g, want)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	statsID = id
	gotParams, got, err := statsSource(&cobra.Command{})
	if err != nil {
		t.Fatalf("statsSource: %v", err)
	}
	if gotParams != p {
		t.Errorf("params = %+v, want %+v", gotParams, p)
	}
	if len(got) != p.Height {
		t.Fatalf("got %d rows, want %d", len(got), p.Height)
	}
	for r := range want {
		for c := range want[r] {
			if got[r][c] != want[r][c] {
				t.Fatalf("count [%d][%d] = %d, want %d", r, c, got[r][c], want[r][c])
			}
		}
	}
}

func TestStatsSource_UnknownID(t *testing.T) {
	oldDir, oldID := dataDir, statsID
	defer func() { dataDir, statsID = oldDir, oldID }()

	dataDir = t.TempDir()
	statsID = "missing"
	if _, _, err := statsSource(&cobra.Command{}); err == nil {
		t.Error("expected error for unknown render")
	}
}
