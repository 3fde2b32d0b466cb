// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/script2nb/pkg/types"
)

// OutlineEntry summarizes one cell of a notebook.
type OutlineEntry struct {
	Index    int            `json:"index" yaml:"index"`
	CellType types.CellType `json:"cell_type" yaml:"cell_type"`
	Lines    int            `json:"lines" yaml:"lines"`
	Preview  string         `json:"preview" yaml:"preview"`
}

// maxPreview bounds the preview length in runes.
const maxPreview = 60

// Outline lists the cells of nb with their line counts and first line.
func Outline(nb types.Notebook) []OutlineEntry {
	entries := make([]OutlineEntry, len(nb.Cells))
	for i, c := range nb.Cells {
		lines := 0
		if c.Source != "" {
			lines = strings.Count(c.Source, "\n") + 1
		}
		first, _, _ := strings.Cut(c.Source, "\n")
		entries[i] = OutlineEntry{
			Index:    i + 1,
			CellType: c.CellType,
			Lines:    lines,
			Preview:  truncate(first, maxPreview),
		}
	}
	return entries
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// WriteOutline renders the outline of nb to w as "yaml" or "json".
func WriteOutline(w io.Writer, nb types.Notebook, format string) error {
	entries := Outline(nb)

	switch format {
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}
