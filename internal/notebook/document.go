// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notebook

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pdiddy/script2nb/pkg/types"
)

// NewDocument assembles a notebook from scanned cells and the conversion settings.
func NewDocument(cfg types.ConvertConfig, cells []types.Cell) types.Notebook {
	lang := cfg.Language
	if lang == "" {
		lang = types.DefaultLanguage
	}

	displayName := cfg.DisplayName
	if displayName == "" {
		displayName = lang.DisplayName()
	}

	authors := make([]types.Author, 0, len(cfg.Authors))
	for _, name := range cfg.Authors {
		authors = append(authors, types.Author{Name: name})
	}

	if cells == nil {
		cells = []types.Cell{}
	}

	info := lang.Info()
	return types.Notebook{
		Metadata: types.NotebookMetadata{
			KernelSpec: types.KernelSpec{
				Argv:          cfg.Kernel.Argv,
				DisplayName:   displayName,
				Language:      lang.Name(),
				InterruptMode: cfg.Kernel.InterruptMode,
				Env:           cfg.Kernel.Env,
			},
			LanguageInfo: &info,
			Authors:      authors,
		},
		NBFormat:      types.NBFormat,
		NBFormatMinor: types.NBFormatMinor,
		Cells:         cells,
	}
}

// Build scans r and assembles the notebook in one pass.
func Build(r io.Reader, cfg types.ConvertConfig) (types.Notebook, error) {
	cells, err := ScanCells(r, cfg.ScanConfig)
	if err != nil {
		return types.Notebook{}, err
	}
	return NewDocument(cfg, cells), nil
}

// Encode writes nb as JSON. An empty indent produces compact output.
func Encode(w io.Writer, nb types.Notebook, indent string) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(nb); err != nil {
		return fmt.Errorf("encoding notebook: %w", err)
	}
	return nil
}
