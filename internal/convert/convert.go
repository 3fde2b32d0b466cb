// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns delimited script files into notebook files, one at a
// time or in batches, and renders cell outlines.
package convert

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/script2nb/internal/notebook"
	"github.com/pdiddy/script2nb/pkg/types"
)

// notebookExt is the extension of generated notebooks.
const notebookExt = ".ipynb"

// Converter transforms script text into a notebook.
type Converter interface {
	// Convert reads a script from r and returns the notebook.
	Convert(r io.Reader) (types.Notebook, error)
}

// ScriptConverter is the Converter backed by the cell scanner.
type ScriptConverter struct {
	Config types.ConvertConfig
}

// NewScriptConverter returns a converter for cfg.
func NewScriptConverter(cfg types.ConvertConfig) *ScriptConverter {
	return &ScriptConverter{Config: cfg}
}

// Convert implements Converter.
func (c *ScriptConverter) Convert(r io.Reader) (types.Notebook, error) {
	return notebook.Build(r, c.Config)
}

// indenter is implemented by converters that want indented JSON output.
type indenter interface {
	Indent() string
}

// Indent returns the configured JSON indent.
func (c *ScriptConverter) Indent() string {
	return c.Config.Indent
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of scripts processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any script failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Stem returns the file name of path without its last extension. Dotfiles
// such as ".profile" keep their full name.
func Stem(path string) string {
	base := filepath.Base(path)
	s := strings.TrimSuffix(base, filepath.Ext(base))
	if s == "" {
		return base
	}
	return s
}

// DefaultOutputPath returns the notebook path used when none is given: the
// input's base name with an .ipynb extension, in the current directory.
func DefaultOutputPath(inputPath string) string {
	return "./" + Stem(inputPath) + notebookExt
}

// ConvertFile converts the script at inputPath and writes the notebook to
// outputPath. A failed write may leave a partial file behind.
func ConvertFile(c Converter, inputPath, outputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening input %s: %w", inputPath, err)
	}
	defer in.Close()

	nb, err := c.Convert(in)
	if err != nil {
		return fmt.Errorf("converting %s: %w", inputPath, err)
	}
	slog.Debug("scanned script", "input", inputPath, "cells", len(nb.Cells))

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output %s: %w", outputPath, err)
	}

	indent := ""
	if ind, ok := c.(indenter); ok {
		indent = ind.Indent()
	}
	if err := notebook.Encode(out, nb, indent); err != nil {
		out.Close()
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", outputPath, err)
	}
	return nil
}

// ConvertScript converts a single script, writing a status line to w. If
// skipExisting is set and the notebook already exists, it returns
// ConversionNone without touching it.
func ConvertScript(c Converter, inputPath, outputPath string, skipExisting bool, w io.Writer) types.ConversionStatus {
	name := Stem(inputPath)

	if skipExisting {
		if _, err := os.Stat(outputPath); err == nil {
			fmt.Fprintf(w, "skipped: %s (already exists)\n", name)
			return types.ConversionNone
		}
	}

	if err := ConvertFile(c, inputPath, outputPath); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
		return types.ConversionFailed
	}

	fmt.Fprintf(w, "converted: %s -> %s\n", name, outputPath)
	return types.ConversionDone
}

// ConvertBatch converts every input into outDir/<stem>.ipynb, printing
// per-file status to w and returning a summary. An input whose notebook path
// was already claimed by an earlier input in the same batch fails rather than
// overwriting it.
func ConvertBatch(c Converter, inputPaths []string, outDir string, skipExisting bool, w io.Writer) BatchResult {
	var result BatchResult

	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(w, "failed:  creating %s (%v)\n", outDir, err)
		result.Failed = len(inputPaths)
		return result
	}

	claimed := make(map[string]string, len(inputPaths))
	for _, p := range inputPaths {
		out := filepath.Join(outDir, Stem(p)+notebookExt)
		if prev, ok := claimed[out]; ok {
			fmt.Fprintf(w, "failed:  %s (%s already produced by %s)\n", Stem(p), out, prev)
			result.Failed++
			continue
		}
		claimed[out] = p

		switch ConvertScript(c, p, out, skipExisting, w) {
		case types.ConversionDone:
			result.Converted++
		case types.ConversionNone:
			result.Skipped++
		case types.ConversionFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}
