// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the notebook document model and the configuration
// shared by the scanner, the converter and the CLI.
package types

// Notebook format version written by script2nb (nbformat 4.4).
const (
	NBFormat      = 4
	NBFormatMinor = 4
)

// CellType tags a notebook cell as code, prose or raw text.
type CellType string

const (
	CellCode     CellType = "code"
	CellMarkdown CellType = "markdown"
	CellRaw      CellType = "raw"
)

// ParseCellType maps a delimiter label to a cell type. Labels are matched
// exactly and case-sensitively; anything else reports false.
func ParseCellType(label string) (CellType, bool) {
	switch CellType(label) {
	case CellCode, CellMarkdown, CellRaw:
		return CellType(label), true
	default:
		return "", false
	}
}

// Notebook is the top-level nbformat document.
type Notebook struct {
	Metadata      NotebookMetadata `json:"metadata" yaml:"metadata"`
	NBFormat      int              `json:"nbformat" yaml:"nbformat"`
	NBFormatMinor int              `json:"nbformat_minor" yaml:"nbformat_minor"`
	Cells         []Cell           `json:"cells" yaml:"cells"`
}

// NotebookMetadata holds the document-level metadata block.
type NotebookMetadata struct {
	KernelSpec KernelSpec `json:"kernelspec" yaml:"kernelspec"`

	// LanguageInfo is nil when no language was selected.
	LanguageInfo *LanguageInfo `json:"language_info,omitempty" yaml:"language_info,omitempty"`

	// Authors lists the notebook authors in the order they were given.
	Authors []Author `json:"authors" yaml:"authors"`
}

// KernelSpec describes how a front end launches the execution backend.
type KernelSpec struct {
	Argv          []string          `json:"argv,omitempty" yaml:"argv,omitempty"`
	DisplayName   string            `json:"display_name" yaml:"display_name"`
	Language      string            `json:"language" yaml:"language"`
	InterruptMode string            `json:"interrupt_mode,omitempty" yaml:"interrupt_mode,omitempty"`
	Env           map[string]string `json:"env,omitempty" yaml:"env,omitempty"`
}

// LanguageInfo advertises the script language of the notebook.
type LanguageInfo struct {
	FileExtension string `json:"file_extension" yaml:"file_extension"`
	MIMEType      string `json:"mimetype" yaml:"mimetype"`
	Name          string `json:"name" yaml:"name"`
}

// Author is an opaque display name.
type Author struct {
	Name string `json:"name" yaml:"name"`
}

// CellMetadata is the per-cell metadata block. script2nb never populates it,
// so it always serializes as an empty object.
type CellMetadata struct{}

// Cell is one notebook cell.
type Cell struct {
	CellType CellType     `json:"cell_type" yaml:"cell_type"`
	Source   string       `json:"source" yaml:"source"`
	Metadata CellMetadata `json:"metadata" yaml:"metadata"`
}
