// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// KernelConfig holds optional kernelspec fields that only come from a config
// file. Empty values are omitted from the notebook.
type KernelConfig struct {
	// Argv is the kernel launch command template.
	Argv []string `json:"argv,omitempty" yaml:"argv,omitempty"`

	// InterruptMode is "signal" or "message" in Jupyter terms.
	InterruptMode string `json:"interrupt_mode,omitempty" yaml:"interrupt_mode,omitempty"`

	// Env is passed to the kernel process.
	Env map[string]string `json:"env,omitempty" yaml:"env,omitempty"`
}

// ScanConfig controls how script lines are partitioned into cells.
type ScanConfig struct {
	// Trim strips leading and trailing newlines from each cell source (default true).
	Trim bool `json:"trim" yaml:"trim"`

	// DropUnterminated discards a trailing cell that has no closing delimiter.
	DropUnterminated bool `json:"drop_unterminated" yaml:"drop_unterminated"`
}

// ConvertConfig holds settings for converting a script into a notebook.
type ConvertConfig struct {
	ScanConfig `yaml:",inline"`

	// Language selects the script language: python or julia.
	Language Language `json:"language" yaml:"language"`

	// DisplayName overrides the kernel display name derived from Language.
	DisplayName string `json:"display_name,omitempty" yaml:"display_name,omitempty"`

	// Authors lists the notebook authors in order.
	Authors []string `json:"authors" yaml:"authors"`

	// Kernel carries the optional kernelspec fields.
	Kernel KernelConfig `json:"kernel" yaml:"kernel"`

	// Indent is the JSON indent string; empty writes compact JSON.
	Indent string `json:"indent,omitempty" yaml:"indent,omitempty"`
}

// DefaultConvertConfig returns the configuration used when nothing is set.
func DefaultConvertConfig() ConvertConfig {
	return ConvertConfig{
		ScanConfig: ScanConfig{Trim: true},
		Language:   DefaultLanguage,
	}
}
