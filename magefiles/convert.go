//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	sampleDir    = "samples"
	sampleOutDir = "samples-out"
)

// Samples converts the scripts under samples/ with the freshly built CLI.
func Samples() error {
	mg.Deps(Build)

	scripts, err := filepath.Glob(filepath.Join(sampleDir, "*.py"))
	if err != nil {
		return err
	}
	jl, err := filepath.Glob(filepath.Join(sampleDir, "*.jl"))
	if err != nil {
		return err
	}

	if len(scripts) > 0 {
		args := append([]string{"batch", "--out-dir", sampleOutDir, "--indent", " "}, scripts...)
		if err := sh.RunV(binPath, args...); err != nil {
			return fmt.Errorf("converting python samples: %w", err)
		}
	}
	if len(jl) > 0 {
		args := append([]string{"batch", "--out-dir", sampleOutDir, "--indent", " ", "--language", "julia"}, jl...)
		if err := sh.RunV(binPath, args...); err != nil {
			return fmt.Errorf("converting julia samples: %w", err)
		}
	}
	return nil
}
