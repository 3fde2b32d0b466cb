// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package notebook partitions a delimited script into notebook cells and
// assembles the nbformat document.
//
// A delimiter is any line starting with "#%%". The rest of the line, trimmed,
// names the type of the cell that follows: "code", "markdown" or "raw". Lines
// after a delimiter with any other label are discarded until the next
// delimiter. In markdown and raw cells a leading "# " is stripped from each
// line so prose can be written as comments in the script.
package notebook

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/script2nb/pkg/types"
)

const (
	// Delimiter marks a cell boundary at the start of a line.
	Delimiter = "#%%"

	// commentPrefix is stripped from non-code cell lines.
	commentPrefix = "# "
)

// MaxLineSize bounds a single input line in bytes.
var MaxLineSize = 16 << 20

// scanState is the scanner's position relative to cells.
type scanState int

const (
	// stateIdle means no cell is open and lines are discarded.
	stateIdle scanState = iota
	// stateActive means a cell of Scanner.cellType is open.
	stateActive
)

// ParseDelimiter reports whether line is a delimiter and returns its trimmed label.
func ParseDelimiter(line string) (label string, ok bool) {
	if !strings.HasPrefix(line, Delimiter) {
		return "", false
	}
	return strings.TrimSpace(line[len(Delimiter):]), true
}

// Scanner accumulates script lines into cells. Use Feed for each line and
// Finish once the input is exhausted.
type Scanner struct {
	cfg      types.ScanConfig
	state    scanState
	cellType types.CellType
	lines    []string
	cells    []types.Cell
}

// NewScanner returns an idle scanner.
func NewScanner(cfg types.ScanConfig) *Scanner {
	return &Scanner{cfg: cfg}
}

// Feed consumes one input line without its line terminator.
func (s *Scanner) Feed(line string) {
	if label, ok := ParseDelimiter(line); ok {
		s.flush()
		if ct, ok := types.ParseCellType(label); ok {
			s.state = stateActive
			s.cellType = ct
		} else {
			s.state = stateIdle
			s.cellType = ""
		}
		return
	}

	if s.state == stateIdle {
		return
	}
	if s.cellType != types.CellCode {
		line = strings.TrimPrefix(line, commentPrefix)
	}
	s.lines = append(s.lines, line)
}

// Finish closes the scan and returns the cells in input order. An open cell
// is flushed unless DropUnterminated is set.
func (s *Scanner) Finish() []types.Cell {
	if !s.cfg.DropUnterminated {
		s.flush()
	}
	s.lines = s.lines[:0]
	s.state = stateIdle

	cells := s.cells
	if cells == nil {
		cells = []types.Cell{}
	}
	s.cells = nil
	return cells
}

func (s *Scanner) flush() {
	if s.state == stateActive {
		source := strings.Join(s.lines, "\n")
		if s.cfg.Trim {
			source = strings.Trim(source, "\n")
		}
		s.cells = append(s.cells, types.Cell{
			CellType: s.cellType,
			Source:   source,
		})
	}
	s.lines = s.lines[:0]
}

// ScanCells reads r line by line and returns its cells.
func ScanCells(r io.Reader, cfg types.ScanConfig) ([]types.Cell, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(64*1024, MaxLineSize)), MaxLineSize)

	s := NewScanner(cfg)
	n := 0
	for sc.Scan() {
		n++
		line := sc.Text()
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("reading script: line %d: invalid UTF-8", n)
		}
		s.Feed(line)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("reading script: line %d exceeds %d bytes: %w", n+1, MaxLineSize, err)
		}
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return s.Finish(), nil
}

// ScanLines is ScanCells over an in-memory slice of lines.
func ScanLines(lines []string, cfg types.ScanConfig) []types.Cell {
	s := NewScanner(cfg)
	for _, l := range lines {
		s.Feed(l)
	}
	return s.Finish()
}
