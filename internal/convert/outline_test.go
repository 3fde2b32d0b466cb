// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/script2nb/pkg/types"
)

func sampleNotebook() types.Notebook {
	return types.Notebook{
		NBFormat:      4,
		NBFormatMinor: 4,
		Cells: []types.Cell{
			{CellType: types.CellMarkdown, Source: "Title\nbody"},
			{CellType: types.CellCode, Source: "import os\nprint(os.getcwd())\nx = 1"},
			{CellType: types.CellRaw, Source: ""},
			{CellType: types.CellCode, Source: strings.Repeat("y", 80)},
		},
	}
}

func TestOutline(t *testing.T) {
	got := Outline(sampleNotebook())
	require.Len(t, got, 4)

	assert.Equal(t, OutlineEntry{Index: 1, CellType: types.CellMarkdown, Lines: 2, Preview: "Title"}, got[0])
	assert.Equal(t, OutlineEntry{Index: 2, CellType: types.CellCode, Lines: 3, Preview: "import os"}, got[1])
	assert.Equal(t, OutlineEntry{Index: 3, CellType: types.CellRaw, Lines: 0, Preview: ""}, got[2])
	assert.Equal(t, strings.Repeat("y", 57)+"...", got[3].Preview)
}

func TestWriteOutline(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteOutline(&buf, sampleNotebook(), "yaml"))

		var entries []OutlineEntry
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &entries))
		assert.Equal(t, Outline(sampleNotebook()), entries)
		assert.Contains(t, buf.String(), "cell_type: markdown")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteOutline(&buf, sampleNotebook(), "json"))

		var entries []OutlineEntry
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
		assert.Equal(t, Outline(sampleNotebook()), entries)
	})

	t.Run("unsupported format", func(t *testing.T) {
		var buf bytes.Buffer
		err := WriteOutline(&buf, sampleNotebook(), "toml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unsupported format "toml"`)
	})
}
