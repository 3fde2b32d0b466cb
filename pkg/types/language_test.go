// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in       string
		want     Language
		wantExt  string
		wantMIME string
		errMsg   string
	}{
		{in: "python", want: LanguagePython, wantExt: ".py", wantMIME: "application/python"},
		{in: "julia", want: LanguageJulia, wantExt: ".jl", wantMIME: "application/julia"},
		{in: "Python", errMsg: `attempted to parse "Python", but expected 'julia' or 'python'`},
		{in: "rust", errMsg: `attempted to parse "rust"`},
		{in: "", errMsg: `attempted to parse ""`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLanguage(tt.in)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				var perr *LanguageParseError
				assert.True(t, errors.As(err, &perr))
				assert.Equal(t, tt.in, perr.Attempted)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantExt, got.FileExtension())
			assert.Equal(t, tt.wantMIME, got.MIMEType())
			assert.Equal(t, LanguageInfo{FileExtension: tt.wantExt, MIMEType: tt.wantMIME, Name: tt.in}, got.Info())
		})
	}
}

func TestLanguages(t *testing.T) {
	assert.Equal(t, []Language{LanguageJulia, LanguagePython}, Languages())
}

func TestParseCellType(t *testing.T) {
	for _, label := range []string{"code", "markdown", "raw"} {
		ct, ok := ParseCellType(label)
		assert.True(t, ok, label)
		assert.Equal(t, CellType(label), ct)
	}
	for _, label := range []string{"", "Code", "md", "python", " code"} {
		_, ok := ParseCellType(label)
		assert.False(t, ok, label)
	}
}
