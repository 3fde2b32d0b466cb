// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"sort"
	"strings"
)

// Language identifies the scripting language of the input file.
type Language string

const (
	LanguagePython Language = "python"
	LanguageJulia  Language = "julia"
)

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = LanguagePython

// languageProfile holds the constants a language contributes to notebook metadata.
type languageProfile struct {
	extension   string
	mimeType    string
	displayName string
}

var languages = map[Language]languageProfile{
	LanguagePython: {extension: ".py", mimeType: "application/python", displayName: "python3"},
	LanguageJulia:  {extension: ".jl", mimeType: "application/julia", displayName: "julia"},
}

// LanguageParseError reports a language value outside the supported set.
type LanguageParseError struct {
	Attempted string
}

func (e *LanguageParseError) Error() string {
	return fmt.Sprintf("attempted to parse %q, but expected %s", e.Attempted, quotedLanguages())
}

// ParseLanguage validates s against the supported languages.
func ParseLanguage(s string) (Language, error) {
	l := Language(s)
	if _, ok := languages[l]; !ok {
		return "", &LanguageParseError{Attempted: s}
	}
	return l, nil
}

// Languages returns the supported languages in name order.
func Languages() []Language {
	out := make([]Language, 0, len(languages))
	for l := range languages {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func quotedLanguages() string {
	names := make([]string, 0, len(languages))
	for _, l := range Languages() {
		names = append(names, "'"+string(l)+"'")
	}
	return strings.Join(names, " or ")
}

// Name returns the language name used in kernelspec and language_info.
func (l Language) Name() string { return string(l) }

// FileExtension returns the script file extension, including the dot.
func (l Language) FileExtension() string { return languages[l].extension }

// MIMEType returns the MIME type advertised in language_info.
func (l Language) MIMEType() string { return languages[l].mimeType }

// DisplayName returns the default kernel display name.
func (l Language) DisplayName() string { return languages[l].displayName }

// Info builds the language_info metadata block.
func (l Language) Info() LanguageInfo {
	return LanguageInfo{
		FileExtension: l.FileExtension(),
		MIMEType:      l.MIMEType(),
		Name:          l.Name(),
	}
}
