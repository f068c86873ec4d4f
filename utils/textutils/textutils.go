// Copyright 2026 The Liberalitas Authors
// SPDX-License-Identifier: Apache-2.0

package textutils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// LowerASCIIFolding normalizes a string by removing accents, lowercasing, and trimming spaces.
func LowerASCIIFolding(s string) string {
	s, _, _ = transform.String(
		transform.Chain(
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)),
			norm.NFC,
		),
		strings.TrimSpace(strings.ToLower(s)),
	)

	return s
}

// Tokenize splits a string into folded lowercase tokens on any non-letter rune.
// Epigraphic transcriptions carry editorial brackets ([ ] ( ) /) that must not
// end up inside tokens.
func Tokenize(s string) []string {
	return strings.FieldsFunc(LowerASCIIFolding(s), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

// Fragments splits an identifier into alphanumeric fragments.
// "CIL 11, 01421" yields ["cil", "11", "01421"].
func Fragments(s string) []string {
	return strings.FieldsFunc(LowerASCIIFolding(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
