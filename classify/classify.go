// Copyright 2026 The Liberalitas Authors
// SPDX-License-Identifier: Apache-2.0

// Package classify flags inscriptions that relate to women benefactors.
//
// The matching is a best-effort heuristic over transcription text, not ground
// truth: catalog identifiers are matched by their fragments, which is known to
// produce false positives, and the name-phrase list is necessarily incomplete.
// Treat the resulting label as a suggestion for display, never as data.
package classify

import (
	"strings"

	"github.com/epigraphia/liberalitas/utils/textutils"
)

// Reference holds the static reference lists a Matcher is built from.
// It is configuration data, replaceable without code changes.
type Reference struct {
	// CatalogIDs are known catalog identifiers of women-related inscriptions,
	// e.g. "CIL 11, 01421" or "HD032311".
	CatalogIDs []string `yaml:"catalog_ids"`
	// NamePhrases are names or phrases naming women benefactors,
	// e.g. "Agusiae Priscillae".
	NamePhrases []string `yaml:"name_phrases"`
}

// minFragmentLen is the shortest catalog-identifier fragment that counts as a
// match. Shorter fragments ("CIL", volume numbers) fire on nearly every text.
const minFragmentLen = 3

// Matcher checks transcription texts against a Reference.
type Matcher struct {
	phrases   []string
	fragments []string
}

// NewMatcher pre-folds the reference lists for repeated matching.
// Catalog identifiers are split into fragments and only fragments longer than
// minFragmentLen are kept; partial identifier overlap is intentional.
func NewMatcher(ref Reference) *Matcher {
	m := &Matcher{
		phrases: make([]string, 0, len(ref.NamePhrases)),
	}

	for _, phrase := range ref.NamePhrases {
		folded := textutils.LowerASCIIFolding(phrase)
		if folded != "" {
			m.phrases = append(m.phrases, folded)
		}
	}

	for _, id := range ref.CatalogIDs {
		for _, fragment := range textutils.Fragments(id) {
			if len(fragment) > minFragmentLen {
				m.fragments = append(m.fragments, fragment)
			}
		}
	}

	return m
}

// Match reports whether a transcription text matches the reference set,
// either by containing a catalog-identifier fragment or a name phrase.
// Matching is case-insensitive and accent-folded.
func (m *Matcher) Match(transcription string) bool {
	folded := textutils.LowerASCIIFolding(transcription)
	if folded == "" {
		return false
	}

	for _, fragment := range m.fragments {
		if strings.Contains(folded, fragment) {
			return true
		}
	}

	for _, phrase := range m.phrases {
		if strings.Contains(folded, phrase) {
			return true
		}
	}

	return false
}
