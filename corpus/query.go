// Copyright 2026 The Liberalitas Authors
// SPDX-License-Identifier: Apache-2.0

package corpus

import (
	"fmt"
	"sort"
	"strings"

	"github.com/epigraphia/liberalitas/spatial"
	"github.com/epigraphia/liberalitas/utils/textutils"
)

// Collection is the finished, query-ready set of records from one pipeline
// run. It is immutable and safe for concurrent reads.
type Collection struct {
	records []Record
	metrics Metrics
}

// NewCollection builds a collection directly from records, mainly for tests.
func NewCollection(records []Record, metrics Metrics) *Collection {
	return &Collection{records: records, metrics: metrics}
}

// Records returns all records in source order.
func (c *Collection) Records() []Record {
	return c.records
}

// Metrics returns the run's aggregate metrics.
func (c *Collection) Metrics() Metrics {
	return c.metrics
}

// Search filters records by case-insensitive, accent-folded substring match
// over the named field, preserving source order. An empty term returns the
// full collection; searching a result with the same term is a no-op.
func (c *Collection) Search(term string, field Field) ([]Record, error) {
	if _, ok := (&Record{}).FieldValue(field); !ok {
		return nil, fmt.Errorf("unknown field %q", field)
	}

	if term == "" {
		// Copy so callers cannot mutate the collection through the result.
		return append([]Record(nil), c.records...), nil
	}

	folded := textutils.LowerASCIIFolding(term)
	matches := make([]Record, 0, len(c.records))

	for _, rec := range c.records {
		value, _ := rec.FieldValue(field)
		if strings.Contains(textutils.LowerASCIIFolding(value), folded) {
			matches = append(matches, rec)
		}
	}

	return matches, nil
}

// LocationCount is one entry of a location frequency table.
type LocationCount struct {
	Label string
	Count int
}

// LocationFrequency counts records per findspot label (combined with country
// when present), sorted descending by count with ties in first-seen order.
func (c *Collection) LocationFrequency() []LocationCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	var order []string

	for i, rec := range c.records {
		if rec.ModernFindSpot == "" {
			continue
		}

		label := rec.ModernFindSpot
		if rec.Country != "" {
			label += ", " + rec.Country
		}

		if _, ok := counts[label]; !ok {
			firstSeen[label] = i

			order = append(order, label)
		}

		counts[label]++
	}

	result := make([]LocationCount, 0, len(order))
	for _, label := range order {
		result = append(result, LocationCount{Label: label, Count: counts[label]})
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}

		return firstSeen[result[i].Label] < firstSeen[result[j].Label]
	})

	return result
}

// WordCount is one entry of a word frequency table.
type WordCount struct {
	Word  string
	Count int
}

// minTokenLen excludes the one- and two-letter particles that dominate Latin
// texts before stopwords even apply.
const minTokenLen = 3

// WordFrequency tokenizes all transcription text, folds case and accents,
// drops tokens shorter than three runes and any token in the stopword set,
// and returns the top entries by frequency, ties in first-seen order.
// A limit of zero or less returns all entries.
func (c *Collection) WordFrequency(stopwords map[string]struct{}, limit int) []WordCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	var order []string

	seq := 0

	for _, rec := range c.records {
		for _, token := range textutils.Tokenize(rec.Transcription) {
			seq++

			if len([]rune(token)) < minTokenLen {
				continue
			}

			if _, stop := stopwords[token]; stop {
				continue
			}

			if _, ok := counts[token]; !ok {
				firstSeen[token] = seq

				order = append(order, token)
			}

			counts[token]++
		}
	}

	result := make([]WordCount, 0, len(order))
	for _, token := range order {
		result = append(result, WordCount{Word: token, Count: counts[token]})
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}

		return firstSeen[result[i].Word] < firstSeen[result[j].Word]
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result
}

// Completeness returns, per named field, the fraction of records where the
// field is non-empty. An empty collection yields zero for every field.
func (c *Collection) Completeness(fields []Field) (map[Field]float64, error) {
	result := make(map[Field]float64, len(fields))

	for _, field := range fields {
		if _, ok := (&Record{}).FieldValue(field); !ok {
			return nil, fmt.Errorf("unknown field %q", field)
		}

		if len(c.records) == 0 {
			result[field] = 0

			continue
		}

		present := 0

		for _, rec := range c.records {
			if value, _ := rec.FieldValue(field); value != "" {
				present++
			}
		}

		result[field] = float64(present) / float64(len(c.records))
	}

	return result, nil
}

// CellCount is one entry of an H3 cell frequency table.
type CellCount struct {
	Cell  string
	Count int
}

// CellFrequency bins resolved records into H3 cells at the given resolution,
// sorted descending by count with ties in first-seen order. It feeds marker
// clustering in a map layer; unresolved records are excluded.
func (c *Collection) CellFrequency(res int) ([]CellCount, error) {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	var order []string

	for i, rec := range c.records {
		if rec.Point == nil {
			continue
		}

		cell, err := rec.Point.Cell(res)
		if err != nil {
			return nil, err
		}

		key := cell.String()

		if _, ok := counts[key]; !ok {
			firstSeen[key] = i

			order = append(order, key)
		}

		counts[key]++
	}

	result := make([]CellCount, 0, len(order))
	for _, key := range order {
		result = append(result, CellCount{Cell: key, Count: counts[key]})
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}

		return firstSeen[result[i].Cell] < firstSeen[result[j].Cell]
	})

	return result, nil
}

// Near returns the resolved records within radius meters of center, in
// source order. Unresolved records never match, whatever the radius.
func (c *Collection) Near(center spatial.Point, radius float64) []Record {
	matches := make([]Record, 0)

	for _, rec := range c.records {
		if rec.Point == nil {
			continue
		}

		if center.HaversineDistance(rec.Point) <= radius {
			matches = append(matches, rec)
		}
	}

	return matches
}

// Mapped returns the records with resolved coordinates, in source order.
func (c *Collection) Mapped() []Record {
	mapped := make([]Record, 0, len(c.records))

	for _, rec := range c.records {
		if rec.Point != nil {
			mapped = append(mapped, rec)
		}
	}

	return mapped
}

// Unmapped returns the records without resolved coordinates, in source order.
func (c *Collection) Unmapped() []Record {
	unmapped := make([]Record, 0)

	for _, rec := range c.records {
		if rec.Point == nil {
			unmapped = append(unmapped, rec)
		}
	}

	return unmapped
}

// excerptLen bounds the transcription excerpt on map markers.
const excerptLen = 500

// Marker is the presentation-boundary export of one mappable record.
type Marker struct {
	ID           string        `json:"id,omitempty"`
	Place        string        `json:"place"`
	Point        spatial.Point `json:"point"`
	Excerpt      string        `json:"excerpt"`
	WomenRelated bool          `json:"women_related"`
}

// Markers exports the resolved records for a downstream map layer.
func (c *Collection) Markers() []Marker {
	markers := make([]Marker, 0, len(c.records))

	for _, rec := range c.records {
		if rec.Point == nil {
			continue
		}

		markers = append(markers, Marker{
			ID:           rec.ID,
			Place:        rec.ModernFindSpot,
			Point:        *rec.Point,
			Excerpt:      excerpt(rec.Transcription),
			WomenRelated: rec.WomenRelated,
		})
	}

	return markers
}

func excerpt(s string) string {
	runes := []rune(s)
	if len(runes) <= excerptLen {
		return s
	}

	return string(runes[:excerptLen]) + "..."
}
