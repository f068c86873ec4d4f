// Copyright 2026 The Liberalitas Authors
// SPDX-License-Identifier: Apache-2.0

package corpus

import "strings"

// RepairRule fills a known data gap: when the target column of the given row
// (zero-based) is absent or empty, the fallback column's value is copied in.
// The dataset ships two such rows whose modern find spot is only recorded
// under its ancient name. Rules are configuration, not pipeline logic.
type RepairRule struct {
	Row      int    `yaml:"row"`
	Target   string `yaml:"target"`
	Fallback string `yaml:"fallback"`
}

// Repair applies the rules in order, mutating rows in place, and returns the
// number of rules that actually fired. Out-of-range rows, already-filled
// targets, and empty fallbacks leave the row untouched.
func Repair(rows []Row, rules []RepairRule) int {
	applied := 0

	for _, rule := range rules {
		if rule.Row < 0 || rule.Row >= len(rows) {
			continue
		}

		row := rows[rule.Row]
		if !row.Get(rule.Target).Empty() {
			continue
		}

		fallback := row.Get(rule.Fallback)
		if fallback.Empty() {
			continue
		}

		row[rule.Target] = Cell{Value: fallback.Value, Present: true}
		applied++
	}

	return applied
}

// Normalize maps repaired rows into Records, dropping any row still missing a
// transcription or a modern find spot. It returns the surviving records in
// source order and the number of rows dropped.
func Normalize(rows []Row) ([]Record, int) {
	records := make([]Record, 0, len(rows))
	dropped := 0

	for _, row := range rows {
		if row.Get(ColTranscription).Empty() || row.Get(ColModernSpot).Empty() {
			dropped++

			continue
		}

		records = append(records, Record{
			ID:              strings.TrimSpace(row.Get(ColID).Value),
			Transcription:   strings.TrimSpace(row.Get(ColTranscription).Value),
			ModernFindSpot:  strings.TrimSpace(row.Get(ColModernSpot).Value),
			AncientFindSpot: strings.TrimSpace(row.Get(ColAncientSpot).Value),
			Country:         strings.TrimSpace(row.Get(ColCountry).Value),
			Province:        strings.TrimSpace(row.Get(ColProvince).Value),
			CoordinateText:  strings.TrimSpace(row.Get(ColCoordinates).Value),
			Chronology:      strings.TrimSpace(row.Get(ColChronology).Value),
			Monument:        strings.TrimSpace(row.Get(ColMonument).Value),
			Material:        strings.TrimSpace(row.Get(ColMaterial).Value),
			Commentary:      strings.TrimSpace(row.Get(ColCommentary).Value),
		})
	}

	return records, dropped
}
