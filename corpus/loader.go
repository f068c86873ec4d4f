// Copyright 2026 The Liberalitas Authors
// SPDX-License-Identifier: Apache-2.0

package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Cell is a single CSV cell. Present distinguishes "column not in this row"
// from "present but empty", which the repair rules need to tell apart.
type Cell struct {
	Value   string
	Present bool
}

// Empty reports whether the cell is absent or holds only whitespace.
func (c Cell) Empty() bool {
	return !c.Present || strings.TrimSpace(c.Value) == ""
}

// Row maps column names to cells. Columns absent from the source header or
// beyond a ragged row's length have no entry, which reads as an absent Cell.
type Row map[string]Cell

// Get returns the cell for a column; missing columns yield an absent Cell.
func (r Row) Get(column string) Cell {
	return r[column]
}

// LoadError is a structural load failure: an unreadable source, a malformed
// header, or a missing required column. It aborts the whole load; row-level
// problems never do.
type LoadError struct {
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("loading source: %s: %v", e.Reason, e.Err)
	}

	return "loading source: " + e.Reason
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// requiredColumns must be present in the header. Without them every record
// would be dropped after repair, so their absence is structural.
var requiredColumns = []string{ColTranscription, ColModernSpot}

// Load parses a CSV source with a header row into an ordered sequence of rows.
// Ragged rows are tolerated: short rows leave trailing columns absent. Optional
// columns may be missing entirely; only the required ones abort the load.
func Load(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows are a row-level concern

	header, err := reader.Read()
	if err != nil {
		return nil, &LoadError{Reason: "reading header", Err: err}
	}

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.TrimSpace(name)
	}

	for _, required := range requiredColumns {
		found := false

		for _, name := range columns {
			if name == required {
				found = true

				break
			}
		}

		if !found {
			return nil, &LoadError{Reason: fmt.Sprintf("missing required column %q", required)}
		}
	}

	var rows []Row

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, &LoadError{Reason: "reading rows", Err: err}
		}

		row := make(Row, len(columns))

		for i, value := range record {
			if i >= len(columns) || columns[i] == "" {
				continue
			}

			row[columns[i]] = Cell{Value: value, Present: true}
		}

		rows = append(rows, row)
	}

	return rows, nil
}
