// Copyright 2026 The Liberalitas Authors
// SPDX-License-Identifier: Apache-2.0

package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(cells map[string]string) Row {
	r := make(Row, len(cells))
	for column, value := range cells {
		r[column] = Cell{Value: value, Present: true}
	}

	return r
}

func TestRepair(t *testing.T) {
	tests := []struct {
		name        string
		rows        []Row
		rules       []RepairRule
		wantApplied int
		wantTarget  string
	}{
		{
			name: "fills empty target from fallback",
			rows: []Row{row(map[string]string{
				ColModernSpot:  "",
				ColAncientSpot: "Thugga",
			})},
			rules:       []RepairRule{{Row: 0, Target: ColModernSpot, Fallback: ColAncientSpot}},
			wantApplied: 1,
			wantTarget:  "Thugga",
		},
		{
			name: "fills absent target from fallback",
			rows: []Row{row(map[string]string{
				ColAncientSpot: "Thamugadi",
			})},
			rules:       []RepairRule{{Row: 0, Target: ColModernSpot, Fallback: ColAncientSpot}},
			wantApplied: 1,
			wantTarget:  "Thamugadi",
		},
		{
			name: "leaves filled target alone",
			rows: []Row{row(map[string]string{
				ColModernSpot:  "Dougga",
				ColAncientSpot: "Thugga",
			})},
			rules:       []RepairRule{{Row: 0, Target: ColModernSpot, Fallback: ColAncientSpot}},
			wantApplied: 0,
			wantTarget:  "Dougga",
		},
		{
			name: "empty fallback does nothing",
			rows: []Row{row(map[string]string{
				ColModernSpot:  "",
				ColAncientSpot: "",
			})},
			rules:       []RepairRule{{Row: 0, Target: ColModernSpot, Fallback: ColAncientSpot}},
			wantApplied: 0,
			wantTarget:  "",
		},
		{
			name: "out of range row is skipped",
			rows: []Row{row(map[string]string{
				ColAncientSpot: "Thugga",
			})},
			rules:       []RepairRule{{Row: 5, Target: ColModernSpot, Fallback: ColAncientSpot}},
			wantApplied: 0,
			wantTarget:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			applied := Repair(tt.rows, tt.rules)
			assert.Equal(t, tt.wantApplied, applied)
			assert.Equal(t, tt.wantTarget, tt.rows[0].Get(ColModernSpot).Value)
		})
	}
}

func TestNormalize_DropsIncompleteRows(t *testing.T) {
	rows := []Row{
		row(map[string]string{
			ColTranscription: "ob liberalitatem",
			ColModernSpot:    "Dougga",
		}),
		row(map[string]string{
			// No transcription at all.
			ColModernSpot: "Roma",
		}),
		row(map[string]string{
			ColTranscription: "pecunia sua fecit",
			ColModernSpot:    "",
		}),
	}

	records, dropped := Normalize(rows)
	require.Len(t, records, 1)
	assert.Equal(t, 2, dropped)
	assert.Equal(t, "Dougga", records[0].ModernFindSpot)
}

func TestNormalize_TrimsValues(t *testing.T) {
	rows := []Row{
		row(map[string]string{
			ColTranscription: "  ob liberalitatem  ",
			ColModernSpot:    " Dougga ",
			ColCoordinates:   " 36.42,9.21 ",
		}),
	}

	records, dropped := Normalize(rows)
	require.Len(t, records, 1)
	assert.Zero(t, dropped)
	assert.Equal(t, "ob liberalitatem", records[0].Transcription)
	assert.Equal(t, "Dougga", records[0].ModernFindSpot)
	assert.Equal(t, "36.42,9.21", records[0].CoordinateText)
}

// The dataset's configured fallback rows keep their record only because the
// ancient find spot is copied over before the drop pass.
func TestRepairThenNormalize_FallbackScenario(t *testing.T) {
	rows := []Row{
		row(map[string]string{
			ColTranscription: "aliquid aliud",
			ColModernSpot:    "Roma",
		}),
		row(map[string]string{
			ColTranscription: "...liberalitate...",
			ColModernSpot:    "",
			ColAncientSpot:   "Thugga",
			ColCoordinates:   "",
		}),
	}

	applied := Repair(rows, []RepairRule{{Row: 1, Target: ColModernSpot, Fallback: ColAncientSpot}})
	assert.Equal(t, 1, applied)

	records, dropped := Normalize(rows)
	require.Len(t, records, 2)
	assert.Zero(t, dropped)
	assert.Equal(t, "Thugga", records[1].ModernFindSpot)
}
