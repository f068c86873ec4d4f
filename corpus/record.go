// Copyright 2026 The Liberalitas Authors
// SPDX-License-Identifier: Apache-2.0

// Package corpus implements the inscription record pipeline: it loads a CSV
// export of Latin inscriptions mentioning liberalitas, repairs known data
// gaps, resolves findspot coordinates, classifies each record, and exposes a
// query surface over the normalized collection.
package corpus

import "github.com/epigraphia/liberalitas/spatial"

// Source CSV column names, per dataset convention (case- and punctuation-sensitive).
const (
	ColID            = "hd-no."
	ColTranscription = "transcription"
	ColModernSpot    = "modern find spot"
	ColAncientSpot   = "ancient find spot"
	ColCountry       = "country"
	ColProvince      = "province / Italic region"
	ColCoordinates   = "coordinates (lat,lng)"
	ColChronology    = "chronological data"
	ColMonument      = "type of monument"
	ColMaterial      = "material"
	ColCommentary    = "commentary"
)

// Record is one normalized inscription row. Records are immutable once the
// pipeline completes; Point is nil when coordinate resolution failed, in which
// case the record is kept for text display but excluded from map output.
type Record struct {
	ID              string
	Transcription   string
	ModernFindSpot  string
	AncientFindSpot string
	Country         string
	Province        string
	CoordinateText  string
	Chronology      string
	Monument        string
	Material        string
	Commentary      string
	Point           *spatial.Point
	WomenRelated    bool
}

// Field names a queryable text field of a Record.
type Field string

const (
	FieldID            Field = "id"
	FieldTranscription Field = "transcription"
	FieldModernSpot    Field = "modern find spot"
	FieldAncientSpot   Field = "ancient find spot"
	FieldCountry       Field = "country"
	FieldProvince      Field = "province"
	FieldChronology    Field = "chronology"
	FieldMonument      Field = "monument"
	FieldMaterial      Field = "material"
	FieldCommentary    Field = "commentary"
)

// Fields lists all queryable fields in display order.
func Fields() []Field {
	return []Field{
		FieldID,
		FieldTranscription,
		FieldModernSpot,
		FieldAncientSpot,
		FieldCountry,
		FieldProvince,
		FieldChronology,
		FieldMonument,
		FieldMaterial,
		FieldCommentary,
	}
}

// FieldValue returns the value of the named field, and whether the field name
// is known.
func (r *Record) FieldValue(field Field) (string, bool) {
	switch field {
	case FieldID:
		return r.ID, true
	case FieldTranscription:
		return r.Transcription, true
	case FieldModernSpot:
		return r.ModernFindSpot, true
	case FieldAncientSpot:
		return r.AncientFindSpot, true
	case FieldCountry:
		return r.Country, true
	case FieldProvince:
		return r.Province, true
	case FieldChronology:
		return r.Chronology, true
	case FieldMonument:
		return r.Monument, true
	case FieldMaterial:
		return r.Material, true
	case FieldCommentary:
		return r.Commentary, true
	default:
		return "", false
	}
}
