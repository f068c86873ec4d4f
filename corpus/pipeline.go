// Copyright 2026 The Liberalitas Authors
// SPDX-License-Identifier: Apache-2.0

package corpus

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/epigraphia/liberalitas/classify"
	"github.com/epigraphia/liberalitas/geocode"
)

// Metrics aggregates one pipeline run. Row-level resolution failures are
// silent individually and only surface here.
type Metrics struct {
	Loaded       int // rows read from the source
	Repaired     int // repair rules that fired
	Dropped      int // rows dropped for missing transcription/find spot
	Resolved     int // records with coordinates
	Unresolved   int // records kept without coordinates
	GeocodeCalls int // lookups actually issued to the provider
}

// Pipeline runs the single-pass load → repair → resolve → classify sequence.
// Geocoding is the only step that touches an external resource; everything
// else is in-memory transformation.
type Pipeline struct {
	resolver *geocode.Resolver
}

// NewPipeline creates a Pipeline around a coordinate resolver. A nil resolver
// gets a lookup-disabled one, so explicit coordinate text still parses.
func NewPipeline(resolver *geocode.Resolver) *Pipeline {
	if resolver == nil {
		resolver = geocode.NewResolver(nil, nil, 0)
	}

	return &Pipeline{resolver: resolver}
}

// Run executes the pipeline against one CSV source and returns the finished,
// query-ready collection. Only structural load failures abort; a record whose
// coordinates cannot be resolved stays in the collection without a Point.
func (p *Pipeline) Run(ctx context.Context, r io.Reader, cfg Config) (*Collection, error) {
	rows, err := Load(r)
	if err != nil {
		return nil, err
	}

	metrics := Metrics{Loaded: len(rows)}
	metrics.Repaired = Repair(rows, cfg.Repairs)

	records, dropped := Normalize(rows)
	metrics.Dropped = dropped

	var bar *progressbar.ProgressBar
	if isatty.IsTerminal(os.Stderr.Fd()) {
		bar = progressbar.NewOptions(len(records),
			progressbar.OptionSetDescription("Resolving findspots"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	matcher := classify.NewMatcher(cfg.Reference)

	for i := range records {
		rec := &records[i]

		point, err := p.resolver.Resolve(ctx, rec.CoordinateText, rec.ModernFindSpot)
		if err == nil {
			rec.Point = point
			metrics.Resolved++
		} else {
			metrics.Unresolved++
		}

		rec.WomenRelated = matcher.Match(rec.Transcription)

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	metrics.GeocodeCalls = p.resolver.Calls()

	return &Collection{records: records, metrics: metrics}, nil
}
