// Copyright 2026 The Liberalitas Authors
// SPDX-License-Identifier: Apache-2.0

package corpus

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epigraphia/liberalitas/classify"
	"github.com/epigraphia/liberalitas/geocode"
)

type countingGeocoder struct {
	calls   map[string]int
	results map[string]*geocode.Result
}

func newCountingGeocoder() *countingGeocoder {
	return &countingGeocoder{
		calls:   make(map[string]int),
		results: make(map[string]*geocode.Result),
	}
}

func (g *countingGeocoder) Geocode(_ context.Context, place string) (*geocode.Result, error) {
	g.calls[place]++

	if result, ok := g.results[place]; ok {
		return result, nil
	}

	return nil, &geocode.Error{Kind: geocode.KindNotFound, Message: "no results found for place: " + place}
}

const pipelineCSV = `hd-no.,transcription,modern find spot,ancient find spot,country,"coordinates (lat,lng)"
HD000001,ob insignem liberalitatem,Minturno,Minturnae,Italy,"41.26,13.76"
HD000002,...liberalitate...,,Thugga,Tunisia,
HD000003,pecunia sua restituit,Roma,,Italy,
HD000004,liberalitas Augusti,Roma,,Italy,
HD000005,,Pompei,Pompeii,Italy,"40.75,14.49"
`

func pipelineConfig() Config {
	return Config{
		Repairs: []RepairRule{
			{Row: 1, Target: ColModernSpot, Fallback: ColAncientSpot},
		},
		Reference: classify.Reference{
			NamePhrases: []string{"liberalitas Augusti"},
		},
		Stopwords: []string{"eius"},
	}
}

func TestPipeline_Run(t *testing.T) {
	fake := newCountingGeocoder()
	fake.results["Thugga"] = &geocode.Result{Latitude: 36.42, Longitude: 9.21, Provider: "fake"}
	fake.results["Roma"] = &geocode.Result{Latitude: 41.9, Longitude: 12.5, Provider: "fake"}

	pipeline := NewPipeline(geocode.NewResolver(fake, geocode.NewCache(), 0))

	collection, err := pipeline.Run(context.Background(), strings.NewReader(pipelineCSV), pipelineConfig())
	require.NoError(t, err)

	m := collection.Metrics()
	assert.Equal(t, 5, m.Loaded)
	assert.Equal(t, 1, m.Repaired)
	assert.Equal(t, 1, m.Dropped, "row without transcription is dropped")
	assert.Equal(t, 4, m.Resolved)
	assert.Equal(t, 0, m.Unresolved)

	records := collection.Records()
	require.Len(t, records, 4)

	// Gap repair: the fallback row's modern find spot comes from the ancient one.
	assert.Equal(t, "Thugga", records[1].ModernFindSpot)

	// Explicit coordinate text is authoritative and bypasses geocoding.
	require.NotNil(t, records[0].Point)
	assert.InDelta(t, 41.26, records[0].Point.Lat, 1e-9)
	assert.Zero(t, fake.calls["Minturno"])

	// One geocoding call per distinct place, shared by both Roma records.
	assert.Equal(t, 1, fake.calls["Roma"])
	assert.Equal(t, records[2].Point, records[3].Point)
	assert.Equal(t, 1, fake.calls["Thugga"])
	assert.Equal(t, 2, m.GeocodeCalls)

	// Classification against the reference list.
	assert.False(t, records[1].WomenRelated)
	assert.True(t, records[3].WomenRelated)

	// The dropped row never surfaces in query results.
	matches, err := collection.Search("Pompei", FieldModernSpot)
	require.NoError(t, err)
	assert.Empty(t, matches)

	// The repaired record is searchable by transcription.
	matches, err = collection.Search("liberalitate", FieldTranscription)
	require.NoError(t, err)

	found := false

	for _, rec := range matches {
		if rec.ModernFindSpot == "Thugga" {
			found = true
		}
	}

	assert.True(t, found)
}

func TestPipeline_ResolutionFailuresAreNonFatal(t *testing.T) {
	fake := newCountingGeocoder() // knows no places

	pipeline := NewPipeline(geocode.NewResolver(fake, geocode.NewCache(), 0))

	collection, err := pipeline.Run(context.Background(), strings.NewReader(pipelineCSV), pipelineConfig())
	require.NoError(t, err)

	m := collection.Metrics()
	assert.Equal(t, 1, m.Resolved, "only the coordinate-text record resolves")
	assert.Equal(t, 3, m.Unresolved)

	// Unresolved records stay in the collection for text queries.
	assert.Len(t, collection.Records(), 4)
	assert.Len(t, collection.Unmapped(), 3)
}

func TestPipeline_StructuralFailureAborts(t *testing.T) {
	pipeline := NewPipeline(nil)

	_, err := pipeline.Run(context.Background(), strings.NewReader("hd-no.,country\nHD1,Italy\n"), DefaultConfig())
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestPipeline_SkipGeocode(t *testing.T) {
	pipeline := NewPipeline(nil) // lookup-disabled resolver

	collection, err := pipeline.Run(context.Background(), strings.NewReader(pipelineCSV), pipelineConfig())
	require.NoError(t, err)

	m := collection.Metrics()
	assert.Equal(t, 1, m.Resolved)
	assert.Equal(t, 3, m.Unresolved)
	assert.Zero(t, m.GeocodeCalls)
}
