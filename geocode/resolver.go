// Copyright 2026 The Liberalitas Authors
// SPDX-License-Identifier: Apache-2.0

package geocode

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/epigraphia/liberalitas/spatial"
)

// coordinatePattern matches "<number>,<number>" with optional surrounding whitespace.
var coordinatePattern = regexp.MustCompile(`^\s*(-?\d+(?:\.\d+)?)\s*,\s*(-?\d+(?:\.\d+)?)\s*$`)

// ParseCoordinateText parses an explicit "lat,lng" column value.
// A parse failure returns a KindMalformedCoordinate error so the caller can
// fall through to geocoding instead of dropping the record.
func ParseCoordinateText(s string) (*spatial.Point, error) {
	m := coordinatePattern.FindStringSubmatch(s)
	if m == nil {
		return nil, &Error{
			Kind:    KindMalformedCoordinate,
			Message: fmt.Sprintf("coordinate text %q does not match <lat>,<lng>", strings.TrimSpace(s)),
		}
	}

	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil, &Error{Kind: KindMalformedCoordinate, Message: "parsing latitude", Err: err}
	}

	lng, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return nil, &Error{Kind: KindMalformedCoordinate, Message: "parsing longitude", Err: err}
	}

	return &spatial.Point{Lat: lat, Lng: lng}, nil
}

// DefaultTimeout bounds a single geocoding lookup.
const DefaultTimeout = 5 * time.Second

// Resolver derives coordinates for records, preferring the explicit coordinate
// column and falling back to a geocoding lookup memoized per place name.
type Resolver struct {
	geocoder Geocoder
	cache    *Cache
	timeout  time.Duration
	calls    int
}

// NewResolver creates a Resolver. A nil geocoder disables lookups: records
// without parseable coordinate text resolve as unavailable. A zero timeout
// falls back to DefaultTimeout.
func NewResolver(geocoder Geocoder, cache *Cache, timeout time.Duration) *Resolver {
	if cache == nil {
		cache = NewCache()
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Resolver{
		geocoder: geocoder,
		cache:    cache,
		timeout:  timeout,
	}
}

// Calls returns the number of lookups actually issued to the provider.
func (r *Resolver) Calls() int {
	return r.calls
}

// Resolve produces coordinates for one record. The explicit coordinate text is
// authoritative when it parses; otherwise the place name is resolved through
// the cache and, on a miss, the provider. Failures are cached per place name
// and returned as typed errors; they are non-fatal to the pipeline.
func (r *Resolver) Resolve(ctx context.Context, coordinateText, place string) (*spatial.Point, error) {
	if coordinateText != "" {
		point, err := ParseCoordinateText(coordinateText)
		if err == nil {
			return point, nil
		}
		// Malformed coordinate text falls through to geocoding.
	}

	if place == "" {
		return nil, &Error{Kind: KindNotFound, Message: "record has no find spot to geocode"}
	}

	if result, ok, err := r.cache.Lookup(place); ok {
		if err != nil {
			return nil, err
		}

		return &spatial.Point{Lat: result.Latitude, Lng: result.Longitude}, nil
	}

	result, err := r.lookup(ctx, place)
	if err != nil {
		r.cache.StoreFailure(place, err)

		return nil, err
	}

	r.cache.StoreResult(place, result)

	return &spatial.Point{Lat: result.Latitude, Lng: result.Longitude}, nil
}

func (r *Resolver) lookup(ctx context.Context, place string) (*Result, error) {
	if r.geocoder == nil {
		return nil, &Error{Kind: KindUnavailable, Message: "geocoding disabled"}
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	r.calls++

	result, err := r.geocoder.Geocode(ctx, place)
	if err != nil {
		// A provider honoring the context returns a bare deadline error;
		// wrap it so the caller and the cache see the timeout kind.
		var geoErr *Error
		if !errors.As(err, &geoErr) &&
			(errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded)) {
			return nil, &Error{Kind: KindTimeout, Message: "geocoding lookup timed out", Err: err}
		}

		return nil, err
	}

	return result, nil
}
