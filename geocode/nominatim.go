// Copyright 2026 The Liberalitas Authors
// SPDX-License-Identifier: Apache-2.0

package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultNominatimURL = "https://nominatim.openstreetmap.org/search"

// NominatimGeocoder uses the OpenStreetMap Nominatim API. It needs no API key,
// which makes it the default provider; Nominatim asks for a descriptive
// User-Agent on every request.
type NominatimGeocoder struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewNominatimGeocoder creates a new Nominatim geocoder.
func NewNominatimGeocoder(userAgent string) *NominatimGeocoder {
	return &NominatimGeocoder{
		baseURL:   defaultNominatimURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type nominatimEntry struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (g *NominatimGeocoder) Geocode(ctx context.Context, place string) (*Result, error) {
	params := url.Values{}
	params.Set("q", place)
	params.Set("format", "jsonv2")
	params.Set("limit", "1")

	reqURL := g.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, &Error{Kind: KindInvalidRequest, Message: "building request", Err: err}
	}

	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &Error{Kind: KindTimeout, Message: "geocoding request timed out", Err: err}
		}

		return nil, &Error{Kind: KindUnavailable, Message: "geocoding request failed", Err: err}
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, classifyHTTPStatus(resp.StatusCode)
	}

	var entries []nominatimEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, &Error{Kind: KindUnknown, Message: "decoding response", Err: err}
	}

	if len(entries) == 0 {
		return nil, &Error{
			Kind:    KindNotFound,
			Message: fmt.Sprintf("no results found for place: %s", place),
		}
	}

	// Nominatim serializes coordinates as strings
	entry := entries[0]

	lat, err := strconv.ParseFloat(entry.Lat, 64)
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Message: "parsing latitude", Err: err}
	}

	lng, err := strconv.ParseFloat(entry.Lon, 64)
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Message: "parsing longitude", Err: err}
	}

	return &Result{
		Latitude:    lat,
		Longitude:   lng,
		Provider:    "nominatim",
		DisplayName: entry.DisplayName,
	}, nil
}
