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
	"time"
)

const googleMapsURL = "https://maps.googleapis.com/maps/api/geocode/json"

// GoogleMapsGeocoder uses Google Maps Geocoding API. Optional provider for
// users with an API key; better coverage of small modern place names than
// Nominatim.
type GoogleMapsGeocoder struct {
	apiKey     string
	httpClient *http.Client
}

// NewGoogleMapsGeocoder creates a new Google Maps geocoder.
func NewGoogleMapsGeocoder(apiKey string) *GoogleMapsGeocoder {
	return &GoogleMapsGeocoder{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type googleMapsResponse struct {
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		FormattedAddress string `json:"formatted_address"`
	} `json:"results"`
	Status string `json:"status"` // OK, ZERO_RESULTS, OVER_QUERY_LIMIT, etc.
}

func (g *GoogleMapsGeocoder) Geocode(ctx context.Context, place string) (*Result, error) {
	params := url.Values{}
	params.Set("address", place)
	params.Set("key", g.apiKey)

	reqURL := googleMapsURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, &Error{Kind: KindInvalidRequest, Message: "building request", Err: err}
	}

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

	var gmResp googleMapsResponse
	if err := json.NewDecoder(resp.Body).Decode(&gmResp); err != nil {
		return nil, &Error{Kind: KindUnknown, Message: "decoding response", Err: err}
	}

	switch gmResp.Status {
	case "OK":
	case "ZERO_RESULTS":
		return nil, &Error{
			Kind:    KindNotFound,
			Message: fmt.Sprintf("no results found for place: %s", place),
		}
	case "OVER_QUERY_LIMIT":
		return nil, &Error{Kind: KindRateLimit, Message: "google maps quota exceeded"}
	case "REQUEST_DENIED", "INVALID_REQUEST":
		return nil, &Error{Kind: KindInvalidRequest, Message: "google maps status: " + gmResp.Status}
	default:
		return nil, &Error{Kind: KindUnknown, Message: "google maps status: " + gmResp.Status}
	}

	if len(gmResp.Results) == 0 {
		return nil, &Error{
			Kind:    KindNotFound,
			Message: fmt.Sprintf("no results found for place: %s", place),
		}
	}

	result := gmResp.Results[0]

	return &Result{
		Latitude:    result.Geometry.Location.Lat,
		Longitude:   result.Geometry.Location.Lng,
		Provider:    "google_maps",
		DisplayName: result.FormattedAddress,
	}, nil
}
