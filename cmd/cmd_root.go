// Copyright 2026 The Liberalitas Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/epigraphia/liberalitas/corpus"
	"github.com/epigraphia/liberalitas/geocode"
)

type logWriter struct {
	writer io.Writer
}

func (w *logWriter) Write(bytes []byte) (int, error) {
	return fmt.Fprintf(w.writer, "%s %s", time.Now().Format("2006-01-02 15:04:05"), string(bytes))
}

func init() {
	log.SetFlags(0)
	log.SetOutput(&logWriter{writer: os.Stderr})
}

var rootCmd = &cobra.Command{
	Use:   "liberalitas",
	Short: "explore Latin inscriptions mentioning liberalitas",
	Long: `
liberalitas loads a CSV export of epigraphic inscriptions that mention the
term "liberalitas", resolves where each one was found, and answers search,
frequency and completeness queries over the normalized collection.
`,
}

var Version = "dev"

// options shared by every subcommand.
var (
	csvPath        string
	configPath     string
	skipGeocode    bool
	geocoderName   string
	googleAPIKey   string
	geocodeTimeout time.Duration
)

func Execute(version string) {
	Version = version

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&csvPath,
		"csv",
		"liberalita_edh.csv",
		"Path to the inscriptions CSV export",
	)
	rootCmd.PersistentFlags().StringVar(
		&configPath,
		"config",
		"",
		"Optional YAML config with repair rules, reference lists and stopwords",
	)
	rootCmd.PersistentFlags().BoolVar(
		&skipGeocode,
		"skip-geocode",
		false,
		"Disable geocoding lookups; only explicit coordinate columns are used",
	)
	rootCmd.PersistentFlags().StringVar(
		&geocoderName,
		"geocoder",
		"nominatim",
		"Geocoding provider: nominatim or google",
	)
	rootCmd.PersistentFlags().StringVar(
		&googleAPIKey,
		"google-api-key",
		"",
		"Google Maps API key (or GOOGLE_MAPS_API_KEY)",
	)
	rootCmd.PersistentFlags().DurationVar(
		&geocodeTimeout,
		"geocode-timeout",
		geocode.DefaultTimeout,
		"Per-lookup geocoding timeout",
	)
}

// buildGeocoder selects the provider from the command line options.
func buildGeocoder() (geocode.Geocoder, error) {
	if skipGeocode {
		return nil, nil
	}

	switch geocoderName {
	case "nominatim":
		userAgent := fmt.Sprintf("liberalitas/%s (+https://github.com/epigraphia/liberalitas)", Version)

		return geocode.NewNominatimGeocoder(userAgent), nil
	case "google":
		key := googleAPIKey
		if key == "" {
			key = os.Getenv("GOOGLE_MAPS_API_KEY")
		}

		if key == "" {
			return nil, fmt.Errorf("the google provider needs --google-api-key or GOOGLE_MAPS_API_KEY")
		}

		return geocode.NewGoogleMapsGeocoder(key), nil
	default:
		return nil, fmt.Errorf("unknown geocoder %q", geocoderName)
	}
}

// runPipeline loads the CSV and runs the full record pipeline. Every
// subcommand starts from a fresh run; nothing persists between invocations.
func runPipeline(cmd *cobra.Command) (*corpus.Collection, corpus.Config, error) {
	cfg, err := corpus.LoadConfig(configPath)
	if err != nil {
		return nil, corpus.Config{}, err
	}

	geocoder, err := buildGeocoder()
	if err != nil {
		return nil, corpus.Config{}, err
	}

	f, err := os.Open(csvPath) // #nosec G304 - path is provided by the operator
	if err != nil {
		return nil, corpus.Config{}, fmt.Errorf("opening source: %w", err)
	}
	defer f.Close()

	resolver := geocode.NewResolver(geocoder, geocode.NewCache(), geocodeTimeout)
	pipeline := corpus.NewPipeline(resolver)

	collection, err := pipeline.Run(cmd.Context(), f, cfg)
	if err != nil {
		return nil, corpus.Config{}, err
	}

	m := collection.Metrics()
	log.Printf(
		"Pipeline metrics - %d rows loaded, %d repaired, %d dropped, %d with coordinates, %d without, %d geocoding calls",
		m.Loaded, m.Repaired, m.Dropped, m.Resolved, m.Unresolved, m.GeocodeCalls,
	)

	return collection, cfg, nil
}
