// Copyright 2026 The Liberalitas Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/epigraphia/liberalitas/corpus"
	"github.com/epigraphia/liberalitas/geocode"
)

var (
	searchField  string
	searchNear   string
	searchRadius float64
)

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search a text field of the collection",
	Long: `
Case-insensitive substring search over one field of the normalized collection.
Without a term, lists the full collection. With --near, only resolved records
within --radius meters of the given point are considered.
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		collection, _, err := runPipeline(cmd)
		if err != nil {
			return err
		}

		if searchNear != "" {
			center, err := geocode.ParseCoordinateText(searchNear)
			if err != nil {
				return err
			}

			collection = corpus.NewCollection(
				collection.Near(*center, searchRadius),
				collection.Metrics(),
			)
		}

		term := ""
		if len(args) > 0 {
			term = args[0]
		}

		matches, err := collection.Search(term, corpus.Field(searchField))
		if err != nil {
			return err
		}

		for _, rec := range matches {
			header := rec.ModernFindSpot
			if rec.ID != "" {
				header += " (" + rec.ID + ")"
			}

			if rec.WomenRelated {
				header += " [women-related?]"
			}

			fmt.Printf("― %s\n%s\n\n", header, rec.Transcription)
		}

		fmt.Printf("%d of %d records matched\n", len(matches), len(collection.Records()))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVar(
		&searchField,
		"field",
		string(corpus.FieldTranscription),
		"Field to search",
	)
	searchCmd.Flags().StringVar(
		&searchNear,
		"near",
		"",
		`Only records near this "lat,lng" point`,
	)
	searchCmd.Flags().Float64Var(
		&searchRadius,
		"radius",
		50_000,
		"Radius in meters for --near",
	)
}
