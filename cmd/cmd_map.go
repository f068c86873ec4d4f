// Copyright 2026 The Liberalitas Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var mapOutput string

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Export map markers for the resolved records",
	Long: `
Writes the resolved records as a JSON marker list (place, coordinates,
transcription excerpt, women-related flag) for a downstream map layer.
Records without coordinates are counted but not exported.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		collection, _, err := runPipeline(cmd)
		if err != nil {
			return err
		}

		markers := collection.Markers()

		data, err := json.MarshalIndent(markers, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling markers: %w", err)
		}

		if mapOutput == "" {
			fmt.Println(string(data))
		} else if err := os.WriteFile(mapOutput, data, 0o600); err != nil {
			return fmt.Errorf("writing markers file: %w", err)
		}

		log.Printf(
			"%d of %d records have coordinates",
			len(markers),
			len(collection.Records()),
		)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(mapCmd)
	mapCmd.Flags().StringVarP(
		&mapOutput,
		"output",
		"o",
		"",
		"Write markers to a file instead of stdout",
	)
}
